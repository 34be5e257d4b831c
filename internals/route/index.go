// file: internals/route/index.go
package route

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	routeDetails "komunitas_backend/internals/route/details"
	"komunitas_backend/internals/middlewares"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== BASE =====================
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"uptime": time.Since(startTime).String(),
		})
	})

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group (/api/public)...")
	public := app.Group("/api/public")
	routeDetails.PaymentWebhookRoutes(public, db)

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up USER group (/api/u)...")
	user := app.Group("/api/u", middlewares.AuthMiddleware())
	routeDetails.RegistrationUserRoutes(user, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (/api/a)...")
	admin := app.Group("/api/a", middlewares.AuthMiddleware(), middlewares.AdminOnly())
	routeDetails.EventAdminRoutes(admin, db)
	routeDetails.RegistrationAdminRoutes(admin, db)
	routeDetails.MembershipAdminRoutes(admin, db)
}
