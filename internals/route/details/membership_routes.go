// file: internals/route/details/membership_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	locController "komunitas_backend/internals/features/membership/locations/controller"
	memberController "komunitas_backend/internals/features/membership/members/controller"
)

// MembershipAdminRoutes endpoint admin untuk direktori anggota & lokasi.
func MembershipAdminRoutes(admin fiber.Router, db *gorm.DB) {
	memCtl := memberController.NewMemberController(db)
	locCtl := locController.NewLocationController(db)

	members := admin.Group("/members")
	members.Post("/", memCtl.Create)
	members.Get("/", memCtl.List)
	members.Get("/:id", memCtl.GetByID)
	members.Patch("/:id", memCtl.Patch)
	members.Delete("/:id", memCtl.Delete)

	locations := admin.Group("/locations")
	locations.Post("/", locCtl.Create)
	locations.Get("/", locCtl.List)
	locations.Patch("/:id", locCtl.Patch)
	locations.Delete("/:id", locCtl.Delete)
}
