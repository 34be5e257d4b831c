// file: internals/route/details/registration_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attController "komunitas_backend/internals/features/events/attendance/controller"
	attService "komunitas_backend/internals/features/events/attendance/service"
	notifierService "komunitas_backend/internals/features/events/notifier/service"
	occService "komunitas_backend/internals/features/events/occurrences/service"
	regController "komunitas_backend/internals/features/events/registrations/controller"
	regService "komunitas_backend/internals/features/events/registrations/service"
	payController "komunitas_backend/internals/features/finance/payments/controller"
	payService "komunitas_backend/internals/features/finance/payments/service"
	notifService "komunitas_backend/internals/features/notifications/service"
	"komunitas_backend/internals/middlewares"
)

// RegistrationUserRoutes endpoint peserta di bawah /api/u:
// daftar, batal, checkout pembayaran, plus webhook Midtrans.
func RegistrationUserRoutes(user fiber.Router, db *gorm.DB) {
	occurrences := occService.NewOccurrenceService()
	notifier := notifierService.NewCapacityNotifier(notifService.NewDispatcher())
	ledger := regService.NewRegistrationLedger(occurrences, notifier)

	regCtl := regController.NewRegistrationController(db, ledger)
	payCtl := payController.NewPaymentController(db, payService.NewCheckoutService())

	reg := user.Group("/registrations")
	reg.Post("/", middlewares.RegistrationRateLimiter(), regCtl.Create)
	reg.Delete("/:id", regCtl.Cancel)
	reg.Post("/:id/checkout", payCtl.Checkout)
}

// PaymentWebhookRoutes callback Midtrans di luar group ber-JWT;
// payload diverifikasi lewat order_id.
func PaymentWebhookRoutes(public fiber.Router, db *gorm.DB) {
	payCtl := payController.NewPaymentController(db, payService.NewCheckoutService())
	public.Post("/payments/notification", payCtl.Notification)
}

// RegistrationAdminRoutes endpoint admin di bawah /api/a.
func RegistrationAdminRoutes(admin fiber.Router, db *gorm.DB) {
	occurrences := occService.NewOccurrenceService()
	notifier := notifierService.NewCapacityNotifier(notifService.NewDispatcher())
	ledger := regService.NewRegistrationLedger(occurrences, notifier)

	regCtl := regController.NewRegistrationController(db, ledger)
	attCtl := attController.NewAttendanceController(db, attService.NewAttendanceTracker(occurrences))
	payCtl := payController.NewPaymentController(db, payService.NewCheckoutService())

	admin.Get("/events/:id/registrations", regCtl.ListByEvent)

	reg := admin.Group("/registrations")
	reg.Get("/:id", regCtl.GetByID)
	reg.Patch("/:id/status", regCtl.UpdateStatus)
	reg.Put("/:id/attendance", attCtl.SetMark)
	reg.Get("/:id/payments", payCtl.ListByRegistration)
}
