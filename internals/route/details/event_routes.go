// file: internals/route/details/event_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attController "komunitas_backend/internals/features/events/attendance/controller"
	attService "komunitas_backend/internals/features/events/attendance/service"
	eventController "komunitas_backend/internals/features/events/events/controller"
	eventService "komunitas_backend/internals/features/events/events/service"
	notifierService "komunitas_backend/internals/features/events/notifier/service"
	occController "komunitas_backend/internals/features/events/occurrences/controller"
	occService "komunitas_backend/internals/features/events/occurrences/service"
	notifService "komunitas_backend/internals/features/notifications/service"
	"komunitas_backend/internals/configs"
)

// EventAdminRoutes memasang seluruh endpoint admin untuk event,
// occurrence, dan absensi di bawah group /api/a.
func EventAdminRoutes(admin fiber.Router, db *gorm.DB) {
	occurrences := occService.NewOccurrenceService()
	notifier := notifierService.NewCapacityNotifier(notifService.NewDispatcher())
	events := eventService.NewEventService(occurrences, notifier, configs.AppTimezone)

	evCtl := eventController.NewEventController(db, events)
	occCtl := occController.NewOccurrenceController(db, events, occurrences)
	attCtl := attController.NewAttendanceController(db, attService.NewAttendanceTracker(occurrences))

	ev := admin.Group("/events")
	ev.Post("/", evCtl.Create)
	ev.Get("/", evCtl.List)
	ev.Get("/:id", evCtl.GetByID)
	ev.Patch("/:id", evCtl.Patch)
	ev.Delete("/:id", evCtl.Delete)

	ev.Get("/:id/summary", evCtl.Summary)
	ev.Get("/:id/capacity", evCtl.Capacity)

	ev.Get("/:id/occurrences", occCtl.ListByEvent)
	ev.Post("/:id/occurrences", occCtl.CreateManual)
	ev.Delete("/:id/occurrences/:occurrence_id", occCtl.Cancel)
	ev.Get("/:id/occurrences.ics", occCtl.ExportICS)

	ev.Get("/:id/attendance", attCtl.Summarize)
}
