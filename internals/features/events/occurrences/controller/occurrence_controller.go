// file: internals/features/events/occurrences/controller/occurrence_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	eventService "komunitas_backend/internals/features/events/events/service"
	"komunitas_backend/internals/features/events/occurrences/dto"
	occService "komunitas_backend/internals/features/events/occurrences/service"
	"komunitas_backend/internals/features/events/schedule"
	locModel "komunitas_backend/internals/features/membership/locations/model"
	helper "komunitas_backend/internals/helpers"
)

type OccurrenceController struct {
	DB       *gorm.DB
	Events   *eventService.EventService
	Service  *occService.OccurrenceService
	Validate *validator.Validate
}

func NewOccurrenceController(db *gorm.DB, events *eventService.EventService, svc *occService.OccurrenceService) *OccurrenceController {
	return &OccurrenceController{
		DB:       db,
		Events:   events,
		Service:  svc,
		Validate: validator.New(),
	}
}

/* =========================
   GET /api/a/events/:id/occurrences
   ========================= */

func (ctl *OccurrenceController) ListByEvent(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "event_id tidak valid")
	}
	if _, err := ctl.Events.GetByID(ctl.DB, eventID); err != nil {
		if errors.Is(err, eventService.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data event")
	}

	includePast := c.QueryBool("include_past", false)
	rows, err := ctl.Service.GetByEvent(ctl.DB, eventID, includePast)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar occurrence")
	}

	return helper.JsonOK(c, "Daftar occurrence", dto.FromModels(rows))
}

/* =========================
   POST /api/a/events/:id/occurrences  (manual)
   ========================= */

func (ctl *OccurrenceController) CreateManual(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "event_id tidak valid")
	}
	if _, err := ctl.Events.GetByID(ctl.DB, eventID); err != nil {
		if errors.Is(err, eventService.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data event")
	}

	var req dto.CreateOccurrenceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	occ, err := ctl.Service.CreateManual(ctl.DB, eventID, req.StartAt, req.EndAt)
	if err != nil {
		if errors.Is(err, schedule.ErrInvalidSchedule) {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat occurrence")
	}

	return helper.JsonCreated(c, "Occurrence manual berhasil dibuat ✅", dto.FromModel(occ))
}

/* =========================
   DELETE /api/a/events/:id/occurrences/:occurrence_id  (cancel)
   ========================= */

func (ctl *OccurrenceController) Cancel(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "event_id tidak valid")
	}
	occurrenceID, err := uuid.Parse(c.Params("occurrence_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "occurrence_id tidak valid")
	}

	if err := ctl.Service.Cancel(ctl.DB, eventID, occurrenceID); err != nil {
		if errors.Is(err, occService.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membatalkan occurrence")
	}

	return helper.JsonOK(c, "Occurrence dibatalkan ✅", nil)
}

/* =========================
   GET /api/a/events/:id/occurrences.ics
   ========================= */

func (ctl *OccurrenceController) ExportICS(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "event_id tidak valid")
	}

	ev, err := ctl.Events.GetByID(ctl.DB, eventID)
	if err != nil {
		if errors.Is(err, eventService.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data event")
	}

	rows, err := ctl.Service.GetByEvent(ctl.DB, eventID, true)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar occurrence")
	}

	locationLabel := ""
	if ev.EventLocationID != nil {
		var loc locModel.LocationModel
		if err := ctl.DB.Where("location_id = ?", *ev.EventLocationID).First(&loc).Error; err == nil {
			locationLabel = loc.LocationName
		}
	}

	c.Set(fiber.HeaderContentType, "text/calendar; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="event-`+eventID.String()+`.ics"`)
	return c.SendString(occService.BuildICS(ev.EventTitle, locationLabel, rows))
}
