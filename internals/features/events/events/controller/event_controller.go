// file: internals/features/events/events/controller/event_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"komunitas_backend/internals/features/events/events/dto"
	eventService "komunitas_backend/internals/features/events/events/service"
	"komunitas_backend/internals/features/events/schedule"
	helper "komunitas_backend/internals/helpers"
)

type EventController struct {
	DB       *gorm.DB
	Service  *eventService.EventService
	Validate *validator.Validate
}

func NewEventController(db *gorm.DB, svc *eventService.EventService) *EventController {
	return &EventController{
		DB:       db,
		Service:  svc,
		Validate: validator.New(),
	}
}

/* =========================
   POST /api/a/events
   ========================= */

func (ctl *EventController) Create(c *fiber.Ctx) error {
	var req dto.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	ev, err := req.ToModel()
	if err != nil {
		if errors.Is(err, schedule.ErrInvalidSchedule) {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
		}
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	if err := ctl.Service.Create(ctl.DB, ev); err != nil {
		if errors.Is(err, schedule.ErrInvalidSchedule) {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat event")
	}

	return helper.JsonCreated(c, "Event berhasil dibuat ✅", dto.FromModel(ev))
}

/* =========================
   PATCH /api/a/events/:id
   ========================= */

func (ctl *EventController) Patch(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "event_id tidak valid")
	}

	var req dto.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	ev, err := ctl.Service.Patch(ctl.DB, eventID, req.ToChanges())
	if err != nil {
		switch {
		case errors.Is(err, eventService.ErrNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, schedule.ErrInvalidSchedule):
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui event")
		}
	}

	return helper.JsonOK(c, "Event berhasil diperbarui ✅", dto.FromModel(ev))
}

/* =========================
   GET /api/a/events
   GET /api/a/events/:id
   ========================= */

func (ctl *EventController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	rows, total, err := ctl.Service.List(ctl.DB, p.Offset, p.Limit)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data event")
	}

	return helper.JsonList(c, "Daftar event", dto.FromModels(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage, len(rows)))
}

func (ctl *EventController) GetByID(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "event_id tidak valid")
	}

	ev, err := ctl.Service.GetByID(ctl.DB, eventID)
	if err != nil {
		if errors.Is(err, eventService.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data event")
	}

	return helper.JsonOK(c, "Detail event", dto.FromModel(ev))
}

/* =========================
   DELETE /api/a/events/:id
   ========================= */

func (ctl *EventController) Delete(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "event_id tidak valid")
	}

	if err := ctl.Service.Delete(ctl.DB, eventID); err != nil {
		if errors.Is(err, eventService.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus event")
	}

	return helper.JsonOK(c, "Event berhasil dihapus ✅", nil)
}

/* =========================
   GET /api/a/events/:id/summary
   GET /api/a/events/:id/capacity
   ========================= */

func (ctl *EventController) Summary(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "event_id tidak valid")
	}

	view, err := ctl.Service.Summary(ctl.DB, eventID)
	if err != nil {
		if errors.Is(err, eventService.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyusun ringkasan event")
	}

	return helper.JsonOK(c, "Ringkasan event", view)
}

func (ctl *EventController) Capacity(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "event_id tidak valid")
	}

	view, err := ctl.Service.Capacity(ctl.DB, eventID)
	if err != nil {
		if errors.Is(err, eventService.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung kapasitas")
	}

	return helper.JsonOK(c, "Kapasitas event", view)
}
