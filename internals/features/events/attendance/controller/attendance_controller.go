// file: internals/features/events/attendance/controller/attendance_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"komunitas_backend/internals/features/events/attendance/dto"
	attService "komunitas_backend/internals/features/events/attendance/service"
	occModel "komunitas_backend/internals/features/events/occurrences/model"
	regModel "komunitas_backend/internals/features/events/registrations/model"
	helper "komunitas_backend/internals/helpers"
)

type AttendanceController struct {
	DB       *gorm.DB
	Tracker  *attService.AttendanceTracker
	Validate *validator.Validate
}

func NewAttendanceController(db *gorm.DB, tracker *attService.AttendanceTracker) *AttendanceController {
	return &AttendanceController{
		DB:       db,
		Tracker:  tracker,
		Validate: validator.New(),
	}
}

/* =========================
   PUT /api/a/registrations/:id/attendance
   ========================= */

func (ctl *AttendanceController) SetMark(c *fiber.Ctx) error {
	registrationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "registration_id tidak valid")
	}

	var req dto.SetMarkRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	err = ctl.Tracker.SetMark(ctl.DB, registrationID, req.OccurrenceKey, regModel.AttendanceMark(req.Mark))
	if err != nil {
		switch {
		case errors.Is(err, attService.ErrNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, attService.ErrInvalidOccurrence),
			errors.Is(err, attService.ErrInvalidScope):
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mencatat absensi")
		}
	}

	return helper.JsonOK(c, "Absensi tercatat ✅", nil)
}

/* =========================
   GET /api/a/events/:id/attendance?occurrence_key=...
   ========================= */

func (ctl *AttendanceController) Summarize(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "event_id tidak valid")
	}

	key, err := occModel.ParseKey(c.Query("occurrence_key"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "occurrence_key tidak valid")
	}

	summary, err := ctl.Tracker.Summarize(ctl.DB, eventID, key)
	if err != nil {
		if errors.Is(err, attService.ErrInvalidOccurrence) {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung rekap absensi")
	}

	return helper.JsonOK(c, "Rekap absensi", summary)
}
