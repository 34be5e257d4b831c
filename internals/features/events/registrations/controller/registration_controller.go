// file: internals/features/events/registrations/controller/registration_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"komunitas_backend/internals/features/events/registrations/dto"
	regModel "komunitas_backend/internals/features/events/registrations/model"
	regService "komunitas_backend/internals/features/events/registrations/service"
	helper "komunitas_backend/internals/helpers"
)

type RegistrationController struct {
	DB       *gorm.DB
	Ledger   *regService.RegistrationLedger
	Validate *validator.Validate
}

func NewRegistrationController(db *gorm.DB, ledger *regService.RegistrationLedger) *RegistrationController {
	return &RegistrationController{
		DB:       db,
		Ledger:   ledger,
		Validate: validator.New(),
	}
}

// jsonLedgerError memetakan sentinel ledger → kode HTTP dengan pesan aslinya.
func jsonLedgerError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, regService.ErrNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, regService.ErrCapacityExceeded),
		errors.Is(err, regService.ErrDuplicateRegistration):
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, regService.ErrInvalidOccurrence),
		errors.Is(err, regService.ErrInvalidStatus):
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, fallback)
	}
}

/* =========================
   POST /api/u/registrations
   ========================= */

func (ctl *RegistrationController) Create(c *fiber.Ctx) error {
	var req dto.CreateRegistrationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	reg, err := ctl.Ledger.Create(ctl.DB, req.ToInput())
	if err != nil {
		return jsonLedgerError(c, err, "Gagal membuat registrasi")
	}

	msg := "Registrasi berhasil ✅"
	if reg.RegistrationStatus == regModel.StatusWaitlist {
		msg = "Kuota penuh, masuk daftar tunggu ⏳"
	}
	return helper.JsonCreated(c, msg, dto.FromModel(reg))
}

/* =========================
   PATCH /api/a/registrations/:id/status
   ========================= */

func (ctl *RegistrationController) UpdateStatus(c *fiber.Ctx) error {
	registrationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "registration_id tidak valid")
	}

	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	reg, err := ctl.Ledger.UpdateStatus(ctl.DB, registrationID, regModel.RegistrationStatus(req.Status))
	if err != nil {
		return jsonLedgerError(c, err, "Gagal memperbarui status registrasi")
	}

	return helper.JsonOK(c, "Status registrasi diperbarui ✅", dto.FromModel(reg))
}

/* =========================
   DELETE /api/u/registrations/:id  (cancel, bukan hapus fisik)
   ========================= */

func (ctl *RegistrationController) Cancel(c *fiber.Ctx) error {
	registrationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "registration_id tidak valid")
	}

	if err := ctl.Ledger.Cancel(ctl.DB, registrationID); err != nil {
		return jsonLedgerError(c, err, "Gagal membatalkan registrasi")
	}

	return helper.JsonOK(c, "Registrasi dibatalkan ✅", nil)
}

/* =========================
   GET /api/a/registrations/:id
   GET /api/a/events/:id/registrations
   ========================= */

func (ctl *RegistrationController) GetByID(c *fiber.Ctx) error {
	registrationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "registration_id tidak valid")
	}

	reg, err := ctl.Ledger.GetByID(ctl.DB, registrationID)
	if err != nil {
		return jsonLedgerError(c, err, "Gagal mengambil data registrasi")
	}

	return helper.JsonOK(c, "Detail registrasi", dto.FromModel(reg))
}

func (ctl *RegistrationController) ListByEvent(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "event_id tidak valid")
	}

	var statusFilter *regModel.RegistrationStatus
	if raw := c.Query("status"); raw != "" {
		st := regModel.RegistrationStatus(raw)
		if !st.IsValid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "status tidak dikenal")
		}
		statusFilter = &st
	}

	p := helper.ResolvePaging(c, 20, 100)
	rows, total, err := ctl.Ledger.ListByEvent(ctl.DB, eventID, statusFilter, p.Offset, p.Limit)
	if err != nil {
		return jsonLedgerError(c, err, "Gagal mengambil daftar registrasi")
	}

	return helper.JsonList(c, "Daftar registrasi", dto.FromModels(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage, len(rows)))
}
