// file: internals/features/membership/locations/controller/location_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"komunitas_backend/internals/features/membership/locations/dto"
	locModel "komunitas_backend/internals/features/membership/locations/model"
	helper "komunitas_backend/internals/helpers"
)

type LocationController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewLocationController(db *gorm.DB) *LocationController {
	return &LocationController{DB: db, Validate: validator.New()}
}

/* =========================
   POST /api/a/locations
   ========================= */

func (ctl *LocationController) Create(c *fiber.Ctx) error {
	var req dto.CreateLocationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	mm := req.ToModel()
	if err := ctl.DB.Create(mm).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat lokasi")
	}

	return helper.JsonCreated(c, "Lokasi berhasil dibuat ✅", dto.FromModel(mm))
}

/* =========================
   PATCH /api/a/locations/:id
   ========================= */

func (ctl *LocationController) Patch(c *fiber.Ctx) error {
	locationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "location_id tidak valid")
	}

	var req dto.UpdateLocationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var mm locModel.LocationModel
	if err := ctl.DB.Where("location_id = ?", locationID).First(&mm).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Lokasi tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data lokasi")
	}

	if updates := req.ToUpdates(); len(updates) > 0 {
		if err := ctl.DB.Model(&mm).Updates(updates).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui lokasi")
		}
	}

	return helper.JsonOK(c, "Lokasi berhasil diperbarui ✅", dto.FromModel(&mm))
}

/* =========================
   GET /api/a/locations
   ========================= */

func (ctl *LocationController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctl.DB.Model(&locModel.LocationModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data lokasi")
	}

	var rows []locModel.LocationModel
	if err := ctl.DB.Order("location_name ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data lokasi")
	}

	return helper.JsonList(c, "Daftar lokasi", dto.FromModels(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage, len(rows)))
}

/* =========================
   DELETE /api/a/locations/:id  (soft delete)
   ========================= */

func (ctl *LocationController) Delete(c *fiber.Ctx) error {
	locationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "location_id tidak valid")
	}

	res := ctl.DB.Where("location_id = ?", locationID).Delete(&locModel.LocationModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus lokasi")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Lokasi tidak ditemukan")
	}

	return helper.JsonOK(c, "Lokasi berhasil dihapus ✅", nil)
}
