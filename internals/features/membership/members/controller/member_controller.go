// file: internals/features/membership/members/controller/member_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"komunitas_backend/internals/features/membership/members/dto"
	memberModel "komunitas_backend/internals/features/membership/members/model"
	helper "komunitas_backend/internals/helpers"
)

type MemberController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewMemberController(db *gorm.DB) *MemberController {
	return &MemberController{DB: db, Validate: validator.New()}
}

// PG unique violation punya SQLState 23505; driver mengeksposnya lewat
// interface kecil ini tanpa perlu import tipe error driver.
type sqlStater interface{ SQLState() string }

func isUniqueViolation(err error) bool {
	var st sqlStater
	if errors.As(err, &st) {
		return st.SQLState() == "23505"
	}
	return false
}

/* =========================
   POST /api/a/members
   ========================= */

func (ctl *MemberController) Create(c *fiber.Ctx) error {
	var req dto.CreateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	mm := req.ToModel()
	if err := ctl.DB.Create(mm).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat anggota")
	}

	return helper.JsonCreated(c, "Anggota berhasil dibuat ✅", dto.FromModel(mm))
}

/* =========================
   PATCH /api/a/members/:id
   ========================= */

func (ctl *MemberController) Patch(c *fiber.Ctx) error {
	memberID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "member_id tidak valid")
	}

	var req dto.UpdateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var mm memberModel.MemberModel
	if err := ctl.DB.Where("member_id = ?", memberID).First(&mm).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Anggota tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data anggota")
	}

	if updates := req.ToUpdates(); len(updates) > 0 {
		if err := ctl.DB.Model(&mm).Updates(updates).Error; err != nil {
			if isUniqueViolation(err) {
				return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui anggota")
		}
	}

	return helper.JsonOK(c, "Anggota berhasil diperbarui ✅", dto.FromModel(&mm))
}

/* =========================
   GET /api/a/members
   GET /api/a/members/:id
   ========================= */

func (ctl *MemberController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&memberModel.MemberModel{})
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(member_name) LIKE ? OR LOWER(member_email) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data anggota")
	}

	var rows []memberModel.MemberModel
	if err := q.Order("member_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data anggota")
	}

	return helper.JsonList(c, "Daftar anggota", dto.FromModels(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage, len(rows)))
}

func (ctl *MemberController) GetByID(c *fiber.Ctx) error {
	memberID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "member_id tidak valid")
	}

	var mm memberModel.MemberModel
	if err := ctl.DB.Where("member_id = ?", memberID).First(&mm).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Anggota tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data anggota")
	}

	return helper.JsonOK(c, "Detail anggota", dto.FromModel(&mm))
}

/* =========================
   DELETE /api/a/members/:id  (soft delete)
   ========================= */

func (ctl *MemberController) Delete(c *fiber.Ctx) error {
	memberID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "member_id tidak valid")
	}

	res := ctl.DB.Where("member_id = ?", memberID).Delete(&memberModel.MemberModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus anggota")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Anggota tidak ditemukan")
	}

	return helper.JsonOK(c, "Anggota berhasil dihapus ✅", nil)
}
