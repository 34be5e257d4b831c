// file: internals/features/finance/payments/controller/payment_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	payService "komunitas_backend/internals/features/finance/payments/service"
	helper "komunitas_backend/internals/helpers"
)

type PaymentController struct {
	DB      *gorm.DB
	Service *payService.CheckoutService
}

func NewPaymentController(db *gorm.DB, svc *payService.CheckoutService) *PaymentController {
	return &PaymentController{DB: db, Service: svc}
}

/* =========================
   POST /api/u/registrations/:id/checkout
   ========================= */

func (ctl *PaymentController) Checkout(c *fiber.Ctx) error {
	registrationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "registration_id tidak valid")
	}

	payment, err := ctl.Service.CreateCheckout(ctl.DB, registrationID)
	if err != nil {
		switch {
		case errors.Is(err, payService.ErrNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, payService.ErrFreeEvent),
			errors.Is(err, payService.ErrNotPayable):
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
		default:
			return helper.JsonError(c, fiber.StatusBadGateway, "Gagal membuat tagihan pembayaran")
		}
	}

	return helper.JsonCreated(c, "Tagihan dibuat ✅", payment)
}

/* =========================
   POST /api/u/payments/notification  (webhook Midtrans)
   ========================= */

type midtransNotification struct {
	OrderID           string `json:"order_id"`
	TransactionStatus string `json:"transaction_status"`
}

func (ctl *PaymentController) Notification(c *fiber.Ctx) error {
	var notif midtransNotification
	if err := c.BodyParser(&notif); err != nil || notif.OrderID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload notifikasi tidak valid")
	}

	payment, err := ctl.Service.ApplyNotification(ctl.DB, notif.OrderID, notif.TransactionStatus)
	if err != nil {
		if errors.Is(err, payService.ErrOrderNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses notifikasi")
	}

	return helper.JsonOK(c, "Notifikasi diproses", payment)
}

/* =========================
   GET /api/a/registrations/:id/payments
   ========================= */

func (ctl *PaymentController) ListByRegistration(c *fiber.Ctx) error {
	registrationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "registration_id tidak valid")
	}

	rows, err := ctl.Service.ListByRegistration(ctl.DB, registrationID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil riwayat tagihan")
	}

	return helper.JsonOK(c, "Riwayat tagihan", rows)
}
