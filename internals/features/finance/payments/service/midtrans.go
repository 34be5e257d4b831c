// file: internals/features/finance/payments/service/midtrans.go
package service

import (
	"errors"
	"fmt"
	"time"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"github.com/google/uuid"
	"gorm.io/gorm"

	eventModel "komunitas_backend/internals/features/events/events/model"
	regModel "komunitas_backend/internals/features/events/registrations/model"
	regService "komunitas_backend/internals/features/events/registrations/service"
	payModel "komunitas_backend/internals/features/finance/payments/model"
	memberModel "komunitas_backend/internals/features/membership/members/model"
)

var (
	ErrFreeEvent      = errors.New("event ini gratis, tidak perlu pembayaran")
	ErrNotPayable     = errors.New("registrasi tidak dalam status yang bisa dibayar")
	ErrOrderNotFound  = errors.New("tagihan tidak ditemukan")
	ErrNotFound       = regService.ErrNotFound
)

/* =========================================================
   Midtrans Client
========================================================= */

var SnapClient snap.Client

// InitMidtrans dipanggil saat bootstrap app.
func InitMidtrans(serverKey string, useProduction bool) {
	if useProduction {
		SnapClient.New(serverKey, midtrans.Production)
	} else {
		SnapClient.New(serverKey, midtrans.Sandbox)
	}
}

/* =========================================================
   Checkout
========================================================= */

type CheckoutService struct{}

func NewCheckoutService() *CheckoutService { return &CheckoutService{} }

// CreateCheckout membuat tagihan Snap untuk registrasi berbayar.
// Registrasi waitlist/cancelled tidak bisa checkout.
func (s *CheckoutService) CreateCheckout(db *gorm.DB, registrationID uuid.UUID) (*payModel.PaymentModel, error) {
	var reg regModel.EventRegistrationModel
	if err := db.Where("registration_id = ?", registrationID).First(&reg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !reg.RegistrationStatus.IsActive() {
		return nil, ErrNotPayable
	}

	var ev eventModel.EventModel
	if err := db.Where("event_id = ?", reg.RegistrationEventID).First(&ev).Error; err != nil {
		return nil, err
	}
	if ev.EventPrice == nil || *ev.EventPrice <= 0 {
		return nil, ErrFreeEvent
	}

	var member memberModel.MemberModel
	if err := db.Where("member_id = ?", reg.RegistrationMemberID).First(&member).Error; err != nil {
		return nil, err
	}

	amount := int64(*ev.EventPrice)
	orderID := fmt.Sprintf("REG-%s-%d", reg.RegistrationID.String()[:8], time.Now().Unix())

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: amount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: member.MemberName,
			Email: member.MemberEmail,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:       ev.EventID.String(),
				Price:    amount,
				Qty:      1,
				Name:     truncate(ev.EventTitle, 50),
				Category: "EVENT",
			},
		},
	}
	if member.MemberPhone != nil {
		req.CustomerDetail.Phone = *member.MemberPhone
	}

	resp, errSnap := SnapClient.CreateTransaction(req)
	if errSnap != nil {
		return nil, errSnap
	}

	payment := &payModel.PaymentModel{
		PaymentRegistrationID: reg.RegistrationID,
		PaymentOrderID:        orderID,
		PaymentAmountIDR:      amount,
		PaymentStatus:         payModel.PaymentPending,
		PaymentSnapToken:      &resp.Token,
		PaymentRedirectURL:    &resp.RedirectURL,
	}
	if err := db.Create(payment).Error; err != nil {
		return nil, err
	}
	return payment, nil
}

// ApplyNotification memproses callback status transaksi dari Midtrans.
// settlement/capture → paid, expire → expired, cancel/deny → cancelled.
func (s *CheckoutService) ApplyNotification(db *gorm.DB, orderID, transactionStatus string) (*payModel.PaymentModel, error) {
	var payment payModel.PaymentModel
	if err := db.Where("payment_order_id = ?", orderID).First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	updates := map[string]any{}
	switch transactionStatus {
	case "settlement", "capture":
		now := time.Now()
		updates["payment_status"] = payModel.PaymentPaid
		updates["payment_paid_at"] = now
	case "expire":
		updates["payment_status"] = payModel.PaymentExpired
	case "cancel", "deny":
		updates["payment_status"] = payModel.PaymentCancelled
	default:
		return &payment, nil // pending / status lain: biarkan
	}

	if err := db.Model(&payment).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

// ListByRegistration riwayat tagihan sebuah registrasi (terbaru dulu).
func (s *CheckoutService) ListByRegistration(db *gorm.DB, registrationID uuid.UUID) ([]payModel.PaymentModel, error) {
	var rows []payModel.PaymentModel
	err := db.Where("payment_registration_id = ?", registrationID).
		Order("payment_created_at DESC").
		Find(&rows).Error
	return rows, err
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[:n]
}
