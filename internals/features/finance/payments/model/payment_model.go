// file: internals/features/finance/payments/model/payment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ===================== Enums ===================== */

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentPaid      PaymentStatus = "paid"
	PaymentExpired   PaymentStatus = "expired"
	PaymentCancelled PaymentStatus = "cancelled"
)

/* ===================== Model ===================== */

// PaymentModel satu tagihan checkout untuk sebuah registrasi berbayar.
// order_id dipakai sebagai OrderID Midtrans (unik per attempt).
type PaymentModel struct {
	PaymentID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:payment_id" json:"payment_id"`
	PaymentRegistrationID uuid.UUID `gorm:"type:uuid;not null;index;column:payment_registration_id"           json:"payment_registration_id"`

	PaymentOrderID   string        `gorm:"type:varchar(64);not null;uniqueIndex;column:payment_order_id"      json:"payment_order_id"`
	PaymentAmountIDR int64         `gorm:"type:bigint;not null;column:payment_amount_idr"                     json:"payment_amount_idr"`
	PaymentStatus    PaymentStatus `gorm:"type:varchar(16);not null;default:'pending';column:payment_status"  json:"payment_status"`

	PaymentSnapToken   *string    `gorm:"type:text;column:payment_snap_token"                                 json:"payment_snap_token,omitempty"`
	PaymentRedirectURL *string    `gorm:"type:text;column:payment_redirect_url"                               json:"payment_redirect_url,omitempty"`
	PaymentPaidAt      *time.Time `gorm:"type:timestamptz;column:payment_paid_at"                             json:"payment_paid_at,omitempty"`

	PaymentCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:payment_created_at" json:"payment_created_at"`
	PaymentUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:payment_updated_at" json:"payment_updated_at"`
	PaymentDeletedAt gorm.DeletedAt `gorm:"column:payment_deleted_at"                                                        json:"payment_deleted_at,omitempty"`
}

func (PaymentModel) TableName() string { return "payments" }
