// file: internals/features/membership/members/model/member_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ===================== Model ===================== */

// MemberModel adalah direktori anggota; registrasi event memvalidasi
// member_id/guardian_id ke sini.
type MemberModel struct {
	MemberID    uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:member_id" json:"member_id"`
	MemberName  string    `gorm:"type:varchar(120);not null;column:member_name"                    json:"member_name"`
	MemberEmail string    `gorm:"type:varchar(160);not null;uniqueIndex;column:member_email"       json:"member_email"`
	MemberPhone *string   `gorm:"type:varchar(30);column:member_phone"                             json:"member_phone,omitempty"`

	// Wali: anggota lain yang boleh mendaftarkan atas nama anggota ini
	MemberIsGuardian bool       `gorm:"not null;default:false;column:member_is_guardian"           json:"member_is_guardian"`
	MemberGuardianID *uuid.UUID `gorm:"type:uuid;column:member_guardian_id"                        json:"member_guardian_id,omitempty"`

	// Audit
	MemberCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:member_created_at" json:"member_created_at"`
	MemberUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:member_updated_at" json:"member_updated_at"`
	MemberDeletedAt gorm.DeletedAt `gorm:"column:member_deleted_at"                                                        json:"member_deleted_at,omitempty"`
}

func (MemberModel) TableName() string { return "members" }
