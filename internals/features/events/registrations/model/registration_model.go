// file: internals/features/events/registrations/model/registration_model.go
package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	occModel "komunitas_backend/internals/features/events/occurrences/model"
)

/* ===================== Enums ===================== */

type RegistrationStatus string

const (
	StatusPending   RegistrationStatus = "pending"
	StatusConfirmed RegistrationStatus = "confirmed"
	StatusWaitlist  RegistrationStatus = "waitlist"
	StatusCancelled RegistrationStatus = "cancelled"
)

// IsValid memeriksa nilai status yang dikenal.
func (s RegistrationStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusWaitlist, StatusCancelled:
		return true
	}
	return false
}

// IsActive: pending/confirmed menghitung ke kapasitas utama.
func (s RegistrationStatus) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

type ScopeMode string

const (
	ScopeAll    ScopeMode = "all"    // registrasi berlaku untuk seluruh rangkaian
	ScopeCustom ScopeMode = "custom" // hanya occurrence yang tercantum
)

/* ===================== Attendance marks ===================== */

type AttendanceMark string

const (
	MarkPresent AttendanceMark = "present"
	MarkAbsent  AttendanceMark = "absent"
	MarkPending AttendanceMark = "pending" // default saat belum ada mark
)

/* ===================== Model ===================== */

type EventRegistrationModel struct {
	RegistrationID         uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:registration_id"  json:"registration_id"`
	RegistrationEventID    uuid.UUID  `gorm:"type:uuid;not null;index;column:registration_event_id"                  json:"registration_event_id"`
	RegistrationMemberID   uuid.UUID  `gorm:"type:uuid;not null;index;column:registration_member_id"                 json:"registration_member_id"`
	RegistrationGuardianID *uuid.UUID `gorm:"type:uuid;column:registration_guardian_id"                              json:"registration_guardian_id,omitempty"`

	RegistrationStatus RegistrationStatus `gorm:"type:varchar(16);not null;default:'pending';column:registration_status" json:"registration_status"`

	// Cakupan occurrence: mode + daftar kunci kanonik (untuk mode custom).
	// Ditetapkan saat create, setelah itu tidak berubah.
	RegistrationScopeMode   ScopeMode      `gorm:"type:varchar(8);not null;default:'all';column:registration_scope_mode" json:"registration_scope_mode"`
	RegistrationOccurrences datatypes.JSON `gorm:"type:jsonb;column:registration_occurrences"                            json:"registration_occurrences,omitempty"`

	// Mark absensi per occurrence: kunci kanonik → present|absent.
	RegistrationAttendance datatypes.JSONMap `gorm:"type:jsonb;column:registration_attendance"                           json:"registration_attendance,omitempty"`

	RegistrationNotes *string `gorm:"type:text;column:registration_notes"                                               json:"registration_notes,omitempty"`

	// Audit
	RegistrationCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:registration_created_at" json:"registration_created_at"`
	RegistrationUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:registration_updated_at" json:"registration_updated_at"`
	RegistrationDeletedAt gorm.DeletedAt `gorm:"column:registration_deleted_at"                                                        json:"registration_deleted_at,omitempty"`
}

func (EventRegistrationModel) TableName() string { return "event_registrations" }

// OccurrenceKeys membaca daftar kunci cakupan (mode custom).
func (m EventRegistrationModel) OccurrenceKeys() ([]occModel.Key, error) {
	if len(m.RegistrationOccurrences) == 0 {
		return nil, nil
	}
	var raw []string
	if err := json.Unmarshal(m.RegistrationOccurrences, &raw); err != nil {
		return nil, err
	}
	keys := make([]occModel.Key, 0, len(raw))
	for _, s := range raw {
		k, err := occModel.ParseKey(s)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// CoversOccurrence true bila registrasi ini tercakup pada occurrence key.
// Mode all berlaku untuk semua occurrence event-nya.
func (m EventRegistrationModel) CoversOccurrence(key occModel.Key) bool {
	if m.RegistrationScopeMode == ScopeAll {
		return true
	}
	keys, err := m.OccurrenceKeys()
	if err != nil {
		return false
	}
	for _, k := range keys {
		if k.Equal(key) {
			return true
		}
	}
	return false
}

// MarkFor membaca mark absensi untuk satu occurrence (default pending).
func (m EventRegistrationModel) MarkFor(key occModel.Key) AttendanceMark {
	if m.RegistrationAttendance == nil {
		return MarkPending
	}
	v, ok := m.RegistrationAttendance[key.String()]
	if !ok {
		return MarkPending
	}
	s, _ := v.(string)
	switch AttendanceMark(s) {
	case MarkPresent:
		return MarkPresent
	case MarkAbsent:
		return MarkAbsent
	}
	return MarkPending
}
