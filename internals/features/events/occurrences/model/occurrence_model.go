// file: internals/features/events/occurrences/model/occurrence_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* ===================== Enums ===================== */

type OccurrenceStatus string

const (
	OccurrenceActive    OccurrenceStatus = "active"
	OccurrenceCancelled OccurrenceStatus = "cancelled"
)

type OccurrenceSource string

const (
	SourceCompiled OccurrenceSource = "compiled"
	SourceManual   OccurrenceSource = "manual"
)

/* ===================== Model ===================== */

// EventOccurrenceModel satu jendela waktu konkret milik sebuah event.
// Tidak pernah dihapus fisik oleh rekonsiliasi; hanya status yang berubah,
// supaya registrasi/absensi yang sudah menunjuk ke sini tetap utuh.
type EventOccurrenceModel struct {
	OccurrenceID      uuid.UUID        `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:occurrence_id"       json:"occurrence_id"`
	OccurrenceEventID uuid.UUID        `gorm:"type:uuid;not null;index;column:occurrence_event_id"                        json:"occurrence_event_id"`
	OccurrenceStartAt time.Time        `gorm:"type:timestamptz;not null;column:occurrence_start_at"                       json:"occurrence_start_at"`
	OccurrenceEndAt   time.Time        `gorm:"type:timestamptz;not null;column:occurrence_end_at"                         json:"occurrence_end_at"`
	OccurrenceStatus  OccurrenceStatus `gorm:"type:varchar(16);not null;default:'active';column:occurrence_status"        json:"occurrence_status"`
	OccurrenceSource  OccurrenceSource `gorm:"type:varchar(16);not null;default:'compiled';column:occurrence_source"      json:"occurrence_source"`

	OccurrenceCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:occurrence_created_at" json:"occurrence_created_at"`
	OccurrenceUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:occurrence_updated_at" json:"occurrence_updated_at"`
}

func (EventOccurrenceModel) TableName() string { return "event_occurrences" }

// Key mengembalikan kunci kanonik occurrence ini.
func (m EventOccurrenceModel) Key() Key { return NewKey(m.OccurrenceStartAt) }

// IsActive true bila occurrence masih berlaku.
func (m EventOccurrenceModel) IsActive() bool { return m.OccurrenceStatus == OccurrenceActive }
