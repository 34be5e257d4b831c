// file: internals/features/events/events/model/event_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* ===================== Enums (Go-side) ===================== */

// EventType menentukan cakupan registrasi peserta:
//   - single_session: peserta wajib memilih tepat satu occurrence
//   - series: satu registrasi berlaku untuk seluruh rangkaian
type EventType string

const (
	EventSingleSession EventType = "single_session"
	EventSeries        EventType = "series"
)

/* ===================== Model ===================== */

type EventModel struct {
	EventID    uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:event_id"       json:"event_id"`
	EventTitle string    `gorm:"type:varchar(160);not null;column:event_title"                         json:"event_title"`
	EventDesc  *string   `gorm:"type:text;column:event_desc"                                           json:"event_desc,omitempty"`
	EventType  EventType `gorm:"type:varchar(20);not null;default:'series';column:event_type"          json:"event_type"`

	// Referensi tampilan (bukan bagian logika inti)
	EventLocationID *uuid.UUID `gorm:"type:uuid;column:event_location_id"                               json:"event_location_id,omitempty"`
	EventPrice      *float64   `gorm:"type:numeric(12,2);column:event_price"                            json:"event_price,omitempty"`

	// Jadwal deklaratif (union bertipe, disimpan JSONB; lihat schedule.Spec)
	EventScheduleMode    string         `gorm:"type:varchar(16);not null;column:event_schedule_mode"    json:"event_schedule_mode"`
	EventSchedule        datatypes.JSON `gorm:"type:jsonb;not null;column:event_schedule"               json:"event_schedule"`
	EventRecurrenceUntil *time.Time     `gorm:"type:date;column:event_recurrence_until"                 json:"event_recurrence_until,omitempty"`

	// Kapasitas (0 = tanpa batas / tanpa waitlist / notifikasi mati)
	EventCapacityTotal           int  `gorm:"type:int;not null;default:0;column:event_capacity_total"             json:"event_capacity_total"`
	EventCapacityWaitlist        int  `gorm:"type:int;not null;default:0;column:event_capacity_waitlist"          json:"event_capacity_waitlist"`
	EventCapacityNotifyThreshold int  `gorm:"type:int;not null;default:0;column:event_capacity_notify_threshold"  json:"event_capacity_notify_threshold"`
	EventCapacityNotified        bool `gorm:"not null;default:false;column:event_capacity_notified"               json:"event_capacity_notified"`

	EventIsActive bool `gorm:"not null;default:true;column:event_is_active"                             json:"event_is_active"`

	// Audit
	EventCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:event_created_at" json:"event_created_at"`
	EventUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:event_updated_at" json:"event_updated_at"`
	EventDeletedAt gorm.DeletedAt `gorm:"column:event_deleted_at"                                                        json:"event_deleted_at,omitempty"`
}

func (EventModel) TableName() string { return "events" }

// HasCapacityLimit true bila kapasitas terbatas.
func (m EventModel) HasCapacityLimit() bool { return m.EventCapacityTotal > 0 }

// RequiresSingleOccurrence true bila registrasi wajib menunjuk satu occurrence.
func (m EventModel) RequiresSingleOccurrence() bool { return m.EventType == EventSingleSession }
