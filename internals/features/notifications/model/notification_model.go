// file: internals/features/notifications/model/notification_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* ===================== Model ===================== */

// NotificationModel adalah antrean logis notifikasi; pengiriman nyata
// (email/SMS) dilakukan kolaborator eksternal yang membaca tabel ini.
type NotificationModel struct {
	NotificationID      uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:notification_id" json:"notification_id"`
	NotificationKind    string         `gorm:"type:varchar(40);not null;index;column:notification_kind"              json:"notification_kind"`
	NotificationEventID *uuid.UUID     `gorm:"type:uuid;index;column:notification_event_id"                          json:"notification_event_id,omitempty"`
	NotificationPayload datatypes.JSON `gorm:"type:jsonb;column:notification_payload"                                json:"notification_payload,omitempty"`
	NotificationSentAt  *time.Time     `gorm:"type:timestamptz;column:notification_sent_at"                          json:"notification_sent_at,omitempty"`

	NotificationCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:notification_created_at" json:"notification_created_at"`
}

func (NotificationModel) TableName() string { return "notifications" }
