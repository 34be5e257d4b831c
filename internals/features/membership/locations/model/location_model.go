// file: internals/features/membership/locations/model/location_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ===================== Model ===================== */

// LocationModel adalah referensi tempat; event menunjuk ke sini lewat
// event_location_id untuk label tampilan.
type LocationModel struct {
	LocationID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:location_id" json:"location_id"`
	LocationName    string    `gorm:"type:varchar(160);not null;column:location_name"                    json:"location_name"`
	LocationAddress *string   `gorm:"type:text;column:location_address"                                  json:"location_address,omitempty"`
	LocationCity    *string   `gorm:"type:varchar(80);column:location_city"                              json:"location_city,omitempty"`

	// Audit
	LocationCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:location_created_at" json:"location_created_at"`
	LocationUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:location_updated_at" json:"location_updated_at"`
	LocationDeletedAt gorm.DeletedAt `gorm:"column:location_deleted_at"                                                        json:"location_deleted_at,omitempty"`
}

func (LocationModel) TableName() string { return "locations" }
