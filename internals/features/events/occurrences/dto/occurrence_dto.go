// file: internals/features/events/occurrences/dto/occurrence_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "komunitas_backend/internals/features/events/occurrences/model"
)

/* =========================================================
   CREATE (manual occurrence)
   ========================================================= */

type CreateOccurrenceRequest struct {
	StartAt time.Time `json:"occurrence_start_at" validate:"required"`
	EndAt   time.Time `json:"occurrence_end_at"   validate:"required"`
}

/* =========================================================
   RESPONSE
   ========================================================= */

type OccurrenceResponse struct {
	OccurrenceID uuid.UUID `json:"occurrence_id"`
	EventID      uuid.UUID `json:"event_id"`
	Key          m.Key     `json:"occurrence_key"`
	StartAt      time.Time `json:"occurrence_start_at"`
	EndAt        time.Time `json:"occurrence_end_at"`
	Status       string    `json:"occurrence_status"`
	Source       string    `json:"occurrence_source"`
	CreatedAt    time.Time `json:"occurrence_created_at"`
	UpdatedAt    time.Time `json:"occurrence_updated_at"`
}

func FromModel(o *m.EventOccurrenceModel) OccurrenceResponse {
	return OccurrenceResponse{
		OccurrenceID: o.OccurrenceID,
		EventID:      o.OccurrenceEventID,
		Key:          o.Key(),
		StartAt:      o.OccurrenceStartAt,
		EndAt:        o.OccurrenceEndAt,
		Status:       string(o.OccurrenceStatus),
		Source:       string(o.OccurrenceSource),
		CreatedAt:    o.OccurrenceCreatedAt,
		UpdatedAt:    o.OccurrenceUpdatedAt,
	}
}

func FromModels(rows []m.EventOccurrenceModel) []OccurrenceResponse {
	out := make([]OccurrenceResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}
