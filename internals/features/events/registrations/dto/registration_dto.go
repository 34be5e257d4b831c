// file: internals/features/events/registrations/dto/registration_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	occModel "komunitas_backend/internals/features/events/occurrences/model"
	m "komunitas_backend/internals/features/events/registrations/model"
	svc "komunitas_backend/internals/features/events/registrations/service"
)

/* =========================================================
   CREATE
   ========================================================= */

type CreateRegistrationRequest struct {
	EventID    uuid.UUID  `json:"registration_event_id"    validate:"required"`
	MemberID   uuid.UUID  `json:"registration_member_id"   validate:"required"`
	GuardianID *uuid.UUID `json:"registration_guardian_id"`
	Notes      *string    `json:"registration_notes"`

	// Wajib untuk event single_session; kunci kanonik occurrence
	OccurrenceKey *occModel.Key `json:"registration_occurrence_key"`
}

func (r *CreateRegistrationRequest) Normalize() {
	if r.Notes != nil {
		v := strings.TrimSpace(*r.Notes)
		if v == "" {
			r.Notes = nil
		} else {
			r.Notes = &v
		}
	}
}

func (r CreateRegistrationRequest) ToInput() svc.CreateInput {
	return svc.CreateInput{
		EventID:       r.EventID,
		MemberID:      r.MemberID,
		GuardianID:    r.GuardianID,
		Notes:         r.Notes,
		OccurrenceKey: r.OccurrenceKey,
	}
}

/* =========================================================
   UPDATE STATUS
   ========================================================= */

type UpdateStatusRequest struct {
	Status string `json:"registration_status" validate:"required,oneof=pending confirmed waitlist cancelled"`
}

/* =========================================================
   RESPONSE
   ========================================================= */

type RegistrationResponse struct {
	RegistrationID uuid.UUID  `json:"registration_id"`
	EventID        uuid.UUID  `json:"registration_event_id"`
	MemberID       uuid.UUID  `json:"registration_member_id"`
	GuardianID     *uuid.UUID `json:"registration_guardian_id,omitempty"`

	Status    m.RegistrationStatus `json:"registration_status"`
	ScopeMode m.ScopeMode          `json:"registration_scope_mode"`

	OccurrenceKeys []string               `json:"registration_occurrence_keys,omitempty"`
	Attendance     map[string]interface{} `json:"registration_attendance,omitempty"`

	Notes     *string   `json:"registration_notes,omitempty"`
	CreatedAt time.Time `json:"registration_created_at"`
	UpdatedAt time.Time `json:"registration_updated_at"`
}

func FromModel(r *m.EventRegistrationModel) RegistrationResponse {
	resp := RegistrationResponse{
		RegistrationID: r.RegistrationID,
		EventID:        r.RegistrationEventID,
		MemberID:       r.RegistrationMemberID,
		GuardianID:     r.RegistrationGuardianID,
		Status:         r.RegistrationStatus,
		ScopeMode:      r.RegistrationScopeMode,
		Attendance:     r.RegistrationAttendance,
		Notes:          r.RegistrationNotes,
		CreatedAt:      r.RegistrationCreatedAt,
		UpdatedAt:      r.RegistrationUpdatedAt,
	}
	if keys, err := r.OccurrenceKeys(); err == nil {
		for _, k := range keys {
			resp.OccurrenceKeys = append(resp.OccurrenceKeys, k.String())
		}
	}
	return resp
}

func FromModels(rows []m.EventRegistrationModel) []RegistrationResponse {
	out := make([]RegistrationResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}
