// file: internals/features/events/events/dto/event_dto.go
package dto

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	m "komunitas_backend/internals/features/events/events/model"
	svc "komunitas_backend/internals/features/events/events/service"
	"komunitas_backend/internals/features/events/schedule"
)

/* =========================================================
   PATCH FIELD — tri-state (absent | null | value)
   ========================================================= */

type PatchField[T any] struct {
	Present bool
	Value   *T
}

func (p *PatchField[T]) UnmarshalJSON(b []byte) error {
	p.Present = true
	if string(b) == "null" {
		p.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	p.Value = &v
	return nil
}

func (p PatchField[T]) Get() (*T, bool) { return p.Value, p.Present }

/* =========================================================
   CREATE
   ========================================================= */

type CreateEventRequest struct {
	Title string  `json:"event_title" validate:"required,min=1,max=160"`
	Desc  *string `json:"event_desc"`
	Type  string  `json:"event_type"  validate:"omitempty,oneof=single_session series"`

	LocationID *uuid.UUID `json:"event_location_id"`
	Price      *float64   `json:"event_price" validate:"omitempty,gte=0"`

	Schedule        schedule.Spec       `json:"event_schedule"`
	RecurrenceUntil *schedule.CivilDate `json:"event_recurrence_until"`

	CapacityTotal           int `json:"event_capacity_total"            validate:"gte=0"`
	CapacityWaitlist        int `json:"event_capacity_waitlist"         validate:"gte=0"`
	CapacityNotifyThreshold int `json:"event_capacity_notify_threshold" validate:"gte=0"`
}

func (r *CreateEventRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	if r.Desc != nil {
		v := strings.TrimSpace(*r.Desc)
		if v == "" {
			r.Desc = nil
		} else {
			r.Desc = &v
		}
	}
	if r.Type == "" {
		r.Type = string(m.EventSeries)
	}
}

func (r CreateEventRequest) ToModel() (*m.EventModel, error) {
	if err := r.Schedule.Validate(); err != nil {
		return nil, err
	}
	raw, err := json.Marshal(r.Schedule)
	if err != nil {
		return nil, err
	}

	mm := &m.EventModel{
		EventTitle:                   r.Title,
		EventDesc:                    r.Desc,
		EventType:                    m.EventType(r.Type),
		EventLocationID:              r.LocationID,
		EventPrice:                   r.Price,
		EventScheduleMode:            string(r.Schedule.Mode),
		EventSchedule:                raw,
		EventCapacityTotal:           r.CapacityTotal,
		EventCapacityWaitlist:        r.CapacityWaitlist,
		EventCapacityNotifyThreshold: r.CapacityNotifyThreshold,
		EventIsActive:                true,
	}
	if r.RecurrenceUntil != nil {
		until := r.RecurrenceUntil.Time
		mm.EventRecurrenceUntil = &until
	}
	return mm, nil
}

/* =========================================================
   PATCH
   ========================================================= */

type UpdateEventRequest struct {
	Title *string `json:"event_title" validate:"omitempty,min=1,max=160"`
	Desc  *string `json:"event_desc"`
	Type  *string `json:"event_type"  validate:"omitempty,oneof=single_session series"`

	LocationID *uuid.UUID `json:"event_location_id"`
	Price      *float64   `json:"event_price" validate:"omitempty,gte=0"`
	IsActive   *bool      `json:"event_is_active"`

	Schedule *schedule.Spec `json:"event_schedule"`

	// null eksplisit menghapus batas recurrence; field absen = tidak diubah
	RecurrenceUntil PatchField[schedule.CivilDate] `json:"event_recurrence_until"`

	CapacityTotal           *int `json:"event_capacity_total"            validate:"omitempty,gte=0"`
	CapacityWaitlist        *int `json:"event_capacity_waitlist"         validate:"omitempty,gte=0"`
	CapacityNotifyThreshold *int `json:"event_capacity_notify_threshold" validate:"omitempty,gte=0"`
}

func (r *UpdateEventRequest) Normalize() {
	if r.Title != nil {
		v := strings.TrimSpace(*r.Title)
		r.Title = &v
	}
	if r.Desc != nil {
		v := strings.TrimSpace(*r.Desc)
		r.Desc = &v
	}
}

func (r UpdateEventRequest) ToChanges() svc.PatchChanges {
	c := svc.PatchChanges{
		Title:                   r.Title,
		Desc:                    r.Desc,
		LocationID:              r.LocationID,
		Price:                   r.Price,
		IsActive:                r.IsActive,
		Schedule:                r.Schedule,
		CapacityTotal:           r.CapacityTotal,
		CapacityWaitlist:        r.CapacityWaitlist,
		CapacityNotifyThreshold: r.CapacityNotifyThreshold,
	}
	if r.Type != nil {
		t := m.EventType(*r.Type)
		c.Type = &t
	}
	if v, present := r.RecurrenceUntil.Get(); present {
		if v == nil {
			c.ClearRecurrenceUntil = true
		} else {
			until := v.Time
			c.RecurrenceUntil = &until
		}
	}
	return c
}

/* =========================================================
   RESPONSE
   ========================================================= */

type EventResponse struct {
	EventID    uuid.UUID   `json:"event_id"`
	Title      string      `json:"event_title"`
	Desc       *string     `json:"event_desc,omitempty"`
	Type       m.EventType `json:"event_type"`
	LocationID *uuid.UUID  `json:"event_location_id,omitempty"`
	Price      *float64    `json:"event_price,omitempty"`

	ScheduleMode    string          `json:"event_schedule_mode"`
	Schedule        json.RawMessage `json:"event_schedule"`
	RecurrenceUntil *time.Time      `json:"event_recurrence_until,omitempty"`

	CapacityTotal           int  `json:"event_capacity_total"`
	CapacityWaitlist        int  `json:"event_capacity_waitlist"`
	CapacityNotifyThreshold int  `json:"event_capacity_notify_threshold"`
	CapacityNotified        bool `json:"event_capacity_notified"`

	IsActive  bool      `json:"event_is_active"`
	CreatedAt time.Time `json:"event_created_at"`
	UpdatedAt time.Time `json:"event_updated_at"`
}

func FromModel(ev *m.EventModel) EventResponse {
	return EventResponse{
		EventID:                 ev.EventID,
		Title:                   ev.EventTitle,
		Desc:                    ev.EventDesc,
		Type:                    ev.EventType,
		LocationID:              ev.EventLocationID,
		Price:                   ev.EventPrice,
		ScheduleMode:            ev.EventScheduleMode,
		Schedule:                json.RawMessage(ev.EventSchedule),
		RecurrenceUntil:         ev.EventRecurrenceUntil,
		CapacityTotal:           ev.EventCapacityTotal,
		CapacityWaitlist:        ev.EventCapacityWaitlist,
		CapacityNotifyThreshold: ev.EventCapacityNotifyThreshold,
		CapacityNotified:        ev.EventCapacityNotified,
		IsActive:                ev.EventIsActive,
		CreatedAt:               ev.EventCreatedAt,
		UpdatedAt:               ev.EventUpdatedAt,
	}
}

func FromModels(rows []m.EventModel) []EventResponse {
	out := make([]EventResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}
