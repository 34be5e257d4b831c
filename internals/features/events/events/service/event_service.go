// file: internals/features/events/events/service/event_service.go
package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	attService "komunitas_backend/internals/features/events/attendance/service"
	eventModel "komunitas_backend/internals/features/events/events/model"
	notifierService "komunitas_backend/internals/features/events/notifier/service"
	occModel "komunitas_backend/internals/features/events/occurrences/model"
	occService "komunitas_backend/internals/features/events/occurrences/service"
	regService "komunitas_backend/internals/features/events/registrations/service"
	locModel "komunitas_backend/internals/features/membership/locations/model"
	"komunitas_backend/internals/features/events/schedule"
)

var ErrNotFound = errors.New("event tidak ditemukan")

type EventService struct {
	occurrences *occService.OccurrenceService
	notifier    *notifierService.CapacityNotifier
	tz          *time.Location
}

func NewEventService(occ *occService.OccurrenceService, notifier *notifierService.CapacityNotifier, tz *time.Location) *EventService {
	if tz == nil {
		tz = time.UTC
	}
	return &EventService{occurrences: occ, notifier: notifier, tz: tz}
}

/* =========================
   Create / Patch
   ========================= */

// Create memvalidasi jadwal, menyimpan event, lalu langsung merekonsiliasi
// occurrence hasil kompilasi dalam satu transaksi, tanpa state parsial.
func (s *EventService) Create(db *gorm.DB, ev *eventModel.EventModel) error {
	spec, err := s.decodeSpec(ev)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(ev).Error; err != nil {
			return err
		}
		return s.reconcileSchedule(tx, ev, spec)
	})
}

// PatchChanges memuat perubahan parsial; nil = tidak diubah.
type PatchChanges struct {
	Title      *string
	Desc       *string
	Type       *eventModel.EventType
	LocationID *uuid.UUID
	Price      *float64
	IsActive   *bool

	ScheduleMode         *string
	Schedule             *schedule.Spec
	RecurrenceUntil      *time.Time
	ClearRecurrenceUntil bool // set NULL (hapus batas recurrence)

	CapacityTotal           *int
	CapacityWaitlist        *int
	CapacityNotifyThreshold *int
}

func (c PatchChanges) touchesSchedule() bool {
	return c.Schedule != nil || c.RecurrenceUntil != nil || c.ClearRecurrenceUntil
}

func (c PatchChanges) touchesNotifyConfig() bool {
	return c.CapacityTotal != nil || c.CapacityNotifyThreshold != nil
}

// Patch menerapkan perubahan. Edit jadwal memicu kompilasi+rekonsiliasi;
// edit capacity_total/notify_threshold mereset latch notifikasi lalu
// mengevaluasinya ulang. Semuanya di bawah lock baris event.
func (s *EventService) Patch(db *gorm.DB, eventID uuid.UUID, c PatchChanges) (*eventModel.EventModel, error) {
	var out *eventModel.EventModel

	err := db.Transaction(func(tx *gorm.DB) error {
		var ev eventModel.EventModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("event_id = ?", eventID).
			First(&ev).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		updates := map[string]any{}
		if c.Title != nil {
			updates["event_title"] = *c.Title
		}
		if c.Desc != nil {
			updates["event_desc"] = *c.Desc
		}
		if c.Type != nil {
			updates["event_type"] = *c.Type
		}
		if c.LocationID != nil {
			updates["event_location_id"] = *c.LocationID
		}
		if c.Price != nil {
			updates["event_price"] = *c.Price
		}
		if c.IsActive != nil {
			updates["event_is_active"] = *c.IsActive
		}
		if c.Schedule != nil {
			if err := c.Schedule.Validate(); err != nil {
				return err
			}
			raw, err := json.Marshal(c.Schedule)
			if err != nil {
				return err
			}
			updates["event_schedule_mode"] = string(c.Schedule.Mode)
			updates["event_schedule"] = raw
		}
		if c.ClearRecurrenceUntil {
			updates["event_recurrence_until"] = nil
		} else if c.RecurrenceUntil != nil {
			updates["event_recurrence_until"] = *c.RecurrenceUntil
		}
		if c.CapacityTotal != nil {
			updates["event_capacity_total"] = *c.CapacityTotal
		}
		if c.CapacityWaitlist != nil {
			updates["event_capacity_waitlist"] = *c.CapacityWaitlist
		}
		if c.CapacityNotifyThreshold != nil {
			updates["event_capacity_notify_threshold"] = *c.CapacityNotifyThreshold
		}

		if len(updates) > 0 {
			if err := tx.Model(&ev).Updates(updates).Error; err != nil {
				return err
			}
			if err := tx.Where("event_id = ?", eventID).First(&ev).Error; err != nil {
				return err
			}
		}

		if c.touchesSchedule() {
			spec, err := s.decodeSpec(&ev)
			if err != nil {
				return err
			}
			if err := s.reconcileSchedule(tx, &ev, spec); err != nil {
				return err
			}
		}

		if c.touchesNotifyConfig() {
			// konfigurasi berubah → latch one-shot dipersenjatai ulang
			if err := s.notifier.ResetLatch(tx, &ev); err != nil {
				return err
			}
			activeCount, _, err := regService.CountsForEvent(tx, eventID)
			if err != nil {
				return err
			}
			if err := s.notifier.Evaluate(tx, &ev, activeCount); err != nil {
				return err
			}
		}

		out = &ev
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *EventService) decodeSpec(ev *eventModel.EventModel) (schedule.Spec, error) {
	var spec schedule.Spec
	if err := json.Unmarshal(ev.EventSchedule, &spec); err != nil {
		return spec, fmt.Errorf("%w: %v", schedule.ErrInvalidSchedule, err)
	}
	if err := spec.Validate(); err != nil {
		return spec, err
	}
	return spec, nil
}

func (s *EventService) reconcileSchedule(tx *gorm.DB, ev *eventModel.EventModel, spec schedule.Spec) error {
	windows, err := schedule.Compile(spec, ev.EventRecurrenceUntil, schedule.DefaultOccurrenceLimit, s.tz)
	if err != nil {
		return err
	}
	return s.occurrences.Reconcile(tx, ev.EventID, windows)
}

/* =========================
   Queries
   ========================= */

func (s *EventService) GetByID(db *gorm.DB, eventID uuid.UUID) (*eventModel.EventModel, error) {
	var ev eventModel.EventModel
	err := db.Where("event_id = ?", eventID).First(&ev).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

func (s *EventService) List(db *gorm.DB, offset, limit int) ([]eventModel.EventModel, int64, error) {
	var total int64
	if err := db.Model(&eventModel.EventModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []eventModel.EventModel
	if err := db.Order("event_created_at DESC").
		Offset(offset).Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// Delete soft-delete event (occurrence & registrasi tetap untuk riwayat).
func (s *EventService) Delete(db *gorm.DB, eventID uuid.UUID) error {
	res := db.Where("event_id = ?", eventID).Delete(&eventModel.EventModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

/* =========================
   Capacity counters
   ========================= */

type CapacityView struct {
	Active    int  `json:"active"`
	Waitlist  int  `json:"waitlist"`
	Remaining *int `json:"remaining,omitempty"` // nil bila tanpa batas
	Notified  bool `json:"notified"`
}

func (s *EventService) Capacity(db *gorm.DB, eventID uuid.UUID) (*CapacityView, error) {
	ev, err := s.GetByID(db, eventID)
	if err != nil {
		return nil, err
	}
	active, waitlist, err := regService.CountsForEvent(db, eventID)
	if err != nil {
		return nil, err
	}

	view := CapacityView{Active: active, Waitlist: waitlist, Notified: ev.EventCapacityNotified}
	if ev.HasCapacityLimit() {
		remaining := ev.EventCapacityTotal - active
		if remaining < 0 {
			remaining = 0
		}
		view.Remaining = &remaining
	}
	return &view, nil
}

/* =========================
   Summary view (§ tampilan admin & peserta)
   ========================= */

type SummaryMeta struct {
	TypeLabel     string `json:"typeLabel"`
	DateLabel     string `json:"dateLabel"`
	LocationLabel string `json:"locationLabel"`
	PriceLabel    string `json:"priceLabel"`
}

type SummaryOccurrence struct {
	Key    occModel.Key       `json:"key"`
	Label  string             `json:"label"`
	Counts attService.Summary `json:"counts"`
}

type SummaryView struct {
	ParticipantsCount int                 `json:"participantsCount"`
	Conditions        []string            `json:"conditions"`
	Meta              SummaryMeta         `json:"meta"`
	Occurrences       []SummaryOccurrence `json:"occurrences"`
	DefaultOccurrence *occModel.Key       `json:"defaultOccurrence,omitempty"`
}

func (s *EventService) Summary(db *gorm.DB, eventID uuid.UUID) (*SummaryView, error) {
	ev, err := s.GetByID(db, eventID)
	if err != nil {
		return nil, err
	}

	active, waitlist, err := regService.CountsForEvent(db, eventID)
	if err != nil {
		return nil, err
	}

	occs, err := s.occurrences.GetByEvent(db, eventID, true)
	if err != nil {
		return nil, err
	}

	view := SummaryView{
		ParticipantsCount: active,
		Conditions:        buildConditions(ev, waitlist),
		Meta: SummaryMeta{
			TypeLabel:     typeLabel(ev.EventType),
			DateLabel:     s.dateLabel(ev),
			LocationLabel: s.locationLabel(db, ev),
			PriceLabel:    priceLabel(ev.EventPrice),
		},
	}

	now := time.Now()
	for _, o := range occs {
		if !o.IsActive() {
			continue
		}
		key := o.Key()
		regs, err := regService.ActiveScopedToKey(db, eventID, key)
		if err != nil {
			return nil, err
		}
		view.Occurrences = append(view.Occurrences, SummaryOccurrence{
			Key:    key,
			Label:  o.OccurrenceStartAt.In(s.tz).Format("Mon, 02 Jan 2006 15:04"),
			Counts: attService.SummarizeMarks(regs, key),
		})
		if view.DefaultOccurrence == nil && o.OccurrenceEndAt.After(now) {
			k := key
			view.DefaultOccurrence = &k
		}
	}
	// semua occurrence sudah lewat → pakai yang pertama
	if view.DefaultOccurrence == nil && len(view.Occurrences) > 0 {
		view.DefaultOccurrence = &view.Occurrences[0].Key
	}

	return &view, nil
}

func buildConditions(ev *eventModel.EventModel, waitlist int) []string {
	conditions := []string{}
	if ev.HasCapacityLimit() {
		conditions = append(conditions, fmt.Sprintf("Kuota %d peserta", ev.EventCapacityTotal))
		if ev.EventCapacityWaitlist > 0 {
			conditions = append(conditions, fmt.Sprintf("Waitlist maksimal %d (terisi %d)", ev.EventCapacityWaitlist, waitlist))
		}
	}
	if ev.RequiresSingleOccurrence() {
		conditions = append(conditions, "Wajib memilih satu sesi")
	}
	return conditions
}

func typeLabel(t eventModel.EventType) string {
	if t == eventModel.EventSingleSession {
		return "Sesi tunggal"
	}
	return "Rangkaian"
}

func (s *EventService) dateLabel(ev *eventModel.EventModel) string {
	var spec schedule.Spec
	if err := json.Unmarshal(ev.EventSchedule, &spec); err != nil {
		return ""
	}
	switch spec.Mode {
	case schedule.ModeFixed:
		if spec.Fixed == nil {
			return ""
		}
		return spec.Fixed.Date.Format("02 Jan 2006")
	case schedule.ModeRange:
		if spec.Range == nil {
			return ""
		}
		return fmt.Sprintf("%s – %s",
			spec.Range.Start.In(s.tz).Format("02 Jan 2006"),
			spec.Range.End.In(s.tz).Format("02 Jan 2006"))
	case schedule.ModeRecurring:
		if spec.Recurring == nil {
			return ""
		}
		if spec.Recurring.Frequency == schedule.FreqWeekly {
			return "Berulang mingguan"
		}
		return "Berulang bulanan"
	}
	return ""
}

func (s *EventService) locationLabel(db *gorm.DB, ev *eventModel.EventModel) string {
	if ev.EventLocationID == nil {
		return ""
	}
	var loc locModel.LocationModel
	if err := db.Where("location_id = ?", *ev.EventLocationID).First(&loc).Error; err != nil {
		return ""
	}
	return loc.LocationName
}

func priceLabel(price *float64) string {
	if price == nil || *price <= 0 {
		return "Gratis"
	}
	return fmt.Sprintf("Rp %.0f", *price)
}
