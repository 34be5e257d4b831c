// file: internals/features/events/occurrences/service/reconcile.go
package service

import (
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	occModel "komunitas_backend/internals/features/events/occurrences/model"
	"komunitas_backend/internals/features/events/schedule"
)

var ErrNotFound = errors.New("occurrence tidak ditemukan")

/* =========================
   Plan (murni, gampang dites)
   ========================= */

// ReconcilePlan hasil diff antara occurrence tersimpan dan hasil kompilasi.
type ReconcilePlan struct {
	ToInsert     []schedule.Window
	ToCancel     []uuid.UUID // compiled aktif yang tidak lagi dihasilkan jadwal
	ToReactivate []uuid.UUID // compiled cancelled yang muncul lagi di jadwal
}

func (p ReconcilePlan) Empty() bool {
	return len(p.ToInsert) == 0 && len(p.ToCancel) == 0 && len(p.ToReactivate) == 0
}

type windowKey struct {
	start int64
	end   int64
}

func keyOf(start, end time.Time) windowKey {
	return windowKey{start: start.UTC().Truncate(time.Second).Unix(), end: end.UTC().Truncate(time.Second).Unix()}
}

// BuildReconcilePlan mencocokkan occurrence tersimpan dengan window hasil
// kompilasi berdasarkan (start_at, end_at).
//
//   - window baru → insert (active, source=compiled)
//   - compiled aktif tanpa pasangan → cancel (bukan delete; riwayat
//     registrasi/absensi tetap bisa menunjuk ke sana)
//   - compiled cancelled yang windownya muncul lagi → reactivate
//   - occurrence manual tidak pernah disentuh rekonsiliasi
func BuildReconcilePlan(existing []occModel.EventOccurrenceModel, compiled []schedule.Window) ReconcilePlan {
	var plan ReconcilePlan

	byWindow := make(map[windowKey]*occModel.EventOccurrenceModel, len(existing))
	for i := range existing {
		o := &existing[i]
		byWindow[keyOf(o.OccurrenceStartAt, o.OccurrenceEndAt)] = o
	}

	matched := make(map[windowKey]bool, len(compiled))
	for _, w := range compiled {
		wk := keyOf(w.Start, w.End)
		if matched[wk] {
			continue // jadwal menghasilkan window kembar, cukup satu
		}
		matched[wk] = true

		o, ok := byWindow[wk]
		if !ok {
			plan.ToInsert = append(plan.ToInsert, w)
			continue
		}
		if o.OccurrenceSource == occModel.SourceCompiled && o.OccurrenceStatus == occModel.OccurrenceCancelled {
			plan.ToReactivate = append(plan.ToReactivate, o.OccurrenceID)
		}
	}

	for wk, o := range byWindow {
		if matched[wk] {
			continue
		}
		if o.OccurrenceSource != occModel.SourceCompiled {
			continue // manual tidak di-cancel otomatis
		}
		if o.OccurrenceStatus == occModel.OccurrenceActive {
			plan.ToCancel = append(plan.ToCancel, o.OccurrenceID)
		}
	}

	return plan
}

/* =========================
   Service
   ========================= */

type OccurrenceService struct{}

func NewOccurrenceService() *OccurrenceService { return &OccurrenceService{} }

// Reconcile menerapkan plan untuk satu event di dalam transaksi pemanggil.
// Caller wajib sudah memegang lock baris event (serialisasi per event)
// supaya tidak balapan dengan pembuatan registrasi yang menunjuk occurrence.
func (s *OccurrenceService) Reconcile(tx *gorm.DB, eventID uuid.UUID, compiled []schedule.Window) error {
	var existing []occModel.EventOccurrenceModel
	if err := tx.
		Where("occurrence_event_id = ?", eventID).
		Find(&existing).Error; err != nil {
		return err
	}

	plan := BuildReconcilePlan(existing, compiled)
	if plan.Empty() {
		return nil
	}

	for _, w := range plan.ToInsert {
		row := occModel.EventOccurrenceModel{
			OccurrenceEventID: eventID,
			OccurrenceStartAt: w.Start,
			OccurrenceEndAt:   w.End,
			OccurrenceStatus:  occModel.OccurrenceActive,
			OccurrenceSource:  occModel.SourceCompiled,
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}

	if len(plan.ToCancel) > 0 {
		if err := tx.Model(&occModel.EventOccurrenceModel{}).
			Where("occurrence_id IN ?", plan.ToCancel).
			Update("occurrence_status", occModel.OccurrenceCancelled).Error; err != nil {
			return err
		}
	}

	if len(plan.ToReactivate) > 0 {
		if err := tx.Model(&occModel.EventOccurrenceModel{}).
			Where("occurrence_id IN ?", plan.ToReactivate).
			Update("occurrence_status", occModel.OccurrenceActive).Error; err != nil {
			return err
		}
	}

	log.Printf("[OCCURRENCE] reconcile event=%s insert=%d cancel=%d reactivate=%d",
		eventID, len(plan.ToInsert), len(plan.ToCancel), len(plan.ToReactivate))
	return nil
}

// GetByEvent mengembalikan occurrence milik event, urut kronologis.
func (s *OccurrenceService) GetByEvent(db *gorm.DB, eventID uuid.UUID, includePast bool) ([]occModel.EventOccurrenceModel, error) {
	q := db.Where("occurrence_event_id = ?", eventID)
	if !includePast {
		q = q.Where("occurrence_end_at >= ?", time.Now())
	}

	var rows []occModel.EventOccurrenceModel
	if err := q.Order("occurrence_start_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// FindActiveByKey mencari occurrence aktif milik event berdasarkan kunci
// kanonik. ErrNotFound bila tidak ada.
func (s *OccurrenceService) FindActiveByKey(db *gorm.DB, eventID uuid.UUID, key occModel.Key) (*occModel.EventOccurrenceModel, error) {
	var row occModel.EventOccurrenceModel
	err := db.
		Where("occurrence_event_id = ? AND occurrence_status = ? AND occurrence_start_at = ?",
			eventID, occModel.OccurrenceActive, key.Time()).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// FindByKey seperti FindActiveByKey tapi ikut occurrence cancelled
// (dipakai validasi absensi atas occurrence yang sudah dibatalkan).
func (s *OccurrenceService) FindByKey(db *gorm.DB, eventID uuid.UUID, key occModel.Key) (*occModel.EventOccurrenceModel, error) {
	var row occModel.EventOccurrenceModel
	err := db.
		Where("occurrence_event_id = ? AND occurrence_start_at = ?", eventID, key.Time()).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// normalizeWindow menyamakan presisi input klien dengan kunci kanonik:
// UTC, dipotong ke detik. Tanpa ini occurrence manual ber-subdetik tidak
// akan pernah cocok dengan Key()-nya sendiri di FindActiveByKey/FindByKey.
func normalizeWindow(start, end time.Time) (time.Time, time.Time) {
	return occModel.NewKey(start).Time(), end.UTC().Truncate(time.Second)
}

// CreateManual menambah occurrence buatan admin (source=manual).
func (s *OccurrenceService) CreateManual(db *gorm.DB, eventID uuid.UUID, start, end time.Time) (*occModel.EventOccurrenceModel, error) {
	start, end = normalizeWindow(start, end)
	if !start.Before(end) {
		return nil, schedule.ErrInvalidSchedule
	}
	row := occModel.EventOccurrenceModel{
		OccurrenceEventID: eventID,
		OccurrenceStartAt: start,
		OccurrenceEndAt:   end,
		OccurrenceStatus:  occModel.OccurrenceActive,
		OccurrenceSource:  occModel.SourceManual,
	}
	if err := db.Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// Cancel menandai satu occurrence cancelled (tidak pernah delete).
func (s *OccurrenceService) Cancel(db *gorm.DB, eventID, occurrenceID uuid.UUID) error {
	res := db.Model(&occModel.EventOccurrenceModel{}).
		Where("occurrence_id = ? AND occurrence_event_id = ?", occurrenceID, eventID).
		Update("occurrence_status", occModel.OccurrenceCancelled)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
