// file: internals/features/events/registrations/service/ledger.go
package service

import (
	"encoding/json"
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	eventModel "komunitas_backend/internals/features/events/events/model"
	notifierService "komunitas_backend/internals/features/events/notifier/service"
	occModel "komunitas_backend/internals/features/events/occurrences/model"
	occService "komunitas_backend/internals/features/events/occurrences/service"
	regModel "komunitas_backend/internals/features/events/registrations/model"
	memberModel "komunitas_backend/internals/features/membership/members/model"
)

/* =========================
   Domain errors
   ========================= */

var (
	ErrNotFound              = errors.New("data tidak ditemukan")
	ErrCapacityExceeded      = errors.New("kuota dan waitlist sudah penuh")
	ErrDuplicateRegistration = errors.New("anggota sudah terdaftar di event ini")
	ErrInvalidOccurrence     = errors.New("occurrence bukan milik event ini")
	ErrInvalidStatus         = errors.New("transisi status tidak diizinkan")
)

/* =========================
   Pure admission & transitions
   ========================= */

// DecideAdmission menentukan status awal registrasi terhadap kapasitas saat
// ini. Harus dipanggil saat baris event sedang terkunci (lihat Create).
//
//   - capacity_total=0        → tanpa batas, masuk pending
//   - masih ada slot aktif    → pending
//   - waitlist tanpa batas / masih muat → waitlist
//   - selain itu              → ErrCapacityExceeded
func DecideAdmission(capacityTotal, capacityWaitlist, activeCount, waitlistCount int) (regModel.RegistrationStatus, error) {
	if capacityTotal == 0 {
		return regModel.StatusPending, nil
	}
	if activeCount < capacityTotal {
		return regModel.StatusPending, nil
	}
	if capacityWaitlist == 0 || waitlistCount < capacityWaitlist {
		return regModel.StatusWaitlist, nil
	}
	return "", ErrCapacityExceeded
}

// CanTransition mengatur state machine registrasi.
// pending → confirmed → cancelled; waitlist → confirmed (promosi manual)
// atau cancelled. cancelled terminal. Promosi otomatis saat ada yang batal
// sengaja TIDAK dilakukan; itu keputusan admin lewat UpdateStatus.
func CanTransition(from, to regModel.RegistrationStatus) bool {
	if from == to {
		return true // no-op sukses
	}
	switch from {
	case regModel.StatusPending:
		return to == regModel.StatusConfirmed || to == regModel.StatusCancelled
	case regModel.StatusWaitlist:
		return to == regModel.StatusConfirmed || to == regModel.StatusCancelled
	case regModel.StatusConfirmed:
		return to == regModel.StatusCancelled
	}
	return false
}

/* =========================
   Ledger service
   ========================= */

type RegistrationLedger struct {
	occurrences *occService.OccurrenceService
	notifier    *notifierService.CapacityNotifier
}

func NewRegistrationLedger(occ *occService.OccurrenceService, notifier *notifierService.CapacityNotifier) *RegistrationLedger {
	return &RegistrationLedger{occurrences: occ, notifier: notifier}
}

type CreateInput struct {
	EventID       uuid.UUID
	MemberID      uuid.UUID
	GuardianID    *uuid.UUID
	Notes         *string
	OccurrenceKey *occModel.Key // wajib untuk event single_session
}

// Create menjalankan admisi sebagai satu unit atomik per event: baris event
// dikunci FOR UPDATE sebelum hitungan dibaca, sehingga dua submisi paralel
// tidak bisa sama-sama lolos kapasitas.
func (l *RegistrationLedger) Create(db *gorm.DB, in CreateInput) (*regModel.EventRegistrationModel, error) {
	var created *regModel.EventRegistrationModel

	err := db.Transaction(func(tx *gorm.DB) error {
		// 1) Lock baris event (serialisasi admisi per event)
		var ev eventModel.EventModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("event_id = ?", in.EventID).
			First(&ev).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		// 2) Validasi member & wali ke direktori anggota
		if err := ensureMemberExists(tx, in.MemberID, false); err != nil {
			return err
		}
		if in.GuardianID != nil {
			if err := ensureMemberExists(tx, *in.GuardianID, true); err != nil {
				return err
			}
		}

		// 3) Tolak registrasi ganda (non-cancelled) untuk (event, member)
		var dup int64
		if err := tx.Model(&regModel.EventRegistrationModel{}).
			Where("registration_event_id = ? AND registration_member_id = ? AND registration_status <> ?",
				in.EventID, in.MemberID, regModel.StatusCancelled).
			Count(&dup).Error; err != nil {
			return err
		}
		if dup > 0 {
			return ErrDuplicateRegistration
		}

		// 4) Resolve cakupan occurrence
		scopeMode, occJSON, err := l.resolveScope(tx, &ev, in.OccurrenceKey)
		if err != nil {
			return err
		}

		// 5) Hitung & putuskan admisi
		activeCount, waitlistCount, err := CountsForEvent(tx, in.EventID)
		if err != nil {
			return err
		}
		status, err := DecideAdmission(ev.EventCapacityTotal, ev.EventCapacityWaitlist, activeCount, waitlistCount)
		if err != nil {
			return err
		}

		// 6) Persist
		row := regModel.EventRegistrationModel{
			RegistrationEventID:     in.EventID,
			RegistrationMemberID:    in.MemberID,
			RegistrationGuardianID:  in.GuardianID,
			RegistrationStatus:      status,
			RegistrationScopeMode:   scopeMode,
			RegistrationOccurrences: occJSON,
			RegistrationNotes:       in.Notes,
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}

		// 7) Evaluasi notifier dalam transaksi yang sama
		if status.IsActive() {
			activeCount++
		}
		if err := l.notifier.Evaluate(tx, &ev, activeCount); err != nil {
			return err
		}

		log.Printf("[LEDGER] create event=%s member=%s status=%s", in.EventID, in.MemberID, status)
		created = &row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateStatus mengganti status registrasi. Promosi manual waitlist→confirmed
// tidak dicek ulang terhadap kapasitas; itu tanggung jawab admin pemanggil.
func (l *RegistrationLedger) UpdateStatus(db *gorm.DB, registrationID uuid.UUID, newStatus regModel.RegistrationStatus) (*regModel.EventRegistrationModel, error) {
	if !newStatus.IsValid() {
		return nil, ErrInvalidStatus
	}

	var updated *regModel.EventRegistrationModel
	err := db.Transaction(func(tx *gorm.DB) error {
		var row regModel.EventRegistrationModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("registration_id = ?", registrationID).
			First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if row.RegistrationStatus == newStatus {
			updated = &row // no-op sukses
			return nil
		}
		if !CanTransition(row.RegistrationStatus, newStatus) {
			return ErrInvalidStatus
		}

		if err := tx.Model(&row).
			Update("registration_status", newStatus).Error; err != nil {
			return err
		}
		row.RegistrationStatus = newStatus
		updated = &row

		// Mutasi yang memengaruhi hitungan aktif → evaluasi notifier
		return l.evaluateAfterMutation(tx, row.RegistrationEventID)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Cancel menandai registrasi cancelled; slot yang lepas selalu memicu
// evaluasi notifier (latch one-shot tidak akan terpicu dua kali).
func (l *RegistrationLedger) Cancel(db *gorm.DB, registrationID uuid.UUID) error {
	_, err := l.UpdateStatus(db, registrationID, regModel.StatusCancelled)
	return err
}

func (l *RegistrationLedger) evaluateAfterMutation(tx *gorm.DB, eventID uuid.UUID) error {
	// Lock baris event seperti di Create: dua pembatalan paralel tidak
	// boleh sama-sama membaca latch false lalu mengirim notifikasi ganda
	var ev eventModel.EventModel
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("event_id = ?", eventID).
		First(&ev).Error; err != nil {
		return err
	}
	activeCount, _, err := CountsForEvent(tx, eventID)
	if err != nil {
		return err
	}
	return l.notifier.Evaluate(tx, &ev, activeCount)
}

// resolveScope menentukan mode cakupan + daftar kunci untuk registrasi baru.
func (l *RegistrationLedger) resolveScope(tx *gorm.DB, ev *eventModel.EventModel, key *occModel.Key) (regModel.ScopeMode, []byte, error) {
	if ev.RequiresSingleOccurrence() && key == nil {
		return "", nil, ErrInvalidOccurrence
	}
	if key == nil {
		return regModel.ScopeAll, nil, nil
	}

	// Kunci harus menunjuk occurrence aktif milik event ini
	if _, err := l.occurrences.FindActiveByKey(tx, ev.EventID, *key); err != nil {
		if errors.Is(err, occService.ErrNotFound) {
			return "", nil, ErrInvalidOccurrence
		}
		return "", nil, err
	}

	raw, err := json.Marshal([]string{key.String()})
	if err != nil {
		return "", nil, err
	}
	return regModel.ScopeCustom, raw, nil
}

/* =========================
   Queries
   ========================= */

// CountsForEvent menghitung registrasi aktif (pending+confirmed) dan
// waitlist sebuah event.
func CountsForEvent(db *gorm.DB, eventID uuid.UUID) (active, waitlist int, err error) {
	var activeCount int64
	if err = db.Model(&regModel.EventRegistrationModel{}).
		Where("registration_event_id = ? AND registration_status IN ?",
			eventID, []regModel.RegistrationStatus{regModel.StatusPending, regModel.StatusConfirmed}).
		Count(&activeCount).Error; err != nil {
		return 0, 0, err
	}

	var waitlistCount int64
	if err = db.Model(&regModel.EventRegistrationModel{}).
		Where("registration_event_id = ? AND registration_status = ?", eventID, regModel.StatusWaitlist).
		Count(&waitlistCount).Error; err != nil {
		return 0, 0, err
	}
	return int(activeCount), int(waitlistCount), nil
}

// GetByID mengambil satu registrasi.
func (l *RegistrationLedger) GetByID(db *gorm.DB, registrationID uuid.UUID) (*regModel.EventRegistrationModel, error) {
	var row regModel.EventRegistrationModel
	err := db.Where("registration_id = ?", registrationID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// ListByEvent mengambil registrasi sebuah event (opsional filter status),
// urut waktu daftar.
func (l *RegistrationLedger) ListByEvent(db *gorm.DB, eventID uuid.UUID, status *regModel.RegistrationStatus, offset, limit int) ([]regModel.EventRegistrationModel, int64, error) {
	q := db.Model(&regModel.EventRegistrationModel{}).
		Where("registration_event_id = ?", eventID)
	if status != nil {
		q = q.Where("registration_status = ?", *status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []regModel.EventRegistrationModel
	if err := q.Order("registration_created_at ASC").
		Offset(offset).Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// ActiveScopedToKey mengambil registrasi aktif yang tercakup pada satu
// occurrence (dipakai AttendanceTracker & summary).
func ActiveScopedToKey(db *gorm.DB, eventID uuid.UUID, key occModel.Key) ([]regModel.EventRegistrationModel, error) {
	var rows []regModel.EventRegistrationModel
	if err := db.
		Where("registration_event_id = ? AND registration_status IN ?",
			eventID, []regModel.RegistrationStatus{regModel.StatusPending, regModel.StatusConfirmed}).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	scoped := rows[:0]
	for _, r := range rows {
		if r.CoversOccurrence(key) {
			scoped = append(scoped, r)
		}
	}
	return scoped, nil
}

func ensureMemberExists(tx *gorm.DB, memberID uuid.UUID, mustBeGuardian bool) error {
	q := tx.Model(&memberModel.MemberModel{}).Where("member_id = ?", memberID)
	if mustBeGuardian {
		q = q.Where("member_is_guardian = TRUE")
	}
	var cnt int64
	if err := q.Count(&cnt).Error; err != nil {
		return err
	}
	if cnt == 0 {
		return ErrNotFound
	}
	return nil
}
