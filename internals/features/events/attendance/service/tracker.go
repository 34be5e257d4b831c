// file: internals/features/events/attendance/service/tracker.go
package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	occModel "komunitas_backend/internals/features/events/occurrences/model"
	occService "komunitas_backend/internals/features/events/occurrences/service"
	regModel "komunitas_backend/internals/features/events/registrations/model"
	regService "komunitas_backend/internals/features/events/registrations/service"
)

var (
	ErrInvalidScope      = errors.New("registrasi tidak tercakup pada occurrence ini")
	ErrInvalidOccurrence = regService.ErrInvalidOccurrence
	ErrNotFound          = regService.ErrNotFound
)

/* =========================
   Summary (murni)
   ========================= */

type Summary struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Pending int `json:"pending"`
}

// SummarizeMarks menghitung rekap absensi dari populasi registrasi yang
// tercakup pada satu occurrence. pending = populasi - present - absent,
// di-clamp ke 0.
func SummarizeMarks(regs []regModel.EventRegistrationModel, key occModel.Key) Summary {
	var s Summary
	for _, r := range regs {
		switch r.MarkFor(key) {
		case regModel.MarkPresent:
			s.Present++
		case regModel.MarkAbsent:
			s.Absent++
		}
	}
	s.Pending = len(regs) - s.Present - s.Absent
	if s.Pending < 0 {
		s.Pending = 0
	}
	return s
}

/* =========================
   Tracker
   ========================= */

type AttendanceTracker struct {
	occurrences *occService.OccurrenceService
}

func NewAttendanceTracker(occ *occService.OccurrenceService) *AttendanceTracker {
	return &AttendanceTracker{occurrences: occ}
}

// SetMark mencatat present/absent untuk satu (registrasi, occurrence).
// mark=pending menghapus catatan (kembali ke default). Idempoten: nilai
// sama tidak menulis apa pun.
func (t *AttendanceTracker) SetMark(db *gorm.DB, registrationID uuid.UUID, key occModel.Key, mark regModel.AttendanceMark) error {
	switch mark {
	case regModel.MarkPresent, regModel.MarkAbsent, regModel.MarkPending:
	default:
		return ErrInvalidScope
	}

	return db.Transaction(func(tx *gorm.DB) error {
		// read-modify-write pada JSONB → kunci barisnya
		var reg regModel.EventRegistrationModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("registration_id = ?", registrationID).
			First(&reg).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		// Kunci harus milik event registrasi ini (boleh occurrence yang
		// sudah dibatalkan; riwayat absensinya tetap sah)
		if _, err := t.occurrences.FindByKey(tx, reg.RegistrationEventID, key); err != nil {
			if errors.Is(err, occService.ErrNotFound) {
				return ErrInvalidOccurrence
			}
			return err
		}

		if reg.RegistrationStatus == regModel.StatusCancelled || !reg.CoversOccurrence(key) {
			return ErrInvalidScope
		}

		if reg.MarkFor(key) == mark {
			return nil // idempoten
		}

		marks := reg.RegistrationAttendance
		if marks == nil {
			marks = datatypes.JSONMap{}
		}
		if mark == regModel.MarkPending {
			delete(marks, key.String())
		} else {
			marks[key.String()] = string(mark)
		}

		return tx.Model(&reg).
			Update("registration_attendance", marks).Error
	})
}

// Summarize menghitung rekap satu occurrence dari registrasi aktif yang
// tercakup padanya.
func (t *AttendanceTracker) Summarize(db *gorm.DB, eventID uuid.UUID, key occModel.Key) (Summary, error) {
	if _, err := t.occurrences.FindByKey(db, eventID, key); err != nil {
		if errors.Is(err, occService.ErrNotFound) {
			return Summary{}, ErrInvalidOccurrence
		}
		return Summary{}, err
	}

	regs, err := regService.ActiveScopedToKey(db, eventID, key)
	if err != nil {
		return Summary{}, err
	}
	return SummarizeMarks(regs, key), nil
}
