// file: internals/features/events/schedule/spec.go
package schedule

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"komunitas_backend/internals/helpers/dbtime"
)

// ErrInvalidSchedule dikembalikan saat definisi jadwal tidak valid.
// Semua validasi terjadi sebelum ada mutasi apa pun.
var ErrInvalidSchedule = errors.New("definisi jadwal tidak valid")

/* =========================
   Enums
   ========================= */

type Mode string

const (
	ModeFixed     Mode = "fixed"
	ModeRange     Mode = "range"
	ModeRecurring Mode = "recurring"
)

type Frequency string

const (
	FreqWeekly  Frequency = "weekly"
	FreqMonthly Frequency = "monthly"
)

type Ordinal string

const (
	OrdinalFirst  Ordinal = "first"
	OrdinalSecond Ordinal = "second"
	OrdinalThird  Ordinal = "third"
	OrdinalFourth Ordinal = "fourth"
	OrdinalLast   Ordinal = "last"
)

/* =========================
   Tagged union payload
   ========================= */

// Spec adalah union bertipe untuk payload jadwal; satu section terisi
// sesuai Mode (pengganti map string bebas).
type Spec struct {
	Mode      Mode           `json:"mode"`
	Fixed     *FixedSpec     `json:"fixed,omitempty"`
	Range     *RangeSpec     `json:"range,omitempty"`
	Recurring *RecurringSpec `json:"recurring,omitempty"`
}

type FixedSpec struct {
	Date      CivilDate  `json:"date"`
	StartTime dbtime.Tod `json:"start_time"`
	EndTime   dbtime.Tod `json:"end_time"`
}

type RangeSpec struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type RecurringSpec struct {
	Frequency Frequency  `json:"frequency"`
	Interval  int        `json:"interval"`
	StartDate CivilDate  `json:"start_date"`
	StartTime dbtime.Tod `json:"start_time"`
	EndTime   dbtime.Tod `json:"end_time"`

	// weekly
	Weekdays []time.Weekday `json:"weekdays,omitempty"`

	// monthly
	Ordinal Ordinal      `json:"ordinal,omitempty"`
	Weekday time.Weekday `json:"weekday,omitempty"`
}

/* =========================
   CivilDate ("YYYY-MM-DD")
   ========================= */

type CivilDate struct{ time.Time }

// Date bikin CivilDate dari Y/M/D (dipakai di test & DTO).
func Date(y int, m time.Month, d int) CivilDate {
	return CivilDate{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d CivilDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format("2006-01-02"))
}

func (d *CivilDate) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return fmt.Errorf("%w: tanggal %q", ErrInvalidSchedule, s)
	}
	d.Time = t
	return nil
}

/* =========================
   Validation
   ========================= */

// Validate memeriksa konsistensi union sebelum kompilasi / persist.
func (s Spec) Validate() error {
	switch s.Mode {
	case ModeFixed:
		if s.Fixed == nil {
			return fmt.Errorf("%w: payload fixed kosong", ErrInvalidSchedule)
		}
		if s.Fixed.Date.IsZero() {
			return fmt.Errorf("%w: tanggal wajib diisi", ErrInvalidSchedule)
		}
		if !s.Fixed.StartTime.Before(s.Fixed.EndTime) {
			return fmt.Errorf("%w: end_time harus setelah start_time", ErrInvalidSchedule)
		}
	case ModeRange:
		if s.Range == nil {
			return fmt.Errorf("%w: payload range kosong", ErrInvalidSchedule)
		}
		if s.Range.Start.IsZero() || s.Range.End.IsZero() {
			return fmt.Errorf("%w: start/end wajib diisi", ErrInvalidSchedule)
		}
		if s.Range.End.Before(s.Range.Start) {
			return fmt.Errorf("%w: end sebelum start", ErrInvalidSchedule)
		}
	case ModeRecurring:
		r := s.Recurring
		if r == nil {
			return fmt.Errorf("%w: payload recurring kosong", ErrInvalidSchedule)
		}
		if r.Interval < 1 {
			return fmt.Errorf("%w: interval minimal 1", ErrInvalidSchedule)
		}
		if r.StartDate.IsZero() {
			return fmt.Errorf("%w: start_date wajib diisi", ErrInvalidSchedule)
		}
		if !r.StartTime.Before(r.EndTime) {
			return fmt.Errorf("%w: end_time harus setelah start_time", ErrInvalidSchedule)
		}
		switch r.Frequency {
		case FreqWeekly:
			if len(r.Weekdays) == 0 {
				return fmt.Errorf("%w: weekdays kosong", ErrInvalidSchedule)
			}
		case FreqMonthly:
			switch r.Ordinal {
			case OrdinalFirst, OrdinalSecond, OrdinalThird, OrdinalFourth, OrdinalLast:
			default:
				return fmt.Errorf("%w: ordinal %q tidak dikenal", ErrInvalidSchedule, r.Ordinal)
			}
		default:
			return fmt.Errorf("%w: frequency %q tidak dikenal", ErrInvalidSchedule, r.Frequency)
		}
	default:
		return fmt.Errorf("%w: mode %q tidak dikenal", ErrInvalidSchedule, s.Mode)
	}
	return nil
}
