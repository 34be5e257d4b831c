// file: internals/features/events/schedule/compile.go
package schedule

import (
	"fmt"
	"sort"
	"time"

	"github.com/teambition/rrule-go"
)

// DefaultOccurrenceLimit adalah cap aman supaya ekspansi recurrence tidak
// meledak (caller tetap boleh menurunkan lewat parameter limit).
const DefaultOccurrenceLimit = 200

// Window satu jendela waktu konkret hasil kompilasi jadwal.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Compile mengubah definisi jadwal menjadi deretan Window terurut dan
// terbatas. Fungsi ini murni: input sama selalu menghasilkan deretan yang
// sama, tanpa state tersembunyi.
//
//   - fixed     → tepat satu window (date + start_time .. date + end_time)
//   - range     → tepat satu window sepanjang rentangnya
//   - recurring → ekspansi weekly/monthly via RRULE, berhenti pada until
//     (inklusif, akhir hari) atau saat limit tercapai
//
// until opsional; limit ≤ 0 memakai DefaultOccurrenceLimit.
func Compile(spec Spec, until *time.Time, limit int, loc *time.Location) ([]Window, error) {
	if loc == nil {
		loc = time.UTC
	}
	if limit <= 0 {
		limit = DefaultOccurrenceLimit
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	switch spec.Mode {
	case ModeFixed:
		f := spec.Fixed
		return []Window{{
			Start: f.StartTime.OnDate(f.Date.Time, loc),
			End:   f.EndTime.OnDate(f.Date.Time, loc),
		}}, nil

	case ModeRange:
		return []Window{{Start: spec.Range.Start, End: spec.Range.End}}, nil

	case ModeRecurring:
		return compileRecurring(*spec.Recurring, until, limit, loc)
	}

	return nil, fmt.Errorf("%w: mode %q tidak dikenal", ErrInvalidSchedule, spec.Mode)
}

func compileRecurring(r RecurringSpec, until *time.Time, limit int, loc *time.Location) ([]Window, error) {
	dtstart := r.StartTime.OnDate(r.StartDate.Time, loc)

	opt := rrule.ROption{
		Interval: r.Interval,
		Dtstart:  dtstart,
		Wkst:     rrule.MO,
	}

	switch r.Frequency {
	case FreqWeekly:
		opt.Freq = rrule.WEEKLY
		days := make([]rrule.Weekday, 0, len(r.Weekdays))
		for _, wd := range r.Weekdays {
			days = append(days, toRRuleWeekday(wd))
		}
		// urut stabil supaya RRULE deterministik terhadap urutan input
		sort.Slice(days, func(i, j int) bool { return days[i].Day() < days[j].Day() })
		opt.Byweekday = days
	case FreqMonthly:
		opt.Freq = rrule.MONTHLY
		// Nth punya pointer receiver; ikat dulu ke variabel
		wd := toRRuleWeekday(r.Weekday)
		opt.Byweekday = []rrule.Weekday{wd.Nth(ordinalNth(r.Ordinal))}
	default:
		return nil, fmt.Errorf("%w: frequency %q tidak dikenal", ErrInvalidSchedule, r.Frequency)
	}

	if until != nil {
		// until inklusif: pakai akhir hari pada zona layanan
		u := *until
		opt.Until = time.Date(u.Year(), u.Month(), u.Day(), 23, 59, 59, 0, loc)
	}

	rule, err := rrule.NewRRule(opt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}

	windows := make([]Window, 0, limit)
	next := rule.Iterator()
	for len(windows) < limit {
		start, ok := next()
		if !ok {
			break
		}
		windows = append(windows, Window{
			Start: start,
			End:   r.EndTime.OnDate(start, loc),
		})
	}
	return windows, nil
}

func toRRuleWeekday(wd time.Weekday) rrule.Weekday {
	switch wd {
	case time.Monday:
		return rrule.MO
	case time.Tuesday:
		return rrule.TU
	case time.Wednesday:
		return rrule.WE
	case time.Thursday:
		return rrule.TH
	case time.Friday:
		return rrule.FR
	case time.Saturday:
		return rrule.SA
	default:
		return rrule.SU
	}
}

func ordinalNth(o Ordinal) int {
	switch o {
	case OrdinalFirst:
		return 1
	case OrdinalSecond:
		return 2
	case OrdinalThird:
		return 3
	case OrdinalFourth:
		return 4
	default: // last
		return -1
	}
}
