// file: internals/features/events/schedule/compile_test.go
package schedule

import (
	"errors"
	"testing"
	"time"

	"komunitas_backend/internals/helpers/dbtime"
)

func mustTod(t *testing.T, s string) dbtime.Tod {
	t.Helper()
	tod, err := dbtime.Parse(s)
	if err != nil {
		t.Fatalf("parse tod %q: %v", s, err)
	}
	return tod
}

func weeklySpec(t *testing.T, interval int, start CivilDate, days ...time.Weekday) Spec {
	t.Helper()
	return Spec{
		Mode: ModeRecurring,
		Recurring: &RecurringSpec{
			Frequency: FreqWeekly,
			Interval:  interval,
			StartDate: start,
			StartTime: mustTod(t, "18:00"),
			EndTime:   mustTod(t, "20:00"),
			Weekdays:  days,
		},
	}
}

func datesOf(ws []Window) []string {
	out := make([]string, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.Start.Format("2006-01-02"))
	}
	return out
}

func TestCompileWeekly(t *testing.T) {
	until := time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC)
	spec := weeklySpec(t, 1, Date(2024, 1, 2), time.Tuesday, time.Thursday)

	ws, err := Compile(spec, &until, 50, time.UTC)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	want := []string{"2024-01-02", "2024-01-04", "2024-01-09", "2024-01-11"}
	got := datesOf(ws)
	if len(got) != len(want) {
		t.Fatalf("jumlah window = %d, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("window[%d] = %s, want %s", i, got[i], want[i])
		}
	}

	for _, w := range ws {
		if w.Start.Hour() != 18 || w.End.Hour() != 20 {
			t.Errorf("jam window salah: %v .. %v", w.Start, w.End)
		}
		if !w.Start.Before(w.End) {
			t.Errorf("start >= end: %v .. %v", w.Start, w.End)
		}
	}
}

func TestCompileWeeklyInterval(t *testing.T) {
	// interval=2 dengan start hari Selasa: minggu aktif adalah minggu yang
	// memuat start_date, lalu lompat dua minggu.
	until := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	spec := weeklySpec(t, 2, Date(2024, 1, 2), time.Tuesday)

	ws, err := Compile(spec, &until, 50, time.UTC)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	want := []string{"2024-01-02", "2024-01-16", "2024-01-30"}
	got := datesOf(ws)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("window[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestCompileMonthlyFirstSaturday(t *testing.T) {
	until := time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC)
	spec := Spec{
		Mode: ModeRecurring,
		Recurring: &RecurringSpec{
			Frequency: FreqMonthly,
			Interval:  1,
			StartDate: Date(2024, 1, 6), // Sabtu pertama Januari
			StartTime: mustTod(t, "09:00"),
			EndTime:   mustTod(t, "11:30"),
			Ordinal:   OrdinalFirst,
			Weekday:   time.Saturday,
		},
	}

	ws, err := Compile(spec, &until, 50, time.UTC)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	want := []string{"2024-01-06", "2024-02-03", "2024-03-02", "2024-04-06"}
	got := datesOf(ws)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("window[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestCompileMonthlyLast(t *testing.T) {
	until := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	spec := Spec{
		Mode: ModeRecurring,
		Recurring: &RecurringSpec{
			Frequency: FreqMonthly,
			Interval:  1,
			StartDate: Date(2024, 1, 1),
			StartTime: mustTod(t, "10:00"),
			EndTime:   mustTod(t, "12:00"),
			Ordinal:   OrdinalLast,
			Weekday:   time.Wednesday,
		},
	}

	ws, err := Compile(spec, &until, 50, time.UTC)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	want := []string{"2024-01-31", "2024-02-28", "2024-03-27"}
	got := datesOf(ws)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("window[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestCompileBounded(t *testing.T) {
	// tanpa until: limit yang menghentikan ekspansi
	spec := weeklySpec(t, 1, Date(2024, 1, 1), time.Monday, time.Wednesday, time.Friday)

	ws, err := Compile(spec, nil, 10, time.UTC)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if len(ws) != 10 {
		t.Fatalf("len = %d, want 10", len(ws))
	}

	// dengan until: tidak ada window melewati until
	until := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	ws, err = Compile(spec, &until, 1000, time.UTC)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	for _, w := range ws {
		if w.Start.After(time.Date(2024, 6, 30, 23, 59, 59, 0, time.UTC)) {
			t.Errorf("window %v melewati until", w.Start)
		}
	}
}

func TestCompileRestartable(t *testing.T) {
	until := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	spec := weeklySpec(t, 1, Date(2024, 1, 2), time.Tuesday, time.Thursday)

	a, err := Compile(spec, &until, 50, time.UTC)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	b, err := Compile(spec, &until, 50, time.UTC)
	if err != nil {
		t.Fatalf("Compile ulang: %v", err)
	}
	if len(a) != len(b) {
		t.Fatalf("hasil tidak deterministik: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if !a[i].Start.Equal(b[i].Start) || !a[i].End.Equal(b[i].End) {
			t.Errorf("window[%d] beda: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestCompileFixedAndRange(t *testing.T) {
	fixed := Spec{
		Mode: ModeFixed,
		Fixed: &FixedSpec{
			Date:      Date(2024, 5, 10),
			StartTime: mustTod(t, "19:00"),
			EndTime:   mustTod(t, "21:00"),
		},
	}
	ws, err := Compile(fixed, nil, 0, time.UTC)
	if err != nil {
		t.Fatalf("Compile fixed: %v", err)
	}
	if len(ws) != 1 {
		t.Fatalf("fixed harus satu window, got %d", len(ws))
	}
	if ws[0].Start.Day() != 10 || ws[0].Start.Hour() != 19 || ws[0].End.Hour() != 21 {
		t.Errorf("window fixed salah: %+v", ws[0])
	}

	start := time.Date(2024, 7, 1, 8, 0, 0, 0, time.UTC)
	end := time.Date(2024, 7, 3, 17, 0, 0, 0, time.UTC)
	rng := Spec{Mode: ModeRange, Range: &RangeSpec{Start: start, End: end}}
	ws, err = Compile(rng, nil, 0, time.UTC)
	if err != nil {
		t.Fatalf("Compile range: %v", err)
	}
	if len(ws) != 1 || !ws[0].Start.Equal(start) || !ws[0].End.Equal(end) {
		t.Errorf("window range salah: %+v", ws)
	}
}

func TestCompileInvalid(t *testing.T) {
	cases := []struct {
		name string
		spec Spec
	}{
		{"fixed end <= start", Spec{
			Mode: ModeFixed,
			Fixed: &FixedSpec{
				Date:      Date(2024, 5, 10),
				StartTime: mustTod(t, "19:00"),
				EndTime:   mustTod(t, "19:00"),
			},
		}},
		{"range end < start", Spec{
			Mode: ModeRange,
			Range: &RangeSpec{
				Start: time.Date(2024, 7, 3, 0, 0, 0, 0, time.UTC),
				End:   time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
			},
		}},
		{"weekly tanpa weekdays", Spec{
			Mode: ModeRecurring,
			Recurring: &RecurringSpec{
				Frequency: FreqWeekly,
				Interval:  1,
				StartDate: Date(2024, 1, 1),
				StartTime: mustTod(t, "18:00"),
				EndTime:   mustTod(t, "20:00"),
			},
		}},
		{"interval nol", Spec{
			Mode: ModeRecurring,
			Recurring: &RecurringSpec{
				Frequency: FreqWeekly,
				Interval:  0,
				StartDate: Date(2024, 1, 1),
				StartTime: mustTod(t, "18:00"),
				EndTime:   mustTod(t, "20:00"),
				Weekdays:  []time.Weekday{time.Monday},
			},
		}},
		{"ordinal tidak dikenal", Spec{
			Mode: ModeRecurring,
			Recurring: &RecurringSpec{
				Frequency: FreqMonthly,
				Interval:  1,
				StartDate: Date(2024, 1, 1),
				StartTime: mustTod(t, "18:00"),
				EndTime:   mustTod(t, "20:00"),
				Ordinal:   Ordinal("fifth"),
				Weekday:   time.Monday,
			},
		}},
		{"mode kosong", Spec{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Compile(tc.spec, nil, 10, time.UTC); !errors.Is(err, ErrInvalidSchedule) {
				t.Errorf("err = %v, want ErrInvalidSchedule", err)
			}
		})
	}
}
