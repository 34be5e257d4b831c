// file: internals/features/events/occurrences/service/reconcile_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	occModel "komunitas_backend/internals/features/events/occurrences/model"
	"komunitas_backend/internals/features/events/schedule"
)

func occ(start, end time.Time, status occModel.OccurrenceStatus, source occModel.OccurrenceSource) occModel.EventOccurrenceModel {
	return occModel.EventOccurrenceModel{
		OccurrenceID:      uuid.New(),
		OccurrenceStartAt: start,
		OccurrenceEndAt:   end,
		OccurrenceStatus:  status,
		OccurrenceSource:  source,
	}
}

func at(day, hour int) time.Time {
	return time.Date(2024, 3, day, hour, 0, 0, 0, time.UTC)
}

func TestBuildReconcilePlanInsertAndCancel(t *testing.T) {
	existing := []occModel.EventOccurrenceModel{
		occ(at(4, 18), at(4, 20), occModel.OccurrenceActive, occModel.SourceCompiled),
		occ(at(11, 18), at(11, 20), occModel.OccurrenceActive, occModel.SourceCompiled),
	}
	compiled := []schedule.Window{
		{Start: at(4, 18), End: at(4, 20)},   // sudah ada
		{Start: at(18, 18), End: at(18, 20)}, // baru
	}

	plan := BuildReconcilePlan(existing, compiled)

	if len(plan.ToInsert) != 1 || !plan.ToInsert[0].Start.Equal(at(18, 18)) {
		t.Errorf("ToInsert = %+v, want satu window 18 Maret", plan.ToInsert)
	}
	if len(plan.ToCancel) != 1 || plan.ToCancel[0] != existing[1].OccurrenceID {
		t.Errorf("ToCancel = %v, want occurrence 11 Maret", plan.ToCancel)
	}
	if len(plan.ToReactivate) != 0 {
		t.Errorf("ToReactivate = %v, want kosong", plan.ToReactivate)
	}
}

func TestBuildReconcilePlanIdempotent(t *testing.T) {
	compiled := []schedule.Window{
		{Start: at(4, 18), End: at(4, 20)},
		{Start: at(11, 18), End: at(11, 20)},
	}

	// state setelah reconcile pertama: semua window sudah persisted & aktif
	existing := []occModel.EventOccurrenceModel{
		occ(at(4, 18), at(4, 20), occModel.OccurrenceActive, occModel.SourceCompiled),
		occ(at(11, 18), at(11, 20), occModel.OccurrenceActive, occModel.SourceCompiled),
	}

	plan := BuildReconcilePlan(existing, compiled)
	if !plan.Empty() {
		t.Errorf("reconcile kedua harus no-op, got %+v", plan)
	}
}

func TestBuildReconcilePlanManualUntouched(t *testing.T) {
	manual := occ(at(25, 9), at(25, 12), occModel.OccurrenceActive, occModel.SourceManual)
	existing := []occModel.EventOccurrenceModel{manual}
	compiled := []schedule.Window{{Start: at(4, 18), End: at(4, 20)}}

	plan := BuildReconcilePlan(existing, compiled)

	for _, id := range plan.ToCancel {
		if id == manual.OccurrenceID {
			t.Fatal("occurrence manual ikut ter-cancel oleh rekonsiliasi")
		}
	}
	if len(plan.ToInsert) != 1 {
		t.Errorf("window compiled tetap harus di-insert, got %+v", plan.ToInsert)
	}
}

func TestBuildReconcilePlanReactivate(t *testing.T) {
	cancelled := occ(at(4, 18), at(4, 20), occModel.OccurrenceCancelled, occModel.SourceCompiled)
	existing := []occModel.EventOccurrenceModel{cancelled}
	compiled := []schedule.Window{{Start: at(4, 18), End: at(4, 20)}}

	plan := BuildReconcilePlan(existing, compiled)

	if len(plan.ToInsert) != 0 {
		t.Errorf("window yang match row cancelled tidak boleh di-insert ganda: %+v", plan.ToInsert)
	}
	if len(plan.ToReactivate) != 1 || plan.ToReactivate[0] != cancelled.OccurrenceID {
		t.Errorf("ToReactivate = %v, want %v", plan.ToReactivate, cancelled.OccurrenceID)
	}
}

func TestBuildReconcilePlanDuplicateWindows(t *testing.T) {
	compiled := []schedule.Window{
		{Start: at(4, 18), End: at(4, 20)},
		{Start: at(4, 18), End: at(4, 20)}, // kembar
	}

	plan := BuildReconcilePlan(nil, compiled)
	if len(plan.ToInsert) != 1 {
		t.Errorf("window kembar harus di-dedup, got %d insert", len(plan.ToInsert))
	}
}

func TestNormalizeWindowSubSecond(t *testing.T) {
	loc := time.FixedZone("WIB", 7*3600)
	rawStart := time.Date(2024, 5, 6, 18, 0, 0, 123456789, loc)
	rawEnd := time.Date(2024, 5, 6, 20, 0, 0, 999999999, loc)

	start, end := normalizeWindow(rawStart, rawEnd)

	if start.Location() != time.UTC || start.Nanosecond() != 0 {
		t.Errorf("start harus UTC presisi detik, got %v", start)
	}
	if end.Location() != time.UTC || end.Nanosecond() != 0 {
		t.Errorf("end harus UTC presisi detik, got %v", end)
	}

	// Occurrence manual hasil normalisasi harus cocok dengan Key()-nya
	// sendiri, supaya registrasi single-session & absensi bisa menunjuknya
	row := occ(start, end, occModel.OccurrenceActive, occModel.SourceManual)
	if !row.Key().Time().Equal(row.OccurrenceStartAt) {
		t.Errorf("Key() %v tidak sama dengan start_at tersimpan %v",
			row.Key().Time(), row.OccurrenceStartAt)
	}
}
