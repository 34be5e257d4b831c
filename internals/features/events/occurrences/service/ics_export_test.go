// file: internals/features/events/occurrences/service/ics_export_test.go
package service

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	occModel "komunitas_backend/internals/features/events/occurrences/model"
)

func icsOccurrence(status occModel.OccurrenceStatus, day int) occModel.EventOccurrenceModel {
	start := time.Date(2024, 5, day, 18, 0, 0, 0, time.UTC)
	return occModel.EventOccurrenceModel{
		OccurrenceID:      uuid.New(),
		OccurrenceStartAt: start,
		OccurrenceEndAt:   start.Add(2 * time.Hour),
		OccurrenceStatus:  status,
		OccurrenceSource:  occModel.SourceCompiled,
	}
}

func TestBuildICSOnlyActive(t *testing.T) {
	active := icsOccurrence(occModel.OccurrenceActive, 6)
	cancelled := icsOccurrence(occModel.OccurrenceCancelled, 13)

	out := BuildICS("Kajian Rutin", "Aula Utama",
		[]occModel.EventOccurrenceModel{active, cancelled})

	if !strings.Contains(out, "BEGIN:VCALENDAR") || !strings.Contains(out, "END:VCALENDAR") {
		t.Fatal("output bukan VCALENDAR")
	}
	if !strings.Contains(out, active.OccurrenceID.String()) {
		t.Error("occurrence aktif tidak diekspor")
	}
	if strings.Contains(out, cancelled.OccurrenceID.String()) {
		t.Error("occurrence cancelled ikut terekspor")
	}
	if !strings.Contains(out, "SUMMARY:Kajian Rutin") {
		t.Error("judul event tidak ada di SUMMARY")
	}
	if !strings.Contains(out, "LOCATION:Aula Utama") {
		t.Error("label lokasi tidak ada di LOCATION")
	}
}

func TestBuildICSEmpty(t *testing.T) {
	out := BuildICS("Tanpa Jadwal", "", nil)
	if strings.Contains(out, "BEGIN:VEVENT") {
		t.Error("kalender kosong tidak boleh punya VEVENT")
	}
}
