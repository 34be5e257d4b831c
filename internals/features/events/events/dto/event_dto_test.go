// file: internals/features/events/events/dto/event_dto_test.go
package dto

import (
	"encoding/json"
	"testing"
	"time"
)

func TestUpdateRequestRecurrenceUntilTriState(t *testing.T) {
	// absen → tidak diubah
	var absent UpdateEventRequest
	if err := json.Unmarshal([]byte(`{"event_title":"Kajian"}`), &absent); err != nil {
		t.Fatal(err)
	}
	c := absent.ToChanges()
	if c.RecurrenceUntil != nil || c.ClearRecurrenceUntil {
		t.Errorf("field absen tidak boleh mengubah until: %+v", c)
	}

	// null eksplisit → hapus batas
	var cleared UpdateEventRequest
	if err := json.Unmarshal([]byte(`{"event_recurrence_until":null}`), &cleared); err != nil {
		t.Fatal(err)
	}
	c = cleared.ToChanges()
	if !c.ClearRecurrenceUntil || c.RecurrenceUntil != nil {
		t.Errorf("null harus menghapus batas recurrence: %+v", c)
	}

	// nilai → set tanggal
	var set UpdateEventRequest
	if err := json.Unmarshal([]byte(`{"event_recurrence_until":"2024-06-30"}`), &set); err != nil {
		t.Fatal(err)
	}
	c = set.ToChanges()
	if c.ClearRecurrenceUntil || c.RecurrenceUntil == nil {
		t.Fatalf("tanggal harus men-set batas recurrence: %+v", c)
	}
	want := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	if !c.RecurrenceUntil.Equal(want) {
		t.Errorf("until = %v, want %v", c.RecurrenceUntil, want)
	}
}
