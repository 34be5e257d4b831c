// file: internals/features/events/attendance/service/tracker_test.go
package service

import (
	"encoding/json"
	"testing"
	"time"

	"gorm.io/datatypes"

	occModel "komunitas_backend/internals/features/events/occurrences/model"
	regModel "komunitas_backend/internals/features/events/registrations/model"
)

func keyAt(hour int) occModel.Key {
	return occModel.NewKey(time.Date(2024, 3, 4, hour, 0, 0, 0, time.UTC))
}

func regWith(scope regModel.ScopeMode, keys []occModel.Key, marks map[string]interface{}) regModel.EventRegistrationModel {
	r := regModel.EventRegistrationModel{
		RegistrationStatus:    regModel.StatusConfirmed,
		RegistrationScopeMode: scope,
	}
	if len(keys) > 0 {
		raw := make([]string, len(keys))
		for i, k := range keys {
			raw[i] = k.String()
		}
		b, _ := json.Marshal(raw)
		r.RegistrationOccurrences = b
	}
	if marks != nil {
		r.RegistrationAttendance = datatypes.JSONMap(marks)
	}
	return r
}

func TestSummarizeMarks(t *testing.T) {
	key := keyAt(18)

	regs := []regModel.EventRegistrationModel{
		regWith(regModel.ScopeAll, nil, map[string]interface{}{key.String(): "present"}),
		regWith(regModel.ScopeAll, nil, map[string]interface{}{key.String(): "absent"}),
		regWith(regModel.ScopeAll, nil, nil), // belum ada mark → pending
	}

	s := SummarizeMarks(regs, key)
	if s.Present != 1 || s.Absent != 1 || s.Pending != 1 {
		t.Errorf("summary = %+v, want 1/1/1", s)
	}
}

func TestSummarizeClosure(t *testing.T) {
	// pending + present + absent == populasi ter-scope, apa pun kombinasinya
	key := keyAt(18)
	other := keyAt(20)

	regs := []regModel.EventRegistrationModel{
		regWith(regModel.ScopeAll, nil, map[string]interface{}{key.String(): "present"}),
		regWith(regModel.ScopeCustom, []occModel.Key{key}, map[string]interface{}{key.String(): "absent"}),
		regWith(regModel.ScopeCustom, []occModel.Key{key}, nil),
		// mark di occurrence lain tidak memengaruhi rekap occurrence ini
		regWith(regModel.ScopeAll, nil, map[string]interface{}{other.String(): "present"}),
	}

	s := SummarizeMarks(regs, key)
	if got := s.Present + s.Absent + s.Pending; got != len(regs) {
		t.Errorf("closure: %d + %d + %d = %d, want %d", s.Present, s.Absent, s.Pending, got, len(regs))
	}
	if s.Present != 1 || s.Absent != 1 || s.Pending != 2 {
		t.Errorf("summary = %+v, want 1/1/2", s)
	}
}

func TestSummarizeNeverNegative(t *testing.T) {
	s := SummarizeMarks(nil, keyAt(18))
	if s.Pending != 0 || s.Present != 0 || s.Absent != 0 {
		t.Errorf("populasi kosong harus 0/0/0, got %+v", s)
	}
}

func TestCoversOccurrence(t *testing.T) {
	key := keyAt(18)
	other := keyAt(20)

	all := regWith(regModel.ScopeAll, nil, nil)
	if !all.CoversOccurrence(key) || !all.CoversOccurrence(other) {
		t.Error("scope all harus mencakup semua occurrence")
	}

	custom := regWith(regModel.ScopeCustom, []occModel.Key{key}, nil)
	if !custom.CoversOccurrence(key) {
		t.Error("scope custom harus mencakup kunci yang tercantum")
	}
	if custom.CoversOccurrence(other) {
		t.Error("scope custom tidak boleh mencakup kunci lain")
	}
}
