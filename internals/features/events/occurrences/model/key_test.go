// file: internals/features/events/occurrences/model/key_test.go
package model

import (
	"testing"
	"time"
)

func TestNewKeyNormalizesZoneAndPrecision(t *testing.T) {
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	utc := time.Date(2024, 3, 4, 11, 0, 0, 0, time.UTC)
	wib := time.Date(2024, 3, 4, 18, 0, 0, 123456789, jakarta) // == 11:00 UTC

	if !NewKey(utc).Equal(NewKey(wib)) {
		t.Errorf("kunci berbeda untuk instan yang sama: %s vs %s", NewKey(utc), NewKey(wib))
	}
	if got := NewKey(utc).String(); got != "2024-03-04T11:00:00Z" {
		t.Errorf("String() = %s", got)
	}
}

func TestParseKeyRepresentations(t *testing.T) {
	want := NewKey(time.Date(2024, 3, 4, 11, 0, 0, 0, time.UTC))

	cases := []string{
		"2024-03-04T11:00:00Z",
		"2024-03-04T18:00:00+07:00",
		"2024-03-04 11:00:00",
	}
	for _, s := range cases {
		got, err := ParseKey(s)
		if err != nil {
			t.Errorf("ParseKey(%q): %v", s, err)
			continue
		}
		if !got.Equal(want) {
			t.Errorf("ParseKey(%q) = %s, want %s", s, got, want)
		}
	}

	if _, err := ParseKey("bukan tanggal"); err == nil {
		t.Error("input rusak harus error")
	}
}
