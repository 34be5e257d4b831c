// file: internals/features/events/occurrences/model/key.go
package model

import (
	"encoding/json"
	"errors"
	"time"
)

var ErrBadKey = errors.New("occurrence key tidak valid")

// Key adalah kunci kanonik satu occurrence: start_at pada UTC, presisi
// detik. Semua pemakaian (scope registrasi, absensi, summary map) lewat
// konstruktor ini, bukan operasi string berulang.
type Key struct {
	t time.Time
}

// NewKey menormalkan waktu mulai menjadi kunci kanonik.
func NewKey(start time.Time) Key {
	return Key{t: start.UTC().Truncate(time.Second)}
}

// ParseKey menerima representasi tekstual (RFC3339 atau "2006-01-02 15:04:05")
// dan mengembalikan kunci kanonik yang sama untuk instan yang sama.
func ParseKey(s string) (Key, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return NewKey(t), nil
	}
	if t, err := time.Parse("2006-01-02 15:04:05", s); err == nil {
		return NewKey(t), nil
	}
	return Key{}, ErrBadKey
}

func (k Key) Time() time.Time { return k.t }
func (k Key) IsZero() bool    { return k.t.IsZero() }
func (k Key) Equal(o Key) bool {
	return k.t.Equal(o.t)
}

func (k Key) String() string {
	return k.t.Format(time.RFC3339)
}

func (k Key) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *Key) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseKey(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
