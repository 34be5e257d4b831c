// file: internals/features/events/registrations/service/ledger_test.go
package service

import (
	"errors"
	"testing"

	regModel "komunitas_backend/internals/features/events/registrations/model"
)

func TestDecideAdmissionSequence(t *testing.T) {
	// capacity_total=2, capacity_waitlist=1: empat pendaftar berurutan
	// menghasilkan [pending, pending, waitlist, CapacityExceeded]
	const capTotal, capWait = 2, 1

	active, waitlist := 0, 0
	admit := func() (regModel.RegistrationStatus, error) {
		st, err := DecideAdmission(capTotal, capWait, active, waitlist)
		if err == nil {
			if st.IsActive() {
				active++
			} else {
				waitlist++
			}
		}
		return st, err
	}

	wantStatuses := []regModel.RegistrationStatus{
		regModel.StatusPending,
		regModel.StatusPending,
		regModel.StatusWaitlist,
	}
	for i, want := range wantStatuses {
		got, err := admit()
		if err != nil {
			t.Fatalf("pendaftar %d: err %v", i+1, err)
		}
		if got != want {
			t.Errorf("pendaftar %d: status %s, want %s", i+1, got, want)
		}
	}

	if _, err := admit(); !errors.Is(err, ErrCapacityExceeded) {
		t.Errorf("pendaftar 4: err = %v, want ErrCapacityExceeded", err)
	}
}

func TestDecideAdmissionUnlimited(t *testing.T) {
	st, err := DecideAdmission(0, 0, 9999, 0)
	if err != nil || st != regModel.StatusPending {
		t.Errorf("capacity 0 harus selalu pending, got %s %v", st, err)
	}
}

func TestDecideAdmissionUnlimitedWaitlist(t *testing.T) {
	// capacity_waitlist=0 dengan capacity_total terisi: waitlist tanpa batas
	st, err := DecideAdmission(1, 0, 1, 500)
	if err != nil || st != regModel.StatusWaitlist {
		t.Errorf("waitlist tanpa batas, got %s %v", st, err)
	}
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to regModel.RegistrationStatus
		want     bool
	}{
		{regModel.StatusPending, regModel.StatusConfirmed, true},
		{regModel.StatusPending, regModel.StatusCancelled, true},
		{regModel.StatusPending, regModel.StatusWaitlist, false},
		{regModel.StatusWaitlist, regModel.StatusConfirmed, true}, // promosi manual
		{regModel.StatusWaitlist, regModel.StatusCancelled, true},
		{regModel.StatusWaitlist, regModel.StatusPending, false},
		{regModel.StatusConfirmed, regModel.StatusCancelled, true},
		{regModel.StatusConfirmed, regModel.StatusPending, false},
		{regModel.StatusCancelled, regModel.StatusPending, false}, // terminal
		{regModel.StatusCancelled, regModel.StatusConfirmed, false},
		{regModel.StatusConfirmed, regModel.StatusConfirmed, true}, // no-op
	}

	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.want {
			t.Errorf("CanTransition(%s → %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}
