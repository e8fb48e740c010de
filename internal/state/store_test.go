package state

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/five82/spriteclock/internal/status"
)

func TestStore_UpdateAndSnapshot(t *testing.T) {
	var s Store

	sample := &Sample{Battery: status.Battery{ChargePercent: 80}, Connected: true}

	before := time.Now()
	change := s.Update(sample, nil)
	if !change.Battery || !change.Connectivity {
		t.Fatalf("first Update change = %+v, want everything changed", change)
	}

	snap := s.Snapshot()
	if !snap.HasSample || snap.Sample != *sample {
		t.Fatalf("snapshot sample = %+v, want %+v", snap.Sample, *sample)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil", snap.LastError)
	}

	// Mutating the caller's sample must not affect the store.
	sample.Connected = false
	if !s.Snapshot().Sample.Connected {
		t.Fatalf("Store should copy the sample")
	}
}

func TestStore_ReportsOnlyChangedParts(t *testing.T) {
	var s Store
	s.Update(&Sample{Battery: status.Battery{ChargePercent: 80}, Connected: true}, nil)

	cases := []struct {
		name   string
		sample Sample
		want   Change
	}{
		{"same", Sample{Battery: status.Battery{ChargePercent: 80}, Connected: true}, Change{}},
		{"battery", Sample{Battery: status.Battery{ChargePercent: 79}, Connected: true}, Change{Battery: true}},
		{"link", Sample{Battery: status.Battery{ChargePercent: 79}, Connected: false}, Change{Connectivity: true}},
		{"plugged", Sample{Battery: status.Battery{ChargePercent: 79, Plugged: true}, Connected: false}, Change{Battery: true}},
		{"both", Sample{Battery: status.Battery{ChargePercent: 79, Plugged: true, Charging: true}, Connected: true}, Change{Battery: true, Connectivity: true}},
	}
	for _, tc := range cases {
		sample := tc.sample
		if got := s.Update(&sample, nil); got != tc.want {
			t.Fatalf("%s: Update change = %+v, want %+v", tc.name, got, tc.want)
		}
	}
	if (Change{}).Any() || !(Change{Battery: true}).Any() {
		t.Fatalf("Change.Any misreports")
	}
}

func TestStore_UpdateErrorKeepsPreviousData(t *testing.T) {
	var s Store

	s.Update(&Sample{Battery: status.Battery{ChargePercent: 42}}, nil)
	prev := s.Snapshot()

	before := time.Now()
	origErr := errors.New("boom")
	if change := s.Update(nil, origErr); change.Any() {
		t.Fatalf("error Update reported change %+v", change)
	}

	snap := s.Snapshot()
	if snap.HasSample != prev.HasSample || snap.Sample != prev.Sample {
		t.Fatalf("sample changed on error: got %+v want %+v", snap.Sample, prev.Sample)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.LastError == nil || snap.LastError.Error() != "boom" {
		t.Fatalf("LastError = %v, want boom", snap.LastError)
	}
	if reflect.ValueOf(snap.LastError).Pointer() == reflect.ValueOf(origErr).Pointer() {
		t.Fatalf("Snapshot should clone error instance")
	}
}

func TestStore_ConsecutiveFailures(t *testing.T) {
	var s Store

	snap := s.Snapshot()
	if snap.ConsecutiveFailures != 0 || snap.IsStale() {
		t.Fatalf("fresh store: failures=%d stale=%v", snap.ConsecutiveFailures, snap.IsStale())
	}

	s.Update(nil, errors.New("fail 1"))
	snap = s.Snapshot()
	if snap.ConsecutiveFailures != 1 || snap.IsStale() {
		t.Fatalf("after 1 failure: failures=%d stale=%v", snap.ConsecutiveFailures, snap.IsStale())
	}

	s.Update(nil, errors.New("fail 2"))
	snap = s.Snapshot()
	if snap.ConsecutiveFailures != 2 || !snap.IsStale() {
		t.Fatalf("after 2 failures: failures=%d stale=%v", snap.ConsecutiveFailures, snap.IsStale())
	}

	s.Update(&Sample{Connected: true}, nil)
	snap = s.Snapshot()
	if snap.ConsecutiveFailures != 0 || snap.IsStale() {
		t.Fatalf("after success: failures=%d stale=%v", snap.ConsecutiveFailures, snap.IsStale())
	}
}

func TestStore_NilSampleWithoutErrorIsIgnored(t *testing.T) {
	var s Store
	if change := s.Update(nil, nil); change.Any() {
		t.Fatalf("Update(nil, nil) change = %+v, want none", change)
	}
	if s.Snapshot().HasSample {
		t.Fatalf("HasSample = true, want false")
	}
}
