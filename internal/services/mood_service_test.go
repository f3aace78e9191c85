package services

import (
	"testing"
	"time"
)

func TestMoodRecordBounds(t *testing.T) {
	store := newStubStore()
	svc := NewMoodService(store)

	for v := -2; v <= 8; v++ {
		_, err := svc.Record(v, "")
		wantOK := v >= 1 && v <= 5
		if wantOK && err != nil {
			t.Fatalf("Record(%d) rejected: %v", v, err)
		}
		if !wantOK && err == nil {
			t.Fatalf("Record(%d) accepted", v)
		}
	}
	if got := svc.Count(); got != 5 {
		t.Fatalf("ledger size = %d, want 5", got)
	}
}

func TestMoodRecordLeavesLedgerUntouchedOnError(t *testing.T) {
	store := newStubStore()
	svc := NewMoodService(store)

	if _, err := svc.Record(3, "fine"); err != nil {
		t.Fatalf("valid record: %v", err)
	}
	if _, err := svc.Record(0, "boom"); err == nil {
		t.Fatalf("out-of-range value accepted")
	}
	if got := svc.Count(); got != 1 {
		t.Fatalf("ledger size = %d after rejected record, want 1", got)
	}
}

func TestMoodRecent(t *testing.T) {
	store := newStubStore()
	svc := NewMoodService(store)
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	i := 0
	svc.now = func() time.Time {
		i++
		return base.Add(time.Duration(i) * time.Minute)
	}

	for _, v := range []int{1, 2, 3, 4, 5} {
		if _, err := svc.Record(v, ""); err != nil {
			t.Fatalf("record %d: %v", v, err)
		}
	}

	recent := svc.Recent(3)
	if len(recent) != 3 {
		t.Fatalf("len = %d, want 3", len(recent))
	}
	for i, want := range []int{5, 4, 3} {
		if recent[i].Mood != want {
			t.Fatalf("recent[%d].Mood = %d, want %d (reverse-chronological)", i, recent[i].Mood, want)
		}
	}

	// Requests past the ledger size and repeat calls are safe reads.
	if got := len(svc.Recent(50)); got != 5 {
		t.Fatalf("Recent(50) len = %d, want 5", got)
	}
	if got := len(svc.Recent(3)); got != 3 {
		t.Fatalf("repeat Recent(3) len = %d", got)
	}
}

func TestMoodAverage(t *testing.T) {
	store := newStubStore()
	svc := NewMoodService(store)

	if got := svc.Average(); got != 0 {
		t.Fatalf("empty average = %v, want 0", got)
	}
	for _, v := range []int{1, 1, 2, 1, 2} {
		if _, err := svc.Record(v, ""); err != nil {
			t.Fatalf("record: %v", err)
		}
	}
	if got := svc.Average(); got < 1.39 || got > 1.41 {
		t.Fatalf("average = %v, want 1.4", got)
	}
}
