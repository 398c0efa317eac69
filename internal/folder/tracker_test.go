package folder

import (
	"sync"
	"testing"
)

func TestTrackerInitialState(t *testing.T) {
	tr := NewTracker()

	if tr.State() != Enumerating {
		t.Errorf("State() = %v, want Enumerating", tr.State())
	}
	if tr.IsLoading() {
		t.Error("tracker must not report Loading before enumeration completes")
	}
	if tr.IsReady() {
		t.Error("tracker must not report Ready before enumeration completes")
	}
	if _, set := tr.Expected(); set {
		t.Error("expected count must be unset initially")
	}
}

func TestTrackerZeroExpectedIsImmediatelyReady(t *testing.T) {
	tr := NewTracker()
	tr.SetExpected(0)

	if !tr.IsReady() {
		t.Error("zero expected must be immediately Ready")
	}
	if tr.IsLoading() {
		t.Error("zero expected must never report Loading")
	}
}

func TestTrackerLoadingUntilAllOutcomes(t *testing.T) {
	tr := NewTracker()
	tr.SetExpected(3)

	if tr.State() != Loading {
		t.Fatalf("State() = %v, want Loading", tr.State())
	}

	tr.RecordOutcome()
	tr.RecordOutcome()
	if tr.IsReady() {
		t.Error("tracker reported Ready with outcomes outstanding")
	}

	tr.RecordOutcome()
	if !tr.IsReady() {
		t.Error("tracker not Ready after all outcomes")
	}
	if tr.Finished() != 3 {
		t.Errorf("Finished() = %d, want 3", tr.Finished())
	}
}

func TestTrackerEarlyOutcomesDoNotYieldReady(t *testing.T) {
	tr := NewTracker()

	// One outcome arrives before enumeration finishes.
	tr.RecordOutcome()
	if tr.IsReady() {
		t.Fatal("tracker reported Ready before expected count was set")
	}

	// Enumeration then discovers two files; by raw count one outcome could
	// look like half done, but readiness needs both.
	tr.SetExpected(2)
	if tr.IsReady() {
		t.Fatal("tracker reported Ready with one of two outcomes")
	}
	if tr.State() != Loading {
		t.Fatalf("State() = %v, want Loading", tr.State())
	}

	tr.RecordOutcome()
	if !tr.IsReady() {
		t.Error("tracker not Ready after second outcome")
	}
}

func TestTrackerFinishedNeverExceedsExpected(t *testing.T) {
	tr := NewTracker()
	tr.SetExpected(2)

	tr.RecordOutcome()
	tr.RecordOutcome()
	tr.RecordOutcome() // spurious extra event

	if tr.Finished() != 2 {
		t.Errorf("Finished() = %d, want 2", tr.Finished())
	}
	if !tr.IsReady() {
		t.Error("tracker should stay Ready")
	}
}

func TestTrackerSetExpectedOnce(t *testing.T) {
	tr := NewTracker()
	tr.SetExpected(2)
	tr.SetExpected(5) // ignored

	expected, set := tr.Expected()
	if !set || expected != 2 {
		t.Errorf("Expected() = (%d, %v), want (2, true)", expected, set)
	}
}

func TestTrackerReadyIsTerminal(t *testing.T) {
	tr := NewTracker()
	tr.SetExpected(1)
	tr.RecordOutcome()

	if !tr.IsReady() {
		t.Fatal("tracker not Ready")
	}
	tr.RecordOutcome()
	if !tr.IsReady() {
		t.Error("tracker left Ready after extra outcome")
	}
}

func TestTrackerConcurrentOutcomes(t *testing.T) {
	const n = 64
	tr := NewTracker()
	tr.SetExpected(n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tr.RecordOutcome()
		}()
	}
	wg.Wait()

	if tr.Finished() != n {
		t.Errorf("Finished() = %d, want %d", tr.Finished(), n)
	}
	if !tr.IsReady() {
		t.Error("tracker not Ready after concurrent outcomes")
	}
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase Phase
		want  string
	}{
		{Enumerating, "enumerating"},
		{Loading, "loading"},
		{Ready, "ready"},
		{Phase(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.want {
			t.Errorf("Phase(%d).String() = %q, want %q", tt.phase, got, tt.want)
		}
	}
}
