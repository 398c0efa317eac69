package folder

import "sync"

// Phase is the coarse load state of one cycle.
type Phase int

const (
	// Enumerating means the directory scan has not finished yet, so the
	// expected asset count is unknown.
	Enumerating Phase = iota
	// Loading means one or more accepted files still have outstanding load
	// requests.
	Loading
	// Ready means every accepted file reached a terminal outcome, success or
	// failure. Ready is terminal for a cycle.
	Ready
)

// String returns the phase name for log output.
func (p Phase) String() string {
	switch p {
	case Enumerating:
		return "enumerating"
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	default:
		return "unknown"
	}
}

// Tracker aggregates load completion for one cycle.
//
// Terminal outcomes may be reported before enumeration finishes and in any
// order; the tracker counts them but never reports Ready until the expected
// count has been set. Counters are monotonic: nothing is ever decremented,
// and once Ready is reached no transition leaves it. Mutations are
// mutex-serialized because the host may deliver completion events from more
// than one goroutine.
type Tracker struct {
	mu          sync.Mutex
	expected    int
	expectedSet bool
	finished    int
}

// NewTracker returns a tracker in the Enumerating phase.
func NewTracker() *Tracker {
	return &Tracker{}
}

// SetExpected records the number of accepted files once enumeration has
// finished. It must be called exactly once per cycle; later calls are
// ignored. Readiness is evaluated immediately: an expected count of zero
// makes the tracker Ready without any outcomes.
//
// Outcomes that arrived early are clamped so finished never exceeds expected.
func (t *Tracker) SetExpected(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.expectedSet {
		return
	}
	if n < 0 {
		n = 0
	}
	t.expected = n
	t.expectedSet = true
	if t.finished > t.expected {
		t.finished = t.expected
	}
}

// RecordOutcome counts one terminal load outcome, success or failure. Extra
// outcomes past the expected count are ignored so the finished counter never
// exceeds it.
func (t *Tracker) RecordOutcome() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.expectedSet && t.finished >= t.expected {
		return
	}
	t.finished++
}

// State returns the current phase.
func (t *Tracker) State() Phase {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state()
}

func (t *Tracker) state() Phase {
	switch {
	case !t.expectedSet:
		return Enumerating
	case t.finished < t.expected:
		return Loading
	default:
		return Ready
	}
}

// IsLoading reports whether accepted files still have outstanding requests.
func (t *Tracker) IsLoading() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state() == Loading
}

// IsReady reports whether every accepted file reached a terminal outcome.
// A cycle over an empty matching folder is immediately ready.
func (t *Tracker) IsReady() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state() == Ready
}

// Expected returns the expected count and whether enumeration has set it.
func (t *Tracker) Expected() (int, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.expected, t.expectedSet
}

// Finished returns the number of terminal outcomes counted so far.
func (t *Tracker) Finished() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.finished
}
