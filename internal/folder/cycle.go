package folder

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ewen/folio/internal/identity"
	"github.com/ewen/folio/internal/loader"
)

// Scanner enumerates candidate file paths in a single directory,
// non-recursively, in any order. Enumeration errors (missing directory,
// permission denied) are the scanner's to report; the cycle passes them
// through untouched.
type Scanner interface {
	Enumerate(dir string) ([]string, error)
}

// Logger is the narrow logging surface the cycle needs. Per-file failures and
// identifier collisions are warnings, never cycle errors.
type Logger interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
}

// Report summarizes one completed load cycle.
type Report struct {
	CycleID     string
	Folder      string
	Suffix      string
	Expected    int
	Loaded      int
	Failed      int
	FailedPaths []string
	StartedAt   time.Time
	Duration    time.Duration
}

// Cycle is one bulk-load operation over one (folder, suffix) pair. It owns
// its Index and Tracker; a reload is a new Cycle, never a mutation of an old
// one. There is no cancellation API; a caller that loses interest discards
// the cycle and lets in-flight requests resolve unobserved.
type Cycle[K comparable, R any] struct {
	dir     string
	deriver identity.Deriver[K]
	log     Logger

	index   *Index[K, R]
	tracker *Tracker
	sources map[K]string
	report  Report
}

// NewCycle creates a cycle for dir using the given deriver. log may be nil.
func NewCycle[K comparable, R any](dir string, deriver identity.Deriver[K], log Logger) *Cycle[K, R] {
	return &Cycle[K, R]{
		dir:     dir,
		deriver: deriver,
		log:     log,
		index:   NewIndex[K, R](),
		tracker: NewTracker(),
		sources: make(map[K]string),
	}
}

// Index returns the cycle's identifier-to-reference index.
func (c *Cycle[K, R]) Index() *Index[K, R] {
	return c.index
}

// Tracker returns the cycle's load-state tracker.
func (c *Cycle[K, R]) Tracker() *Tracker {
	return c.tracker
}

// Report returns the summary of the last Run. Zero before Run completes.
func (c *Cycle[K, R]) Report() Report {
	return c.report
}

// Source returns the file path that produced the current reference for id.
// With duplicate identifiers this is the path that won.
func (c *Cycle[K, R]) Source(id K) (string, bool) {
	path, ok := c.sources[id]
	return path, ok
}

type pendingFile[K comparable] struct {
	id   K
	path string
}

// Run executes the full cycle: enumerate the folder, skip hidden and disabled
// files before any derivation, derive an identifier per eligible file,
// dispatch one load request each, then absorb terminal events until every
// accepted file has resolved.
//
// Per-file failures are absorbed: they advance the finished count without
// populating the index, and the cycle still ends Ready. The only errors Run
// returns come from the scanner collaborator.
func (c *Cycle[K, R]) Run(ctx context.Context, scan Scanner, ld loader.Loader[R]) error {
	started := time.Now()

	paths, err := scan.Enumerate(c.dir)
	if err != nil {
		return fmt.Errorf("enumerate %s: %w", c.dir, err)
	}

	pending := make(map[loader.Token]pendingFile[K])
	seen := make(map[K]string)
	for _, path := range paths {
		if identity.IsHiddenOrDisabled(path) {
			continue
		}
		id, ok := c.deriver.Derive(path)
		if !ok {
			continue
		}
		if prior, dup := seen[id]; dup {
			c.warnf("duplicate identifier %v: %s and %s (last write wins)", id, prior, path)
		}
		seen[id] = path
		tok := ld.Load(ctx, path)
		pending[tok] = pendingFile[K]{id: id, path: path}
	}

	accepted := len(pending)
	c.tracker.SetExpected(accepted)
	c.infof("folder %s: %d file(s) accepted with suffix %s", c.dir, accepted, c.deriver.Suffix)

	var failedPaths []string
	remaining := accepted
	for remaining > 0 {
		ev := <-ld.Events()
		pf, ok := pending[ev.Token]
		if !ok {
			// Stale event from a discarded cycle sharing the loader.
			continue
		}
		delete(pending, ev.Token)
		remaining--

		if ev.Failed() {
			failedPaths = append(failedPaths, pf.path)
			c.tracker.RecordOutcome()
			c.warnf("asset failed to load and will be skipped: %s: %v", pf.path, ev.Err)
			continue
		}
		if c.index.Contains(pf.id) {
			c.warnf("identifier %v overwritten by %s", pf.id, pf.path)
		}
		c.index.Insert(pf.id, ev.Ref)
		c.sources[pf.id] = pf.path
		c.tracker.RecordOutcome()
	}

	c.report = Report{
		CycleID:     uuid.NewString(),
		Folder:      c.dir,
		Suffix:      c.deriver.Suffix,
		Expected:    accepted,
		Loaded:      c.index.Len(),
		Failed:      len(failedPaths),
		FailedPaths: failedPaths,
		StartedAt:   started,
		Duration:    time.Since(started),
	}
	if c.report.Failed == 0 {
		c.infof("loaded %d asset(s) from folder %s", c.report.Loaded, c.dir)
	} else {
		c.warnf("loaded %d of %d asset(s) from folder %s (%d failed)",
			c.report.Loaded, c.report.Expected, c.dir, c.report.Failed)
	}
	return nil
}

func (c *Cycle[K, R]) infof(format string, args ...interface{}) {
	if c.log != nil {
		c.log.Infof(format, args...)
	}
}

func (c *Cycle[K, R]) warnf(format string, args ...interface{}) {
	if c.log != nil {
		c.log.Warnf(format, args...)
	}
}
