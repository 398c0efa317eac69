package loader

import (
	"context"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// DefaultParallelism bounds concurrent file reads when no explicit limit is
// given.
const DefaultParallelism = 8

// YAMLLoader loads asset definition files by decoding their YAML contents
// into values of type R. Each request is served on its own goroutine, bounded
// by a semaphore, and always produces exactly one terminal event.
type YAMLLoader[R any] struct {
	events chan Event[R]
	sem    chan struct{}
	wg     sync.WaitGroup
}

// NewYAMLLoader creates a loader with the given parallelism bound.
// Values < 1 fall back to DefaultParallelism. The event channel is buffered
// so slow consumers never block outcome delivery indefinitely during a
// typical cycle.
func NewYAMLLoader[R any](parallelism int) *YAMLLoader[R] {
	if parallelism < 1 {
		parallelism = DefaultParallelism
	}
	return &YAMLLoader[R]{
		events: make(chan Event[R], parallelism*4),
		sem:    make(chan struct{}, parallelism),
	}
}

// Load dispatches one request for path and returns its token. The terminal
// event arrives on Events. A context canceled before the file is read yields
// a failure event, never a dropped request.
func (l *YAMLLoader[R]) Load(ctx context.Context, path string) Token {
	tok := NewToken()
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		l.sem <- struct{}{}
		defer func() { <-l.sem }()
		l.events <- l.load(ctx, tok, path)
	}()
	return tok
}

func (l *YAMLLoader[R]) load(ctx context.Context, tok Token, path string) Event[R] {
	ev := Event[R]{Token: tok, Path: path}
	if err := ctx.Err(); err != nil {
		ev.Err = fmt.Errorf("load canceled for %s: %w", path, err)
		return ev
	}
	data, err := os.ReadFile(path)
	if err != nil {
		ev.Err = fmt.Errorf("read %s: %w", path, err)
		return ev
	}
	var ref R
	if err := yaml.Unmarshal(data, &ref); err != nil {
		ev.Err = fmt.Errorf("decode %s: %w", path, err)
		return ev
	}
	ev.Ref = ref
	return ev
}

// Events returns the terminal event channel.
func (l *YAMLLoader[R]) Events() <-chan Event[R] {
	return l.events
}

// Wait blocks until every dispatched request has delivered its event.
// Intended for teardown in hosts that drain events on another goroutine.
func (l *YAMLLoader[R]) Wait() {
	l.wg.Wait()
}
