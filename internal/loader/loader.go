// Package loader defines the asset loader collaborator: request dispatch with
// opaque tokens and exactly-once terminal event delivery, plus a concrete
// YAML-backed implementation.
package loader

import (
	"context"

	"github.com/google/uuid"
)

// Token identifies one in-flight load request. Tokens are opaque; callers
// only correlate them with the terminal event that carries the same token.
type Token string

// NewToken returns a fresh request token.
func NewToken() Token {
	return Token(uuid.NewString())
}

// Event is the terminal outcome of one load request. Exactly one event is
// delivered per request: either Ref holds the loaded asset reference, or Err
// explains the failure. Delivery timing and order are unspecified.
type Event[R any] struct {
	Token Token
	Path  string
	Ref   R
	Err   error
}

// Failed reports whether the outcome is a failure.
func (e Event[R]) Failed() bool {
	return e.Err != nil
}

// Loader dispatches asset load requests and delivers terminal events.
//
// Load returns immediately with a request token; the matching event arrives
// later on Events. There is no cancellation: once requested, a load always
// produces its terminal event, even if the caller has stopped caring.
type Loader[R any] interface {
	Load(ctx context.Context, path string) Token
	Events() <-chan Event[R]
}
