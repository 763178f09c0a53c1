package reach

import (
	"context"
	"errors"
	"sort"
)

// Sentinel errors for reachability.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("reach: graph is nil")

	// ErrEmptySource is returned when the source ID is empty.
	ErrEmptySource = errors.New("reach: source vertex ID is empty")
)

// Option configures ReachableFrom via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks for ReachableFrom.
type Options struct {
	// Ctx allows cancellation; checked once per round.
	Ctx context.Context

	// OnRound is called after each round that reached new vertices.
	OnRound func(round, added int)
}

// DefaultOptions returns Options with a background context and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnRound: func(int, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnRound registers a per-round progress callback.
func WithOnRound(fn func(round, added int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRound = fn
		}
	}
}

// Set is an unordered collection of vertex IDs.
type Set map[string]struct{}

// Has reports whether id is in the set.
func (s Set) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of vertices in the set.
func (s Set) Len() int { return len(s) }

// Sorted returns the members in ascending order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}
