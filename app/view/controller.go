// Package view holds the per-page load state machine shared by every
// data-bearing page, and the in-flight guard for mutating actions.
package view

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/errgroup"
)

type State int

const (
	Idle State = iota
	Loading
	Ready
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// ErrStale is returned when a load finished after its activation ended or a
// newer load started. The result is not applied.
var ErrStale = errors.New("view: stale result dropped")

type LoadFunc[T any] func(ctx context.Context) (T, error)

type Snapshot[T any] struct {
	State State
	Data  T
	Err   error
}

func (s Snapshot[T]) Ready() bool  { return s.State == Ready }
func (s Snapshot[T]) Failed() bool { return s.State == Failed }

// Controller runs one page's load and keeps the last applied snapshot.
type Controller[T any] struct {
	load LoadFunc[T]

	mu   sync.Mutex
	gen  uint64
	snap Snapshot[T]
}

func New[T any](load LoadFunc[T]) *Controller[T] {
	return &Controller[T]{load: load}
}

// Load fetches from scratch. A failed load clears the data; nothing partial is kept.
func (c *Controller[T]) Load(ctx context.Context) Snapshot[T] {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.snap.State = Loading
	c.mu.Unlock()

	data, err := c.load(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen || ctx.Err() != nil {
		return Snapshot[T]{State: c.snap.State, Data: c.snap.Data, Err: ErrStale}
	}
	if err != nil {
		var zero T
		c.snap = Snapshot[T]{State: Failed, Data: zero, Err: err}
	} else {
		c.snap = Snapshot[T]{State: Ready, Data: data}
	}
	return c.snap
}

func (c *Controller[T]) Snapshot() Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snap
}

// All runs fetches concurrently. It returns the first error and cancels the
// others, so a multi-resource page is ready only when every fetch succeeded.
func All(ctx context.Context, fetches ...func(ctx context.Context) error) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, fetch := range fetches {
		fetch := fetch
		g.Go(func() error {
			return fetch(gctx)
		})
	}
	return g.Wait()
}
