package tsync

import (
	"errors"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Group runs tasks with bounded concurrency and collects every error instead
// of stopping at the first one. Wait returns them joined.
type Group struct {
	eg   errgroup.Group
	mu   sync.Mutex
	errs []error
}

func NewGroup(limit int) *Group {
	g := &Group{}
	g.eg.SetLimit(limit)
	return g
}

func (g *Group) Go(fn func() error) {
	g.eg.Go(func() error {
		if err := fn(); err != nil {
			g.mu.Lock()
			g.errs = append(g.errs, err)
			g.mu.Unlock()
		}
		return nil
	})
}

func (g *Group) Wait() error {
	_ = g.eg.Wait()
	return errors.Join(g.errs...)
}
