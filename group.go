// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package profiler

import (
	"context"

	"github.com/pion/profiler/internal/profiling"
	"golang.org/x/sync/errgroup"
)

// Group is an errgroup.Group whose goroutines each run in a forked logical
// execution context.
type Group struct {
	provider *Provider
	group    *errgroup.Group
	ctx      context.Context //nolint:containedctx
}

// NewGroup creates a Group and the context it cancels when a goroutine
// fails. The returned context shares ctx's slot.
func (p *Provider) NewGroup(ctx context.Context) (*Group, context.Context) {
	group, groupCtx := errgroup.WithContext(ctx)

	return &Group{provider: p, group: group, ctx: groupCtx}, groupCtx
}

// SetLimit limits the number of goroutines running at once. A negative
// value removes the limit.
func (g *Group) SetLimit(n int) {
	g.group.SetLimit(n)
}

// Go forks the group's context and calls fn with it on a new goroutine. The
// fork captures the session current at the time Go is called.
func (g *Group) Go(fn func(ctx context.Context) error) {
	child := g.provider.Fork(g.ctx)
	g.group.Go(func() error {
		profiling.Apply(child)

		return fn(child)
	})
}

// Wait blocks until every goroutine returned and reports the first error.
func (g *Group) Wait() error {
	return g.group.Wait()
}
