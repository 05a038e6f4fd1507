// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package profiler

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/pion/profiler/internal/profiling"
	"github.com/pion/transport/v3/test"
	"github.com/stretchr/testify/assert"
)

var errTestWorker = errors.New("worker failed")

func TestGroupForksPerGoroutine(t *testing.T) {
	report := test.CheckRoutines(t)
	defer report()

	p := newTestProvider(t, ProviderConfig{})
	ctx, parent := p.Start(context.Background(), "parent")

	group, _ := p.NewGroup(ctx)
	group.SetLimit(4)

	const workers = 8
	inherited := make(chan *Profiler, workers)
	started := make(chan *Profiler, workers)
	for i := 0; i < workers; i++ {
		name := fmt.Sprintf("worker-%d", i)
		group.Go(func(ctx context.Context) error {
			inherited <- p.Current(ctx)

			ctx, prof := p.Start(ctx, name)
			if p.Current(ctx) != prof {
				return fmt.Errorf("%s sees a foreign profiler", name) //nolint:goerr113
			}
			started <- prof
			p.Stop(ctx, true)

			return nil
		})
	}
	assert.NoError(t, group.Wait())
	close(inherited)
	close(started)

	for prof := range inherited {
		assert.Same(t, parent, prof)
	}
	names := map[string]bool{}
	for prof := range started {
		names[prof.Name()] = true
	}
	assert.Len(t, names, workers)
	assert.Same(t, parent, p.Current(ctx))
}

func TestGroupAppliesSessionLabels(t *testing.T) {
	p := newTestProvider(t, ProviderConfig{})
	ctx, parent := p.Start(context.Background(), "labelled")

	group, _ := p.NewGroup(ctx)
	group.Go(func(ctx context.Context) error {
		id, _ := profiling.SessionID(ctx)
		if id != parent.ID() {
			return errTestWorker
		}

		return nil
	})
	assert.NoError(t, group.Wait())
}

func TestGroupError(t *testing.T) {
	p := newTestProvider(t, ProviderConfig{})

	group, groupCtx := p.NewGroup(context.Background())
	group.Go(func(context.Context) error {
		return errTestWorker
	})
	assert.ErrorIs(t, group.Wait(), errTestWorker)
	assert.Error(t, groupCtx.Err())
}
