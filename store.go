// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package profiler

import (
	"context"
	"fmt"

	"github.com/pion/profiler/internal/ambient"
)

// Store keeps the current Profiler of a logical execution context.
//
// There is one implementation per host environment and the Provider picks
// one at construction time.
type Store interface {
	// Attach returns a context carrying a fresh, empty slot. It marks the
	// beginning of a new logical execution context, such as a request.
	Attach(ctx context.Context) context.Context

	// Load returns the Profiler visible from ctx, or nil.
	Load(ctx context.Context) *Profiler

	// Swap makes p visible from ctx and returns the previous Profiler.
	// When ctx has no slot one is attached and the derived context is
	// returned.
	Swap(ctx context.Context, p *Profiler) (context.Context, *Profiler)

	// Clear hides p from ctx. It does nothing if another Profiler has
	// replaced p in the meantime.
	Clear(ctx context.Context, p *Profiler) bool

	// Fork derives the context handed to a new goroutine.
	Fork(ctx context.Context) context.Context
}

// StoreMode names a Store implementation.
type StoreMode string

// Store modes accepted by NewStore.
const (
	StoreModeTask    StoreMode = "task"
	StoreModeRequest StoreMode = "request"
)

// NewStore creates the Store for mode. An empty mode selects StoreModeTask.
func NewStore(mode StoreMode) (Store, error) {
	switch mode {
	case StoreModeTask, "":
		return NewTaskStore(), nil
	case StoreModeRequest:
		return NewRequestStore(), nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownStoreMode, mode)
	}
}

type slotStore struct {
	key *ambient.Key[Profiler]
}

func (s slotStore) Attach(ctx context.Context) context.Context {
	ctx, _ = s.key.Attach(ctx, nil)

	return ctx
}

func (s slotStore) Load(ctx context.Context) *Profiler {
	return s.key.Value(ctx)
}

func (s slotStore) Swap(ctx context.Context, p *Profiler) (context.Context, *Profiler) {
	ctx, cell := s.key.Ensure(ctx)

	return ctx, cell.Swap(p)
}

func (s slotStore) Clear(ctx context.Context, p *Profiler) bool {
	cell, ok := s.key.Lookup(ctx)
	if !ok {
		return false
	}

	return cell.CompareAndSwap(p, nil)
}

// TaskStore follows goroutines: Fork gives the child its own slot seeded
// with the parent's Profiler, and later writes on either side stay local.
type TaskStore struct {
	slotStore
}

// NewTaskStore creates a TaskStore with its own context key.
func NewTaskStore() *TaskStore {
	return &TaskStore{slotStore{key: ambient.NewKey[Profiler]("task")}}
}

// Fork implements Store.
func (s *TaskStore) Fork(ctx context.Context) context.Context {
	return s.key.Fork(ctx)
}

// RequestStore keeps one slot per request. Every goroutine serving the
// request shares it, so Fork returns ctx unchanged.
type RequestStore struct {
	slotStore
}

// NewRequestStore creates a RequestStore with its own context key.
func NewRequestStore() *RequestStore {
	return &RequestStore{slotStore{key: ambient.NewKey[Profiler]("request")}}
}

// Fork implements Store.
func (s *RequestStore) Fork(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}

	return ctx
}
