// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package ambient implements per-context mutable cells that follow a
// logical execution context through a context.Context.
//
// A cell is attached to a context once and then mutated in place, so every
// function holding that context observes writes made by any other. Deriving a
// child context with Fork gives the child its own cell seeded with the
// parent's value at fork time; after that neither side sees the other's
// writes.
package ambient

import (
	"context"
	"sync/atomic"
)

// Cell holds at most one value of type T. It is safe for concurrent use.
type Cell[T any] struct {
	v atomic.Pointer[T]
}

// NewCell creates a Cell holding v (which may be nil).
func NewCell[T any](v *T) *Cell[T] {
	c := &Cell[T]{}
	c.v.Store(v)

	return c
}

// Load returns the current value, or nil.
func (c *Cell[T]) Load() *T {
	if c == nil {
		return nil
	}

	return c.v.Load()
}

// Store replaces the current value.
func (c *Cell[T]) Store(v *T) {
	c.v.Store(v)
}

// Swap replaces the current value and returns the previous one.
func (c *Cell[T]) Swap(v *T) *T {
	return c.v.Swap(v)
}

// CompareAndSwap stores next only if the cell still holds prev.
func (c *Cell[T]) CompareAndSwap(prev, next *T) bool {
	return c.v.CompareAndSwap(prev, next)
}

// Key identifies one kind of cell inside a context. Distinct Keys never see
// each other's cells, even for the same T.
type Key[T any] struct {
	name string
}

// NewKey creates a Key. The name is only used for debugging output.
func NewKey[T any](name string) *Key[T] {
	return &Key[T]{name: name}
}

func (k *Key[T]) String() string {
	return "ambient.Key(" + k.name + ")"
}

// Lookup returns the cell attached to ctx under k.
func (k *Key[T]) Lookup(ctx context.Context) (*Cell[T], bool) {
	if ctx == nil {
		return nil, false
	}
	c, ok := ctx.Value(k).(*Cell[T])

	return c, ok && c != nil
}

// Value returns the value of the cell attached to ctx, or nil.
func (k *Key[T]) Value(ctx context.Context) *T {
	c, _ := k.Lookup(ctx)

	return c.Load()
}

// Attach returns a context carrying a fresh cell holding v, along with the
// cell. A nil ctx is treated as context.Background().
func (k *Key[T]) Attach(ctx context.Context, v *T) (context.Context, *Cell[T]) {
	if ctx == nil {
		ctx = context.Background()
	}
	c := NewCell(v)

	return context.WithValue(ctx, k, c), c
}

// Ensure returns ctx unchanged when it already carries a cell under k,
// otherwise it attaches an empty one.
func (k *Key[T]) Ensure(ctx context.Context) (context.Context, *Cell[T]) {
	if c, ok := k.Lookup(ctx); ok {
		return ctx, c
	}

	return k.Attach(ctx, nil)
}

// Fork derives a child context whose cell starts with the parent's current
// value. Writes through either cell are invisible to the other.
func (k *Key[T]) Fork(ctx context.Context) context.Context {
	child, _ := k.Attach(ctx, k.Value(ctx))

	return child
}
