// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package profiler

import (
	"context"
	"sync"
)

// DefaultStorageCapacity is the number of sessions a MemoryStorage keeps
// when no capacity is given.
const DefaultStorageCapacity = 100

// MemoryStorage keeps the most recent finalized sessions in memory. The
// oldest session is evicted once capacity is reached.
type MemoryStorage struct {
	lock     sync.Mutex
	capacity int
	order    []string
	sessions map[string]*Profiler
	closed   bool
}

// NewMemoryStorage creates a MemoryStorage. A capacity of zero selects
// DefaultStorageCapacity.
func NewMemoryStorage(capacity int) (*MemoryStorage, error) {
	switch {
	case capacity < 0:
		return nil, errInvalidCapacity
	case capacity == 0:
		capacity = DefaultStorageCapacity
	}

	return &MemoryStorage{
		capacity: capacity,
		sessions: map[string]*Profiler{},
	}, nil
}

// Save implements Storage. Saving the same session twice keeps one copy.
func (s *MemoryStorage) Save(ctx context.Context, p *Profiler) error {
	switch {
	case p == nil:
		return errNilProfiler
	case p.IsActive():
		return errProfilerActive
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	if s.closed {
		return errStorageClosed
	}
	if _, ok := s.sessions[p.ID()]; ok {
		return nil
	}

	for len(s.order) >= s.capacity {
		delete(s.sessions, s.order[0])
		s.order = s.order[1:]
	}
	s.order = append(s.order, p.ID())
	s.sessions[p.ID()] = p

	return nil
}

// Load implements Storage.
func (s *MemoryStorage) Load(id string) (*Profiler, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()

	p, ok := s.sessions[id]

	return p, ok
}

// List returns the stored sessions, oldest first.
func (s *MemoryStorage) List() []*Profiler {
	s.lock.Lock()
	defer s.lock.Unlock()

	list := make([]*Profiler, 0, len(s.order))
	for _, id := range s.order {
		list = append(list, s.sessions[id])
	}

	return list
}

// Close drops every stored session. Later saves fail.
func (s *MemoryStorage) Close() error {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.closed = true
	s.order = nil
	s.sessions = map[string]*Profiler{}

	return nil
}
