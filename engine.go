// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package profiler

import (
	"context"
	"sort"
	"sync"

	"github.com/pion/logging"
)

// Engine is the profiling engine a Provider reports session lifecycle to.
// Panics raised by an Engine propagate to the caller of the Provider.
type Engine interface {
	// SetProfilerActive registers p as a running session.
	SetProfilerActive(p *Profiler)
	// StopProfiler finalizes p. It must tolerate being called for a
	// Profiler that is already stopped and report false in that case.
	StopProfiler(p *Profiler) bool
	// SaveProfiler persists a finalized p.
	SaveProfiler(ctx context.Context, p *Profiler) error
}

// Storage persists finalized sessions.
type Storage interface {
	Save(ctx context.Context, p *Profiler) error
	Load(id string) (*Profiler, bool)
}

// DefaultEngineConfig is a bag of config parameters for DefaultEngine.
type DefaultEngineConfig struct {
	// Storage receives saved sessions. If nil SaveProfiler discards them.
	Storage Storage

	LoggerFactory logging.LoggerFactory
}

// DefaultEngine keeps a registry of active sessions and hands finalized
// ones to a Storage.
type DefaultEngine struct {
	lock    sync.RWMutex
	active  map[string]*Profiler
	storage Storage
	log     logging.LeveledLogger
}

// NewDefaultEngine creates a DefaultEngine.
func NewDefaultEngine(config DefaultEngineConfig) *DefaultEngine {
	loggerFactory := config.LoggerFactory
	if loggerFactory == nil {
		loggerFactory = logging.NewDefaultLoggerFactory()
	}

	return &DefaultEngine{
		active:  map[string]*Profiler{},
		storage: config.Storage,
		log:     loggerFactory.NewLogger("engine"),
	}
}

// SetProfilerActive implements Engine.
func (e *DefaultEngine) SetProfilerActive(p *Profiler) {
	e.lock.Lock()
	defer e.lock.Unlock()

	e.active[p.ID()] = p
}

// StopProfiler implements Engine.
func (e *DefaultEngine) StopProfiler(p *Profiler) bool {
	e.lock.Lock()
	delete(e.active, p.ID())
	e.lock.Unlock()

	if !p.stop() {
		e.log.Debugf("Profiler %s was already stopped", p)

		return false
	}

	return true
}

// SaveProfiler implements Engine.
func (e *DefaultEngine) SaveProfiler(ctx context.Context, p *Profiler) error {
	if e.storage == nil {
		return nil
	}

	return e.storage.Save(ctx, p)
}

// Active returns the running sessions, oldest first.
func (e *DefaultEngine) Active() []*Profiler {
	e.lock.RLock()
	defer e.lock.RUnlock()

	active := make([]*Profiler, 0, len(e.active))
	for _, p := range e.active {
		active = append(active, p)
	}
	sort.Slice(active, func(i, j int) bool {
		return active[i].Started().Before(active[j].Started())
	})

	return active
}
