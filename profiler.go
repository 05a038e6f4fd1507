// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package profiler tracks the current profiling session of a logical
// execution context, so that code deep in a call chain can find the session
// started by its request without passing it around explicitly.
package profiler

import (
	"sync"
	"time"

	"github.com/pion/profiler/internal/profiling"
	"github.com/pion/randutil"
)

const (
	runesAlphaNumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	profilerIDLength  = 16
)

//nolint:gochecknoglobals
var globalMathRandomGenerator = randutil.NewMathRandomGenerator()

// Profiler is a handle to one in-flight profiling session.
type Profiler struct {
	id      string
	name    string
	started time.Time

	lock    sync.RWMutex
	active  bool
	stopped time.Time
	task    profiling.Task
}

func newProfiler(name string) *Profiler {
	return &Profiler{
		id:      generateProfilerID(),
		name:    name,
		started: time.Now(),
		active:  true,
	}
}

func generateProfilerID() string {
	id, err := randutil.GenerateCryptoRandomString(profilerIDLength, runesAlphaNumeric)
	if err != nil {
		return globalMathRandomGenerator.GenerateString(profilerIDLength, runesAlphaNumeric)
	}

	return id
}

// ID returns the random identifier of the session.
func (p *Profiler) ID() string {
	return p.id
}

// Name returns the session name.
func (p *Profiler) Name() string {
	return p.name
}

// Started returns the time the session was started.
func (p *Profiler) Started() time.Time {
	return p.started
}

// Stopped returns the time the session was finalized, or the zero time
// while it is still active.
func (p *Profiler) Stopped() time.Time {
	p.lock.RLock()
	defer p.lock.RUnlock()

	return p.stopped
}

// IsActive reports whether the session has not been finalized yet.
func (p *Profiler) IsActive() bool {
	p.lock.RLock()
	defer p.lock.RUnlock()

	return p.active
}

func (p *Profiler) String() string {
	return p.name + "/" + p.id
}

func (p *Profiler) setTask(task profiling.Task) {
	p.lock.Lock()
	defer p.lock.Unlock()

	p.task = task
}

// stop finalizes the session. It returns false if it was already stopped.
func (p *Profiler) stop() bool {
	p.lock.Lock()
	defer p.lock.Unlock()

	if !p.active {
		return false
	}
	p.active = false
	p.stopped = time.Now()
	if p.task != nil {
		p.task.End()
	}

	return true
}
