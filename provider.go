// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package profiler

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/pion/logging"
	"github.com/pion/profiler/internal/profiling"
)

const fallbackSessionName = "profiler"

// ProviderConfig is a bag of config parameters for Provider.
type ProviderConfig struct {
	// DefaultName names sessions started without a name. If empty, the base
	// name of the running executable is used.
	DefaultName string

	// Store holds the current Profiler of each logical execution context.
	// If nil, StoreMode selects one.
	Store Store

	// StoreMode selects a Store when Store is nil. Defaults to StoreModeTask.
	StoreMode StoreMode

	// Engine receives session lifecycle events. If nil, a DefaultEngine
	// without storage is used.
	Engine Engine

	LoggerFactory logging.LoggerFactory
}

// Provider tracks the current Profiler of every logical execution context.
// It is safe for concurrent use.
type Provider struct {
	defaultName string
	store       Store
	engine      Engine
	log         logging.LeveledLogger
}

// NewProvider creates a Provider.
func NewProvider(config ProviderConfig) (*Provider, error) {
	loggerFactory := config.LoggerFactory
	if loggerFactory == nil {
		loggerFactory = logging.NewDefaultLoggerFactory()
	}

	store := config.Store
	if store == nil {
		var err error
		if store, err = NewStore(config.StoreMode); err != nil {
			return nil, err
		}
	}

	engine := config.Engine
	if engine == nil {
		engine = NewDefaultEngine(DefaultEngineConfig{LoggerFactory: loggerFactory})
	}

	defaultName := config.DefaultName
	if defaultName == "" {
		defaultName = defaultSessionName()
	}

	return &Provider{
		defaultName: defaultName,
		store:       store,
		engine:      engine,
		log:         loggerFactory.NewLogger("profiler"),
	}, nil
}

func defaultSessionName() string {
	exe, err := os.Executable()
	if err != nil {
		return fallbackSessionName
	}
	name := strings.TrimSuffix(filepath.Base(exe), filepath.Ext(exe))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return fallbackSessionName
	}

	return name
}

// DefaultName returns the name given to sessions started without one.
func (p *Provider) DefaultName() string {
	return p.defaultName
}

// Current returns the Profiler visible from ctx, or nil.
func (p *Provider) Current(ctx context.Context) *Profiler {
	return p.store.Load(ctx)
}

// Start begins a new session and makes it the current one of ctx. An empty
// sessionName selects the default name. A session already visible from ctx
// is replaced without being stopped.
//
// The returned context carries the session's pprof labels and, if ctx had
// no slot yet, the slot holding the session. Contexts that already had a
// slot observe the new session too.
func (p *Provider) Start(ctx context.Context, sessionName string) (context.Context, *Profiler) {
	if sessionName == "" {
		sessionName = p.defaultName
	}

	prof := newProfiler(sessionName)
	ctx, prev := p.store.Swap(ctx, prof)
	if prev != nil {
		p.log.Debugf("Profiler %s replaced by %s without being stopped", prev, prof)
	}

	ctx = profiling.WithSessionLabels(ctx, prof.ID(), prof.Name())
	ctx, task := profiling.StartTask(ctx, prof.Name())
	prof.setTask(task)

	p.engine.SetProfilerActive(prof)
	p.log.Debugf("Started profiler %s", prof)

	return ctx, prof
}

// Stop finalizes the current session of ctx. With discardResults the
// session is no longer visible from ctx afterwards; otherwise it stays
// current so it can be retrieved and saved explicitly. Stop is a no-op when
// ctx has no current session.
func (p *Provider) Stop(ctx context.Context, discardResults bool) {
	prof := p.store.Load(ctx)
	if prof == nil {
		return
	}

	p.engine.StopProfiler(prof)
	p.log.Debugf("Stopped profiler %s", prof)
	if discardResults {
		p.store.Clear(ctx, prof)
	}
}

// StopAsync finalizes the current session of ctx before returning, then
// saves it on a new goroutine and, with discardResults, clears it from ctx
// once the save returned. Cancelling ctx does not abort the save.
//
// The returned channel yields the save result and is then closed. When ctx
// has no current session the channel is already closed.
func (p *Provider) StopAsync(ctx context.Context, discardResults bool) <-chan error {
	done := make(chan error, 1)

	prof := p.store.Load(ctx)
	if prof == nil {
		close(done)

		return done
	}

	p.engine.StopProfiler(prof)
	p.log.Debugf("Stopped profiler %s", prof)

	saveCtx := context.WithoutCancel(ctx)
	go func() {
		defer close(done)

		err := p.engine.SaveProfiler(saveCtx, prof)
		if err != nil {
			p.log.Warnf("Failed to save profiler %s: %v", prof, err)
		}
		if discardResults {
			p.store.Clear(ctx, prof)
		}
		done <- err
	}()

	return done
}

// Fork derives the context to hand to a new goroutine. With the task store
// the goroutine gets a snapshot of the current session; starting or
// clearing sessions on either side afterwards does not affect the other.
func (p *Provider) Fork(ctx context.Context) context.Context {
	child := p.store.Fork(ctx)
	p.log.Tracef("Forked context, current profiler %v", p.store.Load(child))

	return child
}

// Go runs fn on a new goroutine with a forked context. The fork happens
// before Go returns.
func (p *Provider) Go(ctx context.Context, fn func(ctx context.Context)) {
	child := p.Fork(ctx)
	go func() {
		profiling.Apply(child)
		fn(child)
	}()
}
