// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package profiling connects profiler sessions to the Go runtime's own
// diagnostics: pprof goroutine labels and, in debug builds, runtime/trace
// tasks.
package profiling

// Task is an open runtime/trace task. End must be called exactly once.
type Task interface {
	End()
}

type nopTask struct{}

func (nopTask) End() {}
