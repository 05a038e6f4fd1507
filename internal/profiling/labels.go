// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package profiling

import (
	"context"
	"runtime/pprof"
)

// pprof labels applied to goroutines running inside a profiler session.
const (
	LabelSessionID   = "profiler session id"
	LabelSessionName = "profiler session name"
)

// WithSessionLabels returns a context carrying the session labels. Labels
// already present on ctx are kept unless overwritten.
func WithSessionLabels(ctx context.Context, id, name string) context.Context {
	return pprof.WithLabels(ctx, pprof.Labels(LabelSessionID, id, LabelSessionName, name))
}

// Apply sets the labels on ctx onto the calling goroutine.
func Apply(ctx context.Context) {
	pprof.SetGoroutineLabels(ctx)
}

// SessionID returns the session id label on ctx.
func SessionID(ctx context.Context) (string, bool) {
	return pprof.Label(ctx, LabelSessionID)
}
