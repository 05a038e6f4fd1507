// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

//go:build debug

package profiling

import (
	"context"
	"runtime/trace"
)

// Enabled reports whether sessions open runtime/trace tasks.
const Enabled = true

// StartTask opens a runtime/trace task named after the session. Regions and
// log events recorded with the returned context are grouped under it in
// `go tool trace`.
func StartTask(ctx context.Context, name string) (context.Context, Task) {
	return trace.NewTask(ctx, name)
}

// Region wraps fn in a trace region on the task carried by ctx.
func Region(ctx context.Context, name string, fn func()) {
	trace.WithRegion(ctx, name, fn)
}
