// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

//go:build !debug

package profiling

import "context"

// Enabled reports whether sessions open runtime/trace tasks.
// Tracing is only available when building with -tags debug.
const Enabled = false

// StartTask is a no-op in release builds.
func StartTask(ctx context.Context, _ string) (context.Context, Task) {
	return ctx, nopTask{}
}

// Region runs fn directly in release builds.
func Region(_ context.Context, _ string, fn func()) {
	fn()
}
