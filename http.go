// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package profiler

import (
	"net/http"
)

// Middleware profiles every request served by next. Each request gets its
// own slot and a session named after the request path; the session is
// stopped and saved in the background once next returns and stays
// retrievable through the request context.
func Middleware(p *Provider, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := p.store.Attach(r.Context())
		ctx, _ = p.Start(ctx, r.URL.Path)

		next.ServeHTTP(w, r.WithContext(ctx))

		p.StopAsync(ctx, false)
	})
}

// FromRequest returns the Profiler of the request, or nil.
func FromRequest(p *Provider, r *http.Request) *Profiler {
	return p.Current(r.Context())
}
