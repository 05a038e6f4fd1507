// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package profiler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware(t *testing.T) {
	storage, err := NewMemoryStorage(0)
	require.NoError(t, err)

	p := newTestProvider(t, ProviderConfig{
		StoreMode: StoreModeRequest,
		Engine:    NewDefaultEngine(DefaultEngineConfig{Storage: storage}),
	})

	seen := make(chan *Profiler, 2)
	handler := Middleware(p, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		prof := FromRequest(p, r)
		seen <- prof

		done := make(chan struct{})
		p.Go(r.Context(), func(ctx context.Context) {
			defer close(done)
			if p.Current(ctx) != prof {
				w.WriteHeader(http.StatusInternalServerError)
			}
		})
		<-done
	}))

	for _, path := range []string{"/a", "/b"} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	first, second := <-seen, <-seen
	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, "/a", first.Name())
	assert.Equal(t, "/b", second.Name())
	assert.NotEqual(t, first.ID(), second.ID())

	assert.Eventually(t, func() bool {
		return len(storage.List()) == 2
	}, time.Second, 10*time.Millisecond)
	assert.False(t, first.IsActive())
}

func TestFromRequestWithoutMiddleware(t *testing.T) {
	p := newTestProvider(t, ProviderConfig{})

	assert.Nil(t, FromRequest(p, httptest.NewRequest(http.MethodGet, "/", nil)))
}
