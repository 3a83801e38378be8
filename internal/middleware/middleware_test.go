package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/braindead-dev/LinkU/internal/middleware/memory"
)

func TestCached(t *testing.T) {
	var calls int32

	h := Cached(memory.NewStorage(), time.Minute, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		h(w, httptest.NewRequest(http.MethodGet, "/v1/profiles/suggested", nil))
		assert.Equal(t, `{"ok":true}`, w.Body.String())
	}

	assert.EqualValues(t, 1, calls)
}

func TestCached_keyedByUser(t *testing.T) {
	h := Cached(memory.NewStorage(), time.Minute, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(UserID(r.Context())))
	})

	asUser := func(id string) string {
		r := httptest.NewRequest(http.MethodGet, "/v1/profiles/suggested", nil)
		r = r.WithContext(context.WithValue(r.Context(), userIDKey, id))

		w := httptest.NewRecorder()
		h(w, r)
		return w.Body.String()
	}

	assert.Equal(t, "alice", asUser("alice"))
	// bob must not be served alice's entry
	assert.Equal(t, "bob", asUser("bob"))
	assert.Equal(t, "alice", asUser("alice"))
}

func TestCached_keepsContentType(t *testing.T) {
	h := Cached(memory.NewStorage(), time.Minute, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[1,2]`))
	})

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		h(w, httptest.NewRequest(http.MethodGet, "/v1/profiles/suggested", nil))
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"), i)
		assert.Equal(t, `[1,2]`, w.Body.String())
	}
}

func TestCached_skipsFailures(t *testing.T) {
	var calls int32

	h := Cached(memory.NewStorage(), time.Minute, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	})

	h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/profiles/suggested", nil))
	h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/profiles/suggested", nil))

	assert.EqualValues(t, 2, calls)
}

func TestMemoryStorage_Expiry(t *testing.T) {
	s := memory.NewStorage()

	s.Set("k", []byte("v"), 10*time.Millisecond)
	require.Equal(t, []byte("v"), s.Get("k"))

	time.Sleep(20 * time.Millisecond)
	require.Nil(t, s.Get("k"))
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(rate.Limit(1), 2)

	h := rl.Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/analyze", nil)
		r.RemoteAddr = "10.0.0.1:1234"
		h.ServeHTTP(w, r)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// another ip has its own bucket
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/analyze", nil)
	r.RemoteAddr = "10.0.0.2:1234"
	h.ServeHTTP(w, r)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuth(t *testing.T) {
	var got string

	h := Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = UserID(r.Context())
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/activity", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	r := httptest.NewRequest(http.MethodGet, "/v1/activity", nil)
	r.Header.Set("Authorization", "Bearer user-1")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, r)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-1", got)
}
