// Package middleware ...
package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"time"
)

// Storage ...
type Storage interface {
	Get(key string) []byte
	Set(key string, content []byte, duration time.Duration)
}

// Cached wraps handler with a response cache. Entries are keyed by request
// URI plus the authenticated user, so personalized responses are never
// replayed across users. Only successful runs are stored; the store decides
// expiry.
func Cached(storage Storage, ttl time.Duration, handler func(w http.ResponseWriter, r *http.Request)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := r.RequestURI
		if id := UserID(r.Context()); id != "" {
			key = id + ":" + key
		}

		if entry := storage.Get(key); entry != nil {
			ctype, content := decodeEntry(entry)
			if ctype != "" {
				w.Header().Set("Content-Type", ctype)
			}
			_, _ = w.Write(content)
			return
		}

		c := httptest.NewRecorder()
		handler(c, r)

		for k, v := range c.Header() {
			w.Header()[k] = v
		}

		w.WriteHeader(c.Code)
		content := c.Body.Bytes()

		if c.Code == http.StatusOK {
			storage.Set(key, encodeEntry(c.Header().Get("Content-Type"), content), ttl)
		}

		_, _ = w.Write(content)
	}
}

// Entries carry the content type in front of the body, NUL-separated, so the
// store stays a plain byte store.

func encodeEntry(ctype string, body []byte) []byte {
	entry := make([]byte, 0, len(ctype)+1+len(body))
	entry = append(entry, ctype...)
	entry = append(entry, 0)

	return append(entry, body...)
}

func decodeEntry(entry []byte) (ctype string, body []byte) {
	i := bytes.IndexByte(entry, 0)
	if i < 0 {
		return "", entry
	}

	return string(entry[:i]), entry[i+1:]
}
