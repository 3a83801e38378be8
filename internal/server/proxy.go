package server

import (
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi"
)

// proxy forwards the request to the configured upstream origin. The upstream
// answer is passed through verbatim: status, headers and body. Transport
// failures surface as a 500 with a JSON error.
func (s server) proxy(w http.ResponseWriter, r *http.Request) {
	if s.proxyTarget == nil {
		writeError(w, http.StatusInternalServerError, "proxy is not configured")
		return
	}

	u := *s.proxyTarget
	u.Path = strings.TrimSuffix(u.Path, "/") + "/" + chi.URLParam(r, "*")
	u.RawQuery = r.URL.RawQuery

	req, err := http.NewRequestWithContext(r.Context(), r.Method, u.String(), r.Body)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	req.Header = r.Header.Clone()
	// the upstream must see its own host and no browser provenance
	req.Header.Del("Host")
	req.Header.Del("Origin")
	req.Header.Del("Referer")
	req.Host = u.Host

	resp, err := s.proxyClient.Do(req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer resp.Body.Close() // nolint

	for k, vv := range resp.Header {
		for _, v := range vv {
			w.Header().Add(k, v)
		}
	}
	w.WriteHeader(resp.StatusCode)
	_, _ = io.Copy(w, resp.Body)
}
