package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	chimiddleware "github.com/go-chi/chi/middleware"
	"github.com/sirupsen/logrus"
)

func writeOK(w http.ResponseWriter, status int, v interface{}) {
	body, _ := json.Marshal(v)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeOK(w, status, Error{Error: message})
}

// writeInternalErrorf logs the real cause with the request id and hides it
// from the client.
func writeInternalErrorf(ctx context.Context, w http.ResponseWriter, format string, args ...interface{}) {
	logrus.WithField("request_id", chimiddleware.GetReqID(ctx)).Error(fmt.Sprintf(format, args...))

	writeError(w, http.StatusInternalServerError, "internal error")
}
