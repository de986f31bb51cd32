// Package httpserver contains HTTP handlers and middleware.
//
// It exposes the grading and feedback endpoints as a JSON API and keeps all
// transport concerns (multipart parsing, remote fetches, status mapping)
// out of the use case layer.
package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/silver-dev/resume-checker/internal/domain"
)

type errorEnvelope struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps the domain error taxonomy onto HTTP statuses. Grading,
// extraction and schema failures all surface as 500: from the client's point
// of view the check simply failed and retrying is the only remedy.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	}
	if status == http.StatusInternalServerError {
		LoggerFrom(r).Error("request failed", slogErr(err))
	} else {
		LoggerFrom(r).Warn("request rejected", slogErr(err))
	}
	writeJSON(w, status, errorEnvelope{Error: publicMessage(err)})
}

// publicMessage keeps upstream details out of client responses.
func publicMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		return err.Error()
	case errors.Is(err, domain.ErrNotFound):
		return "not found"
	case errors.Is(err, domain.ErrExtraction):
		return "could not read the resume, make sure it is a valid PDF"
	case errors.Is(err, domain.ErrGrading), errors.Is(err, domain.ErrSchemaInvalid):
		return "grading failed, please try again"
	default:
		return "internal error"
	}
}
