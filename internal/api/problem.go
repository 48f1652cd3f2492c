package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/highshiftmedia/crmhub/internal/crm"
	"github.com/highshiftmedia/crmhub/internal/validation"
)

// Problem represents an RFC 7807 Problem Details response.
type Problem struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail"`
	Instance string `json:"instance,omitempty"`
}

// problemTypes maps HTTP status codes to RFC 7807 type URIs and titles.
var problemTypes = map[int]struct {
	typeURI string
	title   string
}{
	http.StatusUnauthorized: {
		typeURI: "https://crmhub.highshift.media/errors/unauthorized",
		title:   "Unauthorized",
	},
	http.StatusBadRequest: {
		typeURI: "https://crmhub.highshift.media/errors/bad-request",
		title:   "Bad Request",
	},
	http.StatusNotFound: {
		typeURI: "https://crmhub.highshift.media/errors/not-found",
		title:   "Not Found",
	},
	http.StatusInternalServerError: {
		typeURI: "https://crmhub.highshift.media/errors/internal-error",
		title:   "Internal Server Error",
	},
	http.StatusUnprocessableEntity: {
		typeURI: "https://crmhub.highshift.media/errors/validation-error",
		title:   "Validation Error",
	},
}

// WriteProblem writes an RFC 7807 Problem Details response.
func WriteProblem(w http.ResponseWriter, r *http.Request, status int, detail string) {
	pt, ok := problemTypes[status]
	if !ok {
		pt = struct {
			typeURI string
			title   string
		}{
			typeURI: "https://crmhub.highshift.media/errors/unknown",
			title:   http.StatusText(status),
		}
	}

	p := Problem{
		Type:     pt.typeURI,
		Title:    pt.title,
		Status:   status,
		Detail:   detail,
		Instance: r.URL.Path,
	}

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(p); err != nil {
		slog.Error("failed to encode problem response", "error", err)
	}
}

// ProblemWithErrors extends Problem with validation error details.
type ProblemWithErrors struct {
	Problem
	Errors []validation.ValidationError `json:"errors,omitempty"`
}

// WriteProblemWithErrors writes a 422 Problem Details response with field errors.
func WriteProblemWithErrors(w http.ResponseWriter, r *http.Request, detail string, errs []validation.ValidationError) {
	pt := problemTypes[http.StatusUnprocessableEntity]

	p := ProblemWithErrors{
		Problem: Problem{
			Type:     pt.typeURI,
			Title:    pt.title,
			Status:   http.StatusUnprocessableEntity,
			Detail:   detail,
			Instance: r.URL.Path,
		},
		Errors: errs,
	}

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(http.StatusUnprocessableEntity)
	if err := json.NewEncoder(w).Encode(p); err != nil {
		slog.Error("failed to encode problem response", "error", err)
	}
}

// MapServiceError converts domain errors to Problem Details responses.
func MapServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var vErr *crm.ValidationFailedError
	switch {
	case errors.As(err, &vErr):
		WriteProblemWithErrors(w, r, "Request contains invalid fields", vErr.Fields)
	case errors.Is(err, crm.ErrNotFound):
		WriteProblem(w, r, http.StatusNotFound, "Resource not found")
	default:
		// Never expose internal error details to client
		WriteProblem(w, r, http.StatusInternalServerError, "Internal Server Error")
	}
}
