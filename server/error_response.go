package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/nexus-iam/sentinel/auth"
	"github.com/nexus-iam/sentinel/registration"
)

// ErrorResponse is the envelope every failed request is translated into.
type ErrorResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Path      string    `json:"path"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	writeJSON(w, status, ErrorResponse{
		Timestamp: time.Now(),
		Status:    status,
		Error:     http.StatusText(status),
		Message:   message,
		Path:      r.URL.Path,
	})
}

// writeServiceError maps orchestrator and resolver failures onto the wire.
// A missing principal and a bad secret produce the same response so the
// endpoint cannot be used to enumerate principals.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, auth.PrincipalNotFoundErr),
		errors.Is(err, auth.InvalidCredentialsErr):
		writeError(w, r, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, auth.InvalidRefreshTokenErr):
		writeError(w, r, http.StatusUnauthorized, "Invalid or expired refresh token")
	case errors.Is(err, registration.InvalidRegistrationRequestErr),
		errors.Is(err, registration.NoHandlerForKindErr):
		writeError(w, r, http.StatusBadRequest, "Invalid registration request")
	default:
		log.Error().Err(err).Str("path", r.URL.Path).Msg("unhandled service error")
		writeError(w, r, http.StatusInternalServerError, "An unexpected error occurred")
	}
}
