// Package respond writes the JSON envelope every endpoint uses:
// {"success": bool, "data": ..., "error": ..., "message": ...}.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/user/journal-go/apperror"
)

// Envelope is the uniform response body.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

// JSON writes a success envelope with the given status and data.
func JSON(w http.ResponseWriter, status int, data interface{}) {
	write(w, status, Envelope{Success: true, Data: data})
}

// JSONMessage writes a success envelope carrying both data and a
// human-readable message (e.g. deletion confirmations).
func JSONMessage(w http.ResponseWriter, status int, data interface{}, message string) {
	write(w, status, Envelope{Success: true, Data: data, Message: message})
}

// Error maps err onto the envelope. Errors that are not *apperror.AppError
// become a generic 500 so no internal detail reaches the client.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := apperror.FromError(err)
	if !ok {
		appErr = apperror.NewInternalError("Internal server error", err)
	}
	if appErr.StatusCode() >= http.StatusInternalServerError {
		log.Error().Err(err).Str("method", r.Method).Str("path", r.URL.Path).Msg("request failed")
	}
	write(w, appErr.StatusCode(), Envelope{Success: false, Error: appErr.Message})
}

// Decode reads a JSON request body into dst, converting malformed input
// into a ValidationError.
func Decode(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperror.NewValidationError("Invalid request body", err)
	}
	return nil
}

// NotFoundHandler serves the envelope for unknown routes.
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	write(w, http.StatusNotFound, Envelope{Success: false, Error: "Route not found"})
}

func write(w http.ResponseWriter, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(env); err != nil {
		log.Error().Err(err).Msg("failed to encode response envelope")
	}
}
