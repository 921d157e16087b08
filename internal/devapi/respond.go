package devapi

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

// WriteJSON writes a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// WriteDetail writes the {"detail": "..."} body the content API uses for
// non-field errors.
func WriteDetail(w http.ResponseWriter, statusCode int, detail string) {
	WriteJSON(w, statusCode, map[string]string{"detail": detail})
}

// WriteNotFound writes the content API's 404 body.
func WriteNotFound(w http.ResponseWriter) {
	WriteDetail(w, http.StatusNotFound, "Not found.")
}

// WriteFieldErrors writes a 400 with one message list per field.
func WriteFieldErrors(w http.ResponseWriter, fields map[string][]string) {
	WriteJSON(w, http.StatusBadRequest, fields)
}
