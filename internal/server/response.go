package server

import (
	"encoding/json"
	"net/http"

	"github.com/abhisek/qtigen/internal/qti"
)

type errorResponse struct {
	Error string   `json:"error"`
	Kind  qti.Kind `json:"kind,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, kind qti.Kind, msg string) {
	writeJSON(w, code, errorResponse{Error: msg, Kind: kind})
}

// statusFor maps a conversion failure kind to an HTTP status code.
func statusFor(kind qti.Kind) int {
	switch kind {
	case qti.KindValidation:
		return http.StatusBadRequest
	case qti.KindConfiguration:
		return http.StatusServiceUnavailable
	case qti.KindProvider:
		return http.StatusBadGateway
	case qti.KindEmptyResult, qti.KindMalformedResult:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
