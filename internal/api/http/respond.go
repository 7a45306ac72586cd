package http

import (
	"encoding/json"
	"net/http"

	"alumni-trace-backend/internal/domain"
	"alumni-trace-backend/internal/logger"
)

type errorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response body", "error", err)
	}
}

// writeError maps a domain error kind to an HTTP status. Anything that is not
// a domain error is a 500 with a generic body; details stay in the log.
func writeError(w http.ResponseWriter, err error) {
	de, ok := domain.AsDomainError(err)
	if !ok {
		logger.Error("Unhandled internal error", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal server error"})
		return
	}

	status := http.StatusInternalServerError
	switch de.Kind {
	case domain.KindValidation:
		status = http.StatusBadRequest
	case domain.KindUnauthorized:
		status = http.StatusUnauthorized
	case domain.KindNotFound:
		status = http.StatusNotFound
	case domain.KindConflict:
		status = http.StatusConflict
	case domain.KindInvalidState:
		status = http.StatusUnprocessableEntity
	case domain.KindNotification:
		status = http.StatusBadGateway
	}
	writeJSON(w, status, errorResponse{Error: de.Message, Code: de.Code, Details: de.Detail})
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid JSON body"})
		return false
	}
	return true
}
