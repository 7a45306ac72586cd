package http

import (
	"net/http"

	"alumni-trace-backend/internal/service"
)

// DiagHandler exposes operator-only connectivity probes for the mail provider
// and the document store.
type DiagHandler struct {
	diag service.DiagService
}

func NewDiagHandler(diag service.DiagService) *DiagHandler {
	return &DiagHandler{diag: diag}
}

type testEmailRequest struct {
	To string `json:"to"`
}

func (h *DiagHandler) SendTestEmail(w http.ResponseWriter, r *http.Request) {
	var req testEmailRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.diag.SendTestEmail(r.Context(), req.To); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Message string `json:"message"`
	}{Message: "Test email sent"})
}

func (h *DiagHandler) CheckFirestore(w http.ResponseWriter, r *http.Request) {
	if err := h.diag.CheckDatastore(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Status string `json:"status"`
	}{Status: "ok"})
}
