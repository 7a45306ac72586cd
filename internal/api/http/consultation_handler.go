package http

import (
	"net/http"
	"strconv"

	"alumni-trace-backend/internal/domain"
	"alumni-trace-backend/internal/repository"
	"alumni-trace-backend/internal/service"
)

type ConsultationHandler struct {
	consultations service.ConsultationService
}

func NewConsultationHandler(consultations service.ConsultationService) *ConsultationHandler {
	return &ConsultationHandler{consultations: consultations}
}

// SubmitRequest handles the public student intake form.
func (h *ConsultationHandler) SubmitRequest(w http.ResponseWriter, r *http.Request) {
	var in service.ConsultationRequestInput
	if !decodeBody(w, r, &in) {
		return
	}
	req, message, err := h.consultations.SubmitRequest(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, struct {
		Message string                      `json:"message"`
		Request *domain.ConsultationRequest `json:"request"`
	}{Message: message, Request: req})
}

type reviewConsultationRequest struct {
	RequestID string `json:"requestId"`
	Status    string `json:"status"`
}

// ReviewRequest moves a pending request to approved or rejected.
func (h *ConsultationHandler) ReviewRequest(w http.ResponseWriter, r *http.Request) {
	var body reviewConsultationRequest
	if !decodeBody(w, r, &body) {
		return
	}
	if body.RequestID == "" {
		writeError(w, domain.NewValidationError("Missing required fields: requestId"))
		return
	}
	req, err := h.consultations.ReviewRequest(r.Context(), body.RequestID, domain.ConsultationStatus(body.Status))
	if err != nil {
		writeError(w, err)
		return
	}
	message := "Request rejected"
	if req.Status == domain.ConsultationStatusApproved {
		message = "Request approved and consultation email sent to the alumni"
	}
	writeJSON(w, http.StatusOK, struct {
		Message string                      `json:"message"`
		Request *domain.ConsultationRequest `json:"request"`
	}{Message: message, Request: req})
}

// ListRequests returns stored requests, newest first. Supports ?alumniId=,
// ?status= and ?limit=.
func (h *ConsultationHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	filter := repository.ConsultationFilter{
		AlumniID: r.URL.Query().Get("alumniId"),
		Status:   domain.ConsultationStatus(r.URL.Query().Get("status")),
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			writeError(w, domain.NewValidationError("limit must be a non-negative integer"))
			return
		}
		filter.Limit = limit
	}
	requests, err := h.consultations.ListRequests(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Requests []domain.ConsultationRequest `json:"requests"`
		Count    int                          `json:"count"`
	}{Requests: requests, Count: len(requests)})
}

// SendConsultation handles the registrar-initiated direct email flow.
func (h *ConsultationHandler) SendConsultation(w http.ResponseWriter, r *http.Request) {
	var in service.DirectConsultationInput
	if !decodeBody(w, r, &in) {
		return
	}
	message, err := h.consultations.SendConsultation(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Message string `json:"message"`
	}{Message: message})
}

// ListDispatches returns the audit trail of registrar-initiated emails.
func (h *ConsultationHandler) ListDispatches(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeError(w, domain.NewValidationError("limit must be a non-negative integer"))
			return
		}
		limit = parsed
	}
	dispatches, err := h.consultations.ListDispatches(r.Context(), r.URL.Query().Get("alumniId"), limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Dispatches []domain.ConsultationDispatch `json:"dispatches"`
		Count      int                           `json:"count"`
	}{Dispatches: dispatches, Count: len(dispatches)})
}
