package http

import (
	"net/http"

	"alumni-trace-backend/internal/domain"
	"alumni-trace-backend/internal/service"
)

type AlumniHandler struct {
	alumni service.AlumniService
}

func NewAlumniHandler(alumni service.AlumniService) *AlumniHandler {
	return &AlumniHandler{alumni: alumni}
}

// Register handles the public self-registration form.
func (h *AlumniHandler) Register(w http.ResponseWriter, r *http.Request) {
	var in service.RegisterAlumnusInput
	if !decodeBody(w, r, &in) {
		return
	}
	alum, message, err := h.alumni.Register(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, struct {
		Message string          `json:"message"`
		Alumnus *domain.Alumnus `json:"alumnus"`
	}{Message: message, Alumnus: alum})
}

// Directory lists approved alumni for the public search page. Supports
// ?strand= and ?q= filters.
func (h *AlumniHandler) Directory(w http.ResponseWriter, r *http.Request) {
	alumni, err := h.alumni.Directory(r.Context(), r.URL.Query().Get("strand"), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Alumni []domain.Alumnus `json:"alumni"`
		Count  int              `json:"count"`
	}{Alumni: alumni, Count: len(alumni)})
}

func (h *AlumniHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	alumni, err := h.alumni.ListPending(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Alumni []domain.Alumnus `json:"alumni"`
		Count  int              `json:"count"`
	}{Alumni: alumni, Count: len(alumni)})
}

type reviewRegistrationRequest struct {
	AlumniID string `json:"alumniId"`
	Action   string `json:"action"`
}

func (h *AlumniHandler) ReviewRegistration(w http.ResponseWriter, r *http.Request) {
	var req reviewRegistrationRequest
	if !decodeBody(w, r, &req) {
		return
	}
	message, err := h.alumni.ReviewRegistration(r.Context(), req.AlumniID, req.Action, RegistrarName(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Message string `json:"message"`
	}{Message: message})
}

func (h *AlumniHandler) ListManaged(w http.ResponseWriter, r *http.Request) {
	alumni, err := h.alumni.ListApproved(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Alumni []domain.Alumnus `json:"alumni"`
		Count  int              `json:"count"`
	}{Alumni: alumni, Count: len(alumni)})
}

func (h *AlumniHandler) AddDirect(w http.ResponseWriter, r *http.Request) {
	var in service.AddAlumnusInput
	if !decodeBody(w, r, &in) {
		return
	}
	alum, err := h.alumni.AddDirect(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, struct {
		Message string          `json:"message"`
		Alumnus *domain.Alumnus `json:"alumnus"`
	}{Message: "Alumni record added", Alumnus: alum})
}

func (h *AlumniHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in service.UpdateAlumnusInput
	if !decodeBody(w, r, &in) {
		return
	}
	if err := h.alumni.Update(r.Context(), in); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Message string `json:"message"`
	}{Message: "Alumni record updated"})
}

func (h *AlumniHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.alumni.Delete(r.Context(), r.URL.Query().Get("alumniId")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Message string `json:"message"`
	}{Message: "Alumni record deleted"})
}
