// Package http wires the REST API: public registration, directory search and
// consultation intake, plus the token-gated registrar dashboard routes.
package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"alumni-trace-backend/internal/security"
)

type RouterConfig struct {
	Auth          *AuthHandler
	Alumni        *AlumniHandler
	Consultations *ConsultationHandler
	Diag          *DiagHandler
	Tokens        security.TokenManager
}

func NewRouter(cfg RouterConfig) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestLogging)

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, struct {
			Status string `json:"status"`
		}{Status: "ok"})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	// Public surface: registration, directory, consultation intake.
	api.HandleFunc("/auth/login", cfg.Auth.Login).Methods(http.MethodPost)
	api.HandleFunc("/alumni", cfg.Alumni.Register).Methods(http.MethodPost)
	api.HandleFunc("/alumni", cfg.Alumni.Directory).Methods(http.MethodGet)
	api.HandleFunc("/consultations/requests", cfg.Consultations.SubmitRequest).Methods(http.MethodPost)

	// Registrar dashboard: everything below requires a session token.
	registrar := api.PathPrefix("").Subrouter()
	registrar.Use(RequireRegistrar(cfg.Tokens))

	registrar.HandleFunc("/alumni/pending", cfg.Alumni.ListPending).Methods(http.MethodGet)
	registrar.HandleFunc("/alumni/pending", cfg.Alumni.ReviewRegistration).Methods(http.MethodPost)
	registrar.HandleFunc("/alumni/manage", cfg.Alumni.ListManaged).Methods(http.MethodGet)
	registrar.HandleFunc("/alumni/manage", cfg.Alumni.AddDirect).Methods(http.MethodPost)
	registrar.HandleFunc("/alumni/manage", cfg.Alumni.Update).Methods(http.MethodPut)
	registrar.HandleFunc("/alumni/manage", cfg.Alumni.Delete).Methods(http.MethodDelete)

	registrar.HandleFunc("/consultations/requests", cfg.Consultations.ListRequests).Methods(http.MethodGet)
	registrar.HandleFunc("/consultations/requests", cfg.Consultations.ReviewRequest).Methods(http.MethodPut)
	registrar.HandleFunc("/consultations/send", cfg.Consultations.SendConsultation).Methods(http.MethodPost)
	registrar.HandleFunc("/consultations/send", cfg.Consultations.ListDispatches).Methods(http.MethodGet)

	registrar.HandleFunc("/diag/email", cfg.Diag.SendTestEmail).Methods(http.MethodPost)
	registrar.HandleFunc("/diag/firestore", cfg.Diag.CheckFirestore).Methods(http.MethodGet)

	return r
}
