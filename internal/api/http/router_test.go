package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"alumni-trace-backend/internal/domain"
	"alumni-trace-backend/internal/repository"
	"alumni-trace-backend/internal/security"
	"alumni-trace-backend/internal/service"
)

const testTokenSecret = "0123456789abcdef0123456789abcdef"

type routerFixture struct {
	alumni        *mockAlumniService
	consultations *mockConsultationService
	auth          *mockAuthService
	diag          *mockDiagService
	tokens        security.TokenManager
	handler       http.Handler
}

func newRouterFixture() *routerFixture {
	f := &routerFixture{
		alumni:        new(mockAlumniService),
		consultations: new(mockConsultationService),
		auth:          new(mockAuthService),
		diag:          new(mockDiagService),
		tokens:        security.NewTokenManager(testTokenSecret),
	}
	f.handler = NewRouter(RouterConfig{
		Auth:          NewAuthHandler(f.auth),
		Alumni:        NewAlumniHandler(f.alumni),
		Consultations: NewConsultationHandler(f.consultations),
		Diag:          NewDiagHandler(f.diag),
		Tokens:        f.tokens,
	})
	return f
}

func (f *routerFixture) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		assert.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func (f *routerFixture) sessionToken(t *testing.T) string {
	t.Helper()
	token, _, err := f.tokens.GenerateSessionToken("School Registrar", time.Hour)
	assert.NoError(t, err)
	return token
}

func TestHealthEndpoint(t *testing.T) {
	f := newRouterFixture()
	rec := f.do(t, http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLogin_Success(t *testing.T) {
	f := newRouterFixture()
	f.auth.On("Login", mock.Anything, "registrar-secret").
		Return("a.b.c", time.Now().Add(time.Hour), nil)

	rec := f.do(t, http.MethodPost, "/api/auth/login", map[string]string{"password": "registrar-secret"}, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp loginResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "a.b.c", resp.Token)
}

func TestLogin_WrongPassword(t *testing.T) {
	f := newRouterFixture()
	f.auth.On("Login", mock.Anything, "guess").
		Return("", time.Time{}, domain.NewUnauthorizedError("Invalid password"))

	rec := f.do(t, http.MethodPost, "/api/auth/login", map[string]string{"password": "guess"}, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	var resp errorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, domain.CodeInvalidCredentials, resp.Code)
}

func TestRegistrarRoutes_RequireSession(t *testing.T) {
	f := newRouterFixture()

	for _, tc := range []struct {
		method, path string
	}{
		{http.MethodGet, "/api/alumni/pending"},
		{http.MethodGet, "/api/alumni/manage"},
		{http.MethodGet, "/api/consultations/requests"},
		{http.MethodPost, "/api/consultations/send"},
		{http.MethodGet, "/api/diag/firestore"},
	} {
		rec := f.do(t, tc.method, tc.path, nil, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", tc.method, tc.path)
	}
}

func TestRegistrarRoutes_RejectExpiredSession(t *testing.T) {
	f := newRouterFixture()
	expired, _, err := f.tokens.GenerateSessionToken("School Registrar", -time.Minute)
	assert.NoError(t, err)

	rec := f.do(t, http.MethodGet, "/api/alumni/pending", nil, expired)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListPending_WithSession(t *testing.T) {
	f := newRouterFixture()
	f.alumni.On("ListPending", mock.Anything).Return([]domain.Alumnus{
		{ID: "alum-1", Name: "Juan Dela Cruz", Status: domain.AlumnusStatusPending},
	}, nil)

	rec := f.do(t, http.MethodGet, "/api/alumni/pending", nil, f.sessionToken(t))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Juan Dela Cruz")
}

func TestReviewRegistration_PassesRegistrarName(t *testing.T) {
	f := newRouterFixture()
	f.alumni.On("ReviewRegistration", mock.Anything, "alum-1", "approve", "School Registrar").
		Return("Registration approved", nil)

	rec := f.do(t, http.MethodPost, "/api/alumni/pending",
		map[string]string{"alumniId": "alum-1", "action": "approve"}, f.sessionToken(t))

	assert.Equal(t, http.StatusOK, rec.Code)
	f.alumni.AssertExpectations(t)
}

func TestRegister_ConflictMapsTo409(t *testing.T) {
	f := newRouterFixture()
	f.alumni.On("Register", mock.Anything, mock.Anything).
		Return(nil, "", domain.NewConflictError(domain.CodeAlumnusExists, "already exists"))

	rec := f.do(t, http.MethodPost, "/api/alumni", service.RegisterAlumnusInput{Name: "Juan Dela Cruz"}, "")

	assert.Equal(t, http.StatusConflict, rec.Code)
	var resp errorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, domain.CodeAlumnusExists, resp.Code)
}

func TestSubmitConsultation_Created(t *testing.T) {
	f := newRouterFixture()
	f.consultations.On("SubmitRequest", mock.Anything, mock.Anything).
		Return(&domain.ConsultationRequest{ID: "req-1", Status: domain.ConsultationStatusPending},
			"Request sent!", nil)

	rec := f.do(t, http.MethodPost, "/api/consultations/requests",
		service.ConsultationRequestInput{AlumniID: "alum-1"}, "")

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "req-1")
}

func TestSubmitConsultation_ActiveConflict(t *testing.T) {
	f := newRouterFixture()
	f.consultations.On("SubmitRequest", mock.Anything, mock.Anything).
		Return(nil, "", domain.NewConflictError(domain.CodeActiveRequestExists, "active request exists"))

	rec := f.do(t, http.MethodPost, "/api/consultations/requests",
		service.ConsultationRequestInput{AlumniID: "alum-1"}, "")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), domain.CodeActiveRequestExists)
}

func TestReviewConsultation_DispatchFailureMapsTo502(t *testing.T) {
	f := newRouterFixture()
	f.consultations.On("ReviewRequest", mock.Anything, "req-1", domain.ConsultationStatusApproved).
		Return(nil, domain.NewNotificationError("failed to send email", "502 from provider", nil))

	rec := f.do(t, http.MethodPut, "/api/consultations/requests",
		map[string]string{"requestId": "req-1", "status": "approved"}, f.sessionToken(t))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "502 from provider")
}

func TestReviewConsultation_InvalidStateMapsTo422(t *testing.T) {
	f := newRouterFixture()
	f.consultations.On("ReviewRequest", mock.Anything, "req-1", domain.ConsultationStatusRejected).
		Return(nil, domain.NewInvalidStateError("request is already approved"))

	rec := f.do(t, http.MethodPut, "/api/consultations/requests",
		map[string]string{"requestId": "req-1", "status": "rejected"}, f.sessionToken(t))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), domain.CodeInvalidTransition)
}

func TestListRequests_ParsesFilter(t *testing.T) {
	f := newRouterFixture()
	f.consultations.On("ListRequests", mock.Anything, repository.ConsultationFilter{
		AlumniID: "alum-1",
		Status:   domain.ConsultationStatusPending,
		Limit:    5,
	}).Return([]domain.ConsultationRequest{}, nil)

	rec := f.do(t, http.MethodGet, "/api/consultations/requests?alumniId=alum-1&status=pending&limit=5", nil, f.sessionToken(t))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListRequests_BadLimit(t *testing.T) {
	f := newRouterFixture()

	rec := f.do(t, http.MethodGet, "/api/consultations/requests?limit=many", nil, f.sessionToken(t))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteAlumnus_NotFoundMapsTo404(t *testing.T) {
	f := newRouterFixture()
	f.alumni.On("Delete", mock.Anything, "missing").
		Return(domain.NewNotFoundError("alumni record not found"))

	rec := f.do(t, http.MethodDelete, "/api/alumni/manage?alumniId=missing", nil, f.sessionToken(t))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInvalidJSONBody(t *testing.T) {
	f := newRouterFixture()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString("{"))
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
