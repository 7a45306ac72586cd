package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"alumni-trace-backend/internal/domain"
	"alumni-trace-backend/internal/email"
	"alumni-trace-backend/internal/repository"
	"alumni-trace-backend/internal/security"
)

type mockAlumniRepo struct {
	mock.Mock
}

func (m *mockAlumniRepo) Create(ctx context.Context, alum *domain.Alumnus) error {
	args := m.Called(ctx, alum)
	return args.Error(0)
}

func (m *mockAlumniRepo) GetByID(ctx context.Context, id string) (*domain.Alumnus, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Alumnus), args.Error(1)
}

func (m *mockAlumniRepo) Update(ctx context.Context, alum *domain.Alumnus) error {
	args := m.Called(ctx, alum)
	return args.Error(0)
}

func (m *mockAlumniRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockAlumniRepo) ListApproved(ctx context.Context, strand string) ([]domain.Alumnus, error) {
	args := m.Called(ctx, strand)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Alumnus), args.Error(1)
}

func (m *mockAlumniRepo) ListPending(ctx context.Context) ([]domain.Alumnus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Alumnus), args.Error(1)
}

func (m *mockAlumniRepo) ExistsByNameAndStrand(ctx context.Context, name, strand string) (bool, error) {
	args := m.Called(ctx, name, strand)
	return args.Bool(0), args.Error(1)
}

type mockRequestRepo struct {
	mock.Mock
}

func (m *mockRequestRepo) CreateIfNoActive(ctx context.Context, req *domain.ConsultationRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *mockRequestRepo) GetByID(ctx context.Context, id string) (*domain.ConsultationRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConsultationRequest), args.Error(1)
}

func (m *mockRequestRepo) SetDispatchKey(ctx context.Context, id, key string) error {
	args := m.Called(ctx, id, key)
	return args.Error(0)
}

func (m *mockRequestRepo) CommitDecision(ctx context.Context, req *domain.ConsultationRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *mockRequestRepo) List(ctx context.Context, filter repository.ConsultationFilter) ([]domain.ConsultationRequest, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ConsultationRequest), args.Error(1)
}

func (m *mockRequestRepo) ListPendingOlderThanDays(ctx context.Context, days int) ([]domain.ConsultationRequest, error) {
	args := m.Called(ctx, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ConsultationRequest), args.Error(1)
}

type mockDispatchRepo struct {
	mock.Mock
}

func (m *mockDispatchRepo) Create(ctx context.Context, d *domain.ConsultationDispatch) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *mockDispatchRepo) List(ctx context.Context, alumniID string, limit int) ([]domain.ConsultationDispatch, error) {
	args := m.Called(ctx, alumniID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ConsultationDispatch), args.Error(1)
}

type mockDispatcher struct {
	mock.Mock
}

func (m *mockDispatcher) Send(ctx context.Context, msg *email.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

type mockTokenManager struct {
	mock.Mock
}

func (m *mockTokenManager) GenerateSessionToken(name string, ttl time.Duration) (string, time.Time, error) {
	args := m.Called(name, ttl)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *mockTokenManager) ValidateSessionToken(tokenString string) (*security.RegistrarClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*security.RegistrarClaims), args.Error(1)
}
