package http

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"alumni-trace-backend/internal/domain"
	"alumni-trace-backend/internal/repository"
	"alumni-trace-backend/internal/service"
)

type mockAlumniService struct {
	mock.Mock
}

func (m *mockAlumniService) Register(ctx context.Context, in service.RegisterAlumnusInput) (*domain.Alumnus, string, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*domain.Alumnus), args.String(1), args.Error(2)
}

func (m *mockAlumniService) Directory(ctx context.Context, strand, query string) ([]domain.Alumnus, error) {
	args := m.Called(ctx, strand, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Alumnus), args.Error(1)
}

func (m *mockAlumniService) ListPending(ctx context.Context) ([]domain.Alumnus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Alumnus), args.Error(1)
}

func (m *mockAlumniService) ReviewRegistration(ctx context.Context, alumniID, action, reviewedBy string) (string, error) {
	args := m.Called(ctx, alumniID, action, reviewedBy)
	return args.String(0), args.Error(1)
}

func (m *mockAlumniService) ListApproved(ctx context.Context) ([]domain.Alumnus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Alumnus), args.Error(1)
}

func (m *mockAlumniService) AddDirect(ctx context.Context, in service.AddAlumnusInput) (*domain.Alumnus, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Alumnus), args.Error(1)
}

func (m *mockAlumniService) Update(ctx context.Context, in service.UpdateAlumnusInput) error {
	args := m.Called(ctx, in)
	return args.Error(0)
}

func (m *mockAlumniService) Delete(ctx context.Context, alumniID string) error {
	args := m.Called(ctx, alumniID)
	return args.Error(0)
}

type mockConsultationService struct {
	mock.Mock
}

func (m *mockConsultationService) SubmitRequest(ctx context.Context, in service.ConsultationRequestInput) (*domain.ConsultationRequest, string, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*domain.ConsultationRequest), args.String(1), args.Error(2)
}

func (m *mockConsultationService) ReviewRequest(ctx context.Context, requestID string, target domain.ConsultationStatus) (*domain.ConsultationRequest, error) {
	args := m.Called(ctx, requestID, target)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConsultationRequest), args.Error(1)
}

func (m *mockConsultationService) ListRequests(ctx context.Context, filter repository.ConsultationFilter) ([]domain.ConsultationRequest, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ConsultationRequest), args.Error(1)
}

func (m *mockConsultationService) SendConsultation(ctx context.Context, in service.DirectConsultationInput) (string, error) {
	args := m.Called(ctx, in)
	return args.String(0), args.Error(1)
}

func (m *mockConsultationService) ListDispatches(ctx context.Context, alumniID string, limit int) ([]domain.ConsultationDispatch, error) {
	args := m.Called(ctx, alumniID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ConsultationDispatch), args.Error(1)
}

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Login(ctx context.Context, password string) (string, time.Time, error) {
	args := m.Called(ctx, password)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

type mockDiagService struct {
	mock.Mock
}

func (m *mockDiagService) SendTestEmail(ctx context.Context, to string) error {
	args := m.Called(ctx, to)
	return args.Error(0)
}

func (m *mockDiagService) CheckDatastore(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
