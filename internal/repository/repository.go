package repository

import (
	"context"

	"alumni-trace-backend/internal/domain"
)

type AlumniRepository interface {
	Create(ctx context.Context, alum *domain.Alumnus) error
	GetByID(ctx context.Context, id string) (*domain.Alumnus, error)
	Update(ctx context.Context, alum *domain.Alumnus) error
	Delete(ctx context.Context, id string) error

	// ListApproved returns approved alumni, newest first. strand narrows the
	// result when non-empty.
	ListApproved(ctx context.Context, strand string) ([]domain.Alumnus, error)
	ListPending(ctx context.Context) ([]domain.Alumnus, error)
	ExistsByNameAndStrand(ctx context.Context, name, strand string) (bool, error)
}

// ConsultationFilter narrows a consultation request listing. Zero values
// match everything.
type ConsultationFilter struct {
	AlumniID string
	Status   domain.ConsultationStatus
	Limit    int
}

type ConsultationRequestRepository interface {
	// CreateIfNoActive persists req with a store-enforced guard: the write
	// fails with a conflict error when the same student email already has a
	// request in an active status.
	CreateIfNoActive(ctx context.Context, req *domain.ConsultationRequest) error
	GetByID(ctx context.Context, id string) (*domain.ConsultationRequest, error)

	// SetDispatchKey persists the notification idempotency key before the
	// approval email goes out, so a retried send is detectable.
	SetDispatchKey(ctx context.Context, id, key string) error

	// CommitDecision writes the request's status, update timestamp and
	// sent-to-alumni flag in one transaction; a rejection also releases the
	// student's active-request guard.
	CommitDecision(ctx context.Context, req *domain.ConsultationRequest) error

	List(ctx context.Context, filter ConsultationFilter) ([]domain.ConsultationRequest, error)
	ListPendingOlderThanDays(ctx context.Context, days int) ([]domain.ConsultationRequest, error)
}

type DispatchLogRepository interface {
	Create(ctx context.Context, d *domain.ConsultationDispatch) error
	List(ctx context.Context, alumniID string, limit int) ([]domain.ConsultationDispatch, error)
}
