package service

import (
	"context"
	"time"

	"alumni-trace-backend/internal/domain"
	"alumni-trace-backend/internal/repository"
)

// RegisterAlumnusInput is a public registration submission.
type RegisterAlumnusInput struct {
	Name               string `json:"name"`
	Strand             string `json:"strand"`
	CollegeCourse      string `json:"collegeCourse"`
	CurrentOccupation  string `json:"currentOccupation"`
	CredentialsInField string `json:"credentialsInField"`
}

// AddAlumnusInput is a registrar direct-add, which skips the pending queue.
type AddAlumnusInput struct {
	RegisterAlumnusInput
	Email string `json:"email"`
}

// UpdateAlumnusInput updates an existing record. Email is a pointer so the
// caller can distinguish "clear the address" from "leave it alone".
type UpdateAlumnusInput struct {
	AlumniID           string  `json:"alumniId"`
	Name               string  `json:"name"`
	Strand             string  `json:"strand"`
	CollegeCourse      string  `json:"collegeCourse"`
	CurrentOccupation  string  `json:"currentOccupation"`
	CredentialsInField string  `json:"credentialsInField"`
	Email              *string `json:"email"`
}

type AlumniService interface {
	Register(ctx context.Context, in RegisterAlumnusInput) (*domain.Alumnus, string, error)
	Directory(ctx context.Context, strand, query string) ([]domain.Alumnus, error)
	ListPending(ctx context.Context) ([]domain.Alumnus, error)
	ReviewRegistration(ctx context.Context, alumniID, action, reviewedBy string) (string, error)
	ListApproved(ctx context.Context) ([]domain.Alumnus, error)
	AddDirect(ctx context.Context, in AddAlumnusInput) (*domain.Alumnus, error)
	Update(ctx context.Context, in UpdateAlumnusInput) error
	Delete(ctx context.Context, alumniID string) error
}

// ConsultationRequestInput is a student's intake submission.
type ConsultationRequestInput struct {
	AlumniID            string `json:"alumniId"`
	AlumniEmail         string `json:"alumniEmail"`
	StudentName         string `json:"studentName"`
	StudentEmail        string `json:"studentEmail"`
	StudentContact      string `json:"studentContact"`
	ResearchTitle       string `json:"researchTitle"`
	ResearchDescription string `json:"researchDescription"`
	ConsultationNeeds   string `json:"consultationNeeds"`
}

// DirectConsultationInput is a registrar-initiated consultation email.
type DirectConsultationInput struct {
	AlumniID            string `json:"alumniId"`
	StudentName         string `json:"studentName"`
	StudentEmail        string `json:"studentEmail"`
	StudentContact      string `json:"studentContact"`
	ResearchTitle       string `json:"researchTitle"`
	ResearchDescription string `json:"researchDescription"`
	ConsultationNeeds   string `json:"consultationNeeds"`
	ExpectedDuration    string `json:"expectedDuration"`
	SenderName          string `json:"senderName"`
}

type ConsultationService interface {
	SubmitRequest(ctx context.Context, in ConsultationRequestInput) (*domain.ConsultationRequest, string, error)
	ReviewRequest(ctx context.Context, requestID string, target domain.ConsultationStatus) (*domain.ConsultationRequest, error)
	ListRequests(ctx context.Context, filter repository.ConsultationFilter) ([]domain.ConsultationRequest, error)
	SendConsultation(ctx context.Context, in DirectConsultationInput) (string, error)
	ListDispatches(ctx context.Context, alumniID string, limit int) ([]domain.ConsultationDispatch, error)
}

type AuthService interface {
	Login(ctx context.Context, password string) (token string, expiresAt time.Time, err error)
}

// DatastorePinger is the minimal surface the diagnostics endpoint needs from
// the document store.
type DatastorePinger interface {
	Ping(ctx context.Context) error
}

type DiagService interface {
	SendTestEmail(ctx context.Context, to string) error
	CheckDatastore(ctx context.Context) error
}
