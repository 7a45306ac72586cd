package service

import (
	"context"
	"strings"
	"time"

	"alumni-trace-backend/internal/domain"
	"alumni-trace-backend/internal/logger"
	"alumni-trace-backend/internal/repository"
)

const defaultReviewer = "School Registrar"

type alumniService struct {
	alumni repository.AlumniRepository
}

func NewAlumniService(alumni repository.AlumniRepository) AlumniService {
	return &alumniService{alumni: alumni}
}

func validateAlumnusFields(name, strand, course, occupation string) error {
	var missing []string
	if name == "" {
		missing = append(missing, "name")
	}
	if strand == "" {
		missing = append(missing, "strand")
	}
	if course == "" {
		missing = append(missing, "collegeCourse")
	}
	if occupation == "" {
		missing = append(missing, "currentOccupation")
	}
	if len(missing) > 0 {
		return domain.NewValidationError("Missing required fields: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Register files a public registration into the pending queue. Duplicate
// name+strand pairs are refused so the registrar never has to merge records.
func (s *alumniService) Register(ctx context.Context, in RegisterAlumnusInput) (*domain.Alumnus, string, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Strand = strings.TrimSpace(in.Strand)
	in.CollegeCourse = strings.TrimSpace(in.CollegeCourse)
	in.CurrentOccupation = strings.TrimSpace(in.CurrentOccupation)

	if err := validateAlumnusFields(in.Name, in.Strand, in.CollegeCourse, in.CurrentOccupation); err != nil {
		return nil, "", err
	}

	exists, err := s.alumni.ExistsByNameAndStrand(ctx, in.Name, in.Strand)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", domain.NewConflictError(domain.CodeAlumnusExists,
			"An alumni record with this name and strand already exists")
	}

	now := time.Now()
	alum := &domain.Alumnus{
		Name:               in.Name,
		Strand:             in.Strand,
		CollegeCourse:      in.CollegeCourse,
		CurrentOccupation:  in.CurrentOccupation,
		CredentialsInField: strings.TrimSpace(in.CredentialsInField),
		Status:             domain.AlumnusStatusPending,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := s.alumni.Create(ctx, alum); err != nil {
		return nil, "", err
	}

	logger.Info("Alumni registration submitted", "alumni_id", alum.ID, "strand", alum.Strand)
	return alum, "Registration submitted! The registrar will review your information before it appears in the directory.", nil
}

// Directory lists approved alumni, optionally narrowed by strand and a free
// text query matched against name, strand, course, occupation and
// credentials.
func (s *alumniService) Directory(ctx context.Context, strand, query string) ([]domain.Alumnus, error) {
	alumni, err := s.alumni.ListApproved(ctx, strings.TrimSpace(strand))
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return alumni, nil
	}
	filtered := make([]domain.Alumnus, 0, len(alumni))
	for _, a := range alumni {
		if strings.Contains(a.SearchText(), query) {
			filtered = append(filtered, a)
		}
	}
	return filtered, nil
}

func (s *alumniService) ListPending(ctx context.Context) ([]domain.Alumnus, error) {
	return s.alumni.ListPending(ctx)
}

func (s *alumniService) ListApproved(ctx context.Context) ([]domain.Alumnus, error) {
	return s.alumni.ListApproved(ctx, "")
}

// ReviewRegistration approves or rejects a pending registration. Rejection
// deletes the record outright; there is nothing worth keeping in a refused
// self-registration.
func (s *alumniService) ReviewRegistration(ctx context.Context, alumniID, action, reviewedBy string) (string, error) {
	alumniID = strings.TrimSpace(alumniID)
	if alumniID == "" {
		return "", domain.NewValidationError("Missing required fields: alumniId")
	}
	if reviewedBy = strings.TrimSpace(reviewedBy); reviewedBy == "" {
		reviewedBy = defaultReviewer
	}

	alum, err := s.alumni.GetByID(ctx, alumniID)
	if err != nil {
		return "", err
	}

	switch action {
	case "approve":
		if alum.Status == domain.AlumnusStatusApproved {
			return "", domain.NewInvalidStateError("registration is already approved")
		}
		now := time.Now()
		alum.Status = domain.AlumnusStatusApproved
		alum.ReviewedAt = &now
		alum.ReviewedBy = reviewedBy
		alum.UpdatedAt = now
		if err := s.alumni.Update(ctx, alum); err != nil {
			return "", err
		}
		logger.Info("Alumni registration approved", "alumni_id", alum.ID, "reviewed_by", reviewedBy)
		return "Registration approved. The record is now visible in the directory.", nil
	case "reject":
		if err := s.alumni.Delete(ctx, alum.ID); err != nil {
			return "", err
		}
		logger.Info("Alumni registration rejected", "alumni_id", alum.ID, "reviewed_by", reviewedBy)
		return "Registration rejected and removed.", nil
	default:
		return "", domain.NewValidationError("action must be %q or %q", "approve", "reject")
	}
}

// AddDirect creates an approved record straight away. Used by the registrar
// when entering alumni the school already knows.
func (s *alumniService) AddDirect(ctx context.Context, in AddAlumnusInput) (*domain.Alumnus, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Strand = strings.TrimSpace(in.Strand)
	in.CollegeCourse = strings.TrimSpace(in.CollegeCourse)
	in.CurrentOccupation = strings.TrimSpace(in.CurrentOccupation)
	in.Email = strings.TrimSpace(in.Email)

	if err := validateAlumnusFields(in.Name, in.Strand, in.CollegeCourse, in.CurrentOccupation); err != nil {
		return nil, err
	}

	exists, err := s.alumni.ExistsByNameAndStrand(ctx, in.Name, in.Strand)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.NewConflictError(domain.CodeAlumnusExists,
			"An alumni record with this name and strand already exists")
	}

	now := time.Now()
	alum := &domain.Alumnus{
		Name:               in.Name,
		Strand:             in.Strand,
		CollegeCourse:      in.CollegeCourse,
		CurrentOccupation:  in.CurrentOccupation,
		CredentialsInField: strings.TrimSpace(in.CredentialsInField),
		Email:              in.Email,
		EmailVerified:      in.Email != "",
		NeedsEmailUpdate:   in.Email == "",
		Status:             domain.AlumnusStatusApproved,
		CreatedAt:          now,
		UpdatedAt:          now,
		ReviewedAt:         &now,
		ReviewedBy:         defaultReviewer + " (Direct Add)",
	}
	if err := s.alumni.Create(ctx, alum); err != nil {
		return nil, err
	}

	logger.Info("Alumni record added directly", "alumni_id", alum.ID, "strand", alum.Strand)
	return alum, nil
}

func (s *alumniService) Update(ctx context.Context, in UpdateAlumnusInput) error {
	in.AlumniID = strings.TrimSpace(in.AlumniID)
	if in.AlumniID == "" {
		return domain.NewValidationError("Missing required fields: alumniId")
	}
	in.Name = strings.TrimSpace(in.Name)
	in.Strand = strings.TrimSpace(in.Strand)
	in.CollegeCourse = strings.TrimSpace(in.CollegeCourse)
	in.CurrentOccupation = strings.TrimSpace(in.CurrentOccupation)

	if err := validateAlumnusFields(in.Name, in.Strand, in.CollegeCourse, in.CurrentOccupation); err != nil {
		return err
	}

	alum, err := s.alumni.GetByID(ctx, in.AlumniID)
	if err != nil {
		return err
	}

	alum.Name = in.Name
	alum.Strand = in.Strand
	alum.CollegeCourse = in.CollegeCourse
	alum.CurrentOccupation = in.CurrentOccupation
	alum.CredentialsInField = strings.TrimSpace(in.CredentialsInField)
	if in.Email != nil {
		alum.Email = strings.TrimSpace(*in.Email)
		alum.EmailVerified = alum.Email != ""
		alum.NeedsEmailUpdate = alum.Email == ""
	}
	alum.UpdatedAt = time.Now()

	if err := s.alumni.Update(ctx, alum); err != nil {
		return err
	}
	logger.Info("Alumni record updated", "alumni_id", alum.ID)
	return nil
}

func (s *alumniService) Delete(ctx context.Context, alumniID string) error {
	alumniID = strings.TrimSpace(alumniID)
	if alumniID == "" {
		return domain.NewValidationError("Missing required fields: alumniId")
	}
	if _, err := s.alumni.GetByID(ctx, alumniID); err != nil {
		return err
	}
	if err := s.alumni.Delete(ctx, alumniID); err != nil {
		return err
	}
	logger.Info("Alumni record deleted", "alumni_id", alumniID)
	return nil
}
