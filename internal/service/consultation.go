package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"alumni-trace-backend/internal/domain"
	"alumni-trace-backend/internal/email"
	"alumni-trace-backend/internal/logger"
	"alumni-trace-backend/internal/repository"
)

// MailIdentity identifies who system emails are sent as and who signs them.
type MailIdentity struct {
	Sender        email.Party
	RegistrarName string
}

type consultationService struct {
	requests   repository.ConsultationRequestRepository
	alumni     repository.AlumniRepository
	dispatches repository.DispatchLogRepository
	mailer     email.Dispatcher
	identity   MailIdentity
}

func NewConsultationService(
	requests repository.ConsultationRequestRepository,
	alumni repository.AlumniRepository,
	dispatches repository.DispatchLogRepository,
	mailer email.Dispatcher,
	identity MailIdentity,
) ConsultationService {
	return &consultationService{
		requests:   requests,
		alumni:     alumni,
		dispatches: dispatches,
		mailer:     mailer,
		identity:   identity,
	}
}

// SubmitRequest records a student's consultation request as pending. The
// alumnus lookup only enriches the record with a display name; a failed
// lookup never blocks intake.
func (s *consultationService) SubmitRequest(ctx context.Context, in ConsultationRequestInput) (*domain.ConsultationRequest, string, error) {
	in.AlumniID = strings.TrimSpace(in.AlumniID)
	in.StudentName = strings.TrimSpace(in.StudentName)
	in.StudentEmail = strings.TrimSpace(in.StudentEmail)
	in.ResearchTitle = strings.TrimSpace(in.ResearchTitle)
	in.ConsultationNeeds = strings.TrimSpace(in.ConsultationNeeds)

	var missing []string
	if in.AlumniID == "" {
		missing = append(missing, "alumniId")
	}
	if in.StudentName == "" {
		missing = append(missing, "studentName")
	}
	if in.StudentEmail == "" {
		missing = append(missing, "studentEmail")
	}
	if in.ResearchTitle == "" {
		missing = append(missing, "researchTitle")
	}
	if in.ConsultationNeeds == "" {
		missing = append(missing, "consultationNeeds")
	}
	if len(missing) > 0 {
		return nil, "", domain.NewValidationError("Missing required fields: %s", strings.Join(missing, ", "))
	}

	alumniName := ""
	alumniEmail := strings.TrimSpace(in.AlumniEmail)
	if alum, err := s.alumni.GetByID(ctx, in.AlumniID); err != nil {
		logger.Warn("Could not load alumnus while recording consultation request",
			"alumni_id", in.AlumniID, "error", err)
	} else {
		alumniName = alum.Name
		if alumniEmail == "" {
			alumniEmail = alum.Email
		}
	}

	now := time.Now()
	req := &domain.ConsultationRequest{
		AlumniID:            in.AlumniID,
		AlumniName:          alumniName,
		AlumniEmail:         alumniEmail,
		StudentName:         in.StudentName,
		StudentEmail:        in.StudentEmail,
		StudentContact:      strings.TrimSpace(in.StudentContact),
		ResearchTitle:       in.ResearchTitle,
		ResearchDescription: strings.TrimSpace(in.ResearchDescription),
		ConsultationNeeds:   in.ConsultationNeeds,
		Status:              domain.ConsultationStatusPending,
		CreatedAt:           now,
	}

	if err := s.requests.CreateIfNoActive(ctx, req); err != nil {
		return nil, "", err
	}

	logger.Info("Consultation request recorded", "request_id", req.ID, "alumni_id", req.AlumniID)
	message := "Request sent! The registrar will review your request and contact the alumni to arrange the consultation."
	return req, message, nil
}

// ReviewRequest moves a pending request to approved or rejected. Approval
// sends the consultation email first and only commits the status change after
// the dispatcher accepts the message, so a failed send leaves the request
// pending and safe to retry.
func (s *consultationService) ReviewRequest(ctx context.Context, requestID string, target domain.ConsultationStatus) (*domain.ConsultationRequest, error) {
	if !target.Valid() || !target.Terminal() {
		return nil, domain.NewInvalidStateError("status must be %q or %q",
			domain.ConsultationStatusApproved, domain.ConsultationStatusRejected)
	}

	req, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.Status != domain.ConsultationStatusPending {
		return nil, domain.NewInvalidStateError("request is already %s; only pending requests can be reviewed", req.Status)
	}

	if target == domain.ConsultationStatusRejected {
		now := time.Now()
		req.Status = domain.ConsultationStatusRejected
		req.UpdatedAt = &now
		if err := s.requests.CommitDecision(ctx, req); err != nil {
			return nil, err
		}
		logger.Info("Consultation request rejected", "request_id", req.ID)
		return req, nil
	}

	toEmail := req.AlumniEmail
	toName := req.AlumniName
	if toEmail == "" {
		alum, err := s.alumni.GetByID(ctx, req.AlumniID)
		if err == nil {
			toEmail = alum.Email
			toName = alum.Name
		}
	}
	if toEmail == "" {
		return nil, domain.NewValidationError("Alumni email not found. Please update the alumni record with an email address before approving.")
	}
	if toName == "" {
		toName = "Alumni"
	}

	// The dispatch key is persisted before the send so a crash between
	// send and commit leaves evidence the message may already be out.
	if req.DispatchKey == "" {
		key := uuid.NewString()
		if err := s.requests.SetDispatchKey(ctx, req.ID, key); err != nil {
			return nil, err
		}
		req.DispatchKey = key
	}

	subject, htmlBody, textBody, err := email.RenderConsultationInvitation(email.ConsultationInvitation{
		AlumniName:          toName,
		StudentName:         req.StudentName,
		StudentEmail:        req.StudentEmail,
		StudentContact:      req.StudentContact,
		ResearchTitle:       req.ResearchTitle,
		ResearchDescription: req.ResearchDescription,
		ConsultationNeeds:   req.ConsultationNeeds,
		SenderName:          s.identity.RegistrarName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render consultation email: %w", err)
	}

	msg := &email.Message{
		Sender:      s.identity.Sender,
		To:          []email.Party{{Name: toName, Email: toEmail}},
		ReplyTo:     &email.Party{Name: req.StudentName, Email: req.StudentEmail},
		Subject:     subject,
		HTMLContent: htmlBody,
		TextContent: textBody,
		DispatchKey: req.DispatchKey,
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		logger.Error("Consultation email dispatch failed; request stays pending",
			"request_id", req.ID, "error", err)
		if domain.IsKind(err, domain.KindNotification) {
			return nil, err
		}
		return nil, domain.NewNotificationError("failed to send consultation email", err.Error(), err)
	}

	now := time.Now()
	req.Status = domain.ConsultationStatusApproved
	req.UpdatedAt = &now
	req.SentToAlumni = true
	if err := s.requests.CommitDecision(ctx, req); err != nil {
		// The email is already out; surface the storage failure so the
		// registrar retries and the dispatch key dedupes downstream.
		return nil, fmt.Errorf("email sent but status update failed: %w", err)
	}

	logger.Info("Consultation request approved and email sent",
		"request_id", req.ID, "alumni_email", toEmail)
	return req, nil
}

func (s *consultationService) ListRequests(ctx context.Context, filter repository.ConsultationFilter) ([]domain.ConsultationRequest, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, domain.NewValidationError("unknown status filter %q", filter.Status)
	}
	return s.requests.List(ctx, filter)
}

// SendConsultation is the registrar-initiated flow: no stored request, just an
// email to the alumnus plus an audit record of the dispatch.
func (s *consultationService) SendConsultation(ctx context.Context, in DirectConsultationInput) (string, error) {
	in.AlumniID = strings.TrimSpace(in.AlumniID)
	in.StudentName = strings.TrimSpace(in.StudentName)
	in.StudentEmail = strings.TrimSpace(in.StudentEmail)
	in.ResearchTitle = strings.TrimSpace(in.ResearchTitle)
	in.ConsultationNeeds = strings.TrimSpace(in.ConsultationNeeds)

	var missing []string
	if in.AlumniID == "" {
		missing = append(missing, "alumniId")
	}
	if in.StudentName == "" {
		missing = append(missing, "studentName")
	}
	if in.StudentEmail == "" {
		missing = append(missing, "studentEmail")
	}
	if in.ResearchTitle == "" {
		missing = append(missing, "researchTitle")
	}
	if in.ConsultationNeeds == "" {
		missing = append(missing, "consultationNeeds")
	}
	if len(missing) > 0 {
		return "", domain.NewValidationError("Missing required fields: %s", strings.Join(missing, ", "))
	}

	alum, err := s.alumni.GetByID(ctx, in.AlumniID)
	if err != nil {
		return "", err
	}
	if alum.Email == "" {
		return "", domain.NewValidationError("Alumni email not found. Please update the alumni record with an email address.")
	}

	senderName := strings.TrimSpace(in.SenderName)
	if senderName == "" {
		senderName = s.identity.RegistrarName
	}

	subject, htmlBody, textBody, err := email.RenderConsultationInvitation(email.ConsultationInvitation{
		AlumniName:          alum.Name,
		StudentName:         in.StudentName,
		StudentEmail:        in.StudentEmail,
		StudentContact:      strings.TrimSpace(in.StudentContact),
		ResearchTitle:       in.ResearchTitle,
		ResearchDescription: strings.TrimSpace(in.ResearchDescription),
		ConsultationNeeds:   in.ConsultationNeeds,
		ExpectedDuration:    strings.TrimSpace(in.ExpectedDuration),
		SenderName:          senderName,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render consultation email: %w", err)
	}

	dispatchKey := uuid.NewString()
	msg := &email.Message{
		Sender:      s.identity.Sender,
		To:          []email.Party{{Name: alum.Name, Email: alum.Email}},
		ReplyTo:     &email.Party{Name: in.StudentName, Email: in.StudentEmail},
		Subject:     subject,
		HTMLContent: htmlBody,
		TextContent: textBody,
		DispatchKey: dispatchKey,
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		if domain.IsKind(err, domain.KindNotification) {
			return "", err
		}
		return "", domain.NewNotificationError("failed to send consultation email", err.Error(), err)
	}

	record := &domain.ConsultationDispatch{
		AlumniID:            alum.ID,
		AlumniName:          alum.Name,
		AlumniEmail:         alum.Email,
		StudentName:         in.StudentName,
		StudentEmail:        in.StudentEmail,
		StudentContact:      strings.TrimSpace(in.StudentContact),
		ResearchTitle:       in.ResearchTitle,
		ResearchDescription: strings.TrimSpace(in.ResearchDescription),
		ConsultationNeeds:   in.ConsultationNeeds,
		ExpectedDuration:    strings.TrimSpace(in.ExpectedDuration),
		SenderName:          senderName,
		DispatchKey:         dispatchKey,
		Status:              domain.DispatchStatusSent,
		SentAt:              time.Now(),
	}
	if err := s.dispatches.Create(ctx, record); err != nil {
		// Audit write failure should not hide a successful send.
		logger.Error("Failed to record consultation dispatch", "alumni_id", alum.ID, "error", err)
	}

	logger.Info("Consultation email sent", "alumni_id", alum.ID, "alumni_email", alum.Email)
	return fmt.Sprintf("Consultation request sent successfully to %s at %s", alum.Name, alum.Email), nil
}

func (s *consultationService) ListDispatches(ctx context.Context, alumniID string, limit int) ([]domain.ConsultationDispatch, error) {
	return s.dispatches.List(ctx, alumniID, limit)
}
