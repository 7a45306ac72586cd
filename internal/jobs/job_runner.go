// Package jobs holds the scheduled registrar notifications: the morning
// digest of pending work and reminders about consultation requests that have
// sat unreviewed for too long.
package jobs

import (
	"context"
	"fmt"
	"strings"
	"time"

	"alumni-trace-backend/internal/domain"
	"alumni-trace-backend/internal/email"
	"alumni-trace-backend/internal/logger"
	"alumni-trace-backend/internal/repository"
)

type JobRunner struct {
	alumni         repository.AlumniRepository
	requests       repository.ConsultationRequestRepository
	mailer         email.Dispatcher
	sender         email.Party
	registrar      email.Party
	staleAfterDays int
}

func NewJobRunner(
	alumni repository.AlumniRepository,
	requests repository.ConsultationRequestRepository,
	mailer email.Dispatcher,
	sender, registrar email.Party,
	staleAfterDays int,
) *JobRunner {
	return &JobRunner{
		alumni:         alumni,
		requests:       requests,
		mailer:         mailer,
		sender:         sender,
		registrar:      registrar,
		staleAfterDays: staleAfterDays,
	}
}

// runWithRecovery wraps job execution so a panic in one job cannot take down
// the scheduler process.
func (r *JobRunner) runWithRecovery(jobName string, job func() error) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.Error("Job panicked", "job", jobName, "panic", rec)
		}
	}()

	start := time.Now()
	logger.Info("Job started", "job", jobName)
	if err := job(); err != nil {
		logger.Error("Job failed", "job", jobName, "error", err, "duration", time.Since(start))
		return
	}
	logger.Info("Job completed", "job", jobName, "duration", time.Since(start))
}

// SendRegistrarDigest emails the registrar a summary of pending registrations
// and pending consultation requests. Nothing pending means no email.
func (r *JobRunner) SendRegistrarDigest() {
	r.runWithRecovery("registrar_digest", func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		pendingAlumni, err := r.alumni.ListPending(ctx)
		if err != nil {
			return fmt.Errorf("failed to list pending registrations: %w", err)
		}
		pendingRequests, err := r.requests.List(ctx, repository.ConsultationFilter{
			Status: domain.ConsultationStatusPending,
		})
		if err != nil {
			return fmt.Errorf("failed to list pending consultation requests: %w", err)
		}

		if len(pendingAlumni) == 0 && len(pendingRequests) == 0 {
			logger.Info("Registrar digest skipped, nothing pending")
			return nil
		}

		var b strings.Builder
		fmt.Fprintf(&b, "Good morning,\n\nPending items in the Alumni Tracking System:\n\n")
		fmt.Fprintf(&b, "- Alumni registrations awaiting review: %d\n", len(pendingAlumni))
		fmt.Fprintf(&b, "- Consultation requests awaiting review: %d\n\n", len(pendingRequests))
		for _, req := range pendingRequests {
			fmt.Fprintf(&b, "  * %s -> %s (%s), submitted %s\n",
				req.StudentName, req.AlumniName, req.ResearchTitle, req.CreatedAt.Format("Jan 2"))
		}
		b.WriteString("\nPlease review them in the registrar dashboard.\n")

		return r.mailer.Send(ctx, &email.Message{
			Sender:      r.sender,
			To:          []email.Party{r.registrar},
			Subject:     fmt.Sprintf("Registrar digest: %d registrations, %d requests pending", len(pendingAlumni), len(pendingRequests)),
			HTMLContent: "<pre>" + b.String() + "</pre>",
			TextContent: b.String(),
		})
	})
}

// SendStaleRequestReminders emails the registrar about consultation requests
// still pending after the configured number of days.
func (r *JobRunner) SendStaleRequestReminders() {
	r.runWithRecovery("stale_request_reminders", func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		stale, err := r.requests.ListPendingOlderThanDays(ctx, r.staleAfterDays)
		if err != nil {
			return fmt.Errorf("failed to list stale consultation requests: %w", err)
		}
		if len(stale) == 0 {
			return nil
		}

		var b strings.Builder
		fmt.Fprintf(&b, "The following consultation requests have been pending for more than %d days:\n\n", r.staleAfterDays)
		for _, req := range stale {
			fmt.Fprintf(&b, "- %s -> %s: %s (submitted %s)\n",
				req.StudentName, req.AlumniName, req.ResearchTitle, req.CreatedAt.Format("Jan 2, 2006"))
		}
		b.WriteString("\nPlease approve or reject them so students are not left waiting.\n")

		return r.mailer.Send(ctx, &email.Message{
			Sender:      r.sender,
			To:          []email.Party{r.registrar},
			Subject:     fmt.Sprintf("%d consultation requests need attention", len(stale)),
			HTMLContent: "<pre>" + b.String() + "</pre>",
			TextContent: b.String(),
		})
	})
}

// RunAllDailyJobs runs every job once. Used by the -run-once flag.
func (r *JobRunner) RunAllDailyJobs() {
	r.SendRegistrarDigest()
	r.SendStaleRequestReminders()
}
