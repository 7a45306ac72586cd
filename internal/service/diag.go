package service

import (
	"context"
	"strings"

	"alumni-trace-backend/internal/domain"
	"alumni-trace-backend/internal/email"
)

type diagService struct {
	mailer   email.Dispatcher
	store    DatastorePinger
	identity MailIdentity
}

func NewDiagService(mailer email.Dispatcher, store DatastorePinger, identity MailIdentity) DiagService {
	return &diagService{mailer: mailer, store: store, identity: identity}
}

// SendTestEmail fires a minimal message at the given address so an operator
// can confirm the mail provider credentials without going through a real
// approval.
func (s *diagService) SendTestEmail(ctx context.Context, to string) error {
	to = strings.TrimSpace(to)
	if to == "" {
		return domain.NewValidationError("Missing required fields: to")
	}
	msg := &email.Message{
		Sender:      s.identity.Sender,
		To:          []email.Party{{Email: to}},
		Subject:     "Alumni Tracking System test email",
		HTMLContent: "<p>This is a test email from the Alumni Tracking System. If you received it, outbound mail is configured correctly.</p>",
		TextContent: "This is a test email from the Alumni Tracking System. If you received it, outbound mail is configured correctly.",
	}
	return s.mailer.Send(ctx, msg)
}

func (s *diagService) CheckDatastore(ctx context.Context) error {
	return s.store.Ping(ctx)
}
