package email

import (
	"context"
	"net/http"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"alumni-trace-backend/internal/domain"
	"alumni-trace-backend/internal/logger"
)

const (
	sendgridHost     = "https://api.sendgrid.com"
	sendgridEndpoint = "/v3/mail/send"
)

// SendGridDispatcher sends mail through the SendGrid v3 API.
type SendGridDispatcher struct {
	apiKey string
}

func NewSendGridDispatcher(apiKey string) *SendGridDispatcher {
	return &SendGridDispatcher{apiKey: apiKey}
}

func (d *SendGridDispatcher) Send(ctx context.Context, msg *Message) error {
	if err := msg.validate(); err != nil {
		return domain.NewNotificationError("invalid email message", err.Error(), err)
	}

	m := sgmail.NewV3Mail()
	m.SetFrom(sgmail.NewEmail(msg.Sender.Name, msg.Sender.Email))
	if msg.ReplyTo != nil {
		m.SetReplyTo(sgmail.NewEmail(msg.ReplyTo.Name, msg.ReplyTo.Email))
	}

	p := sgmail.NewPersonalization()
	p.Subject = msg.Subject
	for _, to := range msg.To {
		p.AddTos(sgmail.NewEmail(to.Name, to.Email))
	}
	m.AddPersonalizations(p)

	if msg.TextContent != "" {
		m.AddContent(sgmail.NewContent("text/plain", msg.TextContent))
	}
	m.AddContent(sgmail.NewContent("text/html", msg.HTMLContent))
	if msg.DispatchKey != "" {
		m.SetHeader(dispatchKeyHeader, msg.DispatchKey)
	}

	logger.MailCall("sendgrid", msg.Subject, "to", msg.To[0].Email)

	req := sendgrid.GetRequest(d.apiKey, sendgridEndpoint, sendgridHost)
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(m)

	resp, err := sendgrid.MakeRequestWithContext(ctx, req)
	if err != nil {
		logger.MailResult("sendgrid", err)
		return domain.NewNotificationError("failed to send email", err.Error(), err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		logger.MailResult("sendgrid", nil, "status", resp.StatusCode, "body", resp.Body)
		return domain.NewNotificationError("failed to send email", resp.Body, nil)
	}

	logger.MailResult("sendgrid", nil, "status", resp.StatusCode)
	return nil
}
