package email

import (
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"

	"alumni-trace-backend/internal/domain"
	"alumni-trace-backend/internal/logger"
)

const defaultBrevoEndpoint = "https://api.brevo.com/v3/smtp/email"

// BrevoDispatcher sends mail through the Brevo transactional email API.
type BrevoDispatcher struct {
	apiKey   string
	endpoint string
	client   *resty.Client
}

// NewBrevoDispatcher creates a Brevo-backed dispatcher. endpoint may be empty
// to use the production API.
func NewBrevoDispatcher(apiKey, endpoint string) *BrevoDispatcher {
	if endpoint == "" {
		endpoint = defaultBrevoEndpoint
	}
	return &BrevoDispatcher{
		apiKey:   apiKey,
		endpoint: endpoint,
		client:   resty.New(),
	}
}

type brevoPayload struct {
	Sender      Party             `json:"sender"`
	To          []Party           `json:"to"`
	ReplyTo     *Party            `json:"replyTo,omitempty"`
	Subject     string            `json:"subject"`
	HTMLContent string            `json:"htmlContent"`
	TextContent string            `json:"textContent,omitempty"`
	Headers     map[string]string `json:"headers,omitempty"`
}

func (d *BrevoDispatcher) Send(ctx context.Context, msg *Message) error {
	if err := msg.validate(); err != nil {
		return domain.NewNotificationError("invalid email message", err.Error(), err)
	}

	payload := brevoPayload{
		Sender:      msg.Sender,
		To:          msg.To,
		ReplyTo:     msg.ReplyTo,
		Subject:     msg.Subject,
		HTMLContent: msg.HTMLContent,
		TextContent: msg.TextContent,
	}
	if msg.DispatchKey != "" {
		payload.Headers = map[string]string{dispatchKeyHeader: msg.DispatchKey}
	}

	logger.MailCall("brevo", msg.Subject, "to", msg.To[0].Email)

	resp, err := d.client.R().
		SetContext(ctx).
		SetHeader("accept", "application/json").
		SetHeader("api-key", d.apiKey).
		SetHeader("content-type", "application/json").
		SetBody(payload).
		Post(d.endpoint)
	if err != nil {
		logger.MailResult("brevo", err)
		return domain.NewNotificationError("failed to send email", err.Error(), err)
	}

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		logger.MailResult("brevo", nil, "status", resp.StatusCode(), "body", resp.String())
		return domain.NewNotificationError(
			"failed to send email",
			resp.Status()+": "+resp.String(),
			nil,
		)
	}

	logger.MailResult("brevo", nil, "status", resp.StatusCode())
	return nil
}
