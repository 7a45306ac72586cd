// Package email is the outbound notification port. Backends share one
// Message model; any non-success from the provider (including transport
// failure) surfaces as a domain notification error so callers never commit
// state that depended on an unsent mail.
package email

import (
	"context"
	"fmt"
)

// Party is a named mailbox.
type Party struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

// Message is one transactional email.
type Message struct {
	Sender      Party
	To          []Party
	ReplyTo     *Party
	Subject     string
	HTMLContent string
	TextContent string

	// DispatchKey is an idempotency key carried as a message header so a
	// client-side retry of the same logical send is detectable downstream.
	DispatchKey string
}

func (m *Message) validate() error {
	if len(m.To) == 0 {
		return fmt.Errorf("message has no recipients")
	}
	for _, to := range m.To {
		if to.Email == "" {
			return fmt.Errorf("message has a recipient without an address")
		}
	}
	if m.Subject == "" {
		return fmt.Errorf("message has no subject")
	}
	return nil
}

// Dispatcher sends a message and reports success or failure. No retries,
// no queueing; delivery semantics are the provider's.
type Dispatcher interface {
	Send(ctx context.Context, msg *Message) error
}

const dispatchKeyHeader = "X-Dispatch-Key"
