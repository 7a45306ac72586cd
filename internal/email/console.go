package email

import (
	"context"

	"alumni-trace-backend/internal/logger"
)

// ConsoleDispatcher logs messages instead of sending them. Development only.
type ConsoleDispatcher struct{}

func NewConsoleDispatcher() *ConsoleDispatcher {
	return &ConsoleDispatcher{}
}

func (d *ConsoleDispatcher) Send(ctx context.Context, msg *Message) error {
	if err := msg.validate(); err != nil {
		return err
	}
	logger.Info("Console mail dispatch",
		"to", msg.To[0].Email,
		"subject", msg.Subject,
		"dispatch_key", msg.DispatchKey,
		"text", msg.TextContent,
	)
	return nil
}
