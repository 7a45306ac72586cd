package email

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"alumni-trace-backend/internal/domain"
)

func testMessage() *Message {
	return &Message{
		Sender:      Party{Name: "Alumni Tracking System", Email: "system@school.example"},
		To:          []Party{{Name: "Juan Dela Cruz", Email: "juan@alumni.example"}},
		ReplyTo:     &Party{Name: "Maria Santos", Email: "maria@student.example"},
		Subject:     "Research Consultation Request",
		HTMLContent: "<p>Hello</p>",
		TextContent: "Hello",
		DispatchKey: "key-123",
	}
}

func TestBrevoSend_PostsExpectedPayload(t *testing.T) {
	var captured brevoPayload
	var gotAPIKey, gotContentType string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAPIKey = r.Header.Get("api-key")
		gotContentType = r.Header.Get("content-type")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"messageId":"<abc@smtp-relay>"}`))
	}))
	defer server.Close()

	d := NewBrevoDispatcher("test-api-key", server.URL)
	err := d.Send(context.Background(), testMessage())

	assert.NoError(t, err)
	assert.Equal(t, "test-api-key", gotAPIKey)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "system@school.example", captured.Sender.Email)
	assert.Len(t, captured.To, 1)
	assert.Equal(t, "juan@alumni.example", captured.To[0].Email)
	assert.NotNil(t, captured.ReplyTo)
	assert.Equal(t, "maria@student.example", captured.ReplyTo.Email)
	assert.Equal(t, "Research Consultation Request", captured.Subject)
	assert.Equal(t, "<p>Hello</p>", captured.HTMLContent)
	assert.Equal(t, "key-123", captured.Headers[dispatchKeyHeader])
}

func TestBrevoSend_ProviderErrorIsNotificationError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"code":"unauthorized","message":"Key not found"}`))
	}))
	defer server.Close()

	d := NewBrevoDispatcher("bad-key", server.URL)
	err := d.Send(context.Background(), testMessage())

	assert.Error(t, err)
	de, ok := domain.AsDomainError(err)
	assert.True(t, ok)
	assert.Equal(t, domain.KindNotification, de.Kind)
	assert.Contains(t, de.Detail, "Key not found")
}

func TestBrevoSend_TransportErrorIsNotificationError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	d := NewBrevoDispatcher("test-api-key", server.URL)
	err := d.Send(context.Background(), testMessage())

	assert.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindNotification))
}

func TestBrevoSend_RejectsMessageWithoutRecipients(t *testing.T) {
	d := NewBrevoDispatcher("test-api-key", "http://unused.invalid")
	msg := testMessage()
	msg.To = nil

	err := d.Send(context.Background(), msg)

	assert.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindNotification))
}
