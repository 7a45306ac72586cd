package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindConflict, KindOf(NewConflictError(CodeActiveRequestExists, "duplicate")))
	assert.Equal(t, KindValidation, KindOf(NewValidationError("bad input")))
	assert.Equal(t, ErrorKind(""), KindOf(errors.New("plain")))
	assert.Equal(t, ErrorKind(""), KindOf(nil))
}

func TestKindOf_Wrapped(t *testing.T) {
	err := fmt.Errorf("outer: %w", NewNotFoundError("missing"))
	assert.True(t, IsKind(err, KindNotFound))
}

func TestErrorMessageIncludesCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewNotificationError("failed to send email", "detail", cause)

	assert.Contains(t, err.Error(), "failed to send email")
	assert.Contains(t, err.Error(), "connection reset")
	assert.ErrorIs(t, err, cause)
}

func TestInvalidStateCarriesTransitionCode(t *testing.T) {
	de, ok := AsDomainError(NewInvalidStateError("already approved"))
	assert.True(t, ok)
	assert.Equal(t, CodeInvalidTransition, de.Code)
}

func TestConsultationStatusPredicates(t *testing.T) {
	assert.True(t, ConsultationStatusPending.Valid())
	assert.False(t, ConsultationStatus("archived").Valid())

	assert.True(t, ConsultationStatusApproved.Terminal())
	assert.True(t, ConsultationStatusRejected.Terminal())
	assert.False(t, ConsultationStatusPending.Terminal())

	assert.True(t, ConsultationStatusPending.Active())
	assert.True(t, ConsultationStatusApproved.Active())
	assert.False(t, ConsultationStatusRejected.Active())
}
