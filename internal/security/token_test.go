package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestSessionToken_RoundTrip(t *testing.T) {
	m := NewTokenManager(testSecret)

	token, expiresAt, err := m.GenerateSessionToken("School Registrar", time.Hour)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := m.ValidateSessionToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "School Registrar", claims.Name)
	assert.Equal(t, TokenTypeRegistrar, claims.Type)
	assert.Equal(t, "registrar", claims.Subject)
}

func TestSessionToken_ExpiredIsRejected(t *testing.T) {
	m := NewTokenManager(testSecret)

	token, _, err := m.GenerateSessionToken("School Registrar", -time.Minute)
	assert.NoError(t, err)

	_, err = m.ValidateSessionToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestSessionToken_WrongSecretIsRejected(t *testing.T) {
	token, _, err := NewTokenManager(testSecret).GenerateSessionToken("School Registrar", time.Hour)
	assert.NoError(t, err)

	_, err = NewTokenManager("another-secret-that-is-long-enough!").ValidateSessionToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSessionToken_GarbageIsRejected(t *testing.T) {
	_, err := NewTokenManager(testSecret).ValidateSessionToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordHashing_RoundTrip(t *testing.T) {
	hash, err := HashPassword("registrar-secret")
	assert.NoError(t, err)
	assert.True(t, CheckPassword(hash, "registrar-secret"))
	assert.False(t, CheckPassword(hash, "wrong"))
	assert.False(t, CheckPassword("not-a-hash", "registrar-secret"))
}
