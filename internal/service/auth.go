package service

import (
	"context"
	"time"

	"alumni-trace-backend/internal/domain"
	"alumni-trace-backend/internal/logger"
	"alumni-trace-backend/internal/security"
)

type authService struct {
	passwordHash  string
	registrarName string
	sessionTTL    time.Duration
	tokens        security.TokenManager
}

func NewAuthService(passwordHash, registrarName string, sessionTTL time.Duration, tokens security.TokenManager) AuthService {
	return &authService{
		passwordHash:  passwordHash,
		registrarName: registrarName,
		sessionTTL:    sessionTTL,
		tokens:        tokens,
	}
}

// Login exchanges the registrar password for a short-lived session token.
func (s *authService) Login(ctx context.Context, password string) (string, time.Time, error) {
	if password == "" || !security.CheckPassword(s.passwordHash, password) {
		logger.Warn("Registrar login rejected")
		return "", time.Time{}, domain.NewUnauthorizedError("Invalid password")
	}

	token, expiresAt, err := s.tokens.GenerateSessionToken(s.registrarName, s.sessionTTL)
	if err != nil {
		return "", time.Time{}, err
	}
	logger.Info("Registrar session issued", "expires_at", expiresAt)
	return token, expiresAt, nil
}
