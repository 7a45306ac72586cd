package security

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrExpiredToken   = errors.New("token has expired")
	ErrWrongTokenType = errors.New("wrong token type for this endpoint")
)

type TokenType string

const TokenTypeRegistrar TokenType = "registrar"

// RegistrarClaims are the claims carried by a registrar session token. The
// session replaces the legacy client-held "authenticated" flag: the server
// issues it on password login and every admin route validates it.
type RegistrarClaims struct {
	Name string    `json:"name,omitempty"`
	Type TokenType `json:"type"`
	jwt.RegisteredClaims
}

type TokenManager interface {
	GenerateSessionToken(name string, ttl time.Duration) (string, time.Time, error)
	ValidateSessionToken(tokenString string) (*RegistrarClaims, error)
}

type tokenManager struct {
	secret []byte
}

func NewTokenManager(secret string) TokenManager {
	return &tokenManager{secret: []byte(secret)}
}

func (m *tokenManager) GenerateSessionToken(name string, ttl time.Duration) (string, time.Time, error) {
	expiresAt := time.Now().Add(ttl)
	claims := RegistrarClaims{
		Name: name,
		Type: TokenTypeRegistrar,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "registrar",
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "alumni-trace-backend",
			Audience:  jwt.ClaimStrings{"registrar-dashboard"},
			ID:        generateJTI(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

func (m *tokenManager) ValidateSessionToken(tokenString string) (*RegistrarClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &RegistrarClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*RegistrarClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Type != TokenTypeRegistrar {
		return nil, ErrWrongTokenType
	}
	return claims, nil
}

// CheckPassword compares a candidate password against the stored bcrypt hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// HashPassword produces a bcrypt hash for configuration bootstrapping.
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Simple unique ID generator
func generateJTI() string {
	return strconv.FormatInt(time.Now().UnixNano(), 16)
}
