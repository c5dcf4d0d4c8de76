package service

import (
	"context"
	"crypto/subtle"
	"time"

	"transaction-anonymizer/internal/core/ports"
	"transaction-anonymizer/pkg/apperror"
)

// authService authenticates the single configured operator account. The
// mappings and relationship endpoints expose de-anonymization material, so
// they sit behind this login.
type authService struct {
	username string
	password string
	tokens   ports.TokenService
}

// NewAuthService creates the operator auth service.
func NewAuthService(username, password string, tokens ports.TokenService) ports.AuthService {
	return &authService{username: username, password: password, tokens: tokens}
}

// Login verifies the operator credentials and issues a JWT.
func (s *authService) Login(_ context.Context, username, password string) (string, time.Time, error) {
	if s.username == "" || s.password == "" {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
	if !userOK || !passOK {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	token, expiry, err := s.tokens.Generate(username)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(err)
	}
	return token, expiry, nil
}
