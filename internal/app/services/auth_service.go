package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/classconnect/classconnect-go/internal/app/clients"
	"github.com/classconnect/classconnect-go/internal/app/models/dto"
	"github.com/classconnect/classconnect-go/internal/pkg/apperrors"
	"github.com/classconnect/classconnect-go/internal/pkg/auth"
	"github.com/classconnect/classconnect-go/internal/pkg/forms"
	"github.com/classconnect/classconnect-go/internal/pkg/logger"
)

// AuthService drives the login/logout lifecycle of the session.
type AuthService struct {
	profiles *clients.ProfileClient
	sessions *auth.SessionManager
	logger   zerolog.Logger
}

// NewAuthService creates an AuthService.
func NewAuthService(profiles *clients.ProfileClient, sessions *auth.SessionManager) *AuthService {
	return &AuthService{
		profiles: profiles,
		sessions: sessions,
		logger:   logger.With("auth"),
	}
}

// Login validates the credentials form, exchanges it for a token and
// installs the decoded session.
func (s *AuthService) Login(ctx context.Context, email, password string) (*auth.Session, error) {
	form := dto.LoginRequest{Email: email, Password: password}
	if result := forms.Validate(form); !result.Valid {
		return nil, apperrors.NewValidationError(firstError(result))
	}

	resp, err := s.profiles.Login(ctx, form)
	if err != nil {
		s.logger.Warn().Err(err).Str("email", email).Msg("Login failed")
		return nil, err
	}

	session, err := auth.NewSession(resp.Token)
	if err != nil {
		return nil, err
	}

	s.sessions.Set(session)
	s.logger.Info().Str("userId", session.UserID).Str("userType", string(session.UserType)).Msg("Session established")
	return session, nil
}

// Logout destroys the active session.
func (s *AuthService) Logout() {
	if s.sessions.Authenticated() {
		s.logger.Info().Str("userId", s.sessions.Current().UserID).Msg("Session destroyed")
	}
	s.sessions.Clear()
}

// firstError flattens a validation result into one message for flows that
// show a single alert instead of per-field errors.
func firstError(result forms.Result) string {
	for _, message := range result.Errors {
		return message
	}
	return "invalid input"
}
