package auth

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/classconnect/classconnect-go/internal/pkg/apperrors"
)

// UserType distinguishes the role carried by the access token.
type UserType string

const (
	UserTypeStudent UserType = "student"
	UserTypeTeacher UserType = "teacher"
	UserTypeAdmin   UserType = "admin"
)

// Claims defines the token content the backend issues at login. The client
// never verifies the signature; it only reads the identity fields.
type Claims struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	UserType string `json:"user_type"`
	jwt.RegisteredClaims
}

// Session holds the authenticated identity for the lifetime of the app:
// created at login, passed explicitly to every component needing auth,
// destroyed at logout. There is no ambient global session.
type Session struct {
	Token    string
	UserID   string
	Email    string
	UserType UserType
}

// NewSession decodes the identity fields out of an access token. The token
// is parsed without signature verification: the client is not the token
// authority and the backend re-validates on every request anyway.
func NewSession(token string) (*Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, apperrors.ErrNoSession
	}

	claims := &Claims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrTokenInvalid, err)
	}

	userID := claims.UserID
	if userID == "" {
		userID = claims.Subject
	}
	if userID == "" {
		return nil, fmt.Errorf("%w: missing user identity", apperrors.ErrTokenInvalid)
	}

	return &Session{
		Token:    token,
		UserID:   userID,
		Email:    claims.Email,
		UserType: UserType(claims.UserType),
	}, nil
}

// IsTeacher reports whether the session belongs to a teacher or admin, the
// roles allowed to grade, manage modules and assign auxiliaries.
func (s *Session) IsTeacher() bool {
	return s.UserType == UserTypeTeacher || s.UserType == UserTypeAdmin
}
