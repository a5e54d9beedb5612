package services

import (
	"context"
	"io"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/classconnect/classconnect-go/internal/app/clients"
	"github.com/classconnect/classconnect-go/internal/app/models"
	"github.com/classconnect/classconnect-go/internal/app/models/dto"
	"github.com/classconnect/classconnect-go/internal/pkg/apperrors"
	"github.com/classconnect/classconnect-go/internal/pkg/forms"
	"github.com/classconnect/classconnect-go/internal/pkg/httpclient"
	"github.com/classconnect/classconnect-go/internal/pkg/logger"
)

// ProfileService is the own-profile screen: read, edit and photo upload.
type ProfileService struct {
	profiles *clients.ProfileClient

	current models.UserProfile

	logger zerolog.Logger
}

// NewProfileService opens the profile screen.
func NewProfileService(profiles *clients.ProfileClient) *ProfileService {
	return &ProfileService{
		profiles: profiles,
		logger:   logger.With("profile"),
	}
}

// Load fetches the caller's profile.
func (s *ProfileService) Load(ctx context.Context) error {
	profile, err := s.profiles.GetOwnProfile(ctx)
	if err != nil {
		return err
	}
	s.current = profile
	return nil
}

// Profile returns the loaded profile.
func (s *ProfileService) Profile() models.UserProfile {
	return s.current
}

// Update validates and submits profile edits, keeping the local copy in
// sync with the server's response.
func (s *ProfileService) Update(ctx context.Context, req dto.UpdateProfileRequest) (models.UserProfile, forms.Result, error) {
	result := forms.Validate(req)
	if !result.Valid {
		return models.UserProfile{}, result, apperrors.NewValidationError(firstError(result))
	}

	updated, err := s.profiles.UpdateProfile(ctx, req)
	if err != nil {
		return models.UserProfile{}, result, err
	}

	s.current = updated
	return updated, result, nil
}

// UploadPhoto replaces the avatar. Format validation is the server's: an
// unsupported format returns a 400 whose message is surfaced verbatim.
func (s *ProfileService) UploadPhoto(ctx context.Context, filename string, content io.Reader) (string, error) {
	if filename == "" || content == nil {
		return "", apperrors.NewValidationError("a photo file is required")
	}

	resp, err := s.profiles.UploadPhoto(ctx, &httpclient.Attachment{
		Field:    "photo",
		Filename: filepath.Base(filename),
		Content:  content,
	})
	if err != nil {
		s.logger.Warn().Err(err).Str("filename", filename).Msg("Photo upload failed")
		return "", err
	}

	s.current.Avatar = resp.URL
	return resp.URL, nil
}
