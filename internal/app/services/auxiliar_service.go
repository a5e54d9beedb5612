package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/classconnect/classconnect-go/internal/app/clients"
	"github.com/classconnect/classconnect-go/internal/app/models"
	"github.com/classconnect/classconnect-go/internal/app/models/dto"
	"github.com/classconnect/classconnect-go/internal/pkg/apperrors"
	"github.com/classconnect/classconnect-go/internal/pkg/forms"
	"github.com/classconnect/classconnect-go/internal/pkg/liststore"
	"github.com/classconnect/classconnect-go/internal/pkg/logger"
)

// AuxiliarService is the auxiliary-teacher management screen of one course.
// Assignments are a short, fully loaded list; a duplicate assignment is the
// backend's 409 to raise and is surfaced verbatim.
type AuxiliarService struct {
	courses  *clients.CourseClient
	courseID string

	store *liststore.Store[models.AuxiliarTeacher]

	logger zerolog.Logger
}

// NewAuxiliarService opens the auxiliary screen for courseID.
func NewAuxiliarService(courses *clients.CourseClient, courseID string) *AuxiliarService {
	return &AuxiliarService{
		courses:  courses,
		courseID: courseID,
		store:    liststore.New[models.AuxiliarTeacher](nil),
		logger:   logger.With("auxiliars"),
	}
}

// Load fetches the course's auxiliary teachers.
func (s *AuxiliarService) Load(ctx context.Context) error {
	resp, err := s.courses.ListAuxiliars(ctx, s.courseID)
	if err != nil {
		return err
	}
	s.store.Reset(resp.Auxiliars)
	return nil
}

// Auxiliars returns the local assignment list.
func (s *AuxiliarService) Auxiliars() []models.AuxiliarTeacher {
	return s.store.Snapshot()
}

// Assign validates and grants permissions to an auxiliary teacher,
// merging the assignment into the local list. Unknown permission names are
// rejected before the network call.
func (s *AuxiliarService) Assign(ctx context.Context, email string, permissions []models.Permission) (models.AuxiliarTeacher, forms.Result, error) {
	entries := make([]models.PermissionEntry, 0, len(permissions))
	for _, p := range permissions {
		if !validPermission(p) {
			result := forms.Result{Errors: map[string]string{
				"permissions": "unknown permission: " + string(p),
			}}
			return models.AuxiliarTeacher{}, result, apperrors.NewValidationError(result.Errors["permissions"])
		}
		entries = append(entries, models.PermissionEntry{Permission: p})
	}

	req := dto.AddAuxiliarRequest{Auxiliar: email, Permissions: entries}
	result := forms.Validate(req)
	if !result.Valid {
		return models.AuxiliarTeacher{}, result, apperrors.NewValidationError(firstError(result))
	}

	created, err := s.courses.AddAuxiliar(ctx, s.courseID, req)
	if err != nil {
		s.logger.Warn().Err(err).Str("auxiliar", email).Msg("Auxiliary assignment failed")
		return models.AuxiliarTeacher{}, result, err
	}

	s.store.Dispatch(liststore.Create[models.AuxiliarTeacher]{Item: created})
	return created, result, nil
}

// Revoke removes an auxiliary teacher's assignment.
func (s *AuxiliarService) Revoke(ctx context.Context, email string) error {
	if err := s.courses.RemoveAuxiliar(ctx, s.courseID, email); err != nil {
		return err
	}
	s.store.Dispatch(liststore.Delete[models.AuxiliarTeacher]{ID: email})
	return nil
}

// Stale reports whether a mutation happened since the last fetch.
func (s *AuxiliarService) Stale() bool {
	return s.store.Stale()
}

func validPermission(p models.Permission) bool {
	for _, known := range models.AllPermissions {
		if p == known {
			return true
		}
	}
	return false
}
