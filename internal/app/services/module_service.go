package services

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	"github.com/classconnect/classconnect-go/internal/app/clients"
	"github.com/classconnect/classconnect-go/internal/app/models"
	"github.com/classconnect/classconnect-go/internal/app/models/dto"
	"github.com/classconnect/classconnect-go/internal/pkg/apperrors"
	"github.com/classconnect/classconnect-go/internal/pkg/forms"
	"github.com/classconnect/classconnect-go/internal/pkg/httpclient"
	"github.com/classconnect/classconnect-go/internal/pkg/liststore"
	"github.com/classconnect/classconnect-go/internal/pkg/logger"
)

// ModuleService is the module management screen of one course. Modules are
// a short, fully loaded list ordered by order index rather than a paginated
// one. Order-index conflicts are the backend's to detect; the service
// surfaces the 409 verbatim and leaves the local list untouched so the form
// stays open with the submitted values.
type ModuleService struct {
	courses  *clients.CourseClient
	courseID string

	store *liststore.Store[models.Module]

	logger zerolog.Logger
}

// NewModuleService opens the module screen for courseID.
func NewModuleService(courses *clients.CourseClient, courseID string) *ModuleService {
	return &ModuleService{
		courses:  courses,
		courseID: courseID,
		store:    liststore.New[models.Module](nil),
		logger:   logger.With("modules"),
	}
}

// Load fetches all modules of the course.
func (s *ModuleService) Load(ctx context.Context) error {
	resp, err := s.courses.ListModules(ctx, s.courseID)
	if err != nil {
		return err
	}
	s.store.Reset(resp.Modules)
	return nil
}

// Modules returns the local list sorted by order index.
func (s *ModuleService) Modules() []models.Module {
	modules := s.store.Snapshot()
	sort.Slice(modules, func(i, j int) bool {
		return modules[i].OrderIdx < modules[j].OrderIdx
	})
	return modules
}

// Create validates the module form and merges the created module into the
// local list.
func (s *ModuleService) Create(ctx context.Context, req dto.CreateModuleRequest) (models.Module, forms.Result, error) {
	result := forms.Validate(req)
	if !result.Valid {
		return models.Module{}, result, apperrors.NewValidationError(firstError(result))
	}

	created, err := s.courses.CreateModule(ctx, s.courseID, req)
	if err != nil {
		s.logger.Warn().Err(err).Int("orderIdx", req.OrderIdx).Msg("Module creation failed")
		return models.Module{}, result, err
	}

	s.store.Dispatch(liststore.Create[models.Module]{Item: created})
	return created, result, nil
}

// Update edits a module. A duplicate order index among siblings returns the
// backend's 409 message unchanged.
func (s *ModuleService) Update(ctx context.Context, moduleID string, req dto.UpdateModuleRequest) (models.Module, forms.Result, error) {
	result := forms.Validate(req)
	if !result.Valid {
		return models.Module{}, result, apperrors.NewValidationError(firstError(result))
	}

	updated, err := s.courses.UpdateModule(ctx, s.courseID, moduleID, req)
	if err != nil {
		return models.Module{}, result, err
	}

	s.store.Dispatch(liststore.Update[models.Module]{Item: updated})
	return updated, result, nil
}

// Delete removes a module.
func (s *ModuleService) Delete(ctx context.Context, moduleID string) error {
	if err := s.courses.DeleteModule(ctx, s.courseID, moduleID); err != nil {
		return err
	}
	s.store.Dispatch(liststore.Delete[models.Module]{ID: moduleID})
	return nil
}

// AddResource attaches a resource to a module. Document, image and video
// types must carry an attachment; that requirement is checked here, before
// any network call. The created resource is merged into the module's local
// copy.
func (s *ModuleService) AddResource(ctx context.Context, moduleID string, req dto.CreateResourceRequest, attachment *httpclient.Attachment) (models.Resource, forms.Result, error) {
	result := forms.Validate(req)
	if !result.Valid {
		return models.Resource{}, result, apperrors.NewValidationError(firstError(result))
	}
	if req.Type.RequiresAttachment() && attachment == nil {
		result.Valid = false
		result.Errors["type"] = "a file is required for this resource type"
		return models.Resource{}, result, apperrors.NewValidationError(result.Errors["type"])
	}

	var created models.Resource
	var err error
	if attachment != nil {
		created, err = s.courses.AddResourceFile(ctx, s.courseID, moduleID, req, attachment)
	} else {
		created, err = s.courses.AddResource(ctx, s.courseID, moduleID, req)
	}
	if err != nil {
		return models.Resource{}, result, err
	}

	if module, ok := s.store.Find(moduleID); ok {
		module.Resources = append(module.Resources, created)
		s.store.Dispatch(liststore.Update[models.Module]{Item: module})
	}
	return created, result, nil
}

// Stale reports whether a mutation happened since the last fetch.
func (s *ModuleService) Stale() bool {
	return s.store.Stale()
}
