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
	"github.com/classconnect/classconnect-go/internal/pkg/pagination"
)

// CourseService is the course catalogue screen: the paginated list of
// courses visible to the caller, with create and delete for teachers. No
// enrichment here; course rows are self-contained.
type CourseService struct {
	courses *clients.CourseClient

	store *liststore.Store[models.Course]
	pager *pagination.Controller[models.Course]

	logger zerolog.Logger
}

// NewCourseService opens the course catalogue screen.
func NewCourseService(courses *clients.CourseClient, pageSize int) *CourseService {
	s := &CourseService{
		courses: courses,
		store:   liststore.New[models.Course](nil),
		logger:  logger.With("courses"),
	}
	s.pager = pagination.NewController(s.fetchPage, pageSize)
	return s
}

// OpenCourses opens the course catalogue screen.
func (a *App) OpenCourses() *CourseService {
	return NewCourseService(a.Clients.Course, a.PageSize)
}

func (s *CourseService) fetchPage(ctx context.Context, page, size int) (pagination.Page[models.Course], error) {
	resp, err := s.courses.ListCourses(ctx, page, size)
	if err != nil {
		return pagination.Page[models.Course]{}, err
	}
	s.store.Reset(resp.Courses)
	return pagination.Page[models.Course]{
		Items:      resp.Courses,
		Number:     resp.Pagination.CurrentPage,
		TotalPages: resp.Pagination.TotalPages,
		TotalItems: resp.Pagination.TotalItems,
	}, nil
}

// Load fetches the first page.
func (s *CourseService) Load(ctx context.Context) error {
	return s.pager.Load(ctx)
}

// Next advances a page; a no-op on the last page.
func (s *CourseService) Next(ctx context.Context) error {
	return s.pager.Next(ctx)
}

// Previous goes back a page; a no-op on the first page.
func (s *CourseService) Previous(ctx context.Context) error {
	return s.pager.Previous(ctx)
}

// Retry re-issues the last failed request.
func (s *CourseService) Retry(ctx context.Context) error {
	return s.pager.Retry(ctx)
}

// Pager exposes the listing state for rendering.
func (s *CourseService) Pager() *pagination.Controller[models.Course] {
	return s.pager
}

// Courses returns the visible page.
func (s *CourseService) Courses() []models.Course {
	return s.store.Snapshot()
}

// Detail fetches one course for its header view.
func (s *CourseService) Detail(ctx context.Context, courseID string) (models.Course, error) {
	return s.courses.GetCourse(ctx, courseID)
}

// Create validates the course form and merges the new course into the
// visible list without a refetch.
func (s *CourseService) Create(ctx context.Context, req dto.CreateCourseRequest) (models.Course, forms.Result, error) {
	result := forms.Validate(req)
	if !result.Valid {
		return models.Course{}, result, apperrors.NewValidationError(firstError(result))
	}

	created, err := s.courses.CreateCourse(ctx, req)
	if err != nil {
		s.logger.Warn().Err(err).Str("title", req.Title).Msg("Course creation failed")
		return models.Course{}, result, err
	}

	s.store.Dispatch(liststore.Create[models.Course]{Item: created})
	s.pager.Replace(s.store.Snapshot())
	s.logger.Info().Str("courseId", created.ID).Msg("Course created")
	return created, result, nil
}

// Delete removes a course and drops it from the visible list.
func (s *CourseService) Delete(ctx context.Context, courseID string) error {
	if err := s.courses.DeleteCourse(ctx, courseID); err != nil {
		return err
	}
	s.store.Dispatch(liststore.Delete[models.Course]{ID: courseID})
	s.pager.Replace(s.store.Snapshot())
	return nil
}

// Stale reports whether a mutation happened since the last fetch.
func (s *CourseService) Stale() bool {
	return s.store.Stale()
}
