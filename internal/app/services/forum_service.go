package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/classconnect/classconnect-go/internal/app/clients"
	"github.com/classconnect/classconnect-go/internal/app/models"
	"github.com/classconnect/classconnect-go/internal/app/models/dto"
	"github.com/classconnect/classconnect-go/internal/pkg/apperrors"
	"github.com/classconnect/classconnect-go/internal/pkg/auth"
	"github.com/classconnect/classconnect-go/internal/pkg/enrich"
	"github.com/classconnect/classconnect-go/internal/pkg/forms"
	"github.com/classconnect/classconnect-go/internal/pkg/liststore"
	"github.com/classconnect/classconnect-go/internal/pkg/logger"
	"github.com/classconnect/classconnect-go/internal/pkg/pagination"
)

// ForumView is a forum merged with its enriched author profile. AuthorName
// is empty when the profile lookup failed or has not resolved.
type ForumView struct {
	models.Forum
	AuthorName string
}

// ForumService is the forum listing screen of one course: a paginated,
// author-enriched list with optimistic create/update/delete.
type ForumService struct {
	forums   *clients.ForumClient
	profiles *clients.ProfileClient
	sessions *auth.SessionManager
	courseID string

	cache *enrich.Cache[string, models.UserProfile]
	store *liststore.Store[models.Forum]
	pager *pagination.Controller[models.Forum]

	logger zerolog.Logger
}

// NewForumService opens the forum screen for courseID. The profile cache it
// creates lives exactly as long as the service.
func NewForumService(
	forums *clients.ForumClient,
	profiles *clients.ProfileClient,
	sessions *auth.SessionManager,
	courseID string,
	pageSize int,
) *ForumService {
	s := &ForumService{
		forums:   forums,
		profiles: profiles,
		sessions: sessions,
		courseID: courseID,
		cache:    enrich.NewCache[string, models.UserProfile](),
		store:    liststore.New[models.Forum](nil),
		logger:   logger.With("forums"),
	}
	s.pager = pagination.NewController(s.fetchPage, pageSize)
	return s
}

// fetchPage loads one page from the forum service and installs it as the
// authoritative local list.
func (s *ForumService) fetchPage(ctx context.Context, page, size int) (pagination.Page[models.Forum], error) {
	resp, err := s.forums.ListForums(ctx, s.courseID, page, size)
	if err != nil {
		return pagination.Page[models.Forum]{}, err
	}
	s.store.Reset(resp.Forums)
	return pagination.Page[models.Forum]{
		Items:      resp.Forums,
		Number:     resp.Pagination.CurrentPage,
		TotalPages: resp.Pagination.TotalPages,
		TotalItems: resp.Pagination.TotalItems,
	}, nil
}

// Load fetches the first page.
func (s *ForumService) Load(ctx context.Context) error {
	return s.pager.Load(ctx)
}

// Next advances a page; a no-op on the last page.
func (s *ForumService) Next(ctx context.Context) error {
	return s.pager.Next(ctx)
}

// Previous goes back a page; a no-op on the first page.
func (s *ForumService) Previous(ctx context.Context) error {
	return s.pager.Previous(ctx)
}

// Retry re-issues the last failed request.
func (s *ForumService) Retry(ctx context.Context) error {
	return s.pager.Retry(ctx)
}

// Pager exposes the listing state for rendering.
func (s *ForumService) Pager() *pagination.Controller[models.Forum] {
	return s.pager
}

// Forums returns the visible page enriched with author names. A failed
// profile lookup degrades that row, never the whole list.
func (s *ForumService) Forums(ctx context.Context) []ForumView {
	enriched := enrich.Enrich(ctx, s.store.Snapshot(),
		func(f models.Forum) string { return f.UserID },
		s.cache,
		s.profiles.GetProfile,
	)

	views := make([]ForumView, len(enriched))
	for i, e := range enriched {
		views[i] = ForumView{Forum: e.Record}
		if e.Related != nil {
			views[i].AuthorName = e.Related.Name
		}
	}
	return views
}

// Create validates the forum form and, on server success, merges the new
// forum into the visible list without a refetch.
func (s *ForumService) Create(ctx context.Context, req dto.CreateForumRequest) (models.Forum, forms.Result, error) {
	req.CourseID = s.courseID
	result := forms.Validate(req)
	if !result.Valid {
		return models.Forum{}, result, apperrors.NewValidationError(firstError(result))
	}

	created, err := s.forums.CreateForum(ctx, req)
	if err != nil {
		s.logger.Warn().Err(err).Str("courseId", s.courseID).Msg("Forum creation failed")
		return models.Forum{}, result, err
	}

	s.store.Dispatch(liststore.Create[models.Forum]{Item: created})
	s.pager.Replace(s.store.Snapshot())
	s.logger.Info().Str("forumId", created.ID).Msg("Forum created")
	return created, result, nil
}

// Update edits a forum and patches the visible list in place.
func (s *ForumService) Update(ctx context.Context, forumID string, req dto.UpdateForumRequest) (models.Forum, forms.Result, error) {
	result := forms.Validate(req)
	if !result.Valid {
		return models.Forum{}, result, apperrors.NewValidationError(firstError(result))
	}

	updated, err := s.forums.UpdateForum(ctx, forumID, req)
	if err != nil {
		return models.Forum{}, result, err
	}

	s.store.Dispatch(liststore.Update[models.Forum]{Item: updated})
	s.pager.Replace(s.store.Snapshot())
	return updated, result, nil
}

// Delete removes a forum and drops it from the visible list.
func (s *ForumService) Delete(ctx context.Context, forumID string) error {
	if err := s.forums.DeleteForum(ctx, forumID); err != nil {
		return err
	}
	s.store.Dispatch(liststore.Delete[models.Forum]{ID: forumID})
	s.pager.Replace(s.store.Snapshot())
	return nil
}

// Stale reports whether a mutation happened since the last fetch, so a
// reopening screen knows to refetch authoritative data.
func (s *ForumService) Stale() bool {
	return s.store.Stale()
}
