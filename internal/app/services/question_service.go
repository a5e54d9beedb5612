package services

import (
	"context"
	"fmt"

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

// QuestionView is a question merged with its enriched author profile.
type QuestionView struct {
	models.Question
	AuthorName string
}

// QuestionService is the question listing screen of one forum. Besides the
// usual fetch/enrich/paginate cycle it owns vote toggling, which keeps the
// one-vote-per-user invariant by sequencing removal before addition.
type QuestionService struct {
	forums   *clients.ForumClient
	profiles *clients.ProfileClient
	sessions *auth.SessionManager
	forumID  string

	cache *enrich.Cache[string, models.UserProfile]
	store *liststore.Store[models.Question]
	pager *pagination.Controller[models.Question]

	logger zerolog.Logger
}

// NewQuestionService opens the question screen for forumID.
func NewQuestionService(
	forums *clients.ForumClient,
	profiles *clients.ProfileClient,
	sessions *auth.SessionManager,
	forumID string,
	pageSize int,
) *QuestionService {
	s := &QuestionService{
		forums:   forums,
		profiles: profiles,
		sessions: sessions,
		forumID:  forumID,
		cache:    enrich.NewCache[string, models.UserProfile](),
		store:    liststore.New[models.Question](nil),
		logger:   logger.With("questions"),
	}
	s.pager = pagination.NewController(s.fetchPage, pageSize)
	return s
}

func (s *QuestionService) fetchPage(ctx context.Context, page, size int) (pagination.Page[models.Question], error) {
	resp, err := s.forums.ListQuestions(ctx, s.forumID, page, size)
	if err != nil {
		return pagination.Page[models.Question]{}, err
	}
	s.store.Reset(resp.Questions)
	return pagination.Page[models.Question]{
		Items:      resp.Questions,
		Number:     resp.Pagination.CurrentPage,
		TotalPages: resp.Pagination.TotalPages,
		TotalItems: resp.Pagination.TotalItems,
	}, nil
}

// Load fetches the first page.
func (s *QuestionService) Load(ctx context.Context) error {
	return s.pager.Load(ctx)
}

// Next advances a page; a no-op on the last page.
func (s *QuestionService) Next(ctx context.Context) error {
	return s.pager.Next(ctx)
}

// Previous goes back a page; a no-op on the first page.
func (s *QuestionService) Previous(ctx context.Context) error {
	return s.pager.Previous(ctx)
}

// Retry re-issues the last failed request.
func (s *QuestionService) Retry(ctx context.Context) error {
	return s.pager.Retry(ctx)
}

// Pager exposes the listing state for rendering.
func (s *QuestionService) Pager() *pagination.Controller[models.Question] {
	return s.pager
}

// Questions returns the visible page enriched with author names.
func (s *QuestionService) Questions(ctx context.Context) []QuestionView {
	enriched := enrich.Enrich(ctx, s.store.Snapshot(),
		func(q models.Question) string { return q.UserID },
		s.cache,
		s.profiles.GetProfile,
	)

	views := make([]QuestionView, len(enriched))
	for i, e := range enriched {
		views[i] = QuestionView{Question: e.Record}
		if e.Related != nil {
			views[i].AuthorName = e.Related.Name
		}
	}
	return views
}

// Ask validates and posts a new question, merging it into the visible list.
func (s *QuestionService) Ask(ctx context.Context, req dto.CreateQuestionRequest) (models.Question, forms.Result, error) {
	req.ForumID = s.forumID
	result := forms.Validate(req)
	if !result.Valid {
		return models.Question{}, result, apperrors.NewValidationError(firstError(result))
	}

	created, err := s.forums.CreateQuestion(ctx, req)
	if err != nil {
		return models.Question{}, result, err
	}

	s.store.Dispatch(liststore.Create[models.Question]{Item: created})
	s.pager.Replace(s.store.Snapshot())
	return created, result, nil
}

// Delete removes a question and drops it from the visible list.
func (s *QuestionService) Delete(ctx context.Context, questionID string) error {
	if err := s.forums.DeleteQuestion(ctx, questionID); err != nil {
		return err
	}
	s.store.Dispatch(liststore.Delete[models.Question]{ID: questionID})
	s.pager.Replace(s.store.Snapshot())
	return nil
}

// ToggleVote casts, swaps or removes the session user's vote on a question.
// Pressing the already-active direction removes the vote; pressing the
// opposite direction removes the old vote first, then adds the new one, so
// the user is never present in both lists. Each server call is mirrored by
// its own local state update computed from the latest snapshot.
func (s *QuestionService) ToggleVote(ctx context.Context, questionID string, direction models.VoteType) error {
	session := s.sessions.Current()
	if session == nil {
		return apperrors.ErrNoSession
	}
	userID := session.UserID

	question, ok := s.store.Find(questionID)
	if !ok {
		return fmt.Errorf("question %s is not on the current page", questionID)
	}

	// Active same-direction vote: an idempotent toggle back to neutral.
	if question.Votes.Has(userID, direction) {
		if err := s.forums.UnvoteQuestion(ctx, questionID, userID, direction); err != nil {
			return err
		}
		question.Votes = question.Votes.Remove(userID, direction)
		s.dispatchUpdate(question)
		return nil
	}

	// Opposite vote present: remove it on the server before adding the new
	// one, patching local state after each confirmed step.
	opposite := models.VoteDown
	if direction == models.VoteDown {
		opposite = models.VoteUp
	}
	if question.Votes.Has(userID, opposite) {
		if err := s.forums.UnvoteQuestion(ctx, questionID, userID, opposite); err != nil {
			return err
		}
		question.Votes = question.Votes.Remove(userID, opposite)
		s.dispatchUpdate(question)
	}

	if err := s.forums.VoteQuestion(ctx, questionID, dto.VoteRequest{UserID: userID, Type: direction}); err != nil {
		return err
	}

	// Recompute from the latest snapshot; the first step already changed it.
	question, _ = s.store.Find(questionID)
	question.Votes = question.Votes.Add(userID, direction)
	s.dispatchUpdate(question)
	return nil
}

func (s *QuestionService) dispatchUpdate(question models.Question) {
	s.store.Dispatch(liststore.Update[models.Question]{Item: question})
	s.pager.Replace(s.store.Snapshot())
}

// Stale reports whether a mutation happened since the last fetch.
func (s *QuestionService) Stale() bool {
	return s.store.Stale()
}
