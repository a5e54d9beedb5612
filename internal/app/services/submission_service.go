package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/classconnect/classconnect-go/internal/app/clients"
	"github.com/classconnect/classconnect-go/internal/app/models"
	"github.com/classconnect/classconnect-go/internal/app/models/dto"
	"github.com/classconnect/classconnect-go/internal/pkg/apperrors"
	"github.com/classconnect/classconnect-go/internal/pkg/enrich"
	"github.com/classconnect/classconnect-go/internal/pkg/forms"
	"github.com/classconnect/classconnect-go/internal/pkg/liststore"
	"github.com/classconnect/classconnect-go/internal/pkg/logger"
	"github.com/classconnect/classconnect-go/internal/pkg/pagination"
)

// feedbackSystemMessage frames the AI service's role when drafting grading
// feedback for a teacher to edit.
const feedbackSystemMessage = "You are a teaching assistant. Write short, constructive feedback " +
	"for a student's submission. Address the student directly and point out one strength " +
	"and one concrete improvement."

// SubmissionView is a submission merged with the student's enriched profile.
type SubmissionView struct {
	models.Submission
	StudentName string
}

// SubmissionService is the grading screen of one task or exam: a paginated,
// student-enriched submission list, score and feedback mutations, and
// AI-drafted feedback suggestions.
type SubmissionService struct {
	courses  *clients.CourseClient
	profiles *clients.ProfileClient
	chat     *clients.ChatClient
	taskID   string

	cache *enrich.Cache[string, models.UserProfile]
	store *liststore.Store[models.Submission]
	pager *pagination.Controller[models.Submission]

	logger zerolog.Logger
}

// NewSubmissionService opens the grading screen for taskID.
func NewSubmissionService(
	courses *clients.CourseClient,
	profiles *clients.ProfileClient,
	chat *clients.ChatClient,
	taskID string,
	pageSize int,
) *SubmissionService {
	s := &SubmissionService{
		courses:  courses,
		profiles: profiles,
		chat:     chat,
		taskID:   taskID,
		cache:    enrich.NewCache[string, models.UserProfile](),
		store:    liststore.New[models.Submission](nil),
		logger:   logger.With("submissions"),
	}
	s.pager = pagination.NewController(s.fetchPage, pageSize)
	return s
}

func (s *SubmissionService) fetchPage(ctx context.Context, page, size int) (pagination.Page[models.Submission], error) {
	resp, err := s.courses.ListSubmissions(ctx, s.taskID, page, size)
	if err != nil {
		return pagination.Page[models.Submission]{}, err
	}
	s.store.Reset(resp.Submissions)
	return pagination.Page[models.Submission]{
		Items:      resp.Submissions,
		Number:     resp.Pagination.CurrentPage,
		TotalPages: resp.Pagination.TotalPages,
		TotalItems: resp.Pagination.TotalItems,
	}, nil
}

// Load fetches the first page.
func (s *SubmissionService) Load(ctx context.Context) error {
	return s.pager.Load(ctx)
}

// Next advances a page; a no-op on the last page.
func (s *SubmissionService) Next(ctx context.Context) error {
	return s.pager.Next(ctx)
}

// Previous goes back a page; a no-op on the first page.
func (s *SubmissionService) Previous(ctx context.Context) error {
	return s.pager.Previous(ctx)
}

// Retry re-issues the last failed request.
func (s *SubmissionService) Retry(ctx context.Context) error {
	return s.pager.Retry(ctx)
}

// Pager exposes the listing state for rendering.
func (s *SubmissionService) Pager() *pagination.Controller[models.Submission] {
	return s.pager
}

// Submissions returns the visible page enriched with student names.
func (s *SubmissionService) Submissions(ctx context.Context) []SubmissionView {
	enriched := enrich.Enrich(ctx, s.store.Snapshot(),
		func(sub models.Submission) string { return sub.StudentID },
		s.cache,
		s.profiles.GetProfile,
	)

	views := make([]SubmissionView, len(enriched))
	for i, e := range enriched {
		views[i] = SubmissionView{Submission: e.Record}
		if e.Related != nil {
			views[i].StudentName = e.Related.Name
		}
	}
	return views
}

// Grade parses and validates raw score input (digits only, 0 to 100) before
// any network call, submits it through the dedicated score endpoint and
// patches the graded submission into the visible list.
func (s *SubmissionService) Grade(ctx context.Context, submissionID, rawScore string) (models.Submission, error) {
	score, err := forms.ParseScore(rawScore)
	if err != nil {
		return models.Submission{}, apperrors.NewValidationError(err.Error())
	}

	updated, err := s.courses.SetScore(ctx, submissionID, dto.SetScoreRequest{Score: score})
	if err != nil {
		s.logger.Warn().Err(err).Str("submissionId", submissionID).Msg("Grading failed")
		return models.Submission{}, err
	}

	s.store.Dispatch(liststore.Update[models.Submission]{Item: updated})
	s.pager.Replace(s.store.Snapshot())
	s.logger.Info().Str("submissionId", submissionID).Int("score", score).Msg("Submission graded")
	return updated, nil
}

// GiveFeedback validates and submits written feedback, patching the
// submission into the visible list.
func (s *SubmissionService) GiveFeedback(ctx context.Context, submissionID, feedback string) (models.Submission, forms.Result, error) {
	req := dto.SetFeedbackRequest{Feedback: feedback}
	result := forms.Validate(req)
	if !result.Valid {
		return models.Submission{}, result, apperrors.NewValidationError(firstError(result))
	}

	updated, err := s.courses.SetFeedback(ctx, submissionID, req)
	if err != nil {
		return models.Submission{}, result, err
	}

	s.store.Dispatch(liststore.Update[models.Submission]{Item: updated})
	s.pager.Replace(s.store.Snapshot())
	return updated, result, nil
}

// SuggestFeedback asks the AI service to draft feedback for a submission.
// The draft is returned for the teacher to edit; nothing is stored until
// GiveFeedback.
func (s *SubmissionService) SuggestFeedback(ctx context.Context, submissionID string) (string, error) {
	submission, ok := s.store.Find(submissionID)
	if !ok {
		return "", fmt.Errorf("submission %s is not on the current page", submissionID)
	}

	var answers strings.Builder
	for question, answer := range submission.Answers {
		fmt.Fprintf(&answers, "Q: %s\nA: %s\n", question, answer)
	}

	return s.chat.CustomInference(ctx, dto.InferenceRequest{
		SystemMessage: feedbackSystemMessage,
		UserMessage:   answers.String(),
	})
}

// Stale reports whether a mutation happened since the last fetch.
func (s *SubmissionService) Stale() bool {
	return s.store.Stale()
}
