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
)

// AnswerView is an answer merged with its enriched author profile.
type AnswerView struct {
	models.Answer
	AuthorName string
}

// QuestionDetail is the question detail screen: one question, its answers,
// answer voting and acceptance. Opened from the question listing and
// discarded on close together with its profile cache.
type QuestionDetail struct {
	forums     *clients.ForumClient
	profiles   *clients.ProfileClient
	sessions   *auth.SessionManager
	questionID string

	question models.Question
	cache    *enrich.Cache[string, models.UserProfile]
	store    *liststore.Store[models.Answer]

	logger zerolog.Logger
}

// NewQuestionDetail opens the detail screen for questionID.
func NewQuestionDetail(
	forums *clients.ForumClient,
	profiles *clients.ProfileClient,
	sessions *auth.SessionManager,
	questionID string,
) *QuestionDetail {
	return &QuestionDetail{
		forums:     forums,
		profiles:   profiles,
		sessions:   sessions,
		questionID: questionID,
		cache:      enrich.NewCache[string, models.UserProfile](),
		store:      liststore.New[models.Answer](nil),
		logger:     logger.With("question-detail"),
	}
}

// OpenQuestion opens the detail screen for a question from the listing.
func (a *App) OpenQuestion(questionID string) *QuestionDetail {
	return NewQuestionDetail(a.Clients.Forum, a.Clients.Profile, a.Sessions, questionID)
}

// Load fetches the question with its answers.
func (d *QuestionDetail) Load(ctx context.Context) error {
	question, err := d.forums.GetQuestion(ctx, d.questionID)
	if err != nil {
		return err
	}
	d.question = question
	d.store.Reset(question.Answers)
	return nil
}

// Question returns the loaded question.
func (d *QuestionDetail) Question() models.Question {
	return d.question
}

// Answers returns the answers enriched with author names.
func (d *QuestionDetail) Answers(ctx context.Context) []AnswerView {
	enriched := enrich.Enrich(ctx, d.store.Snapshot(),
		func(a models.Answer) string { return a.UserID },
		d.cache,
		d.profiles.GetProfile,
	)

	views := make([]AnswerView, len(enriched))
	for i, e := range enriched {
		views[i] = AnswerView{Answer: e.Record}
		if e.Related != nil {
			views[i].AuthorName = e.Related.Name
		}
	}
	return views
}

// Reply validates and posts an answer, appending it to the visible list.
func (d *QuestionDetail) Reply(ctx context.Context, content string) (models.Answer, forms.Result, error) {
	req := dto.CreateAnswerRequest{QuestionID: d.questionID, Content: content}
	result := forms.Validate(req)
	if !result.Valid {
		return models.Answer{}, result, apperrors.NewValidationError(firstError(result))
	}

	created, err := d.forums.CreateAnswer(ctx, req)
	if err != nil {
		return models.Answer{}, result, err
	}

	d.store.Dispatch(liststore.Create[models.Answer]{Item: created})
	return created, result, nil
}

// DeleteAnswer removes an answer.
func (d *QuestionDetail) DeleteAnswer(ctx context.Context, answerID string) error {
	if err := d.forums.DeleteAnswer(ctx, answerID); err != nil {
		return err
	}
	d.store.Dispatch(liststore.Delete[models.Answer]{ID: answerID})
	return nil
}

// Accept marks an answer as accepted. Only the question author does this;
// the backend enforces it and any 403 is surfaced as-is.
func (d *QuestionDetail) Accept(ctx context.Context, answerID string) error {
	accepted, err := d.forums.AcceptAnswer(ctx, answerID)
	if err != nil {
		return err
	}
	d.store.Dispatch(liststore.Update[models.Answer]{Item: accepted})
	return nil
}

// ToggleVote casts, swaps or removes the session user's vote on an answer,
// with the same sequencing as question votes: the active direction toggles
// off, the opposite direction is removed server-side before the new vote is
// added, and every step patches local state from the latest snapshot.
func (d *QuestionDetail) ToggleVote(ctx context.Context, answerID string, direction models.VoteType) error {
	session := d.sessions.Current()
	if session == nil {
		return apperrors.ErrNoSession
	}
	userID := session.UserID

	answer, ok := d.store.Find(answerID)
	if !ok {
		return fmt.Errorf("answer %s is not loaded", answerID)
	}

	if answer.Votes.Has(userID, direction) {
		if err := d.forums.UnvoteAnswer(ctx, answerID, userID, direction); err != nil {
			return err
		}
		answer.Votes = answer.Votes.Remove(userID, direction)
		d.store.Dispatch(liststore.Update[models.Answer]{Item: answer})
		return nil
	}

	opposite := models.VoteDown
	if direction == models.VoteDown {
		opposite = models.VoteUp
	}
	if answer.Votes.Has(userID, opposite) {
		if err := d.forums.UnvoteAnswer(ctx, answerID, userID, opposite); err != nil {
			return err
		}
		answer.Votes = answer.Votes.Remove(userID, opposite)
		d.store.Dispatch(liststore.Update[models.Answer]{Item: answer})
	}

	if err := d.forums.VoteAnswer(ctx, answerID, dto.VoteRequest{UserID: userID, Type: direction}); err != nil {
		return err
	}

	answer, _ = d.store.Find(answerID)
	answer.Votes = answer.Votes.Add(userID, direction)
	d.store.Dispatch(liststore.Update[models.Answer]{Item: answer})
	return nil
}

// Stale reports whether a mutation happened since the last fetch.
func (d *QuestionDetail) Stale() bool {
	return d.store.Stale()
}
