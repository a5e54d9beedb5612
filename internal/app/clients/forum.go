package clients

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/classconnect/classconnect-go/internal/app/models"
	"github.com/classconnect/classconnect-go/internal/app/models/dto"
	"github.com/classconnect/classconnect-go/internal/pkg/httpclient"
)

// ForumClient talks to the forum service: forums, questions, answers and
// votes.
type ForumClient struct {
	http *httpclient.Client
}

// NewForumClient creates a ForumClient over the given transport.
func NewForumClient(http *httpclient.Client) *ForumClient {
	return &ForumClient{http: http}
}

// ListForums fetches one page of a course's forums.
func (c *ForumClient) ListForums(ctx context.Context, courseID string, page, size int) (dto.ForumListResponse, error) {
	query := url.Values{}
	query.Set("course_id", courseID)
	query.Set("page", strconv.Itoa(page))
	query.Set("size", strconv.Itoa(size))

	var out dto.ForumListResponse
	err := c.http.Get(ctx, "/forums?"+query.Encode(), &out)
	return out, err
}

// CreateForum creates a forum and returns the server's copy.
func (c *ForumClient) CreateForum(ctx context.Context, req dto.CreateForumRequest) (models.Forum, error) {
	var out models.Forum
	err := c.http.Post(ctx, "/forums", req, &out)
	return out, err
}

// UpdateForum edits a forum.
func (c *ForumClient) UpdateForum(ctx context.Context, forumID string, req dto.UpdateForumRequest) (models.Forum, error) {
	var out models.Forum
	err := c.http.Put(ctx, "/forums/"+url.PathEscape(forumID), req, &out)
	return out, err
}

// DeleteForum removes a forum.
func (c *ForumClient) DeleteForum(ctx context.Context, forumID string) error {
	return c.http.Delete(ctx, "/forums/"+url.PathEscape(forumID), nil)
}

// ListQuestions fetches one page of a forum's questions.
func (c *ForumClient) ListQuestions(ctx context.Context, forumID string, page, size int) (dto.QuestionListResponse, error) {
	query := url.Values{}
	query.Set("forum_id", forumID)
	query.Set("page", strconv.Itoa(page))
	query.Set("size", strconv.Itoa(size))

	var out dto.QuestionListResponse
	err := c.http.Get(ctx, "/questions?"+query.Encode(), &out)
	return out, err
}

// GetQuestion fetches a single question with its answers.
func (c *ForumClient) GetQuestion(ctx context.Context, questionID string) (models.Question, error) {
	var out models.Question
	err := c.http.Get(ctx, "/questions/"+url.PathEscape(questionID), &out)
	return out, err
}

// CreateQuestion posts a question.
func (c *ForumClient) CreateQuestion(ctx context.Context, req dto.CreateQuestionRequest) (models.Question, error) {
	var out models.Question
	err := c.http.Post(ctx, "/questions", req, &out)
	return out, err
}

// DeleteQuestion removes a question.
func (c *ForumClient) DeleteQuestion(ctx context.Context, questionID string) error {
	return c.http.Delete(ctx, "/questions/"+url.PathEscape(questionID), nil)
}

// CreateAnswer posts an answer to a question.
func (c *ForumClient) CreateAnswer(ctx context.Context, req dto.CreateAnswerRequest) (models.Answer, error) {
	var out models.Answer
	err := c.http.Post(ctx, "/answers", req, &out)
	return out, err
}

// DeleteAnswer removes an answer.
func (c *ForumClient) DeleteAnswer(ctx context.Context, answerID string) error {
	return c.http.Delete(ctx, "/answers/"+url.PathEscape(answerID), nil)
}

// AcceptAnswer marks an answer as the accepted one for its question.
func (c *ForumClient) AcceptAnswer(ctx context.Context, answerID string) (models.Answer, error) {
	var out models.Answer
	err := c.http.Post(ctx, "/answers/"+url.PathEscape(answerID)+"/accept", nil, &out)
	return out, err
}

// VoteQuestion casts a vote on a question.
func (c *ForumClient) VoteQuestion(ctx context.Context, questionID string, req dto.VoteRequest) error {
	return c.http.Post(ctx, "/questions/"+url.PathEscape(questionID)+"/votes", req, nil)
}

// UnvoteQuestion removes a vote from a question. The vote endpoints take
// removal parameters as a querystring, not a body.
func (c *ForumClient) UnvoteQuestion(ctx context.Context, questionID, userID string, voteType models.VoteType) error {
	return c.http.Delete(ctx, fmt.Sprintf("/questions/%s/votes?%s", url.PathEscape(questionID), voteQuery(userID, voteType)), nil)
}

// VoteAnswer casts a vote on an answer.
func (c *ForumClient) VoteAnswer(ctx context.Context, answerID string, req dto.VoteRequest) error {
	return c.http.Post(ctx, "/answers/"+url.PathEscape(answerID)+"/votes", req, nil)
}

// UnvoteAnswer removes a vote from an answer.
func (c *ForumClient) UnvoteAnswer(ctx context.Context, answerID, userID string, voteType models.VoteType) error {
	return c.http.Delete(ctx, fmt.Sprintf("/answers/%s/votes?%s", url.PathEscape(answerID), voteQuery(userID, voteType)), nil)
}

func voteQuery(userID string, voteType models.VoteType) string {
	query := url.Values{}
	query.Set("user_id", userID)
	query.Set("type", string(voteType))
	return query.Encode()
}
