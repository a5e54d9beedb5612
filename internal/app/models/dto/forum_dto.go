package dto

import "github.com/classconnect/classconnect-go/internal/app/models"

// CreateForumRequest creates a discussion forum in a course.
type CreateForumRequest struct {
	CourseID    string   `json:"course_id" validate:"required"`
	Title       string   `json:"title" validate:"required,min=3,max=100"`
	Description string   `json:"description" validate:"required,min=10,max=500"`
	Tags        []string `json:"tags"`
}

// UpdateForumRequest edits an existing forum.
type UpdateForumRequest struct {
	Title       string   `json:"title" validate:"required,min=3,max=100"`
	Description string   `json:"description" validate:"required,min=10,max=500"`
	Tags        []string `json:"tags"`
	IsActive    *bool    `json:"is_active,omitempty"`
}

// ForumListResponse is one page of forums.
type ForumListResponse struct {
	Forums     []models.Forum `json:"forums"`
	Pagination PaginationInfo `json:"pagination"`
}

// CreateQuestionRequest posts a question in a forum.
type CreateQuestionRequest struct {
	ForumID     string   `json:"forum_id" validate:"required"`
	Title       string   `json:"title" validate:"required,min=3,max=100"`
	Description string   `json:"description" validate:"required,min=10,max=500"`
	Tags        []string `json:"tags"`
}

// QuestionListResponse is one page of questions.
type QuestionListResponse struct {
	Questions  []models.Question `json:"questions"`
	Pagination PaginationInfo    `json:"pagination"`
}

// CreateAnswerRequest posts an answer to a question.
type CreateAnswerRequest struct {
	QuestionID string `json:"question_id" validate:"required"`
	Content    string `json:"content" validate:"required,min=10,max=500"`
}

// VoteRequest casts a vote on a question or answer. Removal goes through
// querystring parameters on DELETE instead of a body.
type VoteRequest struct {
	UserID string          `json:"user_id" validate:"required"`
	Type   models.VoteType `json:"type" validate:"required,oneof=up down"`
}
