package dto

import (
	"time"

	"github.com/classconnect/classconnect-go/internal/app/models"
)

// CourseListResponse is one page of courses.
type CourseListResponse struct {
	Courses    []models.Course `json:"courses"`
	Pagination PaginationInfo  `json:"pagination"`
}

// CreateCourseRequest creates a course. End date may not precede the start.
type CreateCourseRequest struct {
	Title       string    `json:"title" validate:"required,min=3,max=100"`
	Description string    `json:"description" validate:"required,min=10,max=500"`
	StartDate   time.Time `json:"start_date" validate:"required"`
	EndDate     time.Time `json:"end_date" validate:"required,gtefield=StartDate"`
}

// CreateModuleRequest creates a module inside a course. A duplicate
// order_idx among sibling modules comes back as 409 from the backend.
type CreateModuleRequest struct {
	Title       string `json:"title" validate:"required,min=3,max=100"`
	Description string `json:"description" validate:"required,min=10,max=500"`
	OrderIdx    int    `json:"order_idx" validate:"gte=0"`
}

// UpdateModuleRequest edits a module.
type UpdateModuleRequest struct {
	Title       string `json:"title" validate:"required,min=3,max=100"`
	Description string `json:"description" validate:"required,min=10,max=500"`
	OrderIdx    int    `json:"order_idx" validate:"gte=0"`
}

// ModuleListResponse lists the modules of a course.
type ModuleListResponse struct {
	Modules []models.Module `json:"modules"`
}

// CreateResourceRequest attaches a resource to a module. Link and text
// resources carry their payload inline; document, image and video types
// require a file upload instead.
type CreateResourceRequest struct {
	Title   string              `json:"title" validate:"required,min=3,max=100"`
	Type    models.ResourceType `json:"type" validate:"required,oneof=link text document image video"`
	URL     string              `json:"url,omitempty" validate:"required_if=Type link"`
	Content string              `json:"content,omitempty" validate:"required_if=Type text"`
}

// TaskListResponse is one page of tasks or exams.
type TaskListResponse struct {
	Tasks      []models.Task  `json:"tasks"`
	Pagination PaginationInfo `json:"pagination"`
}

// SubmissionListResponse lists the submissions for a task or exam.
type SubmissionListResponse struct {
	Submissions []models.Submission `json:"submissions"`
	Pagination  PaginationInfo      `json:"pagination"`
}

// SetScoreRequest grades a submission. The score was already validated
// client-side against [0, 100].
type SetScoreRequest struct {
	Score int `json:"score" validate:"gte=0,lte=100"`
}

// SetFeedbackRequest attaches written feedback to a submission.
type SetFeedbackRequest struct {
	Feedback string `json:"feedback" validate:"required,min=10,max=500"`
}

// AddAuxiliarRequest grants an auxiliary teacher permissions on a course.
type AddAuxiliarRequest struct {
	Auxiliar    string                   `json:"auxiliar" validate:"required,email"`
	Permissions []models.PermissionEntry `json:"permissions" validate:"required,min=1,dive"`
}

// AuxiliarListResponse lists a course's auxiliary teachers.
type AuxiliarListResponse struct {
	Auxiliars []models.AuxiliarTeacher `json:"auxiliars"`
}
