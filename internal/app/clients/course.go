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

// CourseClient talks to the course service: courses, modules, resources,
// tasks, exams, submissions and auxiliary teachers.
type CourseClient struct {
	http *httpclient.Client
}

// NewCourseClient creates a CourseClient over the given transport.
func NewCourseClient(http *httpclient.Client) *CourseClient {
	return &CourseClient{http: http}
}

// ListCourses fetches one page of courses visible to the caller.
func (c *CourseClient) ListCourses(ctx context.Context, page, size int) (dto.CourseListResponse, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("size", strconv.Itoa(size))

	var out dto.CourseListResponse
	err := c.http.Get(ctx, "/courses?"+query.Encode(), &out)
	return out, err
}

// GetCourse fetches a single course.
func (c *CourseClient) GetCourse(ctx context.Context, courseID string) (models.Course, error) {
	var out models.Course
	err := c.http.Get(ctx, "/courses/"+url.PathEscape(courseID), &out)
	return out, err
}

// CreateCourse creates a course.
func (c *CourseClient) CreateCourse(ctx context.Context, req dto.CreateCourseRequest) (models.Course, error) {
	var out models.Course
	err := c.http.Post(ctx, "/courses", req, &out)
	return out, err
}

// DeleteCourse removes a course.
func (c *CourseClient) DeleteCourse(ctx context.Context, courseID string) error {
	return c.http.Delete(ctx, "/courses/"+url.PathEscape(courseID), nil)
}

// ListModules fetches a course's modules, ordered by order_idx.
func (c *CourseClient) ListModules(ctx context.Context, courseID string) (dto.ModuleListResponse, error) {
	var out dto.ModuleListResponse
	err := c.http.Get(ctx, fmt.Sprintf("/courses/%s/modules", url.PathEscape(courseID)), &out)
	return out, err
}

// CreateModule creates a module. A duplicate order index among siblings
// comes back as a 409.
func (c *CourseClient) CreateModule(ctx context.Context, courseID string, req dto.CreateModuleRequest) (models.Module, error) {
	var out models.Module
	err := c.http.Post(ctx, fmt.Sprintf("/courses/%s/modules", url.PathEscape(courseID)), req, &out)
	return out, err
}

// UpdateModule edits a module, same 409 semantics as CreateModule.
func (c *CourseClient) UpdateModule(ctx context.Context, courseID, moduleID string, req dto.UpdateModuleRequest) (models.Module, error) {
	var out models.Module
	err := c.http.Patch(ctx, fmt.Sprintf("/courses/%s/modules/%s", url.PathEscape(courseID), url.PathEscape(moduleID)), req, &out)
	return out, err
}

// DeleteModule removes a module.
func (c *CourseClient) DeleteModule(ctx context.Context, courseID, moduleID string) error {
	return c.http.Delete(ctx, fmt.Sprintf("/courses/%s/modules/%s", url.PathEscape(courseID), url.PathEscape(moduleID)), nil)
}

// AddResource attaches an inline (link or text) resource to a module.
func (c *CourseClient) AddResource(ctx context.Context, courseID, moduleID string, req dto.CreateResourceRequest) (models.Resource, error) {
	var out models.Resource
	err := c.http.Post(ctx, resourcesPath(courseID, moduleID), req, &out)
	return out, err
}

// AddResourceFile attaches a binary resource (document, image, video) via a
// multipart upload.
func (c *CourseClient) AddResourceFile(ctx context.Context, courseID, moduleID string, req dto.CreateResourceRequest, attachment *httpclient.Attachment) (models.Resource, error) {
	fields := map[string]string{
		"title": req.Title,
		"type":  string(req.Type),
	}
	var out models.Resource
	err := c.http.PostMultipart(ctx, resourcesPath(courseID, moduleID), fields, attachment, &out)
	return out, err
}

// ListTasks fetches one page of a course's tasks and exams.
func (c *CourseClient) ListTasks(ctx context.Context, courseID string, page, size int) (dto.TaskListResponse, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("size", strconv.Itoa(size))

	var out dto.TaskListResponse
	err := c.http.Get(ctx, fmt.Sprintf("/courses/%s/tasks?%s", url.PathEscape(courseID), query.Encode()), &out)
	return out, err
}

// GetTask fetches a single task.
func (c *CourseClient) GetTask(ctx context.Context, taskID string) (models.Task, error) {
	var out models.Task
	err := c.http.Get(ctx, "/tasks/"+url.PathEscape(taskID), &out)
	return out, err
}

// GetExam fetches a single exam.
func (c *CourseClient) GetExam(ctx context.Context, examID string) (models.Task, error) {
	var out models.Task
	err := c.http.Get(ctx, "/exams/"+url.PathEscape(examID), &out)
	return out, err
}

// ListSubmissions fetches the submissions handed in for a task or exam.
func (c *CourseClient) ListSubmissions(ctx context.Context, taskID string, page, size int) (dto.SubmissionListResponse, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("size", strconv.Itoa(size))

	var out dto.SubmissionListResponse
	err := c.http.Get(ctx, fmt.Sprintf("/tasks/%s/submissions?%s", url.PathEscape(taskID), query.Encode()), &out)
	return out, err
}

// SetScore grades a submission through the dedicated score endpoint.
func (c *CourseClient) SetScore(ctx context.Context, submissionID string, req dto.SetScoreRequest) (models.Submission, error) {
	var out models.Submission
	err := c.http.Put(ctx, fmt.Sprintf("/submissions/%s/score", url.PathEscape(submissionID)), req, &out)
	return out, err
}

// SetFeedback attaches written feedback to a submission.
func (c *CourseClient) SetFeedback(ctx context.Context, submissionID string, req dto.SetFeedbackRequest) (models.Submission, error) {
	var out models.Submission
	err := c.http.Put(ctx, fmt.Sprintf("/submissions/%s/feedback", url.PathEscape(submissionID)), req, &out)
	return out, err
}

// ListAuxiliars fetches a course's auxiliary teachers.
func (c *CourseClient) ListAuxiliars(ctx context.Context, courseID string) (dto.AuxiliarListResponse, error) {
	var out dto.AuxiliarListResponse
	err := c.http.Get(ctx, auxiliarsPath(courseID), &out)
	return out, err
}

// AddAuxiliar grants permissions to an auxiliary teacher. A duplicate
// assignment comes back as a 409.
func (c *CourseClient) AddAuxiliar(ctx context.Context, courseID string, req dto.AddAuxiliarRequest) (models.AuxiliarTeacher, error) {
	var out models.AuxiliarTeacher
	err := c.http.Post(ctx, auxiliarsPath(courseID), req, &out)
	return out, err
}

// RemoveAuxiliar revokes an auxiliary teacher's assignment.
func (c *CourseClient) RemoveAuxiliar(ctx context.Context, courseID, email string) error {
	return c.http.Delete(ctx, auxiliarsPath(courseID)+"/"+url.PathEscape(email), nil)
}

func resourcesPath(courseID, moduleID string) string {
	return fmt.Sprintf("/courses/%s/modules/%s/resources", url.PathEscape(courseID), url.PathEscape(moduleID))
}

func auxiliarsPath(courseID string) string {
	return fmt.Sprintf("/courses/%s/auxiliars", url.PathEscape(courseID))
}
