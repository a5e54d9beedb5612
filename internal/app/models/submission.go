package models

import "time"

// Submission is a student's answer set to a task or exam. Score and
// Feedback are set by teacher grading actions; Score stays within [0, 100].
type Submission struct {
	ID          string            `json:"id"`
	TaskID      string            `json:"task_id"`
	StudentID   string            `json:"student_id"`
	Answers     map[string]string `json:"answers"`
	SubmittedAt time.Time         `json:"submitted_at"`
	IsLate      bool              `json:"is_late"`
	Score       *int              `json:"score,omitempty"`
	Feedback    string            `json:"feedback,omitempty"`
}

// Key implements liststore.Keyed.
func (s Submission) Key() string { return s.ID }

// Graded reports whether a score has been assigned.
func (s Submission) Graded() bool { return s.Score != nil }

// LateAgainst computes the late flag from the task deadline, used when the
// backend omits is_late.
func (s Submission) LateAgainst(due time.Time) bool {
	if !due.IsZero() {
		return s.SubmittedAt.After(due)
	}
	return s.IsLate
}
