package models

import "time"

// Course is the read-only context a student or teacher browses modules,
// tasks and exams under.
type Course struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	TeacherID   string    `json:"teacher_id"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
}

// Key implements liststore.Keyed.
func (c Course) Key() string { return c.ID }

// Task is an assignment published in a course; exams share the same shape
// with a different kind.
type Task struct {
	ID          string    `json:"id"`
	CourseID    string    `json:"course_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Kind        string    `json:"kind"` // "task" or "exam"
	DueDate     time.Time `json:"due_date"`
}

// Key implements liststore.Keyed.
func (t Task) Key() string { return t.ID }
