package models

import "time"

// Forum is a discussion board attached to a course. The client holds a
// read-only copy for the lifetime of the open screen.
type Forum struct {
	ID          string    `json:"id"`
	CourseID    string    `json:"course_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	UserID      string    `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	IsActive    bool      `json:"is_active"`
}

// Key implements liststore.Keyed.
func (f Forum) Key() string { return f.ID }
