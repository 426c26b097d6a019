package models

import "time"

// LiveSession defines a scheduled live session for a course,
// based on the 'live_sessions' table.
type LiveSession struct {
	ID       int64     `json:"id" db:"id" example:"1"`
	CourseID int64     `json:"courseId" db:"course_id" example:"5"`
	Date     time.Time `json:"date" db:"date" example:"2026-10-01T14:00:00Z"`
	ZoomLink string    `json:"zoomLink" db:"zoom_link" example:"https://zoom.us/j/123456"`
}
