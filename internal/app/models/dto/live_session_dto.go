package dto

import "time"

// CreateLiveSessionRequest represents a request to schedule a live session
type CreateLiveSessionRequest struct {
	CourseID int64     `json:"courseId" binding:"required,min=1"`
	Date     time.Time `json:"date" binding:"required"`
	ZoomLink string    `json:"zoomLink" binding:"required"`
}
