package dto

// CreateEnrollmentRequest represents an enrollment request. The enrolling
// user is always the authenticated caller.
type CreateEnrollmentRequest struct {
	CourseID int64 `json:"courseId" binding:"required,min=1"`
}
