package dto

// UploadContentRequest represents the form fields accompanying a content
// upload. The file itself arrives as the "file" multipart part.
type UploadContentRequest struct {
	CourseID int64 `form:"courseId" binding:"required,min=1"`
}
