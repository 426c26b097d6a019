package models

// Content defines an uploaded course material record,
// based on the 'content' table. The blob itself lives in file storage;
// only the access URL is persisted here.
type Content struct {
	ID       int64  `json:"id" db:"id" example:"1"`
	CourseID int64  `json:"courseId" db:"course_id" example:"5"`
	Type     string `json:"type" db:"type" example:"video"`
	URL      string `json:"url" db:"url" example:"http://localhost:8080/uploads/content/abc.mp4"`
}
