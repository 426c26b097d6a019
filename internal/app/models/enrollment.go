package models

// Enrollment links a student to a course, based on the 'enrollments' table.
// The (user_id, course_id) pair is unique at the storage layer.
type Enrollment struct {
	ID       int64 `json:"id" db:"id" example:"1"`
	UserID   int64 `json:"userId" db:"user_id" example:"2"`
	CourseID int64 `json:"courseId" db:"course_id" example:"5"`
}
