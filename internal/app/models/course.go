package models

// Course defines the course model based on the 'courses' table
type Course struct {
	ID           int64   `json:"id" db:"id" example:"1"`
	Title        string  `json:"title" db:"title" example:"Introduction to Go"`
	Description  *string `json:"description,omitempty" db:"description"` // Nullable
	InstructorID int64   `json:"instructorId" db:"instructor_id" example:"3"`
	Price        float64 `json:"price" db:"price" example:"19.99"`
}
