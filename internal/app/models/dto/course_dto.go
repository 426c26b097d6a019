package dto

// CreateCourseRequest represents course creation data. The instructor is
// always the authenticated caller; any instructorId in the body is ignored.
type CreateCourseRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	Price       float64 `json:"price" binding:"gte=0"`
}

// UpdateCourseRequest represents a partial course update
type UpdateCourseRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
}

// CourseSearchRequest represents optional search filters, combined with AND
type CourseSearchRequest struct {
	Title        *string  `form:"title"`
	MinPrice     *float64 `form:"minPrice" binding:"omitempty,gte=0"`
	MaxPrice     *float64 `form:"maxPrice" binding:"omitempty,gte=0"`
	InstructorID *int64   `form:"instructorId" binding:"omitempty,min=1"`
}
