package models

// User defines the user model based on the 'users' table
type User struct {
	ID       int64  `json:"id" db:"id" example:"1"`
	Email    string `json:"email" db:"email" example:"jane@example.com"`
	Password string `json:"-" db:"password"` // Hashed password, excluded from JSON
	Role     Role   `json:"role" db:"role" example:"student"`
}
