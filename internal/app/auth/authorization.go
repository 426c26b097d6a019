package auth

import (
	"context"

	"github.com/coursehub/backend/internal/app/models"
	"github.com/coursehub/backend/internal/app/repositories"
	"github.com/coursehub/backend/internal/pkg/apperrors"
)

// AuthorizationService performs ownership checks beyond what the route
// middleware's role gate covers.
type AuthorizationService struct {
	courseRepo repositories.ICourseRepository
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(courseRepo repositories.ICourseRepository) *AuthorizationService {
	return &AuthorizationService{courseRepo: courseRepo}
}

// EnsureCourseOwner verifies that the caller is an instructor and the
// recorded owner of the course. Returns the course on success so callers
// don't refetch it.
func (s *AuthorizationService) EnsureCourseOwner(ctx context.Context, userID int64, role models.Role, courseID int64) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	if role != models.RoleInstructor || course.InstructorID != userID {
		return nil, apperrors.ErrPermissionDenied
	}

	return course, nil
}
