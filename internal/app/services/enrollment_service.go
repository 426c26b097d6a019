package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/coursehub/backend/internal/app/models"
	"github.com/coursehub/backend/internal/app/repositories"
	"github.com/coursehub/backend/internal/pkg/apperrors"
)

// EnrollmentService defines the interface for enrollment operations
type EnrollmentService interface {
	Enroll(ctx context.Context, userID, courseID int64) (*models.Enrollment, error)
	GetEnrolledCourses(ctx context.Context, userID int64) ([]*models.Course, error)
}

// enrollmentServiceImpl implements the EnrollmentService interface
type enrollmentServiceImpl struct {
	enrollmentRepo repositories.IEnrollmentRepository
	courseRepo     repositories.ICourseRepository
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(enrollmentRepo repositories.IEnrollmentRepository, courseRepo repositories.ICourseRepository) EnrollmentService {
	return &enrollmentServiceImpl{
		enrollmentRepo: enrollmentRepo,
		courseRepo:     courseRepo,
	}
}

// Enroll creates an enrollment for the authenticated student. The course
// must exist, and the unique (user, course) constraint rejects a second
// enrollment even under concurrent identical requests.
func (s *enrollmentServiceImpl) Enroll(ctx context.Context, userID, courseID int64) (*models.Enrollment, error) {
	if _, err := s.courseRepo.GetByID(ctx, courseID); err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error checking course: %w", err)
	}

	enrollment := &models.Enrollment{
		UserID:   userID,
		CourseID: courseID,
	}

	id, err := s.enrollmentRepo.Create(ctx, enrollment)
	if err != nil {
		if errors.Is(err, apperrors.ErrAlreadyEnrolled) {
			return nil, apperrors.ErrAlreadyEnrolled
		}
		return nil, fmt.Errorf("error creating enrollment: %w", err)
	}
	enrollment.ID = id

	return enrollment, nil
}

// GetEnrolledCourses retrieves the courses the user is enrolled in
func (s *enrollmentServiceImpl) GetEnrolledCourses(ctx context.Context, userID int64) ([]*models.Course, error) {
	courses, err := s.enrollmentRepo.GetEnrolledCourses(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving enrolled courses: %w", err)
	}
	return courses, nil
}
