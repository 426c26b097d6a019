package services

import (
	"context"
	"fmt"
	"strings"

	appAuth "github.com/coursehub/backend/internal/app/auth"
	"github.com/coursehub/backend/internal/app/models"
	"github.com/coursehub/backend/internal/app/models/dto"
	"github.com/coursehub/backend/internal/app/repositories"
	"github.com/coursehub/backend/internal/pkg/apperrors"
)

// CourseService defines the interface for course operations
type CourseService interface {
	Create(ctx context.Context, instructorID int64, req *dto.CreateCourseRequest) (*models.Course, error)
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	Search(ctx context.Context, req *dto.CourseSearchRequest) ([]*models.Course, error)
	Update(ctx context.Context, userID int64, role models.Role, courseID int64, req *dto.UpdateCourseRequest) (*models.Course, error)
	Delete(ctx context.Context, userID int64, role models.Role, courseID int64) error
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courseRepo repositories.ICourseRepository
	authz      *appAuth.AuthorizationService
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo repositories.ICourseRepository, authz *appAuth.AuthorizationService) CourseService {
	return &courseServiceImpl{
		courseRepo: courseRepo,
		authz:      authz,
	}
}

// Create creates a new course owned by the authenticated instructor.
// The instructor ID always comes from the verified identity, never from
// the request body.
func (s *courseServiceImpl) Create(ctx context.Context, instructorID int64, req *dto.CreateCourseRequest) (*models.Course, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", apperrors.ErrValidationFailed)
	}

	course := &models.Course{
		Title:        req.Title,
		Description:  req.Description,
		InstructorID: instructorID,
		Price:        req.Price,
	}

	id, err := s.courseRepo.Create(ctx, course)
	if err != nil {
		return nil, fmt.Errorf("error creating course: %w", err)
	}
	course.ID = id

	return course, nil
}

// GetByID retrieves a course by ID
func (s *courseServiceImpl) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid course ID", apperrors.ErrValidationFailed)
	}

	return s.courseRepo.GetByID(ctx, id)
}

// Search retrieves courses matching the optional filters. No filters
// returns every course.
func (s *courseServiceImpl) Search(ctx context.Context, req *dto.CourseSearchRequest) ([]*models.Course, error) {
	if req.MinPrice != nil && req.MaxPrice != nil && *req.MinPrice > *req.MaxPrice {
		return nil, fmt.Errorf("%w: minPrice cannot exceed maxPrice", apperrors.ErrValidationFailed)
	}

	return s.courseRepo.Search(ctx, repositories.CourseFilters{
		Title:        req.Title,
		MinPrice:     req.MinPrice,
		MaxPrice:     req.MaxPrice,
		InstructorID: req.InstructorID,
	})
}

// Update applies a partial update to a course. Only the owning
// instructor may update; ownership is checked against the stored record.
func (s *courseServiceImpl) Update(ctx context.Context, userID int64, role models.Role, courseID int64, req *dto.UpdateCourseRequest) (*models.Course, error) {
	course, err := s.authz.EnsureCourseOwner(ctx, userID, role, courseID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
		}
		course.Title = *req.Title
	}
	if req.Description != nil {
		course.Description = req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, fmt.Errorf("%w: price cannot be negative", apperrors.ErrValidationFailed)
		}
		course.Price = *req.Price
	}

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, fmt.Errorf("error updating course: %w", err)
	}

	return course, nil
}

// Delete removes a course. Only the owning instructor may delete, and
// deletion is restricted while dependent records exist.
func (s *courseServiceImpl) Delete(ctx context.Context, userID int64, role models.Role, courseID int64) error {
	if _, err := s.authz.EnsureCourseOwner(ctx, userID, role, courseID); err != nil {
		return err
	}

	return s.courseRepo.Delete(ctx, courseID)
}
