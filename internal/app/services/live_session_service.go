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

// LiveSessionService defines the interface for live session operations
type LiveSessionService interface {
	Schedule(ctx context.Context, userID int64, role models.Role, req *dto.CreateLiveSessionRequest) (*models.LiveSession, error)
	GetByID(ctx context.Context, id int64) (*models.LiveSession, error)
	GetByCourseID(ctx context.Context, courseID int64) ([]*models.LiveSession, error)
	GetAll(ctx context.Context) ([]*models.LiveSession, error)
}

// liveSessionServiceImpl implements the LiveSessionService interface
type liveSessionServiceImpl struct {
	sessionRepo repositories.ILiveSessionRepository
	authz       *appAuth.AuthorizationService
}

// NewLiveSessionService creates a new live session service instance
func NewLiveSessionService(sessionRepo repositories.ILiveSessionRepository, authz *appAuth.AuthorizationService) LiveSessionService {
	return &liveSessionServiceImpl{
		sessionRepo: sessionRepo,
		authz:       authz,
	}
}

// Schedule creates a live session for a course the caller owns
func (s *liveSessionServiceImpl) Schedule(ctx context.Context, userID int64, role models.Role, req *dto.CreateLiveSessionRequest) (*models.LiveSession, error) {
	if strings.TrimSpace(req.ZoomLink) == "" {
		return nil, fmt.Errorf("%w: zoomLink cannot be empty", apperrors.ErrValidationFailed)
	}

	if _, err := s.authz.EnsureCourseOwner(ctx, userID, role, req.CourseID); err != nil {
		return nil, err
	}

	session := &models.LiveSession{
		CourseID: req.CourseID,
		Date:     req.Date,
		ZoomLink: req.ZoomLink,
	}

	id, err := s.sessionRepo.Create(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("error creating live session: %w", err)
	}
	session.ID = id

	return session, nil
}

// GetByID retrieves a live session by ID
func (s *liveSessionServiceImpl) GetByID(ctx context.Context, id int64) (*models.LiveSession, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid session ID", apperrors.ErrValidationFailed)
	}

	return s.sessionRepo.GetByID(ctx, id)
}

// GetAll retrieves every scheduled live session
func (s *liveSessionServiceImpl) GetAll(ctx context.Context) ([]*models.LiveSession, error) {
	return s.sessionRepo.GetAll(ctx)
}

// GetByCourseID retrieves the live sessions scheduled for a course
func (s *liveSessionServiceImpl) GetByCourseID(ctx context.Context, courseID int64) ([]*models.LiveSession, error) {
	if courseID <= 0 {
		return nil, fmt.Errorf("%w: valid courseId is required", apperrors.ErrValidationFailed)
	}

	return s.sessionRepo.GetByCourseID(ctx, courseID)
}
