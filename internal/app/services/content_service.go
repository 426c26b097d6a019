package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	appAuth "github.com/coursehub/backend/internal/app/auth"
	"github.com/coursehub/backend/internal/app/models"
	"github.com/coursehub/backend/internal/app/repositories"
	"github.com/coursehub/backend/internal/pkg/apperrors"
	"github.com/coursehub/backend/internal/pkg/filestorage"
)

// ContentService defines the interface for course content operations
type ContentService interface {
	Upload(ctx context.Context, userID int64, role models.Role, courseID int64, file *multipart.FileHeader) (*models.Content, error)
	GetByCourseID(ctx context.Context, courseID int64) ([]*models.Content, error)
}

// contentServiceImpl implements the ContentService interface
type contentServiceImpl struct {
	contentRepo repositories.IContentRepository
	authz       *appAuth.AuthorizationService
	storage     filestorage.FileStorage
}

// NewContentService creates a new content service instance
func NewContentService(contentRepo repositories.IContentRepository, authz *appAuth.AuthorizationService, storage filestorage.FileStorage) ContentService {
	return &contentServiceImpl{
		contentRepo: contentRepo,
		authz:       authz,
		storage:     storage,
	}
}

// Upload stores an uploaded file in the blob store and records it
// against a course the caller owns. The content type is the major part
// of the file's MIME type.
func (s *contentServiceImpl) Upload(ctx context.Context, userID int64, role models.Role, courseID int64, file *multipart.FileHeader) (*models.Content, error) {
	if file == nil {
		return nil, fmt.Errorf("%w: no file uploaded", apperrors.ErrValidationFailed)
	}

	if _, err := s.authz.EnsureCourseOwner(ctx, userID, role, courseID); err != nil {
		return nil, err
	}

	url, err := s.storage.SaveFile(file, "content")
	if err != nil {
		return nil, fmt.Errorf("error storing uploaded file: %w", err)
	}

	content := &models.Content{
		CourseID: courseID,
		Type:     contentTypeFromMime(file.Header.Get("Content-Type")),
		URL:      url,
	}

	id, err := s.contentRepo.Create(ctx, content)
	if err != nil {
		// The record failed; don't leave the blob orphaned.
		_ = s.storage.DeleteFile(url)
		return nil, fmt.Errorf("error creating content record: %w", err)
	}
	content.ID = id

	return content, nil
}

// GetByCourseID retrieves the content records for a course
func (s *contentServiceImpl) GetByCourseID(ctx context.Context, courseID int64) ([]*models.Content, error) {
	if courseID <= 0 {
		return nil, fmt.Errorf("%w: valid courseId is required", apperrors.ErrValidationFailed)
	}

	return s.contentRepo.GetByCourseID(ctx, courseID)
}

func contentTypeFromMime(mimeType string) string {
	if mimeType == "" {
		return "file"
	}
	if idx := strings.Index(mimeType, "/"); idx > 0 {
		return mimeType[:idx]
	}
	return mimeType
}
