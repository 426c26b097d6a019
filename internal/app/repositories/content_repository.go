package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/coursehub/backend/internal/app/models"
	"github.com/coursehub/backend/internal/pkg/apperrors"
	"github.com/coursehub/backend/internal/pkg/dberrors"
	"github.com/coursehub/backend/internal/pkg/logger"
)

// IContentRepository defines the content data access contract
type IContentRepository interface {
	Create(ctx context.Context, content *models.Content) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Content, error)
	GetByCourseID(ctx context.Context, courseID int64) ([]*models.Content, error)
}

// ContentRepository handles content database operations
type ContentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewContentRepository creates a new ContentRepository
func NewContentRepository(db *pgxpool.Pool) *ContentRepository {
	return &ContentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new content record
func (r *ContentRepository) Create(ctx context.Context, content *models.Content) (int64, error) {
	sql, args, err := r.sb.Insert("content").
		Columns("course_id", "type", "url").
		Values(content.CourseID, content.Type, content.URL).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create content query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Msg("Error executing create content query")
		return 0, fmt.Errorf("error creating content: %w", err)
	}

	return id, nil
}

// GetByID retrieves a content record by ID
func (r *ContentRepository) GetByID(ctx context.Context, id int64) (*models.Content, error) {
	sql, args, err := r.sb.Select("id", "course_id", "type", "url").
		From("content").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get content query: %w", err)
	}

	content := &models.Content{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&content.ID, &content.CourseID, &content.Type, &content.URL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrContentNotFound
		}
		logger.Error().Err(err).Int64("contentID", id).Msg("Error scanning content row")
		return nil, fmt.Errorf("error getting content by ID: %w", err)
	}

	return content, nil
}

// GetByCourseID retrieves all content records for a course
func (r *ContentRepository) GetByCourseID(ctx context.Context, courseID int64) ([]*models.Content, error) {
	sql, args, err := r.sb.Select("id", "course_id", "type", "url").
		From("content").
		Where(squirrel.Eq{"course_id": courseID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get content by course query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("courseID", courseID).Msg("Error executing get content query")
		return nil, fmt.Errorf("error querying content: %w", err)
	}
	defer rows.Close()

	items := []*models.Content{}
	for rows.Next() {
		content := &models.Content{}
		if err := rows.Scan(&content.ID, &content.CourseID, &content.Type, &content.URL); err != nil {
			return nil, fmt.Errorf("error scanning content row: %w", err)
		}
		items = append(items, content)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating content rows: %w", err)
	}

	return items, nil
}
