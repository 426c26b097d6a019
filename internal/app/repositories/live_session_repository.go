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

// ILiveSessionRepository defines the live session data access contract
type ILiveSessionRepository interface {
	Create(ctx context.Context, session *models.LiveSession) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.LiveSession, error)
	GetByCourseID(ctx context.Context, courseID int64) ([]*models.LiveSession, error)
	GetAll(ctx context.Context) ([]*models.LiveSession, error)
}

// LiveSessionRepository handles live session database operations
type LiveSessionRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewLiveSessionRepository creates a new LiveSessionRepository
func NewLiveSessionRepository(db *pgxpool.Pool) *LiveSessionRepository {
	return &LiveSessionRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new live session
func (r *LiveSessionRepository) Create(ctx context.Context, session *models.LiveSession) (int64, error) {
	sql, args, err := r.sb.Insert("live_sessions").
		Columns("course_id", "date", "zoom_link").
		Values(session.CourseID, session.Date, session.ZoomLink).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create live session query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Msg("Error executing create live session query")
		return 0, fmt.Errorf("error creating live session: %w", err)
	}

	return id, nil
}

// GetByID retrieves a live session by ID
func (r *LiveSessionRepository) GetByID(ctx context.Context, id int64) (*models.LiveSession, error) {
	sql, args, err := r.sb.Select("id", "course_id", "date", "zoom_link").
		From("live_sessions").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get live session query: %w", err)
	}

	session := &models.LiveSession{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&session.ID, &session.CourseID, &session.Date, &session.ZoomLink)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrLiveSessionNotFound
		}
		logger.Error().Err(err).Int64("sessionID", id).Msg("Error scanning live session row")
		return nil, fmt.Errorf("error getting live session by ID: %w", err)
	}

	return session, nil
}

// GetAll retrieves every scheduled live session, soonest first
func (r *LiveSessionRepository) GetAll(ctx context.Context) ([]*models.LiveSession, error) {
	sql, args, err := r.sb.Select("id", "course_id", "date", "zoom_link").
		From("live_sessions").
		OrderBy("date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all live sessions query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all live sessions query")
		return nil, fmt.Errorf("error querying live sessions: %w", err)
	}
	defer rows.Close()

	sessions := []*models.LiveSession{}
	for rows.Next() {
		session := &models.LiveSession{}
		if err := rows.Scan(&session.ID, &session.CourseID, &session.Date, &session.ZoomLink); err != nil {
			return nil, fmt.Errorf("error scanning live session row: %w", err)
		}
		sessions = append(sessions, session)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating live session rows: %w", err)
	}

	return sessions, nil
}

// GetByCourseID retrieves all live sessions for a course, soonest first
func (r *LiveSessionRepository) GetByCourseID(ctx context.Context, courseID int64) ([]*models.LiveSession, error) {
	sql, args, err := r.sb.Select("id", "course_id", "date", "zoom_link").
		From("live_sessions").
		Where(squirrel.Eq{"course_id": courseID}).
		OrderBy("date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get live sessions by course query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("courseID", courseID).Msg("Error executing get live sessions query")
		return nil, fmt.Errorf("error querying live sessions: %w", err)
	}
	defer rows.Close()

	sessions := []*models.LiveSession{}
	for rows.Next() {
		session := &models.LiveSession{}
		if err := rows.Scan(&session.ID, &session.CourseID, &session.Date, &session.ZoomLink); err != nil {
			return nil, fmt.Errorf("error scanning live session row: %w", err)
		}
		sessions = append(sessions, session)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating live session rows: %w", err)
	}

	return sessions, nil
}
