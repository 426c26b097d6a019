package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/coursehub/backend/internal/app/models/dto"
	"github.com/coursehub/backend/internal/app/services"
	"github.com/coursehub/backend/internal/middleware"
)

// LiveSessionController handles live session related operations
type LiveSessionController struct {
	liveSessionService services.LiveSessionService
	logger             zerolog.Logger
}

// NewLiveSessionController creates a new LiveSessionController
func NewLiveSessionController(liveSessionService services.LiveSessionService, logger zerolog.Logger) *LiveSessionController {
	return &LiveSessionController{
		liveSessionService: liveSessionService,
		logger:             logger,
	}
}

// ScheduleSession schedules a live session for a course
// @Summary Schedule a live session
// @Description Schedules a live session for a course owned by the authenticated instructor
// @Tags live-sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateLiveSessionRequest true "Session information"
// @Success 201 {object} dto.APIResponse{data=models.LiveSession} "Session scheduled"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Not the course owner"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /live-sessions [post]
func (c *LiveSessionController) ScheduleSession(ctx *gin.Context) {
	userID, role, ok := middleware.GetUserIdentity(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.CreateLiveSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid live session payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	session, err := c.liveSessionService.Schedule(ctx.Request.Context(), userID, role, &req)
	if err != nil {
		c.logger.Warn().Err(err).
			Int64("courseId", req.CourseID).
			Int64("instructorId", userID).
			Msg("Failed to schedule live session")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Int64("sessionId", session.ID).
		Int64("courseId", session.CourseID).
		Msg("Live session scheduled")

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data: session,
	})
}

// ListSessions lists live sessions, optionally filtered by course
// @Summary List live sessions
// @Description Lists scheduled live sessions, optionally filtered by courseId, earliest first
// @Tags live-sessions
// @Produce json
// @Param courseId query int false "Course ID filter"
// @Success 200 {object} dto.APIResponse{data=[]models.LiveSession} "Sessions retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Router /live-sessions [get]
func (c *LiveSessionController) ListSessions(ctx *gin.Context) {
	rawCourseID := ctx.Query("courseId")
	if rawCourseID == "" {
		sessions, err := c.liveSessionService.GetAll(ctx.Request.Context())
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.APIResponse{
			Data: sessions,
		})
		return
	}

	courseID, err := strconv.ParseInt(rawCourseID, 10, 64)
	if err != nil || courseID <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	sessions, err := c.liveSessionService.GetByCourseID(ctx.Request.Context(), courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: sessions,
	})
}

// GetSessionByID retrieves a single live session
// @Summary Get a live session
// @Description Retrieves a live session by its ID
// @Tags live-sessions
// @Produce json
// @Param id path int true "Session ID"
// @Success 200 {object} dto.APIResponse{data=models.LiveSession} "Session retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid session ID"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /live-sessions/{id} [get]
func (c *LiveSessionController) GetSessionByID(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid session ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	session, err := c.liveSessionService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: session,
	})
}

// GetCourseSessions lists the live sessions scheduled for a course
// @Summary List course live sessions
// @Description Lists the live sessions scheduled for a course, earliest first
// @Tags live-sessions
// @Produce json
// @Param courseId path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=[]models.LiveSession} "Sessions retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Router /live-sessions/course/{courseId} [get]
func (c *LiveSessionController) GetCourseSessions(ctx *gin.Context) {
	courseID, err := parseIDParam(ctx, "courseId")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	sessions, err := c.liveSessionService.GetByCourseID(ctx.Request.Context(), courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: sessions,
	})
}
