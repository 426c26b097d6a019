package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/coursehub/backend/internal/app/models/dto"
	"github.com/coursehub/backend/internal/app/services"
	"github.com/coursehub/backend/internal/middleware"
)

// ContentController handles course content operations
type ContentController struct {
	contentService services.ContentService
	logger         zerolog.Logger
}

// NewContentController creates a new ContentController
func NewContentController(contentService services.ContentService, logger zerolog.Logger) *ContentController {
	return &ContentController{
		contentService: contentService,
		logger:         logger,
	}
}

// UploadContent uploads a content file for a course
// @Summary Upload course content
// @Description Uploads a file and attaches it to a course owned by the authenticated instructor
// @Tags content
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param courseId formData int true "Course ID"
// @Param file formData file true "Content file"
// @Success 201 {object} dto.APIResponse{data=models.Content} "Content uploaded"
// @Failure 400 {object} dto.ErrorResponse "Invalid request or missing file"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Not the course owner"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /content [post]
func (c *ContentController) UploadContent(ctx *gin.Context) {
	userID, role, ok := middleware.GetUserIdentity(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.UploadContentRequest
	if err := ctx.ShouldBind(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid content upload form")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "No file uploaded")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	content, err := c.contentService.Upload(ctx.Request.Context(), userID, role, req.CourseID, file)
	if err != nil {
		c.logger.Warn().Err(err).
			Int64("courseId", req.CourseID).
			Int64("instructorId", userID).
			Msg("Content upload failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Int64("contentId", content.ID).
		Int64("courseId", content.CourseID).
		Str("type", content.Type).
		Msg("Content uploaded")

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data: content,
	})
}

// GetCourseContent lists the content attached to a course
// @Summary List course content
// @Description Lists the content records attached to a course
// @Tags content
// @Produce json
// @Param courseId path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Content} "Content retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Router /content/course/{courseId} [get]
func (c *ContentController) GetCourseContent(ctx *gin.Context) {
	courseID, err := parseIDParam(ctx, "courseId")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	content, err := c.contentService.GetByCourseID(ctx.Request.Context(), courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: content,
	})
}
