package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/coursehub/backend/internal/app/controllers"
	"github.com/coursehub/backend/internal/app/models/dto"
	"github.com/coursehub/backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	courseController *controllers.CourseController,
	enrollmentController *controllers.EnrollmentController,
	liveSessionController *controllers.LiveSessionController,
	contentController *controllers.ContentController,
	userController *controllers.UserController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	// --- Public Auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// --- Public browse routes ---
	courses := api.Group("/courses")
	{
		courses.GET("", courseController.SearchCourses)
		courses.GET("/:id", courseController.GetCourseByID)
	}

	liveSessions := api.Group("/live-sessions")
	{
		liveSessions.GET("", liveSessionController.ListSessions)
		liveSessions.GET("/:id", liveSessionController.GetSessionByID)
		liveSessions.GET("/course/:courseId", liveSessionController.GetCourseSessions)
	}

	content := api.Group("/content")
	{
		content.GET("/course/:courseId", contentController.GetCourseContent)
	}

	// --- Authenticated routes ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/me", authController.GetProfile)

		enrollments := authenticated.Group("/enrollments")
		{
			enrollments.POST("", authMiddleware.StudentRequired(), enrollmentController.Enroll)
			enrollments.GET("/my-courses", enrollmentController.GetMyCourses)
		}

		// Instructor-only course management
		instructorProtected := authenticated.Group("")
		instructorProtected.Use(authMiddleware.InstructorRequired())
		{
			instructorProtected.POST("/courses", courseController.CreateCourse)
			instructorProtected.PUT("/courses/:id", courseController.UpdateCourse)
			instructorProtected.DELETE("/courses/:id", courseController.DeleteCourse)

			instructorProtected.POST("/live-sessions", liveSessionController.ScheduleSession)
			instructorProtected.POST("/content", contentController.UploadContent)
		}

		// Admin-only user management
		users := authenticated.Group("/users")
		users.Use(authMiddleware.AdminRequired())
		{
			users.GET("", userController.GetAllUsers)
			users.GET("/:id", userController.GetUserByID)
			users.PUT("/:id", userController.UpdateUser)
			users.DELETE("/:id", userController.DeleteUser)
		}
	}

	// Health check endpoint (public)
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
