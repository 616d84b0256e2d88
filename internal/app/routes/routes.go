package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mert/schoolhub/internal/app/controllers"
	"github.com/mert/schoolhub/internal/app/models/dto"
	"github.com/mert/schoolhub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	teacherController *controllers.TeacherController,
	gradeController *controllers.GradeController,
	studentController *controllers.StudentController,
	courseController *controllers.CourseController,
	enrollmentController *controllers.EnrollmentController,
	dashboardController *controllers.DashboardController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated Routes Group ---
	// Everything below runs with a tenant id resolved from the token;
	// controllers never read it from the payload.
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		teachers := authenticated.Group("/teachers")
		{
			teachers.GET("", teacherController.ListTeachers)
			teachers.POST("", teacherController.CreateTeacher)
			teachers.PUT("/:id", teacherController.UpdateTeacher)
			teachers.DELETE("/:id", teacherController.DeleteTeacher)
		}

		grades := authenticated.Group("/grades")
		{
			grades.GET("", gradeController.ListGrades)
			grades.POST("", gradeController.CreateGrade)
			grades.PUT("/:id", gradeController.UpdateGrade)
			grades.DELETE("/:id", gradeController.DeleteGrade)
		}

		students := authenticated.Group("/students")
		{
			students.GET("", studentController.ListStudents)
			students.POST("", studentController.CreateStudent)
			students.PUT("/:id", studentController.UpdateStudent)
			students.DELETE("/:id", studentController.DeleteStudent)
		}

		courses := authenticated.Group("/courses")
		{
			courses.GET("", courseController.ListCourses)
			courses.POST("", courseController.CreateCourse)
			courses.PUT("/:id", courseController.UpdateCourse)
			courses.DELETE("/:id", courseController.DeleteCourse)
		}

		enrollments := authenticated.Group("/enrollments")
		{
			enrollments.GET("", enrollmentController.ListEnrollments)
			enrollments.POST("", enrollmentController.CreateEnrollment)
			enrollments.PUT("/:id", enrollmentController.UpdateEnrollment)
			enrollments.DELETE("/:id", enrollmentController.DeleteEnrollment)
		}

		authenticated.GET("/dashboard", dashboardController.GetDashboard)
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
