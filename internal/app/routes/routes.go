package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/academics/internal/app/controllers"
	"github.com/yigit/academics/internal/middleware"
)

// Controllers groups every HTTP handler the router mounts
type Controllers struct {
	Student    *controllers.StudentController
	Teacher    *controllers.TeacherController
	Subject    *controllers.SubjectController
	Enrollment *controllers.EnrollmentController
	Health     *controllers.HealthController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c Controllers) {
	// API version group
	v1 := router.Group("/api/v1")

	students := v1.Group("/students")
	{
		students.POST("", c.Student.Register)
		students.GET("", c.Student.List)
		students.GET("/:id", c.Student.GetByID)
		students.PUT("/:id", c.Student.Update)
		students.DELETE("/:id", c.Student.Delete)
		students.GET("/:id/subjects", c.Student.ListSubjects)
	}

	teachers := v1.Group("/teachers")
	{
		teachers.POST("", c.Teacher.Register)
		teachers.GET("", c.Teacher.List)
		teachers.GET("/:id", c.Teacher.GetByID)
		teachers.PUT("/:id", c.Teacher.Update)
		teachers.DELETE("/:id", c.Teacher.Delete)
		teachers.GET("/:id/subjects", c.Teacher.ListSubjects)
	}

	subjects := v1.Group("/subjects")
	{
		subjects.POST("", c.Subject.Create)
		subjects.GET("", c.Subject.List)
		subjects.GET("/:id", c.Subject.GetDetails)
		subjects.PUT("/:id", c.Subject.Update)
		subjects.DELETE("/:id", c.Subject.Delete)
		subjects.POST("/:id/assign-teacher", c.Subject.AssignTeacher)
	}

	v1.POST("/enrollments", c.Enrollment.Enroll)

	v1.GET("/health", c.Health.Check)

	router.NoRoute(middleware.NotFound())
}
