package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ademsari/coursehub/internal/app/controllers"
	"github.com/ademsari/coursehub/internal/middleware"
)

// Controllers groups every controller the router mounts
type Controllers struct {
	Auth          *controllers.AuthController
	Person        *controllers.PersonController
	Profile       *controllers.ProfileController
	Instructor    *controllers.InstructorController
	Student       *controllers.StudentController
	Course        *controllers.CourseController
	Module        *controllers.ModuleController
	Enrollment    *controllers.EnrollmentController
	StudentCourse *controllers.StudentCourseController
	Review        *controllers.ReviewController
}

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	ctrl Controllers,
	authMiddleware *middleware.AuthMiddleware,
	pageCache *middleware.PageCache,
) {
	// Metrics endpoint (public, outside the versioned API)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", ctrl.Auth.Register)
		auth.POST("/login", ctrl.Auth.Login)
	}

	// --- Authenticated Routes Group ---
	// Every entity route requires a valid token; writes additionally require
	// an admin account via AdminOrReadOnly.
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	authenticated.Use(authMiddleware.AdminOrReadOnly())

	cached := pageCache.Cache()

	persons := authenticated.Group("/persons")
	{
		persons.POST("", ctrl.Person.CreatePerson)
		persons.GET("", cached, ctrl.Person.GetAllPersons)
		persons.GET("/:id", ctrl.Person.GetPersonByID)
		persons.DELETE("/:id", ctrl.Person.DeletePerson)
	}

	profiles := authenticated.Group("/profiles")
	{
		profiles.POST("", ctrl.Profile.CreateProfile)
		profiles.GET("", cached, ctrl.Profile.GetAllProfiles)
		profiles.GET("/:id", ctrl.Profile.GetProfileByID)
		profiles.PUT("/:id", ctrl.Profile.UpdateProfile)
		profiles.DELETE("/:id", ctrl.Profile.DeleteProfile)
	}

	instructors := authenticated.Group("/instructors")
	{
		instructors.POST("", ctrl.Instructor.CreateInstructor)
		instructors.GET("", cached, ctrl.Instructor.GetAllInstructors)
		instructors.GET("/high-salary", ctrl.Instructor.GetHighSalaryInstructors)
		instructors.GET("/:id", ctrl.Instructor.GetInstructorByID)
		instructors.DELETE("/:id", ctrl.Instructor.DeleteInstructor)
	}

	students := authenticated.Group("/students")
	{
		students.POST("", ctrl.Student.CreateStudent)
		students.GET("", cached, ctrl.Student.GetAllStudents)
		students.GET("/high-achievers", ctrl.Student.GetHighAchievers)
		students.GET("/top", ctrl.Student.GetTopStudents)
		students.GET("/recent", ctrl.Student.GetRecentStudents)
		students.GET("/:id", ctrl.Student.GetStudentByID)
		students.GET("/:id/marks", ctrl.Student.GetStudentMarks)
		students.DELETE("/:id", ctrl.Student.DeleteStudent)
	}

	courses := authenticated.Group("/courses")
	{
		courses.POST("", ctrl.Course.CreateCourse)
		courses.GET("", cached, ctrl.Course.GetAllCourses)
		courses.GET("/recent", ctrl.Course.GetRecentCourses)
		courses.GET("/:id", ctrl.Course.GetCourseByID)
		courses.GET("/:id/statistics", ctrl.Course.GetCourseStatistics)
		courses.GET("/:id/top-students", ctrl.Course.GetCourseTopStudents)
		courses.DELETE("/:id", ctrl.Course.DeleteCourse)
	}

	modules := authenticated.Group("/modules")
	{
		modules.POST("", ctrl.Module.CreateModule)
		modules.GET("", cached, ctrl.Module.GetAllModules)
		modules.GET("/:id", ctrl.Module.GetModuleByID)
		modules.DELETE("/:id", ctrl.Module.DeleteModule)
	}

	enrollments := authenticated.Group("/enrollments")
	{
		enrollments.POST("", ctrl.Enrollment.CreateEnrollment)
		enrollments.GET("", cached, ctrl.Enrollment.GetAllEnrollments)
		enrollments.GET("/recent", ctrl.Enrollment.GetRecentEnrollments)
		enrollments.GET("/:id", ctrl.Enrollment.GetEnrollmentByID)
		enrollments.DELETE("/:id", ctrl.Enrollment.DeleteEnrollment)
	}

	studentCourses := authenticated.Group("/student-courses")
	{
		studentCourses.POST("", ctrl.StudentCourse.CreateStudentCourse)
		studentCourses.GET("", cached, ctrl.StudentCourse.GetAllStudentCourses)
		studentCourses.GET("/:id", ctrl.StudentCourse.GetStudentCourseByID)
		studentCourses.DELETE("/:id", ctrl.StudentCourse.DeleteStudentCourse)
	}

	reviews := authenticated.Group("/reviews")
	{
		reviews.POST("", ctrl.Review.CreateReview)
		reviews.GET("", cached, ctrl.Review.GetAllReviews)
		reviews.GET("/recent", ctrl.Review.GetRecentReviews)
		reviews.GET("/statistics", ctrl.Review.GetReviewStatistics)
		reviews.GET("/:id", ctrl.Review.GetReviewByID)
		reviews.DELETE("/:id", ctrl.Review.DeleteReview)
	}
}
