package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ademsari/coursehub/internal/app/models/dto"
	"github.com/ademsari/coursehub/internal/app/services"
	"github.com/ademsari/coursehub/internal/middleware"
	"github.com/ademsari/coursehub/internal/pkg/helpers"
)

// CourseController handles course-related operations
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// CreateCourse handles course creation
// @Summary Create a course
// @Description Creates a course and notifies every student that it is available
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCourseRequest true "Course information"
// @Success 201 {object} dto.APIResponse{data=dto.CourseResponse} "Course created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Writes require an admin account"
// @Failure 404 {object} dto.ErrorResponse "Instructor not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if !middleware.BindJSON(ctx, &req, "Invalid course data") {
		return
	}

	course, err := c.courseService.CreateCourse(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      dto.FromCourse(course),
		Timestamp: time.Now(),
	})
}

// GetCourseByID retrieves a course by ID
// @Summary Get course details
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse} "Course retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id} [get]
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	course, err := c.courseService.GetCourseByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromCourse(course),
		Timestamp: time.Now(),
	})
}

// GetAllCourses retrieves a page of courses
// @Summary Get all courses
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param page query int false "1-based page number" default(1)
// @Param size query int false "Page size" default(5) maximum(100)
// @Success 200 {object} dto.APIResponse{data=dto.CourseListResponse} "Courses retrieved successfully"
// @Router /courses [get]
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	courses, total, err := c.courseService.GetAllCourses(ctx, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	items := make([]dto.CourseResponse, 0, len(courses))
	for _, course := range courses {
		items = append(items, dto.FromCourse(course))
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.CourseListResponse{
			Courses:    items,
			Pagination: helpers.NewPaginationInfo(total, page, size),
		},
		Timestamp: time.Now(),
	})
}

// GetRecentCourses retrieves courses matching the recent filter
// @Summary Get recently created courses
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.CourseResponse} "Courses retrieved successfully"
// @Router /courses/recent [get]
func (c *CourseController) GetRecentCourses(ctx *gin.Context) {
	courses, err := c.courseService.GetRecentCourses(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	items := make([]dto.CourseResponse, 0, len(courses))
	for _, course := range courses {
		items = append(items, dto.FromCourse(course))
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      items,
		Timestamp: time.Now(),
	})
}

// GetCourseStatistics retrieves aggregate rating statistics for a course
// @Summary Get course rating statistics
// @Description Aggregates average, minimum, maximum and total rating over the course's reviews
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.CourseStatisticsResponse} "Statistics retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id}/statistics [get]
func (c *CourseController) GetCourseStatistics(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	stats, err := c.courseService.GetCourseStatistics(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.CourseStatisticsResponse{
			CourseID:      id,
			AverageRating: stats.Average,
			MinRating:     stats.Min,
			MaxRating:     stats.Max,
			TotalRating:   stats.Sum,
		},
		Timestamp: time.Now(),
	})
}

// GetCourseTopStudents retrieves the course's students with marks of 85 or above
// @Summary Get a course's top students
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]dto.CourseTopStudentResponse} "Top students retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id}/top-students [get]
func (c *CourseController) GetCourseTopStudents(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	topStudents, err := c.courseService.GetCourseTopStudents(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	items := make([]dto.CourseTopStudentResponse, 0, len(topStudents))
	for _, entry := range topStudents {
		items = append(items, dto.CourseTopStudentResponse{
			Student: dto.FromStudent(entry.Student),
			Marks:   entry.Marks,
		})
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      items,
		Timestamp: time.Now(),
	})
}

// DeleteCourse deletes a course by ID
// @Summary Delete a course
// @Description Deletes a course and notifies every student that it has been removed
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID" Format(int64) minimum(1)
// @Success 200 {object} dto.SuccessResponse "Course deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.courseService.DeleteCourse(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Course deleted successfully"})
}
