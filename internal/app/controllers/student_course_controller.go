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

// StudentCourseController handles graded student-course records
type StudentCourseController struct {
	studentCourseService services.StudentCourseService
}

// NewStudentCourseController creates a new StudentCourseController
func NewStudentCourseController(studentCourseService services.StudentCourseService) *StudentCourseController {
	return &StudentCourseController{
		studentCourseService: studentCourseService,
	}
}

// CreateStudentCourse records a student's marks for a course
// @Summary Record marks for a student in a course
// @Description Creates a graded student-course record; marks must be between 0 and 100
// @Tags student-courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateStudentCourseRequest true "Marks information"
// @Success 201 {object} dto.APIResponse{data=dto.StudentCourseResponse} "Record created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Student or course not found"
// @Failure 409 {object} dto.ErrorResponse "Student already has marks for this course"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /student-courses [post]
func (c *StudentCourseController) CreateStudentCourse(ctx *gin.Context) {
	var req dto.CreateStudentCourseRequest
	if !middleware.BindJSON(ctx, &req, "Invalid marks data") {
		return
	}

	record, err := c.studentCourseService.CreateStudentCourse(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      dto.FromStudentCourse(record),
		Timestamp: time.Now(),
	})
}

// GetStudentCourseByID retrieves a graded record by ID
// @Summary Get a student-course record
// @Tags student-courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Record ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.StudentCourseResponse} "Record retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Router /student-courses/{id} [get]
func (c *StudentCourseController) GetStudentCourseByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	record, err := c.studentCourseService.GetStudentCourseByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromStudentCourse(record),
		Timestamp: time.Now(),
	})
}

// GetAllStudentCourses retrieves a page of graded records
// @Summary Get all student-course records
// @Tags student-courses
// @Produce json
// @Security BearerAuth
// @Param page query int false "1-based page number" default(1)
// @Param size query int false "Page size" default(5) maximum(100)
// @Success 200 {object} dto.APIResponse{data=dto.StudentCourseListResponse} "Records retrieved successfully"
// @Router /student-courses [get]
func (c *StudentCourseController) GetAllStudentCourses(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	records, total, err := c.studentCourseService.GetAllStudentCourses(ctx, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	items := make([]dto.StudentCourseResponse, 0, len(records))
	for _, record := range records {
		items = append(items, dto.FromStudentCourse(record))
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.StudentCourseListResponse{
			StudentCourses: items,
			Pagination:     helpers.NewPaginationInfo(total, page, size),
		},
		Timestamp: time.Now(),
	})
}

// DeleteStudentCourse deletes a graded record by ID
// @Summary Delete a student-course record
// @Tags student-courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Record ID" Format(int64) minimum(1)
// @Success 200 {object} dto.SuccessResponse "Record deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Router /student-courses/{id} [delete]
func (c *StudentCourseController) DeleteStudentCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.studentCourseService.DeleteStudentCourse(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Student course record deleted successfully"})
}
