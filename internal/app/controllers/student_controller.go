package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ademsari/coursehub/internal/app/models"
	"github.com/ademsari/coursehub/internal/app/models/dto"
	"github.com/ademsari/coursehub/internal/app/services"
	"github.com/ademsari/coursehub/internal/middleware"
	"github.com/ademsari/coursehub/internal/pkg/helpers"
)

// StudentController handles student-related operations
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// CreateStudent assigns the student role to a person
// @Summary Create a student
// @Description Assigns the student role to a person; a person can hold at most one role
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateStudentRequest true "Student information"
// @Success 201 {object} dto.APIResponse{data=dto.StudentResponse} "Student created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Writes require an admin account"
// @Failure 404 {object} dto.ErrorResponse "Person not found"
// @Failure 409 {object} dto.ErrorResponse "Person already holds a role"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if !middleware.BindJSON(ctx, &req, "Invalid student data") {
		return
	}

	student, err := c.studentService.CreateStudent(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      dto.FromStudent(student),
		Timestamp: time.Now(),
	})
}

// GetStudentByID retrieves a student by ID
// @Summary Get student details
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse} "Student retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [get]
func (c *StudentController) GetStudentByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	student, err := c.studentService.GetStudentByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromStudent(student),
		Timestamp: time.Now(),
	})
}

// GetAllStudents retrieves a page of students
// @Summary Get all students
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param page query int false "1-based page number" default(1)
// @Param size query int false "Page size" default(5) maximum(100)
// @Success 200 {object} dto.APIResponse{data=dto.StudentListResponse} "Students retrieved successfully"
// @Router /students [get]
func (c *StudentController) GetAllStudents(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	students, total, err := c.studentService.GetAllStudents(ctx, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.StudentListResponse{
			Students:   studentResponses(students),
			Pagination: helpers.NewPaginationInfo(total, page, size),
		},
		Timestamp: time.Now(),
	})
}

// GetStudentMarks retrieves aggregate marks statistics for a student
// @Summary Get student marks statistics
// @Description Aggregates average, minimum, maximum and total marks across the student's courses
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.StudentMarksResponse} "Marks statistics retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id}/marks [get]
func (c *StudentController) GetStudentMarks(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	stats, err := c.studentService.GetStudentMarks(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.StudentMarksResponse{
			StudentID:    id,
			AverageMarks: stats.Average,
			MinMarks:     stats.Min,
			MaxMarks:     stats.Max,
			TotalMarks:   stats.Sum,
		},
		Timestamp: time.Now(),
	})
}

// GetHighAchievers retrieves students with marks of 90 or above
// @Summary Get high-achieving students
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.StudentResponse} "Students retrieved successfully"
// @Router /students/high-achievers [get]
func (c *StudentController) GetHighAchievers(ctx *gin.Context) {
	students, err := c.studentService.GetHighAchievers(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      studentResponses(students),
		Timestamp: time.Now(),
	})
}

// GetTopStudents retrieves students with marks of 85 or above
// @Summary Get top students
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.StudentResponse} "Students retrieved successfully"
// @Router /students/top [get]
func (c *StudentController) GetTopStudents(ctx *gin.Context) {
	students, err := c.studentService.GetTopStudents(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      studentResponses(students),
		Timestamp: time.Now(),
	})
}

// GetRecentStudents retrieves students matching the recent filter
// @Summary Get recently registered students
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.StudentResponse} "Students retrieved successfully"
// @Router /students/recent [get]
func (c *StudentController) GetRecentStudents(ctx *gin.Context) {
	students, err := c.studentService.GetRecentStudents(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      studentResponses(students),
		Timestamp: time.Now(),
	})
}

// DeleteStudent deletes a student by ID
// @Summary Delete a student
// @Description Removes the student role; the person account stays intact
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {object} dto.SuccessResponse "Student deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.studentService.DeleteStudent(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Student deleted successfully"})
}

func studentResponses(students []*models.Student) []dto.StudentResponse {
	items := make([]dto.StudentResponse, 0, len(students))
	for _, student := range students {
		items = append(items, dto.FromStudent(student))
	}
	return items
}
