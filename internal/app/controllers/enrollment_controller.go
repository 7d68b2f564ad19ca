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

// EnrollmentController handles enrollment operations
type EnrollmentController struct {
	enrollmentService services.EnrollmentService
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{
		enrollmentService: enrollmentService,
	}
}

// CreateEnrollment enrolls a student in a course
// @Summary Enroll a student in a course
// @Description Creates an enrollment and sends a confirmation notification to the student
// @Tags enrollments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateEnrollmentRequest true "Enrollment information"
// @Success 201 {object} dto.APIResponse{data=dto.EnrollmentResponse} "Enrollment created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Writes require an admin account"
// @Failure 404 {object} dto.ErrorResponse "Student or course not found"
// @Failure 409 {object} dto.ErrorResponse "Student is already enrolled in this course"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrollments [post]
func (c *EnrollmentController) CreateEnrollment(ctx *gin.Context) {
	var req dto.CreateEnrollmentRequest
	if !middleware.BindJSON(ctx, &req, "Invalid enrollment data") {
		return
	}

	enrollment, err := c.enrollmentService.CreateEnrollment(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      dto.FromEnrollment(enrollment),
		Timestamp: time.Now(),
	})
}

// GetEnrollmentByID retrieves an enrollment by ID
// @Summary Get enrollment details
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Enrollment ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.EnrollmentResponse} "Enrollment retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Router /enrollments/{id} [get]
func (c *EnrollmentController) GetEnrollmentByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	enrollment, err := c.enrollmentService.GetEnrollmentByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromEnrollment(enrollment),
		Timestamp: time.Now(),
	})
}

// GetAllEnrollments retrieves a page of enrollments
// @Summary Get all enrollments
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param page query int false "1-based page number" default(1)
// @Param size query int false "Page size" default(5) maximum(100)
// @Success 200 {object} dto.APIResponse{data=dto.EnrollmentListResponse} "Enrollments retrieved successfully"
// @Router /enrollments [get]
func (c *EnrollmentController) GetAllEnrollments(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	enrollments, total, err := c.enrollmentService.GetAllEnrollments(ctx, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	items := make([]dto.EnrollmentResponse, 0, len(enrollments))
	for _, enrollment := range enrollments {
		items = append(items, dto.FromEnrollment(enrollment))
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.EnrollmentListResponse{
			Enrollments: items,
			Pagination:  helpers.NewPaginationInfo(total, page, size),
		},
		Timestamp: time.Now(),
	})
}

// GetRecentEnrollments retrieves enrollments matching the recent filter
// @Summary Get recent enrollments
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.EnrollmentResponse} "Enrollments retrieved successfully"
// @Router /enrollments/recent [get]
func (c *EnrollmentController) GetRecentEnrollments(ctx *gin.Context) {
	enrollments, err := c.enrollmentService.GetRecentEnrollments(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	items := make([]dto.EnrollmentResponse, 0, len(enrollments))
	for _, enrollment := range enrollments {
		items = append(items, dto.FromEnrollment(enrollment))
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      items,
		Timestamp: time.Now(),
	})
}

// DeleteEnrollment cancels an enrollment
// @Summary Cancel an enrollment
// @Description Deletes the enrollment and sends a cancellation notification to the student
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Enrollment ID" Format(int64) minimum(1)
// @Success 200 {object} dto.SuccessResponse "Enrollment deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Router /enrollments/{id} [delete]
func (c *EnrollmentController) DeleteEnrollment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.enrollmentService.DeleteEnrollment(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Enrollment deleted successfully"})
}
