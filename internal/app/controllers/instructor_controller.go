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

// InstructorController handles instructor-related operations
type InstructorController struct {
	instructorService services.InstructorService
}

// NewInstructorController creates a new InstructorController
func NewInstructorController(instructorService services.InstructorService) *InstructorController {
	return &InstructorController{
		instructorService: instructorService,
	}
}

// CreateInstructor assigns the instructor role to a person
// @Summary Create an instructor
// @Description Assigns the instructor role to a person; a person can hold at most one role
// @Tags instructors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateInstructorRequest true "Instructor information"
// @Success 201 {object} dto.APIResponse{data=dto.InstructorResponse} "Instructor created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Writes require an admin account"
// @Failure 404 {object} dto.ErrorResponse "Person not found"
// @Failure 409 {object} dto.ErrorResponse "Person already holds a role"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /instructors [post]
func (c *InstructorController) CreateInstructor(ctx *gin.Context) {
	var req dto.CreateInstructorRequest
	if !middleware.BindJSON(ctx, &req, "Invalid instructor data") {
		return
	}

	instructor, err := c.instructorService.CreateInstructor(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      dto.FromInstructor(instructor),
		Timestamp: time.Now(),
	})
}

// GetInstructorByID retrieves an instructor by ID
// @Summary Get instructor details
// @Tags instructors
// @Produce json
// @Security BearerAuth
// @Param id path int true "Instructor ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.InstructorResponse} "Instructor retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Instructor not found"
// @Router /instructors/{id} [get]
func (c *InstructorController) GetInstructorByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	instructor, err := c.instructorService.GetInstructorByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromInstructor(instructor),
		Timestamp: time.Now(),
	})
}

// GetAllInstructors retrieves a page of instructors
// @Summary Get all instructors
// @Tags instructors
// @Produce json
// @Security BearerAuth
// @Param page query int false "1-based page number" default(1)
// @Param size query int false "Page size" default(5) maximum(100)
// @Success 200 {object} dto.APIResponse{data=dto.InstructorListResponse} "Instructors retrieved successfully"
// @Router /instructors [get]
func (c *InstructorController) GetAllInstructors(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	instructors, total, err := c.instructorService.GetAllInstructors(ctx, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	items := make([]dto.InstructorResponse, 0, len(instructors))
	for _, instructor := range instructors {
		items = append(items, dto.FromInstructor(instructor))
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.InstructorListResponse{
			Instructors: items,
			Pagination:  helpers.NewPaginationInfo(total, page, size),
		},
		Timestamp: time.Now(),
	})
}

// GetHighSalaryInstructors retrieves instructors matching the high-salary filter
// @Summary Get high-salary instructors
// @Description Retrieves instructors whose salary clears the high-salary threshold
// @Tags instructors
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.InstructorResponse} "Instructors retrieved successfully"
// @Router /instructors/high-salary [get]
func (c *InstructorController) GetHighSalaryInstructors(ctx *gin.Context) {
	instructors, err := c.instructorService.GetHighSalaryInstructors(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	items := make([]dto.InstructorResponse, 0, len(instructors))
	for _, instructor := range instructors {
		items = append(items, dto.FromInstructor(instructor))
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      items,
		Timestamp: time.Now(),
	})
}

// DeleteInstructor deletes an instructor by ID
// @Summary Delete an instructor
// @Description Removes the instructor role; the person account stays intact
// @Tags instructors
// @Produce json
// @Security BearerAuth
// @Param id path int true "Instructor ID" Format(int64) minimum(1)
// @Success 200 {object} dto.SuccessResponse "Instructor deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Instructor not found"
// @Router /instructors/{id} [delete]
func (c *InstructorController) DeleteInstructor(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.instructorService.DeleteInstructor(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Instructor deleted successfully"})
}
