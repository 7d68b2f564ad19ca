package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ademsari/coursehub/internal/app/models/dto"
	"github.com/ademsari/coursehub/internal/app/services"
	"github.com/ademsari/coursehub/internal/middleware"
	"github.com/ademsari/coursehub/internal/pkg/helpers"
)

// PersonController handles person-related operations
type PersonController struct {
	personService services.PersonService
}

// NewPersonController creates a new PersonController
func NewPersonController(personService services.PersonService) *PersonController {
	return &PersonController{
		personService: personService,
	}
}

// parseIDParam parses the ":id" path parameter shared by the entity
// controllers.
func parseIDParam(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid ID")
		errorDetail = errorDetail.WithDetails("ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// CreatePerson handles person creation
// @Summary Create a new person
// @Description Creates a person account and its profile in one transaction
// @Tags persons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreatePersonRequest true "Person information"
// @Success 201 {object} dto.APIResponse{data=dto.PersonResponse} "Person created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Writes require an admin account"
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /persons [post]
func (c *PersonController) CreatePerson(ctx *gin.Context) {
	var req dto.CreatePersonRequest
	if !middleware.BindJSON(ctx, &req, "Invalid person data") {
		return
	}

	person, err := c.personService.CreatePerson(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      dto.FromPerson(person),
		Timestamp: time.Now(),
	})
}

// GetPersonByID retrieves a person by ID
// @Summary Get person details
// @Description Retrieves detailed information about a specific person
// @Tags persons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Person ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.PersonResponse} "Person retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid person ID format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Person not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /persons/{id} [get]
func (c *PersonController) GetPersonByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	person, err := c.personService.GetPersonByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromPerson(person),
		Timestamp: time.Now(),
	})
}

// GetAllPersons retrieves a page of persons
// @Summary Get all persons
// @Description Retrieves a paginated list of persons
// @Tags persons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "1-based page number" default(1)
// @Param size query int false "Page size" default(5) maximum(100)
// @Success 200 {object} dto.APIResponse{data=dto.PersonListResponse} "Persons retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /persons [get]
func (c *PersonController) GetAllPersons(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	persons, total, err := c.personService.GetAllPersons(ctx, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	items := make([]dto.PersonResponse, 0, len(persons))
	for _, person := range persons {
		items = append(items, dto.FromPerson(person))
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.PersonListResponse{
			Persons:    items,
			Pagination: helpers.NewPaginationInfo(total, page, size),
		},
		Timestamp: time.Now(),
	})
}

// DeletePerson deletes a person by ID
// @Summary Delete a person
// @Description Deletes a person; the profile and any role rows are removed with it
// @Tags persons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Person ID" Format(int64) minimum(1)
// @Success 200 {object} dto.SuccessResponse "Person deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid person ID format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Writes require an admin account"
// @Failure 404 {object} dto.ErrorResponse "Person not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /persons/{id} [delete]
func (c *PersonController) DeletePerson(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.personService.DeletePerson(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Person deleted successfully"})
}
