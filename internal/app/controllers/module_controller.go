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

// ModuleController handles course module operations
type ModuleController struct {
	moduleService services.ModuleService
}

// NewModuleController creates a new ModuleController
func NewModuleController(moduleService services.ModuleService) *ModuleController {
	return &ModuleController{
		moduleService: moduleService,
	}
}

// CreateModule handles module creation
// @Summary Create a module
// @Description Creates a module inside an existing course
// @Tags modules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateModuleRequest true "Module information"
// @Success 201 {object} dto.APIResponse{data=dto.ModuleResponse} "Module created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /modules [post]
func (c *ModuleController) CreateModule(ctx *gin.Context) {
	var req dto.CreateModuleRequest
	if !middleware.BindJSON(ctx, &req, "Invalid module data") {
		return
	}

	module, err := c.moduleService.CreateModule(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      dto.FromModule(module),
		Timestamp: time.Now(),
	})
}

// GetModuleByID retrieves a module by ID
// @Summary Get module details
// @Tags modules
// @Produce json
// @Security BearerAuth
// @Param id path int true "Module ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.ModuleResponse} "Module retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Module not found"
// @Router /modules/{id} [get]
func (c *ModuleController) GetModuleByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	module, err := c.moduleService.GetModuleByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromModule(module),
		Timestamp: time.Now(),
	})
}

// GetAllModules retrieves a page of modules
// @Summary Get all modules
// @Tags modules
// @Produce json
// @Security BearerAuth
// @Param page query int false "1-based page number" default(1)
// @Param size query int false "Page size" default(5) maximum(100)
// @Success 200 {object} dto.APIResponse{data=dto.ModuleListResponse} "Modules retrieved successfully"
// @Router /modules [get]
func (c *ModuleController) GetAllModules(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	modules, total, err := c.moduleService.GetAllModules(ctx, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	items := make([]dto.ModuleResponse, 0, len(modules))
	for _, module := range modules {
		items = append(items, dto.FromModule(module))
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.ModuleListResponse{
			Modules:    items,
			Pagination: helpers.NewPaginationInfo(total, page, size),
		},
		Timestamp: time.Now(),
	})
}

// DeleteModule deletes a module by ID
// @Summary Delete a module
// @Tags modules
// @Produce json
// @Security BearerAuth
// @Param id path int true "Module ID" Format(int64) minimum(1)
// @Success 200 {object} dto.SuccessResponse "Module deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Module not found"
// @Router /modules/{id} [delete]
func (c *ModuleController) DeleteModule(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.moduleService.DeleteModule(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Module deleted successfully"})
}
