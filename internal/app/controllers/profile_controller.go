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

// ProfileController handles profile-related operations
type ProfileController struct {
	profileService services.ProfileService
}

// NewProfileController creates a new ProfileController
func NewProfileController(profileService services.ProfileService) *ProfileController {
	return &ProfileController{
		profileService: profileService,
	}
}

// CreateProfile handles explicit profile creation
// @Summary Create a profile
// @Description Creates a standalone profile for a person that lacks one
// @Tags profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateProfileRequest true "Profile information"
// @Success 201 {object} dto.APIResponse{data=dto.ProfileResponse} "Profile created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Person not found"
// @Failure 409 {object} dto.ErrorResponse "Profile already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /profiles [post]
func (c *ProfileController) CreateProfile(ctx *gin.Context) {
	var req dto.CreateProfileRequest
	if !middleware.BindJSON(ctx, &req, "Invalid profile data") {
		return
	}

	profile, err := c.profileService.CreateProfile(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      dto.FromProfile(profile),
		Timestamp: time.Now(),
	})
}

// GetProfileByID retrieves a profile by ID
// @Summary Get profile details
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Param id path int true "Profile ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.ProfileResponse} "Profile retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Profile not found"
// @Router /profiles/{id} [get]
func (c *ProfileController) GetProfileByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	profile, err := c.profileService.GetProfileByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromProfile(profile),
		Timestamp: time.Now(),
	})
}

// GetAllProfiles retrieves a page of profiles
// @Summary Get all profiles
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Param page query int false "1-based page number" default(1)
// @Param size query int false "Page size" default(5) maximum(100)
// @Success 200 {object} dto.APIResponse{data=dto.ProfileListResponse} "Profiles retrieved successfully"
// @Router /profiles [get]
func (c *ProfileController) GetAllProfiles(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	profiles, total, err := c.profileService.GetAllProfiles(ctx, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	items := make([]dto.ProfileResponse, 0, len(profiles))
	for _, profile := range profiles {
		items = append(items, dto.FromProfile(profile))
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.ProfileListResponse{
			Profiles:   items,
			Pagination: helpers.NewPaginationInfo(total, page, size),
		},
		Timestamp: time.Now(),
	})
}

// UpdateProfile updates a profile's bio
// @Summary Update a profile
// @Tags profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Profile ID" Format(int64) minimum(1)
// @Param request body dto.UpdateProfileRequest true "Profile information"
// @Success 200 {object} dto.APIResponse{data=dto.ProfileResponse} "Profile updated successfully"
// @Failure 404 {object} dto.ErrorResponse "Profile not found"
// @Router /profiles/{id} [put]
func (c *ProfileController) UpdateProfile(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !middleware.BindJSON(ctx, &req, "Invalid profile data") {
		return
	}

	profile, err := c.profileService.UpdateProfile(ctx, id, req.Bio)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromProfile(profile),
		Timestamp: time.Now(),
	})
}

// DeleteProfile deletes a profile by ID
// @Summary Delete a profile
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Param id path int true "Profile ID" Format(int64) minimum(1)
// @Success 200 {object} dto.SuccessResponse "Profile deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Profile not found"
// @Router /profiles/{id} [delete]
func (c *ProfileController) DeleteProfile(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.profileService.DeleteProfile(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Profile deleted successfully"})
}
