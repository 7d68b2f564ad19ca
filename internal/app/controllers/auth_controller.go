package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ademsari/coursehub/internal/app/models/dto"
	"github.com/ademsari/coursehub/internal/app/services"
	"github.com/ademsari/coursehub/internal/middleware"
)

// AuthController handles registration and login
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Register handles account registration
// @Summary Register a new account
// @Description Creates a person account with its profile and returns a token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration information"
// @Success 201 {object} dto.APIResponse{data=dto.AuthResponse} "Account created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if !middleware.BindJSON(ctx, &req, "Invalid registration data") {
		return
	}

	person, tokens, err := c.authService.Register(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data: dto.AuthResponse{
			Person: dto.FromPerson(person),
			Tokens: *tokens,
		},
		Timestamp: time.Now(),
	})
}

// Login handles email and password authentication
// @Summary Log in
// @Description Authenticates by email and password and returns a token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.AuthResponse} "Authenticated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if !middleware.BindJSON(ctx, &req, "Invalid login data") {
		return
	}

	person, tokens, err := c.authService.Login(ctx, req.Email, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.AuthResponse{
			Person: dto.FromPerson(person),
			Tokens: *tokens,
		},
		Timestamp: time.Now(),
	})
}
