package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/ademsari/coursehub/internal/app/models/dto"
	"github.com/ademsari/coursehub/internal/pkg/apperrors"
)

// HandleAPIError maps application errors onto HTTP responses. Controllers
// delegate every service error here so the mapping stays in one place:
// validation and missing-precondition failures are 400, authentication
// failures 401, authorization failures 403, missing resources 404,
// duplicate-state conflicts 409, everything else 500.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrInvalidPhone),
		errors.Is(err, apperrors.ErrEmailRequired),
		errors.Is(err, apperrors.ErrInvalidEmail),
		errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(400, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error()),
		})

	case errors.Is(err, apperrors.ErrEnrollmentRequired),
		errors.Is(err, apperrors.ErrPreconditionFailed):
		c.JSON(400, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodePreconditionFailed, err.Error()),
		})

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(401, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials"),
		})
	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(401, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired"),
		})
	case errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(401, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token"),
		})
	case errors.Is(err, apperrors.ErrAccountDisabled):
		c.JSON(401, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Account is disabled"),
		})

	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(403, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied"),
		})

	case errors.Is(err, apperrors.ErrPersonNotFound),
		errors.Is(err, apperrors.ErrProfileNotFound),
		errors.Is(err, apperrors.ErrInstructorNotFound),
		errors.Is(err, apperrors.ErrStudentNotFound),
		errors.Is(err, apperrors.ErrCourseNotFound),
		errors.Is(err, apperrors.ErrModuleNotFound),
		errors.Is(err, apperrors.ErrEnrollmentNotFound),
		errors.Is(err, apperrors.ErrStudentCourseNotFound),
		errors.Is(err, apperrors.ErrReviewNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(404, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error()),
		})

	case errors.Is(err, apperrors.ErrEmailAlreadyExists),
		errors.Is(err, apperrors.ErrProfileAlreadyExists),
		errors.Is(err, apperrors.ErrRoleConflict),
		errors.Is(err, apperrors.ErrRoleAlreadyAssigned),
		errors.Is(err, apperrors.ErrAlreadyEnrolled),
		errors.Is(err, apperrors.ErrStudentCourseExists),
		errors.Is(err, apperrors.ErrReviewAlreadyExists),
		errors.Is(err, apperrors.ErrResourceAlreadyExists),
		errors.Is(err, apperrors.ErrConflict):
		c.JSON(409, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, err.Error()),
		})

	default:
		c.JSON(500, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		})
	}
}
