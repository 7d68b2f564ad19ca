package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/ademsari/coursehub/internal/app/models/dto"
)

// BindJSON binds the request body into obj and rejects the request with
// a 400 response when binding fails. Field-level failures reported by
// the binding validator are expanded into per-field messages. Returns
// false when the error response has already been written.
func BindJSON(c *gin.Context, obj interface{}, message string) bool {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return true
	}

	errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message)

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		details := dto.NewValidationErrors()
		for _, fieldErr := range validationErrors {
			details.AddError(fieldErr.Field(), formatValidationError(fieldErr))
		}
		errorDetail = errorDetail.WithDetails(details.Errors)
	} else {
		errorDetail = errorDetail.WithDetails(err.Error())
	}

	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
	return false
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
