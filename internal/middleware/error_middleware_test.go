package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/ademsari/coursehub/internal/pkg/apperrors"
)

func TestHandleAPIError_StatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation failure", apperrors.ErrValidationFailed, http.StatusBadRequest},
		{"invalid phone", apperrors.ErrInvalidPhone, http.StatusBadRequest},
		{"enrollment required", apperrors.ErrEnrollmentRequired, http.StatusBadRequest},
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden},
		{"person not found", apperrors.ErrPersonNotFound, http.StatusNotFound},
		{"course not found", apperrors.ErrCourseNotFound, http.StatusNotFound},
		{"review not found", apperrors.ErrReviewNotFound, http.StatusNotFound},
		{"duplicate email", apperrors.ErrEmailAlreadyExists, http.StatusConflict},
		{"role conflict", apperrors.ErrRoleConflict, http.StatusConflict},
		{"already enrolled", apperrors.ErrAlreadyEnrolled, http.StatusConflict},
		{"duplicate review", apperrors.ErrReviewAlreadyExists, http.StatusConflict},
		{"unknown error", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
