package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type createItemRequest struct {
	Name   string `json:"name" binding:"required,max=10"`
	Email  string `json:"email" binding:"required,email"`
	Rating int    `json:"rating" binding:"min=1,max=5"`
}

func bindTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/items", func(c *gin.Context) {
		var req createItemRequest
		if !BindJSON(c, &req, "Invalid item data") {
			return
		}
		c.JSON(http.StatusCreated, gin.H{"name": req.Name})
	})
	return router
}

func TestBindJSON_ValidBody(t *testing.T) {
	router := bindTestRouter()

	body := `{"name":"Physics","email":"jane@coursehub.app","rating":4}`
	req := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Physics")
}

func TestBindJSON_FieldErrors(t *testing.T) {
	router := bindTestRouter()

	body := `{"name":"","email":"not-an-email","rating":9}`
	req := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VAL_001")
	assert.Contains(t, rec.Body.String(), "Name is required")
	assert.Contains(t, rec.Body.String(), "Email must be a valid email address")
	assert.Contains(t, rec.Body.String(), "Rating must be at most 5")
}

func TestBindJSON_MalformedJSON(t *testing.T) {
	router := bindTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VAL_001")
	assert.Contains(t, rec.Body.String(), "Invalid item data")
}
