package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ademsari/coursehub/internal/app/models"
	"github.com/ademsari/coursehub/internal/pkg/auth"
)

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "coursehub-test",
	})
}

func tokenFor(t *testing.T, jwtService *auth.JWTService, person *models.Person) string {
	t.Helper()
	accessToken, _, _, _, err := jwtService.GenerateTokenPair(person)
	require.NoError(t, err)
	return accessToken
}

func setupRouter(authMiddleware *AuthMiddleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	group := router.Group("")
	group.Use(authMiddleware.JWTAuth())
	group.Use(authMiddleware.AdminOrReadOnly())
	group.GET("/items", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	group.POST("/items", func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"ok": true})
	})
	return router
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	router := setupRouter(NewAuthMiddleware(newTestJWTService()))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/items", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_InvalidToken(t *testing.T) {
	router := setupRouter(NewAuthMiddleware(newTestJWTService()))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/items", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	expiredService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  -time.Minute,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "coursehub-test",
	})
	token := tokenFor(t, expiredService, &models.Person{ID: 1, Email: "a@b.co"})

	router := setupRouter(NewAuthMiddleware(newTestJWTService()))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/items", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_003")
}

func TestAdminOrReadOnly_ReadAllowedForNonAdmin(t *testing.T) {
	jwtService := newTestJWTService()
	token := tokenFor(t, jwtService, &models.Person{ID: 1, Email: "reader@campus.edu", IsAdmin: false})

	router := setupRouter(NewAuthMiddleware(jwtService))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/items", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminOrReadOnly_WriteForbiddenForNonAdmin(t *testing.T) {
	jwtService := newTestJWTService()
	token := tokenFor(t, jwtService, &models.Person{ID: 1, Email: "reader@campus.edu", IsAdmin: false})

	router := setupRouter(NewAuthMiddleware(jwtService))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/items", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_005")
}

func TestAdminOrReadOnly_WriteAllowedForAdmin(t *testing.T) {
	jwtService := newTestJWTService()
	token := tokenFor(t, jwtService, &models.Person{ID: 1, Email: "admin@campus.edu", IsAdmin: true})

	router := setupRouter(NewAuthMiddleware(jwtService))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/items", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}
