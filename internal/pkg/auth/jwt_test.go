package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ademsari/coursehub/internal/app/models"
)

func testService(accessExp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "coursehub-test",
	})
}

func TestGenerateAndValidateTokenPair(t *testing.T) {
	service := testService(time.Hour)
	person := &models.Person{ID: 7, Email: "jane.doe@example.com", IsAdmin: true}

	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := service.GenerateTokenPair(person)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)
	assert.Equal(t, int(time.Hour.Seconds()), expiresIn)
	assert.Equal(t, int((24 * time.Hour).Seconds()), refreshExpiresIn)

	claims, err := service.ValidateAndExtractClaims(accessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.PersonID)
	assert.Equal(t, "jane.doe@example.com", claims.Email)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, "coursehub-test", claims.Issuer)
}

func TestValidateToken_Expired(t *testing.T) {
	service := testService(-time.Minute)
	accessToken, _, _, _, err := service.GenerateTokenPair(&models.Person{ID: 1, Email: "a@b.co"})
	require.NoError(t, err)

	_, err = service.ValidateToken(accessToken)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	accessToken, _, _, _, err := testService(time.Hour).GenerateTokenPair(&models.Person{ID: 1, Email: "a@b.co"})
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{
		SecretKey:       "different-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
	})
	_, err = other.ValidateToken(accessToken)
	assert.Error(t, err)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, ErrInvalidFormat)

	token, err = ExtractBearerToken("abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)
}
