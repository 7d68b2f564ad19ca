package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ademsari/coursehub/internal/app/models"
	"github.com/ademsari/coursehub/internal/app/models/dto"
	"github.com/ademsari/coursehub/internal/pkg/apperrors"
	"github.com/ademsari/coursehub/internal/pkg/auth"
)

type MockPersonAccountStore struct {
	mock.Mock
}

func (m *MockPersonAccountStore) Create(ctx context.Context, person *models.Person, profile *models.Profile) error {
	args := m.Called(ctx, person, profile)
	return args.Error(0)
}

func (m *MockPersonAccountStore) GetByEmail(ctx context.Context, email string) (*models.Person, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Person), args.Error(1)
}

func newAuthTestJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "coursehub-test",
	})
}

func TestRegister_IssuesTokens(t *testing.T) {
	store := new(MockPersonAccountStore)
	store.On("Create", mock.Anything, mock.AnythingOfType("*models.Person"), mock.AnythingOfType("*models.Profile")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.Person).ID = 1
		}).
		Return(nil)

	service := NewAuthService(store, newAuthTestJWTService())

	person, tokens, err := service.Register(context.Background(), &dto.RegisterRequest{
		Email:       "Jane.Doe@Example.com",
		Password:    "s3cret-password",
		FirstName:   "Jane",
		LastName:    "Doe",
		PhoneNumber: "+905551112233",
		Address:     "12 Campus Street",
	})
	require.NoError(t, err)
	assert.Equal(t, "jane.doe@example.com", person.Email)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.Equal(t, int64(3600), tokens.ExpiresIn)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	store := new(MockPersonAccountStore)
	store.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(apperrors.ErrEmailAlreadyExists)

	service := NewAuthService(store, newAuthTestJWTService())

	_, _, err := service.Register(context.Background(), &dto.RegisterRequest{
		Email:       "jane.doe@example.com",
		Password:    "s3cret-password",
		FirstName:   "Jane",
		LastName:    "Doe",
		PhoneNumber: "+905551112233",
		Address:     "12 Campus Street",
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestRegister_RunsFullPersonValidation(t *testing.T) {
	store := new(MockPersonAccountStore)
	service := NewAuthService(store, newAuthTestJWTService())

	_, _, err := service.Register(context.Background(), &dto.RegisterRequest{
		Email:       "jane.doe@example.com",
		Password:    "s3cret-password",
		FirstName:   "Jane",
		PhoneNumber: "+905551112233",
		Address:     "12 Campus Street",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestLogin_Success(t *testing.T) {
	hash, err := auth.HashPassword("s3cret-password")
	require.NoError(t, err)

	store := new(MockPersonAccountStore)
	store.On("GetByEmail", mock.Anything, "jane.doe@example.com").
		Return(&models.Person{ID: 1, Email: "jane.doe@example.com", Password: hash, IsActive: true}, nil)

	service := NewAuthService(store, newAuthTestJWTService())

	person, tokens, err := service.Login(context.Background(), "Jane.Doe@Example.com", "s3cret-password")
	require.NoError(t, err)
	assert.Equal(t, int64(1), person.ID)
	assert.NotEmpty(t, tokens.AccessToken)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := auth.HashPassword("s3cret-password")
	require.NoError(t, err)

	store := new(MockPersonAccountStore)
	store.On("GetByEmail", mock.Anything, "jane.doe@example.com").
		Return(&models.Person{ID: 1, Email: "jane.doe@example.com", Password: hash, IsActive: true}, nil)

	service := NewAuthService(store, newAuthTestJWTService())

	_, _, err = service.Login(context.Background(), "jane.doe@example.com", "wrong")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_UnknownEmailMapsToInvalidCredentials(t *testing.T) {
	store := new(MockPersonAccountStore)
	store.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, apperrors.ErrPersonNotFound)

	service := NewAuthService(store, newAuthTestJWTService())

	_, _, err := service.Login(context.Background(), "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_DisabledAccount(t *testing.T) {
	hash, err := auth.HashPassword("s3cret-password")
	require.NoError(t, err)

	store := new(MockPersonAccountStore)
	store.On("GetByEmail", mock.Anything, "jane.doe@example.com").
		Return(&models.Person{ID: 1, Email: "jane.doe@example.com", Password: hash, IsActive: false}, nil)

	service := NewAuthService(store, newAuthTestJWTService())

	_, _, err = service.Login(context.Background(), "jane.doe@example.com", "s3cret-password")
	assert.ErrorIs(t, err, apperrors.ErrAccountDisabled)
}
