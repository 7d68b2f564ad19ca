package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ademsari/coursehub/internal/app/models"
	"github.com/ademsari/coursehub/internal/app/models/dto"
	"github.com/ademsari/coursehub/internal/pkg/apperrors"
	"github.com/ademsari/coursehub/internal/pkg/auth"
)

func validCreatePersonRequest() *dto.CreatePersonRequest {
	return &dto.CreatePersonRequest{
		Email:       "Jane.Doe@Example.com",
		Password:    "s3cret-password",
		FirstName:   "Jane",
		LastName:    "Doe",
		PhoneNumber: "+905551112233",
		Address:     "12 Campus Street",
	}
}

func TestCreatePerson_HashesPasswordAndNormalizesEmail(t *testing.T) {
	personStore := new(MockPersonStore)
	personStore.On("Create", mock.Anything, mock.AnythingOfType("*models.Person"), mock.AnythingOfType("*models.Profile")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.Person).ID = 1
		}).
		Return(nil)

	service := NewPersonService(personStore)

	person, err := service.CreatePerson(context.Background(), validCreatePersonRequest())
	require.NoError(t, err)

	assert.Equal(t, "jane.doe@example.com", person.Email)
	assert.NotEqual(t, "s3cret-password", person.Password)
	assert.True(t, auth.CheckPassword(person.Password, "s3cret-password"))
	assert.True(t, person.IsActive)
	assert.False(t, person.IsAdmin)
	personStore.AssertExpectations(t)
}

func TestCreatePerson_InvalidPhone(t *testing.T) {
	personStore := new(MockPersonStore)
	service := NewPersonService(personStore)

	req := validCreatePersonRequest()
	req.PhoneNumber = "not-a-phone"

	_, err := service.CreatePerson(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrInvalidPhone)
	personStore.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreatePerson_InvalidEmail(t *testing.T) {
	personStore := new(MockPersonStore)
	service := NewPersonService(personStore)

	req := validCreatePersonRequest()
	req.Email = "not-an-email"

	_, err := service.CreatePerson(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCreatePerson_DuplicateEmail(t *testing.T) {
	personStore := new(MockPersonStore)
	personStore.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(apperrors.ErrEmailAlreadyExists)

	service := NewPersonService(personStore)

	_, err := service.CreatePerson(context.Background(), validCreatePersonRequest())
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestGetPersonByID_RePersistsRecord(t *testing.T) {
	stored := &models.Person{
		ID:          7,
		Email:       "jane.doe@example.com",
		FirstName:   "Jane",
		LastName:    "Doe",
		PhoneNumber: "+905551112233",
		Address:     "12 Campus Street",
	}

	personStore := new(MockPersonStore)
	personStore.On("GetByID", mock.Anything, int64(7)).Return(stored, nil)
	personStore.On("Update", mock.Anything, stored).Return(nil).Once()

	service := NewPersonService(personStore)

	person, err := service.GetPersonByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, stored, person)
	personStore.AssertExpectations(t)
}

func TestGetPersonByID_NotFound(t *testing.T) {
	personStore := new(MockPersonStore)
	personStore.On("GetByID", mock.Anything, int64(99)).Return(nil, apperrors.ErrPersonNotFound)

	service := NewPersonService(personStore)

	_, err := service.GetPersonByID(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrPersonNotFound)
}

func TestGetAllPersons_PassesOffsetAndLimit(t *testing.T) {
	personStore := new(MockPersonStore)
	personStore.On("GetAll", mock.Anything, uint64(10), 5).
		Return([]*models.Person{{ID: 11}}, int64(12), nil)

	service := NewPersonService(personStore)

	persons, total, err := service.GetAllPersons(context.Background(), 3, 5)
	require.NoError(t, err)
	assert.Len(t, persons, 1)
	assert.Equal(t, int64(12), total)
	personStore.AssertExpectations(t)
}
