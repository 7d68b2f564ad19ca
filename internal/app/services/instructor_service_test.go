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
)

func TestCreateInstructor_Success(t *testing.T) {
	instructorStore := new(MockInstructorStore)
	roleCheck := new(MockRoleChecker)

	roleCheck.On("HasRole", mock.Anything, int64(3)).Return(false, nil)
	instructorStore.On("Create", mock.Anything, mock.AnythingOfType("*models.Instructor")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.Instructor).ID = 1
		}).
		Return(nil)

	service := NewInstructorService(instructorStore, roleCheck)

	instructor, err := service.CreateInstructor(context.Background(), &dto.CreateInstructorRequest{
		PersonID: 3,
		Bio:      "Teaches distributed systems",
		Salary:   4200,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), instructor.PersonID)
	assert.Equal(t, float64(4200), instructor.Salary)
	instructorStore.AssertExpectations(t)
}

func TestCreateInstructor_RoleConflict(t *testing.T) {
	instructorStore := new(MockInstructorStore)
	roleCheck := new(MockRoleChecker)
	roleCheck.On("HasRole", mock.Anything, int64(3)).Return(true, nil)

	service := NewInstructorService(instructorStore, roleCheck)

	_, err := service.CreateInstructor(context.Background(), &dto.CreateInstructorRequest{
		PersonID: 3,
		Salary:   4200,
	})
	assert.ErrorIs(t, err, apperrors.ErrRoleConflict)
	instructorStore.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateInstructor_NegativeSalary(t *testing.T) {
	service := NewInstructorService(new(MockInstructorStore), new(MockRoleChecker))

	_, err := service.CreateInstructor(context.Background(), &dto.CreateInstructorRequest{
		PersonID: 3,
		Salary:   -100,
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestGetInstructorByID_RePersistsRecord(t *testing.T) {
	stored := &models.Instructor{ID: 5, PersonID: 3, Salary: 4200}

	instructorStore := new(MockInstructorStore)
	instructorStore.On("GetByID", mock.Anything, int64(5)).Return(stored, nil)
	instructorStore.On("Update", mock.Anything, stored).Return(nil).Once()

	service := NewInstructorService(instructorStore, new(MockRoleChecker))

	instructor, err := service.GetInstructorByID(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, stored, instructor)
	instructorStore.AssertExpectations(t)
}

func TestGetHighSalaryInstructors(t *testing.T) {
	instructorStore := new(MockInstructorStore)
	instructorStore.On("GetHighSalary", mock.Anything).Return([]*models.Instructor{}, nil)

	service := NewInstructorService(instructorStore, new(MockRoleChecker))

	instructors, err := service.GetHighSalaryInstructors(context.Background())
	require.NoError(t, err)
	assert.Empty(t, instructors)
}
