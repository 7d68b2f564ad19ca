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

type MockStudentCourseStore struct {
	mock.Mock
}

func (m *MockStudentCourseStore) Create(ctx context.Context, sc *models.StudentCourse) error {
	args := m.Called(ctx, sc)
	return args.Error(0)
}

func (m *MockStudentCourseStore) GetByID(ctx context.Context, id int64) (*models.StudentCourse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StudentCourse), args.Error(1)
}

func (m *MockStudentCourseStore) GetAll(ctx context.Context, offset uint64, limit int) ([]*models.StudentCourse, int64, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*models.StudentCourse), args.Get(1).(int64), args.Error(2)
}

func (m *MockStudentCourseStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func intPtr(v int) *int { return &v }

func TestCreateStudentCourse_BoundaryMarksAccepted(t *testing.T) {
	for _, marks := range []int{0, 100} {
		store := new(MockStudentCourseStore)
		store.On("Create", mock.Anything, mock.AnythingOfType("*models.StudentCourse")).Return(nil)

		service := NewStudentCourseService(store)

		sc, err := service.CreateStudentCourse(context.Background(), &dto.CreateStudentCourseRequest{
			StudentID: 1,
			CourseID:  2,
			Marks:     intPtr(marks),
		})
		require.NoError(t, err)
		assert.Equal(t, marks, sc.Marks)
	}
}

func TestCreateStudentCourse_MarksOutOfBounds(t *testing.T) {
	service := NewStudentCourseService(new(MockStudentCourseStore))

	for _, marks := range []int{-1, 101} {
		_, err := service.CreateStudentCourse(context.Background(), &dto.CreateStudentCourseRequest{
			StudentID: 1,
			CourseID:  2,
			Marks:     intPtr(marks),
		})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	}
}

func TestCreateStudentCourse_MarksRequired(t *testing.T) {
	service := NewStudentCourseService(new(MockStudentCourseStore))

	_, err := service.CreateStudentCourse(context.Background(), &dto.CreateStudentCourseRequest{
		StudentID: 1,
		CourseID:  2,
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCreateStudentCourse_Duplicate(t *testing.T) {
	store := new(MockStudentCourseStore)
	store.On("Create", mock.Anything, mock.Anything).Return(apperrors.ErrStudentCourseExists)

	service := NewStudentCourseService(store)

	_, err := service.CreateStudentCourse(context.Background(), &dto.CreateStudentCourseRequest{
		StudentID: 1,
		CourseID:  2,
		Marks:     intPtr(75),
	})
	assert.ErrorIs(t, err, apperrors.ErrStudentCourseExists)
}
