package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ademsari/coursehub/internal/app/models"
	"github.com/ademsari/coursehub/internal/app/models/dto"
	"github.com/ademsari/coursehub/internal/app/repositories"
	"github.com/ademsari/coursehub/internal/pkg/apperrors"
)

func studentBody() []*models.Student {
	return []*models.Student{
		{ID: 1, Person: &models.Person{Email: "first@student.edu"}},
		{ID: 2, Person: &models.Person{Email: "second@student.edu"}},
	}
}

func TestCreateCourse_BroadcastsToAllStudents(t *testing.T) {
	courseStore := new(MockCourseStore)
	studentStore := new(MockStudentStore)
	instructorStore := new(MockInstructorStore)
	mailer := newRecordingMailer()

	instructorStore.On("GetByID", mock.Anything, int64(9)).Return(&models.Instructor{ID: 9}, nil)
	courseStore.On("Create", mock.Anything, mock.AnythingOfType("*models.Course")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.Course).ID = 1
		}).
		Return(nil)
	studentStore.On("GetAllWithPersons", mock.Anything).Return(studentBody(), nil)

	service := NewCourseService(courseStore, studentStore, instructorStore, mailer)

	course, err := service.CreateCourse(context.Background(), &dto.CreateCourseRequest{
		Name:         "Distributed Systems",
		InstructorID: 9,
	})
	require.NoError(t, err)
	assert.Equal(t, "Distributed Systems", course.Name)

	mails := mailer.waitFor(2)
	require.Len(t, mails, 2)
	recipients := []string{mails[0].To, mails[1].To}
	assert.ElementsMatch(t, []string{"first@student.edu", "second@student.edu"}, recipients)
	for _, mail := range mails {
		assert.Equal(t, "New Course Available", mail.Subject)
		assert.Equal(t, "A new course named Distributed Systems is now available.", mail.Body)
	}
}

func TestCreateCourse_InstructorNotFound(t *testing.T) {
	courseStore := new(MockCourseStore)
	instructorStore := new(MockInstructorStore)
	instructorStore.On("GetByID", mock.Anything, int64(9)).Return(nil, apperrors.ErrInstructorNotFound)

	service := NewCourseService(courseStore, new(MockStudentStore), instructorStore, newRecordingMailer())

	_, err := service.CreateCourse(context.Background(), &dto.CreateCourseRequest{
		Name:         "Distributed Systems",
		InstructorID: 9,
	})
	assert.ErrorIs(t, err, apperrors.ErrInstructorNotFound)
	courseStore.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateCourse_EmptyName(t *testing.T) {
	service := NewCourseService(new(MockCourseStore), new(MockStudentStore), new(MockInstructorStore), newRecordingMailer())

	_, err := service.CreateCourse(context.Background(), &dto.CreateCourseRequest{InstructorID: 9})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestDeleteCourse_BroadcastsRemoval(t *testing.T) {
	courseStore := new(MockCourseStore)
	studentStore := new(MockStudentStore)
	mailer := newRecordingMailer()

	courseStore.On("GetByID", mock.Anything, int64(2)).Return(&models.Course{ID: 2, Name: "Compilers"}, nil)
	courseStore.On("Delete", mock.Anything, int64(2)).Return(nil)
	studentStore.On("GetAllWithPersons", mock.Anything).Return(studentBody(), nil)

	service := NewCourseService(courseStore, studentStore, new(MockInstructorStore), mailer)

	require.NoError(t, service.DeleteCourse(context.Background(), 2))

	mails := mailer.waitFor(2)
	require.Len(t, mails, 2)
	for _, mail := range mails {
		assert.Equal(t, "Course Deleted", mail.Subject)
		assert.Equal(t, "The course named Compilers has been deleted.", mail.Body)
	}
}

func TestGetCourseByID_RepersistsRecord(t *testing.T) {
	courseStore := new(MockCourseStore)
	stored := &models.Course{ID: 3, Name: "Compilers", InstructorID: 9}
	courseStore.On("GetByID", mock.Anything, int64(3)).Return(stored, nil)
	courseStore.On("Update", mock.Anything, stored).Return(nil).Once()

	service := NewCourseService(courseStore, new(MockStudentStore), new(MockInstructorStore), newRecordingMailer())

	course, err := service.GetCourseByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Compilers", course.Name)
	courseStore.AssertExpectations(t)
}

func TestGetCourseByID_InvalidStoredRecordNotRepersisted(t *testing.T) {
	courseStore := new(MockCourseStore)
	courseStore.On("GetByID", mock.Anything, int64(3)).Return(&models.Course{ID: 3, InstructorID: 9}, nil)

	service := NewCourseService(courseStore, new(MockStudentStore), new(MockInstructorStore), newRecordingMailer())

	_, err := service.GetCourseByID(context.Background(), 3)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	courseStore.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestGetRecentCourses_ReturnsEveryRow(t *testing.T) {
	// "recent" is measured against each course's own creation date, so
	// every stored course qualifies; the service adds no further filtering
	courseStore := new(MockCourseStore)
	all := []*models.Course{
		{ID: 1, Name: "Compilers", InstructorID: 9},
		{ID: 2, Name: "Databases", InstructorID: 9},
	}
	courseStore.On("GetRecent", mock.Anything).Return(all, nil)

	service := NewCourseService(courseStore, new(MockStudentStore), new(MockInstructorStore), newRecordingMailer())

	courses, err := service.GetRecentCourses(context.Background())
	require.NoError(t, err)
	assert.Equal(t, all, courses)
}

func TestGetCourseStatistics_CourseNotFound(t *testing.T) {
	courseStore := new(MockCourseStore)
	courseStore.On("GetByID", mock.Anything, int64(5)).Return(nil, apperrors.ErrCourseNotFound)

	service := NewCourseService(courseStore, new(MockStudentStore), new(MockInstructorStore), newRecordingMailer())

	_, err := service.GetCourseStatistics(context.Background(), 5)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
	courseStore.AssertNotCalled(t, "GetRatingStats", mock.Anything, mock.Anything)
}

func TestGetCourseTopStudents_UsesEightyFiveThreshold(t *testing.T) {
	courseStore := new(MockCourseStore)
	courseStore.On("GetByID", mock.Anything, int64(5)).Return(&models.Course{ID: 5}, nil)
	courseStore.On("GetTopStudents", mock.Anything, int64(5), 85).
		Return([]*repositories.CourseTopStudent{{Student: &models.Student{ID: 1}, Marks: 92}}, nil)

	service := NewCourseService(courseStore, new(MockStudentStore), new(MockInstructorStore), newRecordingMailer())

	top, err := service.GetCourseTopStudents(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, 92, top[0].Marks)
	courseStore.AssertExpectations(t)
}
