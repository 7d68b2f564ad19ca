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

func TestCreateEnrollment_NotifiesStudent(t *testing.T) {
	enrollmentStore := new(MockEnrollmentStore)
	studentStore := new(MockStudentStore)
	courseStore := new(MockCourseStore)
	mailer := newRecordingMailer()

	studentStore.On("GetByIDWithPerson", mock.Anything, int64(1)).
		Return(&models.Student{ID: 1, Person: &models.Person{Email: "student@campus.edu"}}, nil)
	courseStore.On("GetByID", mock.Anything, int64(2)).Return(&models.Course{ID: 2, Name: "Databases"}, nil)
	enrollmentStore.On("Create", mock.Anything, mock.AnythingOfType("*models.Enrollment")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.Enrollment).ID = 10
		}).
		Return(nil)

	service := NewEnrollmentService(enrollmentStore, studentStore, courseStore, mailer)

	enrollment, err := service.CreateEnrollment(context.Background(), &dto.CreateEnrollmentRequest{
		StudentID: 1,
		CourseID:  2,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), enrollment.ID)

	mails := mailer.waitFor(1)
	require.Len(t, mails, 1)
	assert.Equal(t, "student@campus.edu", mails[0].To)
	assert.Equal(t, "Enrollment Confirmed", mails[0].Subject)
	assert.Equal(t, "You have been enrolled in the course: Databases.", mails[0].Body)
}

func TestCreateEnrollment_Duplicate(t *testing.T) {
	enrollmentStore := new(MockEnrollmentStore)
	studentStore := new(MockStudentStore)
	courseStore := new(MockCourseStore)

	studentStore.On("GetByIDWithPerson", mock.Anything, int64(1)).
		Return(&models.Student{ID: 1, Person: &models.Person{Email: "student@campus.edu"}}, nil)
	courseStore.On("GetByID", mock.Anything, int64(2)).Return(&models.Course{ID: 2, Name: "Databases"}, nil)
	enrollmentStore.On("Create", mock.Anything, mock.Anything).Return(apperrors.ErrAlreadyEnrolled)

	service := NewEnrollmentService(enrollmentStore, studentStore, courseStore, newRecordingMailer())

	_, err := service.CreateEnrollment(context.Background(), &dto.CreateEnrollmentRequest{
		StudentID: 1,
		CourseID:  2,
	})
	assert.ErrorIs(t, err, apperrors.ErrAlreadyEnrolled)
}

func TestCreateEnrollment_StudentNotFound(t *testing.T) {
	studentStore := new(MockStudentStore)
	studentStore.On("GetByIDWithPerson", mock.Anything, int64(1)).Return(nil, apperrors.ErrStudentNotFound)

	service := NewEnrollmentService(new(MockEnrollmentStore), studentStore, new(MockCourseStore), newRecordingMailer())

	_, err := service.CreateEnrollment(context.Background(), &dto.CreateEnrollmentRequest{
		StudentID: 1,
		CourseID:  2,
	})
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestGetEnrollmentByID_RepersistsRecord(t *testing.T) {
	enrollmentStore := new(MockEnrollmentStore)
	stored := &models.Enrollment{ID: 10, StudentID: 1, CourseID: 2}
	enrollmentStore.On("GetByID", mock.Anything, int64(10)).Return(stored, nil)
	enrollmentStore.On("Update", mock.Anything, stored).Return(nil).Once()

	service := NewEnrollmentService(enrollmentStore, new(MockStudentStore), new(MockCourseStore), newRecordingMailer())

	enrollment, err := service.GetEnrollmentByID(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, int64(10), enrollment.ID)
	enrollmentStore.AssertExpectations(t)
}

func TestGetEnrollmentByID_InvalidStoredRecordNotRepersisted(t *testing.T) {
	enrollmentStore := new(MockEnrollmentStore)
	enrollmentStore.On("GetByID", mock.Anything, int64(10)).
		Return(&models.Enrollment{ID: 10, StudentID: 0, CourseID: 2}, nil)

	service := NewEnrollmentService(enrollmentStore, new(MockStudentStore), new(MockCourseStore), newRecordingMailer())

	_, err := service.GetEnrollmentByID(context.Background(), 10)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	enrollmentStore.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestGetRecentEnrollments_ReturnsEveryRow(t *testing.T) {
	// "recent" is measured against each enrollment's own enrollment date,
	// so every stored enrollment qualifies; the service adds no further
	// filtering
	enrollmentStore := new(MockEnrollmentStore)
	all := []*models.Enrollment{
		{ID: 1, StudentID: 1, CourseID: 2},
		{ID: 2, StudentID: 3, CourseID: 2},
	}
	enrollmentStore.On("GetRecent", mock.Anything).Return(all, nil)

	service := NewEnrollmentService(enrollmentStore, new(MockStudentStore), new(MockCourseStore), newRecordingMailer())

	enrollments, err := service.GetRecentEnrollments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, all, enrollments)
}

func TestDeleteEnrollment_NotifiesCancellation(t *testing.T) {
	enrollmentStore := new(MockEnrollmentStore)
	studentStore := new(MockStudentStore)
	courseStore := new(MockCourseStore)
	mailer := newRecordingMailer()

	enrollmentStore.On("GetByID", mock.Anything, int64(10)).
		Return(&models.Enrollment{ID: 10, StudentID: 1, CourseID: 2}, nil)
	studentStore.On("GetByIDWithPerson", mock.Anything, int64(1)).
		Return(&models.Student{ID: 1, Person: &models.Person{Email: "student@campus.edu"}}, nil)
	courseStore.On("GetByID", mock.Anything, int64(2)).Return(&models.Course{ID: 2, Name: "Databases"}, nil)
	enrollmentStore.On("Delete", mock.Anything, int64(10)).Return(nil)

	service := NewEnrollmentService(enrollmentStore, studentStore, courseStore, mailer)

	require.NoError(t, service.DeleteEnrollment(context.Background(), 10))

	mails := mailer.waitFor(1)
	require.Len(t, mails, 1)
	assert.Equal(t, "Enrollment Cancelled", mails[0].Subject)
	assert.Equal(t, "Your enrollment in the course: Databases has been cancelled.", mails[0].Body)
}
