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

func TestCreateReview_RatingOutOfBounds(t *testing.T) {
	service := NewReviewService(new(MockReviewStore), new(MockCourseStore), new(MockInstructorStore), newRecordingMailer())

	for _, rating := range []int{0, 6, -1} {
		_, err := service.CreateReview(context.Background(), &dto.CreateReviewRequest{
			CourseID:  1,
			StudentID: 1,
			Rating:    rating,
		})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	}
}

func TestCreateReview_RequiresEnrollment(t *testing.T) {
	reviewStore := new(MockReviewStore)
	courseStore := new(MockCourseStore)

	courseStore.On("GetByID", mock.Anything, int64(1)).Return(&models.Course{ID: 1, Name: "Databases"}, nil)
	reviewStore.On("Create", mock.Anything, mock.Anything).Return(apperrors.ErrEnrollmentRequired)

	service := NewReviewService(reviewStore, courseStore, new(MockInstructorStore), newRecordingMailer())

	_, err := service.CreateReview(context.Background(), &dto.CreateReviewRequest{
		CourseID:  1,
		StudentID: 1,
		Rating:    4,
	})
	assert.ErrorIs(t, err, apperrors.ErrEnrollmentRequired)
}

func TestCreateReview_NotifiesInstructor(t *testing.T) {
	reviewStore := new(MockReviewStore)
	courseStore := new(MockCourseStore)
	instructorStore := new(MockInstructorStore)
	mailer := newRecordingMailer()

	courseStore.On("GetByID", mock.Anything, int64(1)).
		Return(&models.Course{ID: 1, Name: "Databases", InstructorID: 9}, nil)
	reviewStore.On("Create", mock.Anything, mock.AnythingOfType("*models.Review")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.Review).ID = 3
		}).
		Return(nil)
	instructorStore.On("GetByIDWithPerson", mock.Anything, int64(9)).
		Return(&models.Instructor{ID: 9, Person: &models.Person{Email: "prof@campus.edu"}}, nil)

	service := NewReviewService(reviewStore, courseStore, instructorStore, mailer)

	review, err := service.CreateReview(context.Background(), &dto.CreateReviewRequest{
		CourseID:  1,
		StudentID: 1,
		Rating:    5,
		Comment:   "Great course",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), review.ID)

	mails := mailer.waitFor(1)
	require.Len(t, mails, 1)
	assert.Equal(t, "prof@campus.edu", mails[0].To)
	assert.Equal(t, "New Review Received", mails[0].Subject)
	assert.Equal(t, "You have received a new review for the course: Databases.", mails[0].Body)
}

func TestCreateReview_Duplicate(t *testing.T) {
	reviewStore := new(MockReviewStore)
	courseStore := new(MockCourseStore)

	courseStore.On("GetByID", mock.Anything, int64(1)).Return(&models.Course{ID: 1}, nil)
	reviewStore.On("Create", mock.Anything, mock.Anything).Return(apperrors.ErrReviewAlreadyExists)

	service := NewReviewService(reviewStore, courseStore, new(MockInstructorStore), newRecordingMailer())

	_, err := service.CreateReview(context.Background(), &dto.CreateReviewRequest{
		CourseID:  1,
		StudentID: 1,
		Rating:    4,
	})
	assert.ErrorIs(t, err, apperrors.ErrReviewAlreadyExists)
}

func TestGetReviewByID_RepersistsRecord(t *testing.T) {
	reviewStore := new(MockReviewStore)
	stored := &models.Review{ID: 3, CourseID: 1, StudentID: 1, Rating: 5}
	reviewStore.On("GetByID", mock.Anything, int64(3)).Return(stored, nil)
	reviewStore.On("Update", mock.Anything, stored).Return(nil).Once()

	service := NewReviewService(reviewStore, new(MockCourseStore), new(MockInstructorStore), newRecordingMailer())

	review, err := service.GetReviewByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 5, review.Rating)
	reviewStore.AssertExpectations(t)
}

func TestGetReviewByID_InvalidStoredRecordNotRepersisted(t *testing.T) {
	reviewStore := new(MockReviewStore)
	reviewStore.On("GetByID", mock.Anything, int64(3)).
		Return(&models.Review{ID: 3, CourseID: 1, StudentID: 1, Rating: 0}, nil)

	service := NewReviewService(reviewStore, new(MockCourseStore), new(MockInstructorStore), newRecordingMailer())

	_, err := service.GetReviewByID(context.Background(), 3)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	reviewStore.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestGetRecentReviews_ReturnsEveryRow(t *testing.T) {
	// "recent" is measured against each review's own creation date, so
	// every stored review qualifies; the service adds no further filtering
	reviewStore := new(MockReviewStore)
	all := []*models.Review{
		{ID: 1, CourseID: 1, StudentID: 1, Rating: 5},
		{ID: 2, CourseID: 1, StudentID: 2, Rating: 3},
	}
	reviewStore.On("GetRecent", mock.Anything).Return(all, nil)

	service := NewReviewService(reviewStore, new(MockCourseStore), new(MockInstructorStore), newRecordingMailer())

	reviews, err := service.GetRecentReviews(context.Background())
	require.NoError(t, err)
	assert.Equal(t, all, reviews)
}

func TestDeleteReview_NotifiesInstructor(t *testing.T) {
	reviewStore := new(MockReviewStore)
	courseStore := new(MockCourseStore)
	instructorStore := new(MockInstructorStore)
	mailer := newRecordingMailer()

	reviewStore.On("GetByID", mock.Anything, int64(3)).
		Return(&models.Review{ID: 3, CourseID: 1, StudentID: 1, Rating: 5}, nil)
	courseStore.On("GetByID", mock.Anything, int64(1)).
		Return(&models.Course{ID: 1, Name: "Databases", InstructorID: 9}, nil)
	reviewStore.On("Delete", mock.Anything, int64(3)).Return(nil)
	instructorStore.On("GetByIDWithPerson", mock.Anything, int64(9)).
		Return(&models.Instructor{ID: 9, Person: &models.Person{Email: "prof@campus.edu"}}, nil)

	service := NewReviewService(reviewStore, courseStore, instructorStore, mailer)

	require.NoError(t, service.DeleteReview(context.Background(), 3))

	mails := mailer.waitFor(1)
	require.Len(t, mails, 1)
	assert.Equal(t, "Review Deleted", mails[0].Subject)
	assert.Equal(t, "A review for the course: Databases has been deleted.", mails[0].Body)
}
