package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ademsari/coursehub/internal/app/models"
	"github.com/ademsari/coursehub/internal/app/models/dto"
	"github.com/ademsari/coursehub/internal/app/repositories"
	"github.com/ademsari/coursehub/internal/pkg/apperrors"
	"github.com/ademsari/coursehub/internal/pkg/notifier"
	"github.com/ademsari/coursehub/internal/pkg/validation"
)

// reviewStore is the review storage surface ReviewService needs
type reviewStore interface {
	Create(ctx context.Context, review *models.Review) error
	GetByID(ctx context.Context, id int64) (*models.Review, error)
	GetAll(ctx context.Context, offset uint64, limit int) ([]*models.Review, int64, error)
	GetRecent(ctx context.Context) ([]*models.Review, error)
	GetRatingStats(ctx context.Context) (*repositories.RatingStats, error)
	Update(ctx context.Context, review *models.Review) error
	Delete(ctx context.Context, id int64) error
}

// instructorContactLookup resolves an instructor with its person row for
// review notifications
type instructorContactLookup interface {
	GetByIDWithPerson(ctx context.Context, id int64) (*models.Instructor, error)
}

// ReviewService defines the interface for review operations
type ReviewService interface {
	CreateReview(ctx context.Context, req *dto.CreateReviewRequest) (*models.Review, error)
	GetReviewByID(ctx context.Context, id int64) (*models.Review, error)
	GetAllReviews(ctx context.Context, page, size int) ([]*models.Review, int64, error)
	GetRecentReviews(ctx context.Context) ([]*models.Review, error)
	GetReviewStatistics(ctx context.Context) (*repositories.RatingStats, error)
	DeleteReview(ctx context.Context, id int64) error
}

// reviewServiceImpl implements the ReviewService interface
type reviewServiceImpl struct {
	reviewRepo     reviewStore
	courseRepo     courseStore
	instructorRepo instructorContactLookup
	notify         *lifecycleNotifier
}

// NewReviewService creates a new review service instance
func NewReviewService(reviewRepo reviewStore, courseRepo courseStore, instructorRepo instructorContactLookup, mailer notifier.Notifier) ReviewService {
	return &reviewServiceImpl{
		reviewRepo:     reviewRepo,
		courseRepo:     courseRepo,
		instructorRepo: instructorRepo,
		notify:         newLifecycleNotifier(mailer),
	}
}

// CreateReview records a student's review of a course. The storage layer
// verifies enrollment and rejects duplicates inside the creation
// transaction; once the write has committed the course's instructor is
// notified, fire-and-forget.
func (s *reviewServiceImpl) CreateReview(ctx context.Context, req *dto.CreateReviewRequest) (*models.Review, error) {
	if req.StudentID <= 0 || req.CourseID <= 0 {
		return nil, fmt.Errorf("%w: invalid student or course ID", apperrors.ErrValidationFailed)
	}
	if !validation.NewNumericValidation(req.Rating).WithMin(1).WithMax(5).Validate() {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", apperrors.ErrValidationFailed)
	}

	course, err := s.courseRepo.GetByID(ctx, req.CourseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error resolving course: %w", err)
	}

	review := &models.Review{
		CourseID:  req.CourseID,
		StudentID: req.StudentID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		if errors.Is(err, apperrors.ErrEnrollmentRequired) {
			return nil, apperrors.ErrEnrollmentRequired
		}
		if errors.Is(err, apperrors.ErrReviewAlreadyExists) {
			return nil, apperrors.ErrReviewAlreadyExists
		}
		if errors.Is(err, apperrors.ErrValidationFailed) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating review: %w", err)
	}

	go s.notifyInstructor(course, func(email string) {
		s.notify.reviewReceived(email, course.Name)
	})

	return review, nil
}

func (s *reviewServiceImpl) notifyInstructor(course *models.Course, send func(email string)) {
	instructor, err := s.instructorRepo.GetByIDWithPerson(context.Background(), course.InstructorID)
	if err != nil || instructor.Person == nil {
		return
	}
	send(instructor.Person.Email)
}

// validateReview validates review data before any persistence
func validateReview(review *models.Review) error {
	if review.StudentID <= 0 || review.CourseID <= 0 {
		return fmt.Errorf("%w: invalid student or course ID", apperrors.ErrValidationFailed)
	}
	if !validation.NewNumericValidation(review.Rating).WithMin(1).WithMax(5).Validate() {
		return fmt.Errorf("%w: rating must be between 1 and 5", apperrors.ErrValidationFailed)
	}
	return nil
}

// GetReviewByID retrieves a review. The record is re-validated and
// re-persisted before being returned, mirroring the established
// retrieve-then-save behavior of this endpoint.
func (s *reviewServiceImpl) GetReviewByID(ctx context.Context, id int64) (*models.Review, error) {
	review, err := s.fetchReview(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := validateReview(review); err != nil {
		return nil, err
	}
	if err := s.reviewRepo.Update(ctx, review); err != nil {
		return nil, fmt.Errorf("error re-persisting review: %w", err)
	}

	return review, nil
}

func (s *reviewServiceImpl) fetchReview(ctx context.Context, id int64) (*models.Review, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid review ID", apperrors.ErrValidationFailed)
	}

	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrReviewNotFound) {
			return nil, apperrors.ErrReviewNotFound
		}
		return nil, fmt.Errorf("error retrieving review: %w", err)
	}
	return review, nil
}

// GetAllReviews retrieves a page of reviews
func (s *reviewServiceImpl) GetAllReviews(ctx context.Context, page, size int) ([]*models.Review, int64, error) {
	offset, limit := calculatePage(page, size)
	reviews, total, err := s.reviewRepo.GetAll(ctx, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("error retrieving reviews: %w", err)
	}
	return reviews, total, nil
}

// GetRecentReviews retrieves reviews matching the self-referencing
// 30-day filter
func (s *reviewServiceImpl) GetRecentReviews(ctx context.Context) ([]*models.Review, error) {
	reviews, err := s.reviewRepo.GetRecent(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving recent reviews: %w", err)
	}
	return reviews, nil
}

// GetReviewStatistics computes the aggregates over all review ratings
func (s *reviewServiceImpl) GetReviewStatistics(ctx context.Context) (*repositories.RatingStats, error) {
	stats, err := s.reviewRepo.GetRatingStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("error computing review statistics: %w", err)
	}
	return stats, nil
}

// DeleteReview deletes a review and notifies the course's instructor
// once the delete has committed.
func (s *reviewServiceImpl) DeleteReview(ctx context.Context, id int64) error {
	review, err := s.fetchReview(ctx, id)
	if err != nil {
		return err
	}

	course, err := s.courseRepo.GetByID(ctx, review.CourseID)
	if err != nil && !errors.Is(err, apperrors.ErrCourseNotFound) {
		return fmt.Errorf("error resolving course: %w", err)
	}

	if err := s.reviewRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrReviewNotFound) {
			return apperrors.ErrReviewNotFound
		}
		return fmt.Errorf("error deleting review: %w", err)
	}

	if course != nil {
		go s.notifyInstructor(course, func(email string) {
			s.notify.reviewDeleted(email, course.Name)
		})
	}

	return nil
}
