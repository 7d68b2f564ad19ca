package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ademsari/coursehub/internal/app/models"
	"github.com/ademsari/coursehub/internal/app/models/dto"
	"github.com/ademsari/coursehub/internal/pkg/apperrors"
	"github.com/ademsari/coursehub/internal/pkg/notifier"
)

// enrollmentStore is the enrollment storage surface EnrollmentService needs
type enrollmentStore interface {
	Create(ctx context.Context, enrollment *models.Enrollment) error
	GetByID(ctx context.Context, id int64) (*models.Enrollment, error)
	GetAll(ctx context.Context, offset uint64, limit int) ([]*models.Enrollment, int64, error)
	GetRecent(ctx context.Context) ([]*models.Enrollment, error)
	Update(ctx context.Context, enrollment *models.Enrollment) error
	Delete(ctx context.Context, id int64) error
}

// studentLookup resolves a student together with its person row
type studentLookup interface {
	GetByIDWithPerson(ctx context.Context, id int64) (*models.Student, error)
}

// EnrollmentService defines the interface for enrollment operations
type EnrollmentService interface {
	CreateEnrollment(ctx context.Context, req *dto.CreateEnrollmentRequest) (*models.Enrollment, error)
	GetEnrollmentByID(ctx context.Context, id int64) (*models.Enrollment, error)
	GetAllEnrollments(ctx context.Context, page, size int) ([]*models.Enrollment, int64, error)
	GetRecentEnrollments(ctx context.Context) ([]*models.Enrollment, error)
	DeleteEnrollment(ctx context.Context, id int64) error
}

// enrollmentServiceImpl implements the EnrollmentService interface
type enrollmentServiceImpl struct {
	enrollmentRepo enrollmentStore
	studentRepo    studentLookup
	courseRepo     courseStore
	notify         *lifecycleNotifier
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(enrollmentRepo enrollmentStore, studentRepo studentLookup, courseRepo courseStore, mailer notifier.Notifier) EnrollmentService {
	return &enrollmentServiceImpl{
		enrollmentRepo: enrollmentRepo,
		studentRepo:    studentRepo,
		courseRepo:     courseRepo,
		notify:         newLifecycleNotifier(mailer),
	}
}

// CreateEnrollment enrolls a student in a course. The storage layer
// rejects duplicates inside the creation transaction; once the write has
// committed the student is notified, fire-and-forget.
func (s *enrollmentServiceImpl) CreateEnrollment(ctx context.Context, req *dto.CreateEnrollmentRequest) (*models.Enrollment, error) {
	student, err := s.studentRepo.GetByIDWithPerson(ctx, req.StudentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error resolving student: %w", err)
	}

	course, err := s.courseRepo.GetByID(ctx, req.CourseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error resolving course: %w", err)
	}

	enrollment := &models.Enrollment{
		StudentID: req.StudentID,
		CourseID:  req.CourseID,
	}

	if err := s.enrollmentRepo.Create(ctx, enrollment); err != nil {
		if errors.Is(err, apperrors.ErrAlreadyEnrolled) {
			return nil, apperrors.ErrAlreadyEnrolled
		}
		return nil, fmt.Errorf("error creating enrollment: %w", err)
	}

	if student.Person != nil {
		go s.notify.enrollmentConfirmed(student.Person.Email, course.Name)
	}

	return enrollment, nil
}

// validateEnrollment validates enrollment data before any persistence
func validateEnrollment(enrollment *models.Enrollment) error {
	if enrollment.StudentID <= 0 || enrollment.CourseID <= 0 {
		return fmt.Errorf("%w: invalid student or course ID", apperrors.ErrValidationFailed)
	}
	return nil
}

// GetEnrollmentByID retrieves an enrollment. The record is re-validated
// and re-persisted before being returned, mirroring the established
// retrieve-then-save behavior of this endpoint.
func (s *enrollmentServiceImpl) GetEnrollmentByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	enrollment, err := s.fetchEnrollment(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := validateEnrollment(enrollment); err != nil {
		return nil, err
	}
	if err := s.enrollmentRepo.Update(ctx, enrollment); err != nil {
		return nil, fmt.Errorf("error re-persisting enrollment: %w", err)
	}

	return enrollment, nil
}

func (s *enrollmentServiceImpl) fetchEnrollment(ctx context.Context, id int64) (*models.Enrollment, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid enrollment ID", apperrors.ErrValidationFailed)
	}

	enrollment, err := s.enrollmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrEnrollmentNotFound) {
			return nil, apperrors.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("error retrieving enrollment: %w", err)
	}
	return enrollment, nil
}

// GetAllEnrollments retrieves a page of enrollments
func (s *enrollmentServiceImpl) GetAllEnrollments(ctx context.Context, page, size int) ([]*models.Enrollment, int64, error) {
	offset, limit := calculatePage(page, size)
	enrollments, total, err := s.enrollmentRepo.GetAll(ctx, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("error retrieving enrollments: %w", err)
	}
	return enrollments, total, nil
}

// GetRecentEnrollments retrieves enrollments matching the
// self-referencing 30-day filter
func (s *enrollmentServiceImpl) GetRecentEnrollments(ctx context.Context) ([]*models.Enrollment, error) {
	enrollments, err := s.enrollmentRepo.GetRecent(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving recent enrollments: %w", err)
	}
	return enrollments, nil
}

// DeleteEnrollment cancels an enrollment and notifies the student once
// the delete has committed.
func (s *enrollmentServiceImpl) DeleteEnrollment(ctx context.Context, id int64) error {
	enrollment, err := s.fetchEnrollment(ctx, id)
	if err != nil {
		return err
	}

	student, err := s.studentRepo.GetByIDWithPerson(ctx, enrollment.StudentID)
	if err != nil && !errors.Is(err, apperrors.ErrStudentNotFound) {
		return fmt.Errorf("error resolving student: %w", err)
	}

	course, err := s.courseRepo.GetByID(ctx, enrollment.CourseID)
	if err != nil && !errors.Is(err, apperrors.ErrCourseNotFound) {
		return fmt.Errorf("error resolving course: %w", err)
	}

	if err := s.enrollmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrEnrollmentNotFound) {
			return apperrors.ErrEnrollmentNotFound
		}
		return fmt.Errorf("error deleting enrollment: %w", err)
	}

	if student != nil && student.Person != nil && course != nil {
		go s.notify.enrollmentCancelled(student.Person.Email, course.Name)
	}

	return nil
}
