package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ademsari/coursehub/internal/app/models"
	"github.com/ademsari/coursehub/internal/app/models/dto"
	"github.com/ademsari/coursehub/internal/app/repositories"
	"github.com/ademsari/coursehub/internal/pkg/apperrors"
	"github.com/ademsari/coursehub/internal/pkg/logger"
	"github.com/ademsari/coursehub/internal/pkg/notifier"
	"github.com/ademsari/coursehub/internal/pkg/validation"
)

// courseStore is the course storage surface CourseService needs
type courseStore interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetAll(ctx context.Context, offset uint64, limit int) ([]*models.Course, int64, error)
	GetRecent(ctx context.Context) ([]*models.Course, error)
	GetRatingStats(ctx context.Context, courseID int64) (*repositories.RatingStats, error)
	GetTopStudents(ctx context.Context, courseID int64, minMarks int) ([]*repositories.CourseTopStudent, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
}

// studentBodyLister enumerates every student for lifecycle broadcasts
type studentBodyLister interface {
	GetAllWithPersons(ctx context.Context) ([]*models.Student, error)
}

// instructorLookup resolves an instructor before a course references it
type instructorLookup interface {
	GetByID(ctx context.Context, id int64) (*models.Instructor, error)
}

// CourseService defines the interface for course-related operations
type CourseService interface {
	CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error)
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
	GetAllCourses(ctx context.Context, page, size int) ([]*models.Course, int64, error)
	GetRecentCourses(ctx context.Context) ([]*models.Course, error)
	GetCourseStatistics(ctx context.Context, courseID int64) (*repositories.RatingStats, error)
	GetCourseTopStudents(ctx context.Context, courseID int64) ([]*repositories.CourseTopStudent, error)
	DeleteCourse(ctx context.Context, id int64) error
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courseRepo     courseStore
	studentRepo    studentBodyLister
	instructorRepo instructorLookup
	notify         *lifecycleNotifier
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo courseStore, studentRepo studentBodyLister, instructorRepo instructorLookup, mailer notifier.Notifier) CourseService {
	return &courseServiceImpl{
		courseRepo:     courseRepo,
		studentRepo:    studentRepo,
		instructorRepo: instructorRepo,
		notify:         newLifecycleNotifier(mailer),
	}
}

// validateCourse validates course data before any persistence
func validateCourse(course *models.Course) error {
	if !validation.NewStringValidation(course.Name).WithRequired(true).WithMaxLength(255).Validate() {
		return fmt.Errorf("%w: course name is required and at most 255 characters", apperrors.ErrValidationFailed)
	}
	if course.InstructorID <= 0 {
		return fmt.Errorf("%w: invalid instructor ID", apperrors.ErrValidationFailed)
	}
	return nil
}

// CreateCourse creates a course and, once the write has committed,
// broadcasts the availability notice to every student. The broadcast is
// fire-and-forget; a rolled-back create never notifies.
func (s *courseServiceImpl) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	if !validation.NewStringValidation(req.Name).WithRequired(true).WithMaxLength(255).Validate() {
		return nil, fmt.Errorf("%w: course name is required and at most 255 characters", apperrors.ErrValidationFailed)
	}

	if _, err := s.instructorRepo.GetByID(ctx, req.InstructorID); err != nil {
		if errors.Is(err, apperrors.ErrInstructorNotFound) {
			return nil, apperrors.ErrInstructorNotFound
		}
		return nil, fmt.Errorf("error resolving instructor: %w", err)
	}

	course := &models.Course{
		Name:         req.Name,
		Description:  req.Description,
		InstructorID: req.InstructorID,
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		if errors.Is(err, apperrors.ErrInstructorNotFound) {
			return nil, apperrors.ErrInstructorNotFound
		}
		return nil, fmt.Errorf("error creating course: %w", err)
	}

	go s.broadcastCourseCreated(course.Name)

	return course, nil
}

func (s *courseServiceImpl) broadcastCourseCreated(courseName string) {
	students, err := s.studentRepo.GetAllWithPersons(context.Background())
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to enumerate students for course broadcast")
		return
	}
	s.notify.courseCreated(students, courseName)
}

// GetCourseByID retrieves a course. The record is re-validated and
// re-persisted before being returned, mirroring the established
// retrieve-then-save behavior of this endpoint.
func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	course, err := s.fetchCourse(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := validateCourse(course); err != nil {
		return nil, err
	}
	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, fmt.Errorf("error re-persisting course: %w", err)
	}

	return course, nil
}

func (s *courseServiceImpl) fetchCourse(ctx context.Context, id int64) (*models.Course, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid course ID", apperrors.ErrValidationFailed)
	}

	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	return course, nil
}

// GetAllCourses retrieves a page of courses
func (s *courseServiceImpl) GetAllCourses(ctx context.Context, page, size int) ([]*models.Course, int64, error) {
	offset, limit := calculatePage(page, size)
	courses, total, err := s.courseRepo.GetAll(ctx, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("error retrieving courses: %w", err)
	}
	return courses, total, nil
}

// GetRecentCourses retrieves courses matching the self-referencing
// 30-day filter
func (s *courseServiceImpl) GetRecentCourses(ctx context.Context) ([]*models.Course, error) {
	courses, err := s.courseRepo.GetRecent(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving recent courses: %w", err)
	}
	return courses, nil
}

// GetCourseStatistics computes the review rating aggregates of a course
func (s *courseServiceImpl) GetCourseStatistics(ctx context.Context, courseID int64) (*repositories.RatingStats, error) {
	if _, err := s.fetchCourse(ctx, courseID); err != nil {
		return nil, err
	}

	stats, err := s.courseRepo.GetRatingStats(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error computing course statistics: %w", err)
	}
	return stats, nil
}

// GetCourseTopStudents retrieves the course's students with marks of 85
// or above, highest first
func (s *courseServiceImpl) GetCourseTopStudents(ctx context.Context, courseID int64) ([]*repositories.CourseTopStudent, error) {
	if _, err := s.fetchCourse(ctx, courseID); err != nil {
		return nil, err
	}

	topStudents, err := s.courseRepo.GetTopStudents(ctx, courseID, TopStudentMarks)
	if err != nil {
		return nil, fmt.Errorf("error retrieving course top students: %w", err)
	}
	return topStudents, nil
}

// DeleteCourse deletes a course and, once the delete has committed,
// broadcasts the removal notice to every student.
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id int64) error {
	course, err := s.fetchCourse(ctx, id)
	if err != nil {
		return err
	}

	if err := s.courseRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			return apperrors.ErrCourseNotFound
		}
		return fmt.Errorf("error deleting course: %w", err)
	}

	go s.broadcastCourseDeleted(course.Name)

	return nil
}

func (s *courseServiceImpl) broadcastCourseDeleted(courseName string) {
	students, err := s.studentRepo.GetAllWithPersons(context.Background())
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to enumerate students for course broadcast")
		return
	}
	s.notify.courseDeleted(students, courseName)
}
