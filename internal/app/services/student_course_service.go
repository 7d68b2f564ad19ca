package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ademsari/coursehub/internal/app/models"
	"github.com/ademsari/coursehub/internal/app/models/dto"
	"github.com/ademsari/coursehub/internal/pkg/apperrors"
	"github.com/ademsari/coursehub/internal/pkg/validation"
)

// studentCourseStore is the result storage surface StudentCourseService needs
type studentCourseStore interface {
	Create(ctx context.Context, sc *models.StudentCourse) error
	GetByID(ctx context.Context, id int64) (*models.StudentCourse, error)
	GetAll(ctx context.Context, offset uint64, limit int) ([]*models.StudentCourse, int64, error)
	Delete(ctx context.Context, id int64) error
}

// StudentCourseService defines the interface for student result operations
type StudentCourseService interface {
	CreateStudentCourse(ctx context.Context, req *dto.CreateStudentCourseRequest) (*models.StudentCourse, error)
	GetStudentCourseByID(ctx context.Context, id int64) (*models.StudentCourse, error)
	GetAllStudentCourses(ctx context.Context, page, size int) ([]*models.StudentCourse, int64, error)
	DeleteStudentCourse(ctx context.Context, id int64) error
}

// studentCourseServiceImpl implements the StudentCourseService interface
type studentCourseServiceImpl struct {
	studentCourseRepo studentCourseStore
}

// NewStudentCourseService creates a new student course service instance
func NewStudentCourseService(studentCourseRepo studentCourseStore) StudentCourseService {
	return &studentCourseServiceImpl{
		studentCourseRepo: studentCourseRepo,
	}
}

// CreateStudentCourse records a student's result in a course. Marks are
// checked here and by the database constraint. The enrollment date is
// assigned by the storage layer and never changes afterwards.
func (s *studentCourseServiceImpl) CreateStudentCourse(ctx context.Context, req *dto.CreateStudentCourseRequest) (*models.StudentCourse, error) {
	if req.StudentID <= 0 || req.CourseID <= 0 {
		return nil, fmt.Errorf("%w: invalid student or course ID", apperrors.ErrValidationFailed)
	}
	if req.Marks == nil {
		return nil, fmt.Errorf("%w: marks are required", apperrors.ErrValidationFailed)
	}
	if !validation.NewNumericValidation(*req.Marks).WithMin(0).WithMax(100).Validate() {
		return nil, fmt.Errorf("%w: marks must be between 0 and 100", apperrors.ErrValidationFailed)
	}

	sc := &models.StudentCourse{
		StudentID: req.StudentID,
		CourseID:  req.CourseID,
		Marks:     *req.Marks,
	}

	if err := s.studentCourseRepo.Create(ctx, sc); err != nil {
		if errors.Is(err, apperrors.ErrStudentCourseExists) {
			return nil, apperrors.ErrStudentCourseExists
		}
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		if errors.Is(err, apperrors.ErrValidationFailed) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating student course: %w", err)
	}

	return sc, nil
}

// GetStudentCourseByID retrieves a student result by ID
func (s *studentCourseServiceImpl) GetStudentCourseByID(ctx context.Context, id int64) (*models.StudentCourse, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid student course ID", apperrors.ErrValidationFailed)
	}

	sc, err := s.studentCourseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentCourseNotFound) {
			return nil, apperrors.ErrStudentCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving student course: %w", err)
	}
	return sc, nil
}

// GetAllStudentCourses retrieves a page of student results
func (s *studentCourseServiceImpl) GetAllStudentCourses(ctx context.Context, page, size int) ([]*models.StudentCourse, int64, error) {
	offset, limit := calculatePage(page, size)
	studentCourses, total, err := s.studentCourseRepo.GetAll(ctx, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("error retrieving student courses: %w", err)
	}
	return studentCourses, total, nil
}

// DeleteStudentCourse deletes a student result by ID
func (s *studentCourseServiceImpl) DeleteStudentCourse(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid student course ID", apperrors.ErrValidationFailed)
	}

	err := s.studentCourseRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentCourseNotFound) {
			return apperrors.ErrStudentCourseNotFound
		}
		return fmt.Errorf("error deleting student course: %w", err)
	}
	return nil
}
