package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ademsari/coursehub/internal/app/models"
	"github.com/ademsari/coursehub/internal/app/models/dto"
	"github.com/ademsari/coursehub/internal/app/repositories"
	"github.com/ademsari/coursehub/internal/pkg/apperrors"
	"github.com/ademsari/coursehub/internal/pkg/validation"
)

// Marks thresholds used by the student queries. High achievers and top
// students deliberately use different cut-offs.
const (
	HighAchieverMarks = 90
	TopStudentMarks   = 85
)

// studentStore is the student storage surface StudentService needs
type studentStore interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetAll(ctx context.Context, offset uint64, limit int) ([]*models.Student, int64, error)
	GetMarksStats(ctx context.Context, studentID int64) (*repositories.MarksStats, error)
	GetByMinimumMarks(ctx context.Context, minMarks int) ([]*models.Student, error)
	GetRecent(ctx context.Context) ([]*models.Student, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) error
}

// StudentService defines the interface for student-related operations
type StudentService interface {
	CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error)
	GetStudentByID(ctx context.Context, id int64) (*models.Student, error)
	GetAllStudents(ctx context.Context, page, size int) ([]*models.Student, int64, error)
	GetStudentMarks(ctx context.Context, studentID int64) (*repositories.MarksStats, error)
	GetHighAchievers(ctx context.Context) ([]*models.Student, error)
	GetTopStudents(ctx context.Context) ([]*models.Student, error)
	GetRecentStudents(ctx context.Context) ([]*models.Student, error)
	DeleteStudent(ctx context.Context, id int64) error
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	studentRepo studentStore
	roleCheck   roleChecker
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo studentStore, roleCheck roleChecker) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
		roleCheck:   roleCheck,
	}
}

// CreateStudent assigns the student role to a person, enforcing role
// exclusivity against the instructor role.
func (s *studentServiceImpl) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	if req.PersonID <= 0 {
		return nil, fmt.Errorf("%w: invalid person ID", apperrors.ErrValidationFailed)
	}
	if !validation.NewStringValidation(req.RegistrationNumber).
		WithRequired(true).
		WithMaxLength(validation.RegNumMaxLength).
		Validate() {
		return nil, fmt.Errorf("%w: registration number is required and at most %d characters",
			apperrors.ErrValidationFailed, validation.RegNumMaxLength)
	}

	hasRole, err := s.roleCheck.HasRole(ctx, req.PersonID)
	if err != nil {
		return nil, fmt.Errorf("error checking person role: %w", err)
	}
	if hasRole {
		return nil, apperrors.ErrRoleConflict
	}

	student := &models.Student{
		PersonID:           req.PersonID,
		RegistrationNumber: req.RegistrationNumber,
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		if errors.Is(err, apperrors.ErrRoleConflict) {
			return nil, apperrors.ErrRoleConflict
		}
		if errors.Is(err, apperrors.ErrPersonNotFound) {
			return nil, apperrors.ErrPersonNotFound
		}
		return nil, fmt.Errorf("error creating student: %w", err)
	}

	return student, nil
}

// GetStudentByID retrieves a student. The record is re-validated and
// re-persisted before being returned, mirroring the established
// retrieve-then-save behavior of this endpoint.
func (s *studentServiceImpl) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid student ID", apperrors.ErrValidationFailed)
	}

	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	if student.RegistrationNumber == "" {
		return nil, fmt.Errorf("%w: registration number is required", apperrors.ErrValidationFailed)
	}
	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, fmt.Errorf("error re-persisting student: %w", err)
	}

	return student, nil
}

// GetAllStudents retrieves a page of students
func (s *studentServiceImpl) GetAllStudents(ctx context.Context, page, size int) ([]*models.Student, int64, error) {
	offset, limit := calculatePage(page, size)
	students, total, err := s.studentRepo.GetAll(ctx, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("error retrieving students: %w", err)
	}
	return students, total, nil
}

// GetStudentMarks computes the marks aggregates for one student
func (s *studentServiceImpl) GetStudentMarks(ctx context.Context, studentID int64) (*repositories.MarksStats, error) {
	if _, err := s.studentRepo.GetByID(ctx, studentID); err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	stats, err := s.studentRepo.GetMarksStats(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error computing student marks: %w", err)
	}
	return stats, nil
}

// GetHighAchievers retrieves students with marks of 90 or above
func (s *studentServiceImpl) GetHighAchievers(ctx context.Context) ([]*models.Student, error) {
	students, err := s.studentRepo.GetByMinimumMarks(ctx, HighAchieverMarks)
	if err != nil {
		return nil, fmt.Errorf("error retrieving high achievers: %w", err)
	}
	return students, nil
}

// GetTopStudents retrieves students with marks of 85 or above
func (s *studentServiceImpl) GetTopStudents(ctx context.Context) ([]*models.Student, error) {
	students, err := s.studentRepo.GetByMinimumMarks(ctx, TopStudentMarks)
	if err != nil {
		return nil, fmt.Errorf("error retrieving top students: %w", err)
	}
	return students, nil
}

// GetRecentStudents retrieves students matching the self-referencing
// 30-day filter
func (s *studentServiceImpl) GetRecentStudents(ctx context.Context) ([]*models.Student, error) {
	students, err := s.studentRepo.GetRecent(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving recent students: %w", err)
	}
	return students, nil
}

// DeleteStudent deletes a student; enrollments, results and reviews cascade
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid student ID", apperrors.ErrValidationFailed)
	}

	err := s.studentRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return apperrors.ErrStudentNotFound
		}
		return fmt.Errorf("error deleting student: %w", err)
	}
	return nil
}
