package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ademsari/coursehub/internal/app/models"
	"github.com/ademsari/coursehub/internal/app/models/dto"
	"github.com/ademsari/coursehub/internal/pkg/apperrors"
)

// instructorStore is the instructor storage surface InstructorService needs
type instructorStore interface {
	Create(ctx context.Context, instructor *models.Instructor) error
	GetByID(ctx context.Context, id int64) (*models.Instructor, error)
	GetAll(ctx context.Context, offset uint64, limit int) ([]*models.Instructor, int64, error)
	GetHighSalary(ctx context.Context) ([]*models.Instructor, error)
	Update(ctx context.Context, instructor *models.Instructor) error
	Delete(ctx context.Context, id int64) error
}

// roleChecker reports whether a person already holds a role
type roleChecker interface {
	HasRole(ctx context.Context, personID int64) (bool, error)
}

// InstructorService defines the interface for instructor-related operations
type InstructorService interface {
	CreateInstructor(ctx context.Context, req *dto.CreateInstructorRequest) (*models.Instructor, error)
	GetInstructorByID(ctx context.Context, id int64) (*models.Instructor, error)
	GetAllInstructors(ctx context.Context, page, size int) ([]*models.Instructor, int64, error)
	GetHighSalaryInstructors(ctx context.Context) ([]*models.Instructor, error)
	DeleteInstructor(ctx context.Context, id int64) error
}

// instructorServiceImpl implements the InstructorService interface
type instructorServiceImpl struct {
	instructorRepo instructorStore
	roleCheck      roleChecker
}

// NewInstructorService creates a new instructor service instance
func NewInstructorService(instructorRepo instructorStore, roleCheck roleChecker) InstructorService {
	return &instructorServiceImpl{
		instructorRepo: instructorRepo,
		roleCheck:      roleCheck,
	}
}

// CreateInstructor assigns the instructor role to a person. A person
// holding either role already is rejected; the roles are mutually
// exclusive.
func (s *instructorServiceImpl) CreateInstructor(ctx context.Context, req *dto.CreateInstructorRequest) (*models.Instructor, error) {
	if req.PersonID <= 0 {
		return nil, fmt.Errorf("%w: invalid person ID", apperrors.ErrValidationFailed)
	}
	if req.Salary < 0 {
		return nil, fmt.Errorf("%w: salary cannot be negative", apperrors.ErrValidationFailed)
	}

	hasRole, err := s.roleCheck.HasRole(ctx, req.PersonID)
	if err != nil {
		return nil, fmt.Errorf("error checking person role: %w", err)
	}
	if hasRole {
		return nil, apperrors.ErrRoleConflict
	}

	instructor := &models.Instructor{
		PersonID: req.PersonID,
		Bio:      req.Bio,
		Salary:   req.Salary,
	}

	if err := s.instructorRepo.Create(ctx, instructor); err != nil {
		if errors.Is(err, apperrors.ErrRoleConflict) {
			return nil, apperrors.ErrRoleConflict
		}
		if errors.Is(err, apperrors.ErrPersonNotFound) {
			return nil, apperrors.ErrPersonNotFound
		}
		return nil, fmt.Errorf("error creating instructor: %w", err)
	}

	return instructor, nil
}

// GetInstructorByID retrieves an instructor. The record is re-validated
// and re-persisted before being returned, mirroring the established
// retrieve-then-save behavior of this endpoint.
func (s *instructorServiceImpl) GetInstructorByID(ctx context.Context, id int64) (*models.Instructor, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid instructor ID", apperrors.ErrValidationFailed)
	}

	instructor, err := s.instructorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrInstructorNotFound) {
			return nil, apperrors.ErrInstructorNotFound
		}
		return nil, fmt.Errorf("error retrieving instructor: %w", err)
	}

	if instructor.Salary < 0 {
		return nil, fmt.Errorf("%w: salary cannot be negative", apperrors.ErrValidationFailed)
	}
	if err := s.instructorRepo.Update(ctx, instructor); err != nil {
		return nil, fmt.Errorf("error re-persisting instructor: %w", err)
	}

	return instructor, nil
}

// GetAllInstructors retrieves a page of instructors
func (s *instructorServiceImpl) GetAllInstructors(ctx context.Context, page, size int) ([]*models.Instructor, int64, error) {
	offset, limit := calculatePage(page, size)
	instructors, total, err := s.instructorRepo.GetAll(ctx, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("error retrieving instructors: %w", err)
	}
	return instructors, total, nil
}

// GetHighSalaryInstructors retrieves instructors matching the
// self-referencing salary filter
func (s *instructorServiceImpl) GetHighSalaryInstructors(ctx context.Context) ([]*models.Instructor, error) {
	instructors, err := s.instructorRepo.GetHighSalary(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving high salary instructors: %w", err)
	}
	return instructors, nil
}

// DeleteInstructor deletes an instructor; their courses cascade
func (s *instructorServiceImpl) DeleteInstructor(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid instructor ID", apperrors.ErrValidationFailed)
	}

	err := s.instructorRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrInstructorNotFound) {
			return apperrors.ErrInstructorNotFound
		}
		return fmt.Errorf("error deleting instructor: %w", err)
	}
	return nil
}
