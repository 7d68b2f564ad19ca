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

// moduleStore is the module storage surface ModuleService needs
type moduleStore interface {
	Create(ctx context.Context, module *models.Module) error
	GetByID(ctx context.Context, id int64) (*models.Module, error)
	GetAll(ctx context.Context, offset uint64, limit int) ([]*models.Module, int64, error)
	Delete(ctx context.Context, id int64) error
}

// ModuleService defines the interface for course module operations
type ModuleService interface {
	CreateModule(ctx context.Context, req *dto.CreateModuleRequest) (*models.Module, error)
	GetModuleByID(ctx context.Context, id int64) (*models.Module, error)
	GetAllModules(ctx context.Context, page, size int) ([]*models.Module, int64, error)
	DeleteModule(ctx context.Context, id int64) error
}

// moduleServiceImpl implements the ModuleService interface
type moduleServiceImpl struct {
	moduleRepo moduleStore
	courseRepo courseStore
}

// NewModuleService creates a new module service instance
func NewModuleService(moduleRepo moduleStore, courseRepo courseStore) ModuleService {
	return &moduleServiceImpl{
		moduleRepo: moduleRepo,
		courseRepo: courseRepo,
	}
}

// CreateModule creates a module inside an existing course
func (s *moduleServiceImpl) CreateModule(ctx context.Context, req *dto.CreateModuleRequest) (*models.Module, error) {
	if !validation.NewStringValidation(req.Name).WithRequired(true).WithMaxLength(100).Validate() {
		return nil, fmt.Errorf("%w: module name is required and at most 100 characters", apperrors.ErrValidationFailed)
	}

	if _, err := s.courseRepo.GetByID(ctx, req.CourseID); err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error resolving course: %w", err)
	}

	module := &models.Module{
		CourseID:    req.CourseID,
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.moduleRepo.Create(ctx, module); err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error creating module: %w", err)
	}

	return module, nil
}

// GetModuleByID retrieves a module by ID
func (s *moduleServiceImpl) GetModuleByID(ctx context.Context, id int64) (*models.Module, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid module ID", apperrors.ErrValidationFailed)
	}

	module, err := s.moduleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrModuleNotFound) {
			return nil, apperrors.ErrModuleNotFound
		}
		return nil, fmt.Errorf("error retrieving module: %w", err)
	}
	return module, nil
}

// GetAllModules retrieves a page of modules
func (s *moduleServiceImpl) GetAllModules(ctx context.Context, page, size int) ([]*models.Module, int64, error) {
	offset, limit := calculatePage(page, size)
	modules, total, err := s.moduleRepo.GetAll(ctx, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("error retrieving modules: %w", err)
	}
	return modules, total, nil
}

// DeleteModule deletes a module by ID
func (s *moduleServiceImpl) DeleteModule(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid module ID", apperrors.ErrValidationFailed)
	}

	err := s.moduleRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrModuleNotFound) {
			return apperrors.ErrModuleNotFound
		}
		return fmt.Errorf("error deleting module: %w", err)
	}
	return nil
}
