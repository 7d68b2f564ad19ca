package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ademsari/coursehub/internal/app/models"
	"github.com/ademsari/coursehub/internal/app/models/dto"
	"github.com/ademsari/coursehub/internal/pkg/apperrors"
	"github.com/ademsari/coursehub/internal/pkg/auth"
	"github.com/ademsari/coursehub/internal/pkg/validation"
)

// personStore is the person storage surface PersonService needs
type personStore interface {
	Create(ctx context.Context, person *models.Person, profile *models.Profile) error
	GetByID(ctx context.Context, id int64) (*models.Person, error)
	GetAll(ctx context.Context, offset uint64, limit int) ([]*models.Person, int64, error)
	Update(ctx context.Context, person *models.Person) error
	Delete(ctx context.Context, id int64) error
}

// PersonService defines the interface for person-related operations
type PersonService interface {
	CreatePerson(ctx context.Context, req *dto.CreatePersonRequest) (*models.Person, error)
	GetPersonByID(ctx context.Context, id int64) (*models.Person, error)
	GetAllPersons(ctx context.Context, page, size int) ([]*models.Person, int64, error)
	DeletePerson(ctx context.Context, id int64) error
}

// personServiceImpl implements the PersonService interface
type personServiceImpl struct {
	personRepo personStore
}

// NewPersonService creates a new person service instance
func NewPersonService(personRepo personStore) PersonService {
	return &personServiceImpl{
		personRepo: personRepo,
	}
}

// validatePerson validates person data before any persistence
func validatePerson(person *models.Person) error {
	if person == nil {
		return fmt.Errorf("%w: person is nil", apperrors.ErrValidationFailed)
	}

	if person.Email == "" {
		return apperrors.ErrEmailRequired
	}
	if !validation.IsValidEmail(person.Email) {
		return fmt.Errorf("%w: invalid email format", apperrors.ErrValidationFailed)
	}
	if !validation.IsValidPhone(person.PhoneNumber) {
		return apperrors.ErrInvalidPhone
	}

	if !validation.NewStringValidation(person.FirstName).
		WithRequired(true).
		WithMaxLength(validation.NameMaxLength).
		Validate() {
		return fmt.Errorf("%w: first name is required and at most %d characters",
			apperrors.ErrValidationFailed, validation.NameMaxLength)
	}
	if !validation.NewStringValidation(person.LastName).
		WithRequired(true).
		WithMaxLength(validation.NameMaxLength).
		Validate() {
		return fmt.Errorf("%w: last name is required and at most %d characters",
			apperrors.ErrValidationFailed, validation.NameMaxLength)
	}
	if !validation.NewStringValidation(person.Address).
		WithRequired(true).
		WithMaxLength(validation.AddressMaxLength).
		Validate() {
		return fmt.Errorf("%w: address is required and at most %d characters",
			apperrors.ErrValidationFailed, validation.AddressMaxLength)
	}

	return nil
}

// CreatePerson creates a person and their profile in one transaction
func (s *personServiceImpl) CreatePerson(ctx context.Context, req *dto.CreatePersonRequest) (*models.Person, error) {
	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	person := &models.Person{
		Email:       validation.NormalizeEmail(req.Email),
		Password:    hashedPassword,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		IsActive:    true,
	}

	if err := validatePerson(person); err != nil {
		return nil, err
	}

	profile := &models.Profile{}
	if err := s.personRepo.Create(ctx, person, profile); err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("error creating person: %w", err)
	}

	return person, nil
}

// GetPersonByID retrieves a person. The record is re-validated and
// re-persisted before being returned, mirroring the established
// retrieve-then-save behavior of this endpoint.
func (s *personServiceImpl) GetPersonByID(ctx context.Context, id int64) (*models.Person, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid person ID", apperrors.ErrValidationFailed)
	}

	person, err := s.personRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrPersonNotFound) {
			return nil, apperrors.ErrPersonNotFound
		}
		return nil, fmt.Errorf("error retrieving person: %w", err)
	}

	if err := validatePerson(person); err != nil {
		return nil, err
	}
	if err := s.personRepo.Update(ctx, person); err != nil {
		return nil, fmt.Errorf("error re-persisting person: %w", err)
	}

	return person, nil
}

// GetAllPersons retrieves a page of persons
func (s *personServiceImpl) GetAllPersons(ctx context.Context, page, size int) ([]*models.Person, int64, error) {
	offset, limit := calculatePage(page, size)
	persons, total, err := s.personRepo.GetAll(ctx, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("error retrieving persons: %w", err)
	}
	return persons, total, nil
}

// DeletePerson deletes a person; profile and role rows cascade
func (s *personServiceImpl) DeletePerson(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid person ID", apperrors.ErrValidationFailed)
	}

	err := s.personRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrPersonNotFound) {
			return apperrors.ErrPersonNotFound
		}
		return fmt.Errorf("error deleting person: %w", err)
	}
	return nil
}
