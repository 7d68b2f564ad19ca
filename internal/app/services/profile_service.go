package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ademsari/coursehub/internal/app/models"
	"github.com/ademsari/coursehub/internal/app/models/dto"
	"github.com/ademsari/coursehub/internal/pkg/apperrors"
)

// profileStore is the profile storage surface ProfileService needs
type profileStore interface {
	Create(ctx context.Context, profile *models.Profile) error
	GetByID(ctx context.Context, id int64) (*models.Profile, error)
	GetAll(ctx context.Context, offset uint64, limit int) ([]*models.Profile, int64, error)
	Update(ctx context.Context, profile *models.Profile) error
	Delete(ctx context.Context, id int64) error
}

// ProfileService defines the interface for profile-related operations
type ProfileService interface {
	CreateProfile(ctx context.Context, req *dto.CreateProfileRequest) (*models.Profile, error)
	GetProfileByID(ctx context.Context, id int64) (*models.Profile, error)
	GetAllProfiles(ctx context.Context, page, size int) ([]*models.Profile, int64, error)
	UpdateProfile(ctx context.Context, id int64, bio string) (*models.Profile, error)
	DeleteProfile(ctx context.Context, id int64) error
}

// profileServiceImpl implements the ProfileService interface
type profileServiceImpl struct {
	profileRepo profileStore
}

// NewProfileService creates a new profile service instance
func NewProfileService(profileRepo profileStore) ProfileService {
	return &profileServiceImpl{
		profileRepo: profileRepo,
	}
}

// CreateProfile creates a standalone profile for a person that lacks one.
// The regular path creates the profile together with the person.
func (s *profileServiceImpl) CreateProfile(ctx context.Context, req *dto.CreateProfileRequest) (*models.Profile, error) {
	if req.PersonID <= 0 {
		return nil, fmt.Errorf("%w: invalid person ID", apperrors.ErrValidationFailed)
	}

	profile := &models.Profile{
		PersonID: req.PersonID,
		Bio:      req.Bio,
	}

	if err := s.profileRepo.Create(ctx, profile); err != nil {
		if errors.Is(err, apperrors.ErrProfileAlreadyExists) {
			return nil, apperrors.ErrProfileAlreadyExists
		}
		if errors.Is(err, apperrors.ErrPersonNotFound) {
			return nil, apperrors.ErrPersonNotFound
		}
		return nil, fmt.Errorf("error creating profile: %w", err)
	}

	return profile, nil
}

// GetProfileByID retrieves a profile by ID
func (s *profileServiceImpl) GetProfileByID(ctx context.Context, id int64) (*models.Profile, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid profile ID", apperrors.ErrValidationFailed)
	}

	profile, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("error retrieving profile: %w", err)
	}
	return profile, nil
}

// GetAllProfiles retrieves a page of profiles
func (s *profileServiceImpl) GetAllProfiles(ctx context.Context, page, size int) ([]*models.Profile, int64, error) {
	offset, limit := calculatePage(page, size)
	profiles, total, err := s.profileRepo.GetAll(ctx, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("error retrieving profiles: %w", err)
	}
	return profiles, total, nil
}

// UpdateProfile updates a profile's bio
func (s *profileServiceImpl) UpdateProfile(ctx context.Context, id int64, bio string) (*models.Profile, error) {
	profile, err := s.GetProfileByID(ctx, id)
	if err != nil {
		return nil, err
	}

	profile.Bio = bio
	if err := s.profileRepo.Update(ctx, profile); err != nil {
		if errors.Is(err, apperrors.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("error updating profile: %w", err)
	}
	return profile, nil
}

// DeleteProfile deletes a profile by ID
func (s *profileServiceImpl) DeleteProfile(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid profile ID", apperrors.ErrValidationFailed)
	}

	err := s.profileRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrProfileNotFound) {
			return apperrors.ErrProfileNotFound
		}
		return fmt.Errorf("error deleting profile: %w", err)
	}
	return nil
}
