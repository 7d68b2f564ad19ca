package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ademsari/coursehub/internal/app/models"
	"github.com/ademsari/coursehub/internal/app/models/dto"
	"github.com/ademsari/coursehub/internal/pkg/apperrors"
	"github.com/ademsari/coursehub/internal/pkg/auth"
	"github.com/ademsari/coursehub/internal/pkg/logger"
	"github.com/ademsari/coursehub/internal/pkg/validation"
)

// personAccountStore is the person storage surface AuthService needs
type personAccountStore interface {
	Create(ctx context.Context, person *models.Person, profile *models.Profile) error
	GetByEmail(ctx context.Context, email string) (*models.Person, error)
}

// AuthService defines the interface for authentication operations
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.Person, *dto.TokenResponse, error)
	Login(ctx context.Context, email, password string) (*models.Person, *dto.TokenResponse, error)
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	personRepo personAccountStore
	jwtService *auth.JWTService
}

// NewAuthService creates a new auth service instance
func NewAuthService(personRepo personAccountStore, jwtService *auth.JWTService) AuthService {
	return &authServiceImpl{
		personRepo: personRepo,
		jwtService: jwtService,
	}
}

// Register creates a person account with its profile and issues a token
// pair. Registration funnels through the same person validation as the
// admin create path.
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*models.Person, *dto.TokenResponse, error) {
	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, nil, fmt.Errorf("error hashing password: %w", err)
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
		return nil, nil, err
	}

	profile := &models.Profile{}
	if err := s.personRepo.Create(ctx, person, profile); err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil, nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, nil, fmt.Errorf("error registering person: %w", err)
	}

	tokens, err := s.issueTokens(person)
	if err != nil {
		return nil, nil, err
	}

	logger.Info().Int64("personID", person.ID).Msg("Person registered")
	return person, tokens, nil
}

// Login authenticates a person by email and password and issues a token pair
func (s *authServiceImpl) Login(ctx context.Context, email, password string) (*models.Person, *dto.TokenResponse, error) {
	person, err := s.personRepo.GetByEmail(ctx, validation.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrPersonNotFound) {
			return nil, nil, apperrors.ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("error during login: %w", err)
	}

	if !auth.CheckPassword(person.Password, password) {
		return nil, nil, apperrors.ErrInvalidCredentials
	}

	if !person.IsActive {
		return nil, nil, apperrors.ErrAccountDisabled
	}

	tokens, err := s.issueTokens(person)
	if err != nil {
		return nil, nil, err
	}

	return person, tokens, nil
}

func (s *authServiceImpl) issueTokens(person *models.Person) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, _, err := s.jwtService.GenerateTokenPair(person)
	if err != nil {
		return nil, fmt.Errorf("error generating tokens: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(expiresIn),
	}, nil
}
