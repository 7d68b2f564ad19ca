package dto

import (
	"time"

	"github.com/ademsari/coursehub/internal/app/models"
)

// PersonResponse represents basic person information
type PersonResponse struct {
	ID          int64     `json:"id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	PhoneNumber string    `json:"phoneNumber"`
	Address     string    `json:"address"`
	IsActive    bool      `json:"isActive"`
	IsAdmin     bool      `json:"isAdmin"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CreatePersonRequest represents person creation data
type CreatePersonRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	FirstName   string `json:"firstName" binding:"required,max=30"`
	LastName    string `json:"lastName" binding:"required,max=30"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Address     string `json:"address" binding:"required,max=255"`
}

// PersonListResponse represents a paginated list of persons
type PersonListResponse struct {
	Persons    []PersonResponse `json:"persons"`
	Pagination PaginationInfo   `json:"pagination"`
}

// FromPerson converts a models.Person to a PersonResponse
func FromPerson(p *models.Person) PersonResponse {
	if p == nil {
		return PersonResponse{}
	}
	return PersonResponse{
		ID:          p.ID,
		Email:       p.Email,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		PhoneNumber: p.PhoneNumber,
		Address:     p.Address,
		IsActive:    p.IsActive,
		IsAdmin:     p.IsAdmin,
		CreatedAt:   p.CreatedAt,
	}
}

// ProfileResponse represents profile information
type ProfileResponse struct {
	ID       int64  `json:"id"`
	PersonID int64  `json:"personId"`
	Bio      string `json:"bio"`
}

// CreateProfileRequest represents explicit profile creation data
type CreateProfileRequest struct {
	PersonID int64  `json:"personId" binding:"required"`
	Bio      string `json:"bio"`
}

// UpdateProfileRequest represents profile update data
type UpdateProfileRequest struct {
	Bio string `json:"bio" binding:"required"`
}

// ProfileListResponse represents a paginated list of profiles
type ProfileListResponse struct {
	Profiles   []ProfileResponse `json:"profiles"`
	Pagination PaginationInfo    `json:"pagination"`
}

// FromProfile converts a models.Profile to a ProfileResponse
func FromProfile(p *models.Profile) ProfileResponse {
	if p == nil {
		return ProfileResponse{}
	}
	return ProfileResponse{
		ID:       p.ID,
		PersonID: p.PersonID,
		Bio:      p.Bio,
	}
}
