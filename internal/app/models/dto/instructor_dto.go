package dto

import (
	"github.com/ademsari/coursehub/internal/app/models"
)

// InstructorResponse represents instructor information
type InstructorResponse struct {
	ID       int64           `json:"id"`
	PersonID int64           `json:"personId"`
	Bio      string          `json:"bio"`
	Salary   float64         `json:"salary"`
	Person   *PersonResponse `json:"person,omitempty"`
}

// CreateInstructorRequest represents instructor role creation data
type CreateInstructorRequest struct {
	PersonID int64   `json:"personId" binding:"required"`
	Bio      string  `json:"bio"`
	Salary   float64 `json:"salary" binding:"min=0"`
}

// InstructorListResponse represents a paginated list of instructors
type InstructorListResponse struct {
	Instructors []InstructorResponse `json:"instructors"`
	Pagination  PaginationInfo       `json:"pagination"`
}

// FromInstructor converts a models.Instructor to an InstructorResponse
func FromInstructor(i *models.Instructor) InstructorResponse {
	if i == nil {
		return InstructorResponse{}
	}
	resp := InstructorResponse{
		ID:       i.ID,
		PersonID: i.PersonID,
		Bio:      i.Bio,
		Salary:   i.Salary,
	}
	if i.Person != nil {
		person := FromPerson(i.Person)
		resp.Person = &person
	}
	return resp
}
