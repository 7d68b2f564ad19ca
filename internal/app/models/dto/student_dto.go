package dto

import (
	"github.com/ademsari/coursehub/internal/app/models"
)

// StudentResponse represents student information
type StudentResponse struct {
	ID                 int64           `json:"id"`
	PersonID           int64           `json:"personId"`
	RegistrationNumber string          `json:"registrationNumber"`
	Person             *PersonResponse `json:"person,omitempty"`
}

// CreateStudentRequest represents student role creation data
type CreateStudentRequest struct {
	PersonID           int64  `json:"personId" binding:"required"`
	RegistrationNumber string `json:"registrationNumber" binding:"required,max=30"`
}

// StudentListResponse represents a paginated list of students
type StudentListResponse struct {
	Students   []StudentResponse `json:"students"`
	Pagination PaginationInfo    `json:"pagination"`
}

// StudentMarksResponse represents the aggregate marks of one student
type StudentMarksResponse struct {
	StudentID    int64    `json:"studentId"`
	AverageMarks *float64 `json:"averageMarks"`
	MinMarks     *int     `json:"minMarks"`
	MaxMarks     *int     `json:"maxMarks"`
	TotalMarks   *int     `json:"totalMarks"`
}

// FromStudent converts a models.Student to a StudentResponse
func FromStudent(s *models.Student) StudentResponse {
	if s == nil {
		return StudentResponse{}
	}
	resp := StudentResponse{
		ID:                 s.ID,
		PersonID:           s.PersonID,
		RegistrationNumber: s.RegistrationNumber,
	}
	if s.Person != nil {
		person := FromPerson(s.Person)
		resp.Person = &person
	}
	return resp
}
