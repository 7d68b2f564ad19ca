package dto

import (
	"time"

	"github.com/ademsari/coursehub/internal/app/models"
)

// CourseResponse represents course information
type CourseResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	InstructorID int64     `json:"instructorId"`
	CreatedAt    time.Time `json:"createdAt"`
}

// CreateCourseRequest represents course creation data
type CreateCourseRequest struct {
	Name         string `json:"name" binding:"required,max=255"`
	Description  string `json:"description"`
	InstructorID int64  `json:"instructorId" binding:"required"`
}

// CourseListResponse represents a paginated list of courses
type CourseListResponse struct {
	Courses    []CourseResponse `json:"courses"`
	Pagination PaginationInfo   `json:"pagination"`
}

// CourseStatisticsResponse represents the aggregate review ratings of a course
type CourseStatisticsResponse struct {
	CourseID      int64    `json:"courseId"`
	AverageRating *float64 `json:"averageRating"`
	MinRating     *int     `json:"minRating"`
	MaxRating     *int     `json:"maxRating"`
	TotalRating   *int     `json:"totalRating"`
}

// CourseTopStudentResponse pairs a student with their marks in the course
type CourseTopStudentResponse struct {
	Student StudentResponse `json:"student"`
	Marks   int             `json:"marks"`
}

// FromCourse converts a models.Course to a CourseResponse
func FromCourse(c *models.Course) CourseResponse {
	if c == nil {
		return CourseResponse{}
	}
	return CourseResponse{
		ID:           c.ID,
		Name:         c.Name,
		Description:  c.Description,
		InstructorID: c.InstructorID,
		CreatedAt:    c.CreatedAt,
	}
}

// ModuleResponse represents module information
type ModuleResponse struct {
	ID          int64  `json:"id"`
	CourseID    int64  `json:"courseId"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CreateModuleRequest represents module creation data
type CreateModuleRequest struct {
	CourseID    int64  `json:"courseId" binding:"required"`
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
}

// ModuleListResponse represents a paginated list of modules
type ModuleListResponse struct {
	Modules    []ModuleResponse `json:"modules"`
	Pagination PaginationInfo   `json:"pagination"`
}

// FromModule converts a models.Module to a ModuleResponse
func FromModule(m *models.Module) ModuleResponse {
	if m == nil {
		return ModuleResponse{}
	}
	return ModuleResponse{
		ID:          m.ID,
		CourseID:    m.CourseID,
		Name:        m.Name,
		Description: m.Description,
	}
}
