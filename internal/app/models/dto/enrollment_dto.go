package dto

import (
	"time"

	"github.com/ademsari/coursehub/internal/app/models"
)

// EnrollmentResponse represents enrollment information
type EnrollmentResponse struct {
	ID             int64     `json:"id"`
	StudentID      int64     `json:"studentId"`
	CourseID       int64     `json:"courseId"`
	EnrollmentDate time.Time `json:"enrollmentDate"`
}

// CreateEnrollmentRequest represents enrollment creation data
type CreateEnrollmentRequest struct {
	StudentID int64 `json:"studentId" binding:"required"`
	CourseID  int64 `json:"courseId" binding:"required"`
}

// EnrollmentListResponse represents a paginated list of enrollments
type EnrollmentListResponse struct {
	Enrollments []EnrollmentResponse `json:"enrollments"`
	Pagination  PaginationInfo       `json:"pagination"`
}

// FromEnrollment converts a models.Enrollment to an EnrollmentResponse
func FromEnrollment(e *models.Enrollment) EnrollmentResponse {
	if e == nil {
		return EnrollmentResponse{}
	}
	return EnrollmentResponse{
		ID:             e.ID,
		StudentID:      e.StudentID,
		CourseID:       e.CourseID,
		EnrollmentDate: e.EnrollmentDate,
	}
}

// StudentCourseResponse represents a student's recorded result in a course
type StudentCourseResponse struct {
	ID           int64     `json:"id"`
	StudentID    int64     `json:"studentId"`
	CourseID     int64     `json:"courseId"`
	Marks        int       `json:"marks"`
	DateEnrolled time.Time `json:"dateEnrolled"`
}

// CreateStudentCourseRequest represents result creation data.
// Marks are bounded here and again by the database constraint.
type CreateStudentCourseRequest struct {
	StudentID int64 `json:"studentId" binding:"required"`
	CourseID  int64 `json:"courseId" binding:"required"`
	Marks     *int  `json:"marks" binding:"required,min=0,max=100"`
}

// StudentCourseListResponse represents a paginated list of results
type StudentCourseListResponse struct {
	StudentCourses []StudentCourseResponse `json:"studentCourses"`
	Pagination     PaginationInfo          `json:"pagination"`
}

// FromStudentCourse converts a models.StudentCourse to a StudentCourseResponse
func FromStudentCourse(sc *models.StudentCourse) StudentCourseResponse {
	if sc == nil {
		return StudentCourseResponse{}
	}
	return StudentCourseResponse{
		ID:           sc.ID,
		StudentID:    sc.StudentID,
		CourseID:     sc.CourseID,
		Marks:        sc.Marks,
		DateEnrolled: sc.DateEnrolled,
	}
}
