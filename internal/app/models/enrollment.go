package models

import (
	"time"
)

// Enrollment links a student to a course ('enrollments' table).
// (student_id, course_id) is unique.
type Enrollment struct {
	ID             int64     `json:"id" db:"id"`
	StudentID      int64     `json:"studentId" db:"student_id"`
	CourseID       int64     `json:"courseId" db:"course_id"`
	EnrollmentDate time.Time `json:"enrollmentDate" db:"enrollment_date"`
	Student        *Student  `json:"student,omitempty"` // Relation, no db tag
	Course         *Course   `json:"course,omitempty"`  // Relation, no db tag
}

// StudentCourse records a student's result in a course ('student_courses'
// table). Marks are 0..100; date_enrolled is set on insert and never
// updated afterwards.
type StudentCourse struct {
	ID           int64     `json:"id" db:"id"`
	StudentID    int64     `json:"studentId" db:"student_id"`
	CourseID     int64     `json:"courseId" db:"course_id"`
	Marks        int       `json:"marks" db:"marks"`
	DateEnrolled time.Time `json:"dateEnrolled" db:"date_enrolled"`
	Student      *Student  `json:"student,omitempty"` // Relation, no db tag
	Course       *Course   `json:"course,omitempty"`  // Relation, no db tag
}
