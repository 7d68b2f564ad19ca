package models

import (
	"time"
)

// Course defines the course model based on the 'courses' table
type Course struct {
	ID           int64       `json:"id" db:"id"`
	Name         string      `json:"name" db:"name"`
	Description  string      `json:"description" db:"description"`
	InstructorID int64       `json:"instructorId" db:"instructor_id"`
	CreatedAt    time.Time   `json:"createdAt" db:"created_at"`
	Instructor   *Instructor `json:"instructor,omitempty"` // Relation, no db tag
}

// Module defines a named unit of content inside a course ('modules' table)
type Module struct {
	ID          int64   `json:"id" db:"id"`
	CourseID    int64   `json:"courseId" db:"course_id"`
	Name        string  `json:"name" db:"name"`
	Description string  `json:"description" db:"description"`
	Course      *Course `json:"course,omitempty"` // Relation, no db tag
}
