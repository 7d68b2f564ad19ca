package models

// Instructor defines the instructor role based on the 'instructors' table.
// A person holds at most one instructor row (UNIQUE person_id) and may not
// also be a student.
type Instructor struct {
	ID       int64   `json:"id" db:"id"`
	PersonID int64   `json:"personId" db:"person_id"`
	Bio      string  `json:"bio" db:"bio"`
	Salary   float64 `json:"salary" db:"salary"`
	Person   *Person `json:"person,omitempty"` // Relation, no db tag
}
