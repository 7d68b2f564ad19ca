package models

// Student defines the student role based on the 'students' table.
type Student struct {
	ID                 int64   `json:"id" db:"id"`
	PersonID           int64   `json:"personId" db:"person_id"`
	RegistrationNumber string  `json:"registrationNumber" db:"registration_number"`
	Person             *Person `json:"person,omitempty"` // Relation, no db tag
}
