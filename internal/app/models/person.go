package models

import (
	"time"
)

// Person defines the person model based on the 'persons' table.
// Every account in the system is a person; instructor and student are
// roles layered on top via their own tables.
type Person struct {
	ID          int64     `json:"id" db:"id" example:"1"`                                   // Unique identifier for the person
	Email       string    `json:"email" db:"email" example:"jane.doe@coursehub.app"`        // Email address, stored lower-cased, unique
	Password    string    `json:"-" db:"password"`                                          // Bcrypt hash (excluded from JSON)
	FirstName   string    `json:"firstName" db:"first_name" example:"Jane"`                 // First name
	LastName    string    `json:"lastName" db:"last_name" example:"Doe"`                    // Last name
	PhoneNumber string    `json:"phoneNumber" db:"phone_number" example:"+905551112233"`    // Phone number in +XXXXXXXXX form
	Address     string    `json:"address" db:"address" example:"12 Campus Street"`          // Postal address
	IsActive    bool      `json:"isActive" db:"is_active" example:"true"`                   // Whether the account is active
	IsAdmin     bool      `json:"isAdmin" db:"is_admin" example:"false"`                    // Whether the account has admin rights
	CreatedAt   time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"` // Creation timestamp
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"` // Last update timestamp
}

// FullName returns the person's display name.
func (p *Person) FullName() string {
	return p.FirstName + " " + p.LastName
}

// Profile defines the profile model based on the 'profiles' table.
// A profile is created in the same transaction as its person.
type Profile struct {
	ID       int64   `json:"id" db:"id"`
	PersonID int64   `json:"personId" db:"person_id"`
	Bio      string  `json:"bio" db:"bio"`
	Person   *Person `json:"person,omitempty"` // Relation, no db tag
}
