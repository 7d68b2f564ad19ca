package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	PersonRepository        *PersonRepository
	ProfileRepository       *ProfileRepository
	InstructorRepository    *InstructorRepository
	StudentRepository       *StudentRepository
	CourseRepository        *CourseRepository
	ModuleRepository        *ModuleRepository
	EnrollmentRepository    *EnrollmentRepository
	StudentCourseRepository *StudentCourseRepository
	ReviewRepository        *ReviewRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		PersonRepository:        NewPersonRepository(db),
		ProfileRepository:       NewProfileRepository(db),
		InstructorRepository:    NewInstructorRepository(db),
		StudentRepository:       NewStudentRepository(db),
		CourseRepository:        NewCourseRepository(db),
		ModuleRepository:        NewModuleRepository(db),
		EnrollmentRepository:    NewEnrollmentRepository(db),
		StudentCourseRepository: NewStudentCourseRepository(db),
		ReviewRepository:        NewReviewRepository(db),
	}
}
