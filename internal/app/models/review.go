package models

// Review is a student's rating of a course ('reviews' table).
// Rating is 1..5, checked both in the service layer and by the DB
// constraint; one review per (course, student).
type Review struct {
	ID        int64    `json:"id" db:"id"`
	CourseID  int64    `json:"courseId" db:"course_id"`
	StudentID int64    `json:"studentId" db:"student_id"`
	Rating    int      `json:"rating" db:"rating"`
	Comment   string   `json:"comment" db:"comment"`
	Course    *Course  `json:"course,omitempty"`  // Relation, no db tag
	Student   *Student `json:"student,omitempty"` // Relation, no db tag
}
