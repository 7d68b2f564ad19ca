package services

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/ademsari/coursehub/internal/app/models"
	"github.com/ademsari/coursehub/internal/app/repositories"
)

// --- Mocks ---

type MockPersonStore struct {
	mock.Mock
}

func (m *MockPersonStore) Create(ctx context.Context, person *models.Person, profile *models.Profile) error {
	args := m.Called(ctx, person, profile)
	return args.Error(0)
}

func (m *MockPersonStore) GetByID(ctx context.Context, id int64) (*models.Person, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Person), args.Error(1)
}

func (m *MockPersonStore) GetAll(ctx context.Context, offset uint64, limit int) ([]*models.Person, int64, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*models.Person), args.Get(1).(int64), args.Error(2)
}

func (m *MockPersonStore) Update(ctx context.Context, person *models.Person) error {
	args := m.Called(ctx, person)
	return args.Error(0)
}

func (m *MockPersonStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockRoleChecker struct {
	mock.Mock
}

func (m *MockRoleChecker) HasRole(ctx context.Context, personID int64) (bool, error) {
	args := m.Called(ctx, personID)
	return args.Bool(0), args.Error(1)
}

type MockInstructorStore struct {
	mock.Mock
}

func (m *MockInstructorStore) Create(ctx context.Context, instructor *models.Instructor) error {
	args := m.Called(ctx, instructor)
	return args.Error(0)
}

func (m *MockInstructorStore) GetByID(ctx context.Context, id int64) (*models.Instructor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Instructor), args.Error(1)
}

func (m *MockInstructorStore) GetByIDWithPerson(ctx context.Context, id int64) (*models.Instructor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Instructor), args.Error(1)
}

func (m *MockInstructorStore) GetAll(ctx context.Context, offset uint64, limit int) ([]*models.Instructor, int64, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*models.Instructor), args.Get(1).(int64), args.Error(2)
}

func (m *MockInstructorStore) GetHighSalary(ctx context.Context) ([]*models.Instructor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Instructor), args.Error(1)
}

func (m *MockInstructorStore) Update(ctx context.Context, instructor *models.Instructor) error {
	args := m.Called(ctx, instructor)
	return args.Error(0)
}

func (m *MockInstructorStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockStudentStore struct {
	mock.Mock
}

func (m *MockStudentStore) Create(ctx context.Context, student *models.Student) error {
	args := m.Called(ctx, student)
	return args.Error(0)
}

func (m *MockStudentStore) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Student), args.Error(1)
}

func (m *MockStudentStore) GetByIDWithPerson(ctx context.Context, id int64) (*models.Student, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Student), args.Error(1)
}

func (m *MockStudentStore) GetAll(ctx context.Context, offset uint64, limit int) ([]*models.Student, int64, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*models.Student), args.Get(1).(int64), args.Error(2)
}

func (m *MockStudentStore) GetAllWithPersons(ctx context.Context) ([]*models.Student, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Student), args.Error(1)
}

func (m *MockStudentStore) GetMarksStats(ctx context.Context, studentID int64) (*repositories.MarksStats, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repositories.MarksStats), args.Error(1)
}

func (m *MockStudentStore) GetByMinimumMarks(ctx context.Context, minMarks int) ([]*models.Student, error) {
	args := m.Called(ctx, minMarks)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Student), args.Error(1)
}

func (m *MockStudentStore) GetRecent(ctx context.Context) ([]*models.Student, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Student), args.Error(1)
}

func (m *MockStudentStore) Update(ctx context.Context, student *models.Student) error {
	args := m.Called(ctx, student)
	return args.Error(0)
}

func (m *MockStudentStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCourseStore struct {
	mock.Mock
}

func (m *MockCourseStore) Create(ctx context.Context, course *models.Course) error {
	args := m.Called(ctx, course)
	return args.Error(0)
}

func (m *MockCourseStore) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Course), args.Error(1)
}

func (m *MockCourseStore) GetAll(ctx context.Context, offset uint64, limit int) ([]*models.Course, int64, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*models.Course), args.Get(1).(int64), args.Error(2)
}

func (m *MockCourseStore) GetRecent(ctx context.Context) ([]*models.Course, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Course), args.Error(1)
}

func (m *MockCourseStore) GetRatingStats(ctx context.Context, courseID int64) (*repositories.RatingStats, error) {
	args := m.Called(ctx, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repositories.RatingStats), args.Error(1)
}

func (m *MockCourseStore) GetTopStudents(ctx context.Context, courseID int64, minMarks int) ([]*repositories.CourseTopStudent, error) {
	args := m.Called(ctx, courseID, minMarks)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*repositories.CourseTopStudent), args.Error(1)
}

func (m *MockCourseStore) Update(ctx context.Context, course *models.Course) error {
	args := m.Called(ctx, course)
	return args.Error(0)
}

func (m *MockCourseStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockEnrollmentStore struct {
	mock.Mock
}

func (m *MockEnrollmentStore) Create(ctx context.Context, enrollment *models.Enrollment) error {
	args := m.Called(ctx, enrollment)
	return args.Error(0)
}

func (m *MockEnrollmentStore) GetByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Enrollment), args.Error(1)
}

func (m *MockEnrollmentStore) GetAll(ctx context.Context, offset uint64, limit int) ([]*models.Enrollment, int64, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*models.Enrollment), args.Get(1).(int64), args.Error(2)
}

func (m *MockEnrollmentStore) GetRecent(ctx context.Context) ([]*models.Enrollment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Enrollment), args.Error(1)
}

func (m *MockEnrollmentStore) Update(ctx context.Context, enrollment *models.Enrollment) error {
	args := m.Called(ctx, enrollment)
	return args.Error(0)
}

func (m *MockEnrollmentStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockReviewStore struct {
	mock.Mock
}

func (m *MockReviewStore) Create(ctx context.Context, review *models.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewStore) GetByID(ctx context.Context, id int64) (*models.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewStore) GetAll(ctx context.Context, offset uint64, limit int) ([]*models.Review, int64, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*models.Review), args.Get(1).(int64), args.Error(2)
}

func (m *MockReviewStore) GetRecent(ctx context.Context) ([]*models.Review, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Review), args.Error(1)
}

func (m *MockReviewStore) GetRatingStats(ctx context.Context) (*repositories.RatingStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repositories.RatingStats), args.Error(1)
}

func (m *MockReviewStore) Update(ctx context.Context, review *models.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- Notification capture ---

type sentMail struct {
	To      string
	Subject string
	Body    string
}

// recordingMailer captures notifications sent from the services'
// post-commit goroutines. waitFor blocks until the expected number of
// mails has arrived, so tests never race the goroutine.
type recordingMailer struct {
	mu    sync.Mutex
	mails []sentMail
	ch    chan sentMail
}

func newRecordingMailer() *recordingMailer {
	return &recordingMailer{ch: make(chan sentMail, 32)}
}

func (r *recordingMailer) SendMail(toEmail, subject, body string) error {
	mail := sentMail{To: toEmail, Subject: subject, Body: body}
	r.mu.Lock()
	r.mails = append(r.mails, mail)
	r.mu.Unlock()
	r.ch <- mail
	return nil
}

func (r *recordingMailer) waitFor(n int) []sentMail {
	collected := make([]sentMail, 0, n)
	timeout := time.After(2 * time.Second)
	for len(collected) < n {
		select {
		case mail := <-r.ch:
			collected = append(collected, mail)
		case <-timeout:
			return collected
		}
	}
	return collected
}
