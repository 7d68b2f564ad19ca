package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ademsari/coursehub/internal/app/models"
	"github.com/ademsari/coursehub/internal/pkg/apperrors"
	"github.com/ademsari/coursehub/internal/pkg/dberrors"
	"github.com/ademsari/coursehub/internal/pkg/logger"
)

// MarksStats holds the aggregates over a student's marks. Pointers stay
// nil when the student has no recorded results.
type MarksStats struct {
	Average *float64
	Min     *int
	Max     *int
	Sum     *int
}

// StudentRepository handles student database operations
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new student role row
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	sql, args, err := r.sb.Insert("students").
		Columns("person_id", "registration_number").
		Values(student.PersonID, student.RegistrationNumber).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create student query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&student.ID); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrRoleConflict
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrPersonNotFound
		}
		logger.Error().Err(err).Msg("Error executing create student query")
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	sql, args, err := r.sb.Select("id", "person_id", "registration_number").
		From("students").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student := &models.Student{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&student.ID, &student.PersonID, &student.RegistrationNumber)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Int64("studentID", id).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student by ID: %w", err)
	}

	return student, nil
}

// GetByIDWithPerson retrieves a student joined with its person row
func (r *StudentRepository) GetByIDWithPerson(ctx context.Context, id int64) (*models.Student, error) {
	sql, args, err := r.sb.Select(
		"s.id", "s.person_id", "s.registration_number",
		"p.id", "p.email", "p.first_name", "p.last_name").
		From("students s").
		Join("persons p ON p.id = s.person_id").
		Where(squirrel.Eq{"s.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student with person query: %w", err)
	}

	student := &models.Student{Person: &models.Person{}}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&student.ID, &student.PersonID, &student.RegistrationNumber,
		&student.Person.ID, &student.Person.Email,
		&student.Person.FirstName, &student.Person.LastName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error getting student with person: %w", err)
	}

	return student, nil
}

// GetAll retrieves a page of students plus the total row count
func (r *StudentRepository) GetAll(ctx context.Context, offset uint64, limit int) ([]*models.Student, int64, error) {
	sql, args, err := r.sb.Select("id", "person_id", "registration_number").
		From("students").
		OrderBy("id ASC").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list students query")
		return nil, 0, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		student := &models.Student{}
		if err := rows.Scan(&student.ID, &student.PersonID, &student.RegistrationNumber); err != nil {
			return nil, 0, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating student rows: %w", err)
	}

	countSQL, countArgs, err := r.sb.Select("COUNT(*)").From("students").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count students query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting students: %w", err)
	}

	return students, total, nil
}

// GetAllWithPersons retrieves every student joined with its person row.
// Course lifecycle broadcasts use this to reach the whole student body.
func (r *StudentRepository) GetAllWithPersons(ctx context.Context) ([]*models.Student, error) {
	sql, args, err := r.sb.Select(
		"s.id", "s.person_id", "s.registration_number",
		"p.id", "p.email", "p.first_name", "p.last_name").
		From("students s").
		Join("persons p ON p.id = s.person_id").
		OrderBy("s.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list students with persons query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list students with persons query")
		return nil, fmt.Errorf("error querying students with persons: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		student := &models.Student{Person: &models.Person{}}
		if err := rows.Scan(
			&student.ID, &student.PersonID, &student.RegistrationNumber,
			&student.Person.ID, &student.Person.Email,
			&student.Person.FirstName, &student.Person.LastName); err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// GetMarksStats computes avg/min/max/sum over a student's marks
func (r *StudentRepository) GetMarksStats(ctx context.Context, studentID int64) (*MarksStats, error) {
	sql, args, err := r.sb.Select(
		"AVG(marks)", "MIN(marks)", "MAX(marks)", "SUM(marks)").
		From("student_courses").
		Where(squirrel.Eq{"student_id": studentID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build marks stats query: %w", err)
	}

	stats := &MarksStats{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&stats.Average, &stats.Min, &stats.Max, &stats.Sum)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error computing marks stats")
		return nil, fmt.Errorf("error computing marks stats: %w", err)
	}

	return stats, nil
}

// GetByMinimumMarks retrieves the distinct students with at least one
// result at or above the given marks threshold.
func (r *StudentRepository) GetByMinimumMarks(ctx context.Context, minMarks int) ([]*models.Student, error) {
	sql, args, err := r.sb.Select("DISTINCT s.id", "s.person_id", "s.registration_number").
		From("students s").
		Join("student_courses sc ON sc.student_id = s.id").
		Where(squirrel.GtOrEq{"sc.marks": minMarks}).
		OrderBy("s.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build minimum marks query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int("minMarks", minMarks).Msg("Error executing minimum marks query")
		return nil, fmt.Errorf("error querying students by marks: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		student := &models.Student{}
		if err := rows.Scan(&student.ID, &student.PersonID, &student.RegistrationNumber); err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// GetRecent retrieves students whose person row was created in the last
// 30 days relative to its own creation time. The self-referencing
// comparison is the product's definition of "recent" and matches every
// row; it is preserved as-is.
func (r *StudentRepository) GetRecent(ctx context.Context) ([]*models.Student, error) {
	sql, args, err := r.sb.Select("s.id", "s.person_id", "s.registration_number").
		From("students s").
		Join("persons p ON p.id = s.person_id").
		Where("p.created_at >= p.created_at - INTERVAL '30 days'").
		OrderBy("s.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build recent students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing recent students query")
		return nil, fmt.Errorf("error querying recent students: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		student := &models.Student{}
		if err := rows.Scan(&student.ID, &student.PersonID, &student.RegistrationNumber); err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// Update re-persists a student's mutable fields
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	sql, args, err := r.sb.Update("students").
		Set("registration_number", student.RegistrationNumber).
		Where(squirrel.Eq{"id": student.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", student.ID).Msg("Error executing update student query")
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Delete removes a student; enrollments, results and reviews cascade
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("students").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", id).Msg("Error executing delete student query")
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}
