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

// InstructorRepository handles instructor database operations
type InstructorRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewInstructorRepository creates a new InstructorRepository
func NewInstructorRepository(db *pgxpool.Pool) *InstructorRepository {
	return &InstructorRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new instructor role row
func (r *InstructorRepository) Create(ctx context.Context, instructor *models.Instructor) error {
	sql, args, err := r.sb.Insert("instructors").
		Columns("person_id", "bio", "salary").
		Values(instructor.PersonID, instructor.Bio, instructor.Salary).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create instructor query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&instructor.ID); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrRoleConflict
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrPersonNotFound
		}
		logger.Error().Err(err).Msg("Error executing create instructor query")
		return fmt.Errorf("error creating instructor: %w", err)
	}

	return nil
}

// GetByID retrieves an instructor by ID
func (r *InstructorRepository) GetByID(ctx context.Context, id int64) (*models.Instructor, error) {
	sql, args, err := r.sb.Select("id", "person_id", "bio", "salary").
		From("instructors").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get instructor query: %w", err)
	}

	instructor := &models.Instructor{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&instructor.ID, &instructor.PersonID, &instructor.Bio, &instructor.Salary)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInstructorNotFound
		}
		logger.Error().Err(err).Int64("instructorID", id).Msg("Error scanning instructor row")
		return nil, fmt.Errorf("error getting instructor by ID: %w", err)
	}

	return instructor, nil
}

// GetByIDWithPerson retrieves an instructor joined with its person row.
// Used when a notification needs the instructor's email address.
func (r *InstructorRepository) GetByIDWithPerson(ctx context.Context, id int64) (*models.Instructor, error) {
	sql, args, err := r.sb.Select(
		"i.id", "i.person_id", "i.bio", "i.salary",
		"p.id", "p.email", "p.first_name", "p.last_name").
		From("instructors i").
		Join("persons p ON p.id = i.person_id").
		Where(squirrel.Eq{"i.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get instructor with person query: %w", err)
	}

	instructor := &models.Instructor{Person: &models.Person{}}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&instructor.ID, &instructor.PersonID, &instructor.Bio, &instructor.Salary,
		&instructor.Person.ID, &instructor.Person.Email,
		&instructor.Person.FirstName, &instructor.Person.LastName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInstructorNotFound
		}
		return nil, fmt.Errorf("error getting instructor with person: %w", err)
	}

	return instructor, nil
}

// GetAll retrieves a page of instructors plus the total row count
func (r *InstructorRepository) GetAll(ctx context.Context, offset uint64, limit int) ([]*models.Instructor, int64, error) {
	sql, args, err := r.sb.Select("id", "person_id", "bio", "salary").
		From("instructors").
		OrderBy("id ASC").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list instructors query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list instructors query")
		return nil, 0, fmt.Errorf("error querying instructors: %w", err)
	}
	defer rows.Close()

	instructors := []*models.Instructor{}
	for rows.Next() {
		instructor := &models.Instructor{}
		if err := rows.Scan(&instructor.ID, &instructor.PersonID, &instructor.Bio, &instructor.Salary); err != nil {
			return nil, 0, fmt.Errorf("error scanning instructor row: %w", err)
		}
		instructors = append(instructors, instructor)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating instructor rows: %w", err)
	}

	countSQL, countArgs, err := r.sb.Select("COUNT(*)").From("instructors").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count instructors query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting instructors: %w", err)
	}

	return instructors, total, nil
}

// GetHighSalary retrieves instructors whose salary is at least 1.2 times
// their own salary. The comparison is kept exactly as the product defines
// it; for positive salaries it matches nothing.
func (r *InstructorRepository) GetHighSalary(ctx context.Context) ([]*models.Instructor, error) {
	sql, args, err := r.sb.Select("id", "person_id", "bio", "salary").
		From("instructors").
		Where("salary >= salary * 1.2").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build high salary query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing high salary query")
		return nil, fmt.Errorf("error querying high salary instructors: %w", err)
	}
	defer rows.Close()

	instructors := []*models.Instructor{}
	for rows.Next() {
		instructor := &models.Instructor{}
		if err := rows.Scan(&instructor.ID, &instructor.PersonID, &instructor.Bio, &instructor.Salary); err != nil {
			return nil, fmt.Errorf("error scanning instructor row: %w", err)
		}
		instructors = append(instructors, instructor)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating instructor rows: %w", err)
	}

	return instructors, nil
}

// Update re-persists an instructor's mutable fields
func (r *InstructorRepository) Update(ctx context.Context, instructor *models.Instructor) error {
	sql, args, err := r.sb.Update("instructors").
		SetMap(map[string]interface{}{
			"bio":    instructor.Bio,
			"salary": instructor.Salary,
		}).
		Where(squirrel.Eq{"id": instructor.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update instructor query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("instructorID", instructor.ID).Msg("Error executing update instructor query")
		return fmt.Errorf("error updating instructor: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrInstructorNotFound
	}

	return nil
}

// Delete removes an instructor; their courses cascade
func (r *InstructorRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("instructors").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete instructor query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("instructorID", id).Msg("Error executing delete instructor query")
		return fmt.Errorf("error deleting instructor: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrInstructorNotFound
	}

	return nil
}
