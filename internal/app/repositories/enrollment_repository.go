package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ademsari/coursehub/internal/app/models"
	"github.com/ademsari/coursehub/internal/db"
	"github.com/ademsari/coursehub/internal/pkg/apperrors"
	"github.com/ademsari/coursehub/internal/pkg/dberrors"
	"github.com/ademsari/coursehub/internal/pkg/logger"
)

// EnrollmentRepository handles enrollment database operations
type EnrollmentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts an enrollment after verifying inside the same
// transaction that the student is not already enrolled. The unique
// constraint on (student_id, course_id) remains the final arbiter; a
// violation slipping past the pre-check maps to the same error.
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	enrollment.EnrollmentDate = time.Now()

	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		checkSQL, checkArgs, err := r.sb.Select("1").
			From("enrollments").
			Where(squirrel.Eq{
				"student_id": enrollment.StudentID,
				"course_id":  enrollment.CourseID,
			}).
			Prefix("SELECT EXISTS (").Suffix(")").
			Limit(1).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build enrollment existence query: %w", err)
		}

		var exists bool
		if err := tx.QueryRow(ctx, checkSQL, checkArgs...).Scan(&exists); err != nil {
			return fmt.Errorf("error checking enrollment existence: %w", err)
		}
		if exists {
			return apperrors.ErrAlreadyEnrolled
		}

		sql, args, err := r.sb.Insert("enrollments").
			Columns("student_id", "course_id", "enrollment_date").
			Values(enrollment.StudentID, enrollment.CourseID, enrollment.EnrollmentDate).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create enrollment query: %w", err)
		}

		if err := tx.QueryRow(ctx, sql, args...).Scan(&enrollment.ID); err != nil {
			if dberrors.IsUniqueViolation(err) {
				return apperrors.ErrAlreadyEnrolled
			}
			if dberrors.IsForeignKeyViolation(err) {
				return apperrors.ErrStudentNotFound
			}
			logger.Error().Err(err).Msg("Error executing create enrollment query")
			return fmt.Errorf("error creating enrollment: %w", err)
		}

		return nil
	})
}

// GetByID retrieves an enrollment by ID
func (r *EnrollmentRepository) GetByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	sql, args, err := r.sb.Select("id", "student_id", "course_id", "enrollment_date").
		From("enrollments").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get enrollment query: %w", err)
	}

	enrollment := &models.Enrollment{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&enrollment.ID, &enrollment.StudentID, &enrollment.CourseID, &enrollment.EnrollmentDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEnrollmentNotFound
		}
		logger.Error().Err(err).Int64("enrollmentID", id).Msg("Error scanning enrollment row")
		return nil, fmt.Errorf("error getting enrollment by ID: %w", err)
	}

	return enrollment, nil
}

// GetAll retrieves a page of enrollments plus the total row count
func (r *EnrollmentRepository) GetAll(ctx context.Context, offset uint64, limit int) ([]*models.Enrollment, int64, error) {
	sql, args, err := r.sb.Select("id", "student_id", "course_id", "enrollment_date").
		From("enrollments").
		OrderBy("id ASC").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list enrollments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list enrollments query")
		return nil, 0, fmt.Errorf("error querying enrollments: %w", err)
	}
	defer rows.Close()

	enrollments := []*models.Enrollment{}
	for rows.Next() {
		enrollment := &models.Enrollment{}
		if err := rows.Scan(&enrollment.ID, &enrollment.StudentID, &enrollment.CourseID, &enrollment.EnrollmentDate); err != nil {
			return nil, 0, fmt.Errorf("error scanning enrollment row: %w", err)
		}
		enrollments = append(enrollments, enrollment)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating enrollment rows: %w", err)
	}

	countSQL, countArgs, err := r.sb.Select("COUNT(*)").From("enrollments").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count enrollments query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting enrollments: %w", err)
	}

	return enrollments, total, nil
}

// GetRecent retrieves enrollments from the last 30 days relative to their
// own enrollment date. The self-referencing comparison matches every row;
// it mirrors the product's definition of "recent" exactly.
func (r *EnrollmentRepository) GetRecent(ctx context.Context) ([]*models.Enrollment, error) {
	sql, args, err := r.sb.Select("id", "student_id", "course_id", "enrollment_date").
		From("enrollments").
		Where("enrollment_date >= enrollment_date - INTERVAL '30 days'").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build recent enrollments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing recent enrollments query")
		return nil, fmt.Errorf("error querying recent enrollments: %w", err)
	}
	defer rows.Close()

	enrollments := []*models.Enrollment{}
	for rows.Next() {
		enrollment := &models.Enrollment{}
		if err := rows.Scan(&enrollment.ID, &enrollment.StudentID, &enrollment.CourseID, &enrollment.EnrollmentDate); err != nil {
			return nil, fmt.Errorf("error scanning enrollment row: %w", err)
		}
		enrollments = append(enrollments, enrollment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating enrollment rows: %w", err)
	}

	return enrollments, nil
}

// Update re-persists an enrollment's mutable fields
func (r *EnrollmentRepository) Update(ctx context.Context, enrollment *models.Enrollment) error {
	sql, args, err := r.sb.Update("enrollments").
		SetMap(map[string]interface{}{
			"student_id":      enrollment.StudentID,
			"course_id":       enrollment.CourseID,
			"enrollment_date": enrollment.EnrollmentDate,
		}).
		Where(squirrel.Eq{"id": enrollment.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update enrollment query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrAlreadyEnrolled
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Int64("enrollmentID", enrollment.ID).Msg("Error executing update enrollment query")
		return fmt.Errorf("error updating enrollment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}

	return nil
}

// Delete removes an enrollment by ID
func (r *EnrollmentRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("enrollments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete enrollment query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("enrollmentID", id).Msg("Error executing delete enrollment query")
		return fmt.Errorf("error deleting enrollment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}

	return nil
}
