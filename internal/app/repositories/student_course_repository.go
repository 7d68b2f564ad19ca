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
	"github.com/ademsari/coursehub/internal/pkg/apperrors"
	"github.com/ademsari/coursehub/internal/pkg/dberrors"
	"github.com/ademsari/coursehub/internal/pkg/logger"
)

// StudentCourseRepository handles student result database operations
type StudentCourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentCourseRepository creates a new StudentCourseRepository
func NewStudentCourseRepository(db *pgxpool.Pool) *StudentCourseRepository {
	return &StudentCourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a student result. date_enrolled is set here and never
// updated afterwards.
func (r *StudentCourseRepository) Create(ctx context.Context, sc *models.StudentCourse) error {
	sc.DateEnrolled = time.Now()

	sql, args, err := r.sb.Insert("student_courses").
		Columns("student_id", "course_id", "marks", "date_enrolled").
		Values(sc.StudentID, sc.CourseID, sc.Marks, sc.DateEnrolled).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create student course query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&sc.ID); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrStudentCourseExists
		}
		if dberrors.IsCheckViolation(err) {
			return apperrors.NewValidationError("marks must be between 0 and 100")
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Msg("Error executing create student course query")
		return fmt.Errorf("error creating student course: %w", err)
	}

	return nil
}

// GetByID retrieves a student result by ID
func (r *StudentCourseRepository) GetByID(ctx context.Context, id int64) (*models.StudentCourse, error) {
	sql, args, err := r.sb.Select("id", "student_id", "course_id", "marks", "date_enrolled").
		From("student_courses").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student course query: %w", err)
	}

	sc := &models.StudentCourse{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&sc.ID, &sc.StudentID, &sc.CourseID, &sc.Marks, &sc.DateEnrolled)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentCourseNotFound
		}
		logger.Error().Err(err).Int64("studentCourseID", id).Msg("Error scanning student course row")
		return nil, fmt.Errorf("error getting student course by ID: %w", err)
	}

	return sc, nil
}

// GetAll retrieves a page of student results plus the total row count
func (r *StudentCourseRepository) GetAll(ctx context.Context, offset uint64, limit int) ([]*models.StudentCourse, int64, error) {
	sql, args, err := r.sb.Select("id", "student_id", "course_id", "marks", "date_enrolled").
		From("student_courses").
		OrderBy("id ASC").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list student courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list student courses query")
		return nil, 0, fmt.Errorf("error querying student courses: %w", err)
	}
	defer rows.Close()

	studentCourses := []*models.StudentCourse{}
	for rows.Next() {
		sc := &models.StudentCourse{}
		if err := rows.Scan(&sc.ID, &sc.StudentID, &sc.CourseID, &sc.Marks, &sc.DateEnrolled); err != nil {
			return nil, 0, fmt.Errorf("error scanning student course row: %w", err)
		}
		studentCourses = append(studentCourses, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating student course rows: %w", err)
	}

	countSQL, countArgs, err := r.sb.Select("COUNT(*)").From("student_courses").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count student courses query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting student courses: %w", err)
	}

	return studentCourses, total, nil
}

// Delete removes a student result by ID
func (r *StudentCourseRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("student_courses").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete student course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentCourseID", id).Msg("Error executing delete student course query")
		return fmt.Errorf("error deleting student course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentCourseNotFound
	}

	return nil
}
