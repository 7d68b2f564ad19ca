package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ademsari/coursehub/internal/app/models"
	"github.com/ademsari/coursehub/internal/db"
	"github.com/ademsari/coursehub/internal/pkg/apperrors"
	"github.com/ademsari/coursehub/internal/pkg/dberrors"
	"github.com/ademsari/coursehub/internal/pkg/logger"
)

// ReviewRepository handles review database operations
type ReviewRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewReviewRepository creates a new ReviewRepository
func NewReviewRepository(db *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a review. Inside one transaction it verifies that the
// student is enrolled in the course and has not reviewed it yet. The
// unique constraint on (course_id, student_id) and the rating CHECK
// remain the final arbiters.
func (r *ReviewRepository) Create(ctx context.Context, review *models.Review) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		enrolledSQL, enrolledArgs, err := r.sb.Select("1").
			From("enrollments").
			Where(squirrel.Eq{
				"student_id": review.StudentID,
				"course_id":  review.CourseID,
			}).
			Prefix("SELECT EXISTS (").Suffix(")").
			Limit(1).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build enrollment check query: %w", err)
		}

		var enrolled bool
		if err := tx.QueryRow(ctx, enrolledSQL, enrolledArgs...).Scan(&enrolled); err != nil {
			return fmt.Errorf("error checking enrollment for review: %w", err)
		}
		if !enrolled {
			return apperrors.ErrEnrollmentRequired
		}

		dupSQL, dupArgs, err := r.sb.Select("1").
			From("reviews").
			Where(squirrel.Eq{
				"student_id": review.StudentID,
				"course_id":  review.CourseID,
			}).
			Prefix("SELECT EXISTS (").Suffix(")").
			Limit(1).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build duplicate review query: %w", err)
		}

		var duplicate bool
		if err := tx.QueryRow(ctx, dupSQL, dupArgs...).Scan(&duplicate); err != nil {
			return fmt.Errorf("error checking duplicate review: %w", err)
		}
		if duplicate {
			return apperrors.ErrReviewAlreadyExists
		}

		sql, args, err := r.sb.Insert("reviews").
			Columns("course_id", "student_id", "rating", "comment").
			Values(review.CourseID, review.StudentID, review.Rating, review.Comment).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create review query: %w", err)
		}

		if err := tx.QueryRow(ctx, sql, args...).Scan(&review.ID); err != nil {
			if dberrors.IsUniqueViolation(err) {
				return apperrors.ErrReviewAlreadyExists
			}
			if dberrors.IsCheckViolation(err) {
				return apperrors.NewValidationError("rating must be between 1 and 5")
			}
			if dberrors.IsForeignKeyViolation(err) {
				return apperrors.ErrCourseNotFound
			}
			logger.Error().Err(err).Msg("Error executing create review query")
			return fmt.Errorf("error creating review: %w", err)
		}

		return nil
	})
}

// GetByID retrieves a review by ID
func (r *ReviewRepository) GetByID(ctx context.Context, id int64) (*models.Review, error) {
	sql, args, err := r.sb.Select("id", "course_id", "student_id", "rating", "comment").
		From("reviews").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get review query: %w", err)
	}

	review := &models.Review{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&review.ID, &review.CourseID, &review.StudentID, &review.Rating, &review.Comment)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrReviewNotFound
		}
		logger.Error().Err(err).Int64("reviewID", id).Msg("Error scanning review row")
		return nil, fmt.Errorf("error getting review by ID: %w", err)
	}

	return review, nil
}

// GetAll retrieves a page of reviews plus the total row count
func (r *ReviewRepository) GetAll(ctx context.Context, offset uint64, limit int) ([]*models.Review, int64, error) {
	sql, args, err := r.sb.Select("id", "course_id", "student_id", "rating", "comment").
		From("reviews").
		OrderBy("id ASC").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list reviews query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list reviews query")
		return nil, 0, fmt.Errorf("error querying reviews: %w", err)
	}
	defer rows.Close()

	reviews := []*models.Review{}
	for rows.Next() {
		review := &models.Review{}
		if err := rows.Scan(&review.ID, &review.CourseID, &review.StudentID, &review.Rating, &review.Comment); err != nil {
			return nil, 0, fmt.Errorf("error scanning review row: %w", err)
		}
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating review rows: %w", err)
	}

	countSQL, countArgs, err := r.sb.Select("COUNT(*)").From("reviews").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count reviews query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting reviews: %w", err)
	}

	return reviews, total, nil
}

// GetRecent retrieves reviews of courses created in the last 30 days
// relative to the course's own creation time. Matches every review; the
// self-referencing comparison mirrors the product's definition exactly.
func (r *ReviewRepository) GetRecent(ctx context.Context) ([]*models.Review, error) {
	sql, args, err := r.sb.Select("r.id", "r.course_id", "r.student_id", "r.rating", "r.comment").
		From("reviews r").
		Join("courses c ON c.id = r.course_id").
		Where("c.created_at >= c.created_at - INTERVAL '30 days'").
		OrderBy("r.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build recent reviews query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing recent reviews query")
		return nil, fmt.Errorf("error querying recent reviews: %w", err)
	}
	defer rows.Close()

	reviews := []*models.Review{}
	for rows.Next() {
		review := &models.Review{}
		if err := rows.Scan(&review.ID, &review.CourseID, &review.StudentID, &review.Rating, &review.Comment); err != nil {
			return nil, fmt.Errorf("error scanning review row: %w", err)
		}
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating review rows: %w", err)
	}

	return reviews, nil
}

// GetRatingStats computes avg/min/max/sum over all review ratings
func (r *ReviewRepository) GetRatingStats(ctx context.Context) (*RatingStats, error) {
	sql, args, err := r.sb.Select(
		"AVG(rating)", "MIN(rating)", "MAX(rating)", "SUM(rating)").
		From("reviews").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build review stats query: %w", err)
	}

	stats := &RatingStats{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&stats.Average, &stats.Min, &stats.Max, &stats.Sum)
	if err != nil {
		logger.Error().Err(err).Msg("Error computing review rating stats")
		return nil, fmt.Errorf("error computing review rating stats: %w", err)
	}

	return stats, nil
}

// Update re-persists a review's mutable fields
func (r *ReviewRepository) Update(ctx context.Context, review *models.Review) error {
	sql, args, err := r.sb.Update("reviews").
		SetMap(map[string]interface{}{
			"rating":  review.Rating,
			"comment": review.Comment,
		}).
		Where(squirrel.Eq{"id": review.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update review query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsCheckViolation(err) {
			return apperrors.NewValidationError("rating must be between 1 and 5")
		}
		logger.Error().Err(err).Int64("reviewID", review.ID).Msg("Error executing update review query")
		return fmt.Errorf("error updating review: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrReviewNotFound
	}

	return nil
}

// Delete removes a review by ID
func (r *ReviewRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("reviews").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete review query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("reviewID", id).Msg("Error executing delete review query")
		return fmt.Errorf("error deleting review: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrReviewNotFound
	}

	return nil
}
