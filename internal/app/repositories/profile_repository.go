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

// ProfileRepository handles profile database operations
type ProfileRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a standalone profile for a person that lacks one
func (r *ProfileRepository) Create(ctx context.Context, profile *models.Profile) error {
	sql, args, err := r.sb.Insert("profiles").
		Columns("person_id", "bio").
		Values(profile.PersonID, profile.Bio).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create profile query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&profile.ID); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrProfileAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrPersonNotFound
		}
		logger.Error().Err(err).Msg("Error executing create profile query")
		return fmt.Errorf("error creating profile: %w", err)
	}

	return nil
}

// GetByID retrieves a profile by ID
func (r *ProfileRepository) GetByID(ctx context.Context, id int64) (*models.Profile, error) {
	sql, args, err := r.sb.Select("id", "person_id", "bio").
		From("profiles").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get profile query: %w", err)
	}

	profile := &models.Profile{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&profile.ID, &profile.PersonID, &profile.Bio)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfileNotFound
		}
		logger.Error().Err(err).Int64("profileID", id).Msg("Error scanning profile row")
		return nil, fmt.Errorf("error getting profile by ID: %w", err)
	}

	return profile, nil
}

// GetByPersonID retrieves the profile of a given person
func (r *ProfileRepository) GetByPersonID(ctx context.Context, personID int64) (*models.Profile, error) {
	sql, args, err := r.sb.Select("id", "person_id", "bio").
		From("profiles").
		Where(squirrel.Eq{"person_id": personID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get profile by person query: %w", err)
	}

	profile := &models.Profile{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&profile.ID, &profile.PersonID, &profile.Bio)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("error getting profile by person ID: %w", err)
	}

	return profile, nil
}

// GetAll retrieves a page of profiles plus the total row count
func (r *ProfileRepository) GetAll(ctx context.Context, offset uint64, limit int) ([]*models.Profile, int64, error) {
	sql, args, err := r.sb.Select("id", "person_id", "bio").
		From("profiles").
		OrderBy("id ASC").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list profiles query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list profiles query")
		return nil, 0, fmt.Errorf("error querying profiles: %w", err)
	}
	defer rows.Close()

	profiles := []*models.Profile{}
	for rows.Next() {
		profile := &models.Profile{}
		if err := rows.Scan(&profile.ID, &profile.PersonID, &profile.Bio); err != nil {
			return nil, 0, fmt.Errorf("error scanning profile row: %w", err)
		}
		profiles = append(profiles, profile)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating profile rows: %w", err)
	}

	countSQL, countArgs, err := r.sb.Select("COUNT(*)").From("profiles").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count profiles query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting profiles: %w", err)
	}

	return profiles, total, nil
}

// Update re-persists a profile's bio
func (r *ProfileRepository) Update(ctx context.Context, profile *models.Profile) error {
	sql, args, err := r.sb.Update("profiles").
		Set("bio", profile.Bio).
		Where(squirrel.Eq{"id": profile.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update profile query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("profileID", profile.ID).Msg("Error executing update profile query")
		return fmt.Errorf("error updating profile: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProfileNotFound
	}

	return nil
}

// Delete removes a profile by ID
func (r *ProfileRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("profiles").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete profile query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("profileID", id).Msg("Error executing delete profile query")
		return fmt.Errorf("error deleting profile: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProfileNotFound
	}

	return nil
}
