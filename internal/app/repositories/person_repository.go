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

var personColumns = []string{
	"id", "email", "password", "first_name", "last_name",
	"phone_number", "address", "is_active", "is_admin",
	"created_at", "updated_at",
}

// PersonRepository handles person database operations
type PersonRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPersonRepository creates a new PersonRepository
func NewPersonRepository(db *pgxpool.Pool) *PersonRepository {
	return &PersonRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanPerson(row pgx.Row) (*models.Person, error) {
	person := &models.Person{}
	err := row.Scan(
		&person.ID, &person.Email, &person.Password, &person.FirstName,
		&person.LastName, &person.PhoneNumber, &person.Address,
		&person.IsActive, &person.IsAdmin, &person.CreatedAt, &person.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return person, nil
}

// Create inserts the person and their profile in one transaction.
// Every person has exactly one profile from the moment it exists.
func (r *PersonRepository) Create(ctx context.Context, person *models.Person, profile *models.Profile) error {
	now := time.Now()
	person.CreatedAt = now
	person.UpdatedAt = now

	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		sql, args, err := r.sb.Insert("persons").
			Columns("email", "password", "first_name", "last_name",
				"phone_number", "address", "is_active", "is_admin",
				"created_at", "updated_at").
			Values(person.Email, person.Password, person.FirstName, person.LastName,
				person.PhoneNumber, person.Address, person.IsActive, person.IsAdmin,
				person.CreatedAt, person.UpdatedAt).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create person query: %w", err)
		}

		if err := tx.QueryRow(ctx, sql, args...).Scan(&person.ID); err != nil {
			if dberrors.IsUniqueViolation(err) {
				return apperrors.ErrEmailAlreadyExists
			}
			logger.Error().Err(err).Msg("Error executing create person query")
			return fmt.Errorf("error creating person: %w", err)
		}

		profile.PersonID = person.ID
		sql, args, err = r.sb.Insert("profiles").
			Columns("person_id", "bio").
			Values(profile.PersonID, profile.Bio).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create profile query: %w", err)
		}

		if err := tx.QueryRow(ctx, sql, args...).Scan(&profile.ID); err != nil {
			if dberrors.IsUniqueViolation(err) {
				return apperrors.ErrProfileAlreadyExists
			}
			logger.Error().Err(err).Msg("Error executing create profile query")
			return fmt.Errorf("error creating profile: %w", err)
		}

		return nil
	})
}

// GetByID retrieves a person by ID
func (r *PersonRepository) GetByID(ctx context.Context, id int64) (*models.Person, error) {
	sql, args, err := r.sb.Select(personColumns...).
		From("persons").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get person query: %w", err)
	}

	person, err := scanPerson(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPersonNotFound
		}
		logger.Error().Err(err).Int64("personID", id).Msg("Error scanning person row")
		return nil, fmt.Errorf("error getting person by ID: %w", err)
	}

	return person, nil
}

// GetByEmail retrieves a person by email (email is stored lower-cased)
func (r *PersonRepository) GetByEmail(ctx context.Context, email string) (*models.Person, error) {
	sql, args, err := r.sb.Select(personColumns...).
		From("persons").
		Where(squirrel.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get person by email query: %w", err)
	}

	person, err := scanPerson(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPersonNotFound
		}
		logger.Error().Err(err).Str("email", email).Msg("Error scanning person row")
		return nil, fmt.Errorf("error getting person by email: %w", err)
	}

	return person, nil
}

// GetAll retrieves a page of persons plus the total row count
func (r *PersonRepository) GetAll(ctx context.Context, offset uint64, limit int) ([]*models.Person, int64, error) {
	sql, args, err := r.sb.Select(personColumns...).
		From("persons").
		OrderBy("id ASC").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list persons query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list persons query")
		return nil, 0, fmt.Errorf("error querying persons: %w", err)
	}
	defer rows.Close()

	persons := []*models.Person{}
	for rows.Next() {
		person, err := scanPerson(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning person row: %w", err)
		}
		persons = append(persons, person)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating person rows: %w", err)
	}

	total, err := r.countAll(ctx)
	if err != nil {
		return nil, 0, err
	}

	return persons, total, nil
}

func (r *PersonRepository) countAll(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").From("persons").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count persons query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("error counting persons: %w", err)
	}
	return total, nil
}

// Update re-persists the mutable fields of a person
func (r *PersonRepository) Update(ctx context.Context, person *models.Person) error {
	person.UpdatedAt = time.Now()

	sql, args, err := r.sb.Update("persons").
		SetMap(map[string]interface{}{
			"email":        person.Email,
			"first_name":   person.FirstName,
			"last_name":    person.LastName,
			"phone_number": person.PhoneNumber,
			"address":      person.Address,
			"is_active":    person.IsActive,
			"is_admin":     person.IsAdmin,
			"updated_at":   person.UpdatedAt,
		}).
		Where(squirrel.Eq{"id": person.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update person query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Int64("personID", person.ID).Msg("Error executing update person query")
		return fmt.Errorf("error updating person: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPersonNotFound
	}

	return nil
}

// Delete removes a person; profile and role rows cascade
func (r *PersonRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("persons").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete person query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("personID", id).Msg("Error executing delete person query")
		return fmt.Errorf("error deleting person: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPersonNotFound
	}

	return nil
}

// ExistsByEmail checks whether a person with the given email exists
func (r *PersonRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("persons").
		Where(squirrel.Eq{"email": email}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build person existence query: %w", err)
	}

	var exists bool
	err = r.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return false, fmt.Errorf("error checking person existence: %w", err)
	}

	return exists, nil
}

// HasRole reports whether the person already holds the instructor or the
// student role. Used to keep the two roles mutually exclusive.
func (r *PersonRepository) HasRole(ctx context.Context, personID int64) (bool, error) {
	query := `SELECT EXISTS (
		SELECT 1 FROM instructors WHERE person_id = $1
		UNION
		SELECT 1 FROM students WHERE person_id = $1
	)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, personID).Scan(&exists); err != nil {
		logger.Error().Err(err).Int64("personID", personID).Msg("Error checking person role")
		return false, fmt.Errorf("error checking person role: %w", err)
	}

	return exists, nil
}
