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

// ModuleRepository handles course module database operations
type ModuleRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewModuleRepository creates a new ModuleRepository
func NewModuleRepository(db *pgxpool.Pool) *ModuleRepository {
	return &ModuleRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new module
func (r *ModuleRepository) Create(ctx context.Context, module *models.Module) error {
	sql, args, err := r.sb.Insert("modules").
		Columns("course_id", "name", "description").
		Values(module.CourseID, module.Name, module.Description).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create module query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&module.ID); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Msg("Error executing create module query")
		return fmt.Errorf("error creating module: %w", err)
	}

	return nil
}

// GetByID retrieves a module by ID
func (r *ModuleRepository) GetByID(ctx context.Context, id int64) (*models.Module, error) {
	sql, args, err := r.sb.Select("id", "course_id", "name", "description").
		From("modules").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get module query: %w", err)
	}

	module := &models.Module{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&module.ID, &module.CourseID, &module.Name, &module.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrModuleNotFound
		}
		logger.Error().Err(err).Int64("moduleID", id).Msg("Error scanning module row")
		return nil, fmt.Errorf("error getting module by ID: %w", err)
	}

	return module, nil
}

// GetAll retrieves a page of modules plus the total row count
func (r *ModuleRepository) GetAll(ctx context.Context, offset uint64, limit int) ([]*models.Module, int64, error) {
	sql, args, err := r.sb.Select("id", "course_id", "name", "description").
		From("modules").
		OrderBy("id ASC").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list modules query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list modules query")
		return nil, 0, fmt.Errorf("error querying modules: %w", err)
	}
	defer rows.Close()

	modules := []*models.Module{}
	for rows.Next() {
		module := &models.Module{}
		if err := rows.Scan(&module.ID, &module.CourseID, &module.Name, &module.Description); err != nil {
			return nil, 0, fmt.Errorf("error scanning module row: %w", err)
		}
		modules = append(modules, module)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating module rows: %w", err)
	}

	countSQL, countArgs, err := r.sb.Select("COUNT(*)").From("modules").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count modules query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting modules: %w", err)
	}

	return modules, total, nil
}

// Delete removes a module by ID
func (r *ModuleRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("modules").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete module query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("moduleID", id).Msg("Error executing delete module query")
		return fmt.Errorf("error deleting module: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrModuleNotFound
	}

	return nil
}
