package seed

import (
	"context"
	"errors"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	appModels "github.com/ademsari/coursehub/internal/app/models"
	appRepos "github.com/ademsari/coursehub/internal/app/repositories"
	"github.com/ademsari/coursehub/internal/pkg/apperrors"
)

const (
	defaultAdminEmail = "admin@coursehub.app"
	// Overridden by ADMIN_PASSWORD; the default is only suitable for
	// local development.
	defaultAdminPassword = "changeme"
)

// CreateDefaultData creates the default admin account if it does not exist.
// Every write endpoint requires an admin, so a fresh database needs one to
// be usable at all.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	personRepo := appRepos.NewPersonRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default admin account...")

	exists, err := personRepo.ExistsByEmail(ctx, defaultAdminEmail)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking for default admin account")
		return err
	}
	if exists {
		lgr.Info().Str("email", defaultAdminEmail).Msg("Default admin account already exists")
		return nil
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = defaultAdminPassword
		lgr.Warn().Msg("ADMIN_PASSWORD not set, using default admin password")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing default admin password")
		return err
	}

	admin := &appModels.Person{
		FirstName: "CourseHub",
		LastName:  "Admin",
		Email:     defaultAdminEmail,
		Password:  string(hashed),
		IsActive:  true,
		IsAdmin:   true,
	}
	profile := &appModels.Profile{Bio: "Default administrator account"}

	if err := personRepo.Create(ctx, admin, profile); err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil
		}
		lgr.Error().Err(err).Msg("Error creating default admin account")
		return err
	}

	lgr.Info().Str("email", defaultAdminEmail).Int64("personId", admin.ID).Msg("Default admin account created")
	return nil
}
