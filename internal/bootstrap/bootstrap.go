package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/ademsari/coursehub/internal/app/controllers"
	appMigrations "github.com/ademsari/coursehub/internal/app/migrations"
	appRepos "github.com/ademsari/coursehub/internal/app/repositories"
	appRoutes "github.com/ademsari/coursehub/internal/app/routes"
	appServices "github.com/ademsari/coursehub/internal/app/services"
	"github.com/ademsari/coursehub/internal/config"
	"github.com/ademsari/coursehub/internal/db"
	appMiddleware "github.com/ademsari/coursehub/internal/middleware"
	pkgAuth "github.com/ademsari/coursehub/internal/pkg/auth"
	"github.com/ademsari/coursehub/internal/pkg/helpers"
	"github.com/ademsari/coursehub/internal/pkg/logger"
	"github.com/ademsari/coursehub/internal/pkg/notifier"
	"github.com/ademsari/coursehub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService          appServices.AuthService
	PersonService        appServices.PersonService
	ProfileService       appServices.ProfileService
	InstructorService    appServices.InstructorService
	StudentService       appServices.StudentService
	CourseService        appServices.CourseService
	ModuleService        appServices.ModuleService
	EnrollmentService    appServices.EnrollmentService
	StudentCourseService appServices.StudentCourseService
	ReviewService        appServices.ReviewService

	Controllers appRoutes.Controllers

	AuthMiddleware *appMiddleware.AuthMiddleware
	PageCache      *appMiddleware.PageCache
	Repos          *appRepos.Repositories
	JWTService     *pkgAuth.JWTService
	Notifier       notifier.Notifier
	RedisClient    *redis.Client
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds the default admin account.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Startup proceeds without the seed account; log and continue
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// SetupRedis connects to Redis when page caching is enabled. A disabled
// cache returns a nil client, which the cache middleware treats as a
// pass-through.
func SetupRedis(cfg *config.Config, lgr zerolog.Logger) (*redis.Client, error) {
	if !cfg.Redis.Enabled {
		lgr.Info().Msg("Redis page cache disabled")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		lgr.Error().Err(err).Str("addr", cfg.Redis.Addr).Msg("Failed to ping Redis")
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	lgr.Info().Str("addr", cfg.Redis.Addr).Msg("Redis connection successfully established.")
	return client, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, redisClient *redis.Client, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr, RedisClient: redisClient}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.Notifier = notifier.NewSMTPNotifier(notifier.SMTPConfig{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		FromName:  cfg.SMTP.FromName,
		FromEmail: cfg.SMTP.FromEmail,
		UseTLS:    cfg.SMTP.UseTLS,
	}, lgr)

	deps.AuthService = appServices.NewAuthService(deps.Repos.PersonRepository, deps.JWTService)
	deps.PersonService = appServices.NewPersonService(deps.Repos.PersonRepository)
	deps.ProfileService = appServices.NewProfileService(deps.Repos.ProfileRepository)
	deps.InstructorService = appServices.NewInstructorService(deps.Repos.InstructorRepository, deps.Repos.PersonRepository)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository, deps.Repos.PersonRepository)
	deps.CourseService = appServices.NewCourseService(deps.Repos.CourseRepository, deps.Repos.StudentRepository, deps.Repos.InstructorRepository, deps.Notifier)
	deps.ModuleService = appServices.NewModuleService(deps.Repos.ModuleRepository, deps.Repos.CourseRepository)
	deps.EnrollmentService = appServices.NewEnrollmentService(deps.Repos.EnrollmentRepository, deps.Repos.StudentRepository, deps.Repos.CourseRepository, deps.Notifier)
	deps.StudentCourseService = appServices.NewStudentCourseService(deps.Repos.StudentCourseRepository)
	deps.ReviewService = appServices.NewReviewService(deps.Repos.ReviewRepository, deps.Repos.CourseRepository, deps.Repos.InstructorRepository, deps.Notifier)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	cacheTTL := helpers.ParseDuration(cfg.Redis.CacheTTL, 15*time.Minute)
	deps.PageCache = appMiddleware.NewPageCache(redisClient, cacheTTL)

	deps.Controllers = appRoutes.Controllers{
		Auth:          appControllers.NewAuthController(deps.AuthService),
		Person:        appControllers.NewPersonController(deps.PersonService),
		Profile:       appControllers.NewProfileController(deps.ProfileService),
		Instructor:    appControllers.NewInstructorController(deps.InstructorService),
		Student:       appControllers.NewStudentController(deps.StudentService),
		Course:        appControllers.NewCourseController(deps.CourseService),
		Module:        appControllers.NewModuleController(deps.ModuleService),
		Enrollment:    appControllers.NewEnrollmentController(deps.EnrollmentService),
		StudentCourse: appControllers.NewStudentCourseController(deps.StudentCourseService),
		Review:        appControllers.NewReviewController(deps.ReviewService),
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()
	router.Use(appMiddleware.Metrics())

	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware, deps.PageCache)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
