package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "github.com/marlon/enrollhub/docs" // generated swagger docs
	appControllers "github.com/marlon/enrollhub/internal/app/controllers"
	appMigrations "github.com/marlon/enrollhub/internal/app/migrations"
	appRepos "github.com/marlon/enrollhub/internal/app/repositories"
	appRoutes "github.com/marlon/enrollhub/internal/app/routes"
	appServices "github.com/marlon/enrollhub/internal/app/services"
	"github.com/marlon/enrollhub/internal/config"
	"github.com/marlon/enrollhub/internal/db"
	appMiddleware "github.com/marlon/enrollhub/internal/middleware"
	"github.com/marlon/enrollhub/internal/pkg/logger"
	"github.com/marlon/enrollhub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService      appServices.AuthService
	AdmissionService appServices.AdmissionService
	StudentService   appServices.StudentService
	ArchiveService   appServices.ArchiveService
	RecordService    appServices.RecordService
	SectionService   appServices.SectionService
	Controllers      *appRoutes.Controllers
	Repos            *appRepos.Repositories
	Logger           zerolog.Logger
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

// SetupDatabase establishes the database connection, runs migrations, and
// seeds the admin account.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Pool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		database.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	if err := runMigrations(database.Pool, lgr); err != nil {
		database.Close()
		return nil, err
	}

	userRepo := appRepos.NewUserRepository(database.Pool)
	if err := seed.EnsureAdminUser(context.Background(), userRepo, cfg.Admin.Username, cfg.Admin.Password); err != nil {
		// Login stays broken until an admin exists, but the read endpoints
		// still work, so start anyway.
		lgr.Error().Err(err).Msg("Failed to seed admin account, proceeding anyway...")
	}

	return database, nil
}

func runMigrations(dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(context.Background(), migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")
	return nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(database *db.PostgresDB, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool)

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository)
	deps.AdmissionService = appServices.NewAdmissionService(
		deps.Repos.AdmissionRepository,
		deps.Repos.StudentRepository,
		deps.Repos.ArchiveRepository,
		database,
	)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository, database)
	deps.ArchiveService = appServices.NewArchiveService(deps.Repos.ArchiveRepository)
	deps.RecordService = appServices.NewRecordService(
		deps.Repos.AdmissionRepository,
		deps.Repos.StudentRepository,
		deps.Repos.ArchiveRepository,
	)
	deps.SectionService = appServices.NewSectionService(
		deps.Repos.SectionRepository,
		deps.Repos.StudentRepository,
		database,
	)

	deps.Controllers = &appRoutes.Controllers{
		Auth:      appControllers.NewAuthController(deps.AuthService),
		Admission: appControllers.NewAdmissionController(deps.AdmissionService),
		Student:   appControllers.NewStudentController(deps.StudentService),
		Record:    appControllers.NewRecordController(deps.ArchiveService, deps.RecordService),
		Section:   appControllers.NewSectionController(deps.SectionService),
	}

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestLogger())
	router.Use(appMiddleware.CORS())

	appRoutes.SetupRoutes(router, deps.Controllers)

	return router
}
