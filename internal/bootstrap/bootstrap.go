package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/academics/internal/app/controllers"
	appMigrations "github.com/yigit/academics/internal/app/migrations"
	appRepos "github.com/yigit/academics/internal/app/repositories"
	appRoutes "github.com/yigit/academics/internal/app/routes"
	appServices "github.com/yigit/academics/internal/app/services"
	"github.com/yigit/academics/internal/config"
	"github.com/yigit/academics/internal/db"
	appMiddleware "github.com/yigit/academics/internal/middleware"
	"github.com/yigit/academics/internal/pkg/logger"
	"github.com/yigit/academics/internal/seed"
)

// maxRequestBodyBytes bounds JSON payloads; every request body in this API is small.
const maxRequestBodyBytes = 1 << 20

// Dependencies holds all the application dependencies
type Dependencies struct {
	StudentService    appServices.StudentService
	TeacherService    appServices.TeacherService
	SubjectService    appServices.SubjectService
	EnrollmentService appServices.EnrollmentService
	Controllers       appRoutes.Controllers
	Repos             *appRepos.Repositories
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := config.GetEnv("CONFIG_PATH", filepath.Join("configs", "config.yaml"))
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	lgr := logger.Get()
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// optionally seeds demo data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	migrationsDir := cfg.Database.MigrationsPath
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		database.Close()
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	lgr.Info().Str("path", migrationsDir).Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool, lgr)
	if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
		database.Close()
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if cfg.Seed.Enabled {
		if err := seed.CreateDemoData(ctx, database, lgr); err != nil {
			// Seed data is a convenience; the API works without it
			lgr.Error().Err(err).Msg("Failed to create demo data, proceeding anyway...")
		}
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(database *db.PostgresDB, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool)

	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository, deps.Repos.EnrollmentRepository)
	deps.TeacherService = appServices.NewTeacherService(deps.Repos.TeacherRepository, deps.Repos.SubjectRepository)
	deps.SubjectService = appServices.NewSubjectService(
		deps.Repos.SubjectRepository,
		deps.Repos.TeacherRepository,
		deps.Repos.EnrollmentRepository,
	)
	deps.EnrollmentService = appServices.NewEnrollmentService(
		deps.Repos.EnrollmentRepository,
		deps.Repos.StudentRepository,
		deps.Repos.SubjectRepository,
	)

	deps.Controllers = appRoutes.Controllers{
		Student:    appControllers.NewStudentController(deps.StudentService),
		Teacher:    appControllers.NewTeacherController(deps.TeacherService),
		Subject:    appControllers.NewSubjectController(deps.SubjectService),
		Enrollment: appControllers.NewEnrollmentController(deps.EnrollmentService),
		Health:     appControllers.NewHealthController(database),
	}

	return deps
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

	router := gin.New()
	router.Use(
		appMiddleware.RequestID(),
		appMiddleware.RequestLogger(lgr),
		appMiddleware.Recovery(),
		appMiddleware.BodyLimit(maxRequestBodyBytes),
	)

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.Controllers)

	return router
}
