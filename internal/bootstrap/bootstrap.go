// Package bootstrap wires configuration, storage, services and the
// HTTP router together at startup.
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
	"github.com/rs/zerolog/log"

	appControllers "github.com/feims/feims/internal/app/controllers"
	appMigrations "github.com/feims/feims/internal/app/migrations"
	appRepos "github.com/feims/feims/internal/app/repositories"
	appRoutes "github.com/feims/feims/internal/app/routes"
	appServices "github.com/feims/feims/internal/app/services"
	"github.com/feims/feims/internal/config"
	"github.com/feims/feims/internal/db"
	appMiddleware "github.com/feims/feims/internal/middleware"
	pkgAuth "github.com/feims/feims/internal/pkg/auth"
	"github.com/feims/feims/internal/pkg/logger"
	"github.com/feims/feims/internal/seed"
	"github.com/feims/feims/internal/session"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos                *appRepos.Repositories
	Services             *appServices.Services
	JWTService           *pkgAuth.JWTService
	SessionEvents        *session.Broadcaster
	SessionManager       *session.Manager
	AuthController       *appControllers.AuthController
	DepartmentController *appControllers.DepartmentController
	FacultyController    *appControllers.FacultyController
	CourseController     *appControllers.CourseController
	DocumentController   *appControllers.DocumentController
	AuthMiddleware       *appMiddleware.AuthMiddleware
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations
// and seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("establishing database connection")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Pool.Ping(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	migrator := appMigrations.NewMigrator(database.Pool)
	if err := migrator.MigrateFromDirectory(context.Background(), migrationsDir); err != nil {
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	if err := seed.CreateDefaultData(context.Background(), database, lgr); err != nil {
		// Seeding is convenience data; startup continues without it.
		lgr.Error().Err(err).Msg("failed to create default data, proceeding anyway")
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database)

	accessExp, err := time.ParseDuration(cfg.JWT.AccessTokenExpiration)
	if err != nil {
		return nil, fmt.Errorf("invalid access token expiration: %w", err)
	}
	refreshExp, err := time.ParseDuration(cfg.JWT.RefreshTokenExpiration)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token expiration: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  accessExp,
		RefreshTokenExp: refreshExp,
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.SessionEvents = session.NewBroadcaster()
	deps.Services = appServices.NewServices(deps.Repos, database, deps.JWTService, cfg, deps.SessionEvents)

	// The in-process session owner: it follows the broadcaster and
	// keeps the current identity and profile resolved.
	sessionClient := appServices.NewSessionClient(deps.Services.AuthService)
	deps.SessionManager = session.NewManager(sessionClient, deps.Services.AuthService.GetProfile)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.Services.AuthService)
	deps.DepartmentController = appControllers.NewDepartmentController(deps.Services.DepartmentService)
	deps.FacultyController = appControllers.NewFacultyController(deps.Services.FacultyService)
	deps.CourseController = appControllers.NewCourseController(deps.Services.CourseService)
	deps.DocumentController = appControllers.NewDocumentController(deps.Services.DocumentService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.DepartmentController,
		deps.FacultyController,
		deps.CourseController,
		deps.DocumentController,
		deps.AuthMiddleware,
	)

	return router
}
