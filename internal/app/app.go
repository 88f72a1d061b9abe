package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/Inkpot/inkpot/config"
	"github.com/Inkpot/inkpot/internal/database"
	"github.com/Inkpot/inkpot/internal/domain"
	httpHandler "github.com/Inkpot/inkpot/internal/http"
	"github.com/Inkpot/inkpot/internal/http/middleware"
	"github.com/Inkpot/inkpot/internal/repository"
	"github.com/Inkpot/inkpot/internal/service"
	"github.com/Inkpot/inkpot/pkg/blob"
	"github.com/Inkpot/inkpot/pkg/logger"
)

// App encapsulates the application dependencies and configuration
type App struct {
	config *config.Config
	logger logger.Logger
	db     *sql.DB
	files  *blob.Store

	// Repositories
	userRepo     domain.UserRepository
	sessionRepo  domain.SessionRepository
	projectRepo  domain.ProjectRepository
	documentRepo domain.DocumentRepository
	resourceRepo domain.ResourceRepository
	sharingRepo  domain.SharingRepository

	// Services
	userService     *service.UserService
	authService     *service.AuthService
	projectService  *service.ProjectService
	documentService *service.DocumentService
	resourceService *service.ResourceService
	sharingService  *service.SharingService

	mux    *http.ServeMux
	server *http.Server
}

// AppOption defines a functional option for configuring the App
type AppOption func(*App)

// WithMockDB configures the app to use a pre-opened database handle
func WithMockDB(db *sql.DB) AppOption {
	return func(a *App) {
		a.db = db
	}
}

// WithLogger sets a custom logger
func WithLogger(l logger.Logger) AppOption {
	return func(a *App) {
		a.logger = l
	}
}

// NewApp creates a new application instance
func NewApp(cfg *config.Config, opts ...AppOption) *App {
	a := &App{
		config: cfg,
		logger: logger.NewLoggerWithLevel(cfg.LogLevel),
		mux:    http.NewServeMux(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// InitDB connects to PostgreSQL and ensures the schema exists.
func (a *App) InitDB() error {
	if a.db == nil {
		db, err := database.Connect(&a.config.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		a.db = db
	}

	if err := database.InitializeDatabase(a.db); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	return nil
}

// InitBlobStore prepares the on-disk file store.
func (a *App) InitBlobStore() error {
	files, err := blob.New(a.config.Storage.FileDir)
	if err != nil {
		return fmt.Errorf("failed to initialize blob store: %w", err)
	}
	a.files = files
	return nil
}

// InitRepositories creates the PostgreSQL repositories.
func (a *App) InitRepositories() error {
	a.userRepo = repository.NewUserRepository(a.db)
	a.sessionRepo = repository.NewSessionRepository(a.db)
	a.projectRepo = repository.NewProjectRepository(a.db, a.files)
	a.documentRepo = repository.NewDocumentRepository(a.db, a.files)
	a.resourceRepo = repository.NewResourceRepository(a.db, a.files)
	a.sharingRepo = repository.NewSharingRepository(a.db)
	return nil
}

// InitServices wires the services on top of the repositories.
func (a *App) InitServices() error {
	a.userService = service.NewUserService(a.userRepo, a.logger)
	a.authService = service.NewAuthService(a.sessionRepo, a.userRepo, a.config.Session.Duration, a.logger)
	a.projectService = service.NewProjectService(a.projectRepo, a.logger)
	a.documentService = service.NewDocumentService(a.documentRepo, a.projectRepo, a.logger)
	a.resourceService = service.NewResourceService(a.resourceRepo, a.projectRepo, a.logger)
	a.sharingService = service.NewSharingService(a.sharingRepo, a.logger)
	return nil
}

// InitHandlers registers every route on the mux.
func (a *App) InitHandlers() error {
	requireAuth := middleware.RequireAuth(a.authService)
	limit := a.config.Storage.ResourceSizeLimit

	httpHandler.NewRootHandler(a.config.Version).RegisterRoutes(a.mux)
	httpHandler.NewUserHandler(a.userService).RegisterRoutes(a.mux, requireAuth)
	httpHandler.NewSessionHandler(a.authService).RegisterRoutes(a.mux)
	httpHandler.NewProjectHandler(a.projectService, a.sharingService).RegisterRoutes(a.mux, requireAuth)
	httpHandler.NewDocumentHandler(a.documentService, limit).RegisterRoutes(a.mux, requireAuth)
	httpHandler.NewResourceHandler(a.resourceService, limit).RegisterRoutes(a.mux, requireAuth)
	return nil
}

// Initialize runs all initialization steps in order
func (a *App) Initialize() error {
	if err := a.InitDB(); err != nil {
		return err
	}
	if err := a.InitBlobStore(); err != nil {
		return err
	}
	if err := a.InitRepositories(); err != nil {
		return err
	}
	if err := a.InitServices(); err != nil {
		return err
	}
	return a.InitHandlers()
}

// Start begins listening for HTTP requests; it blocks until the server
// stops.
func (a *App) Start() error {
	addr := fmt.Sprintf("%s:%d", a.config.Server.Host, a.config.Server.Port)
	a.server = &http.Server{
		Addr:         addr,
		Handler:      middleware.LogRequests(a.logger)(a.mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	a.logger.WithField("addr", addr).Info("Server listening")
	if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// Shutdown stops the server and closes the database.
func (a *App) Shutdown(ctx context.Context) error {
	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			return fmt.Errorf("database close error: %w", err)
		}
	}
	a.logger.Info("Server stopped")
	return nil
}

// GetConfig returns the app configuration
func (a *App) GetConfig() *config.Config {
	return a.config
}

// GetLogger returns the app logger
func (a *App) GetLogger() logger.Logger {
	return a.logger
}

// GetMux returns the HTTP mux
func (a *App) GetMux() *http.ServeMux {
	return a.mux
}

// GetDB returns the database handle
func (a *App) GetDB() *sql.DB {
	return a.db
}
