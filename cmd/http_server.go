package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/KunjShah95/gearguard/internal"
	"github.com/KunjShah95/gearguard/internal/auth"
	authPostgres "github.com/KunjShah95/gearguard/internal/auth/postgres"
	"github.com/KunjShah95/gearguard/internal/core/events"
	"github.com/KunjShah95/gearguard/internal/equipment"
	equipmentPostgres "github.com/KunjShah95/gearguard/internal/equipment/postgres"
	"github.com/KunjShah95/gearguard/internal/request"
	requestPostgres "github.com/KunjShah95/gearguard/internal/request/postgres"
	"github.com/KunjShah95/gearguard/internal/team"
	teamPostgres "github.com/KunjShah95/gearguard/internal/team/postgres"
	"github.com/KunjShah95/gearguard/internal/transport/rest"
	"github.com/KunjShah95/gearguard/internal/transport/swagger"
	"github.com/KunjShah95/gearguard/internal/user"
	userPostgres "github.com/KunjShah95/gearguard/internal/user/postgres"
	"github.com/KunjShah95/gearguard/pkg/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *sqlx.DB
	GormDB *gorm.DB
	Router *chi.Mux
	Logger *slog.Logger

	AuthHandler      *auth.Handler
	UserHandler      *user.Handler
	TeamHandler      *team.Handler
	EquipmentHandler *equipment.Handler
	RequestHandler   *request.Handler
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	setupRoutes(deps)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	slog.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		slog.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			slog.Error("Database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Server stopped")
}

func setupRoutes(deps *Dependencies) {
	rest.RegisterAllRoutes(
		deps.Router,
		deps.DB.DB,
		deps.AuthHandler,
		deps.UserHandler,
		deps.TeamHandler,
		deps.EquipmentHandler,
		deps.RequestHandler,
		deps.Config.Server.OpenAPISpecPath,
		deps.Logger,
	)
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(os.Getenv("APP_ENV"))
	appLogger := logger.L()

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := initGorm(db)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize orm: %w", err)
	}

	// Validate the served OpenAPI document at startup so a broken spec
	// surfaces immediately instead of at first request.
	if _, err := swagger.LoadSpec(context.Background(), config.Server.OpenAPISpecPath); err != nil {
		appLogger.Warn("openapi spec failed to load", "error", err, "path", config.Server.OpenAPISpecPath)
	}

	eventBus := events.NewEventBus(appLogger)
	registerEventHandlers(eventBus, appLogger)

	tokenGen := auth.NewJWTTokenGenerator(
		config.Security.AccessTokenSecret,
		config.Security.RefreshTokenSecret,
		config.Security.AccessTokenDuration,
		config.Security.RefreshTokenDuration,
	)

	authService := auth.NewService(authPostgres.NewRepository(gormDB), tokenGen)
	userService := user.NewService(userPostgres.NewUserRepository(gormDB))
	teamService := team.NewService(teamPostgres.NewTeamRepository(gormDB), appLogger)
	equipmentService := equipment.NewService(equipmentPostgres.NewEquipmentRepository(gormDB), appLogger)
	requestService := request.NewService(
		requestPostgres.NewRequestRepository(gormDB),
		teamService,
		eventBus,
		appLogger,
	)

	return &Dependencies{
		Config: config,
		Logger: appLogger,
		DB:     db,
		GormDB: gormDB,
		Router: chi.NewRouter(),

		AuthHandler:      auth.NewHandler(authService),
		UserHandler:      user.NewHandler(userService),
		TeamHandler:      team.NewHandler(teamService),
		EquipmentHandler: equipment.NewHandler(equipmentService),
		RequestHandler:   request.NewHandler(requestService),
	}, nil
}

// registerEventHandlers wires the audit log subscribers. Lifecycle events
// are observed here; the request service only publishes them.
func registerEventHandlers(bus *events.EventBus, lg *slog.Logger) {
	bus.Subscribe(events.EventTypeRequestCreated, func(ctx context.Context, event events.Event) error {
		lg.Info("audit: request created", "event_id", event.EventID(), "payload", event.Payload())
		return nil
	})
	bus.Subscribe(events.EventTypeRequestStatusChanged, func(ctx context.Context, event events.Event) error {
		lg.Info("audit: request status changed", "event_id", event.EventID(), "payload", event.Payload())
		return nil
	})
	bus.Subscribe(events.EventTypeRequestAssigned, func(ctx context.Context, event events.Event) error {
		lg.Info("audit: request assigned", "event_id", event.EventID(), "payload", event.Payload())
		return nil
	})
	bus.Subscribe(events.EventTypeEquipmentScrapped, func(ctx context.Context, event events.Event) error {
		lg.Warn("audit: equipment scrapped", "event_id", event.EventID(), "payload", event.Payload())
		return nil
	})
}

// initDB initializes the database connection
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}

// initGorm layers the ORM over the already-open pgx connection pool so
// raw sqlx queries and gorm share the same pool.
func initGorm(db *sqlx.DB) (*gorm.DB, error) {
	gormDB, err := gorm.Open(gormPostgres.New(gormPostgres.Config{
		Conn: db.DB,
	}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm connection: %w", err)
	}
	return gormDB, nil
}
