package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/frahmantamala/hotel-management/internal"
	"github.com/frahmantamala/hotel-management/internal/access"
	"github.com/frahmantamala/hotel-management/internal/accounting"
	accountingPostgres "github.com/frahmantamala/hotel-management/internal/accounting/postgres"
	"github.com/frahmantamala/hotel-management/internal/auth"
	authPostgres "github.com/frahmantamala/hotel-management/internal/auth/postgres"
	"github.com/frahmantamala/hotel-management/internal/core/events"
	"github.com/frahmantamala/hotel-management/internal/customer"
	customerPostgres "github.com/frahmantamala/hotel-management/internal/customer/postgres"
	"github.com/frahmantamala/hotel-management/internal/report"
	"github.com/frahmantamala/hotel-management/internal/reservation"
	reservationPostgres "github.com/frahmantamala/hotel-management/internal/reservation/postgres"
	"github.com/frahmantamala/hotel-management/internal/room"
	roomPostgres "github.com/frahmantamala/hotel-management/internal/room/postgres"
	"github.com/frahmantamala/hotel-management/internal/shift"
	shiftPostgres "github.com/frahmantamala/hotel-management/internal/shift/postgres"
	"github.com/frahmantamala/hotel-management/internal/staff"
	staffPostgres "github.com/frahmantamala/hotel-management/internal/staff/postgres"
	"github.com/frahmantamala/hotel-management/internal/transport/rest"
	"github.com/frahmantamala/hotel-management/pkg/logger"
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
	Config        *internal.Config
	DB            *sqlx.DB
	GormDB        *gorm.DB
	Router        *chi.Mux
	Logger        *slog.Logger
	ShiftResyncer *shift.Resyncer
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	if deps.ShiftResyncer != nil {
		if err := deps.ShiftResyncer.Start(); err != nil {
			deps.Logger.Error("failed to start shift resync scheduler", "error", err)
		}
	}

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
		if deps.ShiftResyncer != nil {
			deps.ShiftResyncer.Stop()
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

	gormDB, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: db.DB}), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize gorm: %w", err)
	}

	bus := events.NewEventBus(appLogger)
	registerAuditSubscribers(bus, appLogger)

	// Auth
	tokenGen := auth.NewJWTTokenGenerator(
		config.Security.AccessTokenSecret,
		config.Security.RefreshTokenSecret,
		config.Security.AccessTokenDuration,
		config.Security.RefreshTokenDuration,
	)
	authService := auth.NewService(authPostgres.NewRepository(gormDB), tokenGen)
	authHandler := auth.NewHandler(authService)

	// Access gate
	gate := access.NewGate(access.DefaultPolicy(), appLogger)
	pages := access.NewPageAccess(gate, appLogger)

	// Domain services
	roomService := room.NewService(roomPostgres.NewRoomRepository(gormDB), bus, appLogger)
	reservationService := reservation.NewService(
		reservationPostgres.NewReservationRepository(gormDB), roomService, bus, appLogger)
	customerService := customer.NewService(customerPostgres.NewCustomerRepository(gormDB), appLogger)
	accountingRepo := accountingPostgres.NewTransactionRepository(gormDB)
	accountingService := accounting.NewService(accountingRepo, appLogger)
	reportService := report.NewService(accountingRepo, appLogger)
	staffService := staff.NewService(
		staffPostgres.NewStaffRepository(gormDB), config.Security.BCryptCost, appLogger)
	shiftService := shift.NewService(shiftPostgres.NewShiftRepository(gormDB), bus, appLogger)

	var resyncer *shift.Resyncer
	if config.ShiftSync.Enabled {
		resyncer = shift.NewResyncer(shiftService, config.ShiftSync.CronSchedule, appLogger)
	}

	router := chi.NewRouter()
	rest.RegisterAllRoutes(router, db.DB, rest.Handlers{
		Auth:        authHandler,
		Reservation: reservation.NewHandler(reservationService),
		Customer:    customer.NewHandler(customerService),
		Room:        room.NewHandler(roomService),
		Accounting:  accounting.NewHandler(accountingService),
		Report:      report.NewHandler(reportService),
		Staff:       staff.NewHandler(staffService),
		Shift:       shift.NewHandler(shiftService),
	}, pages, allowedOrigins(config.Server.AllowedOrigins), appLogger)

	return &Dependencies{
		Config:        config,
		DB:            db,
		GormDB:        gormDB,
		Router:        router,
		Logger:        appLogger,
		ShiftResyncer: resyncer,
	}, nil
}

// registerAuditSubscribers logs every domain event for the audit trail.
func registerAuditSubscribers(bus *events.EventBus, appLogger *slog.Logger) {
	audit := func(ctx context.Context, event events.Event) error {
		appLogger.Info("audit",
			"event_type", event.EventType(),
			"event_id", event.EventID(),
			"occurred_at", event.OccurredAt(),
			"payload", event.Payload())
		return nil
	}

	bus.Subscribe(events.EventTypeGuestCheckedIn, audit)
	bus.Subscribe(events.EventTypeGuestCheckedOut, audit)
	bus.Subscribe(events.EventTypeRoomIssueRaised, audit)
	bus.Subscribe(shift.EventShiftsReplaced, audit)
}

func allowedOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
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

	// verify connection; close underlying *sql.DB on failure
	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}
