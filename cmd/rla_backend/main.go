package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/homevia/rent_ledger_app/internal/adapters/notification"
	"github.com/homevia/rent_ledger_app/internal/core/services"
	"github.com/homevia/rent_ledger_app/internal/handlers"
	"github.com/homevia/rent_ledger_app/internal/middleware"
	"github.com/homevia/rent_ledger_app/internal/platform/config"
	"github.com/homevia/rent_ledger_app/internal/repositories/database/pgsql"
	"github.com/homevia/rent_ledger_app/pkg/database"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	portssvc "github.com/homevia/rent_ledger_app/internal/core/ports/services"
)

// @title RLA Backend API
// @version 1.0
// @description Lease and rent-payment ledger for the Homevia marketplace.

// @host localhost:8080
// @BasePath /
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	// Defer closing the connection pool
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg, logger); err != nil {
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	// Date-only fields ride in as YYYY-MM-DD strings.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("dateonly", func(fl validator.FieldLevel) bool {
			_, perr := time.Parse("2006-01-02", fl.Field().String())
			return perr == nil
		})
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, rate limiting)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit format", slog.String("rate", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(memory.NewStore(), rate)))

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Wire repositories, gateways and services
	repos := pgsql.NewRepositoryProvider(dbPool)
	directory := pgsql.NewDirectoryGateway(dbPool)
	notifier := notification.NewGateway(notification.Config{
		ProviderBaseURL: cfg.NotifyProviderBaseURL,
		ProviderToken:   cfg.NotifyProviderToken,
		SMTPAddr:        cfg.SMTPAddr,
		SMTPFrom:        cfg.SMTPFrom,
	})
	serviceContainer := services.NewServiceContainer(cfg, repos, directory, notifier)

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	// Periodic reminder sweep runs alongside the HTTP server.
	schedulerCtx, stopScheduler := context.WithCancel(context.Background())
	defer stopScheduler()
	go runReminderScheduler(schedulerCtx, cfg, serviceContainer.Reminder, logger)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies all pending "up" migrations before the server starts.
func runMigrations(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("Running database migrations...")
	// Open a temporary standard sql.DB connection for migrations
	// Using pgx/v5/stdlib driver to be compatible with the main pool
	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to open database connection for migrations", slog.String("error", err.Error()))
		return err
	}
	if err := migrationDB.Ping(); err != nil {
		logger.Error("Failed to ping database for migrations", slog.String("error", err.Error()))
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	// Create a postgres driver instance for migrate
	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		logger.Error("Could not create postgres driver instance for migrations", slog.String("error", err.Error()))
		return err
	}

	migrationsPath := "file://migrations"

	m, err := migrate.NewWithDatabaseInstance(
		migrationsPath,
		"postgres", // Database name used by migrate
		driver,
	)
	if err != nil {
		logger.Error("Could not create migrate instance", slog.String("error", err.Error()))
		return err
	}

	// Apply all available "up" migrations
	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		logger.Error("Migration source error", slog.String("error", sourceErr.Error()))
		return sourceErr
	}
	if dbErr != nil {
		logger.Error("Migration database error", slog.String("error", dbErr.Error()))
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}

// runReminderScheduler triggers a reminder sweep on a fixed interval until
// ctx is cancelled. The first sweep runs shortly after startup so a restarted
// instance does not sit a full interval with overdue reminders pending.
func runReminderScheduler(ctx context.Context, cfg *config.Config, reminderSvc portssvc.ReminderSvcFacade, logger *slog.Logger) {
	logger = logger.With(slog.String("component", "reminder_scheduler"))
	logger.Info("Reminder scheduler started",
		slog.Duration("interval", cfg.ReminderInterval),
		slog.Int("days_before", cfg.ReminderDaysBefore))

	startupDelay := time.NewTimer(time.Minute)
	defer startupDelay.Stop()
	select {
	case <-ctx.Done():
		return
	case <-startupDelay.C:
	}

	ticker := time.NewTicker(cfg.ReminderInterval)
	defer ticker.Stop()

	for {
		sweepCtx := middleware.ContextWithLogger(ctx, logger)
		results, err := reminderSvc.RunReminderSweep(sweepCtx, cfg.ReminderDaysBefore, cfg.ReminderIncludeOverdue)
		if err != nil {
			logger.Error("Scheduled reminder sweep failed", slog.String("error", err.Error()))
		} else {
			sent := 0
			for _, res := range results {
				if res.Sent {
					sent++
				}
			}
			logger.Info("Scheduled reminder sweep finished",
				slog.Int("candidates", len(results)),
				slog.Int("sent", sent))
		}

		select {
		case <-ctx.Done():
			logger.Info("Reminder scheduler stopped")
			return
		case <-ticker.C:
		}
	}
}
