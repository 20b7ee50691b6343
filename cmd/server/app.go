package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/mayconaraujosantos/alertasaude-sub001/internal/config"
	"github.com/mayconaraujosantos/alertasaude-sub001/internal/domain/dosing"
	"github.com/mayconaraujosantos/alertasaude-sub001/internal/platform/postgres"
	"github.com/mayconaraujosantos/alertasaude-sub001/internal/service"
	"github.com/mayconaraujosantos/alertasaude-sub001/internal/service/auth"
	"github.com/mayconaraujosantos/alertasaude-sub001/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	userStore     store.UserStore
	medicineStore store.MedicineStore
	scheduleStore store.ScheduleStore
	reminderStore store.DoseReminderStore

	// Service interfaces
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
	userService      service.UserService
	medicineService  service.MedicineService
	scheduleService  service.ScheduleService
	reminderService  service.DoseReminderService
	statsService     service.StatsService
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts the core dependencies that must be established
// before application initialization.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_expiry", cfg.Auth.TokenExpiry)

	app.passwordVerifier = auth.NewBcryptVerifier(auth.DefaultBcryptCost)

	// Stores
	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.medicineStore = postgres.NewPostgresMedicineStore(db, logger)
	app.scheduleStore = postgres.NewPostgresScheduleStore(db, logger)
	app.reminderStore = postgres.NewPostgresDoseReminderStore(db, logger)

	// Services
	app.userService, err = service.NewUserService(app.userStore, app.passwordVerifier, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	app.medicineService, err = service.NewMedicineService(app.medicineStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create medicine service: %w", err)
	}

	app.scheduleService, err = service.NewScheduleService(
		db,
		app.scheduleStore,
		app.reminderStore,
		dosing.NewExpander(),
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create schedule service: %w", err)
	}

	app.reminderService, err = service.NewDoseReminderService(app.reminderStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create reminder service: %w", err)
	}

	app.statsService, err = service.NewStatsService(
		app.medicineStore,
		app.scheduleStore,
		app.reminderStore,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create stats service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
