package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/mayconaraujosantos/alertasaude-sub001/internal/domain"
	"github.com/mayconaraujosantos/alertasaude-sub001/internal/platform/logger"
	"github.com/mayconaraujosantos/alertasaude-sub001/internal/store"
)

// PostgresDoseReminderStore implements the store.DoseReminderStore interface
// using a PostgreSQL database as the storage backend.
type PostgresDoseReminderStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresDoseReminderStore creates a new PostgreSQL implementation of the
// DoseReminderStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresDoseReminderStore(db store.DBTX, logger *slog.Logger) *PostgresDoseReminderStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresDoseReminderStore{
		db:     db,
		logger: logger.With(slog.String("component", "reminder_store")),
	}
}

// Ensure PostgresDoseReminderStore implements store.DoseReminderStore interface
var _ store.DoseReminderStore = (*PostgresDoseReminderStore)(nil)

// reminderColumns is the column list every dose reminder SELECT scans, in
// domain.DoseReminder field order.
const reminderColumns = "id, schedule_id, medicine_id, scheduled_at, taken, skipped, taken_at, created_at"

const reminderInsertQuery = `
	INSERT INTO dose_reminders (schedule_id, medicine_id, scheduled_at, taken, skipped, taken_at, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING id
`

// Create implements store.DoseReminderStore.Create
// It saves a new reminder to the database and returns a copy carrying the
// assigned ID.
func (s *PostgresDoseReminderStore) Create(ctx context.Context, reminder *domain.DoseReminder) (*domain.DoseReminder, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := reminder.Validate(); err != nil {
		log.Warn("reminder validation failed during create",
			slog.String("error", err.Error()))
		return nil, err
	}

	persisted := *reminder
	err := s.db.QueryRowContext(
		ctx,
		reminderInsertQuery,
		reminder.ScheduleID,
		reminder.MedicineID,
		reminder.ScheduledAt,
		reminder.Taken,
		reminder.Skipped,
		reminder.TakenAt,
		reminder.CreatedAt,
	).Scan(&persisted.ID)

	if err != nil {
		log.Error("failed to create dose reminder",
			slog.String("error", err.Error()),
			slog.Int64("schedule_id", reminder.ScheduleID))
		return nil, MapError(err)
	}

	return &persisted, nil
}

// CreateMultiple implements store.DoseReminderStore.CreateMultiple
// It saves the reminders in input order, preserving the expansion's
// day-major ordering. Run it within a transaction via WithTx so a failure
// midway cannot leave a partial reminder set behind.
func (s *PostgresDoseReminderStore) CreateMultiple(ctx context.Context, reminders []*domain.DoseReminder) ([]*domain.DoseReminder, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	persisted := make([]*domain.DoseReminder, 0, len(reminders))
	for _, reminder := range reminders {
		saved, err := s.Create(ctx, reminder)
		if err != nil {
			log.Error("failed to create reminder batch",
				slog.String("error", err.Error()),
				slog.Int("persisted", len(persisted)),
				slog.Int("total", len(reminders)))
			return nil, err
		}
		persisted = append(persisted, saved)
	}

	log.Info("dose reminders created successfully",
		slog.Int("count", len(persisted)))
	return persisted, nil
}

// GetByID implements store.DoseReminderStore.GetByID
// Returns store.ErrReminderNotFound if the reminder does not exist.
func (s *PostgresDoseReminderStore) GetByID(ctx context.Context, id int64) (*domain.DoseReminder, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT ` + reminderColumns + `
		FROM dose_reminders
		WHERE id = $1
	`

	var reminder domain.DoseReminder
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&reminder.ID,
		&reminder.ScheduleID,
		&reminder.MedicineID,
		&reminder.ScheduledAt,
		&reminder.Taken,
		&reminder.Skipped,
		&reminder.TakenAt,
		&reminder.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("dose reminder not found", slog.Int64("reminder_id", id))
			return nil, store.ErrReminderNotFound
		}
		log.Error("failed to get dose reminder by ID",
			slog.String("error", err.Error()),
			slog.Int64("reminder_id", id))
		return nil, MapError(err)
	}

	return &reminder, nil
}

// FindByScheduleID implements store.DoseReminderStore.FindByScheduleID
func (s *PostgresDoseReminderStore) FindByScheduleID(ctx context.Context, scheduleID int64) ([]*domain.DoseReminder, error) {
	query := `
		SELECT ` + reminderColumns + `
		FROM dose_reminders
		WHERE schedule_id = $1
		ORDER BY scheduled_at
	`
	return s.queryReminders(ctx, query, scheduleID)
}

// FindByDateRange implements store.DoseReminderStore.FindByDateRange
func (s *PostgresDoseReminderStore) FindByDateRange(ctx context.Context, start, end time.Time) ([]*domain.DoseReminder, error) {
	query := `
		SELECT ` + reminderColumns + `
		FROM dose_reminders
		WHERE scheduled_at BETWEEN $1 AND $2
		ORDER BY scheduled_at
	`
	return s.queryReminders(ctx, query, start, end)
}

// FindAll implements store.DoseReminderStore.FindAll
func (s *PostgresDoseReminderStore) FindAll(ctx context.Context) ([]*domain.DoseReminder, error) {
	query := `
		SELECT ` + reminderColumns + `
		FROM dose_reminders
		ORDER BY scheduled_at
	`
	return s.queryReminders(ctx, query)
}

// Count implements store.DoseReminderStore.Count
func (s *PostgresDoseReminderStore) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM dose_reminders`).Scan(&count)
	if err != nil {
		return 0, MapError(err)
	}
	return count, nil
}

// CountByDateRange implements store.DoseReminderStore.CountByDateRange
func (s *PostgresDoseReminderStore) CountByDateRange(ctx context.Context, start, end time.Time) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(
		ctx,
		`SELECT COUNT(*) FROM dose_reminders WHERE scheduled_at BETWEEN $1 AND $2`,
		start,
		end,
	).Scan(&count)
	if err != nil {
		return 0, MapError(err)
	}
	return count, nil
}

// Update implements store.DoseReminderStore.Update
// Returns store.ErrReminderNotFound if the reminder does not exist.
func (s *PostgresDoseReminderStore) Update(ctx context.Context, reminder *domain.DoseReminder) (*domain.DoseReminder, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE dose_reminders
		SET taken = $1, skipped = $2, taken_at = $3
		WHERE id = $4
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		reminder.Taken,
		reminder.Skipped,
		reminder.TakenAt,
		reminder.ID,
	)
	if err != nil {
		log.Error("failed to update dose reminder",
			slog.String("error", err.Error()),
			slog.Int64("reminder_id", reminder.ID))
		return nil, MapError(err)
	}

	if err := CheckRowsAffected(result, "dose reminder"); err != nil {
		log.Debug("dose reminder not found during update", slog.Int64("reminder_id", reminder.ID))
		return nil, store.ErrReminderNotFound
	}

	persisted := *reminder
	return &persisted, nil
}

// Delete implements store.DoseReminderStore.Delete
// Returns store.ErrReminderNotFound if the reminder does not exist.
func (s *PostgresDoseReminderStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM dose_reminders WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete dose reminder",
			slog.String("error", err.Error()),
			slog.Int64("reminder_id", id))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "dose reminder"); err != nil {
		return store.ErrReminderNotFound
	}

	return nil
}

// WithTx implements store.DoseReminderStore.WithTx
// It returns a new store bound to the provided transaction.
func (s *PostgresDoseReminderStore) WithTx(tx *sql.Tx) store.DoseReminderStore {
	return &PostgresDoseReminderStore{
		db:     tx,
		logger: s.logger,
	}
}

// queryReminders runs a SELECT returning reminder rows and scans them.
func (s *PostgresDoseReminderStore) queryReminders(ctx context.Context, query string, args ...any) ([]*domain.DoseReminder, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query dose reminders", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var reminders []*domain.DoseReminder
	for rows.Next() {
		var reminder domain.DoseReminder
		if err := rows.Scan(
			&reminder.ID,
			&reminder.ScheduleID,
			&reminder.MedicineID,
			&reminder.ScheduledAt,
			&reminder.Taken,
			&reminder.Skipped,
			&reminder.TakenAt,
			&reminder.CreatedAt,
		); err != nil {
			log.Error("failed to scan dose reminder row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		reminders = append(reminders, &reminder)
	}

	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return reminders, nil
}
