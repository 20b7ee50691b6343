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

// PostgresScheduleStore implements the store.ScheduleStore interface
// using a PostgreSQL database as the storage backend.
type PostgresScheduleStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresScheduleStore creates a new PostgreSQL implementation of the
// ScheduleStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresScheduleStore(db store.DBTX, logger *slog.Logger) *PostgresScheduleStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresScheduleStore{
		db:     db,
		logger: logger.With(slog.String("component", "schedule_store")),
	}
}

// Ensure PostgresScheduleStore implements store.ScheduleStore interface
var _ store.ScheduleStore = (*PostgresScheduleStore)(nil)

// scheduleColumns is the column list every schedule SELECT scans, in
// domain.Schedule field order.
const scheduleColumns = "id, medicine_id, interval_hours, duration_days, start_time, notes, active, created_at"

// Create implements store.ScheduleStore.Create
// It saves a new schedule to the database and returns a copy carrying the
// assigned ID.
// Returns store.ErrInvalidEntity if the referenced medicine does not exist
// (foreign key violation).
func (s *PostgresScheduleStore) Create(ctx context.Context, schedule *domain.Schedule) (*domain.Schedule, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := schedule.Validate(); err != nil {
		log.Warn("schedule validation failed during create",
			slog.String("error", err.Error()))
		return nil, err
	}

	query := `
		INSERT INTO schedules (medicine_id, interval_hours, duration_days, start_time, notes, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	persisted := *schedule
	err := s.db.QueryRowContext(
		ctx,
		query,
		schedule.MedicineID,
		schedule.IntervalHours,
		schedule.DurationDays,
		schedule.StartTime,
		schedule.Notes,
		schedule.Active,
		schedule.CreatedAt,
	).Scan(&persisted.ID)

	if err != nil {
		log.Error("failed to create schedule",
			slog.String("error", err.Error()),
			slog.Int64("medicine_id", schedule.MedicineID))
		return nil, MapError(err)
	}

	log.Info("schedule created successfully",
		slog.Int64("schedule_id", persisted.ID),
		slog.Int64("medicine_id", persisted.MedicineID))
	return &persisted, nil
}

// GetByID implements store.ScheduleStore.GetByID
// Returns store.ErrScheduleNotFound if the schedule does not exist.
func (s *PostgresScheduleStore) GetByID(ctx context.Context, id int64) (*domain.Schedule, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT ` + scheduleColumns + `
		FROM schedules
		WHERE id = $1
	`

	var schedule domain.Schedule
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&schedule.ID,
		&schedule.MedicineID,
		&schedule.IntervalHours,
		&schedule.DurationDays,
		&schedule.StartTime,
		&schedule.Notes,
		&schedule.Active,
		&schedule.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("schedule not found", slog.Int64("schedule_id", id))
			return nil, store.ErrScheduleNotFound
		}
		log.Error("failed to get schedule by ID",
			slog.String("error", err.Error()),
			slog.Int64("schedule_id", id))
		return nil, MapError(err)
	}

	return &schedule, nil
}

// FindByMedicineID implements store.ScheduleStore.FindByMedicineID
func (s *PostgresScheduleStore) FindByMedicineID(ctx context.Context, medicineID int64) ([]*domain.Schedule, error) {
	query := `
		SELECT ` + scheduleColumns + `
		FROM schedules
		WHERE medicine_id = $1
		ORDER BY created_at
	`
	return s.querySchedules(ctx, query, medicineID)
}

// FindActive implements store.ScheduleStore.FindActive
func (s *PostgresScheduleStore) FindActive(ctx context.Context) ([]*domain.Schedule, error) {
	query := `
		SELECT ` + scheduleColumns + `
		FROM schedules
		WHERE active
		ORDER BY created_at
	`
	return s.querySchedules(ctx, query)
}

// FindExpired implements store.ScheduleStore.FindExpired
// A schedule is expired once the given instant is past its creation time
// advanced by the treatment duration.
func (s *PostgresScheduleStore) FindExpired(ctx context.Context, now time.Time) ([]*domain.Schedule, error) {
	query := `
		SELECT ` + scheduleColumns + `
		FROM schedules
		WHERE created_at + duration_days * INTERVAL '1 day' < $1
		ORDER BY created_at
	`
	return s.querySchedules(ctx, query, now)
}

// FindAll implements store.ScheduleStore.FindAll
func (s *PostgresScheduleStore) FindAll(ctx context.Context) ([]*domain.Schedule, error) {
	query := `
		SELECT ` + scheduleColumns + `
		FROM schedules
		ORDER BY created_at
	`
	return s.querySchedules(ctx, query)
}

// Count implements store.ScheduleStore.Count
func (s *PostgresScheduleStore) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM schedules`).Scan(&count)
	if err != nil {
		return 0, MapError(err)
	}
	return count, nil
}

// Update implements store.ScheduleStore.Update
// Returns store.ErrScheduleNotFound if the schedule does not exist.
func (s *PostgresScheduleStore) Update(ctx context.Context, schedule *domain.Schedule) (*domain.Schedule, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := schedule.Validate(); err != nil {
		log.Warn("schedule validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("schedule_id", schedule.ID))
		return nil, err
	}

	query := `
		UPDATE schedules
		SET interval_hours = $1, duration_days = $2, start_time = $3, notes = $4, active = $5
		WHERE id = $6
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		schedule.IntervalHours,
		schedule.DurationDays,
		schedule.StartTime,
		schedule.Notes,
		schedule.Active,
		schedule.ID,
	)
	if err != nil {
		log.Error("failed to update schedule",
			slog.String("error", err.Error()),
			slog.Int64("schedule_id", schedule.ID))
		return nil, MapError(err)
	}

	if err := CheckRowsAffected(result, "schedule"); err != nil {
		log.Debug("schedule not found during update", slog.Int64("schedule_id", schedule.ID))
		return nil, store.ErrScheduleNotFound
	}

	persisted := *schedule
	log.Info("schedule updated successfully", slog.Int64("schedule_id", persisted.ID))
	return &persisted, nil
}

// Delete implements store.ScheduleStore.Delete
// Dose reminders belonging to the schedule are removed by ON DELETE CASCADE.
// Returns store.ErrScheduleNotFound if the schedule does not exist.
func (s *PostgresScheduleStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM schedules WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete schedule",
			slog.String("error", err.Error()),
			slog.Int64("schedule_id", id))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "schedule"); err != nil {
		log.Debug("schedule not found during delete", slog.Int64("schedule_id", id))
		return store.ErrScheduleNotFound
	}

	log.Info("schedule deleted successfully", slog.Int64("schedule_id", id))
	return nil
}

// WithTx implements store.ScheduleStore.WithTx
// It returns a new store bound to the provided transaction.
func (s *PostgresScheduleStore) WithTx(tx *sql.Tx) store.ScheduleStore {
	return &PostgresScheduleStore{
		db:     tx,
		logger: s.logger,
	}
}

// querySchedules runs a SELECT returning schedule rows and scans them.
func (s *PostgresScheduleStore) querySchedules(ctx context.Context, query string, args ...any) ([]*domain.Schedule, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query schedules", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var schedules []*domain.Schedule
	for rows.Next() {
		var schedule domain.Schedule
		if err := rows.Scan(
			&schedule.ID,
			&schedule.MedicineID,
			&schedule.IntervalHours,
			&schedule.DurationDays,
			&schedule.StartTime,
			&schedule.Notes,
			&schedule.Active,
			&schedule.CreatedAt,
		); err != nil {
			log.Error("failed to scan schedule row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		schedules = append(schedules, &schedule)
	}

	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return schedules, nil
}
