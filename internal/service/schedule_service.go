package service

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/mayconaraujosantos/alertasaude-sub001/internal/domain"
	"github.com/mayconaraujosantos/alertasaude-sub001/internal/domain/dosing"
	"github.com/mayconaraujosantos/alertasaude-sub001/internal/platform/logger"
	"github.com/mayconaraujosantos/alertasaude-sub001/internal/store"
)

// CreateScheduleParams carries the caller-supplied parameters for creating a
// treatment schedule. The medicine is referenced by ID and assumed to exist;
// the database's foreign key is the backstop, not a service-level lookup.
type CreateScheduleParams struct {
	MedicineID    int64
	IntervalHours int
	DurationDays  int
	StartTime     string
	Notes         string
}

// ScheduleService provides treatment schedule operations.
type ScheduleService interface {
	// CreateScheduleWithReminders validates the given parameters, persists a
	// new active schedule, expands it into its full set of dose reminders,
	// and persists those too. The schedule and all of its reminders are
	// written in a single transaction: a failure anywhere rolls back
	// everything, so no partial reminder set can survive.
	// Returns the persisted schedule.
	CreateScheduleWithReminders(ctx context.Context, params CreateScheduleParams) (*domain.Schedule, error)

	// GetSchedule retrieves a schedule by its ID.
	GetSchedule(ctx context.Context, id int64) (*domain.Schedule, error)

	// ListSchedules retrieves all schedules.
	ListSchedules(ctx context.Context) ([]*domain.Schedule, error)

	// ListSchedulesByMedicine retrieves all schedules for one medicine.
	ListSchedulesByMedicine(ctx context.Context, medicineID int64) ([]*domain.Schedule, error)

	// SetScheduleActive toggles a schedule's active flag, returning the
	// updated schedule.
	SetScheduleActive(ctx context.Context, id int64, active bool) (*domain.Schedule, error)

	// DeleteSchedule removes a schedule and, through the store's cascade
	// rules, all of its reminders.
	DeleteSchedule(ctx context.Context, id int64) error
}

// scheduleServiceImpl implements the ScheduleService interface.
type scheduleServiceImpl struct {
	db        *sql.DB
	schedules store.ScheduleStore
	reminders store.DoseReminderStore
	expander  dosing.Expander
	logger    *slog.Logger
}

// Ensure scheduleServiceImpl implements ScheduleService interface
var _ ScheduleService = (*scheduleServiceImpl)(nil)

// NewScheduleService creates a new ScheduleService.
// It returns an error if any of the required dependencies are nil.
func NewScheduleService(
	db *sql.DB,
	schedules store.ScheduleStore,
	reminders store.DoseReminderStore,
	expander dosing.Expander,
	logger *slog.Logger,
) (ScheduleService, error) {
	if db == nil {
		return nil, domain.NewValidationError("db", "cannot be nil", domain.ErrValidation)
	}
	if schedules == nil {
		return nil, domain.NewValidationError("schedules", "cannot be nil", domain.ErrValidation)
	}
	if reminders == nil {
		return nil, domain.NewValidationError("reminders", "cannot be nil", domain.ErrValidation)
	}
	if expander == nil {
		return nil, domain.NewValidationError("expander", "cannot be nil", domain.ErrValidation)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &scheduleServiceImpl{
		db:        db,
		schedules: schedules,
		reminders: reminders,
		expander:  expander,
		logger:    logger.With(slog.String("component", "schedule_service")),
	}, nil
}

// CreateScheduleWithReminders implements ScheduleService.CreateScheduleWithReminders
func (s *scheduleServiceImpl) CreateScheduleWithReminders(
	ctx context.Context,
	params CreateScheduleParams,
) (*domain.Schedule, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// Fail fast on each precondition, in order, before touching any store.
	if params.IntervalHours <= 0 {
		return nil, domain.ErrScheduleIntervalInvalid
	}
	if params.DurationDays <= 0 {
		return nil, domain.ErrScheduleDurationInvalid
	}
	if params.StartTime == "" {
		return nil, domain.ErrScheduleStartTimeEmpty
	}

	schedule, err := domain.NewSchedule(
		params.MedicineID,
		params.IntervalHours,
		params.DurationDays,
		params.StartTime,
		params.Notes,
	)
	if err != nil {
		log.Warn("invalid schedule parameters",
			slog.String("error", err.Error()),
			slog.Int64("medicine_id", params.MedicineID))
		return nil, err
	}

	log.Debug("creating schedule with reminders in transaction",
		slog.Int64("medicine_id", params.MedicineID),
		slog.Int("interval_hours", params.IntervalHours),
		slog.Int("duration_days", params.DurationDays))

	var persisted *domain.Schedule
	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txSchedules := s.schedules.WithTx(tx)
		txReminders := s.reminders.WithTx(tx)

		persisted, err = txSchedules.Create(ctx, schedule)
		if err != nil {
			log.Error("failed to create schedule in transaction",
				slog.String("error", err.Error()))
			if passthrough(err) {
				return err
			}
			return NewScheduleServiceError("create_schedule", "failed to save schedule", err)
		}

		reminders, err := s.expander.Expand(persisted)
		if err != nil {
			log.Error("failed to expand schedule into reminders",
				slog.String("error", err.Error()),
				slog.Int64("schedule_id", persisted.ID))
			return NewScheduleServiceError("create_schedule", "failed to expand reminders", err)
		}

		if _, err := txReminders.CreateMultiple(ctx, reminders); err != nil {
			log.Error("failed to save reminders in transaction",
				slog.String("error", err.Error()),
				slog.Int64("schedule_id", persisted.ID))
			if passthrough(err) {
				return err
			}
			return NewScheduleServiceError("create_schedule", "failed to save reminders", err)
		}

		log.Info("schedule and reminders created in transaction",
			slog.Int64("schedule_id", persisted.ID),
			slog.Int("reminder_count", len(reminders)))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return persisted, nil
}

// GetSchedule implements ScheduleService.GetSchedule
func (s *scheduleServiceImpl) GetSchedule(ctx context.Context, id int64) (*domain.Schedule, error) {
	schedule, err := s.schedules.GetByID(ctx, id)
	if err != nil {
		if passthrough(err) {
			return nil, err
		}
		return nil, NewScheduleServiceError("get_schedule", "failed to retrieve schedule", err)
	}
	return schedule, nil
}

// ListSchedules implements ScheduleService.ListSchedules
func (s *scheduleServiceImpl) ListSchedules(ctx context.Context) ([]*domain.Schedule, error) {
	schedules, err := s.schedules.FindAll(ctx)
	if err != nil {
		return nil, NewScheduleServiceError("list_schedules", "failed to list schedules", err)
	}
	return schedules, nil
}

// ListSchedulesByMedicine implements ScheduleService.ListSchedulesByMedicine
func (s *scheduleServiceImpl) ListSchedulesByMedicine(ctx context.Context, medicineID int64) ([]*domain.Schedule, error) {
	schedules, err := s.schedules.FindByMedicineID(ctx, medicineID)
	if err != nil {
		return nil, NewScheduleServiceError("list_schedules_by_medicine", "failed to list schedules", err)
	}
	return schedules, nil
}

// SetScheduleActive implements ScheduleService.SetScheduleActive
func (s *scheduleServiceImpl) SetScheduleActive(ctx context.Context, id int64, active bool) (*domain.Schedule, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	schedule, err := s.schedules.GetByID(ctx, id)
	if err != nil {
		if passthrough(err) {
			return nil, err
		}
		return nil, NewScheduleServiceError("set_schedule_active", "failed to retrieve schedule", err)
	}

	var toggled *domain.Schedule
	if active {
		toggled = schedule.Activate()
	} else {
		toggled = schedule.Deactivate()
	}

	updated, err := s.schedules.Update(ctx, toggled)
	if err != nil {
		if passthrough(err) {
			return nil, err
		}
		return nil, NewScheduleServiceError("set_schedule_active", "failed to update schedule", err)
	}

	log.Info("schedule active flag updated",
		slog.Int64("schedule_id", id),
		slog.Bool("active", active))
	return updated, nil
}

// DeleteSchedule implements ScheduleService.DeleteSchedule
func (s *scheduleServiceImpl) DeleteSchedule(ctx context.Context, id int64) error {
	err := s.schedules.Delete(ctx, id)
	if err != nil {
		if passthrough(err) {
			return err
		}
		return NewScheduleServiceError("delete_schedule", "failed to delete schedule", err)
	}
	return nil
}
