package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/mayconaraujosantos/alertasaude-sub001/internal/domain"
	"github.com/mayconaraujosantos/alertasaude-sub001/internal/platform/logger"
	"github.com/mayconaraujosantos/alertasaude-sub001/internal/store"
)

// DoseReminderService provides dose reminder lifecycle operations.
type DoseReminderService interface {
	// MarkDoseTaken records that the dose for the given reminder was taken
	// at the given instant. Returns the updated reminder, or
	// domain.ErrDoseAlreadyTaken if the dose was already marked taken.
	// A previously skipped dose can still be marked taken.
	MarkDoseTaken(ctx context.Context, id int64, takenAt time.Time) (*domain.DoseReminder, error)

	// MarkDoseSkipped records that the dose for the given reminder was
	// deliberately skipped. Returns domain.ErrDoseAlreadyTaken if the dose
	// was already taken, or domain.ErrDoseAlreadySkipped if already skipped.
	MarkDoseSkipped(ctx context.Context, id int64) (*domain.DoseReminder, error)

	// GetReminder retrieves a reminder by its ID.
	GetReminder(ctx context.Context, id int64) (*domain.DoseReminder, error)

	// ListRemindersBySchedule retrieves all reminders for a schedule,
	// ordered by scheduled fire time.
	ListRemindersBySchedule(ctx context.Context, scheduleID int64) ([]*domain.DoseReminder, error)

	// ListRemindersForDay retrieves all reminders scheduled to fire on the
	// calendar day containing the given instant, in that instant's location.
	ListRemindersForDay(ctx context.Context, day time.Time) ([]*domain.DoseReminder, error)

	// ListReminders retrieves all reminders ordered by scheduled fire time.
	ListReminders(ctx context.Context) ([]*domain.DoseReminder, error)
}

// doseReminderServiceImpl implements the DoseReminderService interface.
type doseReminderServiceImpl struct {
	reminders store.DoseReminderStore
	logger    *slog.Logger
}

// Ensure doseReminderServiceImpl implements DoseReminderService interface
var _ DoseReminderService = (*doseReminderServiceImpl)(nil)

// NewDoseReminderService creates a new DoseReminderService.
func NewDoseReminderService(reminders store.DoseReminderStore, logger *slog.Logger) (DoseReminderService, error) {
	if reminders == nil {
		return nil, domain.NewValidationError("reminders", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &doseReminderServiceImpl{
		reminders: reminders,
		logger:    logger.With(slog.String("component", "dose_reminder_service")),
	}, nil
}

// MarkDoseTaken implements DoseReminderService.MarkDoseTaken
func (s *doseReminderServiceImpl) MarkDoseTaken(ctx context.Context, id int64, takenAt time.Time) (*domain.DoseReminder, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	reminder, err := s.reminders.GetByID(ctx, id)
	if err != nil {
		if passthrough(err) {
			return nil, err
		}
		return nil, NewReminderServiceError("mark_dose_taken", "failed to retrieve reminder", err)
	}

	taken, err := reminder.MarkTaken(takenAt)
	if err != nil {
		// Already taken. The state transition is the source of truth here,
		// not the service.
		log.Debug("dose already taken",
			slog.Int64("reminder_id", id))
		return nil, err
	}

	updated, err := s.reminders.Update(ctx, taken)
	if err != nil {
		if passthrough(err) {
			return nil, err
		}
		return nil, NewReminderServiceError("mark_dose_taken", "failed to update reminder", err)
	}

	log.Info("dose marked taken",
		slog.Int64("reminder_id", id),
		slog.Time("taken_at", takenAt))
	return updated, nil
}

// MarkDoseSkipped implements DoseReminderService.MarkDoseSkipped
func (s *doseReminderServiceImpl) MarkDoseSkipped(ctx context.Context, id int64) (*domain.DoseReminder, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	reminder, err := s.reminders.GetByID(ctx, id)
	if err != nil {
		if passthrough(err) {
			return nil, err
		}
		return nil, NewReminderServiceError("mark_dose_skipped", "failed to retrieve reminder", err)
	}

	skipped, err := reminder.MarkSkipped()
	if err != nil {
		log.Debug("dose skip rejected",
			slog.Int64("reminder_id", id),
			slog.String("error", err.Error()))
		return nil, err
	}

	updated, err := s.reminders.Update(ctx, skipped)
	if err != nil {
		if passthrough(err) {
			return nil, err
		}
		return nil, NewReminderServiceError("mark_dose_skipped", "failed to update reminder", err)
	}

	log.Info("dose marked skipped",
		slog.Int64("reminder_id", id))
	return updated, nil
}

// GetReminder implements DoseReminderService.GetReminder
func (s *doseReminderServiceImpl) GetReminder(ctx context.Context, id int64) (*domain.DoseReminder, error) {
	reminder, err := s.reminders.GetByID(ctx, id)
	if err != nil {
		if passthrough(err) {
			return nil, err
		}
		return nil, NewReminderServiceError("get_reminder", "failed to retrieve reminder", err)
	}
	return reminder, nil
}

// ListRemindersBySchedule implements DoseReminderService.ListRemindersBySchedule
func (s *doseReminderServiceImpl) ListRemindersBySchedule(ctx context.Context, scheduleID int64) ([]*domain.DoseReminder, error) {
	reminders, err := s.reminders.FindByScheduleID(ctx, scheduleID)
	if err != nil {
		return nil, NewReminderServiceError("list_reminders_by_schedule", "failed to list reminders", err)
	}
	return reminders, nil
}

// ListRemindersForDay implements DoseReminderService.ListRemindersForDay
func (s *doseReminderServiceImpl) ListRemindersForDay(ctx context.Context, day time.Time) ([]*domain.DoseReminder, error) {
	start, end := DayBounds(day)
	reminders, err := s.reminders.FindByDateRange(ctx, start, end)
	if err != nil {
		return nil, NewReminderServiceError("list_reminders_for_day", "failed to list reminders", err)
	}
	return reminders, nil
}

// ListReminders implements DoseReminderService.ListReminders
func (s *doseReminderServiceImpl) ListReminders(ctx context.Context) ([]*domain.DoseReminder, error) {
	reminders, err := s.reminders.FindAll(ctx)
	if err != nil {
		return nil, NewReminderServiceError("list_reminders", "failed to list reminders", err)
	}
	return reminders, nil
}

// DayBounds returns the inclusive start and end instants of the calendar day
// containing t, in t's location. The end bound is the last representable
// nanosecond of the day so it can be used with BETWEEN-style range queries.
func DayBounds(t time.Time) (start, end time.Time) {
	year, month, day := t.Date()
	start = time.Date(year, month, day, 0, 0, 0, 0, t.Location())
	end = time.Date(year, month, day, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
	return start, end
}
