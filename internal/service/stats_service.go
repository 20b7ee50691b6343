package service

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mayconaraujosantos/alertasaude-sub001/internal/domain"
	"github.com/mayconaraujosantos/alertasaude-sub001/internal/store"
)

// DatabaseStats holds aggregate entity counts across the whole store.
type DatabaseStats struct {
	Medicines int64 `json:"medicines"`
	Schedules int64 `json:"schedules"`
	Reminders int64 `json:"reminders"`
}

// TodayStats extends DatabaseStats with the number of reminders scheduled
// to fire on the current calendar day.
type TodayStats struct {
	DatabaseStats
	RemindersToday int64 `json:"reminders_today"`
}

// StatsService provides aggregate statistics over the stored entities.
type StatsService interface {
	// GetDatabaseStats returns the total counts of medicines, schedules
	// and reminders. The counts are gathered concurrently; a point-in-time
	// snapshot is not guaranteed under concurrent writes.
	GetDatabaseStats(ctx context.Context) (*DatabaseStats, error)

	// GetTodayStats returns the database stats plus the number of reminders
	// scheduled for the calendar day containing now, in now's location.
	GetTodayStats(ctx context.Context, now time.Time) (*TodayStats, error)
}

// statsServiceImpl implements the StatsService interface.
type statsServiceImpl struct {
	medicines store.MedicineStore
	schedules store.ScheduleStore
	reminders store.DoseReminderStore
	logger    *slog.Logger
}

// Ensure statsServiceImpl implements StatsService interface
var _ StatsService = (*statsServiceImpl)(nil)

// NewStatsService creates a new StatsService.
func NewStatsService(
	medicines store.MedicineStore,
	schedules store.ScheduleStore,
	reminders store.DoseReminderStore,
	logger *slog.Logger,
) (StatsService, error) {
	if medicines == nil {
		return nil, domain.NewValidationError("medicines", "cannot be nil", domain.ErrValidation)
	}
	if schedules == nil {
		return nil, domain.NewValidationError("schedules", "cannot be nil", domain.ErrValidation)
	}
	if reminders == nil {
		return nil, domain.NewValidationError("reminders", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &statsServiceImpl{
		medicines: medicines,
		schedules: schedules,
		reminders: reminders,
		logger:    logger.With(slog.String("component", "stats_service")),
	}, nil
}

// GetDatabaseStats implements StatsService.GetDatabaseStats
func (s *statsServiceImpl) GetDatabaseStats(ctx context.Context) (*DatabaseStats, error) {
	var stats DatabaseStats

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.medicines.Count(ctx)
		if err != nil {
			return NewStatsServiceError("get_database_stats", "failed to count medicines", err)
		}
		stats.Medicines = n
		return nil
	})
	g.Go(func() error {
		n, err := s.schedules.Count(ctx)
		if err != nil {
			return NewStatsServiceError("get_database_stats", "failed to count schedules", err)
		}
		stats.Schedules = n
		return nil
	})
	g.Go(func() error {
		n, err := s.reminders.Count(ctx)
		if err != nil {
			return NewStatsServiceError("get_database_stats", "failed to count reminders", err)
		}
		stats.Reminders = n
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &stats, nil
}

// GetTodayStats implements StatsService.GetTodayStats
func (s *statsServiceImpl) GetTodayStats(ctx context.Context, now time.Time) (*TodayStats, error) {
	var (
		base  *DatabaseStats
		today int64
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		base, err = s.GetDatabaseStats(ctx)
		return err
	})
	g.Go(func() error {
		start, end := DayBounds(now)
		n, err := s.reminders.CountByDateRange(ctx, start, end)
		if err != nil {
			return NewStatsServiceError("get_today_stats", "failed to count today's reminders", err)
		}
		today = n
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &TodayStats{DatabaseStats: *base, RemindersToday: today}, nil
}
