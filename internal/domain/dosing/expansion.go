// Package dosing implements the schedule expansion algorithm: the pure,
// deterministic computation that turns a treatment Schedule into the full
// ordered sequence of dose occurrences it implies.
package dosing

import (
	"errors"
	"time"

	"github.com/mayconaraujosantos/alertasaude-sub001/internal/domain"
)

// Expansion errors
var (
	// ErrScheduleNotPersisted is returned when the schedule to expand has no
	// assigned ID. Reminders reference their schedule by ID, so expansion of
	// an unpersisted schedule would produce unlinkable reminders.
	ErrScheduleNotPersisted = errors.New("schedule must be persisted before expansion")
)

// Expander computes the dose occurrences implied by a schedule.
type Expander interface {
	// Expand produces the complete, ordered sequence of unpersisted
	// DoseReminder instances for the given schedule.
	Expand(schedule *domain.Schedule) ([]*domain.DoseReminder, error)
}

// defaultExpander implements the Expander interface.
type defaultExpander struct{}

// NewExpander creates an Expander with the default expansion behavior.
func NewExpander() Expander {
	return &defaultExpander{}
}

// Expand implements the Expander interface.
//
// For a schedule with duration D days and interval I hours it emits exactly
// D × floor(24/I) reminders, in day-major then dose-index-minor order. The
// occurrence for day d, dose k fires at the anchor date advanced by d days,
// at hour startHour + k·I and minute startMinute, with seconds and
// sub-second precision zeroed. Hours at or beyond 24 roll into the following
// calendar day.
//
// The anchor is the schedule's own creation timestamp, so expansion is a pure
// function of the schedule: expanding the same schedule twice yields the same
// occurrences.
func (e *defaultExpander) Expand(schedule *domain.Schedule) ([]*domain.DoseReminder, error) {
	if schedule.ID <= 0 {
		return nil, ErrScheduleNotPersisted
	}

	if err := schedule.Validate(); err != nil {
		return nil, err
	}

	startHour, startMinute, err := domain.ParseStartTime(schedule.StartTime)
	if err != nil {
		return nil, err
	}

	anchor := schedule.CreatedAt
	dailyDoses := schedule.DailyDoseCount()

	reminders := make([]*domain.DoseReminder, 0, schedule.DurationDays*dailyDoses)
	for day := 0; day < schedule.DurationDays; day++ {
		for dose := 0; dose < dailyDoses; dose++ {
			// time.Date normalizes hours >= 24 into the next day.
			instant := time.Date(
				anchor.Year(), anchor.Month(), anchor.Day()+day,
				startHour+dose*schedule.IntervalHours, startMinute, 0, 0,
				anchor.Location(),
			)

			reminder, err := domain.NewDoseReminder(schedule.ID, schedule.MedicineID, instant)
			if err != nil {
				return nil, err
			}
			reminders = append(reminders, reminder)
		}
	}

	return reminders, nil
}
