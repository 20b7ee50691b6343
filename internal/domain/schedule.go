package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Schedule-specific validation errors. All wrap ErrValidation so callers
// can categorize them with errors.Is.
var (
	// ErrScheduleMedicineIDEmpty is returned when a schedule does not reference a medicine.
	ErrScheduleMedicineIDEmpty = fmt.Errorf("%w: schedule medicine ID cannot be empty", ErrValidation)

	// ErrScheduleIntervalInvalid is returned when the dosing interval is not a
	// strictly positive number of hours.
	ErrScheduleIntervalInvalid = fmt.Errorf("%w: schedule interval must be a positive number of hours", ErrValidation)

	// ErrScheduleDurationInvalid is returned when the treatment duration is not a
	// strictly positive number of days.
	ErrScheduleDurationInvalid = fmt.Errorf("%w: schedule duration must be a positive number of days", ErrValidation)

	// ErrScheduleStartTimeEmpty is returned when the daily start time is empty.
	ErrScheduleStartTimeEmpty = fmt.Errorf("%w: schedule start time cannot be empty", ErrValidation)
)

// Schedule represents a treatment plan for one medicine: a dosing interval,
// a total treatment duration, and a daily start time. A schedule is created
// active and never mutates in place; Activate and Deactivate return new
// instances with the flag toggled.
//
// The ID is zero until the schedule has been persisted.
type Schedule struct {
	ID            int64     `json:"id"`
	MedicineID    int64     `json:"medicine_id"`
	IntervalHours int       `json:"interval_hours"`
	DurationDays  int       `json:"duration_days"`
	StartTime     string    `json:"start_time"`
	Notes         string    `json:"notes,omitempty"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewSchedule creates a new active Schedule for the given medicine.
// It sets the creation timestamp and leaves the ID unset until the
// schedule is persisted. Returns an error if validation fails.
func NewSchedule(medicineID int64, intervalHours, durationDays int, startTime, notes string) (*Schedule, error) {
	schedule := &Schedule{
		MedicineID:    medicineID,
		IntervalHours: intervalHours,
		DurationDays:  durationDays,
		StartTime:     startTime,
		Notes:         notes,
		Active:        true,
		CreatedAt:     time.Now().UTC(),
	}

	if err := schedule.Validate(); err != nil {
		return nil, err
	}

	return schedule, nil
}

// Validate checks if the Schedule has valid data.
// Returns an error if any field fails validation.
func (s *Schedule) Validate() error {
	if s.MedicineID <= 0 {
		return ErrScheduleMedicineIDEmpty
	}

	if s.IntervalHours <= 0 {
		return ErrScheduleIntervalInvalid
	}

	if s.DurationDays <= 0 {
		return ErrScheduleDurationInvalid
	}

	if s.StartTime == "" {
		return ErrScheduleStartTimeEmpty
	}

	if _, _, err := ParseStartTime(s.StartTime); err != nil {
		return err
	}

	return nil
}

// DailyDoseCount returns the number of doses taken per day,
// computed as floor(24 / IntervalHours). Intervals longer than a day
// yield zero daily doses.
func (s *Schedule) DailyDoseCount() int {
	return 24 / s.IntervalHours
}

// ExpiresAt returns the instant the treatment plan ends:
// the creation timestamp advanced by the treatment duration in days.
func (s *Schedule) ExpiresAt() time.Time {
	return s.CreatedAt.AddDate(0, 0, s.DurationDays)
}

// IsExpired reports whether the schedule's treatment window has passed
// at the given instant. The boundary is exclusive: a schedule is not
// expired at exactly CreatedAt + DurationDays.
func (s *Schedule) IsExpired(now time.Time) bool {
	return now.After(s.ExpiresAt())
}

// Activate returns a new Schedule with the active flag set.
// The receiver is left unchanged.
func (s *Schedule) Activate() *Schedule {
	copy := *s
	copy.Active = true
	return &copy
}

// Deactivate returns a new Schedule with the active flag cleared.
// The receiver is left unchanged.
func (s *Schedule) Deactivate() *Schedule {
	copy := *s
	copy.Active = false
	return &copy
}

// ParseStartTime parses a daily start time in "HH:MM" form and returns
// the hour and minute components. Returns ErrInvalidStartTime (wrapped
// with the offending value) for anything that is not a valid wall-clock
// time of day.
func ParseStartTime(value string) (hour, minute int, err error) {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidStartTime, value)
	}

	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidStartTime, value)
	}

	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidStartTime, value)
	}

	return hour, minute, nil
}
