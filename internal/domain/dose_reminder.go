package domain

import (
	"fmt"
	"time"
)

// DoseReminder-specific validation errors. All wrap ErrValidation so
// callers can categorize them with errors.Is.
var (
	// ErrReminderScheduleIDEmpty is returned when a reminder does not reference a schedule.
	ErrReminderScheduleIDEmpty = fmt.Errorf("%w: reminder schedule ID cannot be empty", ErrValidation)

	// ErrReminderMedicineIDEmpty is returned when a reminder does not reference a medicine.
	ErrReminderMedicineIDEmpty = fmt.Errorf("%w: reminder medicine ID cannot be empty", ErrValidation)

	// ErrReminderScheduledAtZero is returned when a reminder has no scheduled fire time.
	ErrReminderScheduledAtZero = fmt.Errorf("%w: reminder scheduled time cannot be zero", ErrValidation)
)

// DoseReminder represents one concrete, time-stamped dose occurrence derived
// from a Schedule. A reminder is created pending and transitions exactly once
// to taken or to skipped; it is otherwise immutable. MarkTaken and MarkSkipped
// return new instances rather than mutating the receiver.
//
// The ID is zero until the reminder has been persisted.
type DoseReminder struct {
	ID          int64      `json:"id"`
	ScheduleID  int64      `json:"schedule_id"`
	MedicineID  int64      `json:"medicine_id"`
	ScheduledAt time.Time  `json:"scheduled_at"`
	Taken       bool       `json:"taken"`
	Skipped     bool       `json:"skipped"`
	TakenAt     *time.Time `json:"taken_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// NewDoseReminder creates a new pending DoseReminder for the given schedule
// and medicine, scheduled to fire at the given instant. The ID stays unset
// until the reminder is persisted. Returns an error if validation fails.
func NewDoseReminder(scheduleID, medicineID int64, scheduledAt time.Time) (*DoseReminder, error) {
	reminder := &DoseReminder{
		ScheduleID:  scheduleID,
		MedicineID:  medicineID,
		ScheduledAt: scheduledAt,
		CreatedAt:   time.Now().UTC(),
	}

	if err := reminder.Validate(); err != nil {
		return nil, err
	}

	return reminder, nil
}

// Validate checks if the DoseReminder has valid data.
// Returns an error if any field fails validation.
func (r *DoseReminder) Validate() error {
	if r.ScheduleID <= 0 {
		return ErrReminderScheduleIDEmpty
	}

	if r.MedicineID <= 0 {
		return ErrReminderMedicineIDEmpty
	}

	if r.ScheduledAt.IsZero() {
		return ErrReminderScheduledAtZero
	}

	return nil
}

// IsPending reports whether the reminder has not yet been taken or skipped.
func (r *DoseReminder) IsPending() bool {
	return !r.Taken && !r.Skipped
}

// MarkTaken returns a new DoseReminder marked as taken at the given instant.
// Returns ErrDoseAlreadyTaken if the dose was already taken; a taken dose
// can never be taken twice.
func (r *DoseReminder) MarkTaken(takenAt time.Time) (*DoseReminder, error) {
	if r.Taken {
		return nil, ErrDoseAlreadyTaken
	}

	taken := *r
	taken.Taken = true
	taken.Skipped = false
	at := takenAt.UTC()
	taken.TakenAt = &at
	return &taken, nil
}

// MarkSkipped returns a new DoseReminder marked as skipped.
// Returns ErrDoseAlreadyTaken if the dose was already taken (a consumed dose
// cannot be skipped) and ErrDoseAlreadySkipped if it was already skipped.
func (r *DoseReminder) MarkSkipped() (*DoseReminder, error) {
	if r.Taken {
		return nil, ErrDoseAlreadyTaken
	}
	if r.Skipped {
		return nil, ErrDoseAlreadySkipped
	}

	skipped := *r
	skipped.Skipped = true
	return &skipped, nil
}
