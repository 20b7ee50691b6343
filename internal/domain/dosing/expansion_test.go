package dosing

import (
	"errors"
	"testing"
	"time"

	"github.com/mayconaraujosantos/alertasaude-sub001/internal/domain"
)

// persistedSchedule builds a valid schedule with an assigned ID and a fixed
// creation timestamp, so expansion results are fully deterministic.
func persistedSchedule(t *testing.T, intervalHours, durationDays int, startTime string, createdAt time.Time) *domain.Schedule {
	t.Helper()

	schedule, err := domain.NewSchedule(7, intervalHours, durationDays, startTime, "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	schedule.ID = 3
	schedule.CreatedAt = createdAt
	return schedule
}

func TestExpandCount(t *testing.T) {
	t.Parallel() // Enable parallel execution
	createdAt := time.Date(2024, 3, 1, 10, 42, 17, 123, time.UTC)

	testCases := []struct {
		name          string
		intervalHours int
		durationDays  int
		expected      int
	}{
		{
			name:          "8h interval over 2 days yields 6 doses",
			intervalHours: 8,
			durationDays:  2,
			expected:      6,
		},
		{
			name:          "6h interval over 1 day yields 4 doses",
			intervalHours: 6,
			durationDays:  1,
			expected:      4,
		},
		{
			name:          "uneven 7h interval floors the daily count",
			intervalHours: 7,
			durationDays:  3,
			expected:      9, // 3 days x floor(24/7)
		},
		{
			name:          "24h interval yields one dose per day",
			intervalHours: 24,
			durationDays:  5,
			expected:      5,
		},
	}

	expander := NewExpander()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			schedule := persistedSchedule(t, tc.intervalHours, tc.durationDays, "08:00", createdAt)

			reminders, err := expander.Expand(schedule)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}

			if len(reminders) != tc.expected {
				t.Errorf("Expected %d reminders, got %d", tc.expected, len(reminders))
			}
		})
	}
}

func TestExpandInstants(t *testing.T) {
	t.Parallel() // Enable parallel execution
	createdAt := time.Date(2024, 3, 1, 10, 42, 17, 123, time.UTC)
	schedule := persistedSchedule(t, 8, 2, "09:30", createdAt)

	reminders, err := NewExpander().Expand(schedule)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	expected := []time.Time{
		time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC),
		time.Date(2024, 3, 1, 17, 30, 0, 0, time.UTC),
		time.Date(2024, 3, 2, 1, 30, 0, 0, time.UTC), // 9+16=25 rolls into day 2
		time.Date(2024, 3, 2, 9, 30, 0, 0, time.UTC),
		time.Date(2024, 3, 2, 17, 30, 0, 0, time.UTC),
		time.Date(2024, 3, 3, 1, 30, 0, 0, time.UTC),
	}

	if len(reminders) != len(expected) {
		t.Fatalf("Expected %d reminders, got %d", len(expected), len(reminders))
	}

	for i, reminder := range reminders {
		if !reminder.ScheduledAt.Equal(expected[i]) {
			t.Errorf("Reminder %d: expected %v, got %v", i, expected[i], reminder.ScheduledAt)
		}
		if reminder.ScheduleID != schedule.ID {
			t.Errorf("Reminder %d: expected schedule ID %d, got %d", i, schedule.ID, reminder.ScheduleID)
		}
		if reminder.MedicineID != schedule.MedicineID {
			t.Errorf("Reminder %d: expected medicine ID %d, got %d", i, schedule.MedicineID, reminder.MedicineID)
		}
		if !reminder.IsPending() {
			t.Errorf("Reminder %d: expected pending state", i)
		}
		if reminder.ID != 0 {
			t.Errorf("Reminder %d: expected unpersisted reminder, got ID %d", i, reminder.ID)
		}
	}
}

func TestExpandHourOverflowRollsIntoNextDay(t *testing.T) {
	t.Parallel() // Enable parallel execution
	createdAt := time.Date(2024, 6, 10, 7, 0, 0, 0, time.UTC)
	schedule := persistedSchedule(t, 6, 1, "08:00", createdAt)

	reminders, err := NewExpander().Expand(schedule)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	expected := []time.Time{
		time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 10, 14, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 10, 20, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 11, 2, 0, 0, 0, time.UTC), // hour 26 normalizes to 02:00 next day
	}

	if len(reminders) != len(expected) {
		t.Fatalf("Expected %d reminders, got %d", len(expected), len(reminders))
	}

	for i, reminder := range reminders {
		if !reminder.ScheduledAt.Equal(expected[i]) {
			t.Errorf("Reminder %d: expected %v, got %v", i, expected[i], reminder.ScheduledAt)
		}
	}
}

func TestExpandAnchorsOnScheduleCreation(t *testing.T) {
	t.Parallel() // Enable parallel execution
	createdAt := time.Date(2023, 11, 20, 22, 15, 0, 0, time.UTC)
	schedule := persistedSchedule(t, 12, 1, "06:00", createdAt)

	expander := NewExpander()
	first, err := expander.Expand(schedule)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Occurrences are anchored to the schedule's creation date, not to the
	// wall clock at expansion time.
	if got := first[0].ScheduledAt; got.Year() != 2023 || got.Month() != time.November || got.Day() != 20 {
		t.Errorf("Expected first dose on the schedule's creation date, got %v", got)
	}

	// Expanding the same schedule again yields identical occurrences.
	second, err := expander.Expand(schedule)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	for i := range first {
		if !first[i].ScheduledAt.Equal(second[i].ScheduledAt) {
			t.Errorf("Occurrence %d differs between expansions: %v vs %v",
				i, first[i].ScheduledAt, second[i].ScheduledAt)
		}
	}
}

func TestExpandRejectsUnpersistedSchedule(t *testing.T) {
	t.Parallel() // Enable parallel execution
	schedule, err := domain.NewSchedule(7, 8, 2, "08:00", "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	_, err = NewExpander().Expand(schedule)
	if !errors.Is(err, ErrScheduleNotPersisted) {
		t.Errorf("Expected ErrScheduleNotPersisted, got %v", err)
	}
}
