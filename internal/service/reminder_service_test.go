package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mayconaraujosantos/alertasaude-sub001/internal/domain"
	"github.com/mayconaraujosantos/alertasaude-sub001/internal/store"
)

func pendingReminder(t *testing.T, id int64) *domain.DoseReminder {
	t.Helper()
	r, err := domain.NewDoseReminder(1, 2, time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	r.ID = id
	return r
}

func TestMarkDoseTaken(t *testing.T) {
	t.Parallel()

	reminder := pendingReminder(t, 10)
	var updated *domain.DoseReminder
	reminders := &mockReminderStore{
		getByIDFn: func(_ context.Context, id int64) (*domain.DoseReminder, error) {
			require.Equal(t, int64(10), id)
			return reminder, nil
		},
		updateFn: func(_ context.Context, r *domain.DoseReminder) (*domain.DoseReminder, error) {
			updated = r
			return r, nil
		},
	}

	svc, err := NewDoseReminderService(reminders, nil)
	require.NoError(t, err)

	takenAt := time.Date(2026, time.March, 1, 9, 5, 0, 0, time.UTC)
	got, err := svc.MarkDoseTaken(context.Background(), 10, takenAt)
	require.NoError(t, err)

	assert.True(t, got.Taken)
	require.NotNil(t, got.TakenAt)
	assert.Equal(t, takenAt, *got.TakenAt)
	assert.Equal(t, got, updated)
	assert.False(t, reminder.Taken, "stored reminder must not be mutated in place")
}

func TestMarkDoseTakenTwiceIsRejected(t *testing.T) {
	t.Parallel()

	reminder := pendingReminder(t, 10)
	takenAt := time.Date(2026, time.March, 1, 9, 5, 0, 0, time.UTC)
	taken, err := reminder.MarkTaken(takenAt)
	require.NoError(t, err)

	updateCalls := 0
	reminders := &mockReminderStore{
		getByIDFn: func(_ context.Context, _ int64) (*domain.DoseReminder, error) {
			return taken, nil
		},
		updateFn: func(_ context.Context, r *domain.DoseReminder) (*domain.DoseReminder, error) {
			updateCalls++
			return r, nil
		},
	}

	svc, err := NewDoseReminderService(reminders, nil)
	require.NoError(t, err)

	_, err = svc.MarkDoseTaken(context.Background(), 10, takenAt.Add(time.Minute))
	assert.ErrorIs(t, err, domain.ErrDoseAlreadyTaken)
	assert.Equal(t, 0, updateCalls, "rejected transition must not hit the store")
}

func TestMarkDoseSkipped(t *testing.T) {
	t.Parallel()

	reminder := pendingReminder(t, 11)
	reminders := &mockReminderStore{
		getByIDFn: func(_ context.Context, _ int64) (*domain.DoseReminder, error) {
			return reminder, nil
		},
		updateFn: func(_ context.Context, r *domain.DoseReminder) (*domain.DoseReminder, error) {
			return r, nil
		},
	}

	svc, err := NewDoseReminderService(reminders, nil)
	require.NoError(t, err)

	got, err := svc.MarkDoseSkipped(context.Background(), 11)
	require.NoError(t, err)
	assert.True(t, got.Skipped)
	assert.False(t, got.Taken)
}

func TestMarkDoseSkippedGuards(t *testing.T) {
	t.Parallel()

	base := pendingReminder(t, 11)

	taken, err := base.MarkTaken(time.Now().UTC())
	require.NoError(t, err)
	skipped, err := base.MarkSkipped()
	require.NoError(t, err)

	tests := []struct {
		name    string
		stored  *domain.DoseReminder
		wantErr error
	}{
		{name: "already taken", stored: taken, wantErr: domain.ErrDoseAlreadyTaken},
		{name: "already skipped", stored: skipped, wantErr: domain.ErrDoseAlreadySkipped},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			reminders := &mockReminderStore{
				getByIDFn: func(_ context.Context, _ int64) (*domain.DoseReminder, error) {
					return tc.stored, nil
				},
			}

			svc, err := NewDoseReminderService(reminders, nil)
			require.NoError(t, err)

			_, err = svc.MarkDoseSkipped(context.Background(), 11)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// A skipped dose can still be marked taken afterwards.
func TestMarkDoseTakenAfterSkip(t *testing.T) {
	t.Parallel()

	base := pendingReminder(t, 12)
	skipped, err := base.MarkSkipped()
	require.NoError(t, err)

	reminders := &mockReminderStore{
		getByIDFn: func(_ context.Context, _ int64) (*domain.DoseReminder, error) {
			return skipped, nil
		},
		updateFn: func(_ context.Context, r *domain.DoseReminder) (*domain.DoseReminder, error) {
			return r, nil
		},
	}

	svc, err := NewDoseReminderService(reminders, nil)
	require.NoError(t, err)

	got, err := svc.MarkDoseTaken(context.Background(), 12, time.Now().UTC())
	require.NoError(t, err)
	assert.True(t, got.Taken)
}

func TestMarkDoseTakenNotFoundPassesThrough(t *testing.T) {
	t.Parallel()

	reminders := &mockReminderStore{
		getByIDFn: func(_ context.Context, _ int64) (*domain.DoseReminder, error) {
			return nil, store.ErrReminderNotFound
		},
	}

	svc, err := NewDoseReminderService(reminders, nil)
	require.NoError(t, err)

	_, err = svc.MarkDoseTaken(context.Background(), 99, time.Now().UTC())
	assert.ErrorIs(t, err, store.ErrReminderNotFound)
}

func TestListRemindersForDayUsesLocalDayBounds(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC-3", -3*60*60)
	day := time.Date(2026, time.March, 1, 15, 30, 0, 0, loc)

	var gotStart, gotEnd time.Time
	reminders := &mockReminderStore{
		findByDateRangeFn: func(_ context.Context, start, end time.Time) ([]*domain.DoseReminder, error) {
			gotStart, gotEnd = start, end
			return nil, nil
		},
	}

	svc, err := NewDoseReminderService(reminders, nil)
	require.NoError(t, err)

	_, err = svc.ListRemindersForDay(context.Background(), day)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, loc), gotStart)
	assert.Equal(t, time.Date(2026, time.March, 1, 23, 59, 59, 999999999, loc), gotEnd)
}

func TestDayBounds(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, time.December, 31, 23, 59, 59, 999999999, time.UTC)
	start, end := DayBounds(at)

	assert.Equal(t, time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, at, end)
	assert.True(t, end.Before(time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC)))
}
