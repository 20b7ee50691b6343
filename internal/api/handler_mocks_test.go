package api

import (
	"context"
	"errors"
	"time"

	"github.com/mayconaraujosantos/alertasaude-sub001/internal/domain"
	"github.com/mayconaraujosantos/alertasaude-sub001/internal/service"
)

var errHandlerMockNotConfigured = errors.New("mock method not configured")

// mockScheduleService implements service.ScheduleService for handler tests.
type mockScheduleService struct {
	createFn         func(ctx context.Context, params service.CreateScheduleParams) (*domain.Schedule, error)
	getFn            func(ctx context.Context, id int64) (*domain.Schedule, error)
	listFn           func(ctx context.Context) ([]*domain.Schedule, error)
	listByMedicineFn func(ctx context.Context, medicineID int64) ([]*domain.Schedule, error)
	setActiveFn      func(ctx context.Context, id int64, active bool) (*domain.Schedule, error)
	deleteFn         func(ctx context.Context, id int64) error
}

func (m *mockScheduleService) CreateScheduleWithReminders(ctx context.Context, params service.CreateScheduleParams) (*domain.Schedule, error) {
	if m.createFn == nil {
		return nil, errHandlerMockNotConfigured
	}
	return m.createFn(ctx, params)
}

func (m *mockScheduleService) GetSchedule(ctx context.Context, id int64) (*domain.Schedule, error) {
	if m.getFn == nil {
		return nil, errHandlerMockNotConfigured
	}
	return m.getFn(ctx, id)
}

func (m *mockScheduleService) ListSchedules(ctx context.Context) ([]*domain.Schedule, error) {
	if m.listFn == nil {
		return nil, errHandlerMockNotConfigured
	}
	return m.listFn(ctx)
}

func (m *mockScheduleService) ListSchedulesByMedicine(ctx context.Context, medicineID int64) ([]*domain.Schedule, error) {
	if m.listByMedicineFn == nil {
		return nil, errHandlerMockNotConfigured
	}
	return m.listByMedicineFn(ctx, medicineID)
}

func (m *mockScheduleService) SetScheduleActive(ctx context.Context, id int64, active bool) (*domain.Schedule, error) {
	if m.setActiveFn == nil {
		return nil, errHandlerMockNotConfigured
	}
	return m.setActiveFn(ctx, id, active)
}

func (m *mockScheduleService) DeleteSchedule(ctx context.Context, id int64) error {
	if m.deleteFn == nil {
		return errHandlerMockNotConfigured
	}
	return m.deleteFn(ctx, id)
}

// mockMedicineService implements service.MedicineService for handler tests.
type mockMedicineService struct {
	createFn func(ctx context.Context, attrs domain.MedicineAttributes) (*domain.Medicine, error)
	getFn    func(ctx context.Context, id int64) (*domain.Medicine, error)
	searchFn func(ctx context.Context, name string) ([]*domain.Medicine, error)
	listFn   func(ctx context.Context) ([]*domain.Medicine, error)
	updateFn func(ctx context.Context, id int64, attrs domain.MedicineAttributes) (*domain.Medicine, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockMedicineService) CreateMedicine(ctx context.Context, attrs domain.MedicineAttributes) (*domain.Medicine, error) {
	if m.createFn == nil {
		return nil, errHandlerMockNotConfigured
	}
	return m.createFn(ctx, attrs)
}

func (m *mockMedicineService) GetMedicine(ctx context.Context, id int64) (*domain.Medicine, error) {
	if m.getFn == nil {
		return nil, errHandlerMockNotConfigured
	}
	return m.getFn(ctx, id)
}

func (m *mockMedicineService) SearchMedicines(ctx context.Context, name string) ([]*domain.Medicine, error) {
	if m.searchFn == nil {
		return nil, errHandlerMockNotConfigured
	}
	return m.searchFn(ctx, name)
}

func (m *mockMedicineService) ListMedicines(ctx context.Context) ([]*domain.Medicine, error) {
	if m.listFn == nil {
		return nil, errHandlerMockNotConfigured
	}
	return m.listFn(ctx)
}

func (m *mockMedicineService) UpdateMedicine(ctx context.Context, id int64, attrs domain.MedicineAttributes) (*domain.Medicine, error) {
	if m.updateFn == nil {
		return nil, errHandlerMockNotConfigured
	}
	return m.updateFn(ctx, id, attrs)
}

func (m *mockMedicineService) DeleteMedicine(ctx context.Context, id int64) error {
	if m.deleteFn == nil {
		return errHandlerMockNotConfigured
	}
	return m.deleteFn(ctx, id)
}

// mockReminderService implements service.DoseReminderService for handler tests.
type mockReminderService struct {
	markTakenFn      func(ctx context.Context, id int64, takenAt time.Time) (*domain.DoseReminder, error)
	markSkippedFn    func(ctx context.Context, id int64) (*domain.DoseReminder, error)
	getFn            func(ctx context.Context, id int64) (*domain.DoseReminder, error)
	listByScheduleFn func(ctx context.Context, scheduleID int64) ([]*domain.DoseReminder, error)
	listForDayFn     func(ctx context.Context, day time.Time) ([]*domain.DoseReminder, error)
	listFn           func(ctx context.Context) ([]*domain.DoseReminder, error)
}

func (m *mockReminderService) MarkDoseTaken(ctx context.Context, id int64, takenAt time.Time) (*domain.DoseReminder, error) {
	if m.markTakenFn == nil {
		return nil, errHandlerMockNotConfigured
	}
	return m.markTakenFn(ctx, id, takenAt)
}

func (m *mockReminderService) MarkDoseSkipped(ctx context.Context, id int64) (*domain.DoseReminder, error) {
	if m.markSkippedFn == nil {
		return nil, errHandlerMockNotConfigured
	}
	return m.markSkippedFn(ctx, id)
}

func (m *mockReminderService) GetReminder(ctx context.Context, id int64) (*domain.DoseReminder, error) {
	if m.getFn == nil {
		return nil, errHandlerMockNotConfigured
	}
	return m.getFn(ctx, id)
}

func (m *mockReminderService) ListRemindersBySchedule(ctx context.Context, scheduleID int64) ([]*domain.DoseReminder, error) {
	if m.listByScheduleFn == nil {
		return nil, errHandlerMockNotConfigured
	}
	return m.listByScheduleFn(ctx, scheduleID)
}

func (m *mockReminderService) ListRemindersForDay(ctx context.Context, day time.Time) ([]*domain.DoseReminder, error) {
	if m.listForDayFn == nil {
		return nil, errHandlerMockNotConfigured
	}
	return m.listForDayFn(ctx, day)
}

func (m *mockReminderService) ListReminders(ctx context.Context) ([]*domain.DoseReminder, error) {
	if m.listFn == nil {
		return nil, errHandlerMockNotConfigured
	}
	return m.listFn(ctx)
}
