package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/mayconaraujosantos/alertasaude-sub001/internal/domain"
	"github.com/mayconaraujosantos/alertasaude-sub001/internal/store"
)

// errMockNotConfigured is returned by mock methods whose behavior was not set
// by the test. A test hitting this is calling a method it did not expect to.
var errMockNotConfigured = errors.New("mock method not configured")

// mockMedicineStore implements store.MedicineStore with injectable behavior.
type mockMedicineStore struct {
	createFn     func(ctx context.Context, medicine *domain.Medicine) (*domain.Medicine, error)
	getByIDFn    func(ctx context.Context, id int64) (*domain.Medicine, error)
	findByNameFn func(ctx context.Context, name string) ([]*domain.Medicine, error)
	findAllFn    func(ctx context.Context) ([]*domain.Medicine, error)
	countFn      func(ctx context.Context) (int64, error)
	updateFn     func(ctx context.Context, medicine *domain.Medicine) (*domain.Medicine, error)
	deleteFn     func(ctx context.Context, id int64) error

	createCalls int
}

func (m *mockMedicineStore) Create(ctx context.Context, medicine *domain.Medicine) (*domain.Medicine, error) {
	m.createCalls++
	if m.createFn == nil {
		return nil, errMockNotConfigured
	}
	return m.createFn(ctx, medicine)
}

func (m *mockMedicineStore) GetByID(ctx context.Context, id int64) (*domain.Medicine, error) {
	if m.getByIDFn == nil {
		return nil, errMockNotConfigured
	}
	return m.getByIDFn(ctx, id)
}

func (m *mockMedicineStore) FindByName(ctx context.Context, name string) ([]*domain.Medicine, error) {
	if m.findByNameFn == nil {
		return nil, errMockNotConfigured
	}
	return m.findByNameFn(ctx, name)
}

func (m *mockMedicineStore) FindAll(ctx context.Context) ([]*domain.Medicine, error) {
	if m.findAllFn == nil {
		return nil, errMockNotConfigured
	}
	return m.findAllFn(ctx)
}

func (m *mockMedicineStore) Count(ctx context.Context) (int64, error) {
	if m.countFn == nil {
		return 0, errMockNotConfigured
	}
	return m.countFn(ctx)
}

func (m *mockMedicineStore) Update(ctx context.Context, medicine *domain.Medicine) (*domain.Medicine, error) {
	if m.updateFn == nil {
		return nil, errMockNotConfigured
	}
	return m.updateFn(ctx, medicine)
}

func (m *mockMedicineStore) Delete(ctx context.Context, id int64) error {
	if m.deleteFn == nil {
		return errMockNotConfigured
	}
	return m.deleteFn(ctx, id)
}

// mockScheduleStore implements store.ScheduleStore with injectable behavior.
// WithTx returns the mock itself so transactional flows can be observed.
type mockScheduleStore struct {
	createFn           func(ctx context.Context, schedule *domain.Schedule) (*domain.Schedule, error)
	getByIDFn          func(ctx context.Context, id int64) (*domain.Schedule, error)
	findByMedicineIDFn func(ctx context.Context, medicineID int64) ([]*domain.Schedule, error)
	findActiveFn       func(ctx context.Context) ([]*domain.Schedule, error)
	findExpiredFn      func(ctx context.Context, now time.Time) ([]*domain.Schedule, error)
	findAllFn          func(ctx context.Context) ([]*domain.Schedule, error)
	countFn            func(ctx context.Context) (int64, error)
	updateFn           func(ctx context.Context, schedule *domain.Schedule) (*domain.Schedule, error)
	deleteFn           func(ctx context.Context, id int64) error

	createCalls int
	withTxCalls int
}

func (m *mockScheduleStore) Create(ctx context.Context, schedule *domain.Schedule) (*domain.Schedule, error) {
	m.createCalls++
	if m.createFn == nil {
		return nil, errMockNotConfigured
	}
	return m.createFn(ctx, schedule)
}

func (m *mockScheduleStore) GetByID(ctx context.Context, id int64) (*domain.Schedule, error) {
	if m.getByIDFn == nil {
		return nil, errMockNotConfigured
	}
	return m.getByIDFn(ctx, id)
}

func (m *mockScheduleStore) FindByMedicineID(ctx context.Context, medicineID int64) ([]*domain.Schedule, error) {
	if m.findByMedicineIDFn == nil {
		return nil, errMockNotConfigured
	}
	return m.findByMedicineIDFn(ctx, medicineID)
}

func (m *mockScheduleStore) FindActive(ctx context.Context) ([]*domain.Schedule, error) {
	if m.findActiveFn == nil {
		return nil, errMockNotConfigured
	}
	return m.findActiveFn(ctx)
}

func (m *mockScheduleStore) FindExpired(ctx context.Context, now time.Time) ([]*domain.Schedule, error) {
	if m.findExpiredFn == nil {
		return nil, errMockNotConfigured
	}
	return m.findExpiredFn(ctx, now)
}

func (m *mockScheduleStore) FindAll(ctx context.Context) ([]*domain.Schedule, error) {
	if m.findAllFn == nil {
		return nil, errMockNotConfigured
	}
	return m.findAllFn(ctx)
}

func (m *mockScheduleStore) Count(ctx context.Context) (int64, error) {
	if m.countFn == nil {
		return 0, errMockNotConfigured
	}
	return m.countFn(ctx)
}

func (m *mockScheduleStore) Update(ctx context.Context, schedule *domain.Schedule) (*domain.Schedule, error) {
	if m.updateFn == nil {
		return nil, errMockNotConfigured
	}
	return m.updateFn(ctx, schedule)
}

func (m *mockScheduleStore) Delete(ctx context.Context, id int64) error {
	if m.deleteFn == nil {
		return errMockNotConfigured
	}
	return m.deleteFn(ctx, id)
}

func (m *mockScheduleStore) WithTx(_ *sql.Tx) store.ScheduleStore {
	m.withTxCalls++
	return m
}

// mockReminderStore implements store.DoseReminderStore with injectable behavior.
type mockReminderStore struct {
	createFn           func(ctx context.Context, reminder *domain.DoseReminder) (*domain.DoseReminder, error)
	createMultipleFn   func(ctx context.Context, reminders []*domain.DoseReminder) ([]*domain.DoseReminder, error)
	getByIDFn          func(ctx context.Context, id int64) (*domain.DoseReminder, error)
	findByScheduleIDFn func(ctx context.Context, scheduleID int64) ([]*domain.DoseReminder, error)
	findByDateRangeFn  func(ctx context.Context, start, end time.Time) ([]*domain.DoseReminder, error)
	findAllFn          func(ctx context.Context) ([]*domain.DoseReminder, error)
	countFn            func(ctx context.Context) (int64, error)
	countByDateRangeFn func(ctx context.Context, start, end time.Time) (int64, error)
	updateFn           func(ctx context.Context, reminder *domain.DoseReminder) (*domain.DoseReminder, error)
	deleteFn           func(ctx context.Context, id int64) error

	createMultipleCalls int
	withTxCalls         int
}

func (m *mockReminderStore) Create(ctx context.Context, reminder *domain.DoseReminder) (*domain.DoseReminder, error) {
	if m.createFn == nil {
		return nil, errMockNotConfigured
	}
	return m.createFn(ctx, reminder)
}

func (m *mockReminderStore) CreateMultiple(ctx context.Context, reminders []*domain.DoseReminder) ([]*domain.DoseReminder, error) {
	m.createMultipleCalls++
	if m.createMultipleFn == nil {
		return nil, errMockNotConfigured
	}
	return m.createMultipleFn(ctx, reminders)
}

func (m *mockReminderStore) GetByID(ctx context.Context, id int64) (*domain.DoseReminder, error) {
	if m.getByIDFn == nil {
		return nil, errMockNotConfigured
	}
	return m.getByIDFn(ctx, id)
}

func (m *mockReminderStore) FindByScheduleID(ctx context.Context, scheduleID int64) ([]*domain.DoseReminder, error) {
	if m.findByScheduleIDFn == nil {
		return nil, errMockNotConfigured
	}
	return m.findByScheduleIDFn(ctx, scheduleID)
}

func (m *mockReminderStore) FindByDateRange(ctx context.Context, start, end time.Time) ([]*domain.DoseReminder, error) {
	if m.findByDateRangeFn == nil {
		return nil, errMockNotConfigured
	}
	return m.findByDateRangeFn(ctx, start, end)
}

func (m *mockReminderStore) FindAll(ctx context.Context) ([]*domain.DoseReminder, error) {
	if m.findAllFn == nil {
		return nil, errMockNotConfigured
	}
	return m.findAllFn(ctx)
}

func (m *mockReminderStore) Count(ctx context.Context) (int64, error) {
	if m.countFn == nil {
		return 0, errMockNotConfigured
	}
	return m.countFn(ctx)
}

func (m *mockReminderStore) CountByDateRange(ctx context.Context, start, end time.Time) (int64, error) {
	if m.countByDateRangeFn == nil {
		return 0, errMockNotConfigured
	}
	return m.countByDateRangeFn(ctx, start, end)
}

func (m *mockReminderStore) Update(ctx context.Context, reminder *domain.DoseReminder) (*domain.DoseReminder, error) {
	if m.updateFn == nil {
		return nil, errMockNotConfigured
	}
	return m.updateFn(ctx, reminder)
}

func (m *mockReminderStore) Delete(ctx context.Context, id int64) error {
	if m.deleteFn == nil {
		return errMockNotConfigured
	}
	return m.deleteFn(ctx, id)
}

func (m *mockReminderStore) WithTx(_ *sql.Tx) store.DoseReminderStore {
	m.withTxCalls++
	return m
}

// mockUserStore implements store.UserStore with injectable behavior.
type mockUserStore struct {
	createFn     func(ctx context.Context, user *domain.User) (*domain.User, error)
	getByIDFn    func(ctx context.Context, id int64) (*domain.User, error)
	getByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	findAllFn    func(ctx context.Context) ([]*domain.User, error)
	updateFn     func(ctx context.Context, user *domain.User) (*domain.User, error)
	deleteFn     func(ctx context.Context, id int64) error
}

func (m *mockUserStore) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if m.createFn == nil {
		return nil, errMockNotConfigured
	}
	return m.createFn(ctx, user)
}

func (m *mockUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if m.getByIDFn == nil {
		return nil, errMockNotConfigured
	}
	return m.getByIDFn(ctx, id)
}

func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.getByEmailFn == nil {
		return nil, errMockNotConfigured
	}
	return m.getByEmailFn(ctx, email)
}

func (m *mockUserStore) FindAll(ctx context.Context) ([]*domain.User, error) {
	if m.findAllFn == nil {
		return nil, errMockNotConfigured
	}
	return m.findAllFn(ctx)
}

func (m *mockUserStore) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	if m.updateFn == nil {
		return nil, errMockNotConfigured
	}
	return m.updateFn(ctx, user)
}

func (m *mockUserStore) Delete(ctx context.Context, id int64) error {
	if m.deleteFn == nil {
		return errMockNotConfigured
	}
	return m.deleteFn(ctx, id)
}

// mockExpander implements dosing.Expander with injectable behavior.
type mockExpander struct {
	expandFn    func(schedule *domain.Schedule) ([]*domain.DoseReminder, error)
	expandCalls int
}

func (m *mockExpander) Expand(schedule *domain.Schedule) ([]*domain.DoseReminder, error) {
	m.expandCalls++
	if m.expandFn == nil {
		return nil, errMockNotConfigured
	}
	return m.expandFn(schedule)
}

// mockPasswordVerifier implements auth.PasswordVerifier with injectable behavior.
type mockPasswordVerifier struct {
	hashFn    func(password string) (string, error)
	compareFn func(hashedPassword, password string) error
}

func (m *mockPasswordVerifier) HashPassword(password string) (string, error) {
	if m.hashFn == nil {
		return "", errMockNotConfigured
	}
	return m.hashFn(password)
}

func (m *mockPasswordVerifier) Compare(hashedPassword, password string) error {
	if m.compareFn == nil {
		return errMockNotConfigured
	}
	return m.compareFn(hashedPassword, password)
}
