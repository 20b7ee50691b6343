package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/mayconaraujosantos/alertasaude-sub001/internal/domain"
)

// ScheduleStore defines the interface for schedule data persistence.
type ScheduleStore interface {
	// Create saves a new schedule to the store and returns the persisted
	// entity with its assigned ID. The input is not mutated.
	// Returns ErrInvalidEntity if the referenced medicine does not exist.
	// Returns validation errors from the domain Schedule if data is invalid.
	Create(ctx context.Context, schedule *domain.Schedule) (*domain.Schedule, error)

	// GetByID retrieves a schedule by its unique ID.
	// Returns ErrScheduleNotFound if the schedule does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Schedule, error)

	// FindByMedicineID retrieves all schedules for the given medicine,
	// ordered by creation time.
	FindByMedicineID(ctx context.Context, medicineID int64) ([]*domain.Schedule, error)

	// FindActive retrieves all schedules whose active flag is set.
	FindActive(ctx context.Context) ([]*domain.Schedule, error)

	// FindExpired retrieves all schedules whose treatment window ended
	// before the given instant.
	FindExpired(ctx context.Context, now time.Time) ([]*domain.Schedule, error)

	// FindAll retrieves all schedules ordered by creation time.
	FindAll(ctx context.Context) ([]*domain.Schedule, error)

	// Count returns the total number of schedules in the store.
	Count(ctx context.Context) (int64, error)

	// Update replaces an existing schedule's stored state with the given entity.
	// Returns ErrScheduleNotFound if the schedule does not exist.
	Update(ctx context.Context, schedule *domain.Schedule) (*domain.Schedule, error)

	// Delete removes a schedule from the store by its ID.
	// Returns ErrScheduleNotFound if the schedule does not exist.
	//
	// Dose reminders belonging to the schedule are removed through the
	// store's ON DELETE CASCADE rules; application code does not delete
	// them explicitly.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a new ScheduleStore instance that uses the provided transaction.
	// This allows for multiple operations to be executed within a single transaction.
	// The transaction should be created and managed by the caller (typically a service).
	WithTx(tx *sql.Tx) ScheduleStore
}
