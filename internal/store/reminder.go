package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/mayconaraujosantos/alertasaude-sub001/internal/domain"
)

// DoseReminderStore defines the interface for dose reminder data persistence.
type DoseReminderStore interface {
	// Create saves a new dose reminder to the store and returns the persisted
	// entity with its assigned ID. The input is not mutated.
	Create(ctx context.Context, reminder *domain.DoseReminder) (*domain.DoseReminder, error)

	// CreateMultiple saves multiple reminders to the store in input order.
	// IMPORTANT: This method MUST be run within a transaction for atomicity.
	// Use the WithTx method with store.RunInTransaction to ensure proper
	// transaction handling. Calling it outside a transaction may leave a
	// partial reminder set persisted if a failure occurs midway.
	//
	// Usage example:
	//   err := store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
	//       _, err := reminderStore.WithTx(tx).CreateMultiple(ctx, reminders)
	//       return err
	//   })
	CreateMultiple(ctx context.Context, reminders []*domain.DoseReminder) ([]*domain.DoseReminder, error)

	// GetByID retrieves a dose reminder by its unique ID.
	// Returns ErrReminderNotFound if the reminder does not exist.
	GetByID(ctx context.Context, id int64) (*domain.DoseReminder, error)

	// FindByScheduleID retrieves all reminders belonging to the given
	// schedule, ordered by scheduled fire time.
	FindByScheduleID(ctx context.Context, scheduleID int64) ([]*domain.DoseReminder, error)

	// FindByDateRange retrieves all reminders scheduled to fire within
	// [start, end], ordered by scheduled fire time.
	FindByDateRange(ctx context.Context, start, end time.Time) ([]*domain.DoseReminder, error)

	// FindAll retrieves all reminders ordered by scheduled fire time.
	FindAll(ctx context.Context) ([]*domain.DoseReminder, error)

	// Count returns the total number of reminders in the store.
	Count(ctx context.Context) (int64, error)

	// CountByDateRange returns the number of reminders scheduled to fire
	// within [start, end].
	CountByDateRange(ctx context.Context, start, end time.Time) (int64, error)

	// Update replaces an existing reminder's stored state with the given entity.
	// Returns ErrReminderNotFound if the reminder does not exist.
	Update(ctx context.Context, reminder *domain.DoseReminder) (*domain.DoseReminder, error)

	// Delete removes a reminder from the store by its ID.
	// Returns ErrReminderNotFound if the reminder does not exist.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a new DoseReminderStore instance that uses the provided transaction.
	// This allows for multiple operations to be executed within a single transaction.
	// The transaction should be created and managed by the caller (typically a service).
	WithTx(tx *sql.Tx) DoseReminderStore
}
