package store

import (
	"context"

	"github.com/mayconaraujosantos/alertasaude-sub001/internal/domain"
)

// MedicineStore defines the interface for medicine data persistence.
type MedicineStore interface {
	// Create saves a new medicine to the store and returns the persisted
	// entity with its assigned ID. The input is not mutated.
	// Returns validation errors from the domain Medicine if data is invalid.
	Create(ctx context.Context, medicine *domain.Medicine) (*domain.Medicine, error)

	// GetByID retrieves a medicine by its unique ID.
	// Returns ErrMedicineNotFound if the medicine does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Medicine, error)

	// FindByName retrieves all medicines whose name matches the given value.
	FindByName(ctx context.Context, name string) ([]*domain.Medicine, error)

	// FindAll retrieves all medicines ordered by creation time.
	FindAll(ctx context.Context) ([]*domain.Medicine, error)

	// Count returns the total number of medicines in the store.
	Count(ctx context.Context) (int64, error)

	// Update replaces an existing medicine's stored state with the given entity.
	// Returns ErrMedicineNotFound if the medicine does not exist.
	// Returns validation errors from the domain Medicine if data is invalid.
	Update(ctx context.Context, medicine *domain.Medicine) (*domain.Medicine, error)

	// Delete removes a medicine from the store by its ID.
	// Returns ErrMedicineNotFound if the medicine does not exist.
	// Schedules and reminders referencing the medicine are removed by the
	// store's cascade rules.
	Delete(ctx context.Context, id int64) error
}
