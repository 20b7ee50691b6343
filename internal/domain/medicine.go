package domain

import (
	"fmt"
	"time"
)

// Medicine-specific validation errors. All wrap ErrValidation so callers
// can categorize them with errors.Is.
var (
	// ErrMedicineNameEmpty is returned when a medicine name is empty.
	ErrMedicineNameEmpty = fmt.Errorf("%w: medicine name cannot be empty", ErrValidation)

	// ErrMedicineDosageEmpty is returned when a medicine dosage description is empty.
	ErrMedicineDosageEmpty = fmt.Errorf("%w: medicine dosage cannot be empty", ErrValidation)

	// ErrMedicineQuantityNegative is returned when a medicine quantity is negative.
	ErrMedicineQuantityNegative = fmt.Errorf("%w: medicine quantity cannot be negative", ErrValidation)
)

// Medicine represents a single medication registered by a user.
// Instances are immutable: Update returns a new value rather than
// mutating in place, preserving the identity and creation timestamp.
//
// The ID is zero until the medicine has been persisted; the store
// assigns it on create.
type Medicine struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Dosage      string    `json:"dosage"`
	Description string    `json:"description,omitempty"`
	Quantity    int       `json:"quantity,omitempty"`
	Unit        string    `json:"unit,omitempty"`
	Form        string    `json:"form,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// MedicineAttributes carries the mutable fields of a Medicine.
// It is used by NewMedicine and Medicine.Update so callers never
// touch entity fields directly.
type MedicineAttributes struct {
	Name        string
	Dosage      string
	Description string
	Quantity    int
	Unit        string
	Form        string
	ImageURL    string
}

// NewMedicine creates a new Medicine from the given attributes.
// It sets the creation timestamp and leaves the ID unset until the
// medicine is persisted. Returns an error if validation fails.
func NewMedicine(attrs MedicineAttributes) (*Medicine, error) {
	med := &Medicine{
		Name:        attrs.Name,
		Dosage:      attrs.Dosage,
		Description: attrs.Description,
		Quantity:    attrs.Quantity,
		Unit:        attrs.Unit,
		Form:        attrs.Form,
		ImageURL:    attrs.ImageURL,
		CreatedAt:   time.Now().UTC(),
	}

	if err := med.Validate(); err != nil {
		return nil, err
	}

	return med, nil
}

// Validate checks if the Medicine has valid data.
// Returns an error if any field fails validation.
func (m *Medicine) Validate() error {
	if m.Name == "" {
		return ErrMedicineNameEmpty
	}

	if m.Dosage == "" {
		return ErrMedicineDosageEmpty
	}

	if m.Quantity < 0 {
		return ErrMedicineQuantityNegative
	}

	return nil
}

// Update returns a new Medicine with the given attributes applied.
// The identity and creation timestamp of the receiver are preserved.
// Returns an error if the resulting medicine fails validation.
func (m *Medicine) Update(attrs MedicineAttributes) (*Medicine, error) {
	updated := &Medicine{
		ID:          m.ID,
		Name:        attrs.Name,
		Dosage:      attrs.Dosage,
		Description: attrs.Description,
		Quantity:    attrs.Quantity,
		Unit:        attrs.Unit,
		Form:        attrs.Form,
		ImageURL:    attrs.ImageURL,
		CreatedAt:   m.CreatedAt,
	}

	if err := updated.Validate(); err != nil {
		return nil, err
	}

	return updated, nil
}
