package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/mayconaraujosantos/alertasaude-sub001/internal/domain"
	"github.com/mayconaraujosantos/alertasaude-sub001/internal/platform/logger"
	"github.com/mayconaraujosantos/alertasaude-sub001/internal/store"
)

// PostgresMedicineStore implements the store.MedicineStore interface
// using a PostgreSQL database as the storage backend.
type PostgresMedicineStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresMedicineStore creates a new PostgreSQL implementation of the
// MedicineStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresMedicineStore(db store.DBTX, logger *slog.Logger) *PostgresMedicineStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresMedicineStore{
		db:     db,
		logger: logger.With(slog.String("component", "medicine_store")),
	}
}

// Ensure PostgresMedicineStore implements store.MedicineStore interface
var _ store.MedicineStore = (*PostgresMedicineStore)(nil)

// medicineColumns is the column list every medicine SELECT scans, in
// domain.Medicine field order.
const medicineColumns = "id, name, dosage, description, quantity, unit, form, image_url, created_at"

// Create implements store.MedicineStore.Create
// It saves a new medicine to the database and returns a copy carrying the
// assigned ID. Returns validation errors from the domain Medicine if data
// is invalid.
func (s *PostgresMedicineStore) Create(ctx context.Context, medicine *domain.Medicine) (*domain.Medicine, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := medicine.Validate(); err != nil {
		log.Warn("medicine validation failed during create",
			slog.String("error", err.Error()))
		return nil, err
	}

	query := `
		INSERT INTO medicines (name, dosage, description, quantity, unit, form, image_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	persisted := *medicine
	err := s.db.QueryRowContext(
		ctx,
		query,
		medicine.Name,
		medicine.Dosage,
		medicine.Description,
		medicine.Quantity,
		medicine.Unit,
		medicine.Form,
		medicine.ImageURL,
		medicine.CreatedAt,
	).Scan(&persisted.ID)

	if err != nil {
		log.Error("failed to create medicine",
			slog.String("error", err.Error()),
			slog.String("name", medicine.Name))
		return nil, MapError(err)
	}

	log.Info("medicine created successfully",
		slog.Int64("medicine_id", persisted.ID),
		slog.String("name", persisted.Name))
	return &persisted, nil
}

// GetByID implements store.MedicineStore.GetByID
// It retrieves a medicine by its unique ID.
// Returns store.ErrMedicineNotFound if the medicine does not exist.
func (s *PostgresMedicineStore) GetByID(ctx context.Context, id int64) (*domain.Medicine, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT ` + medicineColumns + `
		FROM medicines
		WHERE id = $1
	`

	var medicine domain.Medicine
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&medicine.ID,
		&medicine.Name,
		&medicine.Dosage,
		&medicine.Description,
		&medicine.Quantity,
		&medicine.Unit,
		&medicine.Form,
		&medicine.ImageURL,
		&medicine.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("medicine not found", slog.Int64("medicine_id", id))
			return nil, store.ErrMedicineNotFound
		}
		log.Error("failed to get medicine by ID",
			slog.String("error", err.Error()),
			slog.Int64("medicine_id", id))
		return nil, MapError(err)
	}

	return &medicine, nil
}

// FindByName implements store.MedicineStore.FindByName
// It retrieves all medicines with the given name, ordered by creation time.
func (s *PostgresMedicineStore) FindByName(ctx context.Context, name string) ([]*domain.Medicine, error) {
	query := `
		SELECT ` + medicineColumns + `
		FROM medicines
		WHERE name = $1
		ORDER BY created_at
	`
	return s.queryMedicines(ctx, query, name)
}

// FindAll implements store.MedicineStore.FindAll
// It retrieves all medicines ordered by creation time.
func (s *PostgresMedicineStore) FindAll(ctx context.Context) ([]*domain.Medicine, error) {
	query := `
		SELECT ` + medicineColumns + `
		FROM medicines
		ORDER BY created_at
	`
	return s.queryMedicines(ctx, query)
}

// Count implements store.MedicineStore.Count
func (s *PostgresMedicineStore) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM medicines`).Scan(&count)
	if err != nil {
		return 0, MapError(err)
	}
	return count, nil
}

// Update implements store.MedicineStore.Update
// It replaces an existing medicine's stored state with the given entity.
// Returns store.ErrMedicineNotFound if the medicine does not exist.
func (s *PostgresMedicineStore) Update(ctx context.Context, medicine *domain.Medicine) (*domain.Medicine, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := medicine.Validate(); err != nil {
		log.Warn("medicine validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("medicine_id", medicine.ID))
		return nil, err
	}

	query := `
		UPDATE medicines
		SET name = $1, dosage = $2, description = $3, quantity = $4, unit = $5, form = $6, image_url = $7
		WHERE id = $8
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		medicine.Name,
		medicine.Dosage,
		medicine.Description,
		medicine.Quantity,
		medicine.Unit,
		medicine.Form,
		medicine.ImageURL,
		medicine.ID,
	)
	if err != nil {
		log.Error("failed to update medicine",
			slog.String("error", err.Error()),
			slog.Int64("medicine_id", medicine.ID))
		return nil, MapError(err)
	}

	if err := CheckRowsAffected(result, "medicine"); err != nil {
		log.Debug("medicine not found during update", slog.Int64("medicine_id", medicine.ID))
		return nil, store.ErrMedicineNotFound
	}

	persisted := *medicine
	log.Info("medicine updated successfully", slog.Int64("medicine_id", persisted.ID))
	return &persisted, nil
}

// Delete implements store.MedicineStore.Delete
// It removes a medicine from the store by its ID; dependent schedules and
// reminders go with it through ON DELETE CASCADE.
// Returns store.ErrMedicineNotFound if the medicine does not exist.
func (s *PostgresMedicineStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM medicines WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete medicine",
			slog.String("error", err.Error()),
			slog.Int64("medicine_id", id))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "medicine"); err != nil {
		log.Debug("medicine not found during delete", slog.Int64("medicine_id", id))
		return store.ErrMedicineNotFound
	}

	log.Info("medicine deleted successfully", slog.Int64("medicine_id", id))
	return nil
}

// queryMedicines runs a SELECT returning medicine rows and scans them.
func (s *PostgresMedicineStore) queryMedicines(ctx context.Context, query string, args ...any) ([]*domain.Medicine, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query medicines", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var medicines []*domain.Medicine
	for rows.Next() {
		var medicine domain.Medicine
		if err := rows.Scan(
			&medicine.ID,
			&medicine.Name,
			&medicine.Dosage,
			&medicine.Description,
			&medicine.Quantity,
			&medicine.Unit,
			&medicine.Form,
			&medicine.ImageURL,
			&medicine.CreatedAt,
		); err != nil {
			log.Error("failed to scan medicine row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		medicines = append(medicines, &medicine)
	}

	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return medicines, nil
}
