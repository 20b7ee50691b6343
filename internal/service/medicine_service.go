package service

import (
	"context"
	"log/slog"

	"github.com/mayconaraujosantos/alertasaude-sub001/internal/domain"
	"github.com/mayconaraujosantos/alertasaude-sub001/internal/platform/logger"
	"github.com/mayconaraujosantos/alertasaude-sub001/internal/store"
)

// MedicineService provides medicine catalog operations.
type MedicineService interface {
	// CreateMedicine validates the given attributes and persists a new
	// medicine, returning it with its assigned ID.
	CreateMedicine(ctx context.Context, attrs domain.MedicineAttributes) (*domain.Medicine, error)

	// GetMedicine retrieves a medicine by its ID.
	GetMedicine(ctx context.Context, id int64) (*domain.Medicine, error)

	// SearchMedicines retrieves medicines whose name matches the given
	// fragment. An empty fragment returns all medicines.
	SearchMedicines(ctx context.Context, name string) ([]*domain.Medicine, error)

	// ListMedicines retrieves all medicines.
	ListMedicines(ctx context.Context) ([]*domain.Medicine, error)

	// UpdateMedicine replaces the attributes of an existing medicine,
	// returning the updated entity.
	UpdateMedicine(ctx context.Context, id int64, attrs domain.MedicineAttributes) (*domain.Medicine, error)

	// DeleteMedicine removes a medicine and, through the store's cascade
	// rules, its schedules and reminders.
	DeleteMedicine(ctx context.Context, id int64) error
}

// medicineServiceImpl implements the MedicineService interface.
type medicineServiceImpl struct {
	medicines store.MedicineStore
	logger    *slog.Logger
}

// Ensure medicineServiceImpl implements MedicineService interface
var _ MedicineService = (*medicineServiceImpl)(nil)

// NewMedicineService creates a new MedicineService.
func NewMedicineService(medicines store.MedicineStore, logger *slog.Logger) (MedicineService, error) {
	if medicines == nil {
		return nil, domain.NewValidationError("medicines", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &medicineServiceImpl{
		medicines: medicines,
		logger:    logger.With(slog.String("component", "medicine_service")),
	}, nil
}

// CreateMedicine implements MedicineService.CreateMedicine
func (s *medicineServiceImpl) CreateMedicine(ctx context.Context, attrs domain.MedicineAttributes) (*domain.Medicine, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	medicine, err := domain.NewMedicine(attrs)
	if err != nil {
		log.Warn("invalid medicine attributes",
			slog.String("error", err.Error()))
		return nil, err
	}

	created, err := s.medicines.Create(ctx, medicine)
	if err != nil {
		if passthrough(err) {
			return nil, err
		}
		return nil, NewMedicineServiceError("create_medicine", "failed to save medicine", err)
	}

	log.Info("medicine created",
		slog.Int64("medicine_id", created.ID),
		slog.String("name", created.Name))
	return created, nil
}

// GetMedicine implements MedicineService.GetMedicine
func (s *medicineServiceImpl) GetMedicine(ctx context.Context, id int64) (*domain.Medicine, error) {
	medicine, err := s.medicines.GetByID(ctx, id)
	if err != nil {
		if passthrough(err) {
			return nil, err
		}
		return nil, NewMedicineServiceError("get_medicine", "failed to retrieve medicine", err)
	}
	return medicine, nil
}

// SearchMedicines implements MedicineService.SearchMedicines
func (s *medicineServiceImpl) SearchMedicines(ctx context.Context, name string) ([]*domain.Medicine, error) {
	if name == "" {
		return s.ListMedicines(ctx)
	}
	medicines, err := s.medicines.FindByName(ctx, name)
	if err != nil {
		return nil, NewMedicineServiceError("search_medicines", "failed to search medicines", err)
	}
	return medicines, nil
}

// ListMedicines implements MedicineService.ListMedicines
func (s *medicineServiceImpl) ListMedicines(ctx context.Context) ([]*domain.Medicine, error) {
	medicines, err := s.medicines.FindAll(ctx)
	if err != nil {
		return nil, NewMedicineServiceError("list_medicines", "failed to list medicines", err)
	}
	return medicines, nil
}

// UpdateMedicine implements MedicineService.UpdateMedicine
func (s *medicineServiceImpl) UpdateMedicine(ctx context.Context, id int64, attrs domain.MedicineAttributes) (*domain.Medicine, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	existing, err := s.medicines.GetByID(ctx, id)
	if err != nil {
		if passthrough(err) {
			return nil, err
		}
		return nil, NewMedicineServiceError("update_medicine", "failed to retrieve medicine", err)
	}

	updated, err := existing.Update(attrs)
	if err != nil {
		log.Warn("invalid medicine attributes",
			slog.String("error", err.Error()),
			slog.Int64("medicine_id", id))
		return nil, err
	}

	saved, err := s.medicines.Update(ctx, updated)
	if err != nil {
		if passthrough(err) {
			return nil, err
		}
		return nil, NewMedicineServiceError("update_medicine", "failed to update medicine", err)
	}

	log.Info("medicine updated",
		slog.Int64("medicine_id", id))
	return saved, nil
}

// DeleteMedicine implements MedicineService.DeleteMedicine
func (s *medicineServiceImpl) DeleteMedicine(ctx context.Context, id int64) error {
	err := s.medicines.Delete(ctx, id)
	if err != nil {
		if passthrough(err) {
			return err
		}
		return NewMedicineServiceError("delete_medicine", "failed to delete medicine", err)
	}
	return nil
}
