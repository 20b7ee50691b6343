package api

import (
	"net/http"

	"github.com/mayconaraujosantos/alertasaude-sub001/internal/api/shared"
	"github.com/mayconaraujosantos/alertasaude-sub001/internal/service"
)

// MedicineHandler handles medicine catalog API requests.
type MedicineHandler struct {
	medicineService service.MedicineService
}

// NewMedicineHandler creates a new MedicineHandler with the given dependencies.
func NewMedicineHandler(medicineService service.MedicineService) *MedicineHandler {
	return &MedicineHandler{medicineService: medicineService}
}

// CreateMedicine handles POST /medicines.
func (h *MedicineHandler) CreateMedicine(w http.ResponseWriter, r *http.Request) {
	var req CreateMedicineRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	medicine, err := h.medicineService.CreateMedicine(r.Context(), req.Attributes())
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, NewMedicineResponse(medicine))
}

// GetMedicine handles GET /medicines/{id}.
func (h *MedicineHandler) GetMedicine(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid medicine ID")
		return
	}

	medicine, err := h.medicineService.GetMedicine(r.Context(), id)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewMedicineResponse(medicine))
}

// ListMedicines handles GET /medicines. An optional "name" query parameter
// filters by name fragment.
func (h *MedicineHandler) ListMedicines(w http.ResponseWriter, r *http.Request) {
	medicines, err := h.medicineService.SearchMedicines(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewMedicineResponses(medicines))
}

// UpdateMedicine handles PUT /medicines/{id}.
func (h *MedicineHandler) UpdateMedicine(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid medicine ID")
		return
	}

	var req UpdateMedicineRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	medicine, err := h.medicineService.UpdateMedicine(r.Context(), id, req.Attributes())
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewMedicineResponse(medicine))
}

// DeleteMedicine handles DELETE /medicines/{id}.
func (h *MedicineHandler) DeleteMedicine(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid medicine ID")
		return
	}

	if err := h.medicineService.DeleteMedicine(r.Context(), id); err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
