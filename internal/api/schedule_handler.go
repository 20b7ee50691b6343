package api

import (
	"net/http"

	"github.com/mayconaraujosantos/alertasaude-sub001/internal/api/shared"
	"github.com/mayconaraujosantos/alertasaude-sub001/internal/service"
)

// ScheduleHandler handles treatment schedule API requests.
type ScheduleHandler struct {
	scheduleService service.ScheduleService
	reminderService service.DoseReminderService
}

// NewScheduleHandler creates a new ScheduleHandler with the given dependencies.
func NewScheduleHandler(
	scheduleService service.ScheduleService,
	reminderService service.DoseReminderService,
) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleService: scheduleService,
		reminderService: reminderService,
	}
}

// CreateSchedule handles POST /schedules. Creating a schedule also creates
// its full set of dose reminders.
func (h *ScheduleHandler) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	var req CreateScheduleRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	schedule, err := h.scheduleService.CreateScheduleWithReminders(r.Context(), req.Params())
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, NewScheduleResponse(schedule))
}

// GetSchedule handles GET /schedules/{id}.
func (h *ScheduleHandler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid schedule ID")
		return
	}

	schedule, err := h.scheduleService.GetSchedule(r.Context(), id)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewScheduleResponse(schedule))
}

// ListSchedules handles GET /schedules. An optional "medicine_id" query
// parameter restricts the listing to one medicine.
func (h *ScheduleHandler) ListSchedules(w http.ResponseWriter, r *http.Request) {
	if raw := r.URL.Query().Get("medicine_id"); raw != "" {
		medicineID, err := parseQueryID(raw)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid medicine ID")
			return
		}
		schedules, err := h.scheduleService.ListSchedulesByMedicine(r.Context(), medicineID)
		if err != nil {
			RespondWithMappedError(w, r, err)
			return
		}
		shared.RespondWithJSON(w, r, http.StatusOK, NewScheduleResponses(schedules))
		return
	}

	schedules, err := h.scheduleService.ListSchedules(r.Context())
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewScheduleResponses(schedules))
}

// ListScheduleReminders handles GET /schedules/{id}/reminders.
func (h *ScheduleHandler) ListScheduleReminders(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid schedule ID")
		return
	}

	reminders, err := h.reminderService.ListRemindersBySchedule(r.Context(), id)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewDoseReminderResponses(reminders))
}

// SetScheduleActive handles PATCH /schedules/{id}/active.
func (h *ScheduleHandler) SetScheduleActive(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid schedule ID")
		return
	}

	var req SetScheduleActiveRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	schedule, err := h.scheduleService.SetScheduleActive(r.Context(), id, req.Active)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewScheduleResponse(schedule))
}

// DeleteSchedule handles DELETE /schedules/{id}.
func (h *ScheduleHandler) DeleteSchedule(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid schedule ID")
		return
	}

	if err := h.scheduleService.DeleteSchedule(r.Context(), id); err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
