package api

import (
	"net/http"
	"time"

	"github.com/mayconaraujosantos/alertasaude-sub001/internal/api/shared"
	"github.com/mayconaraujosantos/alertasaude-sub001/internal/service"
)

// ReminderHandler handles dose reminder API requests.
type ReminderHandler struct {
	reminderService service.DoseReminderService

	// now returns the current time. Injectable for tests.
	now func() time.Time
}

// NewReminderHandler creates a new ReminderHandler with the given dependencies.
func NewReminderHandler(reminderService service.DoseReminderService) *ReminderHandler {
	return &ReminderHandler{
		reminderService: reminderService,
		now:             time.Now,
	}
}

// GetReminder handles GET /reminders/{id}.
func (h *ReminderHandler) GetReminder(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid reminder ID")
		return
	}

	reminder, err := h.reminderService.GetReminder(r.Context(), id)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewDoseReminderResponse(reminder))
}

// ListReminders handles GET /reminders. With "date=today" the listing is
// restricted to reminders firing on the current server day.
func (h *ReminderHandler) ListReminders(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("date") == "today" {
		reminders, err := h.reminderService.ListRemindersForDay(r.Context(), h.now())
		if err != nil {
			RespondWithMappedError(w, r, err)
			return
		}
		shared.RespondWithJSON(w, r, http.StatusOK, NewDoseReminderResponses(reminders))
		return
	}

	reminders, err := h.reminderService.ListReminders(r.Context())
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewDoseReminderResponses(reminders))
}

// MarkTaken handles POST /reminders/{id}/take.
func (h *ReminderHandler) MarkTaken(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid reminder ID")
		return
	}

	// The body is optional; an empty or absent body means "taken now".
	var req MarkDoseTakenRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := shared.DecodeJSON(r, &req); err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
			return
		}
	}

	takenAt := h.now().UTC()
	if req.TakenAt != nil {
		takenAt = *req.TakenAt
	}

	reminder, err := h.reminderService.MarkDoseTaken(r.Context(), id, takenAt)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewDoseReminderResponse(reminder))
}

// MarkSkipped handles POST /reminders/{id}/skip.
func (h *ReminderHandler) MarkSkipped(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid reminder ID")
		return
	}

	reminder, err := h.reminderService.MarkDoseSkipped(r.Context(), id)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewDoseReminderResponse(reminder))
}
