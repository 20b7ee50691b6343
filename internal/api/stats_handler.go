package api

import (
	"net/http"
	"time"

	"github.com/mayconaraujosantos/alertasaude-sub001/internal/api/shared"
	"github.com/mayconaraujosantos/alertasaude-sub001/internal/service"
)

// StatsHandler handles aggregate statistics API requests.
type StatsHandler struct {
	statsService service.StatsService

	// now returns the current time. Injectable for tests.
	now func() time.Time
}

// NewStatsHandler creates a new StatsHandler with the given dependencies.
func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
		now:          time.Now,
	}
}

// GetStats handles GET /stats.
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsService.GetTodayStats(r.Context(), h.now())
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, stats)
}
