package get_admin_stats

import (
	"net/http"

	"github.com/glamnails/salon-gateway/internal/api/handlers"
)

const msgStatsFailed = "failed to load dashboard stats, please try again"

type Handler struct {
	stats  StatsProvider
	logger Logger
}

func NewHandler(stats StatsProvider, logger Logger) *Handler {
	return &Handler{
		stats:  stats,
		logger: logger,
	}
}

// Handle GET /api/admin/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.GetAdminStats(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/stats - failed to load: %v", err)
		handlers.RespondBadGateway(w, msgStatsFailed)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, stats)
}
