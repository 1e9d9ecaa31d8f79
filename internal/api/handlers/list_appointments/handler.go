package list_appointments

import (
	"net/http"

	"github.com/glamnails/salon-gateway/internal/api/handlers"
	"github.com/glamnails/salon-gateway/internal/domain"
	"github.com/glamnails/salon-gateway/internal/locale"
)

const msgLoadFailed = "failed to load appointments, please try again"

type Handler struct {
	manager AppointmentManager
	logger  Logger
}

func NewHandler(manager AppointmentManager, logger Logger) *Handler {
	return &Handler{
		manager: manager,
		logger:  logger,
	}
}

// Handle GET /api/appointments?search=&status=&lang=
//
// The list is always re-fetched from the backend; search and status are
// applied to the fresh set. An absent status behaves as "all".
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if _, err := h.manager.Load(r.Context()); err != nil {
		h.logger.Error("GET /appointments - failed to load: %v", err)
		handlers.RespondBadGateway(w, msgLoadFailed)
		return
	}

	query := r.URL.Query()
	statusFilter := query.Get("status")
	if statusFilter == "" {
		statusFilter = domain.StatusFilterAll
	}

	filtered := h.manager.Filter(query.Get("search"), statusFilter)
	handlers.RespondJSON(w, http.StatusOK, toViews(filtered, locale.Normalize(query.Get("lang"))))
}
