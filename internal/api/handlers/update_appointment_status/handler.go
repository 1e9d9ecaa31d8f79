package update_appointment_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/glamnails/salon-gateway/internal/api/handlers"
	manageAppointments "github.com/glamnails/salon-gateway/internal/usecase/manage_appointments"
)

const (
	msgMissingStatus = "status query parameter is required"
	msgInvalidStatus = "invalid appointment status"
	msgNotFound      = "appointment not found"
	msgUpdateFailed  = "failed to update appointment, please try again"
)

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

// Handle PATCH /api/appointments/{id}/status?status=
//
// The target status travels as a query parameter; the request carries no
// body.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	status := r.URL.Query().Get("status")
	if status == "" {
		h.logger.Warn("PATCH /appointments/%s/status - missing status parameter", id)
		handlers.RespondBadRequest(w, msgMissingStatus)
		return
	}

	if err := h.manager.SetStatus(r.Context(), id, status); err != nil {
		switch {
		case errors.Is(err, manageAppointments.ErrInvalidStatus):
			h.logger.Warn("PATCH /appointments/%s/status - invalid status %q", id, status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, manageAppointments.ErrNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PATCH /appointments/%s/status - failed: %v", id, err)
			handlers.RespondBadGateway(w, msgUpdateFailed)
		}
		return
	}

	h.logger.Info("PATCH /appointments/%s/status - set to %s", id, status)
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"id": id, "status": status})
}
