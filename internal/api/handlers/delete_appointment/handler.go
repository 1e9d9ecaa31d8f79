package delete_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/glamnails/salon-gateway/internal/api/handlers"
	manageAppointments "github.com/glamnails/salon-gateway/internal/usecase/manage_appointments"
)

const (
	msgNotConfirmed = "deletion requires confirm=true"
	msgNotFound     = "appointment not found"
	msgDeleteFailed = "failed to delete appointment, please try again"
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

// Handle DELETE /api/appointments/{id}?confirm=true
//
// Deletion is destructive and irreversible, so the caller must confirm it
// explicitly on every request.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	confirmed := r.URL.Query().Get("confirm") == "true"

	if err := h.manager.Delete(r.Context(), id, confirmed); err != nil {
		switch {
		case errors.Is(err, manageAppointments.ErrNotConfirmed):
			h.logger.Warn("DELETE /appointments/%s - missing confirmation", id)
			handlers.RespondBadRequest(w, msgNotConfirmed)

		case errors.Is(err, manageAppointments.ErrNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /appointments/%s - failed: %v", id, err)
			handlers.RespondBadGateway(w, msgDeleteFailed)
		}
		return
	}

	h.logger.Info("DELETE /appointments/%s - deleted", id)
	w.WriteHeader(http.StatusNoContent)
}
