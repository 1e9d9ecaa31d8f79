package delete_contact_message

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/glamnails/salon-gateway/internal/api/handlers"
	submitContact "github.com/glamnails/salon-gateway/internal/usecase/submit_contact"
)

const (
	msgNotConfirmed = "deletion requires confirm=true"
	msgNotFound     = "message not found"
	msgDeleteFailed = "failed to delete message, please try again"
)

type Handler struct {
	deleter ContactMessageDeleter
	logger  Logger
}

func NewHandler(deleter ContactMessageDeleter, logger Logger) *Handler {
	return &Handler{
		deleter: deleter,
		logger:  logger,
	}
}

// Handle DELETE /api/contact/{id}?confirm=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	confirmed := r.URL.Query().Get("confirm") == "true"

	if err := h.deleter.Delete(r.Context(), id, confirmed); err != nil {
		switch {
		case errors.Is(err, submitContact.ErrNotConfirmed):
			h.logger.Warn("DELETE /contact/%s - missing confirmation", id)
			handlers.RespondBadRequest(w, msgNotConfirmed)

		case errors.Is(err, submitContact.ErrNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /contact/%s - failed: %v", id, err)
			handlers.RespondBadGateway(w, msgDeleteFailed)
		}
		return
	}

	h.logger.Info("DELETE /contact/%s - deleted", id)
	w.WriteHeader(http.StatusNoContent)
}
