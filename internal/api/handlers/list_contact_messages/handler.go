package list_contact_messages

import (
	"net/http"

	"github.com/glamnails/salon-gateway/internal/api/handlers"
)

const msgLoadFailed = "failed to load messages, please try again"

type Handler struct {
	lister ContactMessageLister
	logger Logger
}

func NewHandler(lister ContactMessageLister, logger Logger) *Handler {
	return &Handler{
		lister: lister,
		logger: logger,
	}
}

// Handle GET /api/contact
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	messages, err := h.lister.List(r.Context())
	if err != nil {
		h.logger.Error("GET /contact - failed to load: %v", err)
		handlers.RespondBadGateway(w, msgLoadFailed)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, messages)
}
