package create_contact_message

import (
	"errors"
	"net/http"

	"github.com/glamnails/salon-gateway/internal/api/handlers"
	submitContact "github.com/glamnails/salon-gateway/internal/usecase/submit_contact"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingFields      = "please fill in all required fields"
	msgInvalidEmail       = "please enter a valid email address"
	msgSendFailed         = "failed to send message, please try again"
)

type Handler struct {
	useCase SubmitContactUseCase
	logger  Logger
}

func NewHandler(useCase SubmitContactUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/contact
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateContactMessageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /contact - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, submitContact.ErrMissingFields):
			h.logger.Warn("POST /contact - missing required fields")
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, submitContact.ErrInvalidEmail):
			h.logger.Warn("POST /contact - invalid email: %s", req.Email)
			handlers.RespondBadRequest(w, msgInvalidEmail)

		default:
			h.logger.Error("POST /contact - failed to send: %v", err)
			handlers.RespondBadGateway(w, msgSendFailed)
		}
		return
	}

	h.logger.Info("POST /contact - message created id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
