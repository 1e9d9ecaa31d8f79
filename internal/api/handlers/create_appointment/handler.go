package create_appointment

import (
	"errors"
	"net/http"

	"github.com/glamnails/salon-gateway/internal/api/handlers"
	submitBooking "github.com/glamnails/salon-gateway/internal/usecase/submit_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid appointment date, expected YYYY-MM-DD"
	msgMissingFields      = "please fill in all required fields"
	msgDateInPast         = "appointment date must not be in the past"
	msgInvalidTimeSlot    = "invalid appointment time"
	msgBookingFailed      = "failed to book appointment, please try again"
)

type Handler struct {
	useCase SubmitBookingUseCase
	logger  Logger
}

func NewHandler(useCase SubmitBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - failed to parse date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, submitBooking.ErrMissingFields):
			h.logger.Warn("POST /appointments - missing required fields")
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, submitBooking.ErrDateInPast):
			h.logger.Warn("POST /appointments - date in the past: %s", req.AppointmentDate)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, submitBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /appointments - invalid time slot: %s", req.AppointmentTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		default:
			h.logger.Error("POST /appointments - failed to book: %v", err)
			handlers.RespondBadGateway(w, msgBookingFailed)
		}
		return
	}

	h.logger.Info("POST /appointments - appointment created id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
