package submit_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/glamnails/salon-gateway/internal/domain"
	"github.com/glamnails/salon-gateway/internal/integrations/salonapi"
)

// UseCase validates a booking draft and delivers it to the backend.
type UseCase struct {
	client       AppointmentCreator
	timeProvider TimeProvider
	logger       Logger
}

func NewUseCase(client AppointmentCreator, logger Logger) *UseCase {
	return &UseCase{
		client:       client,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute validates the request and posts it to the backend. Validation
// failures never reach the network. No availability or overlap check is
// performed anywhere in this layer: the backend owns conflict handling, and
// the created appointment always starts as pending.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Required fields
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Date and slot constraints
	now := uc.timeProvider.Now()
	if err := validateDate(req.AppointmentDate, now); err != nil {
		uc.logger.Warn("SubmitBooking: date %s rejected", req.AppointmentDate.Format(domain.DateFormat))
		return nil, err
	}
	if err := validateTimeSlot(req.AppointmentTime); err != nil {
		uc.logger.Warn("SubmitBooking: time slot %s rejected", req.AppointmentTime)
		return nil, err
	}

	// 3. Submit
	created, err := uc.client.CreateAppointment(ctx, salonapi.CreateAppointmentRequest{
		ServiceID:       req.ServiceID,
		ArtistID:        req.ArtistID,
		AppointmentDate: req.AppointmentDate.Format(domain.DateFormat),
		AppointmentTime: req.AppointmentTime,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		Notes:           req.Notes,
	})
	if err != nil {
		if errors.Is(err, salonapi.ErrBadRequest) {
			uc.logger.Warn("SubmitBooking: backend rejected booking: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrMissingFields, err)
		}
		uc.logger.Error("SubmitBooking: failed to create appointment: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}

	uc.logger.Info("SubmitBooking: appointment created id=%s date=%s time=%s",
		created.ID, created.AppointmentDate, created.AppointmentTime)

	return &Response{
		ID:              created.ID,
		ServiceID:       created.ServiceID,
		ArtistID:        created.ArtistID,
		AppointmentDate: created.AppointmentDate,
		AppointmentTime: created.AppointmentTime,
		CustomerName:    created.CustomerName,
		Status:          created.Status,
	}, nil
}
