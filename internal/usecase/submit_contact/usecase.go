package submit_contact

import (
	"context"
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/glamnails/salon-gateway/internal/domain"
	"github.com/glamnails/salon-gateway/internal/integrations/salonapi"
)

// Request carries a contact form draft into the use case.
type Request struct {
	Name    string
	Email   string
	Phone   string // optional
	Message string
}

// Response is the stored message as confirmed by the backend.
type Response struct {
	ID        string
	Name      string
	Email     string
	CreatedAt string
}

// FromDraft converts a contact draft into a use case request.
func FromDraft(d domain.ContactDraft) *Request {
	return &Request{
		Name:    d.Name,
		Email:   d.Email,
		Phone:   d.Phone,
		Message: d.Message,
	}
}

// UseCase validates and submits contact messages, and handles the admin
// side of listing and deleting them.
type UseCase struct {
	client BackendClient
	logger Logger
}

func NewUseCase(client BackendClient, logger Logger) *UseCase {
	return &UseCase{
		client: client,
		logger: logger,
	}
}

// Execute validates the message and delivers it. Unlike the booking form,
// the contact form does check the email shape, not just presence. A failed
// delivery leaves the caller's draft untouched.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitContact: validation failed: %v", err)
		return nil, err
	}

	created, err := uc.client.CreateContactMessage(ctx, salonapi.CreateContactMessageRequest{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err != nil {
		uc.logger.Error("SubmitContact: failed to send message: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}

	uc.logger.Info("SubmitContact: message created id=%s", created.ID)
	return &Response{
		ID:        created.ID,
		Name:      created.Name,
		Email:     created.Email,
		CreatedAt: created.CreatedAt,
	}, nil
}

// List fetches all stored messages for the admin view.
func (uc *UseCase) List(ctx context.Context) ([]salonapi.ContactMessage, error) {
	messages, err := uc.client.GetContactMessages(ctx)
	if err != nil {
		uc.logger.Error("SubmitContact: failed to list messages: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	return messages, nil
}

// Delete removes a message; like appointments, deletion demands the
// explicit confirmation flag.
func (uc *UseCase) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		uc.logger.Warn("SubmitContact: delete of id=%s attempted without confirmation", id)
		return ErrNotConfirmed
	}
	if err := uc.client.DeleteContactMessage(ctx, id); err != nil {
		if errors.Is(err, salonapi.ErrNotFound) {
			return ErrNotFound
		}
		uc.logger.Error("SubmitContact: failed to delete id=%s: %v", id, err)
		return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	uc.logger.Info("SubmitContact: message id=%s deleted", id)
	return nil
}

func validateRequest(req *Request) error {
	err := validation.ValidateStruct(req,
		validation.Field(&req.Name, validation.Required),
		validation.Field(&req.Email, validation.Required),
		validation.Field(&req.Message, validation.Required),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMissingFields, err)
	}
	if err := validation.Validate(req.Email, is.Email); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidEmail, req.Email)
	}
	return nil
}
