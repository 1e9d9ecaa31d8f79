package create_contact_message

import (
	submitContact "github.com/glamnails/salon-gateway/internal/usecase/submit_contact"
)

// CreateContactMessageRequest is the HTTP request model for the contact
// form.
type CreateContactMessageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message"`
}

// ContactMessageResponse confirms the stored message.
type ContactMessageResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at,omitempty"`
}

func (r *CreateContactMessageRequest) ToUseCaseRequest() *submitContact.Request {
	return &submitContact.Request{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Message: r.Message,
	}
}

func FromUseCaseResponse(resp *submitContact.Response) *ContactMessageResponse {
	return &ContactMessageResponse{
		ID:        resp.ID,
		Name:      resp.Name,
		Email:     resp.Email,
		CreatedAt: resp.CreatedAt,
	}
}
