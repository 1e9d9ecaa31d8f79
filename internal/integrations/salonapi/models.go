package salonapi

import "github.com/glamnails/salon-gateway/internal/locale"

// Service is one salon service from the catalog. Localized fields arrive as
// flat name_<lang> / description_<lang> keys on the wire.
type Service struct {
	ID            string `json:"id"`
	NameEN        string `json:"name_en"`
	NameDE        string `json:"name_de,omitempty"`
	NameFR        string `json:"name_fr,omitempty"`
	DescriptionEN string `json:"description_en,omitempty"`
	DescriptionDE string `json:"description_de,omitempty"`
	DescriptionFR string `json:"description_fr,omitempty"`
	Price         string `json:"price"`
	Duration      string `json:"duration,omitempty"`
	ImageURL      string `json:"image_url,omitempty"`
	CategoryID    string `json:"category_id,omitempty"`
}

// Name collects the localized name fields into a resolvable text.
func (s Service) Name() locale.Text {
	return locale.Text{EN: s.NameEN, DE: s.NameDE, FR: s.NameFR}
}

func (s Service) Description() locale.Text {
	return locale.Text{EN: s.DescriptionEN, DE: s.DescriptionDE, FR: s.DescriptionFR}
}

// Category groups services.
type Category struct {
	ID     string `json:"id"`
	NameEN string `json:"name_en"`
	NameDE string `json:"name_de,omitempty"`
	NameFR string `json:"name_fr,omitempty"`
}

func (c Category) Name() locale.Text {
	return locale.Text{EN: c.NameEN, DE: c.NameDE, FR: c.NameFR}
}

// Artist is a nail artist. Names are not localized; specialties are.
type Artist struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	SpecialtyEN string `json:"specialty_en,omitempty"`
	SpecialtyDE string `json:"specialty_de,omitempty"`
	SpecialtyFR string `json:"specialty_fr,omitempty"`
	PhotoURL    string `json:"photo_url,omitempty"`
}

func (a Artist) Specialty() locale.Text {
	return locale.Text{EN: a.SpecialtyEN, DE: a.SpecialtyDE, FR: a.SpecialtyFR}
}

// GalleryItem is one gallery photo with its style and color tags.
type GalleryItem struct {
	ID         string   `json:"id"`
	TitleEN    string   `json:"title_en"`
	TitleDE    string   `json:"title_de,omitempty"`
	TitleFR    string   `json:"title_fr,omitempty"`
	ImageURL   string   `json:"image_url"`
	ArtistName string   `json:"artist_name,omitempty"`
	Style      string   `json:"style,omitempty"`
	Colors     []string `json:"colors,omitempty"`
}

func (g GalleryItem) Title() locale.Text {
	return locale.Text{EN: g.TitleEN, DE: g.TitleDE, FR: g.TitleFR}
}

// GalleryStyle is a style tag used to filter the gallery.
type GalleryStyle struct {
	ID     string `json:"id"`
	NameEN string `json:"name_en"`
	NameDE string `json:"name_de,omitempty"`
	NameFR string `json:"name_fr,omitempty"`
}

func (s GalleryStyle) Name() locale.Text {
	return locale.Text{EN: s.NameEN, DE: s.NameDE, FR: s.NameFR}
}

// GalleryColor is a color tag used to filter the gallery.
type GalleryColor struct {
	ID     string `json:"id"`
	NameEN string `json:"name_en"`
	NameDE string `json:"name_de,omitempty"`
	NameFR string `json:"name_fr,omitempty"`
}

func (c GalleryColor) Name() locale.Text {
	return locale.Text{EN: c.NameEN, DE: c.NameDE, FR: c.NameFR}
}

// Settings is the free-form site settings document (contact details,
// opening hours text and so on). Read-only from this layer.
type Settings map[string]any

// CreateAppointmentRequest is the POST /appointments body. The date is an
// ISO calendar date, the time one of the fixed half-hour slots.
type CreateAppointmentRequest struct {
	ServiceID       string `json:"service_id"`
	ArtistID        string `json:"artist_id"`
	AppointmentDate string `json:"appointment_date"` // YYYY-MM-DD
	AppointmentTime string `json:"appointment_time"` // HH:MM
	CustomerName    string `json:"customer_name"`
	CustomerEmail   string `json:"customer_email"`
	CustomerPhone   string `json:"customer_phone"`
	Notes           string `json:"notes,omitempty"`
}

// Appointment is the server-owned appointment record, including the
// denormalized display fields the backend supplies for read convenience.
type Appointment struct {
	ID              string `json:"id"`
	ServiceID       string `json:"service_id"`
	ArtistID        string `json:"artist_id"`
	AppointmentDate string `json:"appointment_date"`
	AppointmentTime string `json:"appointment_time"`
	CustomerName    string `json:"customer_name"`
	CustomerEmail   string `json:"customer_email"`
	CustomerPhone   string `json:"customer_phone"`
	Notes           string `json:"notes,omitempty"`
	Status          string `json:"status"`
	ServiceNameEN   string `json:"service_name_en,omitempty"`
	ServiceNameDE   string `json:"service_name_de,omitempty"`
	ServiceNameFR   string `json:"service_name_fr,omitempty"`
	ArtistName      string `json:"artist_name,omitempty"`
	CreatedAt       string `json:"created_at,omitempty"`
}

func (a Appointment) ServiceName() locale.Text {
	return locale.Text{EN: a.ServiceNameEN, DE: a.ServiceNameDE, FR: a.ServiceNameFR}
}

// CreateContactMessageRequest is the POST /contact body.
type CreateContactMessageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message"`
}

// ContactMessage is a stored contact form submission. Immutable once
// created; staff may only delete it.
type ContactMessage struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at,omitempty"`
}

// AdminStats are the aggregate counts shown on the admin dashboard.
type AdminStats struct {
	TotalAppointments     int `json:"total_appointments"`
	PendingAppointments   int `json:"pending_appointments"`
	ConfirmedAppointments int `json:"confirmed_appointments"`
	TotalServices         int `json:"total_services"`
	TotalGalleryItems     int `json:"total_gallery_items"`
	TotalMessages         int `json:"total_messages"`
}

// ErrorResponse is the backend's error payload.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
