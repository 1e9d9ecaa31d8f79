package salonapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Logger is the logging surface the client needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Recorder counts backend requests per resource and outcome. Implemented by
// pkg/metrics; nil disables recording.
type Recorder interface {
	BackendRequest(resource, outcome string)
}

// Client talks to the salon backend's /api REST contract. All calls take a
// context; the configured timeout bounds each request. No retries — a failed
// request surfaces immediately and retrying is the caller's decision.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
	rec        Recorder
}

// NewClient creates a backend client. baseURL includes the /api prefix,
// e.g. "http://localhost:8001/api".
func NewClient(baseURL string, timeout time.Duration, log Logger, rec Recorder) *Client {
	if rec == nil {
		rec = nopRecorder{}
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
		rec: rec,
	}
}

// GetServices fetches the service catalog.
func (c *Client) GetServices(ctx context.Context) ([]Service, error) {
	var out []Service
	if err := c.do(ctx, http.MethodGet, "/services", "services", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetCategories fetches the service categories.
func (c *Client) GetCategories(ctx context.Context) ([]Category, error) {
	var out []Category
	if err := c.do(ctx, http.MethodGet, "/categories", "categories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetArtists fetches the artist roster.
func (c *Client) GetArtists(ctx context.Context) ([]Artist, error) {
	var out []Artist
	if err := c.do(ctx, http.MethodGet, "/artists", "artists", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetGallery fetches the gallery items.
func (c *Client) GetGallery(ctx context.Context) ([]GalleryItem, error) {
	var out []GalleryItem
	if err := c.do(ctx, http.MethodGet, "/gallery", "gallery", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetGalleryStyles fetches the gallery style tags.
func (c *Client) GetGalleryStyles(ctx context.Context) ([]GalleryStyle, error) {
	var out []GalleryStyle
	if err := c.do(ctx, http.MethodGet, "/gallery-styles", "gallery-styles", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetGalleryColors fetches the gallery color tags.
func (c *Client) GetGalleryColors(ctx context.Context) ([]GalleryColor, error) {
	var out []GalleryColor
	if err := c.do(ctx, http.MethodGet, "/gallery-colors", "gallery-colors", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetSettings fetches the site settings document.
func (c *Client) GetSettings(ctx context.Context) (Settings, error) {
	var out Settings
	if err := c.do(ctx, http.MethodGet, "/settings", "settings", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateAppointment submits a booking. The backend creates the appointment
// with status pending and returns the full record.
func (c *Client) CreateAppointment(ctx context.Context, req CreateAppointmentRequest) (*Appointment, error) {
	var out Appointment
	if err := c.do(ctx, http.MethodPost, "/appointments", "appointments", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAppointments fetches the full appointment set. Not paginated; the
// contract assumes the set is small enough to load at once.
func (c *Client) GetAppointments(ctx context.Context) ([]Appointment, error) {
	var out []Appointment
	if err := c.do(ctx, http.MethodGet, "/appointments", "appointments", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateAppointmentStatus sets an appointment's status. The status travels
// as a query parameter; the request has no body.
func (c *Client) UpdateAppointmentStatus(ctx context.Context, id, status string) error {
	path := fmt.Sprintf("/appointments/%s/status?status=%s", url.PathEscape(id), url.QueryEscape(status))
	return c.do(ctx, http.MethodPatch, path, "appointments", nil, nil)
}

// DeleteAppointment removes an appointment.
func (c *Client) DeleteAppointment(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/appointments/"+url.PathEscape(id), "appointments", nil, nil)
}

// CreateContactMessage submits a contact form message.
func (c *Client) CreateContactMessage(ctx context.Context, req CreateContactMessageRequest) (*ContactMessage, error) {
	var out ContactMessage
	if err := c.do(ctx, http.MethodPost, "/contact", "contact", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetContactMessages fetches all stored contact messages.
func (c *Client) GetContactMessages(ctx context.Context) ([]ContactMessage, error) {
	var out []ContactMessage
	if err := c.do(ctx, http.MethodGet, "/contact", "contact", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteContactMessage removes a contact message.
func (c *Client) DeleteContactMessage(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/contact/"+url.PathEscape(id), "contact", nil, nil)
}

// GetAdminStats fetches the dashboard aggregate counts.
func (c *Client) GetAdminStats(ctx context.Context) (*AdminStats, error) {
	var out AdminStats
	if err := c.do(ctx, http.MethodGet, "/admin/stats", "admin-stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// do executes one request and decodes the response into out (when out is
// non-nil). Status codes map onto the client's sentinel errors.
func (c *Client) do(ctx context.Context, method, path, resource string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			c.rec.BackendRequest(resource, "error")
			return fmt.Errorf("%w: failed to encode request body: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		c.rec.BackendRequest(resource, "error")
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.rec.BackendRequest(resource, "error")
		c.log.Error("salonapi: %s %s failed: %v", method, path, err)
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// fall through to decoding
	case resp.StatusCode == http.StatusNotFound:
		c.rec.BackendRequest(resource, "not_found")
		return ErrNotFound
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		c.rec.BackendRequest(resource, "rejected")
		return fmt.Errorf("%w: %s", ErrBadRequest, readErrorMessage(resp.Body))
	case resp.StatusCode >= 500:
		c.rec.BackendRequest(resource, "server_error")
		c.log.Error("salonapi: %s %s returned %d", method, path, resp.StatusCode)
		return fmt.Errorf("%w: status %d", ErrServer, resp.StatusCode)
	default:
		c.rec.BackendRequest(resource, "error")
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	c.rec.BackendRequest(resource, "ok")

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}

func readErrorMessage(r io.Reader) string {
	var errResp ErrorResponse
	if err := json.NewDecoder(r).Decode(&errResp); err != nil || errResp.Message == "" {
		return "no detail"
	}
	return errResp.Message
}

type nopRecorder struct{}

func (nopRecorder) BackendRequest(string, string) {}
