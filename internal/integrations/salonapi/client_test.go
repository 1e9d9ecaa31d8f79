package salonapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/api", 2*time.Second, nopLogger{}, nil)
}

func TestGetServices(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/services", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": "svc-1", "name_en": "Manicure", "name_de": "Maniküre", "price": "45 CHF"},
			{"id": "svc-2", "name_en": "Pedicure", "price": "55 CHF"}
		]`))
	})

	services, err := client.GetServices(context.Background())
	require.NoError(t, err)
	require.Len(t, services, 2)
	assert.Equal(t, "svc-1", services[0].ID)
	assert.Equal(t, "Maniküre", services[0].NameDE)
	assert.Equal(t, "55 CHF", services[1].Price)
}

func TestCreateAppointment(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/appointments", r.URL.Path)

		var req CreateAppointmentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "2025-10-15", req.AppointmentDate)
		assert.Equal(t, "10:30", req.AppointmentTime)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(Appointment{
			ID:              "apt-1",
			ServiceID:       req.ServiceID,
			AppointmentDate: req.AppointmentDate,
			AppointmentTime: req.AppointmentTime,
			CustomerName:    req.CustomerName,
			Status:          "pending",
		})
	})

	created, err := client.CreateAppointment(context.Background(), CreateAppointmentRequest{
		ServiceID:       "svc-1",
		ArtistID:        "art-1",
		AppointmentDate: "2025-10-15",
		AppointmentTime: "10:30",
		CustomerName:    "Ana Smith",
		CustomerEmail:   "ana@example.com",
		CustomerPhone:   "+41791234567",
	})
	require.NoError(t, err)
	assert.Equal(t, "apt-1", created.ID)
	assert.Equal(t, "pending", created.Status)
}

func TestUpdateAppointmentStatusUsesQueryParam(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/appointments/apt-1/status", r.URL.Path)
		assert.Equal(t, "confirmed", r.URL.Query().Get("status"))

		body := make([]byte, 1)
		n, _ := r.Body.Read(body)
		assert.Zero(t, n, "status update must not carry a body")

		w.WriteHeader(http.StatusOK)
	})

	err := client.UpdateAppointmentStatus(context.Background(), "apt-1", "confirmed")
	require.NoError(t, err)
}

func TestDeleteAppointment(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/appointments/apt-1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.DeleteAppointment(context.Background(), "apt-1"))
}

func TestStatusCodeMapping(t *testing.T) {
	cases := []struct {
		name   string
		status int
		want   error
	}{
		{"not found", http.StatusNotFound, ErrNotFound},
		{"bad request", http.StatusBadRequest, ErrBadRequest},
		{"unprocessable", http.StatusUnprocessableEntity, ErrBadRequest},
		{"server error", http.StatusInternalServerError, ErrServer},
		{"bad gateway", http.StatusBadGateway, ErrServer},
		{"unexpected", http.StatusTeapot, ErrInvalidResponse},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_ = json.NewEncoder(w).Encode(ErrorResponse{Code: tc.status, Message: "nope"})
			})

			_, err := client.GetAppointments(context.Background())
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestMalformedResponseBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	})

	_, err := client.GetServices(context.Background())
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestUnreachableBackend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	client := NewClient(srv.URL+"/api", time.Second, nopLogger{}, nil)

	_, err := client.GetServices(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestRecorderOutcomes(t *testing.T) {
	outcomes := map[string]int{}
	rec := recorderFunc(func(resource, outcome string) {
		outcomes[resource+"/"+outcome]++
	})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/services" {
			_, _ = w.Write([]byte(`[]`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)
	client := NewClient(srv.URL+"/api", time.Second, nopLogger{}, rec)

	_, err := client.GetServices(context.Background())
	require.NoError(t, err)
	err = client.DeleteAppointment(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Equal(t, 1, outcomes["services/ok"])
	assert.Equal(t, 1, outcomes["appointments/not_found"])
}

type recorderFunc func(resource, outcome string)

func (f recorderFunc) BackendRequest(resource, outcome string) { f(resource, outcome) }
