package create_appointment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glamnails/salon-gateway/internal/api/handlers"
	submitBooking "github.com/glamnails/salon-gateway/internal/usecase/submit_booking"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	calls int
	last  *submitBooking.Request
	resp  *submitBooking.Response
	err   error
}

func (f *fakeUseCase) Execute(_ context.Context, req *submitBooking.Request) (*submitBooking.Response, error) {
	f.calls++
	f.last = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

const validBody = `{
	"service_id": "svc-1",
	"artist_id": "art-1",
	"appointment_date": "2025-10-15",
	"appointment_time": "10:30",
	"customer_name": "Ana Smith",
	"customer_email": "ana@example.com",
	"customer_phone": "+41791234567"
}`

func doRequest(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/appointments", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandleSuccess(t *testing.T) {
	uc := &fakeUseCase{resp: &submitBooking.Response{
		ID:              "apt-1",
		ServiceID:       "svc-1",
		AppointmentDate: "2025-10-15",
		AppointmentTime: "10:30",
		CustomerName:    "Ana Smith",
		Status:          "pending",
	}}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(h, validBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp AppointmentResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "apt-1", resp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "2025-10-15", uc.last.AppointmentDate.Format("2006-01-02"))
}

func TestHandleMalformedBody(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(h, `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, uc.calls)
}

func TestHandleUnknownField(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(h, `{"service_id": "svc-1", "surprise": true}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, uc.calls)
}

func TestHandleMalformedDate(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(h, `{"appointment_date": "15.10.2025"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, uc.calls)
}

func TestHandleUseCaseErrors(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"missing fields", submitBooking.ErrMissingFields, http.StatusBadRequest, msgMissingFields},
		{"date in past", submitBooking.ErrDateInPast, http.StatusBadRequest, msgDateInPast},
		{"invalid slot", submitBooking.ErrInvalidTimeSlot, http.StatusBadRequest, msgInvalidTimeSlot},
		{"backend down", submitBooking.ErrBackendUnavailable, http.StatusBadGateway, msgBookingFailed},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tc.err}, nopLogger{})
			rec := doRequest(h, validBody)

			assert.Equal(t, tc.wantStatus, rec.Code)

			var errResp handlers.ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&errResp))
			assert.Equal(t, tc.wantMsg, errResp.Message)
		})
	}
}

func TestHandleEmptyDatePassesThrough(t *testing.T) {
	// An absent date is the use case's ErrMissingFields, not a parse error.
	uc := &fakeUseCase{err: submitBooking.ErrMissingFields}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(h, `{"service_id": "svc-1", "appointment_date": ""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 1, uc.calls)
	assert.True(t, uc.last.AppointmentDate.IsZero())
}
