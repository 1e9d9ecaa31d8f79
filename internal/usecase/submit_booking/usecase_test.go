package submit_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glamnails/salon-gateway/internal/integrations/salonapi"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeCreator struct {
	calls int
	last  salonapi.CreateAppointmentRequest
	resp  *salonapi.Appointment
	err   error
}

func (f *fakeCreator) CreateAppointment(_ context.Context, req salonapi.CreateAppointmentRequest) (*salonapi.Appointment, error) {
	f.calls++
	f.last = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

var testNow = time.Date(2025, 10, 10, 14, 0, 0, 0, time.UTC)

func newTestUseCase(creator *fakeCreator) *UseCase {
	uc := NewUseCase(creator, nopLogger{})
	uc.timeProvider = fixedTime{testNow}
	return uc
}

func validRequest() *Request {
	return &Request{
		ServiceID:       "svc-1",
		ArtistID:        "art-1",
		AppointmentDate: time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		AppointmentTime: "10:30",
		CustomerName:    "Ana Smith",
		CustomerEmail:   "ana@example.com",
		CustomerPhone:   "+41791234567",
	}
}

func TestExecuteSuccess(t *testing.T) {
	creator := &fakeCreator{resp: &salonapi.Appointment{
		ID:              "apt-1",
		ServiceID:       "svc-1",
		ArtistID:        "art-1",
		AppointmentDate: "2025-10-15",
		AppointmentTime: "10:30",
		CustomerName:    "Ana Smith",
		Status:          "pending",
	}}
	uc := newTestUseCase(creator)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "apt-1", resp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, 1, creator.calls)
	assert.Equal(t, "2025-10-15", creator.last.AppointmentDate)
	assert.Equal(t, "10:30", creator.last.AppointmentTime)
}

func TestExecuteMissingFieldsNeverReachesBackend(t *testing.T) {
	clear := []func(*Request){
		func(r *Request) { r.ServiceID = "" },
		func(r *Request) { r.ArtistID = "" },
		func(r *Request) { r.AppointmentDate = time.Time{} },
		func(r *Request) { r.AppointmentTime = "" },
		func(r *Request) { r.CustomerName = "" },
		func(r *Request) { r.CustomerEmail = "" },
		func(r *Request) { r.CustomerPhone = "" },
	}

	for _, blank := range clear {
		creator := &fakeCreator{}
		uc := newTestUseCase(creator)
		req := validRequest()
		blank(req)

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrMissingFields)
		assert.Zero(t, creator.calls)
	}
}

func TestExecuteNotesAreOptional(t *testing.T) {
	creator := &fakeCreator{resp: &salonapi.Appointment{ID: "apt-1", Status: "pending"}}
	uc := newTestUseCase(creator)

	req := validRequest()
	req.Notes = ""
	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, creator.calls)
}

func TestExecuteRejectsPastDate(t *testing.T) {
	creator := &fakeCreator{}
	uc := newTestUseCase(creator)

	req := validRequest()
	req.AppointmentDate = testNow.AddDate(0, 0, -1)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDateInPast)
	assert.Zero(t, creator.calls)
}

func TestExecuteAcceptsToday(t *testing.T) {
	creator := &fakeCreator{resp: &salonapi.Appointment{ID: "apt-1", Status: "pending"}}
	uc := newTestUseCase(creator)

	req := validRequest()
	req.AppointmentDate = time.Date(2025, 10, 10, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
}

func TestExecuteRejectsOffGridTime(t *testing.T) {
	for _, slot := range []string{"08:30", "18:30", "10:15", "25:00"} {
		creator := &fakeCreator{}
		uc := newTestUseCase(creator)

		req := validRequest()
		req.AppointmentTime = slot

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidTimeSlot, "slot %q", slot)
		assert.Zero(t, creator.calls)
	}
}

func TestExecuteBackendFailure(t *testing.T) {
	creator := &fakeCreator{err: salonapi.ErrServer}
	uc := newTestUseCase(creator)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrBackendUnavailable)
}

func TestExecuteBackendRejection(t *testing.T) {
	creator := &fakeCreator{err: salonapi.ErrBadRequest}
	uc := newTestUseCase(creator)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrMissingFields)
}
