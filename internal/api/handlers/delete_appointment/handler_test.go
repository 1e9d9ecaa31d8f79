package delete_appointment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	manageAppointments "github.com/glamnails/salon-gateway/internal/usecase/manage_appointments"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeManager struct {
	lastID        string
	lastConfirmed bool
	err           error
}

func (f *fakeManager) Delete(_ context.Context, id string, confirmed bool) error {
	f.lastID = id
	f.lastConfirmed = confirmed
	return f.err
}

func doRequest(manager *fakeManager, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/appointments/{id}", NewHandler(manager, nopLogger{}).Handle).Methods(http.MethodDelete)

	req := httptest.NewRequest(http.MethodDelete, target, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandleConfirmedDelete(t *testing.T) {
	manager := &fakeManager{}
	rec := doRequest(manager, "/api/appointments/apt-1?confirm=true")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "apt-1", manager.lastID)
	assert.True(t, manager.lastConfirmed)
}

func TestHandleUnconfirmedDelete(t *testing.T) {
	manager := &fakeManager{err: manageAppointments.ErrNotConfirmed}
	rec := doRequest(manager, "/api/appointments/apt-1")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, manager.lastConfirmed)
}

func TestHandleNotFound(t *testing.T) {
	manager := &fakeManager{err: manageAppointments.ErrNotFound}
	rec := doRequest(manager, "/api/appointments/missing?confirm=true")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
