package manage_appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/glamnails/salon-gateway/internal/domain"
	"github.com/glamnails/salon-gateway/internal/integrations/salonapi"
)

// Manager owns the admin-side appointment list: load the full set, filter
// it locally, apply status transitions and deletions. Mutations re-fetch the
// list from the backend instead of patching it locally; the added round trip
// buys guaranteed consistency with server-side effects of the transition.
type Manager struct {
	mu           sync.Mutex
	appointments []salonapi.Appointment

	client BackendClient
	logger Logger
}

func NewManager(client BackendClient, logger Logger) *Manager {
	return &Manager{
		client: client,
		logger: logger,
	}
}

// Load fetches the full appointment set and replaces the local list. Not
// paginated; the set is assumed small enough to load at once. On failure the
// previously loaded list is kept.
func (m *Manager) Load(ctx context.Context) ([]salonapi.Appointment, error) {
	appointments, err := m.client.GetAppointments(ctx)
	if err != nil {
		m.logger.Error("ManageAppointments: failed to load appointments: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}

	m.mu.Lock()
	m.appointments = appointments
	m.mu.Unlock()

	m.logger.Info("ManageAppointments: loaded %d appointments", len(appointments))
	return appointments, nil
}

// Appointments returns a copy of the loaded list in original order.
func (m *Manager) Appointments() []salonapi.Appointment {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]salonapi.Appointment, len(m.appointments))
	copy(out, m.appointments)
	return out
}

// Filter derives a view of the loaded list without mutating it. The search
// term matches case-insensitively against customer name and email and as a
// plain substring against the phone number. A status filter of "all" passes
// every record; anything else requires exact status equality.
func (m *Manager) Filter(searchTerm, statusFilter string) []salonapi.Appointment {
	m.mu.Lock()
	source := m.appointments
	m.mu.Unlock()

	term := strings.ToLower(searchTerm)

	filtered := make([]salonapi.Appointment, 0, len(source))
	for _, appt := range source {
		if term != "" &&
			!strings.Contains(strings.ToLower(appt.CustomerName), term) &&
			!strings.Contains(strings.ToLower(appt.CustomerEmail), term) &&
			!strings.Contains(appt.CustomerPhone, searchTerm) {
			continue
		}
		if statusFilter != domain.StatusFilterAll && appt.Status != statusFilter {
			continue
		}
		filtered = append(filtered, appt)
	}
	return filtered
}

// SetStatus applies a status transition and re-fetches the list. Any status
// may be set from any other; only membership in the four-value set is
// checked, and that check never reaches the network.
func (m *Manager) SetStatus(ctx context.Context, id string, status string) error {
	parsed, err := domain.ParseStatus(status)
	if err != nil {
		m.logger.Warn("ManageAppointments: rejected status %q for appointment id=%s", status, id)
		return fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	if err := m.client.UpdateAppointmentStatus(ctx, id, string(parsed)); err != nil {
		if errors.Is(err, salonapi.ErrNotFound) {
			m.logger.Warn("ManageAppointments: appointment id=%s not found", id)
			return ErrNotFound
		}
		m.logger.Error("ManageAppointments: failed to update status for id=%s: %v", id, err)
		return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}

	m.logger.Info("ManageAppointments: appointment id=%s set to %s", id, parsed)

	if _, err := m.Load(ctx); err != nil {
		return err
	}
	return nil
}

// Delete removes an appointment. The confirmed flag is the caller's proof of
// the explicit two-step confirmation; without it nothing happens.
func (m *Manager) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		m.logger.Warn("ManageAppointments: delete of id=%s attempted without confirmation", id)
		return ErrNotConfirmed
	}

	if err := m.client.DeleteAppointment(ctx, id); err != nil {
		if errors.Is(err, salonapi.ErrNotFound) {
			m.logger.Warn("ManageAppointments: appointment id=%s not found", id)
			return ErrNotFound
		}
		m.logger.Error("ManageAppointments: failed to delete id=%s: %v", id, err)
		return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}

	m.logger.Info("ManageAppointments: appointment id=%s deleted", id)

	if _, err := m.Load(ctx); err != nil {
		return err
	}
	return nil
}
