package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingDraftSet(t *testing.T) {
	t.Run("sets one field and leaves the others untouched", func(t *testing.T) {
		var d BookingDraft
		require.NoError(t, d.Set(FieldCustomerName, "Ana Smith"))
		require.NoError(t, d.Set(FieldTime, "10:30"))

		assert.Equal(t, "Ana Smith", d.CustomerName)
		assert.Equal(t, "10:30", d.AppointmentTime)
		assert.Empty(t, d.ServiceID)
		assert.Empty(t, d.CustomerEmail)
	})

	t.Run("parses the date field", func(t *testing.T) {
		var d BookingDraft
		require.NoError(t, d.Set(FieldDate, "2025-10-15"))
		assert.Equal(t, time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC), d.AppointmentDate)
	})

	t.Run("empty date clears the field", func(t *testing.T) {
		var d BookingDraft
		require.NoError(t, d.Set(FieldDate, "2025-10-15"))
		require.NoError(t, d.Set(FieldDate, ""))
		assert.True(t, d.AppointmentDate.IsZero())
	})

	t.Run("rejects a malformed date", func(t *testing.T) {
		var d BookingDraft
		assert.Error(t, d.Set(FieldDate, "15.10.2025"))
	})

	t.Run("rejects an unknown field", func(t *testing.T) {
		var d BookingDraft
		err := d.Set(DraftField("favorite_color"), "red")
		assert.ErrorIs(t, err, ErrUnknownField)
	})
}

func TestBookingDraftReset(t *testing.T) {
	d := BookingDraft{
		ServiceID:    "svc-1",
		CustomerName: "Ana Smith",
		Notes:        "please be gentle",
	}
	d.Reset()
	assert.Equal(t, BookingDraft{}, d)
}
