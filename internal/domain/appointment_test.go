package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	t.Run("accepts the four statuses", func(t *testing.T) {
		for _, s := range []string{"pending", "confirmed", "completed", "cancelled"} {
			parsed, err := ParseStatus(s)
			require.NoError(t, err)
			assert.Equal(t, AppointmentStatus(s), parsed)
			assert.True(t, parsed.Valid())
		}
	})

	t.Run("rejects anything else", func(t *testing.T) {
		for _, s := range []string{"", "Pending", "canceled", "all", "done"} {
			_, err := ParseStatus(s)
			assert.ErrorIs(t, err, ErrInvalidStatus, "status %q", s)
		}
	})
}
