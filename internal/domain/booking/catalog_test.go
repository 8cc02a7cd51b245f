//go:build unit

package booking_test

import (
	"testing"

	"tutorlink/internal/domain/booking"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSlotCatalog(t *testing.T) {
	cases := []struct {
		name   string
		labels []string
		errIs  error
	}{
		{
			name:   "hourly business day",
			labels: []string{"09:00", "10:00", "11:00"},
		},
		{
			name:   "single slot",
			labels: []string{"14:30"},
		},
		{
			name:   "empty catalog",
			labels: nil,
			errIs:  booking.ErrEmptyCatalog,
		},
		{
			name:   "malformed label",
			labels: []string{"09:00", "9am"},
			errIs:  booking.ErrMalformedSlot,
		},
		{
			name:   "hour out of range",
			labels: []string{"24:00"},
			errIs:  booking.ErrMalformedSlot,
		},
		{
			name:   "duplicate label",
			labels: []string{"09:00", "09:00"},
			errIs:  booking.ErrUnorderedCatalog,
		},
		{
			name:   "out of order",
			labels: []string{"10:00", "09:00"},
			errIs:  booking.ErrUnorderedCatalog,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			catalog, err := booking.NewSlotCatalog(c.labels)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(c.labels), catalog.Len())
			assert.Empty(t, cmp.Diff(c.labels, catalog.Labels()))
		})
	}
}

func TestSlotCatalogContains(t *testing.T) {
	catalog, err := booking.NewSlotCatalog([]string{"09:00", "10:00", "11:00"})
	require.NoError(t, err)

	assert.True(t, catalog.Contains("09:00"))
	assert.True(t, catalog.Contains("11:00"))
	assert.False(t, catalog.Contains("08:00"))
	assert.False(t, catalog.Contains("9:00"))
	assert.False(t, catalog.Contains(""))
}

func TestSlotCatalogAvailable(t *testing.T) {
	catalog, err := booking.NewSlotCatalog([]string{"09:00", "10:00", "11:00", "12:00"})
	require.NoError(t, err)

	t.Run("nothing booked returns full catalog", func(t *testing.T) {
		got := catalog.Available(nil)
		assert.Empty(t, cmp.Diff([]string{"09:00", "10:00", "11:00", "12:00"}, got))
	})

	t.Run("booked slots removed, order preserved", func(t *testing.T) {
		got := catalog.Available([]string{"10:00", "12:00"})
		assert.Empty(t, cmp.Diff([]string{"09:00", "11:00"}, got))
	})

	t.Run("fully booked day is empty but non-nil", func(t *testing.T) {
		got := catalog.Available([]string{"09:00", "10:00", "11:00", "12:00"})
		require.NotNil(t, got)
		assert.Len(t, got, 0)
	})

	t.Run("labels outside the catalog are ignored", func(t *testing.T) {
		got := catalog.Available([]string{"08:00", "23:59"})
		assert.Len(t, got, 4)
	})
}
