//go:build unit

package booking_test

import (
	"strings"
	"testing"

	"tutorlink/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDate(t *testing.T) {
	cases := []struct {
		name  string
		input string
		errIs error
	}{
		{name: "valid date", input: "2026-09-15"},
		{name: "leap day", input: "2024-02-29"},
		{name: "non-leap february 29", input: "2025-02-29", errIs: booking.ErrInvalidDate},
		{name: "overflowing day", input: "2026-02-30", errIs: booking.ErrInvalidDate},
		{name: "wrong separator", input: "2026/09/15", errIs: booking.ErrInvalidDate},
		{name: "missing zero padding", input: "2026-9-5", errIs: booking.ErrInvalidDate},
		{name: "garbage", input: "next tuesday", errIs: booking.ErrInvalidDate},
		{name: "empty", input: "", errIs: booking.ErrInvalidDate},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d, err := booking.NewDate(c.input)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.input, d.String())
			assert.False(t, d.Time().IsZero())
		})
	}

	t.Run("surrounding whitespace is trimmed", func(t *testing.T) {
		d, err := booking.NewDate("  2026-09-15  ")
		require.NoError(t, err)
		assert.Equal(t, "2026-09-15", d.String())
	})
}

func TestNewNote(t *testing.T) {
	t.Run("trims whitespace", func(t *testing.T) {
		n, err := booking.NewNote("  needs algebra help  ")
		require.NoError(t, err)
		assert.Equal(t, "needs algebra help", n.String())
		assert.False(t, n.IsEmpty())
	})

	t.Run("empty is allowed", func(t *testing.T) {
		n, err := booking.NewNote("")
		require.NoError(t, err)
		assert.True(t, n.IsEmpty())
	})

	t.Run("maximum length accepted", func(t *testing.T) {
		_, err := booking.NewNote(strings.Repeat("a", booking.MaxNoteLength))
		require.NoError(t, err)
	})

	t.Run("over maximum length rejected", func(t *testing.T) {
		_, err := booking.NewNote(strings.Repeat("a", booking.MaxNoteLength+1))
		require.ErrorIs(t, err, booking.ErrNoteTooLong)
	})

	t.Run("length counts characters not bytes", func(t *testing.T) {
		n, err := booking.NewNote(strings.Repeat("가", booking.MaxNoteLength))
		require.NoError(t, err)
		assert.Equal(t, strings.Repeat("가", booking.MaxNoteLength), n.String())

		_, err = booking.NewNote(strings.Repeat("가", booking.MaxNoteLength+1))
		require.ErrorIs(t, err, booking.ErrNoteTooLong)
	})
}

func TestStatus(t *testing.T) {
	t.Run("active statuses", func(t *testing.T) {
		assert.True(t, booking.StatusPending.IsActive())
		assert.True(t, booking.StatusConfirmed.IsActive())
		assert.True(t, booking.StatusCompleted.IsActive())
		assert.False(t, booking.StatusCanceled.IsActive())
	})

	t.Run("parse", func(t *testing.T) {
		st, err := booking.NewStatus("confirmed")
		require.NoError(t, err)
		assert.Equal(t, booking.StatusConfirmed, st)

		_, err = booking.NewStatus("done")
		require.ErrorIs(t, err, booking.ErrInvalidStatus)
	})
}
