//go:build unit

package tutor_test

import (
	"testing"

	"tutorlink/internal/domain/tutor"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTutor(t *testing.T) {
	id := uuid.New()

	t.Run("valid tutor", func(t *testing.T) {
		tu, err := tutor.NewTutor(id, "  Alice Kim  ", "  Math and physics  ", 4500, true)
		require.NoError(t, err)
		assert.Equal(t, id, tu.ID())
		assert.Equal(t, "Alice Kim", tu.Name())
		assert.Equal(t, "Math and physics", tu.Bio())
		assert.Equal(t, int64(4500), tu.HourlyRateCents())
		assert.True(t, tu.IsActive())
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := tutor.NewTutor(id, "   ", "bio", 4500, true)
		require.ErrorIs(t, err, tutor.ErrEmptyName)
	})

	t.Run("negative rate", func(t *testing.T) {
		_, err := tutor.NewTutor(id, "Alice Kim", "bio", -1, true)
		require.ErrorIs(t, err, tutor.ErrNegativeRate)
	})
}

func TestReconstruct(t *testing.T) {
	id := uuid.New()

	t.Run("carries stored fields as-is", func(t *testing.T) {
		tu := tutor.Reconstruct(id, "Alice Kim", "Math and physics", 4500, true)
		assert.Equal(t, id, tu.ID())
		assert.Equal(t, "Alice Kim", tu.Name())
		assert.Equal(t, "Math and physics", tu.Bio())
		assert.Equal(t, int64(4500), tu.HourlyRateCents())
		assert.True(t, tu.IsActive())
	})

	t.Run("inactive tutor", func(t *testing.T) {
		tu := tutor.Reconstruct(id, "Alice Kim", "", 0, false)
		assert.False(t, tu.IsActive())
	})
}
