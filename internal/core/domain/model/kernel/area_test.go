package kernel_test

import (
	"testing"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewArea(t *testing.T) {
	t.Run("should keep label and derive normalized key", func(t *testing.T) {
		area, err := kernel.NewArea("South Zone")

		require.NoError(t, err)
		assert.Equal(t, "South Zone", area.Label())
		assert.Equal(t, "southzone", area.Key())
		assert.NoError(t, area.Validate())
	})

	t.Run("should strip all interior whitespace", func(t *testing.T) {
		area, err := kernel.NewArea("  North\tEast   Side ")

		require.NoError(t, err)
		assert.Equal(t, "northeastside", area.Key())
	})

	t.Run("should reject blank labels", func(t *testing.T) {
		for _, input := range []string{"", "   ", "\t\n"} {
			_, err := kernel.NewArea(input)
			require.ErrorIs(t, err, errs.ErrValueIsRequired, "input %q", input)
		}
	})
}

func TestArea_IsEqual(t *testing.T) {
	t.Run("case and whitespace insensitive", func(t *testing.T) {
		a, err := kernel.NewArea("South Zone")
		require.NoError(t, err)
		b, err := kernel.NewArea("southzone")
		require.NoError(t, err)
		c, err := kernel.NewArea("SOUTH  ZONE")
		require.NoError(t, err)

		assert.True(t, a.IsEqual(b))
		assert.True(t, a.IsEqual(c))
	})

	t.Run("different areas are not equal", func(t *testing.T) {
		a, _ := kernel.NewArea("South Zone")
		b, _ := kernel.NewArea("North Zone")

		assert.False(t, a.IsEqual(b))
	})
}

func TestArea_Validate(t *testing.T) {
	var zero kernel.Area

	require.ErrorIs(t, zero.Validate(), kernel.ErrAreaIsNotConstructed)
}
