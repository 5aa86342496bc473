package kernel_test

import (
	"testing"

	"dispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustShift(t *testing.T, start, end string) kernel.ShiftWindow {
	t.Helper()
	w, err := kernel.NewShiftWindow(kernel.MustNewTimeOfDay(start), kernel.MustNewTimeOfDay(end))
	require.NoError(t, err)
	return w
}

func TestNewShiftWindow(t *testing.T) {
	t.Run("should create window with valid bounds", func(t *testing.T) {
		w := mustShift(t, "09:00", "17:00")

		assert.Equal(t, "09:00", w.Start().String())
		assert.Equal(t, "17:00", w.End().String())
		assert.False(t, w.WrapsMidnight())
		assert.NoError(t, w.Validate())
	})

	t.Run("should reject zero bounds", func(t *testing.T) {
		var zero kernel.TimeOfDay
		_, err := kernel.NewShiftWindow(zero, kernel.MustNewTimeOfDay("17:00"))
		require.Error(t, err)

		_, err = kernel.NewShiftWindow(kernel.MustNewTimeOfDay("09:00"), zero)
		require.Error(t, err)
	})
}

func TestShiftWindow_Contains_DayShift(t *testing.T) {
	w := mustShift(t, "09:00", "17:00")

	testCases := []struct {
		now      string
		expected bool
	}{
		{"08:59", false},
		{"09:00", true},
		{"12:00", true},
		{"17:00", true},
		{"17:01", false},
		{"23:30", false},
	}

	for _, tc := range testCases {
		t.Run(tc.now, func(t *testing.T) {
			assert.Equal(t, tc.expected, w.Contains(kernel.MustNewTimeOfDay(tc.now)))
		})
	}
}

func TestShiftWindow_Contains_OvernightShift(t *testing.T) {
	w := mustShift(t, "22:00", "06:00")
	assert.True(t, w.WrapsMidnight())

	testCases := []struct {
		now      string
		expected bool
	}{
		{"21:59", false},
		{"22:00", true},
		{"23:30", true},
		{"00:00", true},
		{"03:00", true},
		{"06:00", true},
		{"06:01", false},
		{"12:00", false},
	}

	for _, tc := range testCases {
		t.Run(tc.now, func(t *testing.T) {
			assert.Equal(t, tc.expected, w.Contains(kernel.MustNewTimeOfDay(tc.now)))
		})
	}
}

func TestShiftWindow_Contains_EqualBoundsCoverFullDay(t *testing.T) {
	w := mustShift(t, "08:00", "08:00")

	assert.True(t, w.WrapsMidnight())
	assert.True(t, w.Contains(kernel.MustNewTimeOfDay("08:00")))
	assert.True(t, w.Contains(kernel.MustNewTimeOfDay("20:00")))
	assert.True(t, w.Contains(kernel.MustNewTimeOfDay("03:00")))
}

func TestShiftWindow_Validate(t *testing.T) {
	var zero kernel.ShiftWindow

	require.ErrorIs(t, zero.Validate(), kernel.ErrShiftWindowIsNotConstructed)
}
