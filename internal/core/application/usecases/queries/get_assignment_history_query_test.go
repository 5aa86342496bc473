package queries_test

import (
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetAssignmentHistoryQuery(t *testing.T) {
	t.Run("requires a reference time", func(t *testing.T) {
		_, err := queries.NewGetAssignmentHistoryQuery(time.Time{})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("window spans previous day through end of today", func(t *testing.T) {
		now := time.Date(2026, time.August, 31, 14, 45, 10, 0, time.UTC)

		query, err := queries.NewGetAssignmentHistoryQuery(now)
		require.NoError(t, err)

		from, to := query.Window()
		assert.Equal(t, time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC), from)
		assert.Equal(t, time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC), to)
	})

	t.Run("window just after midnight still covers yesterday", func(t *testing.T) {
		now := time.Date(2026, time.September, 1, 0, 0, 1, 0, time.UTC)

		query, err := queries.NewGetAssignmentHistoryQuery(now)
		require.NoError(t, err)

		from, to := query.Window()
		assert.Equal(t, time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC), from)
		assert.Equal(t, time.Date(2026, time.September, 2, 0, 0, 0, 0, time.UTC), to)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var query queries.GetAssignmentHistoryQuery
		require.Error(t, query.Validate())
	})
}
