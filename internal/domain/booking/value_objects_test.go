//go:build unit

package booking_test

import (
	"testing"
	"time"

	"gearshare/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDateRange(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		errIs error
	}{
		{
			name:  "future period",
			start: now.Add(time.Hour),
			end:   now.Add(2 * time.Hour),
		},
		{
			name:  "start exactly now is allowed",
			start: now,
			end:   now.Add(time.Hour),
		},
		{
			name:  "start in the past",
			start: now.Add(-time.Second),
			end:   now.Add(time.Hour),
			errIs: booking.ErrInvalidDateRange,
		},
		{
			name:  "end exactly now",
			start: now,
			end:   now,
			errIs: booking.ErrInvalidDateRange,
		},
		{
			name:  "end before start",
			start: now.Add(2 * time.Hour),
			end:   now.Add(time.Hour),
			errIs: booking.ErrInvalidDateRange,
		},
		{
			name:  "end equals start",
			start: now.Add(time.Hour),
			end:   now.Add(time.Hour),
			errIs: booking.ErrInvalidDateRange,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			period, err := booking.NewDateRange(c.start, c.end, now)

			if c.errIs == nil {
				require.NoError(t, err)
				assert.Equal(t, c.start, period.Start())
				assert.Equal(t, c.end, period.End())
			} else {
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

func TestDateRangeQueries(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("HasConcluded", func(t *testing.T) {
		past := booking.ReconstructDateRange(now.Add(-48*time.Hour), now.Add(-24*time.Hour))
		ending := booking.ReconstructDateRange(now.Add(-24*time.Hour), now)
		ongoing := booking.ReconstructDateRange(now.Add(-time.Hour), now.Add(time.Hour))

		assert.True(t, past.HasConcluded(now))
		assert.False(t, ending.HasConcluded(now), "end equal to now has not concluded")
		assert.False(t, ongoing.HasConcluded(now))
	})

	t.Run("HasStarted", func(t *testing.T) {
		started := booking.ReconstructDateRange(now, now.Add(time.Hour))
		future := booking.ReconstructDateRange(now.Add(time.Second), now.Add(time.Hour))

		assert.True(t, started.HasStarted(now))
		assert.False(t, future.HasStarted(now))
	})

	t.Run("Duration", func(t *testing.T) {
		period := booking.ReconstructDateRange(now, now.Add(36*time.Hour))
		assert.Equal(t, 36*time.Hour, period.Duration())
	})
}
