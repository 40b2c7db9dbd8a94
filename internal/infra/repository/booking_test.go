//go:build unit

package repository

import (
	"strings"
	"testing"
	"time"

	"gearshare/internal/domain/booking"
	"gearshare/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildBookingQuery(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	subjectID := uuid.New()

	t.Run("orders by start descending for every state", func(t *testing.T) {
		states := []booking.State{
			booking.StateAll, booking.StateCurrent, booking.StatePast,
			booking.StateFuture, booking.StateWaiting, booking.StateRejected,
		}
		for _, state := range states {
			f := queries.FilterForState(state, now)
			q, _ := buildBookingQuery("b.booker_id", subjectID, f, &queries.Page{From: 0, Size: 10})
			assert.Contains(t, q, "ORDER BY b.start_date DESC", "state %s", state)
		}
	})

	t.Run("subject binds first", func(t *testing.T) {
		q, args := buildBookingQuery("i.owner_id", subjectID, queries.BookingFilter{}, nil)
		assert.Contains(t, q, "WHERE i.owner_id = $1")
		require.Len(t, args, 1)
		assert.Equal(t, subjectID, args[0])
	})

	t.Run("filter conditions number their placeholders in order", func(t *testing.T) {
		f := queries.FilterForState(booking.StateCurrent, now)
		q, args := buildBookingQuery("b.booker_id", subjectID, f, nil)

		assert.Contains(t, q, "b.booker_id = $1")
		assert.Contains(t, q, "b.start_date < $2")
		assert.Contains(t, q, "b.end_date > $3")
		require.Len(t, args, 3)
		assert.Equal(t, now, args[1])
		assert.Equal(t, now, args[2])
	})

	t.Run("status filter binds its string value", func(t *testing.T) {
		f := queries.FilterForState(booking.StateWaiting, now)
		q, args := buildBookingQuery("b.booker_id", subjectID, f, nil)

		assert.Contains(t, q, "b.status = $2")
		require.Len(t, args, 2)
		assert.Equal(t, string(booking.StatusWaiting), args[1])
	})

	t.Run("page appends offset then limit after the filter args", func(t *testing.T) {
		f := queries.FilterForState(booking.StateCurrent, now)
		q, args := buildBookingQuery("b.booker_id", subjectID, f, &queries.Page{From: 20, Size: 5})

		assert.Contains(t, q, "OFFSET $4 LIMIT $5")
		require.Len(t, args, 5)
		assert.Equal(t, 20, args[3])
		assert.Equal(t, 5, args[4])
	})

	t.Run("no page leaves the window out", func(t *testing.T) {
		q, _ := buildBookingQuery("b.item_id", subjectID, queries.BookingFilter{}, nil)
		assert.NotContains(t, q, "OFFSET")
		assert.NotContains(t, q, "LIMIT")
	})

	t.Run("window follows the ordering clause", func(t *testing.T) {
		q, _ := buildBookingQuery("b.booker_id", subjectID, queries.BookingFilter{}, &queries.Page{From: 0, Size: 10})
		order := strings.Index(q, "ORDER BY b.start_date DESC")
		window := strings.Index(q, "OFFSET $2 LIMIT $3")
		require.GreaterOrEqual(t, order, 0)
		require.GreaterOrEqual(t, window, 0)
		assert.Less(t, order, window)
	})
}
