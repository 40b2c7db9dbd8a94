//go:build unit

package queries

import (
	"testing"
	"time"

	"gearshare/internal/domain/booking"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterForState(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("ALL imposes no constraint", func(t *testing.T) {
		f := FilterForState(booking.StateAll, now)
		assert.Equal(t, BookingFilter{}, f)
	})

	t.Run("WAITING filters by status only", func(t *testing.T) {
		f := FilterForState(booking.StateWaiting, now)
		require.NotNil(t, f.Status)
		assert.Equal(t, booking.StatusWaiting, *f.Status)
		assert.Nil(t, f.StartedBefore)
		assert.Nil(t, f.StartsAfter)
		assert.Nil(t, f.EndedBefore)
		assert.Nil(t, f.EndsAfter)
	})

	t.Run("REJECTED filters by status only", func(t *testing.T) {
		f := FilterForState(booking.StateRejected, now)
		require.NotNil(t, f.Status)
		assert.Equal(t, booking.StatusRejected, *f.Status)
	})

	t.Run("PAST means ended strictly before now", func(t *testing.T) {
		f := FilterForState(booking.StatePast, now)
		require.NotNil(t, f.EndedBefore)
		assert.Equal(t, now, *f.EndedBefore)
		assert.Nil(t, f.Status)
	})

	t.Run("FUTURE means starting strictly after now", func(t *testing.T) {
		f := FilterForState(booking.StateFuture, now)
		require.NotNil(t, f.StartsAfter)
		assert.Equal(t, now, *f.StartsAfter)
	})

	t.Run("CURRENT brackets now on both sides", func(t *testing.T) {
		f := FilterForState(booking.StateCurrent, now)
		want := BookingFilter{StartedBefore: &now, EndsAfter: &now}
		if diff := cmp.Diff(want, f); diff != "" {
			t.Errorf("filter mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestProjectLastNext(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	itemID := uuid.New()

	row := func(id uuid.UUID, target uuid.UUID, start, end time.Time) *BookingView {
		return &BookingView{
			ID:    id,
			Item:  ItemRef{ID: target},
			Start: start,
			End:   end,
		}
	}

	t.Run("no rows yields neither", func(t *testing.T) {
		last, next := projectLastNext(nil, itemID, now)
		assert.Nil(t, last)
		assert.Nil(t, next)
	})

	t.Run("picks greatest past end and smallest future start", func(t *testing.T) {
		older := row(uuid.New(), itemID, now.Add(-96*time.Hour), now.Add(-72*time.Hour))
		recent := row(uuid.New(), itemID, now.Add(-48*time.Hour), now.Add(-24*time.Hour))
		soon := row(uuid.New(), itemID, now.Add(24*time.Hour), now.Add(48*time.Hour))
		later := row(uuid.New(), itemID, now.Add(72*time.Hour), now.Add(96*time.Hour))

		last, next := projectLastNext([]*BookingView{older, soon, later, recent}, itemID, now)

		require.NotNil(t, last)
		require.NotNil(t, next)
		assert.Equal(t, recent.ID, last.ID)
		assert.Equal(t, soon.ID, next.ID)
	})

	t.Run("ongoing booking is neither last nor next", func(t *testing.T) {
		ongoing := row(uuid.New(), itemID, now.Add(-time.Hour), now.Add(time.Hour))

		last, next := projectLastNext([]*BookingView{ongoing}, itemID, now)
		assert.Nil(t, last)
		assert.Nil(t, next)
	})

	t.Run("end equal to now is not past", func(t *testing.T) {
		edge := row(uuid.New(), itemID, now.Add(-time.Hour), now)

		last, _ := projectLastNext([]*BookingView{edge}, itemID, now)
		assert.Nil(t, last)
	})

	t.Run("rows of other items are skipped", func(t *testing.T) {
		other := row(uuid.New(), uuid.New(), now.Add(-48*time.Hour), now.Add(-24*time.Hour))

		last, next := projectLastNext([]*BookingView{other}, itemID, now)
		assert.Nil(t, last)
		assert.Nil(t, next)
	})

	t.Run("equal instants break toward the larger id", func(t *testing.T) {
		lo := uuid.MustParse("00000000-0000-0000-0000-000000000001")
		hi := uuid.MustParse("ffffffff-ffff-ffff-ffff-ffffffffffff")

		start := now.Add(-48 * time.Hour)
		end := now.Add(-24 * time.Hour)
		a := row(lo, itemID, start, end)
		b := row(hi, itemID, start, end)

		last, _ := projectLastNext([]*BookingView{a, b}, itemID, now)
		require.NotNil(t, last)
		assert.Equal(t, hi, last.ID)

		// Same pick regardless of input order.
		last, _ = projectLastNext([]*BookingView{b, a}, itemID, now)
		require.NotNil(t, last)
		assert.Equal(t, hi, last.ID)
	})

	t.Run("ref carries booker and period", func(t *testing.T) {
		bookerID := uuid.New()
		past := row(uuid.New(), itemID, now.Add(-48*time.Hour), now.Add(-24*time.Hour))
		past.Booker = UserRef{ID: bookerID}

		last, _ := projectLastNext([]*BookingView{past}, itemID, now)
		require.NotNil(t, last)
		assert.Equal(t, bookerID, last.BookerID)
		assert.Equal(t, past.Start, last.Start)
		assert.Equal(t, past.End, last.End)
	})
}

func TestNewPage(t *testing.T) {
	t.Run("valid window", func(t *testing.T) {
		p, err := NewPage(0, 10)
		require.NoError(t, err)
		assert.Equal(t, Page{From: 0, Size: 10}, p)
	})

	t.Run("negative from", func(t *testing.T) {
		_, err := NewPage(-1, 10)
		require.ErrorIs(t, err, ErrInvalidPage)
	})

	t.Run("zero size", func(t *testing.T) {
		_, err := NewPage(0, 0)
		require.ErrorIs(t, err, ErrInvalidPage)
	})

	t.Run("oversized window is clamped", func(t *testing.T) {
		p, err := NewPage(0, MaxPageSize+1)
		require.NoError(t, err)
		assert.Equal(t, MaxPageSize, p.Size)
	})
}
