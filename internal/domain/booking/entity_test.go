//go:build unit

package booking_test

import (
	"testing"

	"gearshare/internal/domain/booking"
	"gearshare/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBooking(t *testing.T) {
	t.Run("starts in WAITING", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, booking.StatusWaiting, actual.Status())
	})

	t.Run("UUID uniqueness", func(t *testing.T) {
		b := builder.NewBookingBuilder()

		first, err1 := b.BuildDomain()
		second, err2 := b.BuildDomain()
		require.NoError(t, err1)
		require.NoError(t, err2)

		assert.NotEqual(t, first.ID(), second.ID())
	})
}

func TestDecide(t *testing.T) {
	t.Run("approve from WAITING", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildStored()

		require.NoError(t, b.Decide(true))
		assert.Equal(t, booking.StatusApproved, b.Status())
	})

	t.Run("reject from WAITING", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildStored()

		require.NoError(t, b.Decide(false))
		assert.Equal(t, booking.StatusRejected, b.Status())
	})

	t.Run("approving an APPROVED booking fails", func(t *testing.T) {
		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Status = booking.StatusApproved
		}).BuildStored()

		err := b.Decide(true)
		require.ErrorIs(t, err, booking.ErrAlreadyApproved)
		assert.Equal(t, booking.StatusApproved, b.Status())
	})

	t.Run("rejecting an APPROVED booking fails", func(t *testing.T) {
		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Status = booking.StatusApproved
		}).BuildStored()

		err := b.Decide(false)
		require.ErrorIs(t, err, booking.ErrAlreadyApproved)
		assert.Equal(t, booking.StatusApproved, b.Status())
	})

	t.Run("a REJECTED booking may still be approved", func(t *testing.T) {
		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Status = booking.StatusRejected
		}).BuildStored()

		require.NoError(t, b.Decide(true))
		assert.Equal(t, booking.StatusApproved, b.Status())
	})

	t.Run("a REJECTED booking may be rejected again", func(t *testing.T) {
		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Status = booking.StatusRejected
		}).BuildStored()

		require.NoError(t, b.Decide(false))
		assert.Equal(t, booking.StatusRejected, b.Status())
	})
}
