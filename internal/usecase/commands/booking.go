package commands

import (
	"context"
	"time"

	"gearshare/internal/domain/booking"
	"gearshare/internal/infra"
	"gearshare/internal/metrics"
	"gearshare/internal/pkg/clock"
	"gearshare/internal/pkg/errs"
	"gearshare/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound    = errs.New("user not found")
	ErrItemNotFound    = errs.New("item not found")
	ErrBookingNotFound = errs.New("booking not found")
	// ErrOwnItemBooking: owners cannot book what they already own.
	ErrOwnItemBooking      = errs.New("owner cannot book own item")
	ErrBookingAccessDenied = errs.New("no access to booking")
	ErrItemNotAvailable    = errs.New("item is not available for booking")
	ErrInvalidBookingDates = errs.New("booking dates are invalid")
	// ErrAlreadyDecided guards only the already-APPROVED case; a REJECTED
	// booking can still be flipped. See booking.Booking.Decide.
	ErrAlreadyDecided = errs.New("booking is already approved")
)

type BookingCommands interface {
	Create(ctx context.Context, callerID, itemID uuid.UUID, start, end time.Time) (*queries.BookingView, error)
	Decide(ctx context.Context, callerID, bookingID uuid.UUID, approve bool, level booking.AccessLevel) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	bookings BookingStore
	items    ItemStore
	users    UserStore
	clock    clock.Clock
}

func NewBookingCommands(bookings BookingStore, items ItemStore, users UserStore, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{
		bookings: bookings,
		items:    items,
		users:    users,
		clock:    clk,
	}
}

// Create runs the full admission sequence: booker exists, item exists,
// booker is not the owner, item is available, dates are valid. The saved
// booking always starts in WAITING. Overlapping bookings for the same
// item are deliberately not rejected here.
func (c *bookingCommandsImpl) Create(ctx context.Context, callerID, itemID uuid.UUID, start, end time.Time) (*queries.BookingView, error) {
	if err := requireUser(ctx, c.users, callerID); err != nil {
		return nil, err
	}

	itm, err := c.items.FindByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	if itm.OwnerID == callerID {
		return nil, ErrOwnItemBooking
	}
	if !itm.Available {
		return nil, ErrItemNotAvailable
	}

	period, err := booking.NewDateRange(start, end, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBookingDates)
	}

	view, err := c.bookings.Create(ctx, booking.NewBooking(itemID, callerID, period))
	if err != nil {
		return nil, err
	}

	metrics.IncBookingCreated()
	return view, nil
}

// Decide approves or rejects a WAITING (or re-decides a REJECTED)
// booking. The store serializes concurrent decisions on the same row;
// the access check and the approved-again guard both run against the
// locked state.
func (c *bookingCommandsImpl) Decide(ctx context.Context, callerID, bookingID uuid.UUID, approve bool, level booking.AccessLevel) (*queries.BookingView, error) {
	if err := requireUser(ctx, c.users, callerID); err != nil {
		return nil, err
	}

	view, err := c.bookings.Decide(ctx, bookingID, func(b *booking.Booking, itemOwnerID uuid.UUID) error {
		if !level.Permits(callerID, itemOwnerID, b.BookerID()) {
			return ErrBookingAccessDenied
		}
		if err := b.Decide(approve); err != nil {
			return errs.Mark(err, ErrAlreadyDecided)
		}
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	metrics.IncBookingDecision(approve)
	return view, nil
}
