package queries

import (
	"context"
	"time"

	"gearshare/internal/domain/booking"
	"gearshare/internal/infra"
	"gearshare/internal/pkg/clock"
	"gearshare/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound = errs.New("user not found")
	// ErrBookingNotFound is also what an access violation surfaces as:
	// callers cannot distinguish a booking they may not see from one that
	// does not exist.
	ErrBookingNotFound = errs.New("booking not found")
)

// BookingFilter is the storage-level shape of a temporal classification.
// Nil fields impose no constraint. All comparisons are strict.
type BookingFilter struct {
	Status        *booking.Status
	StartedBefore *time.Time // start < t
	StartsAfter   *time.Time // start > t
	EndedBefore   *time.Time // end < t
	EndsAfter     *time.Time // end > t
}

// stateFilters maps each query state to its predicate against a single
// "now", shared between the booker and owner listings. The subject filter
// (booker vs item owner) is the only thing that differs between the two.
var stateFilters = map[booking.State]func(now time.Time) BookingFilter{
	booking.StateAll: func(time.Time) BookingFilter {
		return BookingFilter{}
	},
	booking.StateWaiting: func(time.Time) BookingFilter {
		return statusFilter(booking.StatusWaiting)
	},
	booking.StateRejected: func(time.Time) BookingFilter {
		return statusFilter(booking.StatusRejected)
	},
	booking.StatePast: func(now time.Time) BookingFilter {
		return BookingFilter{EndedBefore: &now}
	},
	booking.StateFuture: func(now time.Time) BookingFilter {
		return BookingFilter{StartsAfter: &now}
	},
	booking.StateCurrent: func(now time.Time) BookingFilter {
		return BookingFilter{StartedBefore: &now, EndsAfter: &now}
	},
}

func statusFilter(s booking.Status) BookingFilter {
	return BookingFilter{Status: &s}
}

// FilterForState resolves the dispatch table; unknown states degrade to
// the unfiltered set, but ParseState upstream rejects them before this
// point.
func FilterForState(state booking.State, now time.Time) BookingFilter {
	if f, ok := stateFilters[state]; ok {
		return f(now)
	}
	return BookingFilter{}
}

// BookingReadStore returns views ordered by start descending; the window
// is applied after filtering and ordering.
type BookingReadStore interface {
	FindViewByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByBooker(ctx context.Context, bookerID uuid.UUID, f BookingFilter, p Page) ([]*BookingView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, f BookingFilter, p Page) ([]*BookingView, error)
}

type UserReadStore interface {
	FindViewByID(ctx context.Context, id uuid.UUID) (*UserView, error)
	ListViews(ctx context.Context) ([]*UserView, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, callerID, bookingID uuid.UUID) (*BookingView, error)
	ListForBooker(ctx context.Context, bookerID uuid.UUID, state booking.State, p Page) ([]*BookingView, error)
	ListForOwner(ctx context.Context, ownerID uuid.UUID, state booking.State, p Page) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	bookings BookingReadStore
	users    UserReadStore
	clock    clock.Clock
}

func NewBookingQueries(bookings BookingReadStore, users UserReadStore, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{bookings: bookings, users: users, clock: clk}
}

// GetByID requires the caller to be the item's owner or the booker.
func (q *bookingQueriesImpl) GetByID(ctx context.Context, callerID, bookingID uuid.UUID) (*BookingView, error) {
	if err := q.requireUser(ctx, callerID); err != nil {
		return nil, err
	}

	view, err := q.bookings.FindViewByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if !booking.AccessOwnerAndBooker.Permits(callerID, view.Item.OwnerID, view.Booker.ID) {
		return nil, ErrBookingNotFound
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListForBooker(ctx context.Context, bookerID uuid.UUID, state booking.State, p Page) ([]*BookingView, error) {
	if err := q.requireUser(ctx, bookerID); err != nil {
		return nil, err
	}

	// now is fixed once per call so every row is classified against the
	// same instant.
	f := FilterForState(state, q.clock.Now())
	return q.bookings.ListByBooker(ctx, bookerID, f, p)
}

func (q *bookingQueriesImpl) ListForOwner(ctx context.Context, ownerID uuid.UUID, state booking.State, p Page) ([]*BookingView, error) {
	if err := q.requireUser(ctx, ownerID); err != nil {
		return nil, err
	}

	f := FilterForState(state, q.clock.Now())
	return q.bookings.ListByOwner(ctx, ownerID, f, p)
}

func (q *bookingQueriesImpl) requireUser(ctx context.Context, id uuid.UUID) error {
	if _, err := q.users.FindViewByID(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}
