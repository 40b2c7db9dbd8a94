package commands

import (
	"context"
	"time"

	"gearshare/internal/domain/booking"
	"gearshare/internal/domain/item"
	"gearshare/internal/domain/request"
	"gearshare/internal/domain/user"
	"gearshare/internal/infra"
	"gearshare/internal/usecase/queries"

	"github.com/google/uuid"
)

// Write-side snapshots keep commands off the read-side view types where
// the shapes differ.
type UserSnapshot struct {
	ID    uuid.UUID
	Email string
	Name  string
}

type ItemSnapshot struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Description string
	Available   bool
	RequestID   *uuid.UUID
}

type UserStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	Create(ctx context.Context, u *user.User) (*queries.UserView, error)
	Update(ctx context.Context, u *user.User) (*queries.UserView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ItemStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ItemSnapshot, error)
	Create(ctx context.Context, i *item.Item) (*queries.ItemView, error)
	Update(ctx context.Context, i *item.Item) (*queries.ItemView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type BookingStore interface {
	Create(ctx context.Context, b *booking.Booking) (*queries.BookingView, error)
	// Decide re-reads the booking under a row lock, hands the current
	// state to fn together with the item owner's id, and persists the
	// status fn leaves behind. Everything happens in one transaction,
	// so two concurrent decisions on the same booking serialize.
	Decide(ctx context.Context, id uuid.UUID, fn func(b *booking.Booking, itemOwnerID uuid.UUID) error) (*queries.BookingView, error)
	// HasConcludedApproved reports whether bookerID holds at least one
	// APPROVED booking of itemID whose period ended strictly before now.
	HasConcludedApproved(ctx context.Context, itemID, bookerID uuid.UUID, now time.Time) (bool, error)
}

type CommentStore interface {
	Create(ctx context.Context, c *item.Comment) (*queries.CommentView, error)
}

type RequestStore interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Create(ctx context.Context, r *request.ItemRequest) (*queries.RequestView, error)
}

// Every command verifies its caller up front; unknown callers get
// ErrUserNotFound before any other check runs.
func requireUser(ctx context.Context, users UserStore, id uuid.UUID) error {
	if _, err := users.FindByID(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}
