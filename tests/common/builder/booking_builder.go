//go:build unit || e2e

package builder

import (
	"time"

	dombooking "gearshare/internal/domain/booking"
	reqdto "gearshare/internal/handler/dto/request"
	"gearshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID        uuid.UUID
	ItemID    uuid.UUID
	ItemName  string
	OwnerID   uuid.UUID
	BookerID  uuid.UUID
	Booker    string
	Start     time.Time
	End       time.Time
	Status    dombooking.Status
	CreatedAt time.Time
	Now       time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		ID:        uuid.New(),
		ItemID:    uuid.New(),
		ItemName:  "Cordless Drill",
		OwnerID:   uuid.New(),
		BookerID:  uuid.New(),
		Booker:    "Renter",
		Start:     now.Add(24 * time.Hour),
		End:       now.Add(48 * time.Hour),
		Status:    dombooking.StatusWaiting,
		CreatedAt: now,
		Now:       now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	period, err := dombooking.NewDateRange(b.Start, b.End, b.Now)
	if err != nil {
		return nil, err
	}
	return dombooking.NewBooking(b.ItemID, b.BookerID, period), nil
}

// BuildStored reconstructs a persisted booking in the builder's status,
// skipping creation-time date validation.
func (b *BookingBuilder) BuildStored() *dombooking.Booking {
	return dombooking.ReconstructBooking(
		b.ID, b.ItemID, b.BookerID,
		dombooking.ReconstructDateRange(b.Start, b.End),
		b.Status,
		b.CreatedAt, b.CreatedAt,
	)
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:      b.ID,
		Item:    queries.ItemRef{ID: b.ItemID, Name: b.ItemName, OwnerID: b.OwnerID},
		Booker:  queries.UserRef{ID: b.BookerID, Name: b.Booker},
		Start:   b.Start,
		End:     b.End,
		Status:  b.Status,
		Created: b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ItemID: b.ItemID,
		Start:  b.Start,
		End:    b.End,
	}
}
