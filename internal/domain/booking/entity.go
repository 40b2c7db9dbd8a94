package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrAlreadyApproved guards Decide against repeating an approval. Only
	// the APPROVED state is locked; a REJECTED booking may still be
	// re-decided, which mirrors the permissiveness of the original system.
	ErrAlreadyApproved = errors.New("booking is already approved")
)

// Booking references its item and booker by id only; the item owner is
// always derived through the item, never stored here.
type Booking struct {
	id        uuid.UUID
	itemID    uuid.UUID
	bookerID  uuid.UUID
	period    DateRange
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

// NewBooking creates a booking in WAITING. Date validation happens in
// NewDateRange; owner/availability checks belong to the command layer,
// which has the stores.
func NewBooking(itemID, bookerID uuid.UUID, period DateRange) *Booking {
	return &Booking{
		id:       uuid.New(),
		itemID:   itemID,
		bookerID: bookerID,
		period:   period,
		status:   StatusWaiting,
	}
}

func ReconstructBooking(
	id, itemID, bookerID uuid.UUID,
	period DateRange,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		itemID:    itemID,
		bookerID:  bookerID,
		period:    period,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Decide transitions the booking to APPROVED or REJECTED. The only guarded
// transition is approving (or re-rejecting) an already APPROVED booking.
func (b *Booking) Decide(approve bool) error {
	if b.status == StatusApproved {
		return ErrAlreadyApproved
	}
	if approve {
		b.status = StatusApproved
	} else {
		b.status = StatusRejected
	}
	return nil
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) ItemID() uuid.UUID    { return b.itemID }
func (b *Booking) BookerID() uuid.UUID  { return b.bookerID }
func (b *Booking) Period() DateRange    { return b.period }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }
