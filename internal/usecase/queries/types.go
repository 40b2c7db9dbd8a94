package queries

import (
	"time"

	"gearshare/internal/domain/booking"
	"gearshare/internal/pkg/errs"

	"github.com/google/uuid"
)

const MaxPageSize = 200

var ErrInvalidPage = errs.New("invalid pagination window")

// Page is an offset/limit window over an ordered result set.
type Page struct {
	From int
	Size int
}

// NewPage validates the window: from >= 0, 1 <= size <= MaxPageSize.
func NewPage(from, size int) (Page, error) {
	if from < 0 || size < 1 {
		return Page{}, ErrInvalidPage
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return Page{From: from, Size: size}, nil
}

// ItemRef is the item half of a booking view; OwnerID is carried so
// access rules never need a second lookup.
type ItemRef struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	OwnerID uuid.UUID `json:"-"`
}

type UserRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// BookingView is the read model for a booking, joined with its item and
// booker.
type BookingView struct {
	ID      uuid.UUID      `json:"id"`
	Item    ItemRef        `json:"item"`
	Booker  UserRef        `json:"booker"`
	Start   time.Time      `json:"start"`
	End     time.Time      `json:"end"`
	Status  booking.Status `json:"status"`
	Created time.Time      `json:"created"`
}

// BookingRef is the short form attached to item views as lastBooking /
// nextBooking.
type BookingRef struct {
	ID       uuid.UUID `json:"id"`
	BookerID uuid.UUID `json:"bookerId"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

type CommentView struct {
	ID         uuid.UUID `json:"id"`
	AuthorName string    `json:"authorName"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created"`
}

// ItemView is an item as seen by a viewer. LastBooking and NextBooking
// are populated only when the viewer owns the item; comments are always
// attached.
type ItemView struct {
	ID          uuid.UUID     `json:"id"`
	OwnerID     uuid.UUID     `json:"ownerId"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Available   bool          `json:"available"`
	RequestID   *uuid.UUID    `json:"requestId,omitempty"`
	LastBooking *BookingRef   `json:"lastBooking,omitempty"`
	NextBooking *BookingRef   `json:"nextBooking,omitempty"`
	Comments    []CommentView `json:"comments"`
}

type UserView struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
}

// RequestView is an item request together with the items listed in
// answer to it.
type RequestView struct {
	ID          uuid.UUID    `json:"id"`
	AuthorID    uuid.UUID    `json:"authorId"`
	Description string       `json:"description"`
	CreatedAt   time.Time    `json:"created"`
	Items       []RequestFit `json:"items"`
}

// RequestFit is an item offered in answer to a request.
type RequestFit struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"ownerId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Available   bool      `json:"available"`
	RequestID   uuid.UUID `json:"requestId"`
}
