package booking

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Status is the persisted lifecycle state of a booking.
// WAITING -> APPROVED | REJECTED; re-approving an APPROVED booking is an
// error, while a REJECTED booking may still be flipped by the owner.
type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusWaiting, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

// State is the query-time classification of bookings relative to "now".
// It is never persisted.
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

var ErrUnknownState = errors.New("unknown state")

// ParseState parses the token case-sensitively; unrecognized tokens are a
// client error, never silently mapped to ALL.
func ParseState(s string) (State, error) {
	switch State(s) {
	case StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected:
		return State(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownState, s)
	}
}

// AccessLevel is the relationship a caller must hold to a booking for a
// read or a decision. It is request-scoped, never stored.
type AccessLevel int

const (
	AccessOwner AccessLevel = iota
	AccessBooker
	AccessOwnerAndBooker
)

// Permits reports whether userID satisfies the level against a booking
// whose item is owned by ownerID and which was made by bookerID.
func (l AccessLevel) Permits(userID, ownerID, bookerID uuid.UUID) bool {
	switch l {
	case AccessOwner:
		return userID == ownerID
	case AccessBooker:
		return userID == bookerID
	case AccessOwnerAndBooker:
		return userID == ownerID || userID == bookerID
	default:
		return false
	}
}
