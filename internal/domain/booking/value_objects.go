package booking

import (
	"errors"
	"time"
)

// ErrInvalidDateRange covers every date violation at creation time: start
// in the past, end not in the future, or end not after start. Callers are
// not told which check failed.
var ErrInvalidDateRange = errors.New("booking dates are invalid")

type DateRange struct {
	start time.Time
	end   time.Time
}

// NewDateRange validates the rental period against the submission instant.
// Start may equal now to the second; end must be strictly in the future
// and strictly after start.
func NewDateRange(start, end, now time.Time) (DateRange, error) {
	if start.Before(now) || !end.After(now) || !end.After(start) {
		return DateRange{}, ErrInvalidDateRange
	}
	return DateRange{start: start, end: end}, nil
}

// ReconstructDateRange rebuilds a stored period without creation-time
// validation; past bookings are expected here.
func ReconstructDateRange(start, end time.Time) DateRange {
	return DateRange{start: start, end: end}
}

func (r DateRange) Start() time.Time {
	return r.start
}

func (r DateRange) End() time.Time {
	return r.end
}

func (r DateRange) Duration() time.Duration {
	return r.end.Sub(r.start)
}

// HasConcluded reports whether the rental period finished strictly before
// now. Comment eligibility keys off this.
func (r DateRange) HasConcluded(now time.Time) bool {
	return r.end.Before(now)
}

// HasStarted reports whether the period has begun (start <= now).
func (r DateRange) HasStarted(now time.Time) bool {
	return !r.start.After(now)
}
