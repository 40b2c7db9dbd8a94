package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gearshare",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method and route.",
		},
		[]string{"method", "route", "status"},
	)

	bookingsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "gearshare",
			Name:      "bookings_created_total",
			Help:      "Bookings accepted into WAITING.",
		},
	)

	bookingDecisions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gearshare",
			Name:      "booking_decisions_total",
			Help:      "Owner decisions by outcome.",
		},
		[]string{"outcome"},
	)

	commentsAdded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "gearshare",
			Name:      "comments_added_total",
			Help:      "Comments that passed the eligibility gate.",
		},
	)

	itemCacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gearshare",
			Name:      "item_cache_lookups_total",
			Help:      "Item view cache lookups by result.",
		},
		[]string{"result"},
	)
)

// Register registers all collectors. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			httpRequests,
			bookingsCreated,
			bookingDecisions,
			commentsAdded,
			itemCacheLookups,
		)
	})
}

func IncHTTP(method, route, status string) {
	httpRequests.WithLabelValues(method, route, status).Inc()
}

func IncBookingCreated() {
	bookingsCreated.Inc()
}

func IncBookingDecision(approved bool) {
	outcome := "rejected"
	if approved {
		outcome = "approved"
	}
	bookingDecisions.WithLabelValues(outcome).Inc()
}

func IncCommentAdded() {
	commentsAdded.Inc()
}

func IncItemCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	itemCacheLookups.WithLabelValues(result).Inc()
}
