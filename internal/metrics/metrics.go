package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bookly",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method and route.",
		},
		[]string{"method", "route"},
	)

	bookingsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "bookly",
			Name:      "bookings_created_total",
			Help:      "Bookings admitted by the lifecycle engine.",
		},
	)

	bookingStatusChanges = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bookly",
			Name:      "booking_status_changes_total",
			Help:      "Booking status overwrites by new status.",
		},
		[]string{"status"},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, bookingsCreated, bookingStatusChanges)
	})
}

// IncHTTP increments the request counter for a method/route pair.
func IncHTTP(method, route string) {
	httpRequests.WithLabelValues(method, route).Inc()
}

// IncBookingCreated counts a successfully created booking.
func IncBookingCreated() {
	bookingsCreated.Inc()
}

// IncBookingStatusChange counts a status overwrite.
func IncBookingStatusChange(status string) {
	bookingStatusChanges.WithLabelValues(status).Inc()
}
