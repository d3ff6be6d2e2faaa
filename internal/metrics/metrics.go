package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	bookingOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mecanica_agenda",
			Name:      "booking_operations_total",
			Help:      "Booking negotiation operations by kind and outcome.",
		},
		[]string{"operation", "outcome"},
	)

	quoteOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mecanica_agenda",
			Name:      "quote_operations_total",
			Help:      "Quote engine operations by kind and outcome.",
		},
		[]string{"operation", "outcome"},
	)

	subscribers = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "mecanica_agenda",
			Name:      "booking_event_streams",
			Help:      "Currently open booking event streams.",
		},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(bookingOps, quoteOps, subscribers)
	})
}

func IncBookingOp(operation string, err error) {
	bookingOps.WithLabelValues(operation, outcome(err)).Inc()
}

func IncQuoteOp(operation string, err error) {
	quoteOps.WithLabelValues(operation, outcome(err)).Inc()
}

func StreamOpened() { subscribers.Inc() }
func StreamClosed() { subscribers.Dec() }

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
