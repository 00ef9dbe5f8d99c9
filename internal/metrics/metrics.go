package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Result labels for offer and scheduling counters
const (
	ResultAccepted = "accepted"
	ResultRejected = "rejected"
	ResultConflict = "conflict"
	ResultError    = "error"
)

// Metrics holds the service collectors on a private registry.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
	offers           *prometheus.CounterVec
	offerTransitions *prometheus.CounterVec
	auctions         *prometheus.CounterVec
}

// New creates and registers the collectors
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "auction",
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests handled.",
			},
			[]string{"method", "path", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "auction",
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Duration of HTTP requests.",
				Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
			},
			[]string{"method", "path"},
		),
		offers: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "auction",
				Name:      "offers_total",
				Help:      "Offers submitted, by outcome.",
			},
			[]string{"result"},
		),
		offerTransitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "auction",
				Name:      "offer_transitions_total",
				Help:      "Offer state transitions, by target status.",
			},
			[]string{"status"},
		),
		auctions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "auction",
				Name:      "auctions_scheduled_total",
				Help:      "Auction scheduling attempts, by outcome.",
			},
			[]string{"result"},
		),
	}

	m.registry.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.offers,
		m.offerTransitions,
		m.auctions,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)
	return m
}

// Handler returns an HTTP handler exposing the registered metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveHTTP records one served request. path should be the route template, not the raw URL.
func (m *Metrics) ObserveHTTP(method, path string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

// OfferResult counts a MakeOffer outcome
func (m *Metrics) OfferResult(result string) {
	if m == nil {
		return
	}
	m.offers.WithLabelValues(result).Inc()
}

// OfferTransition counts an offer moving to status
func (m *Metrics) OfferTransition(status string) {
	if m == nil {
		return
	}
	m.offerTransitions.WithLabelValues(status).Inc()
}

// AuctionScheduled counts a StartAuction outcome
func (m *Metrics) AuctionScheduled(result string) {
	if m == nil {
		return
	}
	m.auctions.WithLabelValues(result).Inc()
}
