// Package metrics provides prometheus-backed dispatch instrumentation
// for the event bus. Collectors register against a caller-supplied
// registry; there is no exposition endpoint here.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/KirkDiggler/gamebus/internal/events"
)

// DispatchMetrics implements events.DispatchObserver with prometheus
// counters
type DispatchMetrics struct {
	posted    *prometheus.CounterVec
	delivered *prometheus.CounterVec
	skipped   *prometheus.CounterVec
}

// NewDispatchMetrics creates the counters and registers them
func NewDispatchMetrics(reg prometheus.Registerer) (*DispatchMetrics, error) {
	m := &DispatchMetrics{
		posted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gamebus",
			Name:      "events_posted_total",
			Help:      "Events posted to the bus, by event type.",
		}, []string{"event"}),
		delivered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gamebus",
			Name:      "events_delivered_total",
			Help:      "Handler invocations that completed without error.",
		}, []string{"event", "priority"}),
		skipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gamebus",
			Name:      "deliveries_skipped_total",
			Help:      "Deliveries skipped because the event was canceled.",
		}, []string{"event", "priority"}),
	}

	for _, c := range []prometheus.Collector{m.posted, m.delivered, m.skipped} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// PostedCounter exposes the posted counter for tests and dashboards
func (m *DispatchMetrics) PostedCounter() *prometheus.CounterVec { return m.posted }

// DeliveredCounter exposes the delivered counter
func (m *DispatchMetrics) DeliveredCounter() *prometheus.CounterVec { return m.delivered }

// SkippedCounter exposes the skipped counter
func (m *DispatchMetrics) SkippedCounter() *prometheus.CounterVec { return m.skipped }

// EventPosted counts one post of the given event type
func (m *DispatchMetrics) EventPosted(eventType events.EventType, subscriptions int) {
	m.posted.WithLabelValues(string(eventType)).Inc()
}

// EventDelivered counts one successful handler invocation
func (m *DispatchMetrics) EventDelivered(eventType events.EventType, priority events.Priority) {
	m.delivered.WithLabelValues(string(eventType), priority.String()).Inc()
}

// DeliverySkipped counts one skipped delivery
func (m *DispatchMetrics) DeliverySkipped(eventType events.EventType, priority events.Priority) {
	m.skipped.WithLabelValues(string(eventType), priority.String()).Inc()
}
