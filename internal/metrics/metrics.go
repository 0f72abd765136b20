// Package metrics holds the Prometheus collectors for the image index, the
// directory watcher and the command bridge.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics is safe to use through a nil pointer; every method is then a no-op.
type Metrics struct {
	ImagesListed  prometheus.Counter
	ListErrors    prometheus.Counter
	WatchStarts   prometheus.Counter
	WatchEvents   prometheus.Counter
	WatchErrors   prometheus.Counter
	ActiveWatches prometheus.Gauge
	BridgeClients prometheus.Gauge
	DroppedEvents prometheus.Counter
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ImagesListed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pixdir_images_listed_total",
			Help: "Image files returned by directory listings",
		}),
		ListErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pixdir_list_errors_total",
			Help: "Directory listings that failed on an inaccessible root",
		}),
		WatchStarts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pixdir_watch_starts_total",
			Help: "Directory watches successfully installed",
		}),
		WatchEvents: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pixdir_watch_events_total",
			Help: "Native filesystem events forwarded as change notifications",
		}),
		WatchErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pixdir_watch_errors_total",
			Help: "Errors reported by the filesystem notification mechanism",
		}),
		ActiveWatches: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "pixdir_active_watches",
			Help: "Active directory watch subscriptions (0 or 1)",
		}),
		BridgeClients: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "pixdir_bridge_clients",
			Help: "Connected websocket UI clients",
		}),
		DroppedEvents: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pixdir_bridge_dropped_events_total",
			Help: "UI notifications dropped because a client send buffer was full",
		}),
	}

	reg.MustRegister(
		m.ImagesListed,
		m.ListErrors,
		m.WatchStarts,
		m.WatchEvents,
		m.WatchErrors,
		m.ActiveWatches,
		m.BridgeClients,
		m.DroppedEvents,
	)

	return m
}

func (m *Metrics) ObserveList(found int, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.ListErrors.Inc()
		return
	}
	m.ImagesListed.Add(float64(found))
}

func (m *Metrics) WatchStarted() {
	if m == nil {
		return
	}
	m.WatchStarts.Inc()
	m.ActiveWatches.Set(1)
}

func (m *Metrics) WatchStopped() {
	if m == nil {
		return
	}
	m.ActiveWatches.Set(0)
}

func (m *Metrics) WatchEvent() {
	if m == nil {
		return
	}
	m.WatchEvents.Inc()
}

func (m *Metrics) WatchError() {
	if m == nil {
		return
	}
	m.WatchErrors.Inc()
}

func (m *Metrics) ClientConnected() {
	if m == nil {
		return
	}
	m.BridgeClients.Inc()
}

func (m *Metrics) ClientDisconnected() {
	if m == nil {
		return
	}
	m.BridgeClients.Dec()
}

func (m *Metrics) EventDropped() {
	if m == nil {
		return
	}
	m.DroppedEvents.Inc()
}
