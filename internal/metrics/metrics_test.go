package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveList(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveList(3, nil)
	m.ObserveList(2, nil)
	m.ObserveList(0, errors.New("root inaccessible"))

	if got := testutil.ToFloat64(m.ImagesListed); got != 5 {
		t.Errorf("ImagesListed = %v, want 5", got)
	}
	if got := testutil.ToFloat64(m.ListErrors); got != 1 {
		t.Errorf("ListErrors = %v, want 1", got)
	}
}

func TestWatchLifecycle(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.WatchStarted()
	m.WatchStarted()
	if got := testutil.ToFloat64(m.ActiveWatches); got != 1 {
		t.Errorf("ActiveWatches = %v, want 1 after replacement", got)
	}
	if got := testutil.ToFloat64(m.WatchStarts); got != 2 {
		t.Errorf("WatchStarts = %v, want 2", got)
	}

	m.WatchStopped()
	if got := testutil.ToFloat64(m.ActiveWatches); got != 0 {
		t.Errorf("ActiveWatches = %v, want 0", got)
	}
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.ObserveList(1, nil)
	m.WatchStarted()
	m.WatchEvent()
	m.WatchError()
	m.WatchStopped()
	m.ClientConnected()
	m.ClientDisconnected()
	m.EventDropped()
}
