package bridge

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/nguyentantai21042004/pixdir/internal/config"
	"github.com/nguyentantai21042004/pixdir/internal/logger"
)

// gatedDispatcher blocks every command until release is closed.
type gatedDispatcher struct {
	calls    atomic.Int32
	started  chan struct{}
	finished chan struct{}
	release  chan struct{}
}

func newGatedDispatcher() *gatedDispatcher {
	return &gatedDispatcher{
		started:  make(chan struct{}, 8),
		finished: make(chan struct{}, 8),
		release:  make(chan struct{}),
	}
}

func (d *gatedDispatcher) Dispatch(ctx context.Context, command string, args json.RawMessage) (interface{}, error) {
	d.calls.Add(1)
	d.started <- struct{}{}
	<-d.release
	d.finished <- struct{}{}
	return "done", nil
}

func TestQueuedRequestsDroppedOnDisconnect(t *testing.T) {
	cfg := config.Default()
	cfg.Bridge.MaxConcurrent = 1
	hub := NewHub(logger.Nop(), nil)
	d := newGatedDispatcher()

	srv := httptest.NewServer(NewServer(cfg, hub, d, nil, logger.Nop(), nil).Handler())
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", nil)
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}

	if err := conn.WriteJSON(Request{ID: "1", Command: "slow"}); err != nil {
		t.Fatal(err)
	}
	select {
	case <-d.started:
	case <-time.After(readTimeout):
		t.Fatal("first request never dispatched")
	}

	// The second request waits for the only slot.
	if err := conn.WriteJSON(Request{ID: "2", Command: "slow"}); err != nil {
		t.Fatal(err)
	}
	time.Sleep(100 * time.Millisecond)
	conn.Close()

	deadline := time.Now().Add(readTimeout)
	for hub.Clients(cfg.UI.Surface) != 0 {
		if time.Now().After(deadline) {
			t.Fatal("client still registered after disconnect")
		}
		time.Sleep(10 * time.Millisecond)
	}

	close(d.release)
	select {
	case <-d.finished:
	case <-time.After(readTimeout):
		t.Fatal("in-flight request never finished")
	}

	time.Sleep(100 * time.Millisecond)
	if got := d.calls.Load(); got != 1 {
		t.Errorf("dispatched %d requests, want 1", got)
	}
}

func TestDispatchConcurrencyBounded(t *testing.T) {
	cfg := config.Default()
	cfg.Bridge.MaxConcurrent = 2
	hub := NewHub(logger.Nop(), nil)
	d := newGatedDispatcher()

	srv := httptest.NewServer(NewServer(cfg, hub, d, nil, logger.Nop(), nil).Handler())
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", nil)
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	defer conn.Close()

	for _, id := range []string{"a", "b", "c"} {
		if err := conn.WriteJSON(Request{ID: id, Command: "slow"}); err != nil {
			t.Fatal(err)
		}
	}
	for i := 0; i < 2; i++ {
		select {
		case <-d.started:
		case <-time.After(readTimeout):
			t.Fatal("request never dispatched")
		}
	}

	time.Sleep(100 * time.Millisecond)
	if got := d.calls.Load(); got != 2 {
		t.Errorf("running %d requests, want 2", got)
	}

	close(d.release)
	for i := 0; i < 3; i++ {
		resp := readResponse(t, conn)
		if resp.Error != "" {
			t.Errorf("response %s error = %q", resp.ID, resp.Error)
		}
	}
	if got := d.calls.Load(); got != 3 {
		t.Errorf("dispatched %d requests, want 3", got)
	}
}
