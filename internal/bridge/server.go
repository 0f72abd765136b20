package bridge

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/nguyentantai21042004/pixdir/internal/logger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler returns the HTTP routes served by the bridge.
func (s *implServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWS)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok"))
	})
	if s.gatherer != nil {
		mux.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}
	return mux
}

func (s *implServer) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	for _, allowed := range s.cfg.Bridge.AllowedOrigins {
		if allowed == "*" || strings.EqualFold(allowed, origin) {
			return true
		}
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return strings.EqualFold(u.Host, r.Host)
}

func (s *implServer) serveWS(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	surface := r.URL.Query().Get("surface")
	if surface == "" {
		surface = s.cfg.UI.Surface
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn(ctx, "WebSocket upgrade failed: %v", err)
		return
	}

	c := &client{
		id:      uuid.NewString(),
		surface: surface,
		conn:    conn,
		send:    make(chan []byte, s.cfg.Bridge.SendBuffer),
		done:    make(chan struct{}),
	}
	s.hub.register(c)
	s.logger.Info(ctx, "Client %s connected on surface %s (%d connected)", c.id, surface, s.hub.Clients(surface))

	go c.writePump()
	s.readLoop(context.WithoutCancel(ctx), c)
}

// readLoop runs until the connection fails, then tears the client down once
// every in-flight command has finished.
func (s *implServer) readLoop(ctx context.Context, c *client) {
	// connCtx ends queued requests when the client goes away; commands that
	// already hold a slot still run to completion on ctx.
	connCtx, cancel := context.WithCancel(ctx)

	var wg sync.WaitGroup
	defer func() {
		cancel()
		s.hub.unregister(c)
		close(c.done)
		c.conn.Close()
		wg.Wait()
		s.logger.Info(ctx, "Client %s disconnected", c.id)
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn(ctx, "Client %s read failed: %v", c.id, err)
			}
			return
		}

		var req Request
		if err := json.Unmarshal(data, &req); err != nil {
			s.logger.Warn(ctx, "Client %s sent malformed request: %v", c.id, err)
			s.reply(ctx, c, Response{Error: "malformed request: " + err.Error()})
			continue
		}

		wg.Add(1)
		go func(req Request) {
			defer wg.Done()
			if err := s.sem.Acquire(connCtx, 1); err != nil {
				s.logger.Debug(ctx, "Client %s left before %s %s ran", c.id, req.Command, req.ID)
				return
			}
			defer s.sem.Release(1)
			s.handle(ctx, c, req)
		}(req)
	}
}

func (s *implServer) handle(ctx context.Context, c *client, req Request) {
	resp := Response{ID: req.ID}

	result, err := s.dispatcher.Dispatch(ctx, req.Command, req.Args)
	if err != nil {
		s.logger.Debug(ctx, "Command %s failed: %s", req.Command, logger.FormatError(err))
		resp.Error = err.Error()
	} else {
		resp.Result = result
	}

	s.reply(ctx, c, resp)
}

func (s *implServer) reply(ctx context.Context, c *client, resp Response) {
	payload, err := json.Marshal(resp)
	if err != nil {
		s.logger.Error(ctx, "Failed to encode response %s: %v", resp.ID, err)
		payload, _ = json.Marshal(Response{ID: resp.ID, Error: "failed to encode result"})
	}
	c.sendResponse(payload)
}
