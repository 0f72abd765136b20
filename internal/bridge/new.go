package bridge

import (
	"github.com/gorilla/websocket"
	"github.com/nguyentantai21042004/pixdir/internal/config"
	"github.com/nguyentantai21042004/pixdir/internal/logger"
	"github.com/nguyentantai21042004/pixdir/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/semaphore"
)

type implServer struct {
	cfg        *config.Config
	hub        *Hub
	dispatcher Dispatcher
	gatherer   prometheus.Gatherer
	upgrader   websocket.Upgrader
	sem        *semaphore.Weighted
	logger     logger.Logger
	metrics    *metrics.Metrics
}

// NewServer creates a new Server instance. A nil gatherer disables /metrics.
func NewServer(cfg *config.Config, hub *Hub, dispatcher Dispatcher, gatherer prometheus.Gatherer, log logger.Logger, m *metrics.Metrics) Server {
	s := &implServer{
		cfg:        cfg,
		hub:        hub,
		dispatcher: dispatcher,
		gatherer:   gatherer,
		sem:        semaphore.NewWeighted(int64(cfg.Bridge.MaxConcurrent)),
		logger:     log,
		metrics:    m,
	}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,
		CheckOrigin:     s.checkOrigin,
	}
	return s
}
