package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"smart_thermostat/internal/logger"
	"smart_thermostat/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait       = 10 * time.Second
	pongWait        = 60 * time.Second
	pingPeriod      = (pongWait * 9) / 10
	maxMsgSize      = 1 << 12 // 4 KB
	defaultInterval = 1 * time.Second
	maxInterval     = 10 * time.Second

	wsTypeState = "state"
)

// wsEnvelope is every message pushed on /ws.
type wsEnvelope struct {
	Type  string      `json:"type"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

// The dashboard is served from other origins during development.
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// stateStream pushes thermostat snapshots to one client until either side closes.
type stateStream struct {
	conn     *websocket.Conn
	states   service.Monitoring
	log      *logger.Logger
	interval time.Duration
}

// @Summary      Thermostat state stream
// @Description  WebSocket upgrade. Pushes {"type":"state","data":...} every interval (default 1s, max 10s).
// @Tags         thermostat
// @Param        interval     query  string  false  "Go duration, e.g. 500ms"
// @Param        interval_ms  query  int     false  "Interval in milliseconds"
// @Router       /ws [get]
func (h *Handler) wsConnect(c *gin.Context) {
	interval := h.parseInterval(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Errorw("ws_upgrade_failed", "err", err)
		return
	}
	defer func() { _ = conn.Close() }()

	s := &stateStream{conn: conn, states: h.services.Monitoring, log: h.log, interval: interval}
	if err := s.run(c.Request.Context()); err != nil {
		h.log.Infow("ws_stream_closed", "err", err, "request_id", c.GetString(ctxRequestID))
	}
}

// parseInterval reads ?interval=2s or ?interval_ms=2000, falling back to
// defaultInterval when neither is valid or within (0, maxInterval].
func (h *Handler) parseInterval(c *gin.Context) time.Duration {
	inRange := func(d time.Duration) bool { return d > 0 && d <= maxInterval }

	if d, err := time.ParseDuration(c.Query("interval")); err == nil && inRange(d) {
		return d
	}
	if ms, err := strconv.Atoi(c.Query("interval_ms")); err == nil {
		if d := time.Duration(ms) * time.Millisecond; inRange(d) {
			return d
		}
	}
	return defaultInterval
}

// run sends the current state immediately, then every interval, with pings
// keeping idle proxies from dropping the connection.
func (s *stateStream) run(ctx context.Context) error {
	s.conn.SetReadLimit(maxMsgSize)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	closed := make(chan struct{})
	go s.drain(closed)

	if err := s.push(ctx); err != nil {
		return err
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	for {
		select {
		case <-closed:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		case <-ping.C:
			if err := s.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return err
			}
		case <-ticker.C:
			if err := s.push(ctx); err != nil {
				return err
			}
		}
	}
}

// drain reads until the client goes away so control frames get processed.
func (s *stateStream) drain(closed chan<- struct{}) {
	defer close(closed)
	for {
		if _, _, err := s.conn.NextReader(); err != nil {
			return
		}
	}
}

// push writes one snapshot. A lookup failure is sent to the client as an
// error envelope and ends the stream.
func (s *stateStream) push(ctx context.Context) error {
	st, err := s.states.GetState(ctx)
	_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err != nil {
		s.log.Errorw("ws_get_state_failed", "err", err)
		_ = s.conn.WriteJSON(wsEnvelope{Type: wsTypeState, Error: errGetState})
		return err
	}
	return s.conn.WriteJSON(wsEnvelope{Type: wsTypeState, Data: st})
}
