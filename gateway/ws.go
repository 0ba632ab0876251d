package gateway

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"campus-chat/domain/event"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 54 * time.Second
	maxMessageSize = 64 << 10
)

// TokenVerifier checks the bearer token presented at upgrade time and returns
// the authenticated user id. Issued by the auth package; kept as a function
// type so the gateway stays decoupled from token internals.
type TokenVerifier func(token string) (string, error)

// WSHandler upgrades portal clients to a websocket connection and wires the
// resulting read/write pumps to the gateway loop.
type WSHandler struct {
	log        *slog.Logger
	gw         *Gateway
	verify     TokenVerifier
	bufferSize int
	upgrader   websocket.Upgrader
}

func NewWSHandler(log *slog.Logger, gw *Gateway, verify TokenVerifier, bufferSize int) *WSHandler {
	return &WSHandler{
		log:        log,
		gw:         gw,
		verify:     verify,
		bufferSize: bufferSize,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The portal frontend is served from its own origin; token auth
			// below is the actual gate.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

func (h *WSHandler) Handle(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		token = strings.TrimPrefix(c.Request().Header.Get(echo.HeaderAuthorization), "Bearer ")
	}
	userID, err := h.verify(token)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade already wrote its own response.
		return nil
	}
	h.log.Debug("client connected", "user_id", userID, "remote", conn.RemoteAddr().String())

	sink := NewConnSink(h.bufferSize)
	h.gw.Connect(sink)

	go h.writePump(conn, sink)
	h.readPump(conn, sink)
	return nil
}

// readPump decodes inbound frames and hands them to the gateway loop. It owns
// the disconnect: when the read side dies, the whole connection is torn down.
func (h *WSHandler) readPump(conn *websocket.Conn, sink *ConnSink) {
	defer func() {
		h.gw.Disconnect(sink)
		sink.Close()
		_ = conn.Close()
	}()

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseNormalClosure,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure) {
				h.log.Debug("websocket read error", "remote", conn.RemoteAddr().String(), "error", err)
			}
			return
		}

		var frame Frame
		if err := json.Unmarshal(raw, &frame); err != nil {
			_ = sink.Consume(event.Error{Message: "malformed frame"})
			continue
		}
		h.gw.Dispatch(sink, frame)
	}
}

// writePump drains the sink into the socket and keeps the connection alive
// with pings. It terminates when the sink closes or a write fails.
func (h *WSHandler) writePump(conn *websocket.Conn, sink *ConnSink) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = conn.Close()
	}()

	for {
		select {
		case e := <-sink.Events():
			frame, err := EncodeFrame(e)
			if err != nil {
				h.log.Error("failed to encode event", "event", e.Name(), "error", err)
				continue
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(frame); err != nil {
				return
			}
		case <-sink.Done():
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
