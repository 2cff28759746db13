package transport

import (
	"chat-relay/errors"
	"chat-relay/wire"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// WebsocketServer implements Transport over websocket connections.
// Each accepted connection gets a uuid connection id and a dedicated
// read loop; handlers run on that loop, one frame at a time per
// connection.
type WebsocketServer struct {
	log      *slog.Logger
	upgrader websocket.Upgrader

	mu       sync.RWMutex
	handlers map[string]Handler
	conns    map[string]*connection
	closed   []func(connectionID string)
}

type connection struct {
	id string
	ws *websocket.Conn
	// guards concurrent writes; gorilla allows one writer at a time
	writeMu sync.Mutex
}

func NewWebsocketServer(log *slog.Logger) *WebsocketServer {
	return &WebsocketServer{
		log: log,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(_ *http.Request) bool { return true },
		},
		handlers: make(map[string]Handler),
		conns:    make(map[string]*connection),
	}
}

// RegisterHandler binds a module tag to its inbound handler.
func (s *WebsocketServer) RegisterHandler(module string, handler Handler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers[module] = handler
}

// OnConnectionClosed registers a callback fired after a connection is
// gone, so collaborators can clear per-connection state.
func (s *WebsocketServer) OnConnectionClosed(fn func(connectionID string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = append(s.closed, fn)
}

// Send delivers one module-tagged payload to a single connection.
func (s *WebsocketServer) Send(connectionID, module string, payload []byte) error {
	s.mu.RLock()
	conn, ok := s.conns[connectionID]
	s.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", errors.ErrNotConnected, connectionID)
	}

	data, err := wire.EncodeEnvelope(module, payload)
	if err != nil {
		return err
	}

	conn.writeMu.Lock()
	defer conn.writeMu.Unlock()
	if err := conn.ws.WriteMessage(websocket.TextMessage, data); err != nil {
		return fmt.Errorf("%w: %s: %v", errors.ErrNotConnected, connectionID, err)
	}
	return nil
}

// Handler upgrades HTTP requests and runs the per-connection read loop.
func (s *WebsocketServer) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := s.upgrader.Upgrade(w, r, nil)
		if err != nil {
			s.log.Debug("Websocket upgrade failed", "remote", r.RemoteAddr, "err", err)
			return
		}

		conn := &connection{id: uuid.NewString(), ws: ws}
		s.mu.Lock()
		s.conns[conn.id] = conn
		s.mu.Unlock()
		s.log.Info("Client connected", "connection_id", conn.id, "remote", r.RemoteAddr)

		s.readLoop(conn)
	})
}

func (s *WebsocketServer) readLoop(conn *connection) {
	defer s.drop(conn)

	for {
		_, data, err := conn.ws.ReadMessage()
		if err != nil {
			s.log.Debug("Read loop finished", "connection_id", conn.id, "err", err)
			return
		}

		envelope, err := wire.DecodeEnvelope(data)
		if err != nil {
			s.log.Debug("Discarding malformed envelope", "connection_id", conn.id, "err", err)
			continue
		}

		s.mu.RLock()
		handler, ok := s.handlers[envelope.Module]
		s.mu.RUnlock()
		if !ok {
			s.log.Debug("Discarding frame for unknown module", "connection_id", conn.id, "module", envelope.Module)
			continue
		}
		handler(envelope.Module, conn.id, envelope.Frame)
	}
}

func (s *WebsocketServer) drop(conn *connection) {
	_ = conn.ws.Close()

	s.mu.Lock()
	delete(s.conns, conn.id)
	closed := make([]func(string), len(s.closed))
	copy(closed, s.closed)
	s.mu.Unlock()

	s.log.Info("Client disconnected", "connection_id", conn.id)
	for _, fn := range closed {
		fn(conn.id)
	}
}
