//go:generate go run go.uber.org/mock/mockgen -source=transport.go -destination=../mocks/mock_transport.go -package=mocks

// Package transport moves opaque module-tagged payloads between the
// server and connected clients. The relay only depends on the Transport
// contract; the websocket server is one implementation of it.
package transport

// Handler receives one inbound frame for a module.
type Handler func(module, connectionID string, payload []byte)

// Transport delivers payloads by connection id and dispatches inbound
// frames to the handler registered for their module tag.
type Transport interface {
	// Send delivers payload to one connection. It fails fast with
	// errors.ErrNotConnected when the connection is unknown or closed.
	Send(connectionID, module string, payload []byte) error
	// RegisterHandler binds a module tag to its inbound handler.
	// Frames for modules without a handler are dropped.
	RegisterHandler(module string, handler Handler)
}
