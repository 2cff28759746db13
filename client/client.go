// Package client is a small programmatic chat client, used by the
// end-to-end tests and handy for manual poking at a running relay.
package client

import (
	"chat-relay/wire"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	URL            string        `envconfig:"CHAT_URL" default:"ws://localhost:8080/ws"`
	ReceiveTimeout time.Duration `envconfig:"CHAT_RECEIVE_TIMEOUT" default:"5s"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}

// Client demultiplexes inbound frames into per-type channels so callers
// can wait for exactly the packet they expect.
type Client struct {
	conn           *websocket.Conn
	receiveTimeout time.Duration

	sessionID string
	userID    string

	loginResponses chan wire.LoginResponsePacket
	chatResponses  chan wire.ChatMessageResponsePacket
	histories      chan wire.ChatHistoryPacket
	broadcasts     chan wire.ChatMessagePacket

	done chan struct{}
}

func Dial(cfg Config) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.Dial(cfg.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", cfg.URL, err)
	}

	c := &Client{
		conn:           conn,
		receiveTimeout: cfg.ReceiveTimeout,
		loginResponses: make(chan wire.LoginResponsePacket, 4),
		chatResponses:  make(chan wire.ChatMessageResponsePacket, 4),
		histories:      make(chan wire.ChatHistoryPacket, 4),
		broadcasts:     make(chan wire.ChatMessagePacket, 16),
		done:           make(chan struct{}),
	}
	go c.readLoop()
	return c, nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}

// Login sends the credentials and waits for the response. On success the
// returned session id is kept for subsequent Say calls.
func (c *Client) Login(username, password string) (wire.LoginResponsePacket, error) {
	err := c.send(wire.UsersModule, wire.TypeLogin, wire.LoginPacket{
		Username: username,
		Password: password,
	})
	if err != nil {
		return wire.LoginResponsePacket{}, err
	}

	select {
	case response := <-c.loginResponses:
		if response.Success {
			c.sessionID = response.SessionID
			c.userID = response.UUID
		}
		return response, nil
	case <-time.After(c.receiveTimeout):
		return wire.LoginResponsePacket{}, fmt.Errorf("no login response within %s", c.receiveTimeout)
	case <-c.done:
		return wire.LoginResponsePacket{}, fmt.Errorf("connection closed")
	}
}

// UseSession overrides the session credentials used by Say. Meant for
// tests that need to exercise the server's rejection paths.
func (c *Client) UseSession(sessionID, userID string) {
	c.sessionID = sessionID
	c.userID = userID
}

// Say submits one chat message and waits for the server's response packet.
func (c *Client) Say(message string) (wire.ChatMessageResponsePacket, error) {
	err := c.send(wire.ChatModule, wire.TypeChatMessage, wire.ChatMessagePacket{
		SessionID: c.sessionID,
		UUID:      c.userID,
		MessageID: uuid.NewString(),
		Message:   message,
	})
	if err != nil {
		return wire.ChatMessageResponsePacket{}, err
	}

	select {
	case response := <-c.chatResponses:
		return response, nil
	case <-time.After(c.receiveTimeout):
		return wire.ChatMessageResponsePacket{}, fmt.Errorf("no chat response within %s", c.receiveTimeout)
	case <-c.done:
		return wire.ChatMessageResponsePacket{}, fmt.Errorf("connection closed")
	}
}

// NextHistory waits for a history replay packet.
func (c *Client) NextHistory() (wire.ChatHistoryPacket, error) {
	select {
	case history := <-c.histories:
		return history, nil
	case <-time.After(c.receiveTimeout):
		return wire.ChatHistoryPacket{}, fmt.Errorf("no history within %s", c.receiveTimeout)
	case <-c.done:
		return wire.ChatHistoryPacket{}, fmt.Errorf("connection closed")
	}
}

// NextBroadcast waits for a chat message relayed from another user.
func (c *Client) NextBroadcast() (wire.ChatMessagePacket, error) {
	select {
	case broadcast := <-c.broadcasts:
		return broadcast, nil
	case <-time.After(c.receiveTimeout):
		return wire.ChatMessagePacket{}, fmt.Errorf("no broadcast within %s", c.receiveTimeout)
	case <-c.done:
		return wire.ChatMessagePacket{}, fmt.Errorf("connection closed")
	}
}

func (c *Client) send(module, frameType string, payload any) error {
	frame, err := wire.EncodeFrame(frameType, payload)
	if err != nil {
		return err
	}
	data, err := wire.EncodeEnvelope(module, frame)
	if err != nil {
		return err
	}
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

func (c *Client) readLoop() {
	defer close(c.done)
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			return
		}

		envelope, err := wire.DecodeEnvelope(data)
		if err != nil {
			continue
		}
		frame, err := wire.DecodeFrame(envelope.Frame)
		if err != nil {
			continue
		}
		c.dispatch(frame)
	}
}

func (c *Client) dispatch(frame wire.Frame) {
	switch frame.Type {
	case wire.TypeLoginResponse:
		var pkt wire.LoginResponsePacket
		if unmarshal(frame.Body, &pkt) {
			c.loginResponses <- pkt
		}
	case wire.TypeChatMessageResponse:
		var pkt wire.ChatMessageResponsePacket
		if unmarshal(frame.Body, &pkt) {
			c.chatResponses <- pkt
		}
	case wire.TypeChatHistory:
		var pkt wire.ChatHistoryPacket
		if unmarshal(frame.Body, &pkt) {
			c.histories <- pkt
		}
	case wire.TypeChatMessage:
		var pkt wire.ChatMessagePacket
		if unmarshal(frame.Body, &pkt) {
			c.broadcasts <- pkt
		}
	}
}

func unmarshal(body json.RawMessage, target any) bool {
	return json.Unmarshal(body, target) == nil
}
