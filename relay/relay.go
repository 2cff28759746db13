//go:generate go run go.uber.org/mock/mockgen -source=relay.go -destination=../mocks/mock_relay.go -package=mocks

// Package relay gates inbound chat messages through session and login
// validation, assigns canonical message identity, maintains the bounded
// history, and fans messages out to every other logged-in connection.
package relay

import (
	"chat-relay/directory"
	"chat-relay/domain"
	"chat-relay/history"
	"chat-relay/sanitize"
	"chat-relay/wire"
	"log/slog"
	"time"

	"github.com/samber/lo"
)

// Authenticator answers whether a connection/session-token pair is valid.
type Authenticator interface {
	IsAuthenticated(connectionID, sessionToken string) bool
}

// Directory answers login-state questions and enumerates the connections
// of logged-in users.
type Directory interface {
	IsLoggedIn(connectionID, userID string) bool
	LoggedInConnectionIDs() []string
}

// Sender delivers module-tagged payloads by connection id.
type Sender interface {
	Send(connectionID, module string, payload []byte) error
}

// Relay owns the message history and the whole submit/ack/broadcast path.
type Relay struct {
	log           *slog.Logger
	sender        Sender
	authenticator Authenticator
	directory     Directory
	history       *history.Buffer
	sanitizer     sanitize.Sanitizer
}

// New builds a relay with an empty history of the given capacity.
func New(log *slog.Logger, sender Sender, authenticator Authenticator,
	dir Directory, sanitizer sanitize.Sanitizer, historyCapacity int) (*Relay, error) {
	buffer, err := history.NewBuffer(historyCapacity)
	if err != nil {
		return nil, err
	}
	return &Relay{
		log:           log,
		sender:        sender,
		authenticator: authenticator,
		directory:     dir,
		history:       buffer,
		sanitizer:     sanitizer,
	}, nil
}

// History exposes the buffer for replay and diagnostics.
func (r *Relay) History() *history.Buffer {
	return r.history
}

// HandlePacket is the inbound handler registered on the chat module tag.
// Frames that fail decoding or carry an unknown type are discarded.
func (r *Relay) HandlePacket(_, connectionID string, payload []byte) {
	frame, err := wire.DecodeFrame(payload)
	if err != nil {
		r.log.Debug("Discarding undecodable chat frame", "connection_id", connectionID, "err", err)
		return
	}

	switch frame.Type {
	case wire.TypeChatMessage:
		r.log.Debug("Got a chat message", "connection_id", connectionID)
		packet, err := wire.DecodeChatMessage(frame.Body)
		if err != nil {
			r.log.Debug("Discarding invalid chat message", "connection_id", connectionID, "err", err)
			return
		}
		r.handleChatMessage(connectionID, packet)
	default:
		r.log.Debug("Got an unknown packet type, discarding", "type", frame.Type, "connection_id", connectionID)
	}
}

// handleChatMessage runs the full submission pipeline: validate, assign
// identity, sanitize, append, acknowledge, broadcast — in that order, so
// a sender holding an ack knows the message is already in history.
func (r *Relay) handleChatMessage(connectionID string, packet wire.ChatMessagePacket) {
	// Both checks are evaluated; either failing alone rejects.
	authenticated := r.authenticator.IsAuthenticated(connectionID, packet.SessionID)
	loggedIn := r.directory.IsLoggedIn(connectionID, packet.UUID)
	if !authenticated || !loggedIn {
		r.respond(connectionID, wire.ChatMessageResponsePacket{
			Success:           false,
			OriginalMessageID: packet.MessageID,
		})
		return
	}

	body := r.sanitizer.Clean(packet.Message)
	sentAt := time.Now().UTC()
	message, err := domain.NewMessage(packet.UUID, body, sentAt)
	if err != nil {
		// Unreachable after wire validation, but fail closed anyway.
		r.respond(connectionID, wire.ChatMessageResponsePacket{
			Success:           false,
			OriginalMessageID: packet.MessageID,
		})
		return
	}

	r.history.Append(message)
	r.respond(connectionID, wire.ChatMessageResponsePacket{
		Success:           true,
		OriginalMessageID: packet.MessageID,
		NewMessageID:      message.ID.String(),
		Message:           body,
	})
	r.broadcast(message, connectionID)
}

// respond sends the acknowledgement for one submission. A failed send is
// logged and never retried; the history commit stands regardless.
func (r *Relay) respond(connectionID string, packet wire.ChatMessageResponsePacket) {
	frame, err := wire.EncodeFrame(wire.TypeChatMessageResponse, packet)
	if err != nil {
		r.log.Error("Failed to encode chat response", "err", err)
		return
	}
	if err := r.sender.Send(connectionID, wire.ChatModule, frame); err != nil {
		r.log.Debug("Failed to send chat response", "connection_id", connectionID, "err", err)
	}
}

// broadcast delivers the message to every logged-in connection except the
// sender. The same serialized frame goes to every recipient, and one
// recipient's failure never aborts the others.
func (r *Relay) broadcast(message domain.Message, excludedConnectionID string) {
	frame, err := wire.EncodeFrame(wire.TypeChatMessage, toBroadcastPacket(message))
	if err != nil {
		r.log.Error("Failed to encode broadcast", "err", err)
		return
	}

	for _, connectionID := range r.directory.LoggedInConnectionIDs() {
		if connectionID == excludedConnectionID {
			continue
		}
		if err := r.sender.Send(connectionID, wire.ChatModule, frame); err != nil {
			r.log.Debug("Tried sending a chat message to a closed connection",
				"connection_id", connectionID, "err", err)
		}
	}
}

// OnLogin replays the current history snapshot, oldest first, to the
// newly logged-in connection. The login event itself is the trust
// boundary; no message-level auth is re-checked here.
func (r *Relay) OnLogin(event directory.LoginEvent) {
	snapshot := r.history.Snapshot()
	packet := wire.ChatHistoryPacket{
		ChatMessages: lo.Map(snapshot, func(message domain.Message, _ int) wire.ChatMessagePacket {
			return toBroadcastPacket(message)
		}),
	}

	frame, err := wire.EncodeFrame(wire.TypeChatHistory, packet)
	if err != nil {
		r.log.Error("Failed to encode history replay", "err", err)
		return
	}
	if err := r.sender.Send(event.ConnectionID, wire.ChatModule, frame); err != nil {
		r.log.Debug("Tried replaying history to a closed connection",
			"connection_id", event.ConnectionID, "err", err)
	}
}

func toBroadcastPacket(message domain.Message) wire.ChatMessagePacket {
	return wire.ChatMessagePacket{
		UUID:      message.SenderID,
		MessageID: message.ID.String(),
		Message:   message.Body,
		Timestamp: message.SentAt,
	}
}
