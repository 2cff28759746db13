package services

import (
	"chat-relay/wire"
	"log/slog"
)

// Sender is the outbound half of the transport needed by the handler.
type Sender interface {
	Send(connectionID, module string, payload []byte) error
}

// LoginHandler is the inbound handler for the users module tag. It turns
// login packets into auth service calls and answers with a login
// response on the same connection.
type LoginHandler struct {
	log         *slog.Logger
	authService IAuthService
	sender      Sender
}

func NewLoginHandler(log *slog.Logger, authService IAuthService, sender Sender) *LoginHandler {
	return &LoginHandler{log: log, authService: authService, sender: sender}
}

func (h *LoginHandler) HandlePacket(_, connectionID string, payload []byte) {
	frame, err := wire.DecodeFrame(payload)
	if err != nil {
		h.log.Debug("Discarding undecodable users frame", "connection_id", connectionID, "err", err)
		return
	}

	switch frame.Type {
	case wire.TypeLogin:
		h.log.Debug("Got a login packet", "connection_id", connectionID)
		h.handleLogin(connectionID, frame.Body)
	default:
		h.log.Debug("Got an unknown packet type, discarding", "type", frame.Type, "connection_id", connectionID)
	}
}

func (h *LoginHandler) handleLogin(connectionID string, body []byte) {
	packet, err := wire.DecodeLogin(body)
	if err != nil {
		h.respond(connectionID, wire.LoginResponsePacket{Success: false, Reason: "malformed login"})
		return
	}

	session, err := h.authService.Login(connectionID, packet.Username, packet.Password)
	if err != nil {
		// Expected condition, not an error log.
		h.log.Debug("Login refused", "connection_id", connectionID, "username", packet.Username)
		h.respond(connectionID, wire.LoginResponsePacket{Success: false, Reason: "invalid credentials"})
		return
	}

	h.respond(connectionID, wire.LoginResponsePacket{
		Success:   true,
		SessionID: session.Token,
		UUID:      session.UserID,
	})
}

func (h *LoginHandler) respond(connectionID string, packet wire.LoginResponsePacket) {
	frame, err := wire.EncodeFrame(wire.TypeLoginResponse, packet)
	if err != nil {
		h.log.Error("Failed to encode login response", "err", err)
		return
	}
	if err := h.sender.Send(connectionID, wire.UsersModule, frame); err != nil {
		h.log.Debug("Failed to send login response", "connection_id", connectionID, "err", err)
	}
}
