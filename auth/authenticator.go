//go:generate go run go.uber.org/mock/mockgen -source=authenticator.go -destination=../mocks/mock_authenticator.go -package=mocks
package auth

import (
	"chat-relay/errors"
	"log/slog"
	"time"
)

// IAuthenticator answers whether a connection presents a currently valid
// session token.
type IAuthenticator interface {
	IsAuthenticated(connectionID, sessionToken string) bool
}

// Authenticator issues and validates connection-bound session tokens.
type Authenticator struct {
	secret        []byte
	tokenLifetime time.Duration
	log           *slog.Logger
}

func NewAuthenticator(log *slog.Logger, secret []byte, tokenLifetime time.Duration) *Authenticator {
	return &Authenticator{secret: secret, tokenLifetime: tokenLifetime, log: log}
}

// Issue creates a session token bound to the given connection.
func (a *Authenticator) Issue(connectionID, userID string) (string, error) {
	if connectionID == "" {
		return "", errors.ErrEmptyConnectionID
	}
	token, err := signToken(a.secret, connectionID, userID, a.tokenLifetime)
	if err != nil {
		return "", errors.ErrTokenGeneration
	}
	return token, nil
}

// IsAuthenticated reports whether the token is valid, unexpired, and was
// issued for this exact connection. An invalid token is an expected
// condition, so it is only surfaced at debug level.
func (a *Authenticator) IsAuthenticated(connectionID, sessionToken string) bool {
	claims, err := parseToken(a.secret, sessionToken)
	if err != nil {
		a.log.Debug("Session token rejected", "connection_id", connectionID, "err", err)
		return false
	}
	if claims.ConnectionID != connectionID {
		a.log.Debug("Session token bound to another connection", "connection_id", connectionID)
		return false
	}
	return true
}
