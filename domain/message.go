// Package domain contains core concepts of the chat relay.
// Messages are immutable once created and owned by the history buffer.
package domain

import (
	"chat-relay/errors"
	"time"

	"github.com/google/uuid"
)

// Message represents one relayed chat entry. The ID is server-assigned and
// never derived from the client-supplied request id.
type Message struct {
	ID       uuid.UUID
	SenderID string
	Body     string
	SentAt   time.Time
}

// NewMessage builds a message with a fresh server-assigned identity.
// The sender id is validated here, at the boundary; internal callers
// may assume a well-formed message afterwards.
func NewMessage(senderID, body string, sentAt time.Time) (Message, error) {
	if senderID == "" {
		return Message{}, errors.ErrEmptySenderID
	}
	return Message{
		ID:       uuid.New(),
		SenderID: senderID,
		Body:     body,
		SentAt:   sentAt,
	}, nil
}
