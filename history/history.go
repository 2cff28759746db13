// Package history holds the bounded buffer of recently relayed messages.
package history

import (
	"chat-relay/domain"
	"chat-relay/errors"
	"sync"
)

// Buffer is a capacity-bounded FIFO of messages. Append and Snapshot are
// safe for concurrent use; a snapshot never observes a half-applied append.
type Buffer struct {
	mu       sync.Mutex
	capacity int
	messages []domain.Message
}

// NewBuffer creates an empty buffer. The capacity is fixed for the
// lifetime of the buffer.
func NewBuffer(capacity int) (*Buffer, error) {
	if capacity < 1 {
		return nil, errors.ErrInvalidCapacity
	}
	return &Buffer{
		capacity: capacity,
		messages: make([]domain.Message, 0, capacity),
	}, nil
}

// Append adds a message to the tail and evicts the oldest entry when the
// capacity is exceeded. Both steps happen under the same lock so readers
// only ever see the buffer before or after the whole mutation.
func (b *Buffer) Append(msg domain.Message) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.messages = append(b.messages, msg)
	if len(b.messages) > b.capacity {
		// Append grows the length by exactly one, so a single eviction
		// restores the invariant.
		copy(b.messages, b.messages[1:])
		b.messages = b.messages[:b.capacity]
	}
}

// Snapshot returns an independent copy of the current contents, oldest
// first. The returned slice never aliases the live buffer.
func (b *Buffer) Snapshot() []domain.Message {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]domain.Message, len(b.messages))
	copy(out, b.messages)
	return out
}

// Len reports the current number of retained messages.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.messages)
}
