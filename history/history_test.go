package history

import (
	"chat-relay/domain"
	"chat-relay/errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestMessage(t *testing.T, body string) domain.Message {
	t.Helper()
	msg, err := domain.NewMessage("sender-1", body, time.Now().UTC())
	require.NoError(t, err)
	return msg
}

func Test_Buffer_Rejects_Invalid_Capacity(t *testing.T) {
	req := require.New(t)
	for _, capacity := range []int{0, -1, -100} {
		_, err := NewBuffer(capacity)
		req.ErrorIs(err, errors.ErrInvalidCapacity)
	}
}

func Test_Buffer_Evicts_Oldest_First(t *testing.T) {
	req := require.New(t)
	buffer, err := NewBuffer(2)
	req.NoError(err)

	m1 := newTestMessage(t, "m1")
	m2 := newTestMessage(t, "m2")
	m3 := newTestMessage(t, "m3")
	buffer.Append(m1)
	buffer.Append(m2)
	buffer.Append(m3)

	req.Equal([]domain.Message{m2, m3}, buffer.Snapshot())
}

func Test_Buffer_Never_Exceeds_Capacity(t *testing.T) {
	req := require.New(t)
	for _, capacity := range []int{1, 3, 10} {
		buffer, err := NewBuffer(capacity)
		req.NoError(err)

		var appended []domain.Message
		for i := 0; i < capacity*3; i++ {
			msg := newTestMessage(t, fmt.Sprintf("m%d", i))
			appended = append(appended, msg)
			buffer.Append(msg)
			req.LessOrEqual(buffer.Len(), capacity)
		}

		// The retained entries are exactly the most recent ones, in order.
		req.Equal(appended[len(appended)-capacity:], buffer.Snapshot())
	}
}

func Test_Buffer_Snapshot_Is_Independent(t *testing.T) {
	req := require.New(t)
	buffer, err := NewBuffer(3)
	req.NoError(err)

	m1 := newTestMessage(t, "m1")
	buffer.Append(m1)

	snapshot := buffer.Snapshot()
	snapshot[0].Body = "mutated"

	req.Equal([]domain.Message{m1}, buffer.Snapshot())
}

func Test_Buffer_Concurrent_Append_And_Snapshot(t *testing.T) {
	req := require.New(t)
	capacity := 8
	buffer, err := NewBuffer(capacity)
	req.NoError(err)

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				msg, err := domain.NewMessage(fmt.Sprintf("sender-%d", g), "body", time.Now().UTC())
				if err != nil {
					t.Error(err)
					return
				}
				buffer.Append(msg)
			}
		}(g)
	}
	for g := 0; g < 2; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				snapshot := buffer.Snapshot()
				if len(snapshot) > capacity {
					t.Errorf("snapshot exceeds capacity: %d", len(snapshot))
					return
				}
			}
		}()
	}
	wg.Wait()

	req.Equal(capacity, buffer.Len())
}
