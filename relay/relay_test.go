package relay

import (
	"chat-relay/directory"
	"chat-relay/domain"
	"chat-relay/mocks"
	"chat-relay/sanitize"
	"chat-relay/wire"
	"encoding/json"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type relayFixture struct {
	relay         *Relay
	sender        *mocks.MockSender
	authenticator *mocks.MockAuthenticator
	directory     *mocks.MockDirectory
}

func newFixture(t *testing.T, capacity int) relayFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	sender := mocks.NewMockSender(ctrl)
	authenticator := mocks.NewMockAuthenticator(ctrl)
	dir := mocks.NewMockDirectory(ctrl)

	sanitizer, err := sanitizerForTest(log)
	require.NoError(t, err)

	r, err := New(log, sender, authenticator, dir, sanitizer, capacity)
	require.NoError(t, err)
	return relayFixture{relay: r, sender: sender, authenticator: authenticator, directory: dir}
}

func sanitizerForTest(log *slog.Logger) (sanitize.Sanitizer, error) {
	return sanitize.New(log, nil, '*')
}

func submissionFrame(t *testing.T, sessionID, userID, requestID, body string) []byte {
	t.Helper()
	frame, err := wire.EncodeFrame(wire.TypeChatMessage, wire.ChatMessagePacket{
		SessionID: sessionID,
		UUID:      userID,
		MessageID: requestID,
		Message:   body,
	})
	require.NoError(t, err)
	return frame
}

func decodeResponse(t *testing.T, payload []byte) wire.ChatMessageResponsePacket {
	t.Helper()
	frame, err := wire.DecodeFrame(payload)
	require.NoError(t, err)
	require.Equal(t, wire.TypeChatMessageResponse, frame.Type)
	var packet wire.ChatMessageResponsePacket
	require.NoError(t, json.Unmarshal(frame.Body, &packet))
	return packet
}

func decodeBroadcast(t *testing.T, payload []byte) wire.ChatMessagePacket {
	t.Helper()
	frame, err := wire.DecodeFrame(payload)
	require.NoError(t, err)
	require.Equal(t, wire.TypeChatMessage, frame.Type)
	var packet wire.ChatMessagePacket
	require.NoError(t, json.Unmarshal(frame.Body, &packet))
	return packet
}

func decodeHistory(t *testing.T, payload []byte) wire.ChatHistoryPacket {
	t.Helper()
	frame, err := wire.DecodeFrame(payload)
	require.NoError(t, err)
	require.Equal(t, wire.TypeChatHistory, frame.Type)
	var packet wire.ChatHistoryPacket
	require.NoError(t, json.Unmarshal(frame.Body, &packet))
	return packet
}

func TestRelay_Rejects_Unauthenticated_Submission(t *testing.T) {
	req := require.New(t)
	f := newFixture(t, 10)

	// Both checks are evaluated even when the first one already fails.
	f.authenticator.EXPECT().IsAuthenticated("conn-a", "bad-session").Return(false).Times(1)
	f.directory.EXPECT().IsLoggedIn("conn-a", "user-a").Return(true).Times(1)

	var sent []byte
	f.sender.EXPECT().
		Send("conn-a", wire.ChatModule, gomock.Any()).
		DoAndReturn(func(_, _ string, payload []byte) error {
			sent = payload
			return nil
		}).
		Times(1)

	f.relay.HandlePacket(wire.ChatModule, "conn-a", submissionFrame(t, "bad-session", "user-a", "req-1", "hello"))

	response := decodeResponse(t, sent)
	req.Equal(wire.ChatMessageResponsePacket{
		Success:           false,
		OriginalMessageID: "req-1",
		NewMessageID:      "",
		Message:           "",
	}, response)
	req.Empty(f.relay.History().Snapshot())
}

func TestRelay_Rejects_Not_Logged_In_Submission(t *testing.T) {
	req := require.New(t)
	f := newFixture(t, 10)

	f.authenticator.EXPECT().IsAuthenticated("conn-a", "session-a").Return(true).Times(1)
	f.directory.EXPECT().IsLoggedIn("conn-a", "user-a").Return(false).Times(1)

	var sent []byte
	f.sender.EXPECT().
		Send("conn-a", wire.ChatModule, gomock.Any()).
		DoAndReturn(func(_, _ string, payload []byte) error {
			sent = payload
			return nil
		}).
		Times(1)

	f.relay.HandlePacket(wire.ChatModule, "conn-a", submissionFrame(t, "session-a", "user-a", "req-1", "hello"))

	response := decodeResponse(t, sent)
	req.False(response.Success)
	req.Equal("req-1", response.OriginalMessageID)
	req.Empty(response.NewMessageID)
	req.Empty(response.Message)
	req.Empty(f.relay.History().Snapshot())
}

func TestRelay_Successful_Submission_Acks_And_Broadcasts(t *testing.T) {
	req := require.New(t)
	f := newFixture(t, 10)

	f.authenticator.EXPECT().IsAuthenticated("conn-a", "session-a").Return(true)
	f.directory.EXPECT().IsLoggedIn("conn-a", "user-a").Return(true)
	f.directory.EXPECT().LoggedInConnectionIDs().Return([]string{"conn-a", "conn-b", "conn-c"})

	sent := make(map[string][][]byte)
	f.sender.EXPECT().
		Send(gomock.Any(), wire.ChatModule, gomock.Any()).
		DoAndReturn(func(connectionID, _ string, payload []byte) error {
			sent[connectionID] = append(sent[connectionID], payload)
			return nil
		}).
		Times(3)

	f.relay.HandlePacket(wire.ChatModule, "conn-a", submissionFrame(t, "session-a", "user-a", "req-1", "hello"))

	// Sender gets exactly one ack and zero broadcast copies.
	req.Len(sent["conn-a"], 1)
	ack := decodeResponse(t, sent["conn-a"][0])
	req.True(ack.Success)
	req.Equal("req-1", ack.OriginalMessageID)
	req.NotEmpty(ack.NewMessageID)
	req.NotEqual("req-1", ack.NewMessageID)
	req.Equal("hello", ack.Message)

	// Every other logged-in connection gets exactly one broadcast, and
	// the serialized bytes are identical across recipients.
	req.Len(sent["conn-b"], 1)
	req.Len(sent["conn-c"], 1)
	req.Equal(sent["conn-b"][0], sent["conn-c"][0])

	broadcast := decodeBroadcast(t, sent["conn-b"][0])
	req.Equal("user-a", broadcast.UUID)
	req.Equal(ack.NewMessageID, broadcast.MessageID)
	req.Equal("hello", broadcast.Message)
	req.False(broadcast.Timestamp.IsZero())
	req.Empty(broadcast.SessionID)

	// Committed to history before the ack went out.
	snapshot := f.relay.History().Snapshot()
	req.Len(snapshot, 1)
	req.Equal(ack.NewMessageID, snapshot[0].ID.String())
}

func TestRelay_Broadcast_Reaches_Nobody_When_Sender_Is_Alone(t *testing.T) {
	req := require.New(t)
	f := newFixture(t, 10)

	f.authenticator.EXPECT().IsAuthenticated("conn-a", "session-a").Return(true)
	f.directory.EXPECT().IsLoggedIn("conn-a", "user-a").Return(true)
	f.directory.EXPECT().LoggedInConnectionIDs().Return([]string{"conn-a"})

	// Only the ack, no broadcast.
	f.sender.EXPECT().Send("conn-a", wire.ChatModule, gomock.Any()).Return(nil).Times(1)

	f.relay.HandlePacket(wire.ChatModule, "conn-a", submissionFrame(t, "session-a", "user-a", "req-1", "hi"))
	req.Len(f.relay.History().Snapshot(), 1)
}

func TestRelay_Sanitizes_Before_Store_And_Broadcast(t *testing.T) {
	req := require.New(t)
	f := newFixture(t, 10)

	f.authenticator.EXPECT().IsAuthenticated("conn-a", "session-a").Return(true)
	f.directory.EXPECT().IsLoggedIn("conn-a", "user-a").Return(true)
	f.directory.EXPECT().LoggedInConnectionIDs().Return([]string{"conn-a", "conn-b"})

	sent := make(map[string][][]byte)
	f.sender.EXPECT().
		Send(gomock.Any(), wire.ChatModule, gomock.Any()).
		DoAndReturn(func(connectionID, _ string, payload []byte) error {
			sent[connectionID] = append(sent[connectionID], payload)
			return nil
		}).
		Times(2)

	f.relay.HandlePacket(wire.ChatModule, "conn-a",
		submissionFrame(t, "session-a", "user-a", "req-1", "<color=red>hi</color>"))

	ack := decodeResponse(t, sent["conn-a"][0])
	req.Equal("hi", ack.Message)
	broadcast := decodeBroadcast(t, sent["conn-b"][0])
	req.Equal("hi", broadcast.Message)

	snapshot := f.relay.History().Snapshot()
	req.Len(snapshot, 1)
	req.Equal("hi", snapshot[0].Body)
}

func TestRelay_Ack_Failure_Does_Not_Roll_Back(t *testing.T) {
	req := require.New(t)
	f := newFixture(t, 10)

	f.authenticator.EXPECT().IsAuthenticated("conn-a", "session-a").Return(true)
	f.directory.EXPECT().IsLoggedIn("conn-a", "user-a").Return(true)
	f.directory.EXPECT().LoggedInConnectionIDs().Return([]string{"conn-a", "conn-b"})

	// The ack send fails; the broadcast must still happen and the
	// message stays committed.
	f.sender.EXPECT().
		Send("conn-a", wire.ChatModule, gomock.Any()).
		Return(fmt.Errorf("connection is not open")).
		Times(1)
	f.sender.EXPECT().Send("conn-b", wire.ChatModule, gomock.Any()).Return(nil).Times(1)

	f.relay.HandlePacket(wire.ChatModule, "conn-a", submissionFrame(t, "session-a", "user-a", "req-1", "hello"))
	req.Len(f.relay.History().Snapshot(), 1)
}

func TestRelay_Broadcast_Failure_Is_Isolated(t *testing.T) {
	req := require.New(t)
	f := newFixture(t, 10)

	f.authenticator.EXPECT().IsAuthenticated("conn-a", "session-a").Return(true)
	f.directory.EXPECT().IsLoggedIn("conn-a", "user-a").Return(true)
	f.directory.EXPECT().LoggedInConnectionIDs().Return([]string{"conn-a", "conn-b", "conn-c"})

	f.sender.EXPECT().Send("conn-a", wire.ChatModule, gomock.Any()).Return(nil).Times(1)
	// conn-b closed mid-broadcast; conn-c must still get its copy.
	f.sender.EXPECT().
		Send("conn-b", wire.ChatModule, gomock.Any()).
		Return(fmt.Errorf("connection is not open")).
		Times(1)
	f.sender.EXPECT().Send("conn-c", wire.ChatModule, gomock.Any()).Return(nil).Times(1)

	f.relay.HandlePacket(wire.ChatModule, "conn-a", submissionFrame(t, "session-a", "user-a", "req-1", "hello"))
	req.Len(f.relay.History().Snapshot(), 1)
}

func TestRelay_Assigns_Unique_Message_IDs(t *testing.T) {
	req := require.New(t)
	f := newFixture(t, 10)

	f.authenticator.EXPECT().IsAuthenticated("conn-a", "session-a").Return(true).Times(3)
	f.directory.EXPECT().IsLoggedIn("conn-a", "user-a").Return(true).Times(3)
	f.directory.EXPECT().LoggedInConnectionIDs().Return([]string{"conn-a"}).Times(3)

	seen := make(map[string]bool)
	f.sender.EXPECT().
		Send("conn-a", wire.ChatModule, gomock.Any()).
		DoAndReturn(func(_, _ string, payload []byte) error {
			response := decodeResponse(t, payload)
			req.NotEmpty(response.NewMessageID)
			req.False(seen[response.NewMessageID], "message id reused")
			seen[response.NewMessageID] = true
			return nil
		}).
		Times(3)

	// Client reuses the same request id; server ids must still be unique.
	for i := 0; i < 3; i++ {
		f.relay.HandlePacket(wire.ChatModule, "conn-a", submissionFrame(t, "session-a", "user-a", "req-same", "hello"))
	}
	req.NotContains(seen, "req-same")
}

func TestRelay_History_Capacity_Eviction(t *testing.T) {
	req := require.New(t)
	f := newFixture(t, 2)

	f.authenticator.EXPECT().IsAuthenticated("conn-a", "session-a").Return(true).Times(3)
	f.directory.EXPECT().IsLoggedIn("conn-a", "user-a").Return(true).Times(3)
	f.directory.EXPECT().LoggedInConnectionIDs().Return([]string{"conn-a"}).Times(3)
	f.sender.EXPECT().Send("conn-a", wire.ChatModule, gomock.Any()).Return(nil).Times(3)

	for _, body := range []string{"m1", "m2", "m3"} {
		f.relay.HandlePacket(wire.ChatModule, "conn-a", submissionFrame(t, "session-a", "user-a", "req-"+body, body))
	}

	snapshot := f.relay.History().Snapshot()
	req.Len(snapshot, 2)
	req.Equal("m2", snapshot[0].Body)
	req.Equal("m3", snapshot[1].Body)
}

func TestRelay_Login_Replay_Oldest_First(t *testing.T) {
	req := require.New(t)
	f := newFixture(t, 10)

	for _, body := range []string{"m1", "m2", "m3"} {
		message, err := domain.NewMessage("user-a", body, time.Now().UTC())
		req.NoError(err)
		f.relay.History().Append(message)
	}

	var sent []byte
	f.sender.EXPECT().
		Send("conn-new", wire.ChatModule, gomock.Any()).
		DoAndReturn(func(_, _ string, payload []byte) error {
			sent = payload
			return nil
		}).
		Times(1)

	f.relay.OnLogin(directory.LoginEvent{ConnectionID: "conn-new", UserID: "user-new"})

	replay := decodeHistory(t, sent)
	req.Len(replay.ChatMessages, 3)
	req.Equal("m1", replay.ChatMessages[0].Message)
	req.Equal("m2", replay.ChatMessages[1].Message)
	req.Equal("m3", replay.ChatMessages[2].Message)

	// Replay never mutates history.
	req.Len(f.relay.History().Snapshot(), 3)
}

func TestRelay_Login_Replay_Failure_Is_Isolated(t *testing.T) {
	req := require.New(t)
	f := newFixture(t, 10)

	message, err := domain.NewMessage("user-a", "m1", time.Now().UTC())
	req.NoError(err)
	f.relay.History().Append(message)

	f.sender.EXPECT().
		Send("conn-gone", wire.ChatModule, gomock.Any()).
		Return(fmt.Errorf("connection is not open")).
		Times(1)

	f.relay.OnLogin(directory.LoginEvent{ConnectionID: "conn-gone", UserID: "user-gone"})
	req.Len(f.relay.History().Snapshot(), 1)
}

func TestRelay_Discards_Garbage_And_Unknown_Types(t *testing.T) {
	f := newFixture(t, 10)
	// No expectations: nothing may be sent, checked, or stored.

	f.relay.HandlePacket(wire.ChatModule, "conn-a", []byte("not json"))
	f.relay.HandlePacket(wire.ChatModule, "conn-a", []byte(`{"type":"SomethingElse","body":{}}`))

	// Submission missing required fields is discarded without an ack.
	frame, err := wire.EncodeFrame(wire.TypeChatMessage, wire.ChatMessagePacket{Message: "no ids"})
	require.NoError(t, err)
	f.relay.HandlePacket(wire.ChatModule, "conn-a", frame)

	require.Empty(t, f.relay.History().Snapshot())
}

func TestRelay_Rejects_Invalid_History_Capacity(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	sanitizer, err := sanitizerForTest(log)
	require.NoError(t, err)

	_, err = New(log, mocks.NewMockSender(ctrl), mocks.NewMockAuthenticator(ctrl),
		mocks.NewMockDirectory(ctrl), sanitizer, 0)
	require.Error(t, err)
}
