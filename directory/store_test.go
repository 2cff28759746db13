package directory

import (
	"chat-relay/errors"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR).
		WithValueLogFileSize(16 << 20))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestStore_Create_And_Get(t *testing.T) {
	req := require.New(t)
	store := NewStore(openTestDB(t))

	id, err := store.CreateUser("alice", "hash-a")
	req.NoError(err)
	req.NotEmpty(id)

	record, err := store.GetUserByName("alice")
	req.NoError(err)
	req.Equal(id, record.UUID)
	req.Equal("alice", record.Username)
	req.Equal("hash-a", record.PasswordHash)
	req.False(record.CreatedAt.IsZero())
}

func TestStore_Duplicate_Username(t *testing.T) {
	req := require.New(t)
	store := NewStore(openTestDB(t))

	_, err := store.CreateUser("alice", "hash-a")
	req.NoError(err)

	_, err = store.CreateUser("alice", "hash-b")
	req.ErrorIs(err, errors.ErrUserAlreadyExists)
}

func TestStore_Unknown_User(t *testing.T) {
	store := NewStore(openTestDB(t))

	_, err := store.GetUserByName("nobody")
	require.ErrorIs(t, err, errors.ErrUserNotFound)
}

func TestStore_ForEachUser(t *testing.T) {
	req := require.New(t)
	store := NewStore(openTestDB(t))

	_, err := store.CreateUser("alice", "hash-a")
	req.NoError(err)
	_, err = store.CreateUser("bob", "hash-b")
	req.NoError(err)

	var names []string
	err = store.ForEachUser(func(record Record) error {
		names = append(names, record.Username)
		return nil
	})
	req.NoError(err)
	req.ElementsMatch([]string{"alice", "bob"}, names)
}
