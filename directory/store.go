//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=../mocks/mock_user_store.go -package=mocks
package directory

import (
	"chat-relay/errors"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

// IUserStore persists user records across restarts. Login state is
// deliberately not part of the record; it lives only in the Directory.
type IUserStore interface {
	CreateUser(username, passwordHash string) (string, error)
	GetUserByName(username string) (Record, error)
	ForEachUser(fn func(Record) error) error
}

// Record is the durable shape of one user.
type Record struct {
	UUID         string    `json:"uuid"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Store keeps user records in BadgerDB under "user:{username}" keys.
type Store struct {
	db *badger.DB
}

func NewStore(db *badger.DB) *Store {
	return &Store{db: db}
}

// CreateUser persists a new user and returns its generated UUID.
func (s *Store) CreateUser(username, passwordHash string) (string, error) {
	record := Record{
		UUID:         uuid.NewString(),
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	data, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("marshal failed: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		key := []byte("user:" + username)
		if _, err := txn.Get(key); err == nil {
			return errors.ErrUserAlreadyExists
		}
		return txn.Set(key, data)
	})
	if err != nil {
		return "", err
	}
	return record.UUID, nil
}

// GetUserByName loads one user record.
func (s *Store) GetUserByName(username string) (Record, error) {
	var record Record
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte("user:" + username))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return errors.ErrUserNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &record)
		})
	})
	if err != nil {
		return Record{}, err
	}
	return record, nil
}

// ForEachUser iterates all stored records via a prefix scan.
func (s *Store) ForEachUser(fn func(Record) error) error {
	return s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte("user:")
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var record Record
				if err := json.Unmarshal(val, &record); err != nil {
					return err
				}
				return fn(record)
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}
