//go:generate go run go.uber.org/mock/mockgen -source=directory.go -destination=../mocks/mock_directory.go -package=mocks
package directory

import (
	"chat-relay/errors"
	"log/slog"
	"sync"
)

// IDirectory answers login-state questions for the relay.
type IDirectory interface {
	IsLoggedIn(connectionID, userID string) bool
	LoggedInConnectionIDs() []string
}

// LoginEvent is raised once a user completes login on a connection.
type LoginEvent struct {
	ConnectionID string
	UserID       string
}

// Directory tracks which users are logged in on which connections and
// notifies subscribers of completed logins. Subscriptions are expected to
// be registered at startup, before any login traffic arrives.
type Directory struct {
	mu           sync.RWMutex
	log          *slog.Logger
	byConnection map[string]string // connection id -> user uuid
	byUser       map[string]string // user uuid -> connection id
	loginSubs    []func(LoginEvent)
}

func NewDirectory(log *slog.Logger) *Directory {
	return &Directory{
		log:          log,
		byConnection: make(map[string]string),
		byUser:       make(map[string]string),
	}
}

// SubscribeLogin registers a callback fired after each successful login.
// Callbacks run outside the directory lock, so a subscriber may call back
// into the directory or into other locked components safely.
func (d *Directory) SubscribeLogin(fn func(LoginEvent)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.loginSubs = append(d.loginSubs, fn)
}

// LogIn marks a user as logged in on a connection and fires the login
// event. A user logging in from a new connection displaces the old one.
func (d *Directory) LogIn(connectionID, userID string) error {
	if connectionID == "" {
		return errors.ErrEmptyConnectionID
	}
	if userID == "" {
		return errors.ErrEmptySenderID
	}

	d.mu.Lock()
	if previous, ok := d.byUser[userID]; ok && previous != connectionID {
		delete(d.byConnection, previous)
		d.log.Debug("User displaced from previous connection", "user_id", userID, "connection_id", previous)
	}
	d.byConnection[connectionID] = userID
	d.byUser[userID] = connectionID
	subs := make([]func(LoginEvent), len(d.loginSubs))
	copy(subs, d.loginSubs)
	d.mu.Unlock()

	event := LoginEvent{ConnectionID: connectionID, UserID: userID}
	for _, fn := range subs {
		fn(event)
	}
	return nil
}

// LogOut clears the login state of a connection. Unknown connections are
// a no-op, so the transport may call this for every closed connection.
func (d *Directory) LogOut(connectionID string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	userID, ok := d.byConnection[connectionID]
	if !ok {
		return
	}
	delete(d.byConnection, connectionID)
	if d.byUser[userID] == connectionID {
		delete(d.byUser, userID)
	}
	d.log.Debug("User logged out", "user_id", userID, "connection_id", connectionID)
}

// IsLoggedIn reports whether this exact user is logged in on this exact
// connection.
func (d *Directory) IsLoggedIn(connectionID, userID string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	current, ok := d.byConnection[connectionID]
	return ok && current == userID
}

// LoggedInConnectionIDs enumerates the connections of all logged-in users.
func (d *Directory) LoggedInConnectionIDs() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	ids := make([]string, 0, len(d.byConnection))
	for connectionID := range d.byConnection {
		ids = append(ids, connectionID)
	}
	return ids
}
