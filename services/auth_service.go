//go:generate go run go.uber.org/mock/mockgen -source=auth_service.go -destination=../mocks/mock_auth_service.go -package=mocks
package services

import (
	"chat-relay/auth"
	"chat-relay/directory"
	"chat-relay/errors"
	"fmt"
)

// IAuthService handles registration and credential login.
type IAuthService interface {
	Register(username, password string) (string, error)
	Login(connectionID, username, password string) (Session, error)
}

// ISessionIssuer mints connection-bound session tokens.
type ISessionIssuer interface {
	Issue(connectionID, userID string) (string, error)
}

// ILoginRegistrar records a completed login, which fires the login event.
type ILoginRegistrar interface {
	LogIn(connectionID, userID string) error
}

// Session is the outcome of a successful login.
type Session struct {
	Token  string
	UserID string
}

type AuthService struct {
	store     directory.IUserStore
	issuer    ISessionIssuer
	registrar ILoginRegistrar
}

func NewAuthService(store directory.IUserStore, issuer ISessionIssuer, registrar ILoginRegistrar) IAuthService {
	return &AuthService{store: store, issuer: issuer, registrar: registrar}
}

// Register validates the credentials, hashes the password, and persists
// the user. Returns the new user's UUID.
func (s *AuthService) Register(username, password string) (string, error) {
	request := auth.RegisterRequest{Username: username, Password: password}
	if err := auth.ValidateRegister(request); err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrInvalidPassword, err)
	}

	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("hashing failed: %w", err)
	}

	return s.store.CreateUser(username, hashedPassword)
}

// Login verifies the credentials, issues a session token bound to the
// connection, and marks the user logged in — which triggers the history
// replay for that connection.
func (s *AuthService) Login(connectionID, username, password string) (Session, error) {
	record, err := s.store.GetUserByName(username)
	if err != nil {
		// Generic error to prevent user enumeration.
		return Session{}, errors.ErrInvalidCredentials
	}

	match, err := auth.ComparePassword(password, record.PasswordHash)
	if err != nil || !match {
		return Session{}, errors.ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(connectionID, record.UUID)
	if err != nil {
		return Session{}, errors.ErrTokenGeneration
	}

	if err := s.registrar.LogIn(connectionID, record.UUID); err != nil {
		return Session{}, err
	}
	return Session{Token: token, UserID: record.UUID}, nil
}
