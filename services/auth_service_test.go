package services_test

import (
	"chat-relay/auth"
	"chat-relay/directory"
	"chat-relay/errors"
	"chat-relay/mocks"
	"chat-relay/services"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockStore := mocks.NewMockIUserStore(ctrl)
	mockIssuer := mocks.NewMockISessionIssuer(ctrl)
	mockRegistrar := mocks.NewMockILoginRegistrar(ctrl)
	svc := services.NewAuthService(mockStore, mockIssuer, mockRegistrar)

	t.Run("should register successfully when input is valid", func(t *testing.T) {
		req := require.New(t)
		username := "alice"
		password := "ComplexPass123!"

		// The store receives a hash, never the plain password.
		mockStore.EXPECT().
			CreateUser(username, gomock.Not(password)).
			Return("user-uuid", nil).
			Times(1)

		id, err := svc.Register(username, password)
		req.NoError(err)
		req.Equal("user-uuid", id)
	})

	t.Run("should fail when password complexity is not met", func(t *testing.T) {
		req := require.New(t)
		mockStore.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.Register("alice", "simple")
		req.ErrorIs(err, errors.ErrInvalidPassword)
	})

	t.Run("should propagate duplicate users", func(t *testing.T) {
		req := require.New(t)
		mockStore.EXPECT().
			CreateUser("alice", gomock.Any()).
			Return("", errors.ErrUserAlreadyExists).
			Times(1)

		_, err := svc.Register("alice", "ComplexPass123!")
		req.ErrorIs(err, errors.ErrUserAlreadyExists)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockStore := mocks.NewMockIUserStore(ctrl)
	mockIssuer := mocks.NewMockISessionIssuer(ctrl)
	mockRegistrar := mocks.NewMockILoginRegistrar(ctrl)
	svc := services.NewAuthService(mockStore, mockIssuer, mockRegistrar)

	password := "Secret123456!"
	hashedPassword, err := auth.HashPassword(password)
	require.NoError(t, err)
	stored := directory.Record{UUID: "uuid-123", Username: "alice", PasswordHash: hashedPassword}

	t.Run("should login and mark the user logged in", func(t *testing.T) {
		req := require.New(t)
		mockStore.EXPECT().GetUserByName("alice").Return(stored, nil)
		mockIssuer.EXPECT().Issue("conn-1", "uuid-123").Return("token-1", nil)
		mockRegistrar.EXPECT().LogIn("conn-1", "uuid-123").Return(nil)

		session, err := svc.Login("conn-1", "alice", password)
		req.NoError(err)
		req.Equal(services.Session{Token: "token-1", UserID: "uuid-123"}, session)
	})

	t.Run("should refuse a wrong password without issuing a token", func(t *testing.T) {
		req := require.New(t)
		mockStore.EXPECT().GetUserByName("alice").Return(stored, nil)
		mockIssuer.EXPECT().Issue(gomock.Any(), gomock.Any()).Times(0)
		mockRegistrar.EXPECT().LogIn(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.Login("conn-1", "alice", "wrong")
		req.ErrorIs(err, errors.ErrInvalidCredentials)
	})

	t.Run("should hide unknown users behind a generic error", func(t *testing.T) {
		req := require.New(t)
		mockStore.EXPECT().GetUserByName("ghost").Return(directory.Record{}, errors.ErrUserNotFound)

		_, err := svc.Login("conn-1", "ghost", password)
		req.ErrorIs(err, errors.ErrInvalidCredentials)
	})
}
