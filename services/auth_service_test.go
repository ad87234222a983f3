package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"chat-hub/auth"
	"chat-hub/domain"
	"chat-hub/errors"
	"chat-hub/mocks"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIUserRepository(ctrl)
	svc := NewAuthService(mockRepo, 24*time.Hour)

	t.Run("should register successfully when input is valid", func(t *testing.T) {
		req := require.New(t)

		// Expect Create to be called with a hashed password (not the plain one)
		mockRepo.EXPECT().
			Create(gomock.Cond(func(u domain.User) bool {
				return u.Username == "alice" && u.PasswordHash != "correct-horse-battery"
			})).
			Return(nil).
			Times(1)

		token, userID, err := svc.Register("alice", "correct-horse-battery", "Alice")

		req.NoError(err)
		req.NotEmpty(token)
		req.NotEmpty(userID)

		claims, err := auth.ValidateToken(string(token))
		req.NoError(err)
		req.Equal(userID, claims.UserID)
	})

	t.Run("should fail when password is too short", func(t *testing.T) {
		req := require.New(t)

		// Repository should NEVER be called
		mockRepo.EXPECT().Create(gomock.Any()).Times(0)

		token, _, err := svc.Register("alice", "short", "Alice")

		req.Error(err)
		req.ErrorIs(err, errors.ErrInvalidInput)
		req.Empty(token)
	})

	t.Run("should fail when username has invalid characters", func(t *testing.T) {
		req := require.New(t)

		mockRepo.EXPECT().Create(gomock.Any()).Times(0)

		_, _, err := svc.Register("al ice!", "correct-horse-battery", "")

		req.ErrorIs(err, errors.ErrInvalidInput)
	})

	t.Run("should fail when username is already taken", func(t *testing.T) {
		req := require.New(t)

		mockRepo.EXPECT().
			Create(gomock.Any()).
			Return(errors.ErrUserAlreadyExists).
			Times(1)

		_, _, err := svc.Register("duplicate", "correct-horse-battery", "")

		req.ErrorIs(err, errors.ErrUserAlreadyExists)
	})

	t.Run("should default display name to username", func(t *testing.T) {
		req := require.New(t)

		mockRepo.EXPECT().
			Create(gomock.Cond(func(u domain.User) bool {
				return u.DisplayName == "bob"
			})).
			Return(nil).
			Times(1)

		_, _, err := svc.Register("bob", "correct-horse-battery", "")

		req.NoError(err)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIUserRepository(ctrl)
	svc := NewAuthService(mockRepo, 24*time.Hour)

	hashedPassword, err := auth.HashPassword("correct-horse-battery")
	require.NoError(t, err)

	storedUser := domain.User{
		ID:           "uuid-123",
		Username:     "alice",
		PasswordHash: hashedPassword,
		Roles:        []string{"user"},
		Active:       true,
	}

	t.Run("should login successfully with correct credentials", func(t *testing.T) {
		req := require.New(t)

		mockRepo.EXPECT().
			GetByUsername("alice").
			Return(storedUser, nil).
			Times(1)

		token, userID, err := svc.Login("alice", "correct-horse-battery")

		req.NoError(err)
		req.NotEmpty(token)
		req.Equal(storedUser.ID, userID)

		claims, err := auth.ValidateToken(string(token))
		req.NoError(err)
		req.Equal(storedUser.ID, claims.UserID)
		req.Equal(storedUser.Roles, claims.Roles)
	})

	t.Run("should return invalid credentials when password is wrong", func(t *testing.T) {
		req := require.New(t)

		mockRepo.EXPECT().
			GetByUsername("alice").
			Return(storedUser, nil).
			Times(1)

		_, _, err := svc.Login("alice", "wrong-horse-battery")

		req.ErrorIs(err, errors.ErrInvalidCredentials)
	})

	t.Run("should return invalid credentials when user is not found", func(t *testing.T) {
		req := require.New(t)

		mockRepo.EXPECT().
			GetByUsername("unknown").
			Return(domain.User{}, errors.ErrUserNotFound).
			Times(1)

		_, _, err := svc.Login("unknown", "anyPassword1234")

		req.ErrorIs(err, errors.ErrInvalidCredentials)
	})

	t.Run("should refuse deactivated accounts", func(t *testing.T) {
		req := require.New(t)

		inactive := storedUser
		inactive.Active = false

		mockRepo.EXPECT().
			GetByUsername("alice").
			Return(inactive, nil).
			Times(1)

		_, _, err := svc.Login("alice", "correct-horse-battery")

		req.ErrorIs(err, errors.ErrUserInactive)
	})
}
