package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"chat-hub/auth"
	"chat-hub/domain"
	"chat-hub/errors"
	"chat-hub/repositories"
)

type IAuthService interface {
	Register(username, password, displayName string) (Token, string, error)
	Login(username, password string) (Token, string, error)
}

type AuthService struct {
	userRepository repositories.IUserRepository
	tokenDuration  time.Duration
}

type Token string

func NewAuthService(repo repositories.IUserRepository, tokenDuration time.Duration) IAuthService {
	return &AuthService{userRepository: repo, tokenDuration: tokenDuration}
}

func (s *AuthService) Register(username, password, displayName string) (Token, string, error) {
	valReq := auth.RegisterRequest{
		Username:    username,
		Password:    password,
		DisplayName: displayName,
	}

	// Validate business rules before any expensive cryptographic work.
	if err := auth.ValidateRegister(valReq); err != nil {
		return "", "", fmt.Errorf("%w: %v", errors.ErrInvalidInput, err)
	}

	// Hash in the service layer to keep the repository unaware of plain
	// passwords.
	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return "", "", fmt.Errorf("hashing failed: %w", err)
	}

	if displayName == "" {
		displayName = username
	}
	user := domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		DisplayName:  displayName,
		PasswordHash: hashedPassword,
		Roles:        []string{"user"},
		Status:       domain.StatusOffline,
		Active:       true,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.userRepository.Create(user); err != nil {
		return "", "", err // Propagates ErrUserAlreadyExists if the name is taken
	}

	token, err := auth.GenerateToken(user.ID, user.Roles, s.tokenDuration)
	if err != nil {
		return "", "", errors.ErrTokenGeneration
	}

	return Token(token), user.ID, nil
}

func (s *AuthService) Login(username, password string) (Token, string, error) {
	user, err := s.userRepository.GetByUsername(username)
	if err != nil {
		// Generic error to prevent user enumeration attacks
		return "", "", errors.ErrInvalidCredentials
	}

	match, err := auth.ComparePassword(password, user.PasswordHash)
	if err != nil || !match {
		return "", "", errors.ErrInvalidCredentials
	}

	if !user.Active {
		return "", "", errors.ErrUserInactive
	}

	token, err := auth.GenerateToken(user.ID, user.Roles, s.tokenDuration)
	if err != nil {
		return "", "", errors.ErrTokenGeneration
	}

	return Token(token), user.ID, nil
}
