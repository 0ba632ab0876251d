//go:generate go run go.uber.org/mock/mockgen -source=auth_service.go -destination=../mocks/services/mock_auth_service.go -package=servicemocks
package services

import (
	"errors"
	"fmt"

	"campus-chat/auth"
	apperrors "campus-chat/errors"
	"campus-chat/repositories"
)

type IAuthService interface {
	Register(email, name, password string) (Session, error)
	Login(email, password string) (Session, error)
}

// Session is what a successful authentication hands back to the client.
type Session struct {
	UserID string
	Token  string
}

type AuthService struct {
	userRepository repositories.IUserRepository
	tokens         *auth.TokenManager
}

func NewAuthService(repo repositories.IUserRepository, tokens *auth.TokenManager) IAuthService {
	return &AuthService{userRepository: repo, tokens: tokens}
}

func (s *AuthService) Register(email, name, password string) (Session, error) {
	valReq := auth.RegisterRequest{
		Email:    email,
		Name:     name,
		Password: password,
	}

	// Business rules first, before any expensive cryptographic operation.
	if err := auth.ValidateRegister(valReq); err != nil {
		if errors.Is(err, apperrors.ErrInvalidPassword) {
			return Session{}, err
		}
		return Session{}, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	// Hashing happens here so the repository never sees a plain password.
	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return Session{}, fmt.Errorf("hashing failed: %w", err)
	}

	userID, err := s.userRepository.CreateUser(email, name, hashedPassword)
	if err != nil {
		return Session{}, err // propagates ErrUserAlreadyExists if the email is taken
	}

	token, err := s.tokens.GenerateToken(userID, []string{"student"})
	if err != nil {
		return Session{}, apperrors.ErrTokenGeneration
	}
	return Session{UserID: userID, Token: token}, nil
}

func (s *AuthService) Login(email, password string) (Session, error) {
	user, err := s.userRepository.GetUserByEmail(email)
	if err != nil {
		// Generic error to prevent user enumeration.
		return Session{}, apperrors.ErrInvalidCredentials
	}

	match, err := auth.ComparePassword(password, user.PasswordHash)
	if err != nil || !match {
		return Session{}, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Roles)
	if err != nil {
		return Session{}, apperrors.ErrTokenGeneration
	}
	return Session{UserID: user.ID, Token: token}, nil
}
