package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"campus-chat/auth"
	apperrors "campus-chat/errors"
	"campus-chat/mocks"
	"campus-chat/repositories"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIUserRepository(ctrl)
	tokens := auth.NewTokenManager("test_secret_key_for_unit_tests", 24*time.Hour)
	svc := NewAuthService(mockRepo, tokens)

	t.Run("should register successfully when input is valid", func(t *testing.T) {
		req := require.New(t)
		email := "ada@university.edu"
		password := "ComplexPass123!"
		expectedUserID := "user-uuid"

		// CreateUser must receive a hashed password, never the plain one
		mockRepo.EXPECT().
			CreateUser(email, "Ada Lovelace", gomock.Not(password)).
			Return(expectedUserID, nil).
			Times(1)

		session, err := svc.Register(email, "Ada Lovelace", password)

		req.NoError(err)
		req.Equal(expectedUserID, session.UserID)
		req.NotEmpty(session.Token)

		claims, err := tokens.ValidateToken(session.Token)
		req.NoError(err)
		req.Equal(expectedUserID, claims.UserID)
		req.Equal([]string{"student"}, claims.Roles)
	})

	t.Run("should fail when password complexity is not met", func(t *testing.T) {
		req := require.New(t)

		// Repository should NEVER be called
		mockRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		session, err := svc.Register("ada@university.edu", "Ada Lovelace", "alllowercasepassword")

		req.Error(err)
		req.ErrorIs(err, apperrors.ErrInvalidPassword)
		req.Empty(session.Token)
	})

	t.Run("should report a field failure as validation, not password complexity", func(t *testing.T) {
		req := require.New(t)

		mockRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		session, err := svc.Register("not-an-email", "Ada Lovelace", "ComplexPass123!")

		req.ErrorIs(err, apperrors.ErrValidation)
		req.NotErrorIs(err, apperrors.ErrInvalidPassword)
		req.Empty(session.Token)
	})

	t.Run("should fail when user already exists in repository", func(t *testing.T) {
		req := require.New(t)
		email := "duplicate@university.edu"

		mockRepo.EXPECT().
			CreateUser(email, gomock.Any(), gomock.Any()).
			Return("", apperrors.ErrUserAlreadyExists).
			Times(1)

		_, err := svc.Register(email, "Ada Lovelace", "ComplexPass123!")

		req.ErrorIs(err, apperrors.ErrUserAlreadyExists)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIUserRepository(ctrl)
	tokens := auth.NewTokenManager("test_secret_key_for_unit_tests", 24*time.Hour)
	svc := NewAuthService(mockRepo, tokens)

	t.Run("should login successfully with correct credentials", func(t *testing.T) {
		req := require.New(t)
		email := "student@university.edu"
		password := "Secret123456!"

		hashedPassword, _ := auth.HashPassword(password)
		storedUser := repositories.User{
			ID:           "uuid-123",
			Email:        email,
			PasswordHash: hashedPassword,
			Roles:        []string{"student"},
		}

		mockRepo.EXPECT().
			GetUserByEmail(email).
			Return(storedUser, nil).
			Times(1)

		session, err := svc.Login(email, password)

		req.NoError(err)
		req.Equal(storedUser.ID, session.UserID)
		req.NotEmpty(session.Token)

		claims, err := tokens.ValidateToken(session.Token)
		req.NoError(err)
		req.Equal(storedUser.ID, claims.UserID)
		req.Equal(storedUser.Roles, claims.Roles)
	})

	t.Run("should return invalid credentials when password does not match", func(t *testing.T) {
		req := require.New(t)
		email := "student@university.edu"

		hashedPassword, _ := auth.HashPassword("CorrectPassword123!")
		storedUser := repositories.User{
			Email:        email,
			PasswordHash: hashedPassword,
		}

		mockRepo.EXPECT().
			GetUserByEmail(email).
			Return(storedUser, nil).
			Times(1)

		_, err := svc.Login(email, "WrongPassword123!")

		req.ErrorIs(err, apperrors.ErrInvalidCredentials)
	})

	t.Run("should return invalid credentials when user is not found", func(t *testing.T) {
		req := require.New(t)

		mockRepo.EXPECT().
			GetUserByEmail("unknown@university.edu").
			Return(repositories.User{}, apperrors.ErrNotFound).
			Times(1)

		_, err := svc.Login("unknown@university.edu", "anyPassword")

		req.ErrorIs(err, apperrors.ErrInvalidCredentials)
	})
}
