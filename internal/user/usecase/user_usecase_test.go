package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authService "github.com/allisson/store/internal/auth/service"
	apperrors "github.com/allisson/store/internal/errors"
	"github.com/allisson/store/internal/user/domain"
	"github.com/allisson/store/internal/user/usecase"
	usecaseMocks "github.com/allisson/store/internal/user/usecase/mocks"
)

func TestUserUseCase_Register(t *testing.T) {
	ctx := context.Background()
	passwordService := authService.NewPasswordService()

	t.Run("Success_HashesPassword", func(t *testing.T) {
		mockRepo := &usecaseMocks.MockUserRepository{}
		uc := usecase.NewUserUseCase(mockRepo, passwordService)

		mockRepo.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.Username == "alice" && u.Pseudonym == "Alice" && u.Password != "pw1"
		})).Return(nil).Once()

		user, err := uc.Register(ctx, usecase.RegisterUserInput{
			Username:  " alice ",
			Pseudonym: "Alice",
			Password:  "pw1",
		})

		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		assert.NotEmpty(t, user.ID)
		assert.True(t, passwordService.ComparePassword("pw1", user.Password))
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error_Validation", func(t *testing.T) {
		tests := []struct {
			name  string
			input usecase.RegisterUserInput
		}{
			{"missing username", usecase.RegisterUserInput{Pseudonym: "Alice", Password: "pw1"}},
			{"invalid username", usecase.RegisterUserInput{Username: "al ice", Pseudonym: "Alice", Password: "pw1"}},
			{"missing pseudonym", usecase.RegisterUserInput{Username: "alice", Password: "pw1"}},
			{"padded pseudonym", usecase.RegisterUserInput{Username: "alice", Pseudonym: " Alice ", Password: "pw1"}},
			{"missing password", usecase.RegisterUserInput{Username: "alice", Pseudonym: "Alice"}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				mockRepo := &usecaseMocks.MockUserRepository{}
				uc := usecase.NewUserUseCase(mockRepo, passwordService)

				user, err := uc.Register(ctx, tt.input)
				assert.Nil(t, user)
				assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
				mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("Error_AlreadyExists", func(t *testing.T) {
		mockRepo := &usecaseMocks.MockUserRepository{}
		uc := usecase.NewUserUseCase(mockRepo, passwordService)

		mockRepo.On("Create", ctx, mock.Anything).Return(domain.ErrUserAlreadyExists).Once()

		user, err := uc.Register(ctx, usecase.RegisterUserInput{
			Username:  "alice",
			Pseudonym: "Alice",
			Password:  "pw1",
		})
		assert.Nil(t, user)
		assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
	})
}

func TestUserUseCase_GetByUsername(t *testing.T) {
	ctx := context.Background()
	mockRepo := &usecaseMocks.MockUserRepository{}
	uc := usecase.NewUserUseCase(mockRepo, authService.NewPasswordService())

	expected := &domain.User{Username: "alice"}
	mockRepo.On("GetByUsername", ctx, "alice").Return(expected, nil).Once()
	mockRepo.On("GetByUsername", ctx, "bob").Return(nil, domain.ErrUserNotFound).Once()

	user, err := uc.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, expected, user)

	user, err = uc.GetByUsername(ctx, "bob")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestIdentityDirectory_FindPrincipal(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_MapsUserToPrincipal", func(t *testing.T) {
		mockRepo := &usecaseMocks.MockUserRepository{}
		directory := usecase.NewIdentityDirectory(mockRepo)

		mockRepo.On("GetByUsername", ctx, "alice").
			Return(&domain.User{Username: "alice", Password: "$argon2id$hash"}, nil).
			Once()

		principal, err := directory.FindPrincipal(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, "alice", principal.Username)
		assert.Equal(t, "$argon2id$hash", principal.CredentialHash)
		assert.True(t, principal.HasAuthority("user"))
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		mockRepo := &usecaseMocks.MockUserRepository{}
		directory := usecase.NewIdentityDirectory(mockRepo)

		mockRepo.On("GetByUsername", ctx, "ghost").Return(nil, domain.ErrUserNotFound).Once()

		principal, err := directory.FindPrincipal(ctx, "ghost")
		assert.Nil(t, principal)
		assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
	})

	t.Run("Error_RepositoryFailurePassesThrough", func(t *testing.T) {
		mockRepo := &usecaseMocks.MockUserRepository{}
		directory := usecase.NewIdentityDirectory(mockRepo)

		dbErr := errors.New("db down")
		mockRepo.On("GetByUsername", ctx, "alice").Return(nil, dbErr).Once()

		principal, err := directory.FindPrincipal(ctx, "alice")
		assert.Nil(t, principal)
		assert.ErrorIs(t, err, dbErr)
		assert.False(t, apperrors.Is(err, apperrors.ErrNotFound))
	})
}
