package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	authService "github.com/allisson/store/internal/auth/service"
	"github.com/allisson/store/internal/user/domain"
	appValidation "github.com/allisson/store/internal/validation"
)

// userUseCase implements UseCase.
type userUseCase struct {
	userRepo        UserRepository
	passwordService authService.PasswordService
}

// NewUserUseCase creates a new user use case.
func NewUserUseCase(userRepo UserRepository, passwordService authService.PasswordService) UseCase {
	return &userUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
	}
}

func validateRegisterUserInput(input RegisterUserInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Username,
			validation.Required.Error("username is required"),
			appValidation.NotBlank,
			appValidation.Username,
			validation.Length(1, 255).Error("username must be between 1 and 255 characters"),
		),
		validation.Field(&input.Pseudonym,
			validation.Required.Error("pseudonym is required"),
			appValidation.NotBlank,
			appValidation.NoWhitespace,
			validation.Length(1, 255).Error("pseudonym must be between 1 and 255 characters"),
		),
		validation.Field(&input.Password,
			validation.Required.Error("password is required"),
			validation.Length(1, 128).Error("password must be between 1 and 128 characters"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// Register registers a new user. The returned user carries the password hash, never the plaintext.
func (uc *userUseCase) Register(ctx context.Context, input RegisterUserInput) (*domain.User, error) {
	input.Username = strings.TrimSpace(input.Username)
	input.Pseudonym = strings.TrimSpace(input.Pseudonym)

	if err := validateRegisterUserInput(input); err != nil {
		return nil, err
	}

	hashedPassword, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:        uuid.Must(uuid.NewV7()),
		Username:  input.Username,
		Pseudonym: input.Pseudonym,
		Password:  hashedPassword,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// GetByUsername retrieves a user by username.
func (uc *userUseCase) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return uc.userRepo.GetByUsername(ctx, username)
}
