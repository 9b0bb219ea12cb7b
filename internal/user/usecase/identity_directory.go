package usecase

import (
	"context"

	authDomain "github.com/allisson/store/internal/auth/domain"
	authUseCase "github.com/allisson/store/internal/auth/usecase"
	apperrors "github.com/allisson/store/internal/errors"
	"github.com/allisson/store/internal/user/domain"
)

// identityDirectory exposes stored users as auth principals.
type identityDirectory struct {
	userRepo UserRepository
}

// NewIdentityDirectory creates an IdentityDirectory backed by the user repository.
// Every stored user is granted the user authority.
func NewIdentityDirectory(userRepo UserRepository) authUseCase.IdentityDirectory {
	return &identityDirectory{userRepo: userRepo}
}

// FindPrincipal returns the principal for username, or ErrPrincipalNotFound.
func (d *identityDirectory) FindPrincipal(ctx context.Context, username string) (*authDomain.Principal, error) {
	user, err := d.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if apperrors.Is(err, domain.ErrUserNotFound) {
			return nil, authDomain.ErrPrincipalNotFound
		}
		return nil, err
	}

	return &authDomain.Principal{
		Username:       user.Username,
		Authorities:    []authDomain.Authority{authDomain.UserAuthority},
		CredentialHash: user.Password,
	}, nil
}
