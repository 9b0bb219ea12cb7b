package service

import (
	"strings"

	"github.com/allisson/go-pwdhash"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/allisson/store/internal/errors"
)

// bcryptPrefixes identify hashes produced by bcrypt implementations.
var bcryptPrefixes = []string{"$2a$", "$2b$", "$2y$"}

// passwordService implements PasswordService using Argon2id for new hashes.
type passwordService struct {
	hasher *pwdhash.PasswordHasher
}

// HashPassword hashes a plain text password using Argon2id.
func (p *passwordService) HashPassword(plainPassword string) (string, error) {
	hashedPassword, err := p.hasher.Hash([]byte(plainPassword))
	if err != nil {
		return "", apperrors.Wrap(err, "failed to hash password")
	}
	return hashedPassword, nil
}

// ComparePassword performs a constant-time comparison between a plain password and its hash.
func (p *passwordService) ComparePassword(plainPassword string, hashedPassword string) bool {
	if isBcryptHash(hashedPassword) {
		return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainPassword)) == nil
	}

	ok, err := p.hasher.Verify([]byte(plainPassword), hashedPassword)
	if err != nil {
		return false
	}
	return ok
}

func isBcryptHash(hash string) bool {
	for _, prefix := range bcryptPrefixes {
		if strings.HasPrefix(hash, prefix) {
			return true
		}
	}
	return false
}

// NewPasswordService creates a new PasswordService instance using Argon2id hashing.
// Uses the Interactive policy since hashing happens on the login path.
func NewPasswordService() PasswordService {
	hasher, err := pwdhash.New(
		pwdhash.WithPolicy(pwdhash.PolicyInteractive),
	)
	if err != nil {
		// This should never happen with valid policy
		panic(err)
	}

	return &passwordService{
		hasher: hasher,
	}
}
