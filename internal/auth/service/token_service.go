package service

import (
	"crypto/sha256"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/hkdf"

	authDomain "github.com/allisson/store/internal/auth/domain"
	apperrors "github.com/allisson/store/internal/errors"
)

const (
	// MinTokenSecretLength is the minimum accepted length of the configured signing secret.
	MinTokenSecretLength = 32

	// tokenSigningInfo is the HKDF info label for the token signing key.
	tokenSigningInfo = "store-token-signing-v1"

	signingKeySize = 32
)

// TokenServiceOption configures a token service.
type TokenServiceOption func(*tokenService)

// WithClock overrides the time source used for issuing and validating tokens.
func WithClock(now func() time.Time) TokenServiceOption {
	return func(s *tokenService) {
		s.now = now
	}
}

// tokenService implements TokenService with HS256 JWTs.
type tokenService struct {
	signingKey []byte
	ttl        time.Duration
	now        func() time.Time
	parser     *jwt.Parser
}

// NewTokenService creates a TokenService signing with a key derived from secret via HKDF-SHA256.
// The secret must be at least MinTokenSecretLength bytes and ttl must be positive.
func NewTokenService(secret []byte, ttl time.Duration, opts ...TokenServiceOption) (TokenService, error) {
	if len(secret) < MinTokenSecretLength {
		return nil, apperrors.Wrapf(
			apperrors.ErrInvalidInput,
			"token secret must be at least %d bytes",
			MinTokenSecretLength,
		)
	}
	if ttl <= 0 {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "token ttl must be positive")
	}

	signingKey, err := deriveSigningKey(secret)
	if err != nil {
		return nil, err
	}

	s := &tokenService{
		signingKey: signingKey,
		ttl:        ttl,
		now:        time.Now,
		// Expiry is checked against s.now in ExtractSubject.
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithoutClaimsValidation(),
			jwt.WithStrictDecoding(),
		),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// deriveSigningKey derives a 32-byte HMAC key from the configured secret.
func deriveSigningKey(secret []byte) ([]byte, error) {
	reader := hkdf.New(sha256.New, secret, nil, []byte(tokenSigningInfo))
	key := make([]byte, signingKeySize)
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, apperrors.Wrap(err, "failed to derive token signing key")
	}
	return key, nil
}

// Issue signs a token that stays valid for at least ttl after the current time.
// JWT numeric dates have whole-second precision, so iat is rounded down and exp up.
func (s *tokenService) Issue(subject string) (*authDomain.IssuedToken, error) {
	if strings.TrimSpace(subject) == "" {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "token subject must not be blank")
	}

	now := s.now().UTC()
	issuedAt := now.Truncate(time.Second)
	expiresAt := ceilSecond(now.Add(s.ttl))

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to sign token")
	}

	return &authDomain.IssuedToken{
		Token:     signed,
		IssuedAt:  issuedAt,
		ExpiresAt: expiresAt,
	}, nil
}

// ceilSecond rounds t up to the next whole second.
func ceilSecond(t time.Time) time.Time {
	truncated := t.Truncate(time.Second)
	if truncated.Equal(t) {
		return t
	}
	return truncated.Add(time.Second)
}

// Validate reports whether the token is authentic, unexpired and bound to expectedSubject.
func (s *tokenService) Validate(token string, expectedSubject string) bool {
	subject, err := s.ExtractSubject(token)
	if err != nil {
		return false
	}
	return subject == expectedSubject
}

// ExtractSubject returns the token subject after verifying its signature.
func (s *tokenService) ExtractSubject(token string) (string, error) {
	claims, err := s.parse(token)
	if err != nil {
		return "", err
	}

	if !s.now().Before(claims.ExpiresAt.Time) {
		return claims.Subject, authDomain.ErrTokenExpired
	}

	return claims.Subject, nil
}

// parse decodes the token and verifies its HS256 signature.
func (s *tokenService) parse(token string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := s.parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.signingKey, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
			return nil, authDomain.ErrTokenInvalidSignature
		default:
			return nil, authDomain.ErrTokenMalformed
		}
	}

	if claims.Subject == "" || claims.ExpiresAt == nil {
		return nil, authDomain.ErrTokenMalformed
	}

	return claims, nil
}
