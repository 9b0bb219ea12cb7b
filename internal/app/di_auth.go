package app

import (
	"context"
	"fmt"
	"time"

	authHTTP "github.com/allisson/store/internal/auth/http"
	authService "github.com/allisson/store/internal/auth/service"
	authUseCase "github.com/allisson/store/internal/auth/usecase"
	userUseCase "github.com/allisson/store/internal/user/usecase"
)

// tokenSecretDecryptTimeout bounds the KMS call made while loading the token secret.
const tokenSecretDecryptTimeout = 30 * time.Second

// PasswordService returns the password hashing service.
func (c *Container) PasswordService() authService.PasswordService {
	c.passwordServiceInit.Do(func() {
		c.passwordService = authService.NewPasswordService()
	})
	return c.passwordService
}

// KeeperService returns the KMS keeper service.
func (c *Container) KeeperService() authService.KeeperService {
	c.keeperServiceInit.Do(func() {
		c.keeperService = authService.NewKeeperService()
	})
	return c.keeperService
}

// CredentialValidator returns the username deny-list validator.
func (c *Container) CredentialValidator() authService.CredentialValidator {
	c.credentialValidatorInit.Do(func() {
		c.credentialValidator = authService.NewCredentialValidator(c.config.BannedUsernames())
	})
	return c.credentialValidator
}

// TokenService returns the identity token codec.
func (c *Container) TokenService() (authService.TokenService, error) {
	var err error
	c.tokenServiceInit.Do(func() {
		c.tokenService, err = c.initTokenService()
		if err != nil {
			c.initErrors["tokenService"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["tokenService"]; exists {
		return nil, storedErr
	}
	return c.tokenService, nil
}

// IdentityDirectory returns the principal directory backed by the user repository.
func (c *Container) IdentityDirectory() (authUseCase.IdentityDirectory, error) {
	var err error
	c.identityDirectoryInit.Do(func() {
		c.identityDirectory, err = c.initIdentityDirectory()
		if err != nil {
			c.initErrors["identityDirectory"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["identityDirectory"]; exists {
		return nil, storedErr
	}
	return c.identityDirectory, nil
}

// CredentialVerifier returns the username and password verifier.
func (c *Container) CredentialVerifier() (authUseCase.CredentialVerifier, error) {
	var err error
	c.credentialVerifierInit.Do(func() {
		c.credentialVerifier, err = c.initCredentialVerifier()
		if err != nil {
			c.initErrors["credentialVerifier"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["credentialVerifier"]; exists {
		return nil, storedErr
	}
	return c.credentialVerifier, nil
}

// AuthUseCase returns the authentication use case.
func (c *Container) AuthUseCase() (authUseCase.AuthUseCase, error) {
	var err error
	c.authUseCaseInit.Do(func() {
		c.authUseCase, err = c.initAuthUseCase()
		if err != nil {
			c.initErrors["authUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["authUseCase"]; exists {
		return nil, storedErr
	}
	return c.authUseCase, nil
}

// RequestAuthenticator returns the per-request identity resolver.
func (c *Container) RequestAuthenticator() (authUseCase.RequestAuthenticator, error) {
	var err error
	c.requestAuthenticatorInit.Do(func() {
		c.requestAuthenticator, err = c.initRequestAuthenticator()
		if err != nil {
			c.initErrors["requestAuthenticator"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["requestAuthenticator"]; exists {
		return nil, storedErr
	}
	return c.requestAuthenticator, nil
}

// OwnershipAuthorizer returns the resource ownership authorizer.
func (c *Container) OwnershipAuthorizer() authUseCase.OwnershipAuthorizer {
	c.ownershipAuthorizerInit.Do(func() {
		c.ownershipAuthorizer = authUseCase.NewOwnershipAuthorizer()
	})
	return c.ownershipAuthorizer
}

// AuthHandler returns the HTTP handler for token issuance.
func (c *Container) AuthHandler() (*authHTTP.AuthHandler, error) {
	var err error
	c.authHandlerInit.Do(func() {
		c.authHandler, err = c.initAuthHandler()
		if err != nil {
			c.initErrors["authHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["authHandler"]; exists {
		return nil, storedErr
	}
	return c.authHandler, nil
}

// loadTokenSecret returns the signing secret, decrypting the KMS ciphertext when one is configured.
func (c *Container) loadTokenSecret() ([]byte, error) {
	if c.config.AuthTokenSecretCiphertext == "" {
		if c.config.AuthTokenSecret == "" {
			return nil, fmt.Errorf("AUTH_TOKEN_SECRET or AUTH_TOKEN_SECRET_CIPHERTEXT must be set")
		}
		return []byte(c.config.AuthTokenSecret), nil
	}

	if c.config.KMSKeyURI == "" {
		return nil, fmt.Errorf("KMS_KEY_URI is required to decrypt AUTH_TOKEN_SECRET_CIPHERTEXT")
	}

	ctx, cancel := context.WithTimeout(c.ctx, tokenSecretDecryptTimeout)
	defer cancel()

	secret, err := c.KeeperService().Decrypt(ctx, c.config.KMSKeyURI, c.config.AuthTokenSecretCiphertext)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt token secret: %w", err)
	}
	return secret, nil
}

// initTokenService creates the token codec from the configured secret and expiration.
func (c *Container) initTokenService() (authService.TokenService, error) {
	secret, err := c.loadTokenSecret()
	if err != nil {
		return nil, err
	}

	tokenService, err := authService.NewTokenService(secret, c.config.AuthTokenExpiration)
	if err != nil {
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}
	return tokenService, nil
}

// initIdentityDirectory exposes users as auth principals.
func (c *Container) initIdentityDirectory() (authUseCase.IdentityDirectory, error) {
	userRepository, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for identity directory: %w", err)
	}
	return userUseCase.NewIdentityDirectory(userRepository), nil
}

// initCredentialVerifier creates the directory-backed credential verifier.
func (c *Container) initCredentialVerifier() (authUseCase.CredentialVerifier, error) {
	directory, err := c.IdentityDirectory()
	if err != nil {
		return nil, fmt.Errorf("failed to get identity directory for credential verifier: %w", err)
	}
	return authUseCase.NewCredentialVerifier(directory, c.PasswordService()), nil
}

// initAuthUseCase creates the authentication use case, wrapped with metrics when enabled.
func (c *Container) initAuthUseCase() (authUseCase.AuthUseCase, error) {
	credentialVerifier, err := c.CredentialVerifier()
	if err != nil {
		return nil, fmt.Errorf("failed to get credential verifier for auth use case: %w", err)
	}

	directory, err := c.IdentityDirectory()
	if err != nil {
		return nil, fmt.Errorf("failed to get identity directory for auth use case: %w", err)
	}

	tokenService, err := c.TokenService()
	if err != nil {
		return nil, fmt.Errorf("failed to get token service for auth use case: %w", err)
	}

	baseUseCase := authUseCase.NewAuthUseCase(
		c.CredentialValidator(),
		credentialVerifier,
		directory,
		tokenService,
	)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for auth use case: %w", err)
		}
		return authUseCase.NewAuthUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initRequestAuthenticator creates the request authenticator.
func (c *Container) initRequestAuthenticator() (authUseCase.RequestAuthenticator, error) {
	tokenService, err := c.TokenService()
	if err != nil {
		return nil, fmt.Errorf("failed to get token service for request authenticator: %w", err)
	}

	directory, err := c.IdentityDirectory()
	if err != nil {
		return nil, fmt.Errorf("failed to get identity directory for request authenticator: %w", err)
	}

	return authUseCase.NewRequestAuthenticator(tokenService, directory, c.Logger()), nil
}

// initAuthHandler creates the token issuance handler.
func (c *Container) initAuthHandler() (*authHTTP.AuthHandler, error) {
	useCase, err := c.AuthUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get auth use case for auth handler: %w", err)
	}
	return authHTTP.NewAuthHandler(useCase, c.Logger()), nil
}
