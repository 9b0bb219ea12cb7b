package commands

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"

	authService "github.com/allisson/store/internal/auth/service"
)

// generatedSecretSize is the length of generated token secrets before base64 encoding.
const generatedSecretSize = 32

// RunEncryptTokenSecret encrypts the token signing secret with the KMS key at kmsKeyURI and
// prints the environment variables that make the server decrypt it at startup.
// When secret is empty a random one is generated.
func RunEncryptTokenSecret(
	ctx context.Context,
	keeperService authService.KeeperService,
	logger *slog.Logger,
	writer io.Writer,
	secret string,
	kmsKeyURI string,
) error {
	if kmsKeyURI == "" {
		return fmt.Errorf(
			"--kms-key-uri is required\n\nFor local development, use:\n  --kms-key-uri=\"base64key://<32-byte-base64-key>\"",
		)
	}

	if secret == "" {
		raw := make([]byte, generatedSecretSize)
		if _, err := rand.Read(raw); err != nil {
			return fmt.Errorf("failed to generate token secret: %w", err)
		}
		secret = base64.StdEncoding.EncodeToString(raw)
	}

	if len(secret) < authService.MinTokenSecretLength {
		return fmt.Errorf("token secret must be at least %d bytes", authService.MinTokenSecretLength)
	}

	ciphertext, err := keeperService.Encrypt(ctx, kmsKeyURI, []byte(secret))
	if err != nil {
		return fmt.Errorf("failed to encrypt token secret: %w", err)
	}

	_, _ = fmt.Fprintln(writer, "# Token Secret Configuration (KMS Mode)")
	_, _ = fmt.Fprintln(writer, "# Copy these environment variables to your .env file or secrets manager")
	_, _ = fmt.Fprintln(writer)
	_, _ = fmt.Fprintf(writer, "KMS_KEY_URI=\"%s\"\n", kmsKeyURI)
	_, _ = fmt.Fprintf(writer, "AUTH_TOKEN_SECRET_CIPHERTEXT=\"%s\"\n", ciphertext)

	logger.Info("token secret encrypted")
	return nil
}
