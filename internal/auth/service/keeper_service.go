package service

import (
	"context"
	"encoding/base64"
	"fmt"

	"gocloud.dev/secrets"

	// Register all KMS provider drivers
	_ "gocloud.dev/secrets/awskms"
	_ "gocloud.dev/secrets/azurekeyvault"
	_ "gocloud.dev/secrets/gcpkms"
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"
)

// keeperService implements KeeperService using gocloud.dev/secrets.
type keeperService struct{}

// NewKeeperService creates a new KeeperService instance.
func NewKeeperService() KeeperService {
	return &keeperService{}
}

// Encrypt opens the keeper at keyURI and encrypts plaintext.
// Supports: gcpkms://, awskms://, azurekeyvault://, hashivault://, base64key://
func (k *keeperService) Encrypt(ctx context.Context, keyURI string, plaintext []byte) (string, error) {
	keeper, err := k.openKeeper(ctx, keyURI)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = keeper.Close()
	}()

	ciphertext, err := keeper.Encrypt(ctx, plaintext)
	if err != nil {
		return "", fmt.Errorf("failed to encrypt with KMS keeper: %w", err)
	}
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

// Decrypt opens the keeper at keyURI and decrypts the base64 ciphertext.
func (k *keeperService) Decrypt(ctx context.Context, keyURI string, ciphertext string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return nil, fmt.Errorf("failed to decode ciphertext: %w", err)
	}

	keeper, err := k.openKeeper(ctx, keyURI)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = keeper.Close()
	}()

	plaintext, err := keeper.Decrypt(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt with KMS keeper: %w", err)
	}
	return plaintext, nil
}

func (k *keeperService) openKeeper(ctx context.Context, keyURI string) (*secrets.Keeper, error) {
	keeper, err := secrets.OpenKeeper(ctx, keyURI)
	if err != nil {
		return nil, fmt.Errorf("failed to open KMS keeper: %w", err)
	}
	return keeper, nil
}
