package domain

import (
	"context"
)

// Keeper wraps and unwraps data key material through an external key
// management service. It mirrors the surface of gocloud.dev/secrets.Keeper,
// so any secrets driver supported by that library can back it.
type Keeper interface {
	// Encrypt wraps plaintext key material for persistence.
	Encrypt(ctx context.Context, plaintext []byte) ([]byte, error)

	// Decrypt unwraps previously wrapped key material.
	Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error)

	// Close releases resources held by the underlying driver.
	Close() error
}
