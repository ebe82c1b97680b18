// Package service implements the encryption subsystem: the AES-256-GCM cipher
// engine, data key resolution backed by a KMS keeper, and the field codec
// applied to protected columns at the persistence boundary.
package service

import (
	"context"

	cryptoDomain "github.com/allisson/sealbox/internal/crypto/domain"
)

// KeyProvider resolves the service data key as a ready-to-use cipher.
//
// Implementations must be safe for concurrent use and must guarantee that
// every caller, in every process, observes the same key material for the
// lifetime of the deployment.
type KeyProvider interface {
	// ResolveKey returns the cipher for the service data key, generating and
	// persisting the key on first use. Failures are reported as
	// cryptoDomain.ErrKeyUnavailable and leave no partial state behind.
	ResolveKey(ctx context.Context) (*AESGCMCipher, error)
}

// KeyRepository persists wrapped data keys.
type KeyRepository interface {
	// Create inserts a wrapped data key. Inserting a second key with the same
	// name fails the unique constraint with errors.ErrConflict.
	Create(ctx context.Context, dataKey *cryptoDomain.DataKey) error

	// GetByName returns the wrapped data key with the given name, or
	// errors.ErrNotFound if no such key exists.
	GetByName(ctx context.Context, name string) (*cryptoDomain.DataKey, error)
}
