// Package domain defines the core cryptographic domain models for transparent
// field encryption.
//
// A single data key encrypts protected fields with AES-256-GCM. The key is
// generated on first use, wrapped by an external KMS keeper, and persisted so
// every process of the service resolves the same key. Encrypted values travel
// as sealed boxes, a printable two-part encoding of the initialization vector
// and the ciphertext.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// DataKey is the persisted record of a wrapped data key. The raw key material
// never appears on this struct; EncryptedKey holds the key as wrapped by the
// KMS keeper and is only unwrapped in memory at resolution time.
type DataKey struct {
	ID           uuid.UUID // Unique identifier (UUIDv7)
	Name         string    // Logical key name, unique per deployment
	Algorithm    Algorithm // Encryption algorithm the key is used with
	EncryptedKey []byte    // The data key wrapped by the KMS keeper
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewDataKey creates a data key record for the given wrapped key material.
func NewDataKey(name string, encryptedKey []byte) *DataKey {
	now := time.Now().UTC()

	return &DataKey{
		ID:           uuid.Must(uuid.NewV7()),
		Name:         name,
		Algorithm:    AESGCM,
		EncryptedKey: encryptedKey,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
