package domain

import (
	"github.com/allisson/sealbox/internal/errors"
)

// Cryptographic operation error definitions.
//
// Every failure in the encryption subsystem maps to exactly one of these four
// kinds so callers can react to the kind without parsing messages. Messages
// never include key material, plaintext, or plaintext fragments.
var (
	// ErrKeyUnavailable indicates the data key could not be resolved.
	//
	// This error can occur due to:
	//   - The KMS keeper cannot be reached or refuses to unwrap the key
	//   - The key store is unreachable or rejects reads and writes
	//   - Wrapped key material failed to round-trip through the keeper
	//
	// The condition is environmental. Retrying after the dependency recovers
	// is safe; no state is left behind by a failed resolution.
	//
	// HTTP Status: 503 Service Unavailable
	ErrKeyUnavailable = errors.Wrap(errors.ErrUnavailable, "encryption key unavailable")

	// ErrMalformedCiphertext indicates a stored value does not parse as a
	// sealed box.
	//
	// This error is structural, detected before any cryptographic work:
	//   - Empty value or missing ":" delimiter
	//   - Empty initialization vector or ciphertext segment
	//   - A segment that is not valid standard base64
	//   - An initialization vector that is not exactly NonceSize bytes
	//
	// HTTP Status: 422 Unprocessable Entity
	ErrMalformedCiphertext = errors.Wrap(errors.ErrInvalidInput, "malformed ciphertext")

	// ErrAuthenticationFailed indicates ciphertext failed AES-GCM tag
	// verification.
	//
	// This error can occur due to:
	//   - Ciphertext has been tampered with or corrupted at rest
	//   - The value was sealed under a different key
	//   - The initialization vector does not match the ciphertext
	//
	// For security reasons, the specific cause is not disclosed and no partial
	// plaintext is ever returned.
	//
	// HTTP Status: 500 Internal Server Error
	ErrAuthenticationFailed = errors.New("ciphertext authentication failed")

	// ErrCipherFailure indicates a low-level cipher operation failed, such as
	// key schedule initialization or nonce generation. These failures are
	// unexpected on a healthy system.
	//
	// HTTP Status: 500 Internal Server Error
	ErrCipherFailure = errors.New("cipher operation failed")
)

// Key store error definitions. These stay internal to key resolution; the
// provider folds them into the create-on-first-use flow or reports
// ErrKeyUnavailable.
var (
	// ErrDataKeyNotFound indicates no data key exists under the given name.
	ErrDataKeyNotFound = errors.Wrap(errors.ErrNotFound, "data key not found")

	// ErrDataKeyAlreadyExists indicates a data key with the given name was
	// inserted concurrently. The caller should load the stored key instead.
	ErrDataKeyAlreadyExists = errors.Wrap(errors.ErrConflict, "data key already exists")
)
