package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"

	cryptoDomain "github.com/allisson/sealbox/internal/crypto/domain"
	"github.com/allisson/sealbox/internal/errors"
)

// AESGCMCipher seals and opens protected field values using AES-256-GCM
// (Advanced Encryption Standard with Galois/Counter Mode).
//
// AES-GCM provides authenticated encryption, combining the confidentiality of
// AES with the authenticity of GMAC. Every sealed value is bound to its
// authentication tag, so tampering with stored ciphertext is detected before
// any plaintext is released.
//
// Security properties:
//   - 256-bit key size
//   - 12-byte initialization vector, freshly random per seal
//   - 16-byte authentication tag appended to the ciphertext
//   - No additional authenticated data; the stored value is self-contained
//     and survives row moves, backup restores, and bulk copies
//
// Thread safety:
//
//	The cipher instance is stateless and safe for concurrent use from
//	multiple goroutines. Each seal operation draws its initialization vector
//	independently from crypto/rand.
//
// Example usage:
//
//	cipher, err := NewAESGCM(keyID, key)
//	if err != nil {
//	    return err
//	}
//
//	box, err := cipher.Seal([]byte("sensitive"))
//	if err != nil {
//	    return err
//	}
//	stored := box.Encode()
//
//	box, err = domain.DecodeSealedBox(stored)
//	if err != nil {
//	    return err
//	}
//	plaintext, err := cipher.Open(box)
type AESGCMCipher struct {
	keyID string
	aead  cipher.AEAD
}

// NewAESGCM creates an AES-256-GCM cipher bound to a key identifier.
//
// The key must be exactly 32 bytes (256 bits). The constructor copies the key
// into the cipher's internal schedule, so callers can zero the input slice as
// soon as it returns. The key identifier travels with the cipher for logging
// and diagnostics; it carries no secret material.
//
// Parameters:
//   - keyID: Stable identifier of the key, never the key itself
//   - key: A 32-byte (256-bit) encryption key
//
// Returns:
//   - A cipher ready for sealing and opening
//   - cryptoDomain.ErrCipherFailure if the key size is invalid or cipher
//     initialization fails
func NewAESGCM(keyID string, key []byte) (*AESGCMCipher, error) {
	if len(key) != cryptoDomain.KeySize {
		return nil, errors.Wrap(cryptoDomain.ErrCipherFailure, "key must be exactly 32 bytes")
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Wrap(cryptoDomain.ErrCipherFailure, "failed to create AES cipher")
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, errors.Wrap(cryptoDomain.ErrCipherFailure, "failed to create GCM")
	}

	return &AESGCMCipher{keyID: keyID, aead: aead}, nil
}

// KeyID returns the stable identifier of the key behind this cipher.
func (a *AESGCMCipher) KeyID() string {
	return a.keyID
}

// Seal encrypts plaintext under a fresh initialization vector.
//
// The vector is drawn from crypto/rand on every call and is never reused or
// derived from the plaintext. The returned box carries the vector and the
// ciphertext with the authentication tag appended; an empty plaintext is
// valid and seals to a tag-only ciphertext.
//
// Parameters:
//   - plaintext: The data to encrypt (can be empty)
//
// Returns:
//   - The sealed box ready for encoding
//   - cryptoDomain.ErrCipherFailure if vector generation fails
func (a *AESGCMCipher) Seal(plaintext []byte) (*cryptoDomain.SealedBox, error) {
	iv := make([]byte, a.aead.NonceSize())
	if _, err := rand.Read(iv); err != nil {
		return nil, errors.Wrap(cryptoDomain.ErrCipherFailure, "failed to generate initialization vector")
	}

	ciphertext := a.aead.Seal(nil, iv, plaintext, nil)

	return &cryptoDomain.SealedBox{IV: iv, Ciphertext: ciphertext}, nil
}

// Open verifies and decrypts a sealed box.
//
// Decryption is all-or-nothing: plaintext is returned only when the
// authentication tag verifies against the entire ciphertext. Any failure,
// including a box sealed under a different key or a corrupted vector, is
// reported as cryptoDomain.ErrAuthenticationFailed with no detail about the
// cause and no partial plaintext.
//
// Parameters:
//   - box: A decoded sealed box
//
// Returns:
//   - The recovered plaintext
//   - cryptoDomain.ErrAuthenticationFailed if verification fails
func (a *AESGCMCipher) Open(box *cryptoDomain.SealedBox) ([]byte, error) {
	if box == nil || len(box.IV) != a.aead.NonceSize() {
		return nil, cryptoDomain.ErrAuthenticationFailed
	}

	plaintext, err := a.aead.Open(nil, box.IV, box.Ciphertext, nil)
	if err != nil {
		return nil, cryptoDomain.ErrAuthenticationFailed
	}

	return plaintext, nil
}
