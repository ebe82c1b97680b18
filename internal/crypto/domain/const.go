package domain

// Algorithm represents the cryptographic algorithm used for encryption.
//
// The service deliberately supports a single algorithm. Stored values carry no
// algorithm marker, so changing these parameters would silently break every
// ciphertext already at rest.
type Algorithm string

const (
	// AESGCM represents the AES-256-GCM authenticated encryption algorithm.
	//
	// AES-GCM (Advanced Encryption Standard in Galois/Counter Mode) combines
	// AES encryption with GMAC authentication, providing both confidentiality
	// and tamper detection for every protected field.
	AESGCM Algorithm = "aes-256-gcm"
)

// Fixed AES-256-GCM parameters shared by the cipher engine and the sealed box
// codec.
const (
	// KeySize is the data key length in bytes (256 bits).
	KeySize = 32

	// NonceSize is the initialization vector length in bytes (96 bits).
	NonceSize = 12

	// TagSize is the authentication tag length in bytes (128 bits). The tag is
	// appended to the ciphertext, so sealed ciphertext is always plaintext
	// length plus TagSize.
	TagSize = 16
)
