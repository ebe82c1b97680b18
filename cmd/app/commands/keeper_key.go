package commands

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	cryptoDomain "github.com/allisson/sealbox/internal/crypto/domain"
)

// RunKeeperKey generates a cryptographically secure 256-bit key and prints it
// as a base64key:// URI for the local keeper. Key material is zeroed from
// memory after encoding.
//
// The resulting URI is suitable for KMS_KEY_URI in development and tests.
// Production deployments should point KMS_KEY_URI at a cloud KMS
// (gcpkms://, awskms://, azurekeyvault://, hashivault://) instead.
func RunKeeperKey(io IOTuple) error {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return fmt.Errorf("failed to generate keeper key: %w", err)
	}

	encoded := base64.URLEncoding.EncodeToString(key)
	cryptoDomain.Zero(key)

	fmt.Fprintln(io.Writer, "# Local keeper key. Never use base64key:// in production.")
	fmt.Fprintf(io.Writer, "KMS_KEY_URI=\"base64key://%s\"\n", encoded)

	return nil
}
