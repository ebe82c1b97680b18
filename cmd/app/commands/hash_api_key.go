package commands

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"github.com/allisson/go-pwdhash"
)

// RunHashAPIKey prints the Argon2id hash of an API key for the API_KEY_HASH
// setting. When plainKey is empty a cryptographically secure random key is
// generated and printed alongside its hash; the plain key is shown exactly
// once and never stored.
func RunHashAPIKey(io IOTuple, plainKey string) error {
	generated := false
	if plainKey == "" {
		randomBytes := make([]byte, 32)
		if _, err := rand.Read(randomBytes); err != nil {
			return fmt.Errorf("failed to generate api key: %w", err)
		}
		plainKey = base64.URLEncoding.EncodeToString(randomBytes)
		generated = true
	}

	hasher, err := pwdhash.New(
		pwdhash.WithPolicy(pwdhash.PolicyModerate),
	)
	if err != nil {
		return fmt.Errorf("failed to create hasher: %w", err)
	}

	hash, err := hasher.Hash([]byte(plainKey))
	if err != nil {
		return fmt.Errorf("failed to hash api key: %w", err)
	}

	if generated {
		fmt.Fprintln(io.Writer, "# Generated API key. Store it safely, it will not be shown again.")
		fmt.Fprintf(io.Writer, "API_KEY=%q\n", plainKey)
	}
	fmt.Fprintf(io.Writer, "API_KEY_HASH=%q\n", hash)

	return nil
}
