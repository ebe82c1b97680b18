package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/allisson/sealbox/internal/app"
	"github.com/allisson/sealbox/internal/config"
)

// RunCreateKey provisions the data key ahead of first request traffic.
// Resolving the key generates and persists it when it does not exist yet, so
// running this once after migrate means the first API request never pays the
// provisioning round trip.
//
// Requirements: database must be migrated, KMS_KEY_URI must be set.
func RunCreateKey(ctx context.Context) error {
	cfg := config.Load()

	container := app.NewContainer(cfg)
	logger := container.Logger()

	defer closeContainer(container, logger)

	keyProvider, err := container.KeyProvider()
	if err != nil {
		return fmt.Errorf("failed to initialize key provider: %w", err)
	}

	cipher, err := keyProvider.ResolveKey(ctx)
	if err != nil {
		return fmt.Errorf("failed to provision data key: %w", err)
	}

	logger.Info("data key ready",
		slog.String("key_name", cfg.EncryptionKeyName),
		slog.String("key_id", cipher.KeyID()),
	)

	return nil
}
