package commands

import (
	"context"
	"fmt"

	"github.com/allisson/sealbox/internal/app"
	"github.com/allisson/sealbox/internal/config"
)

// RunSeal encrypts a value with the service data key and prints the stored
// representation, the same form the notes repository writes to the secret
// column.
//
// Requirements: database must be migrated, KMS_KEY_URI must be set.
func RunSeal(ctx context.Context, io IOTuple, value string) error {
	cfg := config.Load()

	container := app.NewContainer(cfg)
	logger := container.Logger()

	defer closeContainer(container, logger)

	fieldCodec, err := container.FieldCodec()
	if err != nil {
		return fmt.Errorf("failed to initialize field codec: %w", err)
	}

	stored, err := fieldCodec.ToStored(ctx, &value)
	if err != nil {
		return fmt.Errorf("failed to seal value: %w", err)
	}

	fmt.Fprintln(io.Writer, *stored)
	return nil
}
