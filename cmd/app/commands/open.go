package commands

import (
	"context"
	"fmt"

	"github.com/jellydator/validation"

	"github.com/allisson/sealbox/internal/app"
	"github.com/allisson/sealbox/internal/config"
	customValidation "github.com/allisson/sealbox/internal/validation"
)

// RunOpen decrypts a stored value and prints the plaintext. The value is
// checked for the iv:ciphertext shape before any keeper or database access,
// so malformed input fails fast.
//
// Requirements: database must be migrated, KMS_KEY_URI must be set.
func RunOpen(ctx context.Context, io IOTuple, value string) error {
	if err := validation.Validate(value, validation.Required, customValidation.SealedBox); err != nil {
		return fmt.Errorf("invalid value: %w", err)
	}

	cfg := config.Load()

	container := app.NewContainer(cfg)
	logger := container.Logger()

	defer closeContainer(container, logger)

	fieldCodec, err := container.FieldCodec()
	if err != nil {
		return fmt.Errorf("failed to initialize field codec: %w", err)
	}

	plaintext, err := fieldCodec.FromStored(ctx, &value)
	if err != nil {
		return fmt.Errorf("failed to open value: %w", err)
	}

	fmt.Fprintln(io.Writer, *plaintext)
	return nil
}
