// Package repository implements data persistence for notes with transparent
// encryption of the secret field. Repositories support both PostgreSQL and MySQL
// and invoke the field codec exactly at the secret_text column boundary: the
// rest of the application never sees the sealed form.
package repository

import (
	"context"
)

// FieldCodec converts a protected field between its in-memory plaintext form and
// its stored sealed form. A nil value passes through unchanged in both directions.
type FieldCodec interface {
	ToStored(ctx context.Context, plaintext *string) (*string, error)
	FromStored(ctx context.Context, stored *string) (*string, error)
}
