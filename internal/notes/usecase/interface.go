// Package usecase implements business logic orchestration for note management.
package usecase

import (
	"context"

	"github.com/google/uuid"

	notesDomain "github.com/allisson/sealbox/internal/notes/domain"
)

// NoteRepository defines the interface for Note persistence operations.
type NoteRepository interface {
	Create(ctx context.Context, note *notesDomain.Note) error
	GetByID(ctx context.Context, noteID uuid.UUID) (*notesDomain.Note, error)
	GetLast(ctx context.Context) (*notesDomain.Note, error)
	// GetSecretCiphertext returns the raw stored secret column without opening it.
	GetSecretCiphertext(ctx context.Context, noteID uuid.UUID) (*string, error)
	List(ctx context.Context, offset, limit int) ([]*notesDomain.Note, error)
	Count(ctx context.Context) (int64, error)
}

// NoteUseCase defines the interface for note management business logic.
type NoteUseCase interface {
	Create(ctx context.Context, title string, secret *string) (*notesDomain.Note, error)
	// Get retrieves a note with its secret field decrypted.
	Get(ctx context.Context, noteID uuid.UUID) (*notesDomain.Note, error)
	// GetLast retrieves the most recently created note with its secret field decrypted.
	GetLast(ctx context.Context) (*notesDomain.Note, error)
	// GetCiphertext retrieves the stored secret column as persisted, without decrypting.
	GetCiphertext(ctx context.Context, noteID uuid.UUID) (*string, error)
	// List retrieves note metadata (no secrets) plus the total note count.
	List(ctx context.Context, offset, limit int) ([]*notesDomain.Note, int64, error)
}
