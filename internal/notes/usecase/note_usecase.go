package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/sealbox/internal/database"
	notesDomain "github.com/allisson/sealbox/internal/notes/domain"
)

// noteUseCase implements the NoteUseCase interface for managing notes.
type noteUseCase struct {
	txManager database.TxManager
	noteRepo  NoteRepository
}

// Create builds a new note and persists it. The repository seals the secret
// field on its way to storage.
func (n *noteUseCase) Create(
	ctx context.Context,
	title string,
	secret *string,
) (*notesDomain.Note, error) {
	now := time.Now().UTC()
	note := &notesDomain.Note{
		ID:        uuid.Must(uuid.NewV7()),
		Title:     title,
		Secret:    secret,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := n.txManager.WithTx(ctx, func(txCtx context.Context) error {
		return n.noteRepo.Create(txCtx, note)
	})
	if err != nil {
		return nil, err
	}

	return note, nil
}

// Get retrieves a note by ID with its secret field decrypted.
func (n *noteUseCase) Get(ctx context.Context, noteID uuid.UUID) (*notesDomain.Note, error) {
	return n.noteRepo.GetByID(ctx, noteID)
}

// GetLast retrieves the most recently created note with its secret field decrypted.
func (n *noteUseCase) GetLast(ctx context.Context) (*notesDomain.Note, error) {
	return n.noteRepo.GetLast(ctx)
}

// GetCiphertext retrieves the stored secret column as persisted, without decrypting.
func (n *noteUseCase) GetCiphertext(ctx context.Context, noteID uuid.UUID) (*string, error) {
	return n.noteRepo.GetSecretCiphertext(ctx, noteID)
}

// List retrieves note metadata with pagination plus the total note count.
func (n *noteUseCase) List(
	ctx context.Context,
	offset, limit int,
) ([]*notesDomain.Note, int64, error) {
	notes, err := n.noteRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	count, err := n.noteRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	return notes, count, nil
}

// NewNoteUseCase creates a new note use case instance with the provided dependencies.
func NewNoteUseCase(txManager database.TxManager, noteRepo NoteRepository) NoteUseCase {
	return &noteUseCase{
		txManager: txManager,
		noteRepo:  noteRepo,
	}
}
