package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/allisson/sealbox/internal/database"
	apperrors "github.com/allisson/sealbox/internal/errors"
	notesDomain "github.com/allisson/sealbox/internal/notes/domain"
)

// PostgreSQLNoteRepository implements Note persistence for PostgreSQL databases.
// The secret field is sealed through the codec on write and opened on read; the
// stored column holds an opaque text value.
type PostgreSQLNoteRepository struct {
	db    *sql.DB
	codec FieldCodec
}

// Create inserts a new note, sealing the secret field before it reaches the database.
func (p *PostgreSQLNoteRepository) Create(ctx context.Context, note *notesDomain.Note) error {
	querier := database.GetTx(ctx, p.db)

	stored, err := p.codec.ToStored(ctx, note.Secret)
	if err != nil {
		return err
	}

	query := `INSERT INTO notes (id, title, secret_text, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5)`

	_, err = querier.ExecContext(
		ctx,
		query,
		note.ID,
		note.Title,
		stored,
		note.CreatedAt,
		note.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create note")
	}
	return nil
}

// GetByID retrieves a note by its identifier, opening the sealed secret field.
// Returns ErrNoteNotFound when no note exists with the given ID.
func (p *PostgreSQLNoteRepository) GetByID(
	ctx context.Context,
	noteID uuid.UUID,
) (*notesDomain.Note, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, title, secret_text, created_at, updated_at
			  FROM notes
			  WHERE id = $1
			  LIMIT 1`

	return p.scanNote(ctx, querier.QueryRowContext(ctx, query, noteID))
}

// GetLast retrieves the most recently created note. UUIDv7 primary keys are
// time-ordered, so the highest ID is the newest note.
func (p *PostgreSQLNoteRepository) GetLast(ctx context.Context) (*notesDomain.Note, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, title, secret_text, created_at, updated_at
			  FROM notes
			  ORDER BY id DESC
			  LIMIT 1`

	return p.scanNote(ctx, querier.QueryRowContext(ctx, query))
}

// GetSecretCiphertext retrieves the raw stored secret column without opening it.
// Returns nil when the note has no secret.
func (p *PostgreSQLNoteRepository) GetSecretCiphertext(
	ctx context.Context,
	noteID uuid.UUID,
) (*string, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT secret_text FROM notes WHERE id = $1 LIMIT 1`

	var stored *string
	err := querier.QueryRowContext(ctx, query, noteID).Scan(&stored)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, notesDomain.ErrNoteNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get note ciphertext")
	}

	return stored, nil
}

// List retrieves note metadata ordered by creation time with pagination.
// Secrets are not selected: enumeration never touches the sealed column.
func (p *PostgreSQLNoteRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*notesDomain.Note, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, title, created_at, updated_at
			  FROM notes
			  ORDER BY id ASC
			  LIMIT $1 OFFSET $2`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list notes")
	}
	defer func() {
		_ = rows.Close()
	}()

	// Initialize empty slice to avoid returning nil for empty results
	notes := make([]*notesDomain.Note, 0)
	for rows.Next() {
		var note notesDomain.Note

		err := rows.Scan(
			&note.ID,
			&note.Title,
			&note.CreatedAt,
			&note.UpdatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan note")
		}

		notes = append(notes, &note)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate notes")
	}

	return notes, nil
}

// Count returns the total number of notes.
func (p *PostgreSQLNoteRepository) Count(ctx context.Context) (int64, error) {
	querier := database.GetTx(ctx, p.db)

	var count int64
	err := querier.QueryRowContext(ctx, `SELECT COUNT(*) FROM notes`).Scan(&count)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to count notes")
	}

	return count, nil
}

// scanNote scans a single note row and opens the sealed secret field.
func (p *PostgreSQLNoteRepository) scanNote(
	ctx context.Context,
	row *sql.Row,
) (*notesDomain.Note, error) {
	var note notesDomain.Note
	var stored *string

	err := row.Scan(
		&note.ID,
		&note.Title,
		&stored,
		&note.CreatedAt,
		&note.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, notesDomain.ErrNoteNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get note")
	}

	note.Secret, err = p.codec.FromStored(ctx, stored)
	if err != nil {
		return nil, err
	}

	return &note, nil
}

// NewPostgreSQLNoteRepository creates a new PostgreSQL Note repository instance.
func NewPostgreSQLNoteRepository(db *sql.DB, codec FieldCodec) *PostgreSQLNoteRepository {
	return &PostgreSQLNoteRepository{db: db, codec: codec}
}
