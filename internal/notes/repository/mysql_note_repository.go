package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/allisson/sealbox/internal/database"
	apperrors "github.com/allisson/sealbox/internal/errors"
	notesDomain "github.com/allisson/sealbox/internal/notes/domain"
)

// MySQLNoteRepository implements Note persistence for MySQL databases.
// UUIDs are stored as BINARY(16); BINARY(16) UUIDv7 values keep their time order.
type MySQLNoteRepository struct {
	db    *sql.DB
	codec FieldCodec
}

// Create inserts a new note, sealing the secret field before it reaches the database.
func (m *MySQLNoteRepository) Create(ctx context.Context, note *notesDomain.Note) error {
	querier := database.GetTx(ctx, m.db)

	stored, err := m.codec.ToStored(ctx, note.Secret)
	if err != nil {
		return err
	}

	id, err := note.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal note id")
	}

	query := `INSERT INTO notes (id, title, secret_text, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?)`

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
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
func (m *MySQLNoteRepository) GetByID(
	ctx context.Context,
	noteID uuid.UUID,
) (*notesDomain.Note, error) {
	querier := database.GetTx(ctx, m.db)

	id, err := noteID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal note id")
	}

	query := `SELECT id, title, secret_text, created_at, updated_at
			  FROM notes
			  WHERE id = ?
			  LIMIT 1`

	return m.scanNote(ctx, querier.QueryRowContext(ctx, query, id))
}

// GetLast retrieves the most recently created note.
func (m *MySQLNoteRepository) GetLast(ctx context.Context) (*notesDomain.Note, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, title, secret_text, created_at, updated_at
			  FROM notes
			  ORDER BY id DESC
			  LIMIT 1`

	return m.scanNote(ctx, querier.QueryRowContext(ctx, query))
}

// GetSecretCiphertext retrieves the raw stored secret column without opening it.
func (m *MySQLNoteRepository) GetSecretCiphertext(
	ctx context.Context,
	noteID uuid.UUID,
) (*string, error) {
	querier := database.GetTx(ctx, m.db)

	id, err := noteID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal note id")
	}

	query := `SELECT secret_text FROM notes WHERE id = ? LIMIT 1`

	var stored *string
	err = querier.QueryRowContext(ctx, query, id).Scan(&stored)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, notesDomain.ErrNoteNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get note ciphertext")
	}

	return stored, nil
}

// List retrieves note metadata ordered by creation time with pagination.
func (m *MySQLNoteRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*notesDomain.Note, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, title, created_at, updated_at
			  FROM notes
			  ORDER BY id ASC
			  LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list notes")
	}
	defer func() {
		_ = rows.Close()
	}()

	notes := make([]*notesDomain.Note, 0)
	for rows.Next() {
		var note notesDomain.Note
		var id []byte

		err := rows.Scan(
			&id,
			&note.Title,
			&note.CreatedAt,
			&note.UpdatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan note")
		}

		if err := note.ID.UnmarshalBinary(id); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal note id")
		}

		notes = append(notes, &note)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate notes")
	}

	return notes, nil
}

// Count returns the total number of notes.
func (m *MySQLNoteRepository) Count(ctx context.Context) (int64, error) {
	querier := database.GetTx(ctx, m.db)

	var count int64
	err := querier.QueryRowContext(ctx, `SELECT COUNT(*) FROM notes`).Scan(&count)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to count notes")
	}

	return count, nil
}

// scanNote scans a single note row and opens the sealed secret field.
func (m *MySQLNoteRepository) scanNote(
	ctx context.Context,
	row *sql.Row,
) (*notesDomain.Note, error) {
	var note notesDomain.Note
	var id []byte
	var stored *string

	err := row.Scan(
		&id,
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

	if err := note.ID.UnmarshalBinary(id); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal note id")
	}

	note.Secret, err = m.codec.FromStored(ctx, stored)
	if err != nil {
		return nil, err
	}

	return &note, nil
}

// NewMySQLNoteRepository creates a new MySQL Note repository instance.
func NewMySQLNoteRepository(db *sql.DB, codec FieldCodec) *MySQLNoteRepository {
	return &MySQLNoteRepository{db: db, codec: codec}
}
