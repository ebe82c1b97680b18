package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"

	cryptoDomain "github.com/allisson/sealbox/internal/crypto/domain"
	"github.com/allisson/sealbox/internal/database"
	apperrors "github.com/allisson/sealbox/internal/errors"
)

// MySQLKeyRepository implements data key persistence for MySQL.
// Uses BINARY(16) for UUIDs and BLOB for wrapped key bytes.
type MySQLKeyRepository struct {
	db *sql.DB
}

// Create inserts a new wrapped data key into the MySQL database.
func (m *MySQLKeyRepository) Create(ctx context.Context, dataKey *cryptoDomain.DataKey) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO data_keys (id, name, algorithm, encrypted_key, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?)`

	id, err := dataKey.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal data key id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		dataKey.Name,
		dataKey.Algorithm,
		dataKey.EncryptedKey,
		dataKey.CreatedAt,
		dataKey.UpdatedAt,
	)
	if err != nil {
		// MySQL error number 1062 is a duplicate entry on the unique name
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return cryptoDomain.ErrDataKeyAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create data key")
	}
	return nil
}

// GetByName retrieves a wrapped data key by its unique name.
func (m *MySQLKeyRepository) GetByName(ctx context.Context, name string) (*cryptoDomain.DataKey, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, name, algorithm, encrypted_key, created_at, updated_at
			  FROM data_keys WHERE name = ?`

	var dataKey cryptoDomain.DataKey
	var id []byte

	err := querier.QueryRowContext(ctx, query, name).Scan(
		&id,
		&dataKey.Name,
		&dataKey.Algorithm,
		&dataKey.EncryptedKey,
		&dataKey.CreatedAt,
		&dataKey.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, cryptoDomain.ErrDataKeyNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get data key by name")
	}

	if err := dataKey.ID.UnmarshalBinary(id); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal data key id")
	}

	return &dataKey, nil
}

// NewMySQLKeyRepository creates a new MySQL data key repository.
func NewMySQLKeyRepository(db *sql.DB) *MySQLKeyRepository {
	return &MySQLKeyRepository{db: db}
}
