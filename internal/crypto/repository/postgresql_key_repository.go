// Package repository implements data persistence for wrapped data keys.
//
// The service data key is stored exactly once per name, wrapped by the KMS
// keeper before it reaches the database. Repositories never see raw key
// material.
//
// # Database Support
//
// Each repository type has two implementations:
//   - PostgreSQL: Uses the native UUID type and BYTEA for wrapped key bytes
//   - MySQL: Uses BINARY(16) for UUIDs and BLOB for wrapped key bytes
//
// # Concurrency
//
// The data_keys table carries a unique constraint on name. Concurrent
// first-use creations race on the insert; losers receive a conflict error and
// are expected to load the stored row, so exactly one key ever exists per
// name across all processes.
//
// # Transaction Support
//
// All repositories support transaction-aware operations via database.GetTx().
// When called within a transaction context, repositories automatically use
// the transaction connection.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	cryptoDomain "github.com/allisson/sealbox/internal/crypto/domain"
	"github.com/allisson/sealbox/internal/database"
	apperrors "github.com/allisson/sealbox/internal/errors"
)

// PostgreSQLKeyRepository implements data key persistence for PostgreSQL.
//
// Database schema requirements:
//   - id: UUID PRIMARY KEY
//   - name: TEXT/VARCHAR with a UNIQUE constraint
//   - algorithm: TEXT/VARCHAR (e.g., "aes-256-gcm")
//   - encrypted_key: BYTEA (the keeper-wrapped data key)
//   - created_at: TIMESTAMP WITH TIME ZONE
//   - updated_at: TIMESTAMP WITH TIME ZONE
//
// Transaction support:
//
//	The repository automatically detects transaction context using
//	database.GetTx(). All methods work both within and outside of
//	transactions seamlessly.
type PostgreSQLKeyRepository struct {
	db *sql.DB
}

// Create inserts a new wrapped data key into the PostgreSQL database.
//
// The unique constraint on name turns a lost creation race into
// cryptoDomain.ErrDataKeyAlreadyExists, which callers resolve by loading the
// stored row.
//
// Parameters:
//   - ctx: Context for cancellation, timeouts, and transaction propagation
//   - dataKey: The wrapped data key to insert
//
// Returns:
//   - cryptoDomain.ErrDataKeyAlreadyExists if a key with the same name exists
//   - An error if the insert fails for any other reason
func (p *PostgreSQLKeyRepository) Create(ctx context.Context, dataKey *cryptoDomain.DataKey) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO data_keys (id, name, algorithm, encrypted_key, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := querier.ExecContext(
		ctx,
		query,
		dataKey.ID,
		dataKey.Name,
		dataKey.Algorithm,
		dataKey.EncryptedKey,
		dataKey.CreatedAt,
		dataKey.UpdatedAt,
	)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return cryptoDomain.ErrDataKeyAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create data key")
	}
	return nil
}

// GetByName retrieves a wrapped data key by its unique name.
//
// Parameters:
//   - ctx: Context for cancellation, timeouts, and transaction propagation
//   - name: The logical key name
//
// Returns:
//   - The stored data key record
//   - cryptoDomain.ErrDataKeyNotFound if no key exists under the name
func (p *PostgreSQLKeyRepository) GetByName(ctx context.Context, name string) (*cryptoDomain.DataKey, error) {
	var dataKey cryptoDomain.DataKey
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name, algorithm, encrypted_key, created_at, updated_at
			  FROM data_keys WHERE name = $1`

	err := querier.QueryRowContext(ctx, query, name).Scan(
		&dataKey.ID,
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

	return &dataKey, nil
}

// isPostgreSQLUniqueViolation checks if the error is a PostgreSQL unique constraint violation
func isPostgreSQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	// PostgreSQL: "duplicate key value violates unique constraint" or "pq: duplicate key"
	return strings.Contains(errMsg, "duplicate key") || strings.Contains(errMsg, "unique constraint")
}

// NewPostgreSQLKeyRepository creates a new PostgreSQL data key repository.
func NewPostgreSQLKeyRepository(db *sql.DB) *PostgreSQLKeyRepository {
	return &PostgreSQLKeyRepository{db: db}
}
