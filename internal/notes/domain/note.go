// Package domain defines the core domain models for notes. A note pairs public
// metadata with a protected secret field that is encrypted before it reaches
// storage and decrypted when read back.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Note represents a note with an optional protected secret.
type Note struct {
	// ID is the unique identifier for this note. UUIDv7 values sort by creation time.
	ID uuid.UUID
	// Title is public metadata and is stored in plaintext.
	Title string
	// Secret holds the decrypted secret value in memory only (nil when the note
	// has no secret). The stored column contains the sealed form.
	Secret *string `json:"-"`
	// CreatedAt is the UTC timestamp when the note was created.
	CreatedAt time.Time
	// UpdatedAt is the UTC timestamp when the note was last modified.
	UpdatedAt time.Time
}
