// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"time"

	"github.com/google/uuid"

	notesDomain "github.com/allisson/sealbox/internal/notes/domain"
)

// NoteResponse represents a note in API responses.
// SECURITY: The Secret field contains plaintext and is only included in GET
// responses. Must be transmitted over HTTPS in production.
type NoteResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Secret    *string   `json:"secret,omitempty"` // Only included in GET responses
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CiphertextResponse carries the stored secret column exactly as persisted.
// Ciphertext is null when the note has no secret.
type CiphertextResponse struct {
	ID         string  `json:"id"`
	Ciphertext *string `json:"ciphertext"`
}

// MapNoteToCreateResponse converts a domain note to an API response for POST operations.
// The secret is excluded for security (only metadata is returned on creation).
func MapNoteToCreateResponse(note *notesDomain.Note) NoteResponse {
	return NoteResponse{
		ID:        note.ID.String(),
		Title:     note.Title,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}

// MapNoteToGetResponse converts a domain note to an API response for GET operations.
// The decrypted secret is included in the response.
func MapNoteToGetResponse(note *notesDomain.Note) NoteResponse {
	return NoteResponse{
		ID:        note.ID.String(),
		Title:     note.Title,
		Secret:    note.Secret,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}

// MapCiphertextToResponse builds the ciphertext response for a note.
func MapCiphertextToResponse(noteID uuid.UUID, ciphertext *string) CiphertextResponse {
	return CiphertextResponse{
		ID:         noteID.String(),
		Ciphertext: ciphertext,
	}
}
