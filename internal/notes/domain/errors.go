// Package domain defines the core domain models for notes.
package domain

import (
	"github.com/allisson/sealbox/internal/errors"
)

// Note-specific error definitions.
var (
	// ErrNoteNotFound indicates the note was not found.
	ErrNoteNotFound = errors.Wrap(errors.ErrNotFound, "note not found")
)
