// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/sealbox/internal/validation"
)

// CreateNoteRequest contains the parameters for creating a new note.
// The secret is optional plaintext; it is sealed before it reaches storage.
type CreateNoteRequest struct {
	Title  string  `json:"title"`
	Secret *string `json:"secret"`
}

// Validate checks if the create note request is valid.
func (r *CreateNoteRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Title,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.Secret,
			validation.Length(0, 65536),
		),
	)
}
