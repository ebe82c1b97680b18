// Package validation provides custom validation rules for the application.
package validation

import (
	validation "github.com/jellydator/validation"

	cryptoDomain "github.com/allisson/sealbox/internal/crypto/domain"
)

// SealedBox validates that a string has the stored sealed-box shape: a base64
// initialization vector and a base64 ciphertext separated by a colon.
var SealedBox = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_sealed_box_type", "must be a string")
	}
	if s == "" {
		return nil // Let Required handle empty strings
	}
	if _, err := cryptoDomain.DecodeSealedBox(s); err != nil {
		return validation.NewError("validation_sealed_box", "must be a sealed value in iv:ciphertext form")
	}
	return nil
})
