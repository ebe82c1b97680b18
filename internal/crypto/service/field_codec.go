package service

import (
	"context"

	cryptoDomain "github.com/allisson/sealbox/internal/crypto/domain"
)

// FieldCodec translates protected field values between their in-memory
// plaintext form and the encoded sealed box stored in the database.
//
// Repositories invoke it exactly at the column boundary: ToStored when
// binding a value into an INSERT or UPDATE, FromStored when scanning a row
// back out. NULL passes through untouched in both directions, so a missing
// value is stored as a plain NULL and never as an encryption of emptiness.
//
// The codec holds no key material of its own. Every call resolves the key
// through the provider, which serves it from cache after first use.
type FieldCodec struct {
	keyProvider KeyProvider
}

// NewFieldCodec creates a field codec backed by the given key provider.
func NewFieldCodec(keyProvider KeyProvider) *FieldCodec {
	return &FieldCodec{keyProvider: keyProvider}
}

// ToStored seals a plaintext field value into its stored form. A nil value
// stays nil. The empty string is a real value and seals like any other.
func (f *FieldCodec) ToStored(ctx context.Context, plaintext *string) (*string, error) {
	if plaintext == nil {
		return nil, nil
	}

	cipher, err := f.keyProvider.ResolveKey(ctx)
	if err != nil {
		return nil, err
	}

	box, err := cipher.Seal([]byte(*plaintext))
	if err != nil {
		return nil, err
	}

	stored := box.Encode()

	return &stored, nil
}

// FromStored decodes and opens a stored field value back into plaintext. A
// nil value stays nil. Errors from the codec, the key provider, and the
// cipher engine pass through with their kind unchanged.
func (f *FieldCodec) FromStored(ctx context.Context, stored *string) (*string, error) {
	if stored == nil {
		return nil, nil
	}

	box, err := cryptoDomain.DecodeSealedBox(*stored)
	if err != nil {
		return nil, err
	}

	cipher, err := f.keyProvider.ResolveKey(ctx)
	if err != nil {
		return nil, err
	}

	plaintext, err := cipher.Open(box)
	if err != nil {
		return nil, err
	}

	value := string(plaintext)

	return &value, nil
}
