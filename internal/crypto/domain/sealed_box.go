package domain

import (
	"encoding/base64"
	"strings"
	"unicode"

	"github.com/allisson/sealbox/internal/errors"
)

// SealedBox is one encrypted value in transit between the cipher engine and
// the database column.
//
// Its stored form is two standard base64 segments joined by a single colon:
//
//	base64(IV) + ":" + base64(ciphertext + tag)
//
// The encoding is byte-for-byte stable: encoding the same box always produces
// the same string, and any string the codec accepts decodes back to the exact
// bytes that produced it.
type SealedBox struct {
	// IV is the initialization vector, always NonceSize bytes.
	IV []byte

	// Ciphertext holds the encrypted payload with the TagSize-byte
	// authentication tag appended.
	Ciphertext []byte
}

// Encode serializes the box into its stored form using standard base64 with
// padding for both segments.
func (s *SealedBox) Encode() string {
	return base64.StdEncoding.EncodeToString(s.IV) + ":" + base64.StdEncoding.EncodeToString(s.Ciphertext)
}

// DecodeSealedBox parses a stored value back into a sealed box.
//
// The parse is total: any input string returns either a box or
// ErrMalformedCiphertext, and no input panics. Whitespace anywhere in the
// value is dropped before parsing, tolerating wrapping introduced by storage
// or transport layers. The remainder must contain a ":" with non-empty base64
// on both sides, and the first segment must decode to exactly NonceSize
// bytes. The split happens at the first colon, so a corrupted second segment
// containing a colon fails base64 decoding rather than shifting the
// delimiter.
//
// Checks here are purely structural. A value that decodes fine may still fail
// authentication when opened; that is the cipher engine's verdict, not the
// codec's.
func DecodeSealedBox(value string) (*SealedBox, error) {
	value = strings.Map(dropSpace, value)
	if value == "" {
		return nil, errors.Wrap(ErrMalformedCiphertext, "empty value")
	}

	sep := strings.IndexByte(value, ':')
	switch {
	case sep < 0:
		return nil, errors.Wrap(ErrMalformedCiphertext, "missing delimiter")
	case sep == 0:
		return nil, errors.Wrap(ErrMalformedCiphertext, "empty initialization vector segment")
	case sep == len(value)-1:
		return nil, errors.Wrap(ErrMalformedCiphertext, "empty ciphertext segment")
	}

	iv, err := base64.StdEncoding.DecodeString(value[:sep])
	if err != nil {
		return nil, errors.Wrap(ErrMalformedCiphertext, "invalid initialization vector encoding")
	}
	if len(iv) != NonceSize {
		return nil, errors.Wrap(ErrMalformedCiphertext, "invalid initialization vector size")
	}

	ciphertext, err := base64.StdEncoding.DecodeString(value[sep+1:])
	if err != nil {
		return nil, errors.Wrap(ErrMalformedCiphertext, "invalid ciphertext encoding")
	}

	return &SealedBox{IV: iv, Ciphertext: ciphertext}, nil
}

func dropSpace(r rune) rune {
	if unicode.IsSpace(r) {
		return -1
	}

	return r
}
