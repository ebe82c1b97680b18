package dto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateNoteRequest_Validate(t *testing.T) {
	secret := "the launch code"

	tests := []struct {
		name      string
		request   CreateNoteRequest
		shouldErr bool
	}{
		{
			name:      "valid with secret",
			request:   CreateNoteRequest{Title: "first note", Secret: &secret},
			shouldErr: false,
		},
		{
			name:      "valid without secret",
			request:   CreateNoteRequest{Title: "no secret"},
			shouldErr: false,
		},
		{
			name:      "missing title",
			request:   CreateNoteRequest{},
			shouldErr: true,
		},
		{
			name:      "blank title",
			request:   CreateNoteRequest{Title: "   "},
			shouldErr: true,
		},
		{
			name:      "title too long",
			request:   CreateNoteRequest{Title: strings.Repeat("x", 256)},
			shouldErr: true,
		},
		{
			name:      "title at max length",
			request:   CreateNoteRequest{Title: strings.Repeat("x", 255)},
			shouldErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
