package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewDataKey(t *testing.T) {
	t.Run("populates record", func(t *testing.T) {
		wrapped := []byte("wrapped-key-material")

		key := NewDataKey("default", wrapped)

		assert.NotEqual(t, uuid.Nil, key.ID)
		assert.Equal(t, "default", key.Name)
		assert.Equal(t, AESGCM, key.Algorithm)
		assert.Equal(t, wrapped, key.EncryptedKey)
		assert.False(t, key.CreatedAt.IsZero())
		assert.Equal(t, key.CreatedAt, key.UpdatedAt)
		assert.Equal(t, time.UTC, key.CreatedAt.Location())
	})

	t.Run("identifiers are time ordered", func(t *testing.T) {
		first := NewDataKey("first", nil)
		second := NewDataKey("second", nil)

		assert.Equal(t, uuid.Version(7), first.ID.Version())
		assert.True(t, first.ID.String() < second.ID.String())
	})
}
