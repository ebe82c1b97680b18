package dto

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	notesDomain "github.com/allisson/sealbox/internal/notes/domain"
)

func TestMapNotesToListResponse(t *testing.T) {
	t.Run("maps notes in order with total", func(t *testing.T) {
		secret := "hidden"
		notes := []*notesDomain.Note{
			{ID: uuid.Must(uuid.NewV7()), Title: "one", Secret: &secret},
			{ID: uuid.Must(uuid.NewV7()), Title: "two"},
		}

		response := MapNotesToListResponse(notes, 10)

		require.Len(t, response.Data, 2)
		assert.Equal(t, "one", response.Data[0].Title)
		assert.Equal(t, "two", response.Data[1].Title)
		assert.Equal(t, int64(10), response.Total)

		// Secrets never leak into list rows.
		for _, row := range response.Data {
			assert.Nil(t, row.Secret)
		}
	})

	t.Run("empty input yields empty data array", func(t *testing.T) {
		response := MapNotesToListResponse(nil, 0)

		assert.NotNil(t, response.Data)
		assert.Empty(t, response.Data)

		body, err := json.Marshal(response)
		require.NoError(t, err)
		assert.Contains(t, string(body), `"data":[]`)
	})
}
