// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	notesDomain "github.com/allisson/sealbox/internal/notes/domain"
)

// ListNotesResponse represents a paginated list of notes in API responses.
// List rows carry metadata only; secrets stay sealed during enumeration.
type ListNotesResponse struct {
	Data  []NoteResponse `json:"data"`
	Total int64          `json:"total"`
}

// MapNotesToListResponse converts a slice of domain notes to a list response.
func MapNotesToListResponse(notes []*notesDomain.Note, total int64) ListNotesResponse {
	data := make([]NoteResponse, 0, len(notes))
	for _, note := range notes {
		data = append(data, NoteResponse{
			ID:        note.ID.String(),
			Title:     note.Title,
			CreatedAt: note.CreatedAt,
			UpdatedAt: note.UpdatedAt,
		})
	}

	return ListNotesResponse{
		Data:  data,
		Total: total,
	}
}
