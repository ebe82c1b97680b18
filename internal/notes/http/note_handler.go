// Package http provides HTTP handlers for note management operations.
// Secrets travel through handlers as plaintext; sealing and opening happen at the
// storage boundary and are invisible here, except for the explicit ciphertext
// endpoint which returns the stored form without decrypting it.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/allisson/sealbox/internal/httputil"
	"github.com/allisson/sealbox/internal/notes/http/dto"
	notesUseCase "github.com/allisson/sealbox/internal/notes/usecase"
	customValidation "github.com/allisson/sealbox/internal/validation"
)

// NoteHandler handles HTTP requests for note management operations.
type NoteHandler struct {
	noteUseCase notesUseCase.NoteUseCase
	logger      *slog.Logger
}

// NewNoteHandler creates a new note handler with required dependencies.
func NewNoteHandler(noteUseCase notesUseCase.NoteUseCase, logger *slog.Logger) *NoteHandler {
	return &NoteHandler{
		noteUseCase: noteUseCase,
		logger:      logger,
	}
}

// CreateHandler creates a new note.
// POST /v1/notes
// Returns 201 Created with note metadata (excludes the secret for security).
func (h *NoteHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateNoteRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	note, err := h.noteUseCase.Create(c.Request.Context(), req.Title, req.Secret)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	// Return response with metadata only (no secret)
	response := dto.MapNoteToCreateResponse(note)
	c.JSON(http.StatusCreated, response)
}

// GetHandler retrieves a note with its decrypted secret.
// GET /v1/notes/:id
// Returns 200 OK with the note including its secret.
func (h *NoteHandler) GetHandler(c *gin.Context) {
	noteID, ok := h.parseNoteID(c)
	if !ok {
		return
	}

	note, err := h.noteUseCase.Get(c.Request.Context(), noteID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.MapNoteToGetResponse(note)
	c.JSON(http.StatusOK, response)
}

// GetLastHandler retrieves the most recently created note with its decrypted secret.
// GET /v1/notes/last
// Returns 200 OK with the note including its secret.
func (h *NoteHandler) GetLastHandler(c *gin.Context) {
	note, err := h.noteUseCase.GetLast(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.MapNoteToGetResponse(note)
	c.JSON(http.StatusOK, response)
}

// GetCiphertextHandler retrieves the stored secret column without decrypting it.
// GET /v1/notes/:id/ciphertext
// Returns 200 OK with the sealed value (null when the note has no secret).
func (h *NoteHandler) GetCiphertextHandler(c *gin.Context) {
	noteID, ok := h.parseNoteID(c)
	if !ok {
		return
	}

	ciphertext, err := h.noteUseCase.GetCiphertext(c.Request.Context(), noteID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.MapCiphertextToResponse(noteID, ciphertext)
	c.JSON(http.StatusOK, response)
}

// ListHandler retrieves notes with pagination support.
// GET /v1/notes?offset=0&limit=50
// Returns 200 OK with note metadata; secrets are never included in listings.
func (h *NoteHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	notes, total, err := h.noteUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.MapNotesToListResponse(notes, total)
	c.JSON(http.StatusOK, response)
}

// parseNoteID extracts and validates the :id URL parameter. On failure it writes
// the validation response and returns ok=false.
func (h *NoteHandler) parseNoteID(c *gin.Context) (uuid.UUID, bool) {
	noteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(
			c,
			fmt.Errorf("invalid note id: must be a valid UUID"),
			h.logger,
		)
		return uuid.Nil, false
	}
	return noteID, true
}
