package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/sealbox/internal/metrics"
	notesDomain "github.com/allisson/sealbox/internal/notes/domain"
)

// noteUseCaseWithMetrics decorates NoteUseCase with metrics instrumentation.
type noteUseCaseWithMetrics struct {
	next    NoteUseCase
	metrics metrics.BusinessMetrics
}

// NewNoteUseCaseWithMetrics wraps a NoteUseCase with metrics recording.
func NewNoteUseCaseWithMetrics(useCase NoteUseCase, m metrics.BusinessMetrics) NoteUseCase {
	return &noteUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Create records metrics for note creation operations.
func (n *noteUseCaseWithMetrics) Create(
	ctx context.Context,
	title string,
	secret *string,
) (*notesDomain.Note, error) {
	start := time.Now()
	note, err := n.next.Create(ctx, title, secret)

	n.record(ctx, "note_create", start, err)

	return note, err
}

// Get records metrics for note retrieval operations.
func (n *noteUseCaseWithMetrics) Get(
	ctx context.Context,
	noteID uuid.UUID,
) (*notesDomain.Note, error) {
	start := time.Now()
	note, err := n.next.Get(ctx, noteID)

	n.record(ctx, "note_get", start, err)

	return note, err
}

// GetLast records metrics for last-note retrieval operations.
func (n *noteUseCaseWithMetrics) GetLast(ctx context.Context) (*notesDomain.Note, error) {
	start := time.Now()
	note, err := n.next.GetLast(ctx)

	n.record(ctx, "note_get_last", start, err)

	return note, err
}

// GetCiphertext records metrics for ciphertext retrieval operations.
func (n *noteUseCaseWithMetrics) GetCiphertext(
	ctx context.Context,
	noteID uuid.UUID,
) (*string, error) {
	start := time.Now()
	ciphertext, err := n.next.GetCiphertext(ctx, noteID)

	n.record(ctx, "note_get_ciphertext", start, err)

	return ciphertext, err
}

// List records metrics for note listing operations.
func (n *noteUseCaseWithMetrics) List(
	ctx context.Context,
	offset, limit int,
) ([]*notesDomain.Note, int64, error) {
	start := time.Now()
	notes, count, err := n.next.List(ctx, offset, limit)

	n.record(ctx, "note_list", start, err)

	return notes, count, err
}

// record emits the operation counter and duration histogram for one call.
func (n *noteUseCaseWithMetrics) record(
	ctx context.Context,
	operation string,
	start time.Time,
	err error,
) {
	status := "success"
	if err != nil {
		status = "error"
	}

	n.metrics.RecordOperation(ctx, "notes", operation, status)
	n.metrics.RecordDuration(ctx, "notes", operation, time.Since(start), status)
}
