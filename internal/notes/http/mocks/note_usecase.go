// Package mocks provides mock implementations for testing HTTP handlers.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	notesDomain "github.com/allisson/sealbox/internal/notes/domain"
)

// MockNoteUseCase is a mock implementation of NoteUseCase for testing.
type MockNoteUseCase struct {
	mock.Mock
}

// Create mocks the Create method of NoteUseCase.
func (m *MockNoteUseCase) Create(
	ctx context.Context,
	title string,
	secret *string,
) (*notesDomain.Note, error) {
	args := m.Called(ctx, title, secret)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notesDomain.Note), args.Error(1)
}

// Get mocks the Get method of NoteUseCase.
func (m *MockNoteUseCase) Get(ctx context.Context, noteID uuid.UUID) (*notesDomain.Note, error) {
	args := m.Called(ctx, noteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notesDomain.Note), args.Error(1)
}

// GetLast mocks the GetLast method of NoteUseCase.
func (m *MockNoteUseCase) GetLast(ctx context.Context) (*notesDomain.Note, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notesDomain.Note), args.Error(1)
}

// GetCiphertext mocks the GetCiphertext method of NoteUseCase.
func (m *MockNoteUseCase) GetCiphertext(ctx context.Context, noteID uuid.UUID) (*string, error) {
	args := m.Called(ctx, noteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*string), args.Error(1)
}

// List mocks the List method of NoteUseCase.
func (m *MockNoteUseCase) List(
	ctx context.Context,
	offset, limit int,
) ([]*notesDomain.Note, int64, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*notesDomain.Note), args.Get(1).(int64), args.Error(2)
}
