package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	notesDomain "github.com/allisson/sealbox/internal/notes/domain"
)

// mockNoteRepository is a mock implementation of NoteRepository for testing.
type mockNoteRepository struct {
	mock.Mock
}

func (m *mockNoteRepository) Create(ctx context.Context, note *notesDomain.Note) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *mockNoteRepository) GetByID(
	ctx context.Context,
	noteID uuid.UUID,
) (*notesDomain.Note, error) {
	args := m.Called(ctx, noteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notesDomain.Note), args.Error(1)
}

func (m *mockNoteRepository) GetLast(ctx context.Context) (*notesDomain.Note, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notesDomain.Note), args.Error(1)
}

func (m *mockNoteRepository) GetSecretCiphertext(
	ctx context.Context,
	noteID uuid.UUID,
) (*string, error) {
	args := m.Called(ctx, noteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*string), args.Error(1)
}

func (m *mockNoteRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*notesDomain.Note, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*notesDomain.Note), args.Error(1)
}

func (m *mockNoteRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

var _ NoteRepository = (*mockNoteRepository)(nil)

// passthroughTxManager runs the function directly without a real transaction.
type passthroughTxManager struct{}

func (passthroughTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func TestNoteUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_AssignsIdentityAndTimestamps", func(t *testing.T) {
		mockRepo := &mockNoteRepository{}
		secret := "the launch code"

		mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(note *notesDomain.Note) bool {
			return note.Title == "first note" &&
				note.Secret != nil && *note.Secret == secret &&
				note.ID.Version() == 7
		})).Return(nil).Once()

		uc := NewNoteUseCase(passthroughTxManager{}, mockRepo)
		note, err := uc.Create(ctx, "first note", &secret)

		require.NoError(t, err)
		require.NotNil(t, note)
		assert.NotEqual(t, uuid.Nil, note.ID)
		assert.Equal(t, "first note", note.Title)
		assert.Equal(t, note.CreatedAt, note.UpdatedAt)
		assert.Equal(t, "UTC", note.CreatedAt.Location().String())
		mockRepo.AssertExpectations(t)
	})

	t.Run("Success_NilSecret", func(t *testing.T) {
		mockRepo := &mockNoteRepository{}

		mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(note *notesDomain.Note) bool {
			return note.Secret == nil
		})).Return(nil).Once()

		uc := NewNoteUseCase(passthroughTxManager{}, mockRepo)
		note, err := uc.Create(ctx, "no secret", nil)

		require.NoError(t, err)
		assert.Nil(t, note.Secret)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error_RepositoryFailure", func(t *testing.T) {
		mockRepo := &mockNoteRepository{}
		mockRepo.On("Create", mock.Anything, mock.Anything).Return(assert.AnError).Once()

		uc := NewNoteUseCase(passthroughTxManager{}, mockRepo)
		note, err := uc.Create(ctx, "doomed", nil)

		assert.ErrorIs(t, err, assert.AnError)
		assert.Nil(t, note)
		mockRepo.AssertExpectations(t)
	})
}

func TestNoteUseCase_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_ReturnsNote", func(t *testing.T) {
		mockRepo := &mockNoteRepository{}
		noteID := uuid.Must(uuid.NewV7())
		secret := "decrypted"
		expected := &notesDomain.Note{ID: noteID, Title: "a note", Secret: &secret}

		mockRepo.On("GetByID", ctx, noteID).Return(expected, nil).Once()

		uc := NewNoteUseCase(passthroughTxManager{}, mockRepo)
		note, err := uc.Get(ctx, noteID)

		require.NoError(t, err)
		assert.Equal(t, expected, note)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		mockRepo := &mockNoteRepository{}
		noteID := uuid.Must(uuid.NewV7())

		mockRepo.On("GetByID", ctx, noteID).Return(nil, notesDomain.ErrNoteNotFound).Once()

		uc := NewNoteUseCase(passthroughTxManager{}, mockRepo)
		note, err := uc.Get(ctx, noteID)

		assert.ErrorIs(t, err, notesDomain.ErrNoteNotFound)
		assert.Nil(t, note)
		mockRepo.AssertExpectations(t)
	})
}

func TestNoteUseCase_GetLast(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_ReturnsNewestNote", func(t *testing.T) {
		mockRepo := &mockNoteRepository{}
		expected := &notesDomain.Note{ID: uuid.Must(uuid.NewV7()), Title: "newest"}

		mockRepo.On("GetLast", ctx).Return(expected, nil).Once()

		uc := NewNoteUseCase(passthroughTxManager{}, mockRepo)
		note, err := uc.GetLast(ctx)

		require.NoError(t, err)
		assert.Equal(t, expected, note)
		mockRepo.AssertExpectations(t)
	})
}

func TestNoteUseCase_GetCiphertext(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_ReturnsStoredForm", func(t *testing.T) {
		mockRepo := &mockNoteRepository{}
		noteID := uuid.Must(uuid.NewV7())
		stored := "AAECAwQFBgcICQoL:AAAAAAAAAAAAAAAAAAAAAAAAAAAAAA=="

		mockRepo.On("GetSecretCiphertext", ctx, noteID).Return(&stored, nil).Once()

		uc := NewNoteUseCase(passthroughTxManager{}, mockRepo)
		ciphertext, err := uc.GetCiphertext(ctx, noteID)

		require.NoError(t, err)
		require.NotNil(t, ciphertext)
		assert.Equal(t, stored, *ciphertext)
		mockRepo.AssertExpectations(t)
	})
}

func TestNoteUseCase_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_ReturnsNotesAndTotal", func(t *testing.T) {
		mockRepo := &mockNoteRepository{}
		expected := []*notesDomain.Note{
			{ID: uuid.Must(uuid.NewV7()), Title: "one"},
			{ID: uuid.Must(uuid.NewV7()), Title: "two"},
		}

		mockRepo.On("List", ctx, 0, 50).Return(expected, nil).Once()
		mockRepo.On("Count", ctx).Return(int64(7), nil).Once()

		uc := NewNoteUseCase(passthroughTxManager{}, mockRepo)
		notes, count, err := uc.List(ctx, 0, 50)

		require.NoError(t, err)
		assert.Equal(t, expected, notes)
		assert.Equal(t, int64(7), count)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error_ListFailure", func(t *testing.T) {
		mockRepo := &mockNoteRepository{}
		mockRepo.On("List", ctx, 0, 50).Return(nil, assert.AnError).Once()

		uc := NewNoteUseCase(passthroughTxManager{}, mockRepo)
		notes, count, err := uc.List(ctx, 0, 50)

		assert.ErrorIs(t, err, assert.AnError)
		assert.Nil(t, notes)
		assert.Zero(t, count)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error_CountFailure", func(t *testing.T) {
		mockRepo := &mockNoteRepository{}
		mockRepo.On("List", ctx, 0, 50).Return([]*notesDomain.Note{}, nil).Once()
		mockRepo.On("Count", ctx).Return(int64(0), assert.AnError).Once()

		uc := NewNoteUseCase(passthroughTxManager{}, mockRepo)
		notes, count, err := uc.List(ctx, 0, 50)

		assert.ErrorIs(t, err, assert.AnError)
		assert.Nil(t, notes)
		assert.Zero(t, count)
		mockRepo.AssertExpectations(t)
	})
}
