package app

import (
	"fmt"

	notesHTTP "github.com/allisson/sealbox/internal/notes/http"
	notesRepository "github.com/allisson/sealbox/internal/notes/repository"
	notesUseCase "github.com/allisson/sealbox/internal/notes/usecase"
)

// NoteRepository returns the note repository based on database driver.
func (c *Container) NoteRepository() (notesUseCase.NoteRepository, error) {
	var err error
	c.noteRepositoryInit.Do(func() {
		c.noteRepository, err = c.initNoteRepository()
		if err != nil {
			c.initErrors["noteRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["noteRepository"]; exists {
		return nil, storedErr
	}
	return c.noteRepository, nil
}

// NoteUseCase returns the note use case.
func (c *Container) NoteUseCase() (notesUseCase.NoteUseCase, error) {
	var err error
	c.noteUseCaseInit.Do(func() {
		c.noteUseCase, err = c.initNoteUseCase()
		if err != nil {
			c.initErrors["noteUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["noteUseCase"]; exists {
		return nil, storedErr
	}
	return c.noteUseCase, nil
}

// NoteHandler returns the HTTP handler for note operations.
func (c *Container) NoteHandler() (*notesHTTP.NoteHandler, error) {
	var err error
	c.noteHandlerInit.Do(func() {
		c.noteHandler, err = c.initNoteHandler()
		if err != nil {
			c.initErrors["noteHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["noteHandler"]; exists {
		return nil, storedErr
	}
	return c.noteHandler, nil
}

// initNoteRepository creates the note repository based on the database driver.
// The repository receives the field codec so the secret column is sealed on
// write and opened on read.
func (c *Container) initNoteRepository() (notesUseCase.NoteRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for note repository: %w", err)
	}

	fieldCodec, err := c.FieldCodec()
	if err != nil {
		return nil, fmt.Errorf("failed to get field codec for note repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return notesRepository.NewPostgreSQLNoteRepository(db, fieldCodec), nil
	case "mysql":
		return notesRepository.NewMySQLNoteRepository(db, fieldCodec), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initNoteUseCase creates the note use case with all its dependencies.
func (c *Container) initNoteUseCase() (notesUseCase.NoteUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for note use case: %w", err)
	}

	noteRepository, err := c.NoteRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get note repository for note use case: %w", err)
	}

	baseUseCase := notesUseCase.NewNoteUseCase(txManager, noteRepository)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for note use case: %w", err)
		}
		return notesUseCase.NewNoteUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initNoteHandler creates the note HTTP handler with all its dependencies.
func (c *Container) initNoteHandler() (*notesHTTP.NoteHandler, error) {
	noteUseCase, err := c.NoteUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get note use case for note handler: %w", err)
	}

	logger := c.Logger()

	return notesHTTP.NewNoteHandler(noteUseCase, logger), nil
}
