package repositories

import (
	"context"

	"github.com/pharmadesk/pharma_ledger_app/internal/core/domain"
)

// NoteReader defines read operations for debit/credit note data
type NoteReader interface {
	// FindNoteByID retrieves a specific note by its unique identifier.
	FindNoteByID(ctx context.Context, noteID string) (*domain.Note, error)

	// ListNotesByParty retrieves all notes recorded against a party.
	ListNotesByParty(ctx context.Context, partyID string) ([]domain.Note, error)
}

// NoteWriter defines write operations for note data
type NoteWriter interface {
	// SaveNote persists a new note.
	SaveNote(ctx context.Context, note domain.Note) error
}

// NoteRepositoryFacade combines all note-related repository interfaces
type NoteRepositoryFacade interface {
	NoteReader
	NoteWriter
}
