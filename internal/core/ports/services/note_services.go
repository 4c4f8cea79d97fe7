package services

import (
	"context"

	"github.com/pharmadesk/pharma_ledger_app/internal/core/domain"
	"github.com/pharmadesk/pharma_ledger_app/internal/dto"
)

// NoteReaderSvc defines read operations for debit/credit notes
type NoteReaderSvc interface {
	// GetNoteByID retrieves a specific note by its unique identifier.
	GetNoteByID(ctx context.Context, noteID string) (*domain.Note, error)

	// ListNotesByParty retrieves all notes recorded against a party.
	ListNotesByParty(ctx context.Context, partyID string) ([]domain.Note, error)
}

// NoteWriterSvc defines write operations for notes
type NoteWriterSvc interface {
	// CreateNote records a new debit or credit note against a party. The
	// related invoice number is free text; it is matched lazily at read time.
	CreateNote(ctx context.Context, req dto.CreateNoteRequest, creatorUserID string) (*domain.Note, error)
}

// NoteSvcFacade combines all note service interfaces
type NoteSvcFacade interface {
	NoteReaderSvc
	NoteWriterSvc
}
