package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pharmadesk/pharma_ledger_app/internal/apperrors"
	"github.com/pharmadesk/pharma_ledger_app/internal/core/domain"
	portsrepo "github.com/pharmadesk/pharma_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/pharmadesk/pharma_ledger_app/internal/core/ports/services"
	"github.com/pharmadesk/pharma_ledger_app/internal/core/reconcile"
	"github.com/pharmadesk/pharma_ledger_app/internal/dto"
)

// noteService implements the NoteSvcFacade interface
type noteService struct {
	BaseService
	noteRepo  portsrepo.NoteRepositoryFacade
	partyRepo portsrepo.PartyRepositoryFacade
}

// NoteServiceOption is a functional option for configuring the note service
type NoteServiceOption func(*noteService)

// NewNoteService creates a new note service with the provided options
func NewNoteService(noteRepo portsrepo.NoteRepositoryFacade, partyRepo portsrepo.PartyRepositoryFacade, options ...NoteServiceOption) portssvc.NoteSvcFacade {
	svc := &noteService{
		noteRepo:  noteRepo,
		partyRepo: partyRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure noteService implements the NoteSvcFacade interface
var _ portssvc.NoteSvcFacade = (*noteService)(nil)

// CreateNote records a debit or credit note. RelatedInvoiceNo is stored as
// written; a reference that matches no invoice is legal and simply adjusts
// the party balance without touching any invoice.
func (s *noteService) CreateNote(ctx context.Context, req dto.CreateNoteRequest, creatorUserID string) (*domain.Note, error) {
	party, err := s.partyRepo.FindPartyByID(ctx, req.PartyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: party %s not found", apperrors.ErrValidation, req.PartyID)
		}
		return nil, err
	}

	amount, ok := reconcile.ParseAmount(req.Amount)
	if !ok {
		return nil, fmt.Errorf("%w: invalid note amount %q", apperrors.ErrValidation, req.Amount)
	}
	if amount.IsNegative() {
		return nil, fmt.Errorf("%w: note amount must not be negative", apperrors.ErrValidation)
	}

	now := time.Now()
	note := domain.Note{
		NoteID:           uuid.NewString(),
		NoteType:         req.NoteType,
		NoteNo:           req.NoteNo,
		Date:             req.Date,
		PartyType:        party.PartyType,
		PartyID:          party.PartyID,
		Amount:           amount,
		RelatedInvoiceNo: req.RelatedInvoiceNo,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.noteRepo.SaveNote(ctx, note); err != nil {
		s.LogError(ctx, err, "Failed to save note in repository", slog.String("note_id", note.NoteID))
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	s.LogInfo(ctx, "Note created successfully",
		slog.String("note_id", note.NoteID),
		slog.String("note_type", string(note.NoteType)),
		slog.String("party_id", note.PartyID))
	return &note, nil
}

// GetNoteByID retrieves a specific note by its unique identifier.
func (s *noteService) GetNoteByID(ctx context.Context, noteID string) (*domain.Note, error) {
	note, err := s.noteRepo.FindNoteByID(ctx, noteID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find note by ID in repository", slog.String("note_id", noteID))
		}
		return nil, err
	}
	return note, nil
}

// ListNotesByParty retrieves all notes recorded against a party.
func (s *noteService) ListNotesByParty(ctx context.Context, partyID string) ([]domain.Note, error) {
	notes, err := s.noteRepo.ListNotesByParty(ctx, partyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list notes from repository", slog.String("party_id", partyID))
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	if notes == nil {
		return []domain.Note{}, nil
	}
	return notes, nil
}
