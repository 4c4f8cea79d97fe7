package services

import (
	"context"

	"github.com/pharmadesk/pharma_ledger_app/internal/core/domain"
	"github.com/pharmadesk/pharma_ledger_app/internal/dto"
)

// PartyReaderSvc defines read operations for parties
type PartyReaderSvc interface {
	// GetPartyByID retrieves a specific party by its unique identifier.
	GetPartyByID(ctx context.Context, partyID string) (*domain.Party, error)

	// ListParties retrieves a paginated list of parties, optionally filtered
	// by party type.
	ListParties(ctx context.Context, partyType *domain.PartyType, limit int, offset int) ([]domain.Party, error)
}

// PartyWriterSvc defines write operations for parties
type PartyWriterSvc interface {
	// CreateParty creates a new party from the provided details.
	CreateParty(ctx context.Context, req dto.CreatePartyRequest, creatorUserID string) (*domain.Party, error)

	// UpdateParty updates a party's mutable details, including the opening
	// balance.
	UpdateParty(ctx context.Context, partyID string, req dto.UpdatePartyRequest, updaterUserID string) (*domain.Party, error)

	// DeleteParty marks a party as deleted.
	DeleteParty(ctx context.Context, partyID string, deleterUserID string) error
}

// PartySvcFacade combines all party service interfaces
type PartySvcFacade interface {
	PartyReaderSvc
	PartyWriterSvc
}
