package repositories

import (
	"context"
	"time"

	"github.com/pharmadesk/pharma_ledger_app/internal/core/domain"
)

// PartyReader defines read operations for party data
type PartyReader interface {
	// FindPartyByID retrieves a specific party by its unique identifier.
	FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error)

	// ListParties retrieves a paginated list of parties, optionally filtered by type.
	ListParties(ctx context.Context, partyType *domain.PartyType, limit int, offset int) ([]domain.Party, error)
}

// PartyWriter defines write operations for party data
type PartyWriter interface {
	// SaveParty persists a new party.
	SaveParty(ctx context.Context, party domain.Party) error

	// UpdateParty updates an existing party's details, including an explicit
	// opening balance edit.
	UpdateParty(ctx context.Context, party domain.Party) error
}

// PartyLifecycleManager defines operations for managing party lifecycle
type PartyLifecycleManager interface {
	// MarkPartyDeleted marks a party as deleted (soft delete).
	MarkPartyDeleted(ctx context.Context, partyID string, deletedAt time.Time, deletedBy string) error
}

// PartyRepositoryFacade combines all party-related repository interfaces
type PartyRepositoryFacade interface {
	PartyReader
	PartyWriter
	PartyLifecycleManager
}
