package services

import (
	"context"

	"github.com/pharmadesk/pharma_ledger_app/internal/dto"
)

// LedgerSvcFacade defines the read-side reconciliation operations. All of them
// are pure projections over the party's current records; nothing is persisted.
type LedgerSvcFacade interface {
	// GetPartySummary computes the full reconciled summary for a party:
	// balances, per-invoice settlement history and the transaction timeline.
	GetPartySummary(ctx context.Context, partyID string) (*dto.PartySummaryResponse, error)

	// GetPartyStatement computes only the transaction timeline for a party.
	GetPartyStatement(ctx context.Context, partyID string) (*dto.PartyStatementResponse, error)
}
