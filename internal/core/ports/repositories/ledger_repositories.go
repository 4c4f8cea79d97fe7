package repositories

import (
	"context"

	"github.com/pharmadesk/pharma_ledger_app/internal/core/domain"
)

// PartyRecords is the raw, point-in-time read of one party's collections that
// the reconciliation engine consumes. It carries plain records; the engine
// does not care how they were fetched or stored.
type PartyRecords struct {
	Party    domain.Party
	Invoices []domain.Invoice
	Notes    []domain.Note
	Payments []domain.Payment
}

// SnapshotRepository loads the full record set for one party in a single
// point-in-time read.
type SnapshotRepository interface {
	// LoadPartyRecords retrieves the party and all of its invoices, notes and
	// payments. Returns apperrors.ErrNotFound when the party does not exist.
	LoadPartyRecords(ctx context.Context, partyID string) (*PartyRecords, error)
}
