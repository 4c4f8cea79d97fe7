package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/pharmadesk/pharma_ledger_app/internal/apperrors"
	portsrepo "github.com/pharmadesk/pharma_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/pharmadesk/pharma_ledger_app/internal/core/ports/services"
	"github.com/pharmadesk/pharma_ledger_app/internal/core/reconcile"
	"github.com/pharmadesk/pharma_ledger_app/internal/dto"
	"github.com/pharmadesk/pharma_ledger_app/internal/utils"
)

// ledgerService implements the LedgerSvcFacade interface. It is a pure read
// path: every call loads a fresh point-in-time view of the party's records,
// runs the reconciliation over it and discards it. Nothing derived is ever
// written back.
type ledgerService struct {
	BaseService
	snapshotRepo portsrepo.SnapshotRepository
	now          func() time.Time
}

// LedgerServiceOption is a functional option for configuring the ledger service
type LedgerServiceOption func(*ledgerService)

// WithLedgerClock overrides the clock used for overdue checks, for tests.
func WithLedgerClock(now func() time.Time) LedgerServiceOption {
	return func(s *ledgerService) {
		s.now = now
	}
}

// NewLedgerService creates a new ledger service with the provided options
func NewLedgerService(snapshotRepo portsrepo.SnapshotRepository, options ...LedgerServiceOption) portssvc.LedgerSvcFacade {
	svc := &ledgerService{
		snapshotRepo: snapshotRepo,
		now:          time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure ledgerService implements the LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// loadSnapshot fetches the party's records and builds the engine snapshot,
// logging any records that were excluded or coerced along the way.
func (s *ledgerService) loadSnapshot(ctx context.Context, partyID string) (reconcile.Snapshot, []reconcile.Warning, time.Time, error) {
	asOf := s.now()

	records, err := s.snapshotRepo.LoadPartyRecords(ctx, partyID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load party records", slog.String("party_id", partyID))
		}
		return reconcile.Snapshot{}, nil, asOf, err
	}

	snap, warnings := reconcile.NewSnapshot(records.Party, records.Invoices, records.Notes, records.Payments, asOf)
	for _, w := range warnings {
		s.LogWarn(ctx, "Reconciliation anomaly",
			slog.String("party_id", partyID),
			slog.String("record_kind", w.RecordKind),
			slog.String("record_id", w.RecordID),
			slog.String("message", w.Message))
	}
	return snap, warnings, asOf, nil
}

// GetPartySummary computes the full reconciled summary for a party.
func (s *ledgerService) GetPartySummary(ctx context.Context, partyID string) (*dto.PartySummaryResponse, error) {
	snap, warnings, asOf, err := s.loadSnapshot(ctx, partyID)
	if err != nil {
		return nil, err
	}

	summary := reconcile.SummarizeParty(snap)

	s.LogInfo(ctx, "Party summary computed",
		slog.String("party_id", partyID),
		slog.String("balance", utils.FormatAmount(summary.Balance)),
		slog.Int("invoice_rows", len(summary.InvoiceRows)),
		slog.Int("warnings", len(warnings)))

	resp := dto.ToPartySummaryResponse(summary, asOf, warnings)
	return &resp, nil
}

// GetPartyStatement computes only the transaction timeline for a party.
func (s *ledgerService) GetPartyStatement(ctx context.Context, partyID string) (*dto.PartyStatementResponse, error) {
	snap, warnings, asOf, err := s.loadSnapshot(ctx, partyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to build statement: %w", err)
	}

	rows := reconcile.BuildTimeline(snap)

	s.LogDebug(ctx, "Party statement computed",
		slog.String("party_id", partyID),
		slog.Int("rows", len(rows)))

	resp := dto.ToPartyStatementResponse(snap.Party, rows, asOf, warnings)
	return &resp, nil
}
