package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pharmadesk/pharma_ledger_app/internal/apperrors"
	"github.com/pharmadesk/pharma_ledger_app/internal/core/domain"
	portsrepo "github.com/pharmadesk/pharma_ledger_app/internal/core/ports/repositories"
)

type PgxSnapshotRepository struct {
	BaseRepository
}

// newPgxSnapshotRepository creates a repository that loads a party's full
// record set for reconciliation.
func newPgxSnapshotRepository(pool *pgxpool.Pool) portsrepo.SnapshotRepository {
	return &PgxSnapshotRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.SnapshotRepository = (*PgxSnapshotRepository)(nil)

// LoadPartyRecords reads the party and all of its invoices, notes and
// payments inside one repeatable-read transaction so the reconciliation sees
// a consistent point-in-time view.
func (r *PgxSnapshotRepository) LoadPartyRecords(ctx context.Context, partyID string) (*portsrepo.PartyRecords, error) {
	tx, err := r.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return nil, fmt.Errorf("failed to begin snapshot transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	partyQuery := `
		SELECT ` + partyColumns + `
		FROM parties
		WHERE party_id = $1 AND deleted_at IS NULL;
	`
	party, err := scanParty(tx.QueryRow(ctx, partyQuery, partyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load party %s: %w", partyID, err)
	}

	invoiceRows, err := tx.Query(ctx, `
		SELECT `+invoiceColumns+`
		FROM invoices
		WHERE party_id = $1
		ORDER BY issue_date, created_at;
	`, partyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load invoices for party %s: %w", partyID, err)
	}
	invoices, err := pgx.CollectRows(invoiceRows, func(row pgx.CollectableRow) (domain.Invoice, error) {
		return scanInvoice(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan invoices for party %s: %w", partyID, err)
	}

	noteRows, err := tx.Query(ctx, `
		SELECT `+noteColumns+`
		FROM notes
		WHERE party_id = $1
		ORDER BY date, created_at;
	`, partyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load notes for party %s: %w", partyID, err)
	}
	notes, err := pgx.CollectRows(noteRows, func(row pgx.CollectableRow) (domain.Note, error) {
		return scanNote(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan notes for party %s: %w", partyID, err)
	}

	paymentRows, err := tx.Query(ctx, `
		SELECT `+paymentColumns+`
		FROM payments
		WHERE party_id = $1
		ORDER BY date, created_at;
	`, partyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load payments for party %s: %w", partyID, err)
	}
	payments, err := pgx.CollectRows(paymentRows, func(row pgx.CollectableRow) (domain.Payment, error) {
		return scanPayment(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan payments for party %s: %w", partyID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit snapshot transaction: %w", err)
	}

	return &portsrepo.PartyRecords{
		Party:    party,
		Invoices: invoices,
		Notes:    notes,
		Payments: payments,
	}, nil
}
