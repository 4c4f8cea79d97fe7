package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/pharmadesk/pharma_ledger_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	partyRepo := newPgxPartyRepository(dbPool)
	invoiceRepo := newPgxInvoiceRepository(dbPool)
	noteRepo := newPgxNoteRepository(dbPool)
	paymentRepo := newPgxPaymentRepository(dbPool)
	snapshotRepo := newPgxSnapshotRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)

	return portsrepo.RepositoryProvider{
		PartyRepo:    partyRepo,
		InvoiceRepo:  invoiceRepo,
		NoteRepo:     noteRepo,
		PaymentRepo:  paymentRepo,
		SnapshotRepo: snapshotRepo,
		UserRepo:     userRepo,
	}
}
