package repositories

import (
	"context"

	"github.com/pharmadesk/pharma_ledger_app/internal/core/domain"
)

// InvoiceReader defines read operations for invoice data
type InvoiceReader interface {
	// FindInvoiceByID retrieves a specific invoice by its unique identifier.
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoicesByParty retrieves a paginated list of invoices for a party
	// using token-based pagination, ordered by issue date.
	ListInvoicesByParty(ctx context.Context, partyID string, limit int, nextToken *string) ([]domain.Invoice, *string, error)

	// CountInvoices returns the number of invoices of the given kind, used to
	// derive the next system number.
	CountInvoices(ctx context.Context, kind domain.InvoiceKind) (int64, error)
}

// InvoiceWriter defines write operations for invoice data
type InvoiceWriter interface {
	// SaveInvoice persists a new invoice. Posted invoices are immutable; there
	// is no update path, corrections go through notes.
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error
}

// InvoiceRepositoryFacade combines all invoice-related repository interfaces
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}
