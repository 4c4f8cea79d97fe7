package services

import (
	"context"

	"github.com/pharmadesk/pharma_ledger_app/internal/core/domain"
	"github.com/pharmadesk/pharma_ledger_app/internal/dto"
)

// InvoiceReaderSvc defines read operations for invoices
type InvoiceReaderSvc interface {
	// GetInvoiceByID retrieves a specific invoice by its unique identifier.
	GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoicesByParty retrieves a paginated list of invoices for a party.
	ListInvoicesByParty(ctx context.Context, partyID string, limit int, nextToken *string) ([]domain.Invoice, *string, error)
}

// InvoiceWriterSvc defines write operations for invoices
type InvoiceWriterSvc interface {
	// CreateInvoice posts a new invoice against a party. The system number is
	// assigned here; posted invoices are immutable.
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, creatorUserID string) (*domain.Invoice, error)
}

// InvoiceSvcFacade combines all invoice service interfaces
type InvoiceSvcFacade interface {
	InvoiceReaderSvc
	InvoiceWriterSvc
}
