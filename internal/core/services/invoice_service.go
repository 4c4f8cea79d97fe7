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

// invoiceService implements the InvoiceSvcFacade interface
type invoiceService struct {
	BaseService
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	partyRepo   portsrepo.PartyRepositoryFacade
}

// InvoiceServiceOption is a functional option for configuring the invoice service
type InvoiceServiceOption func(*invoiceService)

// NewInvoiceService creates a new invoice service with the provided options
func NewInvoiceService(invoiceRepo portsrepo.InvoiceRepositoryFacade, partyRepo portsrepo.PartyRepositoryFacade, options ...InvoiceServiceOption) portssvc.InvoiceSvcFacade {
	svc := &invoiceService{
		invoiceRepo: invoiceRepo,
		partyRepo:   partyRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure invoiceService implements the InvoiceSvcFacade interface
var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

// systemNumberFor builds the generated invoice number from the kind and a
// running sequence, e.g. INV-000123 for sales and PUR-000045 for purchases.
func systemNumberFor(kind domain.InvoiceKind, seq int64) string {
	prefix := "INV"
	if kind == domain.Purchase {
		prefix = "PUR"
	}
	return fmt.Sprintf("%s-%06d", prefix, seq)
}

// CreateInvoice posts a new invoice. The party must exist and match the
// invoice kind's side of the book; the total is coerced from free text and a
// malformed value is a hard validation error here since the operator is
// entering it live.
func (s *invoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, creatorUserID string) (*domain.Invoice, error) {
	party, err := s.partyRepo.FindPartyByID(ctx, req.PartyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: party %s not found", apperrors.ErrValidation, req.PartyID)
		}
		return nil, err
	}

	total, ok := reconcile.ParseAmount(req.Total)
	if !ok {
		return nil, fmt.Errorf("%w: invalid invoice total %q", apperrors.ErrValidation, req.Total)
	}
	if total.IsNegative() {
		return nil, fmt.Errorf("%w: invoice total must not be negative", apperrors.ErrValidation)
	}

	seq, err := s.invoiceRepo.CountInvoices(ctx, req.Kind)
	if err != nil {
		s.LogError(ctx, err, "Failed to count invoices for numbering", slog.String("kind", string(req.Kind)))
		return nil, fmt.Errorf("failed to assign invoice number: %w", err)
	}

	now := time.Now()
	invoice := domain.Invoice{
		InvoiceID:    uuid.NewString(),
		SystemNumber: systemNumberFor(req.Kind, seq+1),
		ManualNumber: req.ManualNumber,
		Kind:         req.Kind,
		PartyType:    party.PartyType,
		PartyID:      party.PartyID,
		IssueDate:    req.IssueDate,
		DueDate:      req.DueDate,
		Total:        total,
		StatusHint:   req.StatusHint,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, invoice); err != nil {
		s.LogError(ctx, err, "Failed to save invoice in repository", slog.String("invoice_id", invoice.InvoiceID))
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}

	s.LogInfo(ctx, "Invoice created successfully",
		slog.String("invoice_id", invoice.InvoiceID),
		slog.String("system_number", invoice.SystemNumber),
		slog.String("party_id", invoice.PartyID))
	return &invoice, nil
}

// GetInvoiceByID retrieves a specific invoice by its unique identifier.
func (s *invoiceService) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find invoice by ID in repository", slog.String("invoice_id", invoiceID))
		}
		return nil, err
	}
	return invoice, nil
}

// ListInvoicesByParty retrieves a paginated list of invoices for a party.
func (s *invoiceService) ListInvoicesByParty(ctx context.Context, partyID string, limit int, nextToken *string) ([]domain.Invoice, *string, error) {
	invoices, token, err := s.invoiceRepo.ListInvoicesByParty(ctx, partyID, limit, nextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoices from repository", slog.String("party_id", partyID))
		return nil, nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	if invoices == nil {
		invoices = []domain.Invoice{}
	}
	return invoices, token, nil
}
