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

// paymentService implements the PaymentSvcFacade interface
type paymentService struct {
	BaseService
	paymentRepo portsrepo.PaymentRepositoryFacade
	partyRepo   portsrepo.PartyRepositoryFacade
	invoiceRepo portsrepo.InvoiceRepositoryFacade
}

// PaymentServiceOption is a functional option for configuring the payment service
type PaymentServiceOption func(*paymentService)

// NewPaymentService creates a new payment service with the provided options
func NewPaymentService(paymentRepo portsrepo.PaymentRepositoryFacade, partyRepo portsrepo.PartyRepositoryFacade, invoiceRepo portsrepo.InvoiceRepositoryFacade, options ...PaymentServiceOption) portssvc.PaymentSvcFacade {
	svc := &paymentService{
		paymentRepo: paymentRepo,
		partyRepo:   partyRepo,
		invoiceRepo: invoiceRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure paymentService implements the PaymentSvcFacade interface
var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

// CreatePayment records a payment against a party. The direction is derived
// from the party type, never supplied by the caller. A dangling InvoiceID is
// a hard error here since it arrives from a live picker, unlike the free-text
// reference which may point anywhere.
func (s *paymentService) CreatePayment(ctx context.Context, req dto.CreatePaymentRequest, creatorUserID string) (*domain.Payment, error) {
	party, err := s.partyRepo.FindPartyByID(ctx, req.PartyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: party %s not found", apperrors.ErrValidation, req.PartyID)
		}
		return nil, err
	}

	amount, ok := reconcile.ParseAmount(req.Amount)
	if !ok {
		return nil, fmt.Errorf("%w: invalid payment amount %q", apperrors.ErrValidation, req.Amount)
	}
	if amount.IsNegative() {
		return nil, fmt.Errorf("%w: payment amount must not be negative", apperrors.ErrValidation)
	}

	if req.InvoiceID != "" {
		invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, req.InvoiceID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: invoice %s not found", apperrors.ErrValidation, req.InvoiceID)
			}
			return nil, err
		}
		if invoice.PartyID != party.PartyID {
			return nil, fmt.Errorf("%w: invoice %s belongs to a different party", apperrors.ErrValidation, req.InvoiceID)
		}
	}

	status := domain.Completed
	if req.Status != nil {
		status = domain.PaymentStatus(*req.Status)
	}

	now := time.Now()
	payment := domain.Payment{
		PaymentID: uuid.NewString(),
		Date:      req.Date,
		Direction: domain.SettlementDirectionFor(party.PartyType),
		PartyType: party.PartyType,
		PartyID:   party.PartyID,
		InvoiceID: req.InvoiceID,
		Reference: req.Reference,
		Amount:    amount,
		Status:    status,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.paymentRepo.SavePayment(ctx, payment); err != nil {
		s.LogError(ctx, err, "Failed to save payment in repository", slog.String("payment_id", payment.PaymentID))
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	s.LogInfo(ctx, "Payment created successfully",
		slog.String("payment_id", payment.PaymentID),
		slog.String("party_id", payment.PartyID),
		slog.String("status", string(payment.Status)))
	return &payment, nil
}

// GetPaymentByID retrieves a specific payment by its unique identifier.
func (s *paymentService) GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find payment by ID in repository", slog.String("payment_id", paymentID))
		}
		return nil, err
	}
	return payment, nil
}

// ListPaymentsByParty retrieves a paginated list of payments for a party.
func (s *paymentService) ListPaymentsByParty(ctx context.Context, partyID string, limit int, nextToken *string) ([]domain.Payment, *string, error) {
	payments, token, err := s.paymentRepo.ListPaymentsByParty(ctx, partyID, limit, nextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments from repository", slog.String("party_id", partyID))
		return nil, nil, fmt.Errorf("failed to list payments: %w", err)
	}
	if payments == nil {
		payments = []domain.Payment{}
	}
	return payments, token, nil
}

// UpdatePaymentStatus transitions a payment's processing status. Failed is
// terminal; a failed payment cannot come back.
func (s *paymentService) UpdatePaymentStatus(ctx context.Context, paymentID string, status domain.PaymentStatus, updaterUserID string) error {
	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return err
	}
	if payment.Status == domain.Failed {
		return fmt.Errorf("%w: payment %s has already failed", apperrors.ErrValidation, paymentID)
	}
	if payment.Status == status {
		return nil
	}

	if err := s.paymentRepo.UpdatePaymentStatus(ctx, paymentID, status, updaterUserID); err != nil {
		s.LogError(ctx, err, "Failed to update payment status in repository",
			slog.String("payment_id", paymentID),
			slog.String("status", string(status)))
		return fmt.Errorf("failed to update payment status: %w", err)
	}

	s.LogInfo(ctx, "Payment status updated",
		slog.String("payment_id", paymentID),
		slog.String("from", string(payment.Status)),
		slog.String("to", string(status)))
	return nil
}
