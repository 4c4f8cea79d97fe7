package services

import (
	"context"

	"github.com/pharmadesk/pharma_ledger_app/internal/core/domain"
	"github.com/pharmadesk/pharma_ledger_app/internal/dto"
)

// PaymentReaderSvc defines read operations for payments
type PaymentReaderSvc interface {
	// GetPaymentByID retrieves a specific payment by its unique identifier.
	GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)

	// ListPaymentsByParty retrieves a paginated list of payments for a party.
	ListPaymentsByParty(ctx context.Context, partyID string, limit int, nextToken *string) ([]domain.Payment, *string, error)
}

// PaymentWriterSvc defines write operations for payments
type PaymentWriterSvc interface {
	// CreatePayment records a new payment against a party.
	CreatePayment(ctx context.Context, req dto.CreatePaymentRequest, creatorUserID string) (*domain.Payment, error)

	// UpdatePaymentStatus transitions a payment's processing status.
	UpdatePaymentStatus(ctx context.Context, paymentID string, status domain.PaymentStatus, updaterUserID string) error
}

// PaymentSvcFacade combines all payment service interfaces
type PaymentSvcFacade interface {
	PaymentReaderSvc
	PaymentWriterSvc
}
