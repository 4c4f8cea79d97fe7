package dto

import (
	"time"

	"github.com/pharmadesk/pharma_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePaymentRequest defines the data needed to record a payment.
// Direction is derived from the party type server-side. InvoiceID and
// Reference are both optional; either may drive invoice matching later.
type CreatePaymentRequest struct {
	PartyID   string    `json:"partyID" binding:"required"`
	Date      time.Time `json:"date" binding:"required"`
	Amount    string    `json:"amount" binding:"required,amount"`
	InvoiceID string    `json:"invoiceID"`
	Reference string    `json:"reference"`
	Status    *string   `json:"status" binding:"omitempty,oneof=COMPLETED PENDING"` // Defaults to COMPLETED
}

// UpdatePaymentStatusRequest defines the data for a payment status transition.
type UpdatePaymentStatusRequest struct {
	Status domain.PaymentStatus `json:"status" binding:"required,oneof=COMPLETED PENDING FAILED"`
}

// PaymentResponse defines the data returned for a payment.
// Mirrors domain.Payment.
type PaymentResponse struct {
	PaymentID     string                  `json:"paymentID"`
	Date          time.Time               `json:"date"`
	Direction     domain.PaymentDirection `json:"direction"`
	PartyType     domain.PartyType        `json:"partyType"`
	PartyID       string                  `json:"partyID"`
	InvoiceID     string                  `json:"invoiceID,omitempty"`
	Reference     string                  `json:"reference,omitempty"`
	Amount        decimal.Decimal         `json:"amount"`
	Status        domain.PaymentStatus    `json:"status"`
	CreatedAt     time.Time               `json:"createdAt"`
	CreatedBy     string                  `json:"createdBy"`
	LastUpdatedAt time.Time               `json:"lastUpdatedAt"`
	LastUpdatedBy string                  `json:"lastUpdatedBy"`
}

// ListPaymentsParams defines query parameters for listing payments.
type ListPaymentsParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// ListPaymentsResponse wraps a page of payments with the pagination token.
type ListPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToPaymentResponse converts a domain.Payment to PaymentResponse DTO
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:     p.PaymentID,
		Date:          p.Date,
		Direction:     p.Direction,
		PartyType:     p.PartyType,
		PartyID:       p.PartyID,
		InvoiceID:     p.InvoiceID,
		Reference:     p.Reference,
		Amount:        p.Amount,
		Status:        p.Status,
		CreatedAt:     p.CreatedAt,
		CreatedBy:     p.CreatedBy,
		LastUpdatedAt: p.LastUpdatedAt,
		LastUpdatedBy: p.LastUpdatedBy,
	}
}

// ToListPaymentsResponse converts a page of domain.Payment to ListPaymentsResponse DTO
func ToListPaymentsResponse(payments []domain.Payment, nextToken *string) ListPaymentsResponse {
	res := make([]PaymentResponse, len(payments))
	for i, p := range payments {
		res[i] = ToPaymentResponse(&p)
	}
	return ListPaymentsResponse{Payments: res, NextToken: nextToken}
}
