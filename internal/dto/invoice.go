package dto

import (
	"time"

	"github.com/pharmadesk/pharma_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest defines the data needed to post a new invoice.
// Total is a string so the service can coerce legacy values; the system
// number is generated server-side and cannot be supplied.
type CreateInvoiceRequest struct {
	PartyID      string             `json:"partyID" binding:"required"`
	Kind         domain.InvoiceKind `json:"kind" binding:"required,oneof=SALE PURCHASE"`
	ManualNumber string             `json:"manualNumber"` // Optional book number
	IssueDate    time.Time          `json:"issueDate" binding:"required"`
	DueDate      *time.Time         `json:"dueDate"`
	Total        string             `json:"total" binding:"required,amount"`
	StatusHint   string             `json:"statusHint"`
}

// InvoiceResponse defines the data returned for an invoice.
// Mirrors domain.Invoice.
type InvoiceResponse struct {
	InvoiceID     string             `json:"invoiceID"`
	SystemNumber  string             `json:"systemNumber"`
	ManualNumber  string             `json:"manualNumber,omitempty"`
	Kind          domain.InvoiceKind `json:"kind"`
	PartyType     domain.PartyType   `json:"partyType"`
	PartyID       string             `json:"partyID"`
	IssueDate     time.Time          `json:"issueDate"`
	DueDate       *time.Time         `json:"dueDate,omitempty"`
	Total         decimal.Decimal    `json:"total"`
	StatusHint    string             `json:"statusHint,omitempty"`
	CreatedAt     time.Time          `json:"createdAt"`
	CreatedBy     string             `json:"createdBy"`
	LastUpdatedAt time.Time          `json:"lastUpdatedAt"`
	LastUpdatedBy string             `json:"lastUpdatedBy"`
}

// ListInvoicesParams defines query parameters for listing invoices.
type ListInvoicesParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// ListInvoicesResponse wraps a page of invoices with the pagination token.
type ListInvoicesResponse struct {
	Invoices  []InvoiceResponse `json:"invoices"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToInvoiceResponse converts a domain.Invoice to InvoiceResponse DTO
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		InvoiceID:     inv.InvoiceID,
		SystemNumber:  inv.SystemNumber,
		ManualNumber:  inv.ManualNumber,
		Kind:          inv.Kind,
		PartyType:     inv.PartyType,
		PartyID:       inv.PartyID,
		IssueDate:     inv.IssueDate,
		DueDate:       inv.DueDate,
		Total:         inv.Total,
		StatusHint:    inv.StatusHint,
		CreatedAt:     inv.CreatedAt,
		CreatedBy:     inv.CreatedBy,
		LastUpdatedAt: inv.LastUpdatedAt,
		LastUpdatedBy: inv.LastUpdatedBy,
	}
}

// ToListInvoicesResponse converts a page of domain.Invoice to ListInvoicesResponse DTO
func ToListInvoicesResponse(invoices []domain.Invoice, nextToken *string) ListInvoicesResponse {
	res := make([]InvoiceResponse, len(invoices))
	for i, inv := range invoices {
		res[i] = ToInvoiceResponse(&inv)
	}
	return ListInvoicesResponse{Invoices: res, NextToken: nextToken}
}
