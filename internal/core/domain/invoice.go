package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceKind indicates whether an invoice records a sale or a purchase.
type InvoiceKind string

const (
	Sale     InvoiceKind = "SALE"
	Purchase InvoiceKind = "PURCHASE"
)

// Invoice represents a posted sale or purchase invoice. Total is the nominal,
// pre-adjustment amount and is immutable once posted; corrections are recorded
// as debit/credit notes, never as edits.
type Invoice struct {
	InvoiceID    string          `json:"invoiceID"`              // Primary Key (e.g., UUID)
	SystemNumber string          `json:"systemNumber"`           // Generated number (e.g., INV-000123)
	ManualNumber string          `json:"manualNumber,omitempty"` // Optional book number written by the operator
	Kind         InvoiceKind     `json:"kind"`
	PartyType    PartyType       `json:"partyType"`
	PartyID      string          `json:"partyID"`
	IssueDate    time.Time       `json:"issueDate"`
	DueDate      *time.Time      `json:"dueDate,omitempty"`
	Total        decimal.Decimal `json:"total"`
	StatusHint   string          `json:"statusHint,omitempty"` // Free-text hint from the entry screen, e.g. "Overdue"
	AuditFields
}

// IsOverdue reports whether the invoice counts toward the overdue subset:
// either the entry screen flagged it "Overdue", or it is not hinted "Paid"
// and its due date has passed.
func (i Invoice) IsOverdue(today time.Time) bool {
	if i.StatusHint == "Overdue" {
		return true
	}
	if i.StatusHint == "Paid" || i.DueDate == nil {
		return false
	}
	return i.DueDate.Before(today)
}
