package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// NoteType indicates whether a note increases or decreases a party's balance.
type NoteType string

const (
	DebitNote  NoteType = "DEBIT"
	CreditNote NoteType = "CREDIT"
)

// Note represents a debit or credit adjustment against a party. A note may
// reference an invoice by number through RelatedInvoiceNo; the reference is a
// free-text string correlated to either the invoice's system or manual number,
// not a foreign key. Unreferenced notes affect only the party-level balance.
type Note struct {
	NoteID           string          `json:"noteID"` // Primary Key (e.g., UUID)
	NoteType         NoteType        `json:"noteType"`
	NoteNo           string          `json:"noteNo"`
	Date             time.Time       `json:"date"`
	PartyType        PartyType       `json:"partyType"`
	PartyID          string          `json:"partyID"`
	Amount           decimal.Decimal `json:"amount"` // Unsigned; sign is implied by NoteType
	RelatedInvoiceNo string          `json:"relatedInvoiceNo,omitempty"`
	AuditFields
}
