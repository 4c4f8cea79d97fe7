package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PartyType distinguishes the two kinds of trading partners.
type PartyType string

const (
	Customer PartyType = "CUSTOMER"
	Supplier PartyType = "SUPPLIER"
)

// Party represents a customer or supplier account in the distributor's books.
// OpeningBalance is signed: for customers positive means the party owes us;
// the meaning mirrors for suppliers.
type Party struct {
	PartyID        string          `json:"partyID"` // Primary Key (e.g., UUID)
	Name           string          `json:"name"`
	PartyType      PartyType       `json:"partyType"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}
