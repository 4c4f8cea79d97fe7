package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentDirection indicates the flow of money relative to us.
type PaymentDirection string

const (
	In  PaymentDirection = "IN"
	Out PaymentDirection = "OUT"
)

// PaymentStatus indicates the processing state of a payment.
// Only completed payments participate in balance math.
type PaymentStatus string

const (
	Completed PaymentStatus = "COMPLETED"
	Pending   PaymentStatus = "PENDING"
	Failed    PaymentStatus = "FAILED"
)

// Payment represents money received from or paid to a party. InvoiceID is an
// optional direct link to the invoice being settled; Reference is free text
// that may embed an invoice number instead.
type Payment struct {
	PaymentID string           `json:"paymentID"` // Primary Key (e.g., UUID)
	Date      time.Time        `json:"date"`
	Direction PaymentDirection `json:"direction"`
	PartyType PartyType        `json:"partyType"`
	PartyID   string           `json:"partyID"`
	InvoiceID string           `json:"invoiceID,omitempty"`
	Reference string           `json:"reference,omitempty"`
	Amount    decimal.Decimal  `json:"amount"` // Unsigned
	Status    PaymentStatus    `json:"status"`
	AuditFields
}

// SettlementDirectionFor returns the payment direction that reduces a party's
// balance: money comes In from customers and goes Out to suppliers. The
// direction of a payment is derived from the party type at creation, not
// freely chosen.
func SettlementDirectionFor(partyType PartyType) PaymentDirection {
	if partyType == Supplier {
		return Out
	}
	return In
}

// CountsTowardSettlement reports whether the payment participates in the
// settlement math for a party of the given type.
func (p Payment) CountsTowardSettlement(partyType PartyType) bool {
	return p.Status == Completed && p.Direction == SettlementDirectionFor(partyType)
}
