package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SettlementStatus is the derived payment state of a single invoice.
type SettlementStatus string

const (
	Paid          SettlementStatus = "PAID"
	PartiallyPaid SettlementStatus = "PARTIALLY_PAID"
	Unpaid        SettlementStatus = "UNPAID"
)

// InvoiceSettlement holds the per-invoice settlement figures derived from
// matched payments: 0 <= Paid <= adjusted total, Remaining = adjusted total - Paid.
type InvoiceSettlement struct {
	Paid      decimal.Decimal  `json:"paid"`
	Remaining decimal.Decimal  `json:"remaining"`
	Status    SettlementStatus `json:"status"`
}

// MatchedPaymentRow is one payment attributed to an invoice, with the running
// paid-to-date total used for statement display.
type MatchedPaymentRow struct {
	PaymentID  string          `json:"paymentID"`
	Date       time.Time       `json:"date"`
	Reference  string          `json:"reference,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	Cumulative decimal.Decimal `json:"cumulative"`
}

// HistoryRowKind distinguishes the synthetic opening row from invoice rows.
type HistoryRowKind string

const (
	HistoryOpening HistoryRowKind = "OPENING"
	HistoryInvoice HistoryRowKind = "INVOICE"
)

// InvoiceHistoryRow is one row of the per-party invoice history view: the
// synthetic opening-balance row (when opening != 0) followed by one row per
// invoice in date-ascending order, each expandable into its matched payments.
type InvoiceHistoryRow struct {
	Kind          HistoryRowKind      `json:"kind"`
	InvoiceID     string              `json:"invoiceID,omitempty"`
	SystemNumber  string              `json:"systemNumber,omitempty"`
	ManualNumber  string              `json:"manualNumber,omitempty"`
	Date          time.Time           `json:"date"`
	AdjustedTotal decimal.Decimal     `json:"adjustedTotal"`
	Paid          decimal.Decimal     `json:"paid"`
	Remaining     decimal.Decimal     `json:"remaining"`
	Status        SettlementStatus    `json:"status,omitempty"`
	Payments      []MatchedPaymentRow `json:"payments,omitempty"`
}

// TransactionKind identifies the source record behind a timeline row.
type TransactionKind string

const (
	TxnOpening    TransactionKind = "OPENING"
	TxnInvoice    TransactionKind = "INVOICE"
	TxnDebitNote  TransactionKind = "DEBIT_NOTE"
	TxnCreditNote TransactionKind = "CREDIT_NOTE"
	TxnPayment    TransactionKind = "PAYMENT"
)

// TransactionRow is one row of the date-descending statement timeline.
// SignedAmount carries the effect on the party balance: invoices and debit
// notes positive, credit notes and settlement payments negative.
type TransactionRow struct {
	Date         time.Time       `json:"date"`
	Kind         TransactionKind `json:"kind"`
	Reference    string          `json:"reference"`
	SignedAmount decimal.Decimal `json:"signedAmount"`
}

// PartySummary is the full reconciliation output for one party: the rolled-up
// balance figures plus the two report views built from the same snapshot.
type PartySummary struct {
	PartyID            string          `json:"partyID"`
	PartyType          PartyType       `json:"partyType"`
	Opening            decimal.Decimal `json:"opening"`
	TotalInvoiced      decimal.Decimal `json:"totalInvoiced"`
	Settled            decimal.Decimal `json:"settled"`
	DebitAdjustments   decimal.Decimal `json:"debitAdjustments"`
	CreditAdjustments  decimal.Decimal `json:"creditAdjustments"`
	Balance            decimal.Decimal `json:"balance"`
	Outstanding        decimal.Decimal `json:"outstanding"`
	Advance            decimal.Decimal `json:"advance"`
	OverdueOutstanding decimal.Decimal `json:"overdueOutstanding"`
	Active             bool            `json:"active"`

	InvoiceRows  []InvoiceHistoryRow `json:"invoiceRows"`
	TimelineRows []TransactionRow    `json:"timelineRows"`
}
