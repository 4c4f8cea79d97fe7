package reconcile_test

import (
	"testing"
	"time"

	"github.com/pharmadesk/pharma_ledger_app/internal/core/domain"
	"github.com/pharmadesk/pharma_ledger_app/internal/core/reconcile"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchPayments_ByInvoiceID(t *testing.T) {
	inv := testInvoice("inv-1", "INV-001", "10000", testToday)

	pay := testPayment("pay-1", "4000", testToday)
	pay.InvoiceID = "inv-1"

	other := testPayment("pay-2", "1000", testToday)
	other.InvoiceID = "inv-2"

	rows := reconcile.MatchPayments(inv, []domain.Payment{pay, other})
	require.Len(t, rows, 1)
	assert.Equal(t, "pay-1", rows[0].PaymentID)
}

func TestMatchPayments_ByReferenceSubstring(t *testing.T) {
	inv := testInvoice("inv-1", "INV-001", "10000", testToday)
	inv.ManualNumber = "BK-42"

	tests := []struct {
		name      string
		reference string
		want      bool
	}{
		{"reference embedding system number", "NEFT against INV-001, June", true},
		{"case insensitive reference", "neft against inv-001", true},
		{"reference embedding manual number", "cheque for bk-42", true},
		{"unrelated reference", "advance for next quarter", false},
		{"empty reference", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pay := testPayment("pay-1", "1000", testToday)
			pay.Reference = tt.reference

			rows := reconcile.MatchPayments(inv, []domain.Payment{pay})
			if tt.want {
				assert.Len(t, rows, 1)
			} else {
				assert.Empty(t, rows)
			}
		})
	}
}

func TestMatchPayments_FiltersStatusAndDirection(t *testing.T) {
	inv := testInvoice("inv-1", "INV-001", "10000", testToday)

	pending := testPayment("pay-1", "1000", testToday)
	pending.InvoiceID = "inv-1"
	pending.Status = domain.Pending

	failed := testPayment("pay-2", "1000", testToday)
	failed.InvoiceID = "inv-1"
	failed.Status = domain.Failed

	wrongDirection := testPayment("pay-3", "1000", testToday)
	wrongDirection.InvoiceID = "inv-1"
	wrongDirection.Direction = domain.Out // refund, not settlement, for a customer

	good := testPayment("pay-4", "1000", testToday)
	good.InvoiceID = "inv-1"

	rows := reconcile.MatchPayments(inv, []domain.Payment{pending, failed, wrongDirection, good})
	require.Len(t, rows, 1)
	assert.Equal(t, "pay-4", rows[0].PaymentID)
}

func TestMatchPayments_OrderedByDateWithCumulative(t *testing.T) {
	inv := testInvoice("inv-1", "INV-001", "10000", testToday)

	later := testPayment("pay-later", "3000", testToday.AddDate(0, 0, 10))
	later.InvoiceID = "inv-1"
	earlier := testPayment("pay-earlier", "2000", testToday.AddDate(0, 0, 1))
	earlier.InvoiceID = "inv-1"

	rows := reconcile.MatchPayments(inv, []domain.Payment{later, earlier})
	require.Len(t, rows, 2)
	assert.Equal(t, "pay-earlier", rows[0].PaymentID)
	assert.True(t, rows[0].Cumulative.Equal(decimal.NewFromInt(2000)))
	assert.Equal(t, "pay-later", rows[1].PaymentID)
	assert.True(t, rows[1].Cumulative.Equal(decimal.NewFromInt(5000)))
}

// A reference like "paid INV-001" also contains no other number, but a
// reference naming INV-0010 contains INV-001 as a substring. Each per-invoice
// query answers independently, so such a payment shows up under both invoices;
// the tie-break is a documented limitation of number-in-reference matching.
func TestMatchPayments_OverlappingNumbersMatchBothInvoices(t *testing.T) {
	invShort := testInvoice("inv-1", "INV-001", "1000", testToday)
	invLong := testInvoice("inv-10", "INV-0010", "1000", testToday)

	pay := testPayment("pay-1", "500", testToday)
	pay.Reference = "transfer INV-0010"

	assert.Len(t, reconcile.MatchPayments(invShort, []domain.Payment{pay}), 1)
	assert.Len(t, reconcile.MatchPayments(invLong, []domain.Payment{pay}), 1)
}

func TestMatchPayments_SupplierSettlesWithOutboundPayments(t *testing.T) {
	inv := domain.Invoice{
		InvoiceID:    "pur-1",
		SystemNumber: "PUR-055",
		Kind:         domain.Purchase,
		PartyType:    domain.Supplier,
		PartyID:      "party-1",
		IssueDate:    testToday,
		Total:        decimal.NewFromInt(8000),
	}

	pay := domain.Payment{
		PaymentID: "pay-1",
		Date:      time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC),
		Direction: domain.Out,
		PartyType: domain.Supplier,
		PartyID:   "party-1",
		Reference: "PUR-055 settlement",
		Amount:    decimal.NewFromInt(8000),
		Status:    domain.Completed,
	}

	rows := reconcile.MatchPayments(inv, []domain.Payment{pay})
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Cumulative.Equal(decimal.NewFromInt(8000)))
}
