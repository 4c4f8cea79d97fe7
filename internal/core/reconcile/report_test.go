package reconcile_test

import (
	"encoding/json"
	"testing"

	"github.com/pharmadesk/pharma_ledger_app/internal/core/domain"
	"github.com/pharmadesk/pharma_ledger_app/internal/core/reconcile"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeParty_BasicSettlement(t *testing.T) {
	inv := testInvoice("inv-1", "INV-001", "10000", testToday)
	pay := testPayment("pay-1", "4000", testToday.AddDate(0, 0, 5))
	pay.Reference = "NEFT INV-001"

	snap := buildSnapshot(t, testParty(domain.Customer, "0"),
		[]domain.Invoice{inv}, nil, []domain.Payment{pay})

	summary := reconcile.SummarizeParty(snap)

	require.Len(t, summary.InvoiceRows, 1)
	row := summary.InvoiceRows[0]
	assert.Equal(t, domain.HistoryInvoice, row.Kind)
	assert.True(t, row.Paid.Equal(decimal.NewFromInt(4000)))
	assert.True(t, row.Remaining.Equal(decimal.NewFromInt(6000)))
	assert.Equal(t, domain.PartiallyPaid, row.Status)
	require.Len(t, row.Payments, 1)
	assert.True(t, row.Payments[0].Cumulative.Equal(decimal.NewFromInt(4000)))

	assert.True(t, summary.Balance.Equal(decimal.NewFromInt(6000)))
	assert.True(t, summary.Outstanding.Equal(decimal.NewFromInt(6000)))
	assert.True(t, summary.Advance.IsZero())
}

func TestSummarizeParty_CreditNoteOffsetsInvoice(t *testing.T) {
	inv := testInvoice("inv-1", "INV-001", "10000", testToday)
	note := testNote("n1", domain.CreditNote, "10000", "INV-001", testToday)
	pay := testPayment("pay-1", "2000", testToday.AddDate(0, 0, 1))
	pay.InvoiceID = "inv-1"

	snap := buildSnapshot(t, testParty(domain.Customer, "0"),
		[]domain.Invoice{inv}, []domain.Note{note}, []domain.Payment{pay})

	summary := reconcile.SummarizeParty(snap)

	require.Len(t, summary.InvoiceRows, 1)
	row := summary.InvoiceRows[0]
	assert.True(t, row.AdjustedTotal.IsZero())
	assert.True(t, row.Paid.IsZero(), "payment against a fully offset invoice is capped at zero")

	// The payment still reduces the party balance: 10000 - 10000 - 2000.
	assert.True(t, summary.Balance.Equal(decimal.NewFromInt(-2000)))
	assert.True(t, summary.Advance.Equal(decimal.NewFromInt(2000)))
}

func TestBuildInvoiceHistory_OpeningRowAndOrdering(t *testing.T) {
	older := testInvoice("inv-1", "INV-001", "100", testToday.AddDate(0, -1, 0))
	newer := testInvoice("inv-2", "INV-002", "200", testToday)

	snap := buildSnapshot(t, testParty(domain.Customer, "750"),
		[]domain.Invoice{newer, older}, nil, nil)

	rows := reconcile.BuildInvoiceHistory(snap)
	require.Len(t, rows, 3)
	assert.Equal(t, domain.HistoryOpening, rows[0].Kind)
	assert.True(t, rows[0].Remaining.Equal(decimal.NewFromInt(750)))
	assert.Equal(t, "INV-001", rows[1].SystemNumber)
	assert.Equal(t, "INV-002", rows[2].SystemNumber)
}

func TestBuildInvoiceHistory_NoOpeningRowForZeroOpening(t *testing.T) {
	snap := buildSnapshot(t, testParty(domain.Customer, "0"),
		[]domain.Invoice{testInvoice("inv-1", "INV-001", "100", testToday)}, nil, nil)

	rows := reconcile.BuildInvoiceHistory(snap)
	require.Len(t, rows, 1)
	assert.Equal(t, domain.HistoryInvoice, rows[0].Kind)
}

func TestBuildTimeline_SignsAndOrdering(t *testing.T) {
	inv := testInvoice("inv-1", "INV-001", "10000", testToday.AddDate(0, 0, -20))
	debit := testNote("n1", domain.DebitNote, "500", "INV-001", testToday.AddDate(0, 0, -15))
	credit := testNote("n2", domain.CreditNote, "700", "", testToday.AddDate(0, 0, -10))
	pay := testPayment("pay-1", "4000", testToday.AddDate(0, 0, -5))
	pay.Reference = "NEFT INV-001"
	pending := testPayment("pay-2", "9999", testToday.AddDate(0, 0, -1))
	pending.Status = domain.Pending

	snap := buildSnapshot(t, testParty(domain.Customer, "1000"),
		[]domain.Invoice{inv}, []domain.Note{debit, credit}, []domain.Payment{pay, pending})

	rows := reconcile.BuildTimeline(snap)
	require.Len(t, rows, 5, "pending payment must not appear")

	// Date-descending: payment, credit note, debit note, invoice, opening.
	assert.Equal(t, domain.TxnPayment, rows[0].Kind)
	assert.True(t, rows[0].SignedAmount.Equal(decimal.NewFromInt(-4000)))
	assert.Equal(t, domain.TxnCreditNote, rows[1].Kind)
	assert.True(t, rows[1].SignedAmount.Equal(decimal.NewFromInt(-700)))
	assert.Equal(t, domain.TxnDebitNote, rows[2].Kind)
	assert.True(t, rows[2].SignedAmount.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, domain.TxnInvoice, rows[3].Kind)
	assert.True(t, rows[3].SignedAmount.Equal(decimal.NewFromInt(10000)))
	assert.Equal(t, domain.TxnOpening, rows[4].Kind)
	assert.True(t, rows[4].SignedAmount.Equal(decimal.NewFromInt(1000)))

	// The timeline rows replay to the same balance the aggregator computes.
	replayed := decimal.Zero
	for _, row := range rows {
		replayed = replayed.Add(row.SignedAmount)
	}
	assert.True(t, replayed.Equal(reconcile.AggregateBalance(snap).Balance))
}

func TestSummarizeParty_Idempotent(t *testing.T) {
	inv := testInvoice("inv-1", "INV-001", "10000", testToday)
	note := testNote("n1", domain.DebitNote, "150", "INV-001", testToday)
	pay := testPayment("pay-1", "4000", testToday.AddDate(0, 0, 2))
	pay.Reference = "INV-001"

	snap := buildSnapshot(t, testParty(domain.Customer, "500"),
		[]domain.Invoice{inv}, []domain.Note{note}, []domain.Payment{pay})

	first, err := json.Marshal(reconcile.SummarizeParty(snap))
	require.NoError(t, err)
	second, err := json.Marshal(reconcile.SummarizeParty(snap))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
