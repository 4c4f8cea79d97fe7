package reconcile_test

import (
	"testing"

	"github.com/pharmadesk/pharma_ledger_app/internal/core/domain"
	"github.com/pharmadesk/pharma_ledger_app/internal/core/reconcile"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func buildSnapshot(t *testing.T, party domain.Party, invoices []domain.Invoice, notes []domain.Note, payments []domain.Payment) reconcile.Snapshot {
	t.Helper()
	snap, warnings := reconcile.NewSnapshot(party, invoices, notes, payments, testToday)
	assert.Empty(t, warnings)
	return snap
}

func TestAggregateBalance_OpeningOnly(t *testing.T) {
	// Party paid 3000 in advance before any recorded transaction.
	snap := buildSnapshot(t, testParty(domain.Customer, "-3000"), nil, nil, nil)

	f := reconcile.AggregateBalance(snap)
	assert.True(t, f.Balance.Equal(decimal.NewFromInt(-3000)))
	assert.True(t, f.Outstanding.IsZero())
	assert.True(t, f.Advance.Equal(decimal.NewFromInt(3000)))
	assert.True(t, f.Active)
}

func TestAggregateBalance_OverpaymentBecomesAdvance(t *testing.T) {
	inv := testInvoice("inv-1", "INV-001", "5000", testToday)
	pay := testPayment("pay-1", "7000", testToday)
	pay.InvoiceID = "inv-1"

	snap := buildSnapshot(t, testParty(domain.Customer, "0"),
		[]domain.Invoice{inv}, nil, []domain.Payment{pay})

	f := reconcile.AggregateBalance(snap)
	assert.True(t, f.Settled.Equal(decimal.NewFromInt(7000)), "settled uses the raw sum, not the capped one")
	assert.True(t, f.Balance.Equal(decimal.NewFromInt(-2000)))
	assert.True(t, f.Outstanding.IsZero())
	assert.True(t, f.Advance.Equal(decimal.NewFromInt(2000)))
}

func TestAggregateBalance_UnmatchedDebitNoteCountsOnce(t *testing.T) {
	inv := testInvoice("inv-1", "INV-001", "1000", testToday)
	note := testNote("n1", domain.DebitNote, "250", "INV-MISSING", testToday)

	snap := buildSnapshot(t, testParty(domain.Customer, "0"),
		[]domain.Invoice{inv}, []domain.Note{note}, nil)

	f := reconcile.AggregateBalance(snap)
	assert.True(t, f.Balance.Equal(decimal.NewFromInt(1250)))
	// The invoice itself is untouched by the dangling note.
	assert.True(t, reconcile.AdjustedTotal(inv, snap.Notes).Equal(decimal.NewFromInt(1000)))
}

func TestAggregateBalance_MatchedNotesNotDoubleCounted(t *testing.T) {
	// A credit note tied to an invoice reduces the balance exactly once even
	// though it also reduces that invoice's adjusted total.
	inv := testInvoice("inv-1", "INV-001", "10000", testToday)
	note := testNote("n1", domain.CreditNote, "4000", "INV-001", testToday)

	snap := buildSnapshot(t, testParty(domain.Customer, "0"),
		[]domain.Invoice{inv}, []domain.Note{note}, nil)

	f := reconcile.AggregateBalance(snap)
	assert.True(t, f.Balance.Equal(decimal.NewFromInt(6000)))
}

func TestAggregateBalance_Decomposition(t *testing.T) {
	snapshots := []reconcile.Snapshot{
		buildSnapshot(t, testParty(domain.Customer, "0"), nil, nil, nil),
		buildSnapshot(t, testParty(domain.Customer, "1500"),
			[]domain.Invoice{testInvoice("inv-1", "INV-001", "10000", testToday)},
			[]domain.Note{testNote("n1", domain.CreditNote, "2000", "INV-001", testToday)},
			[]domain.Payment{testPayment("pay-1", "12000", testToday)}),
		buildSnapshot(t, testParty(domain.Customer, "-300"),
			[]domain.Invoice{testInvoice("inv-1", "INV-001", "100", testToday)},
			nil, nil),
	}

	for _, snap := range snapshots {
		f := reconcile.AggregateBalance(snap)
		assert.True(t, f.Balance.Equal(f.Outstanding.Sub(f.Advance)), "balance != outstanding - advance")
		assert.True(t, decimal.Min(f.Outstanding, f.Advance).IsZero(), "outstanding and advance are mutually exclusive")
		assert.True(t, f.OverdueOutstanding.LessThanOrEqual(f.Outstanding), "overdue exceeds outstanding")
	}
}

func TestAggregateBalance_OverdueCappedByOutstanding(t *testing.T) {
	due := testToday.AddDate(0, 0, -30)
	inv := testInvoice("inv-1", "INV-001", "10000", testToday.AddDate(0, -2, 0))
	inv.DueDate = &due

	// Heavy payment leaves only 1000 outstanding although the whole invoice is
	// past due.
	pay := testPayment("pay-1", "9000", testToday)
	pay.InvoiceID = "inv-1"

	snap := buildSnapshot(t, testParty(domain.Customer, "0"),
		[]domain.Invoice{inv}, nil, []domain.Payment{pay})

	f := reconcile.AggregateBalance(snap)
	assert.True(t, f.Outstanding.Equal(decimal.NewFromInt(1000)))
	assert.True(t, f.OverdueOutstanding.Equal(decimal.NewFromInt(1000)))
}

func TestAggregateBalance_StatusHintDrivesOverdue(t *testing.T) {
	inv := testInvoice("inv-1", "INV-001", "500", testToday)
	inv.StatusHint = "Overdue"

	snap := buildSnapshot(t, testParty(domain.Customer, "0"),
		[]domain.Invoice{inv}, nil, nil)

	f := reconcile.AggregateBalance(snap)
	assert.True(t, f.OverdueOutstanding.Equal(decimal.NewFromInt(500)))
}

func TestAggregateBalance_ActiveFlag(t *testing.T) {
	tests := []struct {
		name string
		snap reconcile.Snapshot
		want bool
	}{
		{
			name: "empty party is inactive",
			snap: buildSnapshot(t, testParty(domain.Customer, "0"), nil, nil, nil),
			want: false,
		},
		{
			name: "non-zero opening",
			snap: buildSnapshot(t, testParty(domain.Customer, "-10"), nil, nil, nil),
			want: true,
		},
		{
			name: "invoiced",
			snap: buildSnapshot(t, testParty(domain.Customer, "0"),
				[]domain.Invoice{testInvoice("inv-1", "INV-001", "10", testToday)}, nil, nil),
			want: true,
		},
		{
			name: "note only",
			snap: buildSnapshot(t, testParty(domain.Customer, "0"), nil,
				[]domain.Note{testNote("n1", domain.CreditNote, "10", "", testToday)}, nil),
			want: true,
		},
		{
			name: "payment only",
			snap: buildSnapshot(t, testParty(domain.Customer, "0"), nil, nil,
				[]domain.Payment{testPayment("pay-1", "10", testToday)}),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reconcile.AggregateBalance(tt.snap).Active)
		})
	}
}
