package reconcile

import (
	"github.com/pharmadesk/pharma_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceFigures is the party-level roll-up of a snapshot.
type BalanceFigures struct {
	Opening            decimal.Decimal
	TotalInvoiced      decimal.Decimal
	Settled            decimal.Decimal
	DebitAdjustments   decimal.Decimal
	CreditAdjustments  decimal.Decimal
	Balance            decimal.Decimal
	Outstanding        decimal.Decimal
	Advance            decimal.Decimal
	OverdueOutstanding decimal.Decimal
	Active             bool
}

// AggregateBalance rolls the snapshot up into one signed balance and its
// outstanding/advance split.
//
// Invoices enter at their nominal totals and note adjustments are applied once
// at the party level, so matched-note amounts are never subtracted twice and
// unmatched notes still count exactly once. Settled is the raw, uncapped
// payment sum: overpayment on an invoice surfaces here as advance, not on the
// invoice.
func AggregateBalance(snap Snapshot) BalanceFigures {
	f := BalanceFigures{
		Opening:           snap.Party.OpeningBalance,
		TotalInvoiced:     decimal.Zero,
		Settled:           decimal.Zero,
		DebitAdjustments:  decimal.Zero,
		CreditAdjustments: decimal.Zero,
	}

	overdueTotal := decimal.Zero
	for _, inv := range snap.Invoices {
		f.TotalInvoiced = f.TotalInvoiced.Add(inv.Total)
		if inv.IsOverdue(snap.Today) {
			overdueTotal = overdueTotal.Add(inv.Total)
		}
	}

	for _, note := range snap.Notes {
		switch note.NoteType {
		case domain.DebitNote:
			f.DebitAdjustments = f.DebitAdjustments.Add(note.Amount)
		case domain.CreditNote:
			f.CreditAdjustments = f.CreditAdjustments.Add(note.Amount)
		}
	}

	for _, p := range snap.settlementPayments() {
		f.Settled = f.Settled.Add(p.Amount)
	}

	f.Balance = f.Opening.
		Add(f.TotalInvoiced).
		Add(f.DebitAdjustments).
		Sub(f.CreditAdjustments).
		Sub(f.Settled)

	f.Outstanding = decimal.Max(decimal.Zero, f.Balance)
	f.Advance = decimal.Max(decimal.Zero, f.Balance.Neg())

	// Capped so the overdue figure never exceeds what is actually outstanding,
	// which also guards against double counting when an advance exists.
	f.OverdueOutstanding = decimal.Min(f.Outstanding, overdueTotal)

	f.Active = !f.Opening.IsZero() ||
		f.TotalInvoiced.IsPositive() ||
		f.Settled.IsPositive() ||
		f.DebitAdjustments.IsPositive() ||
		f.CreditAdjustments.IsPositive()

	return f
}
