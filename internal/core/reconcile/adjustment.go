package reconcile

import (
	"github.com/pharmadesk/pharma_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// NoteAdjustment holds the summed debit and credit note amounts matched to a
// single invoice.
type NoteAdjustment struct {
	Debit  decimal.Decimal
	Credit decimal.Decimal
}

// Apply returns the invoice's adjusted total: the nominal total plus matched
// debits minus matched credits, floored at zero even when credit notes exceed
// the nominal amount.
func (a NoteAdjustment) Apply(nominal decimal.Decimal) decimal.Decimal {
	adjusted := nominal.Add(a.Debit).Sub(a.Credit)
	if adjusted.IsNegative() {
		return decimal.Zero
	}
	return adjusted
}

// ResolveAdjustment sums the notes whose related-invoice reference matches the
// invoice's system or manual number. A note whose reference matches neither
// key of any invoice still counts once at the party level (see
// AggregateBalance), so nothing is double counted or lost.
func ResolveAdjustment(inv domain.Invoice, notes []domain.Note) NoteAdjustment {
	sysKey := NormalizeNumber(inv.SystemNumber)
	manKey := NormalizeNumber(inv.ManualNumber)

	adj := NoteAdjustment{Debit: decimal.Zero, Credit: decimal.Zero}
	for _, note := range notes {
		ref := NormalizeNumber(note.RelatedInvoiceNo)
		if ref == "" {
			continue
		}
		if !(ref == sysKey && sysKey != "") && !(ref == manKey && manKey != "") {
			continue
		}
		switch note.NoteType {
		case domain.DebitNote:
			adj.Debit = adj.Debit.Add(note.Amount)
		case domain.CreditNote:
			adj.Credit = adj.Credit.Add(note.Amount)
		}
	}
	return adj
}

// AdjustedTotal is a convenience wrapper combining ResolveAdjustment and Apply.
func AdjustedTotal(inv domain.Invoice, notes []domain.Note) decimal.Decimal {
	return ResolveAdjustment(inv, notes).Apply(inv.Total)
}
