package reconcile

import (
	"github.com/pharmadesk/pharma_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SettleInvoice derives the per-invoice settlement figures from its adjusted
// total and matched payments. Paid is capped at the adjusted total:
// overpayment never inflates an invoice past 100%, the excess instead shows up
// as advance at the party level, where the aggregator uses the raw sum.
func SettleInvoice(adjustedTotal decimal.Decimal, matched []domain.MatchedPaymentRow) domain.InvoiceSettlement {
	paidRaw := decimal.Zero
	for _, row := range matched {
		paidRaw = paidRaw.Add(row.Amount)
	}
	if paidRaw.IsNegative() {
		paidRaw = decimal.Zero
	}

	paid := paidRaw
	if paid.GreaterThan(adjustedTotal) {
		paid = adjustedTotal
	}
	remaining := adjustedTotal.Sub(paid)

	status := domain.Unpaid
	switch {
	case remaining.LessThanOrEqual(decimal.Zero):
		status = domain.Paid
	case paid.GreaterThan(decimal.Zero):
		status = domain.PartiallyPaid
	}

	return domain.InvoiceSettlement{
		Paid:      paid,
		Remaining: remaining,
		Status:    status,
	}
}
