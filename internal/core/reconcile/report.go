package reconcile

import (
	"sort"

	"github.com/pharmadesk/pharma_ledger_app/internal/core/domain"
)

// BuildInvoiceHistory produces the per-party invoice history view: a synthetic
// opening-balance row when the opening is non-zero, then one row per invoice
// in date-ascending order, each carrying its settlement figures and matched
// payment detail rows.
func BuildInvoiceHistory(snap Snapshot) []domain.InvoiceHistoryRow {
	rows := make([]domain.InvoiceHistoryRow, 0, len(snap.Invoices)+1)

	if !snap.Party.OpeningBalance.IsZero() {
		rows = append(rows, domain.InvoiceHistoryRow{
			Kind:          domain.HistoryOpening,
			AdjustedTotal: snap.Party.OpeningBalance,
			Remaining:     snap.Party.OpeningBalance,
		})
	}

	invoices := make([]domain.Invoice, len(snap.Invoices))
	copy(invoices, snap.Invoices)
	sort.SliceStable(invoices, func(i, j int) bool {
		return invoices[i].IssueDate.Before(invoices[j].IssueDate)
	})

	settlementPayments := snap.settlementPayments()
	for _, inv := range invoices {
		adjusted := AdjustedTotal(inv, snap.Notes)
		matched := MatchPayments(inv, settlementPayments)
		settlement := SettleInvoice(adjusted, matched)

		rows = append(rows, domain.InvoiceHistoryRow{
			Kind:          domain.HistoryInvoice,
			InvoiceID:     inv.InvoiceID,
			SystemNumber:  inv.SystemNumber,
			ManualNumber:  inv.ManualNumber,
			Date:          inv.IssueDate,
			AdjustedTotal: adjusted,
			Paid:          settlement.Paid,
			Remaining:     settlement.Remaining,
			Status:        settlement.Status,
			Payments:      matched,
		})
	}

	return rows
}

// BuildTimeline produces the date-descending statement timeline: opening
// balance, every invoice at its nominal total, every note signed by type, and
// every settlement payment signed negative. Notes appear as their own rows, so
// invoices enter nominal and nothing is counted twice.
func BuildTimeline(snap Snapshot) []domain.TransactionRow {
	rows := make([]domain.TransactionRow, 0, len(snap.Invoices)+len(snap.Notes)+len(snap.Payments)+1)

	if !snap.Party.OpeningBalance.IsZero() {
		rows = append(rows, domain.TransactionRow{
			Kind:         domain.TxnOpening,
			Reference:    "Opening Balance",
			SignedAmount: snap.Party.OpeningBalance,
		})
	}

	for _, inv := range snap.Invoices {
		rows = append(rows, domain.TransactionRow{
			Date:         inv.IssueDate,
			Kind:         domain.TxnInvoice,
			Reference:    inv.SystemNumber,
			SignedAmount: inv.Total,
		})
	}

	for _, note := range snap.Notes {
		kind := domain.TxnDebitNote
		amount := note.Amount
		if note.NoteType == domain.CreditNote {
			kind = domain.TxnCreditNote
			amount = amount.Neg()
		}
		rows = append(rows, domain.TransactionRow{
			Date:         note.Date,
			Kind:         kind,
			Reference:    note.NoteNo,
			SignedAmount: amount,
		})
	}

	for _, p := range snap.settlementPayments() {
		ref := p.Reference
		if ref == "" {
			ref = p.PaymentID
		}
		rows = append(rows, domain.TransactionRow{
			Date:         p.Date,
			Kind:         domain.TxnPayment,
			Reference:    ref,
			SignedAmount: p.Amount.Neg(),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Date.After(rows[j].Date)
	})

	return rows
}

// SummarizeParty composes the aggregator and the report builders into the full
// reconciliation output for one party.
func SummarizeParty(snap Snapshot) domain.PartySummary {
	figures := AggregateBalance(snap)

	return domain.PartySummary{
		PartyID:            snap.Party.PartyID,
		PartyType:          snap.Party.PartyType,
		Opening:            figures.Opening,
		TotalInvoiced:      figures.TotalInvoiced,
		Settled:            figures.Settled,
		DebitAdjustments:   figures.DebitAdjustments,
		CreditAdjustments:  figures.CreditAdjustments,
		Balance:            figures.Balance,
		Outstanding:        figures.Outstanding,
		Advance:            figures.Advance,
		OverdueOutstanding: figures.OverdueOutstanding,
		Active:             figures.Active,
		InvoiceRows:        BuildInvoiceHistory(snap),
		TimelineRows:       BuildTimeline(snap),
	}
}
