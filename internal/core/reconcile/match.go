package reconcile

import (
	"sort"
	"strings"

	"github.com/pharmadesk/pharma_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// matchPaymentToInvoice decides whether a payment settles the given invoice.
// The direct InvoiceID link wins; otherwise the payment's free-text reference
// matches if it contains the invoice's normalized system or manual number as a
// substring.
//
// Known limitation: because references embed invoice numbers as free text, a
// reference can satisfy the substring test for more than one invoice when
// numbers overlap (e.g. "INV-001" is contained in "INV-0010"). Callers query
// per invoice and the first invoice in iteration order takes the payment; the
// tie-break is intentionally left here in one place so a real foreign key can
// replace the heuristic without touching the rest of the engine.
func matchPaymentToInvoice(p domain.Payment, inv domain.Invoice, sysKey, manKey string) bool {
	if p.InvoiceID != "" && p.InvoiceID == inv.InvoiceID {
		return true
	}
	ref := NormalizeNumber(p.Reference)
	if ref == "" {
		return false
	}
	if sysKey != "" && strings.Contains(ref, sysKey) {
		return true
	}
	if manKey != "" && strings.Contains(ref, manKey) {
		return true
	}
	return false
}

// MatchPayments returns the payments attributed to the invoice, ordered by
// date with a running paid-to-date total per row. Only completed payments with
// the settlement direction for the invoice's party type participate.
func MatchPayments(inv domain.Invoice, payments []domain.Payment) []domain.MatchedPaymentRow {
	sysKey := NormalizeNumber(inv.SystemNumber)
	manKey := NormalizeNumber(inv.ManualNumber)

	var matched []domain.Payment
	for _, p := range payments {
		if !p.CountsTowardSettlement(inv.PartyType) {
			continue
		}
		if matchPaymentToInvoice(p, inv, sysKey, manKey) {
			matched = append(matched, p)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Date.Before(matched[j].Date)
	})

	rows := make([]domain.MatchedPaymentRow, 0, len(matched))
	cumulative := decimal.Zero
	for _, p := range matched {
		cumulative = cumulative.Add(p.Amount)
		rows = append(rows, domain.MatchedPaymentRow{
			PaymentID:  p.PaymentID,
			Date:       p.Date,
			Reference:  p.Reference,
			Amount:     p.Amount,
			Cumulative: cumulative,
		})
	}
	return rows
}
