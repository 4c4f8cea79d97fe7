// Package reconcile derives per-invoice settlement state and party-level
// balances from a point-in-time snapshot of a party's records. Every function
// here is a pure projection: no I/O, no shared state, and recomputation from
// an unchanged snapshot yields identical output.
package reconcile

import (
	"fmt"
	"strings"
	"time"

	"github.com/pharmadesk/pharma_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Snapshot is a read-only view of one party's records. It is built once per
// computation from whatever store the host provides; the engine never writes.
type Snapshot struct {
	Party    domain.Party
	Invoices []domain.Invoice
	Notes    []domain.Note
	Payments []domain.Payment
	Today    time.Time
}

// Warning reports a record-level anomaly encountered while building a
// snapshot. Anomalies are confined to the offending record and never abort
// the computation.
type Warning struct {
	RecordKind string `json:"recordKind"`
	RecordID   string `json:"recordID"`
	Message    string `json:"message"`
}

func warn(kind, id, format string, args ...any) Warning {
	return Warning{RecordKind: kind, RecordID: id, Message: fmt.Sprintf(format, args...)}
}

// NewSnapshot assembles a sanitized snapshot for the given party. Records that
// do not belong to the party are excluded, and negative amounts are clamped to
// zero; both produce warnings for the caller to log. It never fails.
func NewSnapshot(party domain.Party, invoices []domain.Invoice, notes []domain.Note, payments []domain.Payment, today time.Time) (Snapshot, []Warning) {
	var warnings []Warning

	snap := Snapshot{
		Party: party,
		Today: today,
	}

	for _, inv := range invoices {
		if inv.PartyID != party.PartyID || inv.PartyType != party.PartyType {
			warnings = append(warnings, warn("invoice", inv.InvoiceID, "invoice does not belong to party %s; excluded", party.PartyID))
			continue
		}
		if inv.Total.IsNegative() {
			warnings = append(warnings, warn("invoice", inv.InvoiceID, "negative total %s clamped to zero", inv.Total))
			inv.Total = decimal.Zero
		}
		snap.Invoices = append(snap.Invoices, inv)
	}

	for _, note := range notes {
		if note.PartyID != party.PartyID || note.PartyType != party.PartyType {
			warnings = append(warnings, warn("note", note.NoteID, "note does not belong to party %s; excluded", party.PartyID))
			continue
		}
		if note.Amount.IsNegative() {
			warnings = append(warnings, warn("note", note.NoteID, "negative amount %s clamped to zero", note.Amount))
			note.Amount = decimal.Zero
		}
		snap.Notes = append(snap.Notes, note)
	}

	for _, pay := range payments {
		if pay.PartyID != party.PartyID || pay.PartyType != party.PartyType {
			warnings = append(warnings, warn("payment", pay.PaymentID, "payment does not belong to party %s; excluded", party.PartyID))
			continue
		}
		if pay.Amount.IsNegative() {
			warnings = append(warnings, warn("payment", pay.PaymentID, "negative amount %s clamped to zero", pay.Amount))
			pay.Amount = decimal.Zero
		}
		snap.Payments = append(snap.Payments, pay)
	}

	return snap, warnings
}

// settlementPayments returns the snapshot's payments that count toward
// settlement for the party: completed, with the direction that reduces the
// party's balance.
func (s Snapshot) settlementPayments() []domain.Payment {
	var out []domain.Payment
	for _, p := range s.Payments {
		if p.CountsTowardSettlement(s.Party.PartyType) {
			out = append(out, p)
		}
	}
	return out
}

// NormalizeNumber produces the canonical matching key for an invoice number:
// trimmed and lowercased. Both note and payment references are compared
// through this key.
func NormalizeNumber(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ParseAmount coerces a free-text numeric field from an upstream store into a
// decimal. Malformed input yields zero and false so that a single bad record
// cannot blank an entire ledger; callers should surface the anomaly as a
// non-fatal warning.
func ParseAmount(s string) (decimal.Decimal, bool) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
