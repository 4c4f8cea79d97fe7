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

var testToday = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

func testParty(partyType domain.PartyType, opening string) domain.Party {
	return domain.Party{
		PartyID:        "party-1",
		Name:           "Apex Pharma Distributors",
		PartyType:      partyType,
		OpeningBalance: decimal.RequireFromString(opening),
	}
}

func testInvoice(id, sysNo string, total string, issueDate time.Time) domain.Invoice {
	return domain.Invoice{
		InvoiceID:    id,
		SystemNumber: sysNo,
		Kind:         domain.Sale,
		PartyType:    domain.Customer,
		PartyID:      "party-1",
		IssueDate:    issueDate,
		Total:        decimal.RequireFromString(total),
	}
}

func testPayment(id string, amount string, date time.Time) domain.Payment {
	return domain.Payment{
		PaymentID: id,
		Date:      date,
		Direction: domain.In,
		PartyType: domain.Customer,
		PartyID:   "party-1",
		Amount:    decimal.RequireFromString(amount),
		Status:    domain.Completed,
	}
}

func testNote(id string, noteType domain.NoteType, amount, relatedNo string, date time.Time) domain.Note {
	return domain.Note{
		NoteID:           id,
		NoteType:         noteType,
		NoteNo:           "NT-" + id,
		Date:             date,
		PartyType:        domain.Customer,
		PartyID:          "party-1",
		Amount:           decimal.RequireFromString(amount),
		RelatedInvoiceNo: relatedNo,
	}
}

func TestNewSnapshot_ExcludesDanglingRecords(t *testing.T) {
	party := testParty(domain.Customer, "0")

	foreignInvoice := testInvoice("inv-x", "INV-900", "100", testToday)
	foreignInvoice.PartyID = "someone-else"
	foreignPayment := testPayment("pay-x", "50", testToday)
	foreignPayment.PartyID = "someone-else"
	foreignNote := testNote("note-x", domain.DebitNote, "10", "", testToday)
	foreignNote.PartyType = domain.Supplier

	snap, warnings := reconcile.NewSnapshot(party,
		[]domain.Invoice{testInvoice("inv-1", "INV-001", "100", testToday), foreignInvoice},
		[]domain.Note{foreignNote},
		[]domain.Payment{foreignPayment},
		testToday,
	)

	assert.Len(t, snap.Invoices, 1)
	assert.Empty(t, snap.Notes)
	assert.Empty(t, snap.Payments)
	assert.Len(t, warnings, 3)
}

func TestNewSnapshot_ClampsNegativeAmounts(t *testing.T) {
	party := testParty(domain.Customer, "0")

	inv := testInvoice("inv-1", "INV-001", "-500", testToday)
	pay := testPayment("pay-1", "-20", testToday)
	note := testNote("note-1", domain.CreditNote, "-1", "", testToday)

	snap, warnings := reconcile.NewSnapshot(party,
		[]domain.Invoice{inv}, []domain.Note{note}, []domain.Payment{pay}, testToday)

	require.Len(t, snap.Invoices, 1)
	require.Len(t, snap.Notes, 1)
	require.Len(t, snap.Payments, 1)
	assert.True(t, snap.Invoices[0].Total.IsZero())
	assert.True(t, snap.Notes[0].Amount.IsZero())
	assert.True(t, snap.Payments[0].Amount.IsZero())
	assert.Len(t, warnings, 3)
}

func TestNormalizeNumber(t *testing.T) {
	assert.Equal(t, "inv-001", reconcile.NormalizeNumber("  INV-001  "))
	assert.Equal(t, "", reconcile.NormalizeNumber("   "))
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"1234.56", "1234.56", true},
		{"  42 ", "42", true},
		{"-10", "-10", true},
		{"", "0", false},
		{"abc", "0", false},
		{"12,000", "0", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := reconcile.ParseAmount(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}
}
