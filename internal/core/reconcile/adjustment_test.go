package reconcile_test

import (
	"testing"

	"github.com/pharmadesk/pharma_ledger_app/internal/core/domain"
	"github.com/pharmadesk/pharma_ledger_app/internal/core/reconcile"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAdjustedTotal(t *testing.T) {
	inv := testInvoice("inv-1", "INV-001", "10000", testToday)
	inv.ManualNumber = "BK-77"

	tests := []struct {
		name  string
		notes []domain.Note
		want  string
	}{
		{
			name:  "no notes leaves nominal total",
			notes: nil,
			want:  "10000",
		},
		{
			name: "credit note by system number",
			notes: []domain.Note{
				testNote("n1", domain.CreditNote, "2500", "INV-001", testToday),
			},
			want: "7500",
		},
		{
			name: "match is case and whitespace insensitive",
			notes: []domain.Note{
				testNote("n1", domain.CreditNote, "2500", "  inv-001 ", testToday),
			},
			want: "7500",
		},
		{
			name: "debit note by manual number",
			notes: []domain.Note{
				testNote("n1", domain.DebitNote, "300", "bk-77", testToday),
			},
			want: "10300",
		},
		{
			name: "multiple notes of both types sum per type",
			notes: []domain.Note{
				testNote("n1", domain.DebitNote, "500", "INV-001", testToday),
				testNote("n2", domain.CreditNote, "1200", "INV-001", testToday),
				testNote("n3", domain.CreditNote, "800", "BK-77", testToday),
			},
			want: "8500",
		},
		{
			name: "credit notes exceeding nominal floor at zero",
			notes: []domain.Note{
				testNote("n1", domain.CreditNote, "15000", "INV-001", testToday),
			},
			want: "0",
		},
		{
			name: "unrelated note leaves invoice untouched",
			notes: []domain.Note{
				testNote("n1", domain.DebitNote, "999", "INV-999", testToday),
			},
			want: "10000",
		},
		{
			name: "note without reference never matches",
			notes: []domain.Note{
				testNote("n1", domain.CreditNote, "999", "", testToday),
			},
			want: "10000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reconcile.AdjustedTotal(inv, tt.notes)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestAdjustedTotal_EmptyManualNumberDoesNotMatchEmptyReference(t *testing.T) {
	inv := testInvoice("inv-1", "INV-001", "1000", testToday) // no manual number
	note := testNote("n1", domain.CreditNote, "400", "   ", testToday)

	got := reconcile.AdjustedTotal(inv, []domain.Note{note})
	assert.True(t, got.Equal(decimal.NewFromInt(1000)))
}

func TestAdjustedTotal_NeverNegative(t *testing.T) {
	inv := testInvoice("inv-1", "INV-001", "100", testToday)
	notes := []domain.Note{
		testNote("n1", domain.CreditNote, "5000", "INV-001", testToday),
		testNote("n2", domain.CreditNote, "7000", "INV-001", testToday),
		testNote("n3", domain.DebitNote, "50", "INV-001", testToday),
	}

	got := reconcile.AdjustedTotal(inv, notes)
	assert.False(t, got.IsNegative())
	assert.True(t, got.IsZero())
}
