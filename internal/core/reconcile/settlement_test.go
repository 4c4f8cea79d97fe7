package reconcile_test

import (
	"testing"

	"github.com/pharmadesk/pharma_ledger_app/internal/core/domain"
	"github.com/pharmadesk/pharma_ledger_app/internal/core/reconcile"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func matchedRows(amounts ...string) []domain.MatchedPaymentRow {
	rows := make([]domain.MatchedPaymentRow, 0, len(amounts))
	cumulative := decimal.Zero
	for i, a := range amounts {
		amount := decimal.RequireFromString(a)
		cumulative = cumulative.Add(amount)
		rows = append(rows, domain.MatchedPaymentRow{
			PaymentID:  string(rune('a' + i)),
			Amount:     amount,
			Cumulative: cumulative,
		})
	}
	return rows
}

func TestSettleInvoice(t *testing.T) {
	tests := []struct {
		name          string
		adjustedTotal string
		payments      []string
		wantPaid      string
		wantRemaining string
		wantStatus    domain.SettlementStatus
	}{
		{
			name:          "no payments",
			adjustedTotal: "10000",
			payments:      nil,
			wantPaid:      "0",
			wantRemaining: "10000",
			wantStatus:    domain.Unpaid,
		},
		{
			name:          "partial settlement",
			adjustedTotal: "10000",
			payments:      []string{"4000"},
			wantPaid:      "4000",
			wantRemaining: "6000",
			wantStatus:    domain.PartiallyPaid,
		},
		{
			name:          "exact settlement across installments",
			adjustedTotal: "10000",
			payments:      []string{"4000", "6000"},
			wantPaid:      "10000",
			wantRemaining: "0",
			wantStatus:    domain.Paid,
		},
		{
			name:          "overpayment is capped at the adjusted total",
			adjustedTotal: "5000",
			payments:      []string{"7000"},
			wantPaid:      "5000",
			wantRemaining: "0",
			wantStatus:    domain.Paid,
		},
		{
			name:          "zero adjusted total absorbs nothing",
			adjustedTotal: "0",
			payments:      []string{"3000"},
			wantPaid:      "0",
			wantRemaining: "0",
			wantStatus:    domain.Paid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reconcile.SettleInvoice(decimal.RequireFromString(tt.adjustedTotal), matchedRows(tt.payments...))
			assert.True(t, got.Paid.Equal(decimal.RequireFromString(tt.wantPaid)), "paid = %s", got.Paid)
			assert.True(t, got.Remaining.Equal(decimal.RequireFromString(tt.wantRemaining)), "remaining = %s", got.Remaining)
			assert.Equal(t, tt.wantStatus, got.Status)
		})
	}
}

// For a fixed adjusted total, growing the matched sum can only move the status
// forward: Unpaid, then PartiallyPaid, then Paid.
func TestSettleInvoice_StatusMonotonicity(t *testing.T) {
	adjusted := decimal.NewFromInt(10000)

	rank := map[domain.SettlementStatus]int{
		domain.Unpaid:        0,
		domain.PartiallyPaid: 1,
		domain.Paid:          2,
	}

	previous := -1
	sums := []string{"0", "1", "2500", "9999", "10000", "10001", "50000"}
	for _, sum := range sums {
		got := reconcile.SettleInvoice(adjusted, matchedRows(sum))
		assert.GreaterOrEqual(t, rank[got.Status], previous, "status regressed at matched sum %s", sum)
		previous = rank[got.Status]

		assert.False(t, got.Paid.IsNegative())
		assert.True(t, got.Paid.LessThanOrEqual(adjusted))
		assert.True(t, got.Remaining.Equal(adjusted.Sub(got.Paid)))
	}
}
