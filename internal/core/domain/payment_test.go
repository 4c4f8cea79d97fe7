package domain_test

import (
	"testing"
	"time"

	"github.com/pharmadesk/pharma_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSettlementDirectionFor(t *testing.T) {
	assert.Equal(t, domain.In, domain.SettlementDirectionFor(domain.Customer))
	assert.Equal(t, domain.Out, domain.SettlementDirectionFor(domain.Supplier))
}

func TestPayment_CountsTowardSettlement(t *testing.T) {
	tests := []struct {
		name      string
		payment   domain.Payment
		partyType domain.PartyType
		want      bool
	}{
		{
			name:      "completed inbound payment for customer",
			payment:   domain.Payment{Direction: domain.In, Status: domain.Completed},
			partyType: domain.Customer,
			want:      true,
		},
		{
			name:      "completed outbound payment for supplier",
			payment:   domain.Payment{Direction: domain.Out, Status: domain.Completed},
			partyType: domain.Supplier,
			want:      true,
		},
		{
			name:      "wrong direction for customer",
			payment:   domain.Payment{Direction: domain.Out, Status: domain.Completed},
			partyType: domain.Customer,
			want:      false,
		},
		{
			name:      "pending payment never settles",
			payment:   domain.Payment{Direction: domain.In, Status: domain.Pending},
			partyType: domain.Customer,
			want:      false,
		},
		{
			name:      "failed payment never settles",
			payment:   domain.Payment{Direction: domain.Out, Status: domain.Failed},
			partyType: domain.Supplier,
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.payment.CountsTowardSettlement(tt.partyType))
		})
	}
}

func TestInvoice_IsOverdue(t *testing.T) {
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)
	tomorrow := today.AddDate(0, 0, 1)

	tests := []struct {
		name    string
		invoice domain.Invoice
		want    bool
	}{
		{
			name:    "explicit overdue hint wins regardless of due date",
			invoice: domain.Invoice{StatusHint: "Overdue"},
			want:    true,
		},
		{
			name:    "paid hint suppresses overdue",
			invoice: domain.Invoice{StatusHint: "Paid", DueDate: &yesterday},
			want:    false,
		},
		{
			name:    "past due date without hint",
			invoice: domain.Invoice{DueDate: &yesterday},
			want:    true,
		},
		{
			name:    "future due date",
			invoice: domain.Invoice{DueDate: &tomorrow},
			want:    false,
		},
		{
			name:    "no due date, no hint",
			invoice: domain.Invoice{Total: decimal.NewFromInt(100)},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.invoice.IsOverdue(today))
		})
	}
}
