package dto

import (
	"time"

	"github.com/pharmadesk/pharma_ledger_app/internal/core/domain"
	"github.com/pharmadesk/pharma_ledger_app/internal/core/reconcile"
)

// ReconciliationWarning reports a record that was excluded or coerced while
// building the summary. Warnings never fail the request.
type ReconciliationWarning struct {
	RecordKind string `json:"recordKind"`
	RecordID   string `json:"recordID"`
	Message    string `json:"message"`
}

// PartySummaryResponse is the full reconciled view of one party: rolled-up
// balance figures, the per-invoice settlement history and the statement
// timeline, all derived from the same point-in-time read.
type PartySummaryResponse struct {
	domain.PartySummary
	AsOf     time.Time               `json:"asOf"`
	Warnings []ReconciliationWarning `json:"warnings,omitempty"`
}

// PartyStatementResponse is the timeline-only view of one party.
type PartyStatementResponse struct {
	PartyID   string                  `json:"partyID"`
	PartyType domain.PartyType        `json:"partyType"`
	AsOf      time.Time               `json:"asOf"`
	Rows      []domain.TransactionRow `json:"rows"`
	Warnings  []ReconciliationWarning `json:"warnings,omitempty"`
}

// ToReconciliationWarnings converts engine warnings to their DTO form.
func ToReconciliationWarnings(warnings []reconcile.Warning) []ReconciliationWarning {
	if len(warnings) == 0 {
		return nil
	}
	res := make([]ReconciliationWarning, len(warnings))
	for i, w := range warnings {
		res[i] = ReconciliationWarning{
			RecordKind: w.RecordKind,
			RecordID:   w.RecordID,
			Message:    w.Message,
		}
	}
	return res
}

// ToPartySummaryResponse wraps the engine output with the snapshot timestamp
// and any warnings collected while loading it.
func ToPartySummaryResponse(summary domain.PartySummary, asOf time.Time, warnings []reconcile.Warning) PartySummaryResponse {
	return PartySummaryResponse{
		PartySummary: summary,
		AsOf:         asOf,
		Warnings:     ToReconciliationWarnings(warnings),
	}
}

// ToPartyStatementResponse wraps the timeline rows for the statement endpoint.
func ToPartyStatementResponse(party domain.Party, rows []domain.TransactionRow, asOf time.Time, warnings []reconcile.Warning) PartyStatementResponse {
	return PartyStatementResponse{
		PartyID:   party.PartyID,
		PartyType: party.PartyType,
		AsOf:      asOf,
		Rows:      rows,
		Warnings:  ToReconciliationWarnings(warnings),
	}
}
