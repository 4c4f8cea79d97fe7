package dto

import (
	"time"

	"github.com/pharmadesk/pharma_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateNoteRequest defines the data needed to record a debit or credit note.
// RelatedInvoiceNo is free text; it is matched against invoice numbers at
// read time, never validated against them here.
type CreateNoteRequest struct {
	PartyID          string          `json:"partyID" binding:"required"`
	NoteType         domain.NoteType `json:"noteType" binding:"required,oneof=DEBIT CREDIT"`
	NoteNo           string          `json:"noteNo" binding:"required"`
	Date             time.Time       `json:"date" binding:"required"`
	Amount           string          `json:"amount" binding:"required,amount"`
	RelatedInvoiceNo string          `json:"relatedInvoiceNo"`
}

// NoteResponse defines the data returned for a note.
// Mirrors domain.Note.
type NoteResponse struct {
	NoteID           string           `json:"noteID"`
	NoteType         domain.NoteType  `json:"noteType"`
	NoteNo           string           `json:"noteNo"`
	Date             time.Time        `json:"date"`
	PartyType        domain.PartyType `json:"partyType"`
	PartyID          string           `json:"partyID"`
	Amount           decimal.Decimal  `json:"amount"`
	RelatedInvoiceNo string           `json:"relatedInvoiceNo,omitempty"`
	CreatedAt        time.Time        `json:"createdAt"`
	CreatedBy        string           `json:"createdBy"`
	LastUpdatedAt    time.Time        `json:"lastUpdatedAt"`
	LastUpdatedBy    string           `json:"lastUpdatedBy"`
}

// ListNotesResponse wraps the list of notes for a party.
type ListNotesResponse struct {
	Notes []NoteResponse `json:"notes"`
}

// ToNoteResponse converts a domain.Note to NoteResponse DTO
func ToNoteResponse(n *domain.Note) NoteResponse {
	return NoteResponse{
		NoteID:           n.NoteID,
		NoteType:         n.NoteType,
		NoteNo:           n.NoteNo,
		Date:             n.Date,
		PartyType:        n.PartyType,
		PartyID:          n.PartyID,
		Amount:           n.Amount,
		RelatedInvoiceNo: n.RelatedInvoiceNo,
		CreatedAt:        n.CreatedAt,
		CreatedBy:        n.CreatedBy,
		LastUpdatedAt:    n.LastUpdatedAt,
		LastUpdatedBy:    n.LastUpdatedBy,
	}
}

// ToListNotesResponse converts a slice of domain.Note to ListNotesResponse DTO
func ToListNotesResponse(notes []domain.Note) ListNotesResponse {
	res := make([]NoteResponse, len(notes))
	for i, n := range notes {
		res[i] = ToNoteResponse(&n)
	}
	return ListNotesResponse{Notes: res}
}
