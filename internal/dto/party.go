package dto

import (
	"time"

	"github.com/pharmadesk/pharma_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePartyRequest defines the data needed to create a new party.
// OpeningBalance is accepted as a string so malformed numerics from legacy
// imports can be coerced with a warning instead of a hard 400.
type CreatePartyRequest struct {
	Name           string           `json:"name" binding:"required"`
	PartyType      domain.PartyType `json:"partyType" binding:"required,oneof=CUSTOMER SUPPLIER"`
	OpeningBalance string           `json:"openingBalance"` // Optional, defaults to 0
}

// UpdatePartyRequest defines the data allowed for updating a party.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdatePartyRequest struct {
	Name           *string `json:"name"`
	OpeningBalance *string `json:"openingBalance"`
}

// PartyResponse defines the data returned for a party.
// Mirrors domain.Party.
type PartyResponse struct {
	PartyID        string           `json:"partyID"`
	Name           string           `json:"name"`
	PartyType      domain.PartyType `json:"partyType"`
	OpeningBalance decimal.Decimal  `json:"openingBalance"`
	CreatedAt      time.Time        `json:"createdAt"`
	CreatedBy      string           `json:"createdBy"`
	LastUpdatedAt  time.Time        `json:"lastUpdatedAt"`
	LastUpdatedBy  string           `json:"lastUpdatedBy"`
}

// ListPartiesParams defines query parameters for listing parties.
type ListPartiesParams struct {
	PartyType *string `form:"partyType"` // Optional filter: CUSTOMER or SUPPLIER
	Limit     int     `form:"limit,default=20"`
	Offset    int     `form:"offset,default=0"`
}

// ListPartiesResponse wraps the list of parties.
type ListPartiesResponse struct {
	Parties []PartyResponse `json:"parties"`
}

// ToPartyResponse converts a domain.Party to PartyResponse DTO
func ToPartyResponse(p *domain.Party) PartyResponse {
	return PartyResponse{
		PartyID:        p.PartyID,
		Name:           p.Name,
		PartyType:      p.PartyType,
		OpeningBalance: p.OpeningBalance,
		CreatedAt:      p.CreatedAt,
		CreatedBy:      p.CreatedBy,
		LastUpdatedAt:  p.LastUpdatedAt,
		LastUpdatedBy:  p.LastUpdatedBy,
	}
}

// ToListPartiesResponse converts a slice of domain.Party to ListPartiesResponse DTO
func ToListPartiesResponse(parties []domain.Party) ListPartiesResponse {
	res := make([]PartyResponse, len(parties))
	for i, p := range parties {
		res[i] = ToPartyResponse(&p)
	}
	return ListPartiesResponse{Parties: res}
}
