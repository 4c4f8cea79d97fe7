package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pharmadesk/pharma_ledger_app/internal/apperrors"
	"github.com/pharmadesk/pharma_ledger_app/internal/core/domain"
	portsrepo "github.com/pharmadesk/pharma_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/pharmadesk/pharma_ledger_app/internal/core/ports/services"
	"github.com/pharmadesk/pharma_ledger_app/internal/core/reconcile"
	"github.com/pharmadesk/pharma_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
)

// partyService implements the PartySvcFacade interface
type partyService struct {
	BaseService
	partyRepo portsrepo.PartyRepositoryFacade
}

// PartyServiceOption is a functional option for configuring the party service
type PartyServiceOption func(*partyService)

// NewPartyService creates a new party service with the provided options
func NewPartyService(repo portsrepo.PartyRepositoryFacade, options ...PartyServiceOption) portssvc.PartySvcFacade {
	svc := &partyService{
		partyRepo: repo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure partyService implements the PartySvcFacade interface
var _ portssvc.PartySvcFacade = (*partyService)(nil)

// CreateParty creates a new party. The opening balance arrives as free text
// from legacy imports; a malformed value falls back to zero with a warning
// rather than rejecting the party.
func (s *partyService) CreateParty(ctx context.Context, req dto.CreatePartyRequest, creatorUserID string) (*domain.Party, error) {
	opening := decimal.Zero
	if req.OpeningBalance != "" {
		parsed, ok := reconcile.ParseAmount(req.OpeningBalance)
		if !ok {
			s.LogWarn(ctx, "Malformed opening balance, defaulting to zero",
				slog.String("opening_balance", req.OpeningBalance),
				slog.String("party_name", req.Name))
		}
		opening = parsed
	}

	now := time.Now()
	party := domain.Party{
		PartyID:        uuid.NewString(),
		Name:           req.Name,
		PartyType:      req.PartyType,
		OpeningBalance: opening,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.partyRepo.SaveParty(ctx, party); err != nil {
		s.LogError(ctx, err, "Failed to save party in repository", slog.String("party_id", party.PartyID))
		return nil, fmt.Errorf("failed to create party: %w", err)
	}

	s.LogInfo(ctx, "Party created successfully",
		slog.String("party_id", party.PartyID),
		slog.String("party_type", string(party.PartyType)))
	return &party, nil
}

// GetPartyByID retrieves a specific party by its unique identifier.
func (s *partyService) GetPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	party, err := s.partyRepo.FindPartyByID(ctx, partyID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find party by ID in repository", slog.String("party_id", partyID))
		}
		return nil, err
	}
	return party, nil
}

// ListParties retrieves a paginated list of parties, optionally filtered by type.
func (s *partyService) ListParties(ctx context.Context, partyType *domain.PartyType, limit int, offset int) ([]domain.Party, error) {
	parties, err := s.partyRepo.ListParties(ctx, partyType, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list parties from repository", slog.Int("limit", limit), slog.Int("offset", offset))
		return nil, fmt.Errorf("failed to list parties: %w", err)
	}
	if parties == nil {
		return []domain.Party{}, nil
	}
	return parties, nil
}

// UpdateParty updates a party's name and opening balance. Opening balance
// edits are allowed at any time; derived figures are recomputed on the next
// read so no stored totals need fixing up.
func (s *partyService) UpdateParty(ctx context.Context, partyID string, req dto.UpdatePartyRequest, updaterUserID string) (*domain.Party, error) {
	party, err := s.partyRepo.FindPartyByID(ctx, partyID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		party.Name = *req.Name
	}
	if req.OpeningBalance != nil {
		parsed, ok := reconcile.ParseAmount(*req.OpeningBalance)
		if !ok {
			return nil, fmt.Errorf("%w: invalid opening balance %q", apperrors.ErrValidation, *req.OpeningBalance)
		}
		party.OpeningBalance = parsed
	}
	party.LastUpdatedAt = time.Now()
	party.LastUpdatedBy = updaterUserID

	if err := s.partyRepo.UpdateParty(ctx, *party); err != nil {
		s.LogError(ctx, err, "Failed to update party in repository", slog.String("party_id", partyID))
		return nil, fmt.Errorf("failed to update party: %w", err)
	}

	s.LogInfo(ctx, "Party updated successfully", slog.String("party_id", partyID))
	return party, nil
}

// DeleteParty marks a party as deleted. Its records stay in place; the party
// simply disappears from listings.
func (s *partyService) DeleteParty(ctx context.Context, partyID string, deleterUserID string) error {
	err := s.partyRepo.MarkPartyDeleted(ctx, partyID, time.Now(), deleterUserID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to mark party deleted in repository", slog.String("party_id", partyID))
		}
		return err
	}
	s.LogInfo(ctx, "Party deleted successfully", slog.String("party_id", partyID))
	return nil
}
