package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pharmadesk/pharma_ledger_app/internal/apperrors"
	"github.com/pharmadesk/pharma_ledger_app/internal/core/domain"
	portssvc "github.com/pharmadesk/pharma_ledger_app/internal/core/ports/services"
	"github.com/pharmadesk/pharma_ledger_app/internal/core/services"
	"github.com/pharmadesk/pharma_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PartyRepositoryFacade ---
type MockPartyRepository struct {
	mock.Mock
}

func (m *MockPartyRepository) FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	args := m.Called(ctx, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

func (m *MockPartyRepository) ListParties(ctx context.Context, partyType *domain.PartyType, limit int, offset int) ([]domain.Party, error) {
	args := m.Called(ctx, partyType, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Party), args.Error(1)
}

func (m *MockPartyRepository) SaveParty(ctx context.Context, party domain.Party) error {
	args := m.Called(ctx, party)
	return args.Error(0)
}

func (m *MockPartyRepository) UpdateParty(ctx context.Context, party domain.Party) error {
	args := m.Called(ctx, party)
	return args.Error(0)
}

func (m *MockPartyRepository) MarkPartyDeleted(ctx context.Context, partyID string, deletedAt time.Time, deletedBy string) error {
	args := m.Called(ctx, partyID, deletedAt, deletedBy)
	return args.Error(0)
}

// --- Test Suite ---
type PartyServiceTestSuite struct {
	suite.Suite
	mockRepo *MockPartyRepository
	service  portssvc.PartySvcFacade
}

func (suite *PartyServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockPartyRepository)
	suite.service = services.NewPartyService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *PartyServiceTestSuite) TestCreateParty_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.CreatePartyRequest{
		Name:           "City Pharmacy",
		PartyType:      domain.Customer,
		OpeningBalance: "1500.50",
	}

	suite.mockRepo.On("SaveParty", ctx, mock.MatchedBy(func(p domain.Party) bool {
		return p.Name == req.Name &&
			p.PartyType == domain.Customer &&
			p.OpeningBalance.Equal(decimal.RequireFromString("1500.50")) &&
			p.CreatedBy == creatorUserID
	})).Return(nil).Once()

	party, err := suite.service.CreateParty(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(party)
	suite.Equal(req.Name, party.Name)
	suite.True(party.OpeningBalance.Equal(decimal.RequireFromString("1500.50")))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PartyServiceTestSuite) TestCreateParty_MalformedOpeningDefaultsToZero() {
	ctx := context.Background()
	req := dto.CreatePartyRequest{
		Name:           "Ram Traders",
		PartyType:      domain.Supplier,
		OpeningBalance: "not-a-number",
	}

	suite.mockRepo.On("SaveParty", ctx, mock.MatchedBy(func(p domain.Party) bool {
		return p.OpeningBalance.IsZero()
	})).Return(nil).Once()

	party, err := suite.service.CreateParty(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(party.OpeningBalance.IsZero())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PartyServiceTestSuite) TestUpdateParty_OpeningBalanceEdit() {
	ctx := context.Background()
	updaterUserID := uuid.NewString()
	existing := &domain.Party{
		PartyID:        "party-1",
		Name:           "City Pharmacy",
		PartyType:      domain.Customer,
		OpeningBalance: decimal.Zero,
	}
	newOpening := "-3000"

	suite.mockRepo.On("FindPartyByID", ctx, "party-1").Return(existing, nil).Once()
	suite.mockRepo.On("UpdateParty", ctx, mock.MatchedBy(func(p domain.Party) bool {
		return p.OpeningBalance.Equal(decimal.NewFromInt(-3000)) && p.LastUpdatedBy == updaterUserID
	})).Return(nil).Once()

	party, err := suite.service.UpdateParty(ctx, "party-1", dto.UpdatePartyRequest{OpeningBalance: &newOpening}, updaterUserID)

	suite.Require().NoError(err)
	suite.True(party.OpeningBalance.Equal(decimal.NewFromInt(-3000)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PartyServiceTestSuite) TestUpdateParty_InvalidOpeningBalance() {
	ctx := context.Background()
	existing := &domain.Party{PartyID: "party-1", PartyType: domain.Customer}
	bad := "12,000"

	suite.mockRepo.On("FindPartyByID", ctx, "party-1").Return(existing, nil).Once()

	party, err := suite.service.UpdateParty(ctx, "party-1", dto.UpdatePartyRequest{OpeningBalance: &bad}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(party)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PartyServiceTestSuite) TestGetPartyByID_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindPartyByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	party, err := suite.service.GetPartyByID(ctx, "missing")

	suite.Require().Error(err)
	suite.Nil(party)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PartyServiceTestSuite) TestListParties_NilBecomesEmptySlice() {
	ctx := context.Background()
	suite.mockRepo.On("ListParties", ctx, (*domain.PartyType)(nil), 20, 0).Return(nil, nil).Once()

	parties, err := suite.service.ListParties(ctx, nil, 20, 0)

	suite.Require().NoError(err)
	suite.NotNil(parties)
	suite.Empty(parties)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestPartyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PartyServiceTestSuite))
}
