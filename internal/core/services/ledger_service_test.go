package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/pharmadesk/pharma_ledger_app/internal/apperrors"
	"github.com/pharmadesk/pharma_ledger_app/internal/core/domain"
	portsrepo "github.com/pharmadesk/pharma_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/pharmadesk/pharma_ledger_app/internal/core/ports/services"
	"github.com/pharmadesk/pharma_ledger_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock SnapshotRepository ---
type MockSnapshotRepository struct {
	mock.Mock
}

func (m *MockSnapshotRepository) LoadPartyRecords(ctx context.Context, partyID string) (*portsrepo.PartyRecords, error) {
	args := m.Called(ctx, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portsrepo.PartyRecords), args.Error(1)
}

// --- Test Suite ---
type LedgerServiceTestSuite struct {
	suite.Suite
	mockRepo *MockSnapshotRepository
	service  portssvc.LedgerSvcFacade
	now      time.Time
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockSnapshotRepository)
	suite.now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	suite.service = services.NewLedgerService(suite.mockRepo, services.WithLedgerClock(func() time.Time { return suite.now }))
}

func (suite *LedgerServiceTestSuite) partyRecords() *portsrepo.PartyRecords {
	party := domain.Party{
		PartyID:        "party-1",
		Name:           "City Pharmacy",
		PartyType:      domain.Customer,
		OpeningBalance: decimal.Zero,
	}
	due := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	invoice := domain.Invoice{
		InvoiceID:    "inv-1",
		SystemNumber: "INV-000001",
		Kind:         domain.Sale,
		PartyType:    domain.Customer,
		PartyID:      "party-1",
		IssueDate:    time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		DueDate:      &due,
		Total:        decimal.NewFromInt(10000),
	}
	payment := domain.Payment{
		PaymentID: "pay-1",
		Date:      time.Date(2025, 4, 20, 0, 0, 0, 0, time.UTC),
		Direction: domain.In,
		PartyType: domain.Customer,
		PartyID:   "party-1",
		InvoiceID: "inv-1",
		Amount:    decimal.NewFromInt(4000),
		Status:    domain.Completed,
	}
	return &portsrepo.PartyRecords{
		Party:    party,
		Invoices: []domain.Invoice{invoice},
		Payments: []domain.Payment{payment},
	}
}

// --- Test Cases ---

func (suite *LedgerServiceTestSuite) TestGetPartySummary_Success() {
	ctx := context.Background()
	suite.mockRepo.On("LoadPartyRecords", ctx, "party-1").Return(suite.partyRecords(), nil).Once()

	summary, err := suite.service.GetPartySummary(ctx, "party-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(summary)
	suite.Equal("party-1", summary.PartyID)
	suite.True(summary.Balance.Equal(decimal.NewFromInt(6000)))
	suite.True(summary.Outstanding.Equal(decimal.NewFromInt(6000)))
	suite.True(summary.Advance.IsZero())
	// Invoice is past due and unhinted, so the whole remainder is overdue.
	suite.True(summary.OverdueOutstanding.Equal(decimal.NewFromInt(6000)))
	suite.Require().Len(summary.InvoiceRows, 1)
	suite.Equal(domain.PartiallyPaid, summary.InvoiceRows[0].Status)
	suite.Equal(suite.now, summary.AsOf)
	suite.Empty(summary.Warnings)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestGetPartySummary_SurfacesWarnings() {
	ctx := context.Background()
	records := suite.partyRecords()
	// A payment pointing at a different party is excluded with a warning, not an error.
	records.Payments = append(records.Payments, domain.Payment{
		PaymentID: "pay-stray",
		Date:      suite.now,
		Direction: domain.In,
		PartyType: domain.Customer,
		PartyID:   "party-other",
		Amount:    decimal.NewFromInt(999),
		Status:    domain.Completed,
	})
	suite.mockRepo.On("LoadPartyRecords", ctx, "party-1").Return(records, nil).Once()

	summary, err := suite.service.GetPartySummary(ctx, "party-1")

	suite.Require().NoError(err)
	suite.Require().Len(summary.Warnings, 1)
	suite.Equal("payment", summary.Warnings[0].RecordKind)
	suite.Equal("pay-stray", summary.Warnings[0].RecordID)
	// The stray payment must not leak into the figures.
	suite.True(summary.Balance.Equal(decimal.NewFromInt(6000)))

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestGetPartySummary_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("LoadPartyRecords", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	summary, err := suite.service.GetPartySummary(ctx, "missing")

	suite.Require().Error(err)
	suite.Nil(summary)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestGetPartyStatement_Success() {
	ctx := context.Background()
	suite.mockRepo.On("LoadPartyRecords", ctx, "party-1").Return(suite.partyRecords(), nil).Once()

	statement, err := suite.service.GetPartyStatement(ctx, "party-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(statement)
	suite.Equal("party-1", statement.PartyID)
	// One invoice row plus one payment row; no opening row since opening is zero.
	suite.Require().Len(statement.Rows, 2)
	suite.Equal(domain.TxnPayment, statement.Rows[0].Kind)
	suite.True(statement.Rows[0].SignedAmount.Equal(decimal.NewFromInt(-4000)))
	suite.Equal(domain.TxnInvoice, statement.Rows[1].Kind)
	suite.True(statement.Rows[1].SignedAmount.Equal(decimal.NewFromInt(10000)))

	suite.mockRepo.AssertExpectations(suite.T())
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
