package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pharmadesk/pharma_ledger_app/internal/apperrors"
	"github.com/pharmadesk/pharma_ledger_app/internal/core/domain"
	portssvc "github.com/pharmadesk/pharma_ledger_app/internal/core/ports/services"
	"github.com/pharmadesk/pharma_ledger_app/internal/dto"
	"github.com/pharmadesk/pharma_ledger_app/internal/middleware"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PartyService ---
type MockPartyService struct {
	mock.Mock
}

func (m *MockPartyService) GetPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	args := m.Called(ctx, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

func (m *MockPartyService) ListParties(ctx context.Context, partyType *domain.PartyType, limit int, offset int) ([]domain.Party, error) {
	args := m.Called(ctx, partyType, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Party), args.Error(1)
}

func (m *MockPartyService) CreateParty(ctx context.Context, req dto.CreatePartyRequest, creatorUserID string) (*domain.Party, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

func (m *MockPartyService) UpdateParty(ctx context.Context, partyID string, req dto.UpdatePartyRequest, updaterUserID string) (*domain.Party, error) {
	args := m.Called(ctx, partyID, req, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

func (m *MockPartyService) DeleteParty(ctx context.Context, partyID string, deleterUserID string) error {
	args := m.Called(ctx, partyID, deleterUserID)
	return args.Error(0)
}

var _ portssvc.PartySvcFacade = (*MockPartyService)(nil)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) GetPartySummary(ctx context.Context, partyID string) (*dto.PartySummaryResponse, error) {
	args := m.Called(ctx, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PartySummaryResponse), args.Error(1)
}

func (m *MockLedgerService) GetPartyStatement(ctx context.Context, partyID string) (*dto.PartyStatementResponse, error) {
	args := m.Called(ctx, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PartyStatementResponse), args.Error(1)
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Test Suite ---
type PartyHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockPartyService  *MockPartyService
	mockLedgerService *MockLedgerService
	jwtSecret         string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *PartyHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "pla-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *PartyHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockPartyService = new(MockPartyService)
	suite.mockLedgerService = new(MockLedgerService)

	v1 := suite.router.Group("/api/v1")
	registerPartyRoutes(v1, suite.mockPartyService, suite.mockLedgerService)
}

func (suite *PartyHandlerTestSuite) doRequest(method, url, userID string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		err := json.NewEncoder(&buf).Encode(body)
		suite.Require().NoError(err)
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *PartyHandlerTestSuite) TestCreateParty_Success() {
	creatorID := uuid.NewString()
	reqBody := dto.CreatePartyRequest{
		Name:           "City Pharmacy",
		PartyType:      domain.Customer,
		OpeningBalance: "1500.00",
	}
	created := &domain.Party{
		PartyID:        uuid.NewString(),
		Name:           "City Pharmacy",
		PartyType:      domain.Customer,
		OpeningBalance: decimal.RequireFromString("1500.00"),
	}

	suite.mockPartyService.On("CreateParty",
		mock.Anything,
		mock.MatchedBy(func(r dto.CreatePartyRequest) bool {
			return r.Name == reqBody.Name && r.PartyType == reqBody.PartyType
		}),
		creatorID,
	).Return(created, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/parties", creatorID, reqBody)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.PartyResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.PartyID, resp.PartyID)
	suite.Equal("City Pharmacy", resp.Name)
	suite.mockPartyService.AssertExpectations(suite.T())
}

func (suite *PartyHandlerTestSuite) TestCreateParty_InvalidPartyType() {
	creatorID := uuid.NewString()
	body := map[string]string{
		"name":      "Mystery Vendor",
		"partyType": "WHOLESALER",
	}

	w := suite.doRequest(http.MethodPost, "/api/v1/parties", creatorID, body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockPartyService.AssertNotCalled(suite.T(), "CreateParty")
}

func (suite *PartyHandlerTestSuite) TestCreateParty_MissingToken() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/parties", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *PartyHandlerTestSuite) TestGetParty_NotFound() {
	userID := uuid.NewString()
	partyID := uuid.NewString()

	suite.mockPartyService.On("GetPartyByID", mock.Anything, partyID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/parties/"+partyID, userID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockPartyService.AssertExpectations(suite.T())
}

func (suite *PartyHandlerTestSuite) TestListParties_FilterByType() {
	userID := uuid.NewString()
	expected := []domain.Party{
		{PartyID: uuid.NewString(), Name: "Medico Suppliers", PartyType: domain.Supplier},
	}

	suite.mockPartyService.On("ListParties",
		mock.Anything,
		mock.MatchedBy(func(pt *domain.PartyType) bool {
			return pt != nil && *pt == domain.Supplier
		}),
		20, 0,
	).Return(expected, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/parties?partyType=SUPPLIER", userID, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListPartiesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Parties, 1)
	suite.Equal("Medico Suppliers", resp.Parties[0].Name)
	suite.mockPartyService.AssertExpectations(suite.T())
}

func (suite *PartyHandlerTestSuite) TestListParties_RejectsUnknownType() {
	userID := uuid.NewString()

	w := suite.doRequest(http.MethodGet, "/api/v1/parties?partyType=EMPLOYEE", userID, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockPartyService.AssertNotCalled(suite.T(), "ListParties")
}

func (suite *PartyHandlerTestSuite) TestGetPartySummary_Success() {
	userID := uuid.NewString()
	partyID := uuid.NewString()
	summary := &dto.PartySummaryResponse{
		PartySummary: domain.PartySummary{
			PartyID:     partyID,
			PartyType:   domain.Customer,
			Balance:     decimal.RequireFromString("6000"),
			Outstanding: decimal.RequireFromString("6000"),
			Active:      true,
		},
		AsOf: time.Now(),
	}

	suite.mockLedgerService.On("GetPartySummary", mock.Anything, partyID).
		Return(summary, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/parties/"+partyID+"/summary", userID, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.PartySummaryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(partyID, resp.PartyID)
	suite.True(resp.Balance.Equal(decimal.RequireFromString("6000")))
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *PartyHandlerTestSuite) TestGetPartyStatement_PartyNotFound() {
	userID := uuid.NewString()
	partyID := uuid.NewString()

	suite.mockLedgerService.On("GetPartyStatement", mock.Anything, partyID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/parties/"+partyID+"/statement", userID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *PartyHandlerTestSuite) TestDeleteParty_Success() {
	userID := uuid.NewString()
	partyID := uuid.NewString()

	suite.mockPartyService.On("DeleteParty", mock.Anything, partyID, userID).
		Return(nil).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/parties/"+partyID, userID, nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockPartyService.AssertExpectations(suite.T())
}

func TestPartyHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PartyHandlerTestSuite))
}
