package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/RishabhDevDogra/Ledger-X/internal/apperrors"
	"github.com/RishabhDevDogra/Ledger-X/internal/core/domain"
	portssvc "github.com/RishabhDevDogra/Ledger-X/internal/core/ports/services"
	"github.com/RishabhDevDogra/Ledger-X/internal/dto"
	"github.com/RishabhDevDogra/Ledger-X/internal/handlers"
	"github.com/RishabhDevDogra/Ledger-X/internal/platform/config"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) GetAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockAccountService) ListActiveAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockAccountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, accountID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) DeleteAccount(ctx context.Context, accountID string) (bool, error) {
	args := m.Called(ctx, accountID)
	return args.Bool(0), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Mock JournalService ---
type MockJournalService struct {
	mock.Mock
}

func (m *MockJournalService) CreateEntry(ctx context.Context, req dto.CreateJournalEntryRequest) (*domain.JournalEntry, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
func (m *MockJournalService) GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
func (m *MockJournalService) ListEntries(ctx context.Context) ([]domain.JournalEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}
func (m *MockJournalService) ListPostedEntries(ctx context.Context) ([]domain.JournalEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}
func (m *MockJournalService) ListEntriesByDateRange(ctx context.Context, start, end time.Time) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}
func (m *MockJournalService) UpdateEntry(ctx context.Context, entryID string, req dto.UpdateJournalEntryRequest) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
func (m *MockJournalService) PostEntry(ctx context.Context, entryID string) (bool, error) {
	args := m.Called(ctx, entryID)
	return args.Bool(0), args.Error(1)
}
func (m *MockJournalService) DeleteEntry(ctx context.Context, entryID string) (bool, error) {
	args := m.Called(ctx, entryID)
	return args.Bool(0), args.Error(1)
}

var _ portssvc.JournalSvcFacade = (*MockJournalService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) TrialBalance(ctx context.Context) (*domain.TrialBalanceReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrialBalanceReport), args.Error(1)
}
func (m *MockReportingService) TotalDebits(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
func (m *MockReportingService) TotalCredits(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

var _ portssvc.ReportingSvcFacade = (*MockReportingService)(nil)

// --- Mock LedgerKeyService ---
type MockLedgerKeyService struct {
	mock.Mock
}

func (m *MockLedgerKeyService) CreateKey(ctx context.Context, req dto.CreateLedgerKeyRequest) (*domain.LedgerKey, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerKey), args.Error(1)
}
func (m *MockLedgerKeyService) GetKeyByID(ctx context.Context, keyID string) (*domain.LedgerKey, error) {
	args := m.Called(ctx, keyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerKey), args.Error(1)
}
func (m *MockLedgerKeyService) ListKeys(ctx context.Context) ([]domain.LedgerKey, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerKey), args.Error(1)
}
func (m *MockLedgerKeyService) ListActiveKeys(ctx context.Context) ([]domain.LedgerKey, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerKey), args.Error(1)
}
func (m *MockLedgerKeyService) ListExpiredKeys(ctx context.Context) ([]domain.LedgerKey, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerKey), args.Error(1)
}
func (m *MockLedgerKeyService) RotateKey(ctx context.Context, keyID string) (*domain.LedgerKey, error) {
	args := m.Called(ctx, keyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerKey), args.Error(1)
}
func (m *MockLedgerKeyService) DeactivateKey(ctx context.Context, keyID string) (*domain.LedgerKey, error) {
	args := m.Called(ctx, keyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerKey), args.Error(1)
}
func (m *MockLedgerKeyService) DeleteKey(ctx context.Context, keyID string) (bool, error) {
	args := m.Called(ctx, keyID)
	return args.Bool(0), args.Error(1)
}

var _ portssvc.LedgerKeySvcFacade = (*MockLedgerKeyService)(nil)

// --- Test Suite Setup ---

type AccountHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockAccountSvc *MockAccountService
	mockJournalSvc *MockJournalService
	mockReportSvc  *MockReportingService
	mockKeySvc     *MockLedgerKeyService
}

func (suite *AccountHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockAccountSvc = new(MockAccountService)
	suite.mockJournalSvc = new(MockJournalService)
	suite.mockReportSvc = new(MockReportingService)
	suite.mockKeySvc = new(MockLedgerKeyService)

	container := &portssvc.ServiceContainer{
		Account:   suite.mockAccountSvc,
		Journal:   suite.mockJournalSvc,
		Reporting: suite.mockReportSvc,
		LedgerKey: suite.mockKeySvc,
	}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, &config.Config{IsProduction: true}, container)
}

func (suite *AccountHandlerTestSuite) performRequest(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *AccountHandlerTestSuite) TestCreateAccount_Returns201WithLocation() {
	account := &domain.Account{
		AccountID:   uuid.NewString(),
		Code:        "1000",
		Name:        "Cash",
		AccountType: domain.Asset,
		IsActive:    true,
	}

	suite.mockAccountSvc.On("CreateAccount", mock.Anything, mock.AnythingOfType("dto.CreateAccountRequest")).
		Return(account, nil).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/accounts", dto.CreateAccountRequest{
		Code:        "1000",
		Name:        "Cash",
		AccountType: domain.Asset,
	})

	suite.Equal(http.StatusCreated, w.Code)
	suite.Equal("/api/v1/accounts/"+account.AccountID, w.Header().Get("Location"))

	var resp dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(account.AccountID, resp.AccountID)
	suite.Equal("1000", resp.Code)
	suite.mockAccountSvc.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_DuplicateReturns409() {
	dupErr := fmt.Errorf("%w: account with code %q already exists", apperrors.ErrDuplicate, "1000")
	suite.mockAccountSvc.On("CreateAccount", mock.Anything, mock.AnythingOfType("dto.CreateAccountRequest")).
		Return(nil, dupErr).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/accounts", dto.CreateAccountRequest{
		Code:        "1000",
		Name:        "Cash",
		AccountType: domain.Asset,
	})

	suite.Equal(http.StatusConflict, w.Code)
	suite.Contains(w.Body.String(), "error")
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_MalformedBodyReturns400() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/accounts", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockAccountSvc.AssertNotCalled(suite.T(), "CreateAccount", mock.Anything, mock.Anything)
}

func (suite *AccountHandlerTestSuite) TestGetAccount_NotFoundReturns404() {
	accountID := uuid.NewString()
	suite.mockAccountSvc.On("GetAccountByID", mock.Anything, accountID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/accounts/"+accountID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *AccountHandlerTestSuite) TestGetAccountByCode_Success() {
	account := &domain.Account{
		AccountID:   uuid.NewString(),
		Code:        "2000",
		Name:        "Accounts Payable",
		AccountType: domain.Liability,
		IsActive:    true,
	}
	suite.mockAccountSvc.On("GetAccountByCode", mock.Anything, "2000").Return(account, nil).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/accounts/by-code/2000", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("2000", resp.Code)
}

func (suite *AccountHandlerTestSuite) TestListAccounts_Success() {
	accounts := []domain.Account{
		{AccountID: uuid.NewString(), Code: "1000", Name: "Cash", AccountType: domain.Asset, IsActive: true},
		{AccountID: uuid.NewString(), Code: "4000", Name: "Sales Revenue", AccountType: domain.Revenue, IsActive: true},
	}
	suite.mockAccountSvc.On("ListAccounts", mock.Anything).Return(accounts, nil).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/accounts", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListAccountsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Accounts, 2)
}

func (suite *AccountHandlerTestSuite) TestUpdateAccount_ValidationErrorReturns400() {
	accountID := uuid.NewString()
	valErr := fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, "PREPAID")
	suite.mockAccountSvc.On("UpdateAccount", mock.Anything, accountID, mock.AnythingOfType("dto.UpdateAccountRequest")).
		Return(nil, valErr).Once()

	badType := domain.AccountType("PREPAID")
	w := suite.performRequest(http.MethodPut, "/api/v1/accounts/"+accountID, dto.UpdateAccountRequest{
		AccountType: &badType,
	})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *AccountHandlerTestSuite) TestDeleteAccount_Returns204() {
	accountID := uuid.NewString()
	suite.mockAccountSvc.On("DeleteAccount", mock.Anything, accountID).Return(true, nil).Once()

	w := suite.performRequest(http.MethodDelete, "/api/v1/accounts/"+accountID, nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.Empty(w.Body.String())
}

func (suite *AccountHandlerTestSuite) TestDeleteAccount_UnknownReturns404() {
	accountID := uuid.NewString()
	suite.mockAccountSvc.On("DeleteAccount", mock.Anything, accountID).Return(false, nil).Once()

	w := suite.performRequest(http.MethodDelete, "/api/v1/accounts/"+accountID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *AccountHandlerTestSuite) TestHealthEndpoint() {
	w := suite.performRequest(http.MethodGet, "/health", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func TestAccountHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}
