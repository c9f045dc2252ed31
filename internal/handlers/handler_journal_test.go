package handlers_test

import (
	"bytes"
	"encoding/json"
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

// --- Test Suite Setup ---

type JournalHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockJournalSvc *MockJournalService
	mockReportSvc  *MockReportingService
	mockKeySvc     *MockLedgerKeyService
}

func (suite *JournalHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockJournalSvc = new(MockJournalService)
	suite.mockReportSvc = new(MockReportingService)
	suite.mockKeySvc = new(MockLedgerKeyService)

	container := &portssvc.ServiceContainer{
		Account:   new(MockAccountService),
		Journal:   suite.mockJournalSvc,
		Reporting: suite.mockReportSvc,
		LedgerKey: suite.mockKeySvc,
	}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, &config.Config{IsProduction: true}, container)
}

func (suite *JournalHandlerTestSuite) performRequest(method, path string, body any) *httptest.ResponseRecorder {
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

func sampleEntry() *domain.JournalEntry {
	entryID := uuid.NewString()
	amount := decimal.RequireFromString("250.00")
	return &domain.JournalEntry{
		EntryID:         entryID,
		Description:     "Sale of goods",
		ReferenceNumber: "INV-42",
		EntryDate:       time.Date(2024, 8, 15, 0, 0, 0, 0, time.UTC),
		CreatedAt:       time.Now().UTC(),
		Lines: []domain.JournalLine{
			{LineID: uuid.NewString(), EntryID: entryID, AccountCode: "1000", Debit: amount},
			{LineID: uuid.NewString(), EntryID: entryID, AccountCode: "4000", Credit: amount},
		},
	}
}

// --- Journal entry endpoints ---

func (suite *JournalHandlerTestSuite) TestCreateEntry_Returns201WithLocation() {
	entry := sampleEntry()
	suite.mockJournalSvc.On("CreateEntry", mock.Anything, mock.AnythingOfType("dto.CreateJournalEntryRequest")).
		Return(entry, nil).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/journal-entries", dto.CreateJournalEntryRequest{
		Description:     "Sale of goods",
		ReferenceNumber: "INV-42",
		EntryDate:       entry.EntryDate,
		Lines: []dto.CreateJournalLineRequest{
			{AccountCode: "1000", Debit: decimal.RequireFromString("250.00")},
			{AccountCode: "4000", Credit: decimal.RequireFromString("250.00")},
		},
	})

	suite.Equal(http.StatusCreated, w.Code)
	suite.Equal("/api/v1/journal-entries/"+entry.EntryID, w.Header().Get("Location"))

	var resp dto.JournalEntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(entry.EntryID, resp.EntryID)
	suite.Len(resp.Lines, 2)
	suite.False(resp.IsPosted)
}

func (suite *JournalHandlerTestSuite) TestCreateEntry_UnbalancedReturns400() {
	suite.mockJournalSvc.On("CreateEntry", mock.Anything, mock.AnythingOfType("dto.CreateJournalEntryRequest")).
		Return(nil, apperrors.ErrUnbalanced).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/journal-entries", dto.CreateJournalEntryRequest{
		Description:     "Lopsided",
		ReferenceNumber: "INV-43",
		EntryDate:       time.Now().UTC(),
		Lines: []dto.CreateJournalLineRequest{
			{AccountCode: "1000", Debit: decimal.RequireFromString("250.00")},
			{AccountCode: "4000", Credit: decimal.RequireFromString("100.00")},
		},
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "balance")
}

func (suite *JournalHandlerTestSuite) TestPostEntry_Returns204() {
	entryID := uuid.NewString()
	suite.mockJournalSvc.On("PostEntry", mock.Anything, entryID).Return(true, nil).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/journal-entries/"+entryID+"/post", nil)

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *JournalHandlerTestSuite) TestPostEntry_AlreadyPostedReturns404() {
	entryID := uuid.NewString()
	suite.mockJournalSvc.On("PostEntry", mock.Anything, entryID).Return(false, nil).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/journal-entries/"+entryID+"/post", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *JournalHandlerTestSuite) TestUpdateEntry_PostedReturns400() {
	entryID := uuid.NewString()
	suite.mockJournalSvc.On("UpdateEntry", mock.Anything, entryID, mock.AnythingOfType("dto.UpdateJournalEntryRequest")).
		Return(nil, apperrors.ErrEntryPosted).Once()

	desc := "New description"
	w := suite.performRequest(http.MethodPut, "/api/v1/journal-entries/"+entryID, dto.UpdateJournalEntryRequest{
		Description: &desc,
	})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *JournalHandlerTestSuite) TestDeleteEntry_PostedReturns400() {
	entryID := uuid.NewString()
	suite.mockJournalSvc.On("DeleteEntry", mock.Anything, entryID).
		Return(false, apperrors.ErrEntryPosted).Once()

	w := suite.performRequest(http.MethodDelete, "/api/v1/journal-entries/"+entryID, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *JournalHandlerTestSuite) TestListEntriesByDateRange_MissingParamsReturns400() {
	w := suite.performRequest(http.MethodGet, "/api/v1/journal-entries/by-date-range", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockJournalSvc.AssertNotCalled(suite.T(), "ListEntriesByDateRange", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalHandlerTestSuite) TestListEntriesByDateRange_Success() {
	entries := []domain.JournalEntry{*sampleEntry()}
	suite.mockJournalSvc.On("ListEntriesByDateRange", mock.Anything, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(entries, nil).Once()

	w := suite.performRequest(http.MethodGet,
		"/api/v1/journal-entries/by-date-range?startDate=2024-08-01T00:00:00Z&endDate=2024-08-31T00:00:00Z", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListJournalEntriesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Entries, 1)
}

// --- Report endpoints ---

func (suite *JournalHandlerTestSuite) TestTrialBalance_Success() {
	report := &domain.TrialBalanceReport{
		Rows: []domain.TrialBalanceRow{
			{AccountCode: "1000", AccountName: "Cash", Debit: decimal.RequireFromString("250.00"), Credit: decimal.Zero},
			{AccountCode: "4000", AccountName: "Sales Revenue", Debit: decimal.Zero, Credit: decimal.RequireFromString("250.00")},
		},
		TotalDebits:  decimal.RequireFromString("250.00"),
		TotalCredits: decimal.RequireFromString("250.00"),
		IsBalanced:   true,
	}
	suite.mockReportSvc.On("TrialBalance", mock.Anything).Return(report, nil).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/reports/trial-balance", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.TrialBalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Rows, 2)
	suite.True(resp.IsBalanced)
}

func (suite *JournalHandlerTestSuite) TestTotalDebits_Success() {
	suite.mockReportSvc.On("TotalDebits", mock.Anything).
		Return(decimal.RequireFromString("620.00"), nil).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/reports/total-debits", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.TotalResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Total.Equal(decimal.RequireFromString("620.00")))
}

// --- Ledger key endpoints ---

func (suite *JournalHandlerTestSuite) TestCreateKey_Returns201() {
	key := &domain.LedgerKey{
		KeyID:         uuid.NewString(),
		KeyName:       "primary",
		EncryptionKey: "bW90aGVyLW9mLWFsbC1rZXlz",
		CreatedAt:     time.Now().UTC(),
		IsActive:      true,
	}
	suite.mockKeySvc.On("CreateKey", mock.Anything, mock.AnythingOfType("dto.CreateLedgerKeyRequest")).
		Return(key, nil).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/ledger-keys", dto.CreateLedgerKeyRequest{KeyName: "primary"})

	suite.Equal(http.StatusCreated, w.Code)
	suite.Equal("/api/v1/ledger-keys/"+key.KeyID, w.Header().Get("Location"))
}

func (suite *JournalHandlerTestSuite) TestRotateKey_UnknownReturns404() {
	keyID := uuid.NewString()
	suite.mockKeySvc.On("RotateKey", mock.Anything, keyID).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/ledger-keys/"+keyID+"/rotate", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *JournalHandlerTestSuite) TestDeactivateKey_Returns200() {
	keyID := uuid.NewString()
	key := &domain.LedgerKey{KeyID: keyID, KeyName: "primary", IsActive: false}
	suite.mockKeySvc.On("DeactivateKey", mock.Anything, keyID).Return(key, nil).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/ledger-keys/"+keyID+"/deactivate", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.LedgerKeyResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.False(resp.IsActive)
}

func (suite *JournalHandlerTestSuite) TestDeleteKey_UnknownReturns404() {
	keyID := uuid.NewString()
	suite.mockKeySvc.On("DeleteKey", mock.Anything, keyID).Return(false, nil).Once()

	w := suite.performRequest(http.MethodDelete, "/api/v1/ledger-keys/"+keyID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func TestJournalHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(JournalHandlerTestSuite))
}
