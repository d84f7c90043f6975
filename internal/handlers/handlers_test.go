package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/sitebooks_ledger/internal/apperrors"
	"github.com/SscSPs/sitebooks_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/sitebooks_ledger/internal/core/ports/services"
	"github.com/SscSPs/sitebooks_ledger/internal/dto"
	"github.com/SscSPs/sitebooks_ledger/internal/handlers"
	"github.com/SscSPs/sitebooks_ledger/internal/middleware"
	"github.com/SscSPs/sitebooks_ledger/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/ulule/limiter/v3"
)

const (
	testCompanyID = "company-1"
	testUserID    = "user-1"
)

type HandlerTestSuite struct {
	suite.Suite
	router                *gin.Engine
	jwtSecret             string
	maxImportBytes        int64
	mockJournalService    *MockJournalService
	mockPaymentService    *MockPaymentService
	mockImportService     *MockImportService
	mockReconciliationSvc *MockReconciliationService
}

// generateTestToken creates a signed token whose subject is the acting user.
func (suite *HandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "sitebooks-test",
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

func (suite *HandlerTestSuite) SetupSuite() {
	suite.Require().NoError(dto.RegisterValidators())
}

func (suite *HandlerTestSuite) SetupTest() {
	suite.maxImportBytes = 1 << 20
	suite.buildRouter(nil)
}

// buildRouter wires the real route table over fresh mocks.
func (suite *HandlerTestSuite) buildRouter(importLimiter *limiter.Limiter) {
	gin.SetMode(gin.TestMode)
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.mockJournalService = new(MockJournalService)
	suite.mockPaymentService = new(MockPaymentService)
	suite.mockImportService = new(MockImportService)
	suite.mockReconciliationSvc = new(MockReconciliationService)

	suite.router = gin.New()
	cfg := &config.Config{JWTSecret: suite.jwtSecret, IsProduction: true, MaxImportBytes: suite.maxImportBytes}
	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		Journal:        suite.mockJournalService,
		Payment:        suite.mockPaymentService,
		Import:         suite.mockImportService,
		Reconciliation: suite.mockReconciliationSvc,
	}, importLimiter, nil)
}

func (suite *HandlerTestSuite) TearDownTest() {
	suite.mockJournalService.AssertExpectations(suite.T())
	suite.mockPaymentService.AssertExpectations(suite.T())
	suite.mockImportService.AssertExpectations(suite.T())
	suite.mockReconciliationSvc.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) do(method, path string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, "/api/v1/companies/"+testCompanyID+path, body)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(testUserID))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) doJSON(method, path, body string) *httptest.ResponseRecorder {
	return suite.do(method, path, strings.NewReader(body), "application/json")
}

func (suite *HandlerTestSuite) decode(w *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body
}

func statementUpload(fileName, content string) (*bytes.Buffer, string) {
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)
	part, _ := writer.CreateFormFile("file", fileName)
	_, _ = part.Write([]byte(content))
	_ = writer.Close()
	return buf, writer.FormDataContentType()
}

// --- Test Cases ---

func (suite *HandlerTestSuite) TestMissingTokenIsRejected() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/companies/"+testCompanyID+"/payments", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockPaymentService.AssertNotCalled(suite.T(), "ListPayments", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCreatePayment_StoredEvenWhenPostingFails() {
	suite.mockPaymentService.On("CreatePayment", mock.Anything, testCompanyID,
		mock.MatchedBy(func(req dto.CreatePaymentRequest) bool {
			return req.Amount.Equal(decimal.RequireFromString("500")) && req.BankFee.Equal(decimal.RequireFromString("15"))
		}), testUserID).
		Return(&domain.PostingResult{
			Payment: domain.Payment{PaymentID: "pay-1", CompanyID: testCompanyID, Amount: decimal.RequireFromString("500")},
			Error:   "no CASH account mapped for bank-1 in company company-1",
		}, nil).Once()

	w := suite.doJSON(http.MethodPost, "/payments", `{
		"payeeKind": "VENDOR", "payeeID": "vendor-1", "amount": "500.00", "bankFee": "15.00",
		"paymentDate": "2024-03-05T00:00:00Z", "method": "CHECK", "bankAccountID": "bank-1"
	}`)

	suite.Equal(http.StatusCreated, w.Code, w.Body.String())
	var resp dto.PostingResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("pay-1", resp.Payment.PaymentID)
	suite.Nil(resp.JournalEntryID)
	suite.Contains(resp.PostingError, "no CASH account mapped")
}

func (suite *HandlerTestSuite) TestCreatePayment_RejectsNonPositiveAmount() {
	w := suite.doJSON(http.MethodPost, "/payments", `{
		"payeeKind": "VENDOR", "payeeID": "vendor-1", "amount": "0",
		"paymentDate": "2024-03-05T00:00:00Z", "method": "ACH"
	}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockPaymentService.AssertNotCalled(suite.T(), "CreatePayment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestPostPayment_MissingMappingIsUnprocessable() {
	suite.mockPaymentService.On("PostPayment", mock.Anything, testCompanyID, "pay-1", testUserID).
		Return(nil, fmt.Errorf("posting payment pay-1: %w", &apperrors.AccountResolutionError{
			CompanyID: testCompanyID, Role: "ACCOUNTS_PAYABLE", SubjectID: "vendor-1",
		})).Once()

	w := suite.doJSON(http.MethodPost, "/payments/pay-1/post", "")

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.Contains(suite.decode(w)["error"], "ACCOUNTS_PAYABLE")
}

func (suite *HandlerTestSuite) TestBackfillPayments_EmptyBodyUsesDefaultLimit() {
	suite.mockPaymentService.On("BackfillPayments", mock.Anything, testCompanyID, 0, testUserID).
		Return(&domain.BackfillResult{Scanned: 3, Posted: 2, Failed: 1,
			Failures: []domain.BackfillFailure{{PaymentID: "pay-9", Error: "no CASH account mapped"}}}, nil).Once()

	w := suite.do(http.MethodPost, "/payments/backfill", nil, "")

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	body := suite.decode(w)
	suite.EqualValues(2, body["posted"])
	suite.EqualValues(1, body["failed"])
}

func (suite *HandlerTestSuite) TestGetPayment_NotFound() {
	suite.mockPaymentService.On("GetPayment", mock.Anything, testCompanyID, "missing", testUserID).
		Return(nil, apperrors.NewNotFoundError("payment not found")).Once()

	w := suite.doJSON(http.MethodGet, "/payments/missing", "")

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestCreateJournalEntry_Unbalanced() {
	suite.mockJournalService.On("CreateJournalEntry", mock.Anything, testCompanyID, mock.AnythingOfType("dto.CreateJournalEntryRequest"), testUserID).
		Return(nil, nil, &apperrors.UnbalancedEntryError{
			Debits: decimal.RequireFromString("100"), Credits: decimal.RequireFromString("90"),
		}).Once()

	w := suite.doJSON(http.MethodPost, "/journal-entries", `{
		"entryDate": "2024-03-01T00:00:00Z", "description": "Accrual",
		"lines": [
			{"accountID": "acc-1", "debitAmount": "100"},
			{"accountID": "acc-2", "creditAmount": "90"}
		]
	}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.decode(w)["error"], "unbalanced")
}

func (suite *HandlerTestSuite) TestDeleteJournalEntry_ProtectedReportsBlockingPayment() {
	suite.mockJournalService.On("DeleteJournalEntry", mock.Anything, testCompanyID, "entry-1", testUserID).
		Return(&apperrors.ProtectedDeletionError{EntryID: "entry-1", PaymentID: "pay-1", Reason: apperrors.ReasonLinkedPayment}).Once()

	w := suite.do(http.MethodDelete, "/journal-entries/entry-1", nil, "")

	suite.Equal(http.StatusConflict, w.Code)
	body := suite.decode(w)
	suite.Equal("pay-1", body["paymentID"])
	suite.Equal(apperrors.ReasonLinkedPayment, body["reason"])
}

func (suite *HandlerTestSuite) TestDeleteJournalEntry_Success() {
	suite.mockJournalService.On("DeleteJournalEntry", mock.Anything, testCompanyID, "entry-2", testUserID).Return(nil).Once()

	w := suite.do(http.MethodDelete, "/journal-entries/entry-2", nil, "")

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *HandlerTestSuite) TestReverseJournalEntry() {
	suite.Run("returns the new entry", func() {
		original := "entry-1"
		suite.mockJournalService.On("ReverseJournalEntry", mock.Anything, testCompanyID, original, testUserID).
			Return(&domain.JournalEntry{
				EntryID: "entry-r", CompanyID: testCompanyID, Status: domain.Posted,
				TotalDebit: decimal.RequireFromString("515"), TotalCredit: decimal.RequireFromString("515"),
				ReversalOfEntryID: &original,
			}, nil).Once()

		w := suite.do(http.MethodPost, "/journal-entries/entry-1/reverse", nil, "")

		suite.Equal(http.StatusCreated, w.Code)
		var resp dto.JournalEntryResponse
		suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
		suite.Equal("entry-r", resp.EntryID)
		suite.Require().NotNil(resp.ReversalOfEntryID)
		suite.Equal(original, *resp.ReversalOfEntryID)
	})

	suite.Run("second reversal conflicts", func() {
		suite.mockJournalService.On("ReverseJournalEntry", mock.Anything, testCompanyID, "entry-3", testUserID).
			Return(nil, fmt.Errorf("%w: entry entry-3 was already reversed by entry-r", apperrors.ErrConflict)).Once()

		w := suite.do(http.MethodPost, "/journal-entries/entry-3/reverse", nil, "")

		suite.Equal(http.StatusConflict, w.Code)
	})
}

func (suite *HandlerTestSuite) TestImportStatement_ForwardsUploadedFile() {
	content := "Card,Transaction Date,Post Date,Description,Category,Type,Amount,Memo\n"
	body, contentType := statementUpload("march.csv", content)
	suite.mockImportService.On("ImportStatement", mock.Anything, testCompanyID, "card-1", "march.csv", []byte(content), testUserID).
		Return(&domain.ImportResult{Format: "bank_card", Message: domain.NoNewTransactionsMessage}, nil).Once()

	w := suite.do(http.MethodPost, "/credit-cards/card-1/imports", body, contentType)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var result domain.ImportResult
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &result))
	suite.Equal(0, result.ImportedCount)
	suite.Equal(domain.NoNewTransactionsMessage, result.Message)
}

func (suite *HandlerTestSuite) TestImportStatement_MissingFile() {
	w := suite.doJSON(http.MethodPost, "/credit-cards/card-1/imports", `{}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockImportService.AssertNotCalled(suite.T(), "ImportStatement",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestImportStatement_TooLarge() {
	suite.maxImportBytes = 16
	suite.buildRouter(nil)
	body, contentType := statementUpload("big.csv", strings.Repeat("x", 64))

	w := suite.do(http.MethodPost, "/credit-cards/card-1/imports", body, contentType)

	suite.Equal(http.StatusRequestEntityTooLarge, w.Code)
	suite.Contains(suite.decode(w)["error"], "exceeds 16 bytes")
	suite.mockImportService.AssertNotCalled(suite.T(), "ImportStatement",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestImportStatement_RateLimited() {
	lim, err := middleware.NewRateLimiter("1-M")
	suite.Require().NoError(err)
	suite.buildRouter(lim)
	suite.mockImportService.On("ImportStatement", mock.Anything, testCompanyID, "card-1", "a.csv", mock.Anything, testUserID).
		Return(nil, fmt.Errorf("%w: statement file is empty", apperrors.ErrValidation)).Once()

	first, firstType := statementUpload("a.csv", "x")
	w := suite.do(http.MethodPost, "/credit-cards/card-1/imports", first, firstType)
	suite.Equal(http.StatusBadRequest, w.Code)

	second, secondType := statementUpload("a.csv", "x")
	w = suite.do(http.MethodPost, "/credit-cards/card-1/imports", second, secondType)
	suite.Equal(http.StatusTooManyRequests, w.Code)
}

func (suite *HandlerTestSuite) TestCloseReconciliation_OutOfBalance() {
	selection := []domain.CandidateRef{{SourceKind: domain.SourcePayment, SourceID: "pay-1"}}
	suite.mockReconciliationSvc.On("CloseReconciliation", mock.Anything, testCompanyID, "recon-1", selection, testUserID).
		Return(nil, fmt.Errorf("%w: reconciliation is out of balance by 425.00", apperrors.ErrValidation)).Once()

	w := suite.doJSON(http.MethodPost, "/reconciliations/recon-1/close",
		`{"cleared": [{"sourceKind": "PAYMENT", "sourceID": "pay-1"}]}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.decode(w)["error"], "out of balance by 425.00")
}

func (suite *HandlerTestSuite) TestPreviewReconciliation_RejectsUnknownSourceKind() {
	w := suite.doJSON(http.MethodPost, "/reconciliations/recon-1/preview",
		`{"cleared": [{"sourceKind": "INVOICE", "sourceID": "inv-1"}]}`)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestListReconciliations() {
	suite.Run("requires a bank account", func() {
		w := suite.do(http.MethodGet, "/reconciliations", nil, "")
		suite.Equal(http.StatusBadRequest, w.Code)
	})

	suite.Run("nested under the bank account", func() {
		suite.mockReconciliationSvc.On("ListReconciliations", mock.Anything, testCompanyID, "bank-1").
			Return([]domain.BankReconciliation{{ReconciliationID: "recon-1", BankAccountID: "bank-1", Status: domain.ReconciliationOpen}}, nil).Once()

		w := suite.do(http.MethodGet, "/bank-accounts/bank-1/reconciliations", nil, "")

		suite.Equal(http.StatusOK, w.Code)
		var resp []dto.ReconciliationResponse
		suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
		suite.Require().Len(resp, 1)
		suite.Equal(domain.ReconciliationOpen, resp[0].Status)
	})
}

func (suite *HandlerTestSuite) TestExportReconciliation_ServesWorkbook() {
	workbook := []byte("PK\x03\x04fake")
	suite.mockReconciliationSvc.On("ExportReconciliationReport", mock.Anything, testCompanyID, "recon-1").Return(workbook, nil).Once()

	w := suite.do(http.MethodGet, "/reconciliations/recon-1/export", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	suite.Contains(w.Header().Get("Content-Disposition"), `filename="reconciliation-recon-1.xlsx"`)
	suite.Equal(workbook, w.Body.Bytes())
}

func (suite *HandlerTestSuite) TestCreateReconciliation_OpenSessionConflict() {
	suite.mockReconciliationSvc.On("CreateReconciliation", mock.Anything, testCompanyID, mock.AnythingOfType("dto.CreateReconciliationRequest"), testUserID).
		Return(nil, fmt.Errorf("%w: bank account bank-1 already has an open reconciliation", apperrors.ErrConflict)).Once()

	w := suite.doJSON(http.MethodPost, "/reconciliations", `{
		"bankAccountID": "bank-1", "periodStart": "2024-03-01T00:00:00Z",
		"periodEnd": "2024-03-31T00:00:00Z", "endingBalance": "11495.00"
	}`)

	suite.Equal(http.StatusConflict, w.Code)
}

// --- Run Test Suite ---
func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
