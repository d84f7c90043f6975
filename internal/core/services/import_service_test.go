package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/sitebooks_ledger/internal/apperrors"
	"github.com/SscSPs/sitebooks_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/sitebooks_ledger/internal/core/ports/services"
	"github.com/SscSPs/sitebooks_ledger/internal/core/services"
	"github.com/SscSPs/sitebooks_ledger/internal/importer"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const statementCSV = `Card,Transaction Date,Post Date,Description,Category,Type,Amount,Memo
1234,01/05/2024,01/06/2024,HOME DEPOT #123,Home,Sale,-125.50,
1234,01/07/2024,01/07/2024,AUTOPAY PAYMENT,,Payment,250.00,
1234,01/08/2024,01/09/2024,LATE FEE,Fees,Fee,-39.00,
1234,01/10/2024,01/10/2024,STATEMENT CREDIT,,Adjustment,5.00,goodwill
1234,01/11/2024,01/11/2024,PAYMENT REVERSAL,,Payment,-250.00,
`

type ImportServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	cardRepo *MockCreditCardRepository
	service  portssvc.ImportSvcFacade
	tx       *fakeTx
	card     *domain.CreditCard
}

func (suite *ImportServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.cardRepo = new(MockCreditCardRepository)
	suite.tx = &fakeTx{}
	suite.card = &domain.CreditCard{CardID: "card-1", CompanyID: testCompanyID, Name: "Site truck card"}
	suite.service = services.NewImportService(
		suite.cardRepo,
		importer.NewClassifier(importer.NegativePaymentInclude),
		1<<20,
		services.WithClock(func() time.Time { return fixedNow }),
	)
}

func (suite *ImportServiceTestSuite) TearDownTest() {
	suite.cardRepo.AssertExpectations(suite.T())
}

func (suite *ImportServiceTestSuite) expectImportTx() {
	suite.cardRepo.On("Begin", mock.Anything).Return(suite.tx, nil).Once()
	suite.cardRepo.On("Rollback", mock.Anything, suite.tx).Return(nil).Maybe()
	suite.cardRepo.On("Commit", mock.Anything, suite.tx).Return(nil).Once()
}

func (suite *ImportServiceTestSuite) TestImportStatement_SkipsKnownKeysAndCountsRaces() {
	suite.cardRepo.On("FindCreditCardByID", mock.Anything, testCompanyID, "card-1").Return(suite.card, nil).Once()
	suite.cardRepo.On("ListDedupKeys", mock.Anything, "card-1").
		Return([]string{"2024-01-05|125.50|HOME DEPOT #123|purchase"}, nil).Once()
	suite.expectImportTx()

	var inserted []domain.CreditCardTransaction
	suite.cardRepo.On("InsertTransactionsInTx", mock.Anything, suite.tx, mock.Anything).
		Run(func(args mock.Arguments) { inserted = args.Get(2).([]domain.CreditCardTransaction) }).
		Return(2, nil).Once()

	var batch domain.ImportBatch
	suite.cardRepo.On("RecordImportInTx", mock.Anything, suite.tx, mock.AnythingOfType("domain.ImportBatch")).
		Run(func(args mock.Arguments) { batch = args.Get(2).(domain.ImportBatch) }).
		Return(nil).Once()

	result, err := suite.service.ImportStatement(suite.ctx, testCompanyID, "card-1", "january.csv", []byte(statementCSV), testUserID)

	suite.Require().NoError(err)
	suite.Equal(string(importer.FormatBankCard), result.Format)
	suite.Equal(2, result.ImportedCount)
	suite.Equal(2, result.DuplicateCount, "one known key plus one row lost to a concurrent import")
	suite.Equal(1, result.ExcludedCount)
	suite.Equal(0, result.SkippedCount)
	suite.Empty(result.Message)

	suite.Require().Len(inserted, 3)
	for _, txn := range inserted {
		suite.Equal("card-1", txn.CardID)
		suite.Equal(testCompanyID, txn.CompanyID)
		suite.NotEmpty(txn.TransactionID)
		suite.Require().NotNil(txn.ImportBatchID)
		suite.Equal(result.BatchID, *txn.ImportBatchID)
		suite.Equal(testUserID, txn.CreatedBy)
	}

	suite.Equal(result.BatchID, batch.BatchID)
	suite.Equal(5, batch.TotalRows)
	suite.Equal("january.csv", batch.FileName)
	suite.Equal(importer.Digest([]byte(statementCSV)), batch.FileDigest)
	suite.Equal(fixedNow, batch.ImportedAt)
}

func (suite *ImportServiceTestSuite) TestImportStatement_ReimportReportsNoNewTransactions() {
	keys := []string{
		"2024-01-05|125.50|HOME DEPOT #123|purchase",
		"2024-01-08|39.00|LATE FEE|fee",
		"2024-01-10|5.00|STATEMENT CREDIT|adjustment",
		"2024-01-11|250.00|PAYMENT REVERSAL|payment",
	}
	suite.cardRepo.On("FindCreditCardByID", mock.Anything, testCompanyID, "card-1").Return(suite.card, nil).Once()
	suite.cardRepo.On("ListDedupKeys", mock.Anything, "card-1").Return(keys, nil).Once()
	suite.expectImportTx()
	suite.cardRepo.On("InsertTransactionsInTx", mock.Anything, suite.tx, mock.MatchedBy(func(txns []domain.CreditCardTransaction) bool {
		return len(txns) == 0
	})).Return(0, nil).Once()
	suite.cardRepo.On("RecordImportInTx", mock.Anything, suite.tx, mock.Anything).Return(nil).Once()

	result, err := suite.service.ImportStatement(suite.ctx, testCompanyID, "card-1", "january.csv", []byte(statementCSV), testUserID)

	suite.Require().NoError(err)
	suite.Equal(0, result.ImportedCount)
	suite.Equal(4, result.DuplicateCount)
	suite.Equal(domain.NoNewTransactionsMessage, result.Message)
}

func (suite *ImportServiceTestSuite) TestImportStatement_RejectsBadFiles() {
	suite.cardRepo.On("FindCreditCardByID", mock.Anything, testCompanyID, "card-1").Return(suite.card, nil)

	_, err := suite.service.ImportStatement(suite.ctx, testCompanyID, "card-1", "empty.csv", nil, testUserID)
	suite.ErrorIs(err, apperrors.ErrValidation)

	tooBig := make([]byte, (1<<20)+1)
	_, err = suite.service.ImportStatement(suite.ctx, testCompanyID, "card-1", "big.csv", tooBig, testUserID)
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.cardRepo.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func (suite *ImportServiceTestSuite) TestImportStatement_UnknownCard() {
	suite.cardRepo.On("FindCreditCardByID", mock.Anything, testCompanyID, "missing").
		Return(nil, apperrors.NewNotFoundError("credit card not found")).Once()

	_, err := suite.service.ImportStatement(suite.ctx, testCompanyID, "missing", "january.csv", []byte(statementCSV), testUserID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestImportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ImportServiceTestSuite))
}
