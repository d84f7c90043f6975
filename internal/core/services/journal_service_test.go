package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/sitebooks_ledger/internal/apperrors"
	"github.com/SscSPs/sitebooks_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/sitebooks_ledger/internal/core/ports/services"
	"github.com/SscSPs/sitebooks_ledger/internal/core/services"
	"github.com/SscSPs/sitebooks_ledger/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type JournalServiceTestSuite struct {
	suite.Suite
	ctx         context.Context
	journalRepo *MockJournalRepository
	paymentRepo *MockPaymentRepository
	accountRepo *MockAccountRepository
	service     portssvc.JournalSvcFacade
	tx          *fakeTx
}

func (suite *JournalServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.journalRepo = new(MockJournalRepository)
	suite.paymentRepo = new(MockPaymentRepository)
	suite.accountRepo = new(MockAccountRepository)
	suite.tx = &fakeTx{}
	suite.service = services.NewJournalService(suite.journalRepo, suite.paymentRepo, suite.accountRepo,
		services.WithClock(func() time.Time { return fixedNow }))
}

func (suite *JournalServiceTestSuite) TearDownTest() {
	suite.journalRepo.AssertExpectations(suite.T())
	suite.paymentRepo.AssertExpectations(suite.T())
	suite.accountRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) expectTx(commit bool) {
	suite.journalRepo.On("Begin", mock.Anything).Return(suite.tx, nil).Once()
	suite.journalRepo.On("Rollback", mock.Anything, suite.tx).Return(nil).Maybe()
	if commit {
		suite.journalRepo.On("Commit", mock.Anything, suite.tx).Return(nil).Once()
	}
}

func postedEntry(id string) *domain.JournalEntry {
	return &domain.JournalEntry{
		EntryID:     id,
		CompanyID:   testCompanyID,
		EntryDate:   time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		Reference:   "INV-7",
		Description: "Lumber delivery",
		Status:      domain.Posted,
		TotalDebit:  dec("300"),
		TotalCredit: dec("300"),
	}
}

func entryLines(entryID string) []domain.JournalEntryLine {
	return []domain.JournalEntryLine{
		{LineID: "l1", EntryID: entryID, AccountID: "materials", DebitAmount: dec("300"), LineOrder: 1},
		{LineID: "l2", EntryID: entryID, AccountID: "ap-1", CreditAmount: dec("300"), LineOrder: 2},
	}
}

func (suite *JournalServiceTestSuite) createRequest(debit, credit string) dto.CreateJournalEntryRequest {
	return dto.CreateJournalEntryRequest{
		EntryDate:   time.Date(2024, 2, 1, 13, 45, 0, 0, time.UTC),
		Description: "  Lumber delivery ",
		Lines: []dto.JournalLineRequest{
			{AccountID: "materials", DebitAmount: dec(debit)},
			{AccountID: "ap-1", CreditAmount: dec(credit)},
		},
	}
}

func (suite *JournalServiceTestSuite) TestCreateJournalEntry_DefaultsToDraft() {
	suite.accountRepo.On("FindAccountsByIDs", mock.Anything, testCompanyID, []string{"materials", "ap-1"}).
		Return(map[string]domain.Account{
			"materials": {AccountID: "materials", IsActive: true},
			"ap-1":      {AccountID: "ap-1", IsActive: true},
		}, nil).Once()
	suite.expectTx(true)
	suite.journalRepo.On("SaveEntryInTx", mock.Anything, suite.tx, mock.AnythingOfType("domain.JournalEntry"), mock.Anything).Return(nil).Once()

	entry, lines, err := suite.service.CreateJournalEntry(suite.ctx, testCompanyID, suite.createRequest("300", "300"), testUserID)

	suite.Require().NoError(err)
	suite.Equal(domain.Draft, entry.Status)
	suite.Equal("Lumber delivery", entry.Description)
	suite.Equal(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), entry.EntryDate)
	suite.True(dec("300").Equal(entry.TotalDebit))
	suite.Require().Len(lines, 2)
	suite.Equal(entry.EntryID, lines[0].EntryID)
	suite.Equal(2, lines[1].LineOrder)
	suite.Equal(testUserID, entry.CreatedBy)
}

func (suite *JournalServiceTestSuite) TestCreateJournalEntry_Unbalanced() {
	_, _, err := suite.service.CreateJournalEntry(suite.ctx, testCompanyID, suite.createRequest("300", "299.99"), testUserID)

	var unbalanced *apperrors.UnbalancedEntryError
	suite.ErrorAs(err, &unbalanced)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.journalRepo.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func (suite *JournalServiceTestSuite) TestCreateJournalEntry_ForeignAccount() {
	suite.accountRepo.On("FindAccountsByIDs", mock.Anything, testCompanyID, mock.Anything).
		Return(map[string]domain.Account{"materials": {AccountID: "materials", IsActive: true}}, nil).Once()

	_, _, err := suite.service.CreateJournalEntry(suite.ctx, testCompanyID, suite.createRequest("300", "300"), testUserID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorIs(err, services.ErrAccountNotInCompany)
}

func (suite *JournalServiceTestSuite) TestCreateJournalEntry_TooFewLines() {
	req := suite.createRequest("300", "300")
	req.Lines = req.Lines[:1]

	_, _, err := suite.service.CreateJournalEntry(suite.ctx, testCompanyID, req, testUserID)

	suite.ErrorIs(err, services.ErrJournalMinLines)
}

func (suite *JournalServiceTestSuite) TestPostJournalEntry_Draft() {
	draft := postedEntry("entry-1")
	draft.Status = domain.Draft
	suite.expectTx(true)
	suite.journalRepo.On("FindEntryForUpdate", mock.Anything, suite.tx, testCompanyID, "entry-1").Return(draft, nil).Once()
	suite.journalRepo.On("FindLinesInTx", mock.Anything, suite.tx, "entry-1").Return(entryLines("entry-1"), nil).Once()
	suite.journalRepo.On("MarkPostedInTx", mock.Anything, suite.tx, "entry-1", testUserID, fixedNow).Return(nil).Once()

	entry, err := suite.service.PostJournalEntry(suite.ctx, testCompanyID, "entry-1", testUserID)

	suite.Require().NoError(err)
	suite.Equal(domain.Posted, entry.Status)
	suite.Equal(testUserID, entry.LastUpdatedBy)
}

func (suite *JournalServiceTestSuite) TestPostJournalEntry_AlreadyPosted() {
	suite.expectTx(false)
	suite.journalRepo.On("FindEntryForUpdate", mock.Anything, suite.tx, testCompanyID, "entry-1").Return(postedEntry("entry-1"), nil).Once()

	_, err := suite.service.PostJournalEntry(suite.ctx, testCompanyID, "entry-1", testUserID)

	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.ErrorIs(err, services.ErrEntryAlreadyPosted)
}

func (suite *JournalServiceTestSuite) TestReverseJournalEntry_MirrorsAndLinks() {
	suite.expectTx(true)
	suite.journalRepo.On("FindEntryForUpdate", mock.Anything, suite.tx, testCompanyID, "entry-1").Return(postedEntry("entry-1"), nil).Once()
	suite.journalRepo.On("FindLinesInTx", mock.Anything, suite.tx, "entry-1").Return(entryLines("entry-1"), nil).Once()

	var mirrored []domain.JournalEntryLine
	suite.journalRepo.On("SaveEntryInTx", mock.Anything, suite.tx, mock.AnythingOfType("domain.JournalEntry"), mock.Anything).
		Run(func(args mock.Arguments) { mirrored = args.Get(3).([]domain.JournalEntryLine) }).
		Return(nil).Once()
	reversalDay := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	suite.journalRepo.On("MarkReversedInTx", mock.Anything, suite.tx, "entry-1", mock.AnythingOfType("string"), reversalDay, testUserID, fixedNow).
		Return(nil).Once()

	reversal, err := suite.service.ReverseJournalEntry(suite.ctx, testCompanyID, "entry-1", testUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(reversal.ReversalOfEntryID)
	suite.Equal("entry-1", *reversal.ReversalOfEntryID)
	suite.Equal(domain.Posted, reversal.Status)
	suite.Equal(reversalDay, reversal.EntryDate)
	suite.Require().Len(mirrored, 2)
	suite.True(dec("300").Equal(mirrored[0].CreditAmount))
	suite.True(mirrored[0].DebitAmount.IsZero())
	suite.True(dec("300").Equal(mirrored[1].DebitAmount))
}

func (suite *JournalServiceTestSuite) TestReverseJournalEntry_AlreadyReversed() {
	original := postedEntry("entry-1")
	original.ReversedByEntryID = strPtr("rev-1")
	suite.expectTx(false)
	suite.journalRepo.On("FindEntryForUpdate", mock.Anything, suite.tx, testCompanyID, "entry-1").Return(original, nil).Once()
	suite.journalRepo.On("FindLinesInTx", mock.Anything, suite.tx, "entry-1").Return(entryLines("entry-1"), nil).Once()

	_, err := suite.service.ReverseJournalEntry(suite.ctx, testCompanyID, "entry-1", testUserID)

	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.journalRepo.AssertNotCalled(suite.T(), "SaveEntryInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestReverseJournalEntry_LostRace() {
	suite.expectTx(false)
	suite.journalRepo.On("FindEntryForUpdate", mock.Anything, suite.tx, testCompanyID, "entry-1").Return(postedEntry("entry-1"), nil).Once()
	suite.journalRepo.On("FindLinesInTx", mock.Anything, suite.tx, "entry-1").Return(entryLines("entry-1"), nil).Once()
	suite.journalRepo.On("SaveEntryInTx", mock.Anything, suite.tx, mock.Anything, mock.Anything).Return(nil).Once()
	suite.journalRepo.On("MarkReversedInTx", mock.Anything, suite.tx, "entry-1", mock.Anything, mock.Anything, testUserID, fixedNow).
		Return(apperrors.ErrConflict).Once()

	_, err := suite.service.ReverseJournalEntry(suite.ctx, testCompanyID, "entry-1", testUserID)

	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *JournalServiceTestSuite) TestDeleteJournalEntry_PaymentLinkedIsProtected() {
	suite.expectTx(false)
	suite.journalRepo.On("LoadDeletionStateInTx", mock.Anything, suite.tx, testCompanyID, "entry-1").Return(&domain.DeletionState{
		Entry:           *postedEntry("entry-1"),
		LineCount:       2,
		LinkedPaymentID: strPtr("pay-1"),
	}, nil).Once()

	err := suite.service.DeleteJournalEntry(suite.ctx, testCompanyID, "entry-1", testUserID)

	var protected *apperrors.ProtectedDeletionError
	suite.Require().ErrorAs(err, &protected)
	suite.Equal("pay-1", protected.PaymentID)
	suite.Equal(apperrors.ReasonLinkedPayment, protected.Reason)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.journalRepo.AssertNotCalled(suite.T(), "DeleteEntryInTx", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestDeleteJournalEntry_MalformedPaymentEntryIsUnlinked() {
	suite.expectTx(true)
	suite.journalRepo.On("LoadDeletionStateInTx", mock.Anything, suite.tx, testCompanyID, "entry-1").Return(&domain.DeletionState{
		Entry:           *postedEntry("entry-1"),
		LineCount:       0,
		LinkedPaymentID: strPtr("pay-1"),
	}, nil).Once()
	suite.paymentRepo.On("ClearJournalEntryInTx", mock.Anything, suite.tx, "pay-1", "entry-1").Return(nil).Once()
	suite.journalRepo.On("DeleteEntryInTx", mock.Anything, suite.tx, "entry-1").Return(nil).Once()

	err := suite.service.DeleteJournalEntry(suite.ctx, testCompanyID, "entry-1", testUserID)

	suite.NoError(err)
}

func (suite *JournalServiceTestSuite) TestDeleteJournalEntry_Unlinked() {
	suite.expectTx(true)
	suite.journalRepo.On("LoadDeletionStateInTx", mock.Anything, suite.tx, testCompanyID, "entry-1").Return(&domain.DeletionState{
		Entry:     *postedEntry("entry-1"),
		LineCount: 2,
	}, nil).Once()
	suite.journalRepo.On("DeleteEntryInTx", mock.Anything, suite.tx, "entry-1").Return(nil).Once()

	suite.NoError(suite.service.DeleteJournalEntry(suite.ctx, testCompanyID, "entry-1", testUserID))
	suite.paymentRepo.AssertNotCalled(suite.T(), "ClearJournalEntryInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestJournalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}
