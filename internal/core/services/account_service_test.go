package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/sitebooks_ledger/internal/apperrors"
	"github.com/SscSPs/sitebooks_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/sitebooks_ledger/internal/core/ports/services"
	"github.com/SscSPs/sitebooks_ledger/internal/core/services"
	"github.com/SscSPs/sitebooks_ledger/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AccountServiceTestSuite struct {
	suite.Suite
	ctx          context.Context
	companyRepo  *MockCompanyRepository
	accountRepo  *MockAccountRepository
	bankAccounts *MockReconciliationRepository
	service      portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.companyRepo = new(MockCompanyRepository)
	suite.accountRepo = new(MockAccountRepository)
	suite.bankAccounts = new(MockReconciliationRepository)
	suite.service = services.NewAccountService(suite.accountRepo, suite.bankAccounts,
		services.WithCompanyReader(suite.companyRepo))
	suite.companyRepo.On("FindCompanyByID", mock.Anything, testCompanyID).
		Return(&domain.Company{CompanyID: testCompanyID}, nil).Maybe()
}

func (suite *AccountServiceTestSuite) TearDownTest() {
	suite.accountRepo.AssertExpectations(suite.T())
	suite.bankAccounts.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	suite.accountRepo.On("SaveAccount", mock.Anything, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	account, err := suite.service.CreateAccount(suite.ctx, testCompanyID, dto.CreateAccountRequest{
		Name:           " Operating Checking ",
		Classification: domain.ClassificationCash,
	}, testUserID)

	suite.Require().NoError(err)
	suite.NotEmpty(account.AccountID)
	suite.Equal("Operating Checking", account.Name)
	suite.Equal(testCompanyID, account.CompanyID)
	suite.True(account.IsActive)
	suite.Equal(testUserID, account.CreatedBy)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_SaveError() {
	suite.accountRepo.On("SaveAccount", mock.Anything, mock.Anything).Return(assert.AnError).Once()

	account, err := suite.service.CreateAccount(suite.ctx, testCompanyID, dto.CreateAccountRequest{
		Name:           "Fees",
		Classification: domain.ClassificationFeeExpense,
	}, testUserID)

	suite.Nil(account)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_UnknownCompany() {
	suite.companyRepo.On("FindCompanyByID", mock.Anything, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateAccount(suite.ctx, "ghost", dto.CreateAccountRequest{
		Name:           "Cash",
		Classification: domain.ClassificationCash,
	}, testUserID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AccountServiceTestSuite) TestSetAccountMapping_Cash() {
	suite.accountRepo.On("FindAccountByID", mock.Anything, testCompanyID, "cash-1").Return(&domain.Account{
		AccountID: "cash-1", CompanyID: testCompanyID, Classification: domain.ClassificationCash, IsActive: true,
	}, nil).Once()
	suite.bankAccounts.On("FindBankAccountByID", mock.Anything, testCompanyID, testBankID).
		Return(&domain.BankAccount{BankAccountID: testBankID}, nil).Once()
	suite.accountRepo.On("UpsertAccountMapping", mock.Anything, mock.MatchedBy(func(m domain.AccountMapping) bool {
		return m.Role == domain.RoleCash && m.SubjectID == testBankID && m.AccountID == "cash-1"
	})).Return(nil).Once()

	mapping, err := suite.service.SetAccountMapping(suite.ctx, testCompanyID, dto.UpsertAccountMappingRequest{
		Role:      domain.RoleCash,
		SubjectID: testBankID,
		AccountID: "cash-1",
	}, testUserID)

	suite.Require().NoError(err)
	suite.Equal(testUserID, mapping.CreatedBy)
}

func (suite *AccountServiceTestSuite) TestSetAccountMapping_Rejections() {
	suite.Run("cash without bank account", func() {
		_, err := suite.service.SetAccountMapping(suite.ctx, testCompanyID, dto.UpsertAccountMappingRequest{
			Role: domain.RoleCash, AccountID: "cash-1",
		}, testUserID)
		suite.ErrorIs(err, apperrors.ErrValidation)
	})

	suite.Run("classification mismatch", func() {
		suite.accountRepo.On("FindAccountByID", mock.Anything, testCompanyID, "other-1").Return(&domain.Account{
			AccountID: "other-1", Classification: domain.ClassificationOther, IsActive: true,
		}, nil).Once()
		_, err := suite.service.SetAccountMapping(suite.ctx, testCompanyID, dto.UpsertAccountMappingRequest{
			Role: domain.RoleAccountsPayable, AccountID: "other-1",
		}, testUserID)
		suite.ErrorIs(err, apperrors.ErrValidation)
	})

	suite.Run("inactive account", func() {
		suite.accountRepo.On("FindAccountByID", mock.Anything, testCompanyID, "fee-old").Return(&domain.Account{
			AccountID: "fee-old", Classification: domain.ClassificationFeeExpense, IsActive: false,
		}, nil).Once()
		_, err := suite.service.SetAccountMapping(suite.ctx, testCompanyID, dto.UpsertAccountMappingRequest{
			Role: domain.RoleFeeExpense, AccountID: "fee-old",
		}, testUserID)
		suite.ErrorIs(err, apperrors.ErrValidation)
	})

	suite.Run("account from another company", func() {
		suite.accountRepo.On("FindAccountByID", mock.Anything, testCompanyID, "elsewhere").Return(nil, apperrors.ErrNotFound).Once()
		_, err := suite.service.SetAccountMapping(suite.ctx, testCompanyID, dto.UpsertAccountMappingRequest{
			Role: domain.RoleAccountsPayable, AccountID: "elsewhere",
		}, testUserID)
		suite.ErrorIs(err, apperrors.ErrValidation)
	})

	suite.accountRepo.AssertNotCalled(suite.T(), "UpsertAccountMapping", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestResolveAccount() {
	suite.Run("exact subject wins", func() {
		suite.accountRepo.On("FindMappedAccountID", mock.Anything, testCompanyID, domain.RoleAccountsPayable, "vendor-7").
			Return("ap-vendor-7", nil).Once()
		id, err := suite.service.ResolveAccount(suite.ctx, testCompanyID, domain.RoleAccountsPayable, "vendor-7")
		suite.NoError(err)
		suite.Equal("ap-vendor-7", id)
	})

	suite.Run("company default for payables", func() {
		suite.accountRepo.On("FindMappedAccountID", mock.Anything, testCompanyID, domain.RoleAccountsPayable, "vendor-8").
			Return("", apperrors.ErrNotFound).Once()
		suite.accountRepo.On("FindMappedAccountID", mock.Anything, testCompanyID, domain.RoleAccountsPayable, "").
			Return("ap-default", nil).Once()
		id, err := suite.service.ResolveAccount(suite.ctx, testCompanyID, domain.RoleAccountsPayable, "vendor-8")
		suite.NoError(err)
		suite.Equal("ap-default", id)
	})

	suite.Run("cash never falls back", func() {
		suite.accountRepo.On("FindMappedAccountID", mock.Anything, testCompanyID, domain.RoleCash, "bank-9").
			Return("", apperrors.ErrNotFound).Once()
		_, err := suite.service.ResolveAccount(suite.ctx, testCompanyID, domain.RoleCash, "bank-9")
		var resolution *apperrors.AccountResolutionError
		suite.Require().ErrorAs(err, &resolution)
		suite.Equal("CASH", resolution.Role)
		suite.Equal("bank-9", resolution.SubjectID)
	})

	suite.Run("storage errors propagate", func() {
		suite.accountRepo.On("FindMappedAccountID", mock.Anything, testCompanyID, domain.RoleFeeExpense, "bank-10").
			Return("", assert.AnError).Once()
		_, err := suite.service.ResolveAccount(suite.ctx, testCompanyID, domain.RoleFeeExpense, "bank-10")
		suite.ErrorIs(err, assert.AnError)
	})
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
