package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/sitebooks_ledger/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

// fakeTx stands in for a live transaction; the mocks never call into it.
type fakeTx struct {
	pgx.Tx
}

// --- Company ---

type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) ListCompanies(ctx context.Context, limit int, offset int) ([]domain.Company, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

// --- Accounts ---

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, companyID, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, companyID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, companyID string, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, companyID, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, companyID string, limit int, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, companyID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccountMetadata(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpsertAccountMapping(ctx context.Context, mapping domain.AccountMapping) error {
	args := m.Called(ctx, mapping)
	return args.Error(0)
}

func (m *MockAccountRepository) ListAccountMappings(ctx context.Context, companyID string) ([]domain.AccountMapping, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountMapping), args.Error(1)
}

func (m *MockAccountRepository) FindMappedAccountID(ctx context.Context, companyID string, role domain.AccountRole, subjectID string) (string, error) {
	args := m.Called(ctx, companyID, role, subjectID)
	return args.String(0), args.Error(1)
}

// --- Journal ---

type MockJournalRepository struct {
	mock.Mock
}

func (m *MockJournalRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockJournalRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockJournalRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockJournalRepository) FindEntryByID(ctx context.Context, companyID, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, companyID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalEntryLine, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntryLine), args.Error(1)
}

func (m *MockJournalRepository) ListEntries(ctx context.Context, companyID string, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	args := m.Called(ctx, companyID, limit, nextToken)
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	if args.Get(0) == nil {
		return nil, token, args.Error(2)
	}
	return args.Get(0).([]domain.JournalEntry), token, args.Error(2)
}

func (m *MockJournalRepository) SaveEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.JournalEntry, lines []domain.JournalEntryLine) error {
	return m.Called(ctx, tx, entry, lines).Error(0)
}

func (m *MockJournalRepository) FindEntryForUpdate(ctx context.Context, tx pgx.Tx, companyID, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, tx, companyID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) FindLinesInTx(ctx context.Context, tx pgx.Tx, entryID string) ([]domain.JournalEntryLine, error) {
	args := m.Called(ctx, tx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntryLine), args.Error(1)
}

func (m *MockJournalRepository) MarkReversedInTx(ctx context.Context, tx pgx.Tx, entryID, reversalID string, reversalDate time.Time, userID string, now time.Time) error {
	return m.Called(ctx, tx, entryID, reversalID, reversalDate, userID, now).Error(0)
}

func (m *MockJournalRepository) MarkPostedInTx(ctx context.Context, tx pgx.Tx, entryID string, userID string, now time.Time) error {
	return m.Called(ctx, tx, entryID, userID, now).Error(0)
}

func (m *MockJournalRepository) LoadDeletionStateInTx(ctx context.Context, tx pgx.Tx, companyID, entryID string) (*domain.DeletionState, error) {
	args := m.Called(ctx, tx, companyID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeletionState), args.Error(1)
}

func (m *MockJournalRepository) DeleteEntryInTx(ctx context.Context, tx pgx.Tx, entryID string) error {
	return m.Called(ctx, tx, entryID).Error(0)
}

// --- Payments ---

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockPaymentRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockPaymentRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockPaymentRepository) FindPaymentByID(ctx context.Context, companyID, paymentID string) (*domain.Payment, error) {
	args := m.Called(ctx, companyID, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListPayments(ctx context.Context, companyID string, limit int, offset int) ([]domain.Payment, error) {
	args := m.Called(ctx, companyID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListUnpostedPayments(ctx context.Context, companyID string, limit int) ([]domain.Payment, error) {
	args := m.Called(ctx, companyID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	return m.Called(ctx, payment).Error(0)
}

func (m *MockPaymentRepository) ClaimJournalEntryInTx(ctx context.Context, tx pgx.Tx, paymentID, entryID string) (bool, error) {
	args := m.Called(ctx, tx, paymentID, entryID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPaymentRepository) ClearJournalEntryInTx(ctx context.Context, tx pgx.Tx, paymentID, entryID string) error {
	return m.Called(ctx, tx, paymentID, entryID).Error(0)
}

// --- Credit cards ---

type MockCreditCardRepository struct {
	mock.Mock
}

func (m *MockCreditCardRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockCreditCardRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockCreditCardRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockCreditCardRepository) FindCreditCardByID(ctx context.Context, companyID, cardID string) (*domain.CreditCard, error) {
	args := m.Called(ctx, companyID, cardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CreditCard), args.Error(1)
}

func (m *MockCreditCardRepository) ListCreditCards(ctx context.Context, companyID string) ([]domain.CreditCard, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CreditCard), args.Error(1)
}

func (m *MockCreditCardRepository) ListDedupKeys(ctx context.Context, cardID string) ([]string, error) {
	args := m.Called(ctx, cardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCreditCardRepository) ListTransactions(ctx context.Context, cardID string, limit int, nextToken *string) ([]domain.CreditCardTransaction, *string, error) {
	args := m.Called(ctx, cardID, limit, nextToken)
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	if args.Get(0) == nil {
		return nil, token, args.Error(2)
	}
	return args.Get(0).([]domain.CreditCardTransaction), token, args.Error(2)
}

func (m *MockCreditCardRepository) SaveCreditCard(ctx context.Context, card domain.CreditCard) error {
	return m.Called(ctx, card).Error(0)
}

func (m *MockCreditCardRepository) InsertTransactionsInTx(ctx context.Context, tx pgx.Tx, txns []domain.CreditCardTransaction) (int, error) {
	args := m.Called(ctx, tx, txns)
	return args.Int(0), args.Error(1)
}

func (m *MockCreditCardRepository) RecordImportInTx(ctx context.Context, tx pgx.Tx, batch domain.ImportBatch) error {
	return m.Called(ctx, tx, batch).Error(0)
}

// --- Bank accounts and reconciliations ---

type MockReconciliationRepository struct {
	mock.Mock
}

func (m *MockReconciliationRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockReconciliationRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockReconciliationRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockReconciliationRepository) SaveBankAccount(ctx context.Context, account domain.BankAccount) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockReconciliationRepository) FindBankAccountByID(ctx context.Context, companyID, bankAccountID string) (*domain.BankAccount, error) {
	args := m.Called(ctx, companyID, bankAccountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankAccount), args.Error(1)
}

func (m *MockReconciliationRepository) ListBankAccounts(ctx context.Context, companyID string) ([]domain.BankAccount, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BankAccount), args.Error(1)
}

func (m *MockReconciliationRepository) FindReconciliationByID(ctx context.Context, companyID, reconciliationID string) (*domain.BankReconciliation, error) {
	args := m.Called(ctx, companyID, reconciliationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankReconciliation), args.Error(1)
}

func (m *MockReconciliationRepository) ListReconciliations(ctx context.Context, companyID, bankAccountID string) ([]domain.BankReconciliation, error) {
	args := m.Called(ctx, companyID, bankAccountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BankReconciliation), args.Error(1)
}

func (m *MockReconciliationRepository) FindLatestReconciled(ctx context.Context, bankAccountID string) (*domain.BankReconciliation, error) {
	args := m.Called(ctx, bankAccountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankReconciliation), args.Error(1)
}

func (m *MockReconciliationRepository) HasOpenReconciliation(ctx context.Context, bankAccountID string) (bool, error) {
	args := m.Called(ctx, bankAccountID)
	return args.Bool(0), args.Error(1)
}

func (m *MockReconciliationRepository) ListCandidates(ctx context.Context, companyID, bankAccountID string, from, to time.Time, excludeReconciliationID string) ([]domain.ReconciliationCandidate, error) {
	args := m.Called(ctx, companyID, bankAccountID, from, to, excludeReconciliationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReconciliationCandidate), args.Error(1)
}

func (m *MockReconciliationRepository) ListItems(ctx context.Context, reconciliationID string) ([]domain.BankReconciliationItem, error) {
	args := m.Called(ctx, reconciliationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BankReconciliationItem), args.Error(1)
}

func (m *MockReconciliationRepository) SaveReconciliation(ctx context.Context, recon domain.BankReconciliation) error {
	return m.Called(ctx, recon).Error(0)
}

func (m *MockReconciliationRepository) CloseInTx(ctx context.Context, tx pgx.Tx, reconciliationID, userID string, now time.Time) error {
	return m.Called(ctx, tx, reconciliationID, userID, now).Error(0)
}

func (m *MockReconciliationRepository) InsertItemsInTx(ctx context.Context, tx pgx.Tx, items []domain.BankReconciliationItem) error {
	return m.Called(ctx, tx, items).Error(0)
}

func (m *MockReconciliationRepository) MarkLinesReconciledInTx(ctx context.Context, tx pgx.Tx, items []domain.BankReconciliationItem, userID string, now time.Time) error {
	return m.Called(ctx, tx, items, userID, now).Error(0)
}
