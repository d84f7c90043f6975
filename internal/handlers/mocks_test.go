package handlers_test

import (
	"context"

	"github.com/SscSPs/sitebooks_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/sitebooks_ledger/internal/core/ports/services"
	"github.com/SscSPs/sitebooks_ledger/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock JournalService ---
type MockJournalService struct {
	mock.Mock
}

func (m *MockJournalService) GetJournalEntry(ctx context.Context, companyID string, entryID string) (*domain.JournalEntry, []domain.JournalEntryLine, error) {
	args := m.Called(ctx, companyID, entryID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	lines, _ := args.Get(1).([]domain.JournalEntryLine)
	return args.Get(0).(*domain.JournalEntry), lines, args.Error(2)
}

func (m *MockJournalService) ListJournalEntries(ctx context.Context, companyID string, params dto.ListJournalEntriesParams) (*dto.ListJournalEntriesResponse, error) {
	args := m.Called(ctx, companyID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListJournalEntriesResponse), args.Error(1)
}

func (m *MockJournalService) CreateJournalEntry(ctx context.Context, companyID string, req dto.CreateJournalEntryRequest, userID string) (*domain.JournalEntry, []domain.JournalEntryLine, error) {
	args := m.Called(ctx, companyID, req, userID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	lines, _ := args.Get(1).([]domain.JournalEntryLine)
	return args.Get(0).(*domain.JournalEntry), lines, args.Error(2)
}

func (m *MockJournalService) PostJournalEntry(ctx context.Context, companyID string, entryID string, userID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, companyID, entryID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) DeleteJournalEntry(ctx context.Context, companyID string, entryID string, userID string) error {
	args := m.Called(ctx, companyID, entryID, userID)
	return args.Error(0)
}

func (m *MockJournalService) ReverseJournalEntry(ctx context.Context, companyID string, entryID string, userID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, companyID, entryID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

var _ portssvc.JournalSvcFacade = (*MockJournalService)(nil)

// --- Mock PaymentService ---
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) GetPayment(ctx context.Context, companyID string, paymentID string, userID string) (*domain.PostingResult, error) {
	args := m.Called(ctx, companyID, paymentID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PostingResult), args.Error(1)
}

func (m *MockPaymentService) ListPayments(ctx context.Context, companyID string, limit int, offset int) ([]domain.Payment, error) {
	args := m.Called(ctx, companyID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentService) CreatePayment(ctx context.Context, companyID string, req dto.CreatePaymentRequest, userID string) (*domain.PostingResult, error) {
	args := m.Called(ctx, companyID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PostingResult), args.Error(1)
}

func (m *MockPaymentService) PostPayment(ctx context.Context, companyID string, paymentID string, userID string) (*domain.PostingResult, error) {
	args := m.Called(ctx, companyID, paymentID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PostingResult), args.Error(1)
}

func (m *MockPaymentService) BackfillPayments(ctx context.Context, companyID string, limit int, userID string) (*domain.BackfillResult, error) {
	args := m.Called(ctx, companyID, limit, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BackfillResult), args.Error(1)
}

var _ portssvc.PaymentSvcFacade = (*MockPaymentService)(nil)

// --- Mock ImportService ---
type MockImportService struct {
	mock.Mock
}

func (m *MockImportService) CreateCreditCard(ctx context.Context, companyID string, req dto.CreateCreditCardRequest, userID string) (*domain.CreditCard, error) {
	args := m.Called(ctx, companyID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CreditCard), args.Error(1)
}

func (m *MockImportService) GetCreditCard(ctx context.Context, companyID string, cardID string) (*domain.CreditCard, error) {
	args := m.Called(ctx, companyID, cardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CreditCard), args.Error(1)
}

func (m *MockImportService) ListCreditCards(ctx context.Context, companyID string) ([]domain.CreditCard, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CreditCard), args.Error(1)
}

func (m *MockImportService) ImportStatement(ctx context.Context, companyID string, cardID string, fileName string, data []byte, userID string) (*domain.ImportResult, error) {
	args := m.Called(ctx, companyID, cardID, fileName, data, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ImportResult), args.Error(1)
}

func (m *MockImportService) ListCardTransactions(ctx context.Context, companyID string, cardID string, params dto.ListCardTransactionsParams) (*dto.ListCardTransactionsResponse, error) {
	args := m.Called(ctx, companyID, cardID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListCardTransactionsResponse), args.Error(1)
}

var _ portssvc.ImportSvcFacade = (*MockImportService)(nil)

// --- Mock ReconciliationService ---
type MockReconciliationService struct {
	mock.Mock
}

func (m *MockReconciliationService) CreateBankAccount(ctx context.Context, companyID string, req dto.CreateBankAccountRequest, userID string) (*domain.BankAccount, error) {
	args := m.Called(ctx, companyID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankAccount), args.Error(1)
}

func (m *MockReconciliationService) GetBankAccount(ctx context.Context, companyID string, bankAccountID string) (*domain.BankAccount, error) {
	args := m.Called(ctx, companyID, bankAccountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankAccount), args.Error(1)
}

func (m *MockReconciliationService) ListBankAccounts(ctx context.Context, companyID string) ([]domain.BankAccount, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BankAccount), args.Error(1)
}

func (m *MockReconciliationService) ListReconciliations(ctx context.Context, companyID string, bankAccountID string) ([]domain.BankReconciliation, error) {
	args := m.Called(ctx, companyID, bankAccountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BankReconciliation), args.Error(1)
}

func (m *MockReconciliationService) GetReconciliationReport(ctx context.Context, companyID string, reconciliationID string) (*domain.ReconciliationReport, error) {
	args := m.Called(ctx, companyID, reconciliationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReconciliationReport), args.Error(1)
}

func (m *MockReconciliationService) PreviewReconciliation(ctx context.Context, companyID string, reconciliationID string, cleared []domain.CandidateRef) (*domain.ReconciliationReport, error) {
	args := m.Called(ctx, companyID, reconciliationID, cleared)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReconciliationReport), args.Error(1)
}

func (m *MockReconciliationService) ExportReconciliationReport(ctx context.Context, companyID string, reconciliationID string) ([]byte, error) {
	args := m.Called(ctx, companyID, reconciliationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockReconciliationService) CreateReconciliation(ctx context.Context, companyID string, req dto.CreateReconciliationRequest, userID string) (*domain.BankReconciliation, error) {
	args := m.Called(ctx, companyID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankReconciliation), args.Error(1)
}

func (m *MockReconciliationService) CloseReconciliation(ctx context.Context, companyID string, reconciliationID string, cleared []domain.CandidateRef, userID string) (*domain.ReconciliationReport, error) {
	args := m.Called(ctx, companyID, reconciliationID, cleared, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReconciliationReport), args.Error(1)
}

var _ portssvc.ReconciliationSvcFacade = (*MockReconciliationService)(nil)
