package services

import (
	"context"

	"github.com/SscSPs/sitebooks_ledger/internal/core/domain"
	"github.com/SscSPs/sitebooks_ledger/internal/dto"
)

// BankAccountSvc defines operations for managing bank accounts
type BankAccountSvc interface {
	CreateBankAccount(ctx context.Context, companyID string, req dto.CreateBankAccountRequest, userID string) (*domain.BankAccount, error)
	GetBankAccount(ctx context.Context, companyID string, bankAccountID string) (*domain.BankAccount, error)
	ListBankAccounts(ctx context.Context, companyID string) ([]domain.BankAccount, error)
}

// ReconciliationReaderSvc defines read operations for reconciliation sessions
type ReconciliationReaderSvc interface {
	ListReconciliations(ctx context.Context, companyID string, bankAccountID string) ([]domain.BankReconciliation, error)

	// GetReconciliationReport partitions the session's candidates. For a closed
	// session the cleared side is its stored items; for an open one nothing is cleared yet.
	GetReconciliationReport(ctx context.Context, companyID string, reconciliationID string) (*domain.ReconciliationReport, error)

	// PreviewReconciliation computes the report for a proposed selection without storing it.
	PreviewReconciliation(ctx context.Context, companyID string, reconciliationID string, cleared []domain.CandidateRef) (*domain.ReconciliationReport, error)

	// ExportReconciliationReport renders the report as an XLSX workbook.
	ExportReconciliationReport(ctx context.Context, companyID string, reconciliationID string) ([]byte, error)
}

// ReconciliationWriterSvc defines write operations for reconciliation sessions
type ReconciliationWriterSvc interface {
	CreateReconciliation(ctx context.Context, companyID string, req dto.CreateReconciliationRequest, userID string) (*domain.BankReconciliation, error)

	// CloseReconciliation stores the selection and closes the session. The
	// selection must bring the difference to zero.
	CloseReconciliation(ctx context.Context, companyID string, reconciliationID string, cleared []domain.CandidateRef, userID string) (*domain.ReconciliationReport, error)
}

// ReconciliationSvcFacade combines all reconciliation-related service interfaces
type ReconciliationSvcFacade interface {
	BankAccountSvc
	ReconciliationReaderSvc
	ReconciliationWriterSvc
}
