package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/sitebooks_ledger/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// BankAccountStore defines persistence for bank accounts
type BankAccountStore interface {
	SaveBankAccount(ctx context.Context, account domain.BankAccount) error
	FindBankAccountByID(ctx context.Context, companyID, bankAccountID string) (*domain.BankAccount, error)
	ListBankAccounts(ctx context.Context, companyID string) ([]domain.BankAccount, error)
}

// ReconciliationReader defines read operations for reconciliation sessions
type ReconciliationReader interface {
	FindReconciliationByID(ctx context.Context, companyID, reconciliationID string) (*domain.BankReconciliation, error)
	ListReconciliations(ctx context.Context, companyID, bankAccountID string) ([]domain.BankReconciliation, error)

	// FindLatestReconciled returns the most recent closed session of the bank account, or ErrNotFound.
	FindLatestReconciled(ctx context.Context, bankAccountID string) (*domain.BankReconciliation, error)

	// HasOpenReconciliation reports whether the bank account has an OPEN session.
	HasOpenReconciliation(ctx context.Context, bankAccountID string) (bool, error)

	// ListCandidates lists payments and cash lines of the bank account dated in [from, to]
	// that no session other than excludeReconciliationID has cleared.
	ListCandidates(ctx context.Context, companyID, bankAccountID string, from, to time.Time, excludeReconciliationID string) ([]domain.ReconciliationCandidate, error)

	// ListItems lists the items cleared by a session.
	ListItems(ctx context.Context, reconciliationID string) ([]domain.BankReconciliationItem, error)
}

// ReconciliationWriter defines write operations for reconciliation sessions
type ReconciliationWriter interface {
	SaveReconciliation(ctx context.Context, recon domain.BankReconciliation) error

	// CloseInTx moves an OPEN session to RECONCILED; ErrConflict if it is not open anymore.
	CloseInTx(ctx context.Context, tx pgx.Tx, reconciliationID, userID string, now time.Time) error

	// InsertItemsInTx stores cleared items; a source cleared before yields ErrConflict.
	InsertItemsInTx(ctx context.Context, tx pgx.Tx, items []domain.BankReconciliationItem) error

	// MarkLinesReconciledInTx flags the journal lines behind the items as reconciled.
	MarkLinesReconciledInTx(ctx context.Context, tx pgx.Tx, items []domain.BankReconciliationItem, userID string, now time.Time) error
}

// ReconciliationRepositoryFacade combines all reconciliation-related repository interfaces
type ReconciliationRepositoryFacade interface {
	BankAccountStore
	ReconciliationReader
	ReconciliationWriter
}

// ReconciliationRepositoryWithTx extends ReconciliationRepositoryFacade with transaction capabilities
type ReconciliationRepositoryWithTx interface {
	ReconciliationRepositoryFacade
	TransactionManager
}
