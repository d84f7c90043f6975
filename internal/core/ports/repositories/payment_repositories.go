package repositories

import (
	"context"

	"github.com/SscSPs/sitebooks_ledger/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// PaymentReader defines read operations for payments
type PaymentReader interface {
	FindPaymentByID(ctx context.Context, companyID, paymentID string) (*domain.Payment, error)
	ListPayments(ctx context.Context, companyID string, limit int, offset int) ([]domain.Payment, error)

	// ListUnpostedPayments lists payments without a journal entry, oldest first.
	ListUnpostedPayments(ctx context.Context, companyID string, limit int) ([]domain.Payment, error)
}

// PaymentWriter defines write operations for payments
type PaymentWriter interface {
	SavePayment(ctx context.Context, payment domain.Payment) error

	// ClaimJournalEntryInTx links the entry only if the payment has no entry yet.
	// It reports false when another posting won the race.
	ClaimJournalEntryInTx(ctx context.Context, tx pgx.Tx, paymentID, entryID string) (bool, error)

	// ClearJournalEntryInTx removes the payment's link to the given entry.
	ClearJournalEntryInTx(ctx context.Context, tx pgx.Tx, paymentID, entryID string) error
}

// PaymentRepositoryFacade combines all payment-related repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}

// PaymentRepositoryWithTx extends PaymentRepositoryFacade with transaction capabilities
type PaymentRepositoryWithTx interface {
	PaymentRepositoryFacade
	TransactionManager
}
