package repositories

import (
	"context"

	"github.com/SscSPs/sitebooks_ledger/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// CreditCardReader defines read operations for cards and their transactions
type CreditCardReader interface {
	FindCreditCardByID(ctx context.Context, companyID, cardID string) (*domain.CreditCard, error)
	ListCreditCards(ctx context.Context, companyID string) ([]domain.CreditCard, error)

	// ListDedupKeys returns every dedup key already stored for the card.
	ListDedupKeys(ctx context.Context, cardID string) ([]string, error)

	// ListTransactions retrieves a page of the card's transactions, newest first, using token-based pagination.
	ListTransactions(ctx context.Context, cardID string, limit int, nextToken *string) ([]domain.CreditCardTransaction, *string, error)
}

// CreditCardWriter defines write operations for cards and imports
type CreditCardWriter interface {
	SaveCreditCard(ctx context.Context, card domain.CreditCard) error

	// InsertTransactionsInTx inserts rows, silently skipping any whose
	// (card, dedup key) already exists, and returns how many were inserted.
	InsertTransactionsInTx(ctx context.Context, tx pgx.Tx, txns []domain.CreditCardTransaction) (int, error)

	// RecordImportInTx stores the import batch and bumps the card's import counters.
	RecordImportInTx(ctx context.Context, tx pgx.Tx, batch domain.ImportBatch) error
}

// CreditCardRepositoryFacade combines all card-related repository interfaces
type CreditCardRepositoryFacade interface {
	CreditCardReader
	CreditCardWriter
}

// CreditCardRepositoryWithTx extends CreditCardRepositoryFacade with transaction capabilities
type CreditCardRepositoryWithTx interface {
	CreditCardRepositoryFacade
	TransactionManager
}
