package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/sitebooks_ledger/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// JournalReader defines read operations for journal entries
type JournalReader interface {
	// FindEntryByID retrieves an entry of the company.
	FindEntryByID(ctx context.Context, companyID, entryID string) (*domain.JournalEntry, error)

	// FindLinesByEntryID retrieves the lines of an entry in line order.
	FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalEntryLine, error)

	// ListEntries retrieves a page of entries ordered newest first, using token-based pagination.
	ListEntries(ctx context.Context, companyID string, limit int, nextToken *string) ([]domain.JournalEntry, *string, error)
}

// JournalWriter defines write operations for journal entries. Every method runs inside the caller's transaction.
type JournalWriter interface {
	// SaveEntryInTx inserts an entry and all of its lines.
	SaveEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.JournalEntry, lines []domain.JournalEntryLine) error

	// FindEntryForUpdate reads and row-locks an entry of the company.
	FindEntryForUpdate(ctx context.Context, tx pgx.Tx, companyID, entryID string) (*domain.JournalEntry, error)

	// FindLinesInTx reads an entry's lines inside the transaction.
	FindLinesInTx(ctx context.Context, tx pgx.Tx, entryID string) ([]domain.JournalEntryLine, error)

	// MarkReversedInTx sets reversed_by/reversal_date only if the entry has no reversal yet; ErrConflict otherwise.
	MarkReversedInTx(ctx context.Context, tx pgx.Tx, entryID, reversalID string, reversalDate time.Time, userID string, now time.Time) error

	// MarkPostedInTx moves a DRAFT entry to POSTED; ErrConflict if it is no longer a draft.
	MarkPostedInTx(ctx context.Context, tx pgx.Tx, entryID string, userID string, now time.Time) error

	// LoadDeletionStateInTx locks the entry and any linking payment and counts its lines.
	LoadDeletionStateInTx(ctx context.Context, tx pgx.Tx, companyID, entryID string) (*domain.DeletionState, error)

	// DeleteEntryInTx deletes the entry's lines, then the entry.
	DeleteEntryInTx(ctx context.Context, tx pgx.Tx, entryID string) error
}

// JournalRepositoryFacade combines all journal-related repository interfaces
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}

// JournalRepositoryWithTx extends JournalRepositoryFacade with transaction capabilities
type JournalRepositoryWithTx interface {
	JournalRepositoryFacade
	TransactionManager
}
