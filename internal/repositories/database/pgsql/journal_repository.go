package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/sitebooks_ledger/internal/apperrors"
	"github.com/SscSPs/sitebooks_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/sitebooks_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/sitebooks_ledger/internal/models"
	"github.com/SscSPs/sitebooks_ledger/internal/utils/mapping"
	"github.com/SscSPs/sitebooks_ledger/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal entries and their lines.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryWithTx {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepositoryWithTx
var _ portsrepo.JournalRepositoryWithTx = (*PgxJournalRepository)(nil)

const entryColumns = `entry_id, company_id, entry_date, reference, description, status, total_debit, total_credit,
	reversed_by_entry_id, reversal_date, reversal_of_entry_id, created_at, created_by, last_updated_at, last_updated_by`

const lineColumns = `line_id, entry_id, account_id, description, debit_amount, credit_amount, line_order,
	is_reconciled, reconciled_at, reconciled_by`

func scanEntry(row pgx.Row) (domain.JournalEntry, error) {
	var m models.JournalEntry
	err := row.Scan(
		&m.EntryID,
		&m.CompanyID,
		&m.EntryDate,
		&m.Reference,
		&m.Description,
		&m.Status,
		&m.TotalDebit,
		&m.TotalCredit,
		&m.ReversedByEntryID,
		&m.ReversalDate,
		&m.ReversalOfEntryID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return domain.JournalEntry{}, err
	}
	return mapping.ToDomainJournalEntry(m), nil
}

func scanLine(row pgx.Row) (domain.JournalEntryLine, error) {
	var m models.JournalEntryLine
	err := row.Scan(
		&m.LineID,
		&m.EntryID,
		&m.AccountID,
		&m.Description,
		&m.DebitAmount,
		&m.CreditAmount,
		&m.LineOrder,
		&m.IsReconciled,
		&m.ReconciledAt,
		&m.ReconciledBy,
	)
	if err != nil {
		return domain.JournalEntryLine{}, err
	}
	return mapping.ToDomainJournalEntryLine(m), nil
}

// SaveEntryInTx inserts the entry and queues all of its lines in a single batch.
func (r *PgxJournalRepository) SaveEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.JournalEntry, lines []domain.JournalEntryLine) error {
	m := mapping.ToModelJournalEntry(entry)
	entryQuery := `
		INSERT INTO journal_entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := tx.Exec(ctx, entryQuery,
		m.EntryID,
		m.CompanyID,
		m.EntryDate,
		m.Reference,
		m.Description,
		m.Status,
		m.TotalDebit,
		m.TotalCredit,
		m.ReversedByEntryID,
		m.ReversalDate,
		m.ReversalOfEntryID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err, "uq_journal_entries_reversal_of") {
			return fmt.Errorf("%w: entry %s already has a reversal", apperrors.ErrConflict, *m.ReversalOfEntryID)
		}
		return dbError("failed to insert journal entry "+m.EntryID, err)
	}

	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO journal_entry_lines (line_id, entry_id, account_id, description, debit_amount, credit_amount, line_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	for _, line := range lines {
		ml := mapping.ToModelJournalEntryLine(line)
		batch.Queue(lineQuery,
			ml.LineID,
			ml.EntryID,
			ml.AccountID,
			ml.Description,
			ml.DebitAmount,
			ml.CreditAmount,
			ml.LineOrder,
		)
	}

	// Close the batch results to surface the error of any queued insert
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return dbError("failed to insert lines for journal entry "+m.EntryID, err)
	}
	return nil
}

// FindEntryByID retrieves an entry of the company.
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, companyID, entryID string) (*domain.JournalEntry, error) {
	return findEntry(ctx, r.Pool, companyID, entryID, false)
}

// FindEntryForUpdate reads and row-locks an entry of the company.
func (r *PgxJournalRepository) FindEntryForUpdate(ctx context.Context, tx pgx.Tx, companyID, entryID string) (*domain.JournalEntry, error) {
	return findEntry(ctx, tx, companyID, entryID, true)
}

func findEntry(ctx context.Context, q querier, companyID, entryID string, forUpdate bool) (*domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE company_id = $1 AND entry_id = $2`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	entry, err := scanEntry(q.QueryRow(ctx, query, companyID, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("journal entry " + entryID + " not found")
		}
		return nil, dbError("failed to find journal entry "+entryID, err)
	}
	return &entry, nil
}

// FindLinesByEntryID retrieves the lines of an entry in line order.
func (r *PgxJournalRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalEntryLine, error) {
	return findLines(ctx, r.Pool, entryID)
}

// FindLinesInTx reads an entry's lines inside the transaction.
func (r *PgxJournalRepository) FindLinesInTx(ctx context.Context, tx pgx.Tx, entryID string) ([]domain.JournalEntryLine, error) {
	return findLines(ctx, tx, entryID)
}

func findLines(ctx context.Context, q querier, entryID string) ([]domain.JournalEntryLine, error) {
	query := `SELECT ` + lineColumns + ` FROM journal_entry_lines WHERE entry_id = $1 ORDER BY line_order, line_id;`
	rows, err := q.Query(ctx, query, entryID)
	if err != nil {
		return nil, dbError("failed to query lines of journal entry "+entryID, err)
	}
	defer rows.Close()

	lines := []domain.JournalEntryLine{}
	for rows.Next() {
		line, err := scanLine(rows)
		if err != nil {
			return nil, dbError("failed to scan journal line row", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError("error iterating journal line rows", err)
	}
	return lines, nil
}

// ListEntries retrieves a page of entries, newest first, using token-based pagination.
func (r *PgxJournalRepository) ListEntries(ctx context.Context, companyID string, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	args := []any{companyID}
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE company_id = $1`

	if nextToken != nil && *nextToken != "" {
		cursor, err := pagination.DecodeCursor(*nextToken)
		if err != nil {
			return nil, nil, err
		}
		query += ` AND (entry_date, created_at, entry_id) < ($2, $3, $4)`
		args = append(args, cursor.Date, cursor.CreatedAt, cursor.ID)
	}

	// Fetch one extra row to know whether another page exists
	query += fmt.Sprintf(` ORDER BY entry_date DESC, created_at DESC, entry_id DESC LIMIT $%d;`, len(args)+1)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, dbError("failed to list journal entries", err)
	}
	defer rows.Close()

	entries := []domain.JournalEntry{}
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, nil, dbError("failed to scan journal entry row", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, dbError("error iterating journal entry rows", err)
	}

	var token *string
	if len(entries) > limit {
		entries = entries[:limit]
		last := entries[len(entries)-1]
		t := pagination.EncodeCursor(pagination.Cursor{Date: last.EntryDate, CreatedAt: last.CreatedAt, ID: last.EntryID})
		token = &t
	}
	return entries, token, nil
}

// MarkReversedInTx links the reversal to the original only if no reversal was recorded yet.
func (r *PgxJournalRepository) MarkReversedInTx(ctx context.Context, tx pgx.Tx, entryID, reversalID string, reversalDate time.Time, userID string, now time.Time) error {
	query := `
		UPDATE journal_entries
		SET reversed_by_entry_id = $1, reversal_date = $2, last_updated_at = $3, last_updated_by = $4
		WHERE entry_id = $5 AND reversed_by_entry_id IS NULL;
	`
	tag, err := tx.Exec(ctx, query, reversalID, reversalDate, now, userID, entryID)
	if err != nil {
		return dbError("failed to mark journal entry "+entryID+" as reversed", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: journal entry %s was already reversed", apperrors.ErrConflict, entryID)
	}
	return nil
}

// MarkPostedInTx moves a DRAFT entry to POSTED.
func (r *PgxJournalRepository) MarkPostedInTx(ctx context.Context, tx pgx.Tx, entryID string, userID string, now time.Time) error {
	query := `
		UPDATE journal_entries
		SET status = 'POSTED', last_updated_at = $1, last_updated_by = $2
		WHERE entry_id = $3 AND status = 'DRAFT';
	`
	tag, err := tx.Exec(ctx, query, now, userID, entryID)
	if err != nil {
		return dbError("failed to post journal entry "+entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: journal entry %s is not a draft", apperrors.ErrConflict, entryID)
	}
	return nil
}

// LoadDeletionStateInTx locks the entry and any payment linking to it, then counts its lines.
func (r *PgxJournalRepository) LoadDeletionStateInTx(ctx context.Context, tx pgx.Tx, companyID, entryID string) (*domain.DeletionState, error) {
	entry, err := r.FindEntryForUpdate(ctx, tx, companyID, entryID)
	if err != nil {
		return nil, err
	}
	state := &domain.DeletionState{Entry: *entry}

	var paymentID string
	err = tx.QueryRow(ctx, `SELECT payment_id FROM payments WHERE journal_entry_id = $1 FOR UPDATE;`, entryID).Scan(&paymentID)
	switch {
	case err == nil:
		state.LinkedPaymentID = &paymentID
	case errors.Is(err, pgx.ErrNoRows):
	default:
		return nil, dbError("failed to lock payment linked to journal entry "+entryID, err)
	}

	countQuery := `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE is_reconciled)
		FROM journal_entry_lines
		WHERE entry_id = $1;
	`
	if err := tx.QueryRow(ctx, countQuery, entryID).Scan(&state.LineCount, &state.ReconciledLineCount); err != nil {
		return nil, dbError("failed to count lines of journal entry "+entryID, err)
	}
	return state, nil
}

// DeleteEntryInTx deletes the entry's lines, then the entry.
func (r *PgxJournalRepository) DeleteEntryInTx(ctx context.Context, tx pgx.Tx, entryID string) error {
	if _, err := tx.Exec(ctx, `DELETE FROM journal_entry_lines WHERE entry_id = $1;`, entryID); err != nil {
		return dbError("failed to delete lines of journal entry "+entryID, err)
	}
	tag, err := tx.Exec(ctx, `DELETE FROM journal_entries WHERE entry_id = $1;`, entryID)
	if err != nil {
		return dbError("failed to delete journal entry "+entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("journal entry " + entryID + " not found")
	}
	return nil
}
