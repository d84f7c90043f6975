package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/sitebooks_ledger/internal/apperrors"
	"github.com/SscSPs/sitebooks_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/sitebooks_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/sitebooks_ledger/internal/models"
	"github.com/SscSPs/sitebooks_ledger/internal/utils/mapping"
	"github.com/SscSPs/sitebooks_ledger/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCreditCardRepository struct {
	BaseRepository
}

func newPgxCreditCardRepository(pool *pgxpool.Pool) portsrepo.CreditCardRepositoryWithTx {
	return &PgxCreditCardRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CreditCardRepositoryWithTx = (*PgxCreditCardRepository)(nil)

const creditCardColumns = `card_id, company_id, name, last_four, import_count, imported_transaction_count,
	last_import_at, last_import_by, created_at, created_by, last_updated_at, last_updated_by`

const cardTxnColumns = `transaction_id, card_id, company_id, transaction_date, post_date, description, merchant, category,
	reference, memo, amount, transaction_type, coding_status, imported_from_csv, dedup_key, import_batch_id,
	created_at, created_by, last_updated_at, last_updated_by`

func scanCreditCard(row pgx.Row) (domain.CreditCard, error) {
	var m models.CreditCard
	err := row.Scan(
		&m.CardID,
		&m.CompanyID,
		&m.Name,
		&m.LastFour,
		&m.ImportCount,
		&m.ImportedTransactionCount,
		&m.LastImportAt,
		&m.LastImportBy,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return domain.CreditCard{}, err
	}
	return mapping.ToDomainCreditCard(m), nil
}

func scanCardTransaction(row pgx.Row) (domain.CreditCardTransaction, error) {
	var m models.CreditCardTransaction
	err := row.Scan(
		&m.TransactionID,
		&m.CardID,
		&m.CompanyID,
		&m.TransactionDate,
		&m.PostDate,
		&m.Description,
		&m.Merchant,
		&m.Category,
		&m.Reference,
		&m.Memo,
		&m.Amount,
		&m.TransactionType,
		&m.CodingStatus,
		&m.ImportedFromCSV,
		&m.DedupKey,
		&m.ImportBatchID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return domain.CreditCardTransaction{}, err
	}
	return mapping.ToDomainCreditCardTransaction(m), nil
}

func (r *PgxCreditCardRepository) SaveCreditCard(ctx context.Context, card domain.CreditCard) error {
	m := mapping.ToModelCreditCard(card)
	query := `
		INSERT INTO credit_cards (` + creditCardColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CardID,
		m.CompanyID,
		m.Name,
		m.LastFour,
		m.ImportCount,
		m.ImportedTransactionCount,
		m.LastImportAt,
		m.LastImportBy,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err, "") {
			return fmt.Errorf("%w: credit card %s already exists", apperrors.ErrDuplicate, m.CardID)
		}
		return dbError("failed to save credit card "+m.CardID, err)
	}
	return nil
}

func (r *PgxCreditCardRepository) FindCreditCardByID(ctx context.Context, companyID, cardID string) (*domain.CreditCard, error) {
	query := `SELECT ` + creditCardColumns + ` FROM credit_cards WHERE company_id = $1 AND card_id = $2;`
	card, err := scanCreditCard(r.Pool.QueryRow(ctx, query, companyID, cardID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("credit card " + cardID + " not found")
		}
		return nil, dbError("failed to find credit card "+cardID, err)
	}
	return &card, nil
}

func (r *PgxCreditCardRepository) ListCreditCards(ctx context.Context, companyID string) ([]domain.CreditCard, error) {
	query := `SELECT ` + creditCardColumns + ` FROM credit_cards WHERE company_id = $1 ORDER BY name, card_id;`
	rows, err := r.Pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, dbError("failed to list credit cards", err)
	}
	defer rows.Close()

	cards := []domain.CreditCard{}
	for rows.Next() {
		card, err := scanCreditCard(rows)
		if err != nil {
			return nil, dbError("failed to scan credit card row", err)
		}
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError("error iterating credit card rows", err)
	}
	return cards, nil
}

// ListDedupKeys returns every dedup key already stored for the card.
func (r *PgxCreditCardRepository) ListDedupKeys(ctx context.Context, cardID string) ([]string, error) {
	rows, err := r.Pool.Query(ctx, `SELECT dedup_key FROM credit_card_transactions WHERE card_id = $1;`, cardID)
	if err != nil {
		return nil, dbError("failed to query dedup keys", err)
	}
	keys, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, dbError("failed to collect dedup keys", err)
	}
	return keys, nil
}

// InsertTransactionsInTx inserts the rows with ON CONFLICT DO NOTHING on (card_id, dedup_key)
// and returns how many rows were actually written. A row lost to a concurrent import is
// not an error; the caller counts it as a duplicate.
func (r *PgxCreditCardRepository) InsertTransactionsInTx(ctx context.Context, tx pgx.Tx, txns []domain.CreditCardTransaction) (int, error) {
	if len(txns) == 0 {
		return 0, nil
	}

	query := `
		INSERT INTO credit_card_transactions (` + cardTxnColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		ON CONFLICT ON CONSTRAINT uq_credit_card_transactions_dedup DO NOTHING;
	`
	batch := &pgx.Batch{}
	for _, t := range txns {
		m := mapping.ToModelCreditCardTransaction(t)
		batch.Queue(query,
			m.TransactionID,
			m.CardID,
			m.CompanyID,
			m.TransactionDate,
			m.PostDate,
			m.Description,
			m.Merchant,
			m.Category,
			m.Reference,
			m.Memo,
			m.Amount,
			m.TransactionType,
			m.CodingStatus,
			m.ImportedFromCSV,
			m.DedupKey,
			m.ImportBatchID,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
	}

	br := tx.SendBatch(ctx, batch)
	inserted := 0
	for range txns {
		tag, err := br.Exec()
		if err != nil {
			_ = br.Close()
			return 0, dbError("failed to insert credit card transaction", err)
		}
		inserted += int(tag.RowsAffected())
	}
	if err := br.Close(); err != nil {
		return 0, dbError("failed to finish credit card transaction batch", err)
	}
	return inserted, nil
}

// RecordImportInTx stores the batch audit row and bumps the card's import counters.
func (r *PgxCreditCardRepository) RecordImportInTx(ctx context.Context, tx pgx.Tx, batch domain.ImportBatch) error {
	m := mapping.ToModelImportBatch(batch)
	insert := `
		INSERT INTO import_batches (batch_id, card_id, company_id, file_name, file_digest, format, total_rows,
			imported_count, duplicate_count, skipped_count, excluded_count, imported_at, imported_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := tx.Exec(ctx, insert,
		m.BatchID,
		m.CardID,
		m.CompanyID,
		m.FileName,
		m.FileDigest,
		m.Format,
		m.TotalRows,
		m.ImportedCount,
		m.DuplicateCount,
		m.SkippedCount,
		m.ExcludedCount,
		m.ImportedAt,
		m.ImportedBy,
	)
	if err != nil {
		return dbError("failed to insert import batch "+m.BatchID, err)
	}

	update := `
		UPDATE credit_cards
		SET import_count = import_count + 1,
		    imported_transaction_count = imported_transaction_count + $1,
		    last_import_at = $2, last_import_by = $3,
		    last_updated_at = $2, last_updated_by = $3
		WHERE card_id = $4;
	`
	tag, err := tx.Exec(ctx, update, m.ImportedCount, m.ImportedAt, m.ImportedBy, m.CardID)
	if err != nil {
		return dbError("failed to update import counters of card "+m.CardID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("credit card " + m.CardID + " not found")
	}
	return nil
}

// ListTransactions retrieves a page of the card's transactions, newest first.
func (r *PgxCreditCardRepository) ListTransactions(ctx context.Context, cardID string, limit int, nextToken *string) ([]domain.CreditCardTransaction, *string, error) {
	args := []any{cardID}
	query := `SELECT ` + cardTxnColumns + ` FROM credit_card_transactions WHERE card_id = $1`

	if nextToken != nil && *nextToken != "" {
		cursor, err := pagination.DecodeCursor(*nextToken)
		if err != nil {
			return nil, nil, err
		}
		query += ` AND (transaction_date, created_at, transaction_id) < ($2, $3, $4)`
		args = append(args, cursor.Date, cursor.CreatedAt, cursor.ID)
	}
	query += fmt.Sprintf(` ORDER BY transaction_date DESC, created_at DESC, transaction_id DESC LIMIT $%d;`, len(args)+1)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, dbError("failed to list credit card transactions", err)
	}
	defer rows.Close()

	txns := []domain.CreditCardTransaction{}
	for rows.Next() {
		t, err := scanCardTransaction(rows)
		if err != nil {
			return nil, nil, dbError("failed to scan credit card transaction row", err)
		}
		txns = append(txns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, dbError("error iterating credit card transaction rows", err)
	}

	var token *string
	if len(txns) > limit {
		txns = txns[:limit]
		last := txns[len(txns)-1]
		t := pagination.EncodeCursor(pagination.Cursor{Date: last.TransactionDate, CreatedAt: last.CreatedAt, ID: last.TransactionID})
		token = &t
	}
	return txns, token, nil
}
