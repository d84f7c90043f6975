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
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxReconciliationRepository struct {
	BaseRepository
}

func newPgxReconciliationRepository(pool *pgxpool.Pool) portsrepo.ReconciliationRepositoryWithTx {
	return &PgxReconciliationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReconciliationRepositoryWithTx = (*PgxReconciliationRepository)(nil)

const bankAccountColumns = `bank_account_id, company_id, name, institution, last_four, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

const reconciliationColumns = `reconciliation_id, company_id, bank_account_id, period_start, period_end,
	beginning_balance, ending_balance, status, reconciled_at, reconciled_by,
	created_at, created_by, last_updated_at, last_updated_by`

const reconciliationItemColumns = `item_id, reconciliation_id, source_kind, source_id, direction, amount, cleared_at, cleared_by`

func scanBankAccount(row pgx.Row) (domain.BankAccount, error) {
	var m models.BankAccount
	err := row.Scan(
		&m.BankAccountID,
		&m.CompanyID,
		&m.Name,
		&m.Institution,
		&m.LastFour,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return domain.BankAccount{}, err
	}
	return mapping.ToDomainBankAccount(m), nil
}

func scanReconciliation(row pgx.Row) (domain.BankReconciliation, error) {
	var m models.BankReconciliation
	err := row.Scan(
		&m.ReconciliationID,
		&m.CompanyID,
		&m.BankAccountID,
		&m.PeriodStart,
		&m.PeriodEnd,
		&m.BeginningBalance,
		&m.EndingBalance,
		&m.Status,
		&m.ReconciledAt,
		&m.ReconciledBy,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return domain.BankReconciliation{}, err
	}
	return mapping.ToDomainBankReconciliation(m), nil
}

func (r *PgxReconciliationRepository) SaveBankAccount(ctx context.Context, account domain.BankAccount) error {
	m := mapping.ToModelBankAccount(account)
	query := `
		INSERT INTO bank_accounts (` + bankAccountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.BankAccountID,
		m.CompanyID,
		m.Name,
		m.Institution,
		m.LastFour,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err, "") {
			return fmt.Errorf("%w: bank account %s already exists", apperrors.ErrDuplicate, m.BankAccountID)
		}
		return dbError("failed to save bank account "+m.BankAccountID, err)
	}
	return nil
}

func (r *PgxReconciliationRepository) FindBankAccountByID(ctx context.Context, companyID, bankAccountID string) (*domain.BankAccount, error) {
	query := `SELECT ` + bankAccountColumns + ` FROM bank_accounts WHERE company_id = $1 AND bank_account_id = $2;`
	ba, err := scanBankAccount(r.Pool.QueryRow(ctx, query, companyID, bankAccountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("bank account " + bankAccountID + " not found")
		}
		return nil, dbError("failed to find bank account "+bankAccountID, err)
	}
	return &ba, nil
}

func (r *PgxReconciliationRepository) ListBankAccounts(ctx context.Context, companyID string) ([]domain.BankAccount, error) {
	query := `SELECT ` + bankAccountColumns + ` FROM bank_accounts WHERE company_id = $1 ORDER BY name, bank_account_id;`
	rows, err := r.Pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, dbError("failed to list bank accounts", err)
	}
	defer rows.Close()

	accounts := []domain.BankAccount{}
	for rows.Next() {
		ba, err := scanBankAccount(rows)
		if err != nil {
			return nil, dbError("failed to scan bank account row", err)
		}
		accounts = append(accounts, ba)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError("error iterating bank account rows", err)
	}
	return accounts, nil
}

func (r *PgxReconciliationRepository) SaveReconciliation(ctx context.Context, recon domain.BankReconciliation) error {
	m := mapping.ToModelBankReconciliation(recon)
	query := `
		INSERT INTO bank_reconciliations (` + reconciliationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ReconciliationID,
		m.CompanyID,
		m.BankAccountID,
		m.PeriodStart,
		m.PeriodEnd,
		m.BeginningBalance,
		m.EndingBalance,
		m.Status,
		m.ReconciledAt,
		m.ReconciledBy,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err, "uq_bank_reconciliations_open") {
			return fmt.Errorf("%w: bank account %s already has an open reconciliation", apperrors.ErrConflict, m.BankAccountID)
		}
		return dbError("failed to save reconciliation "+m.ReconciliationID, err)
	}
	return nil
}

func (r *PgxReconciliationRepository) FindReconciliationByID(ctx context.Context, companyID, reconciliationID string) (*domain.BankReconciliation, error) {
	query := `SELECT ` + reconciliationColumns + ` FROM bank_reconciliations WHERE company_id = $1 AND reconciliation_id = $2;`
	recon, err := scanReconciliation(r.Pool.QueryRow(ctx, query, companyID, reconciliationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("reconciliation " + reconciliationID + " not found")
		}
		return nil, dbError("failed to find reconciliation "+reconciliationID, err)
	}
	return &recon, nil
}

func (r *PgxReconciliationRepository) ListReconciliations(ctx context.Context, companyID, bankAccountID string) ([]domain.BankReconciliation, error) {
	query := `
		SELECT ` + reconciliationColumns + ` FROM bank_reconciliations
		WHERE company_id = $1 AND bank_account_id = $2
		ORDER BY period_end DESC, created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, bankAccountID)
	if err != nil {
		return nil, dbError("failed to list reconciliations", err)
	}
	defer rows.Close()

	recons := []domain.BankReconciliation{}
	for rows.Next() {
		recon, err := scanReconciliation(rows)
		if err != nil {
			return nil, dbError("failed to scan reconciliation row", err)
		}
		recons = append(recons, recon)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError("error iterating reconciliation rows", err)
	}
	return recons, nil
}

func (r *PgxReconciliationRepository) FindLatestReconciled(ctx context.Context, bankAccountID string) (*domain.BankReconciliation, error) {
	query := `
		SELECT ` + reconciliationColumns + ` FROM bank_reconciliations
		WHERE bank_account_id = $1 AND status = 'RECONCILED'
		ORDER BY period_end DESC, reconciled_at DESC
		LIMIT 1;
	`
	recon, err := scanReconciliation(r.Pool.QueryRow(ctx, query, bankAccountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("no reconciled session for bank account " + bankAccountID)
		}
		return nil, dbError("failed to find latest reconciliation", err)
	}
	return &recon, nil
}

func (r *PgxReconciliationRepository) HasOpenReconciliation(ctx context.Context, bankAccountID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM bank_reconciliations WHERE bank_account_id = $1 AND status = 'OPEN');`
	if err := r.Pool.QueryRow(ctx, query, bankAccountID).Scan(&exists); err != nil {
		return false, dbError("failed to check open reconciliation", err)
	}
	return exists, nil
}

// ListCandidates unions the bank account's payments with the lines posted to its
// CASH account. Lines of entries that a payment owns are left out since the payment
// itself is the candidate for them.
func (r *PgxReconciliationRepository) ListCandidates(ctx context.Context, companyID, bankAccountID string, from, to time.Time, excludeReconciliationID string) ([]domain.ReconciliationCandidate, error) {
	query := `
		SELECT 'PAYMENT' AS source_kind, p.payment_id AS source_id, p.payment_date AS source_date,
		       p.memo AS description, p.reference AS reference, 'WITHDRAWAL' AS direction,
		       p.amount + p.bank_fee AS amount
		FROM payments p
		WHERE p.company_id = $1 AND p.bank_account_id = $2
		  AND p.payment_date BETWEEN $3 AND $4
		  AND NOT EXISTS (
		      SELECT 1 FROM bank_reconciliation_items i
		      WHERE i.source_kind = 'PAYMENT' AND i.source_id = p.payment_id AND i.reconciliation_id <> $5)
		UNION ALL
		SELECT 'JOURNAL_LINE', l.line_id, e.entry_date,
		       COALESCE(NULLIF(l.description, ''), e.description), e.reference,
		       CASE WHEN l.debit_amount > 0 THEN 'DEPOSIT' ELSE 'WITHDRAWAL' END,
		       CASE WHEN l.debit_amount > 0 THEN l.debit_amount ELSE l.credit_amount END
		FROM journal_entry_lines l
		JOIN journal_entries e ON e.entry_id = l.entry_id
		JOIN account_mappings m ON m.company_id = e.company_id AND m.role = 'CASH'
		                       AND m.subject_id = $2 AND m.account_id = l.account_id
		WHERE e.company_id = $1 AND e.status = 'POSTED'
		  AND e.entry_date BETWEEN $3 AND $4
		  AND NOT EXISTS (SELECT 1 FROM payments p2 WHERE p2.journal_entry_id = e.entry_id)
		  AND NOT EXISTS (
		      SELECT 1 FROM bank_reconciliation_items i
		      WHERE i.source_kind = 'JOURNAL_LINE' AND i.source_id = l.line_id AND i.reconciliation_id <> $5)
		ORDER BY source_date, source_kind, source_id;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, bankAccountID, from, to, excludeReconciliationID)
	if err != nil {
		return nil, dbError("failed to list reconciliation candidates", err)
	}
	defer rows.Close()

	candidates := []domain.ReconciliationCandidate{}
	for rows.Next() {
		var (
			c          domain.ReconciliationCandidate
			kind, dir  string
			amount     decimal.Decimal
			sourceDate time.Time
		)
		if err := rows.Scan(&kind, &c.SourceID, &sourceDate, &c.Description, &c.Reference, &dir, &amount); err != nil {
			return nil, dbError("failed to scan reconciliation candidate", err)
		}
		c.SourceKind = domain.SourceKind(kind)
		c.Direction = domain.Direction(dir)
		c.Amount = amount
		c.Date = sourceDate
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError("error iterating reconciliation candidates", err)
	}
	return candidates, nil
}

func (r *PgxReconciliationRepository) ListItems(ctx context.Context, reconciliationID string) ([]domain.BankReconciliationItem, error) {
	query := `SELECT ` + reconciliationItemColumns + ` FROM bank_reconciliation_items WHERE reconciliation_id = $1 ORDER BY cleared_at, item_id;`
	rows, err := r.Pool.Query(ctx, query, reconciliationID)
	if err != nil {
		return nil, dbError("failed to list reconciliation items", err)
	}
	defer rows.Close()

	items := []domain.BankReconciliationItem{}
	for rows.Next() {
		var m models.BankReconciliationItem
		if err := rows.Scan(&m.ItemID, &m.ReconciliationID, &m.SourceKind, &m.SourceID, &m.Direction, &m.Amount, &m.ClearedAt, &m.ClearedBy); err != nil {
			return nil, dbError("failed to scan reconciliation item", err)
		}
		items = append(items, mapping.ToDomainBankReconciliationItem(m))
	}
	if err := rows.Err(); err != nil {
		return nil, dbError("error iterating reconciliation items", err)
	}
	return items, nil
}

func (r *PgxReconciliationRepository) CloseInTx(ctx context.Context, tx pgx.Tx, reconciliationID, userID string, now time.Time) error {
	query := `
		UPDATE bank_reconciliations
		SET status = 'RECONCILED', reconciled_at = $1, reconciled_by = $2, last_updated_at = $1, last_updated_by = $2
		WHERE reconciliation_id = $3 AND status = 'OPEN';
	`
	tag, err := tx.Exec(ctx, query, now, userID, reconciliationID)
	if err != nil {
		return dbError("failed to close reconciliation "+reconciliationID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: reconciliation %s is not open", apperrors.ErrConflict, reconciliationID)
	}
	return nil
}

func (r *PgxReconciliationRepository) InsertItemsInTx(ctx context.Context, tx pgx.Tx, items []domain.BankReconciliationItem) error {
	if len(items) == 0 {
		return nil
	}
	query := `INSERT INTO bank_reconciliation_items (` + reconciliationItemColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`

	batch := &pgx.Batch{}
	for _, item := range items {
		m := mapping.ToModelBankReconciliationItem(item)
		batch.Queue(query, m.ItemID, m.ReconciliationID, m.SourceKind, m.SourceID, m.Direction, m.Amount, m.ClearedAt, m.ClearedBy)
	}

	br := tx.SendBatch(ctx, batch)
	for _, item := range items {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			if isUniqueViolation(err, "uq_bank_reconciliation_items_source") {
				return fmt.Errorf("%w: %s %s is already cleared", apperrors.ErrConflict, item.SourceKind, item.SourceID)
			}
			return dbError("failed to insert reconciliation item", err)
		}
	}
	if err := br.Close(); err != nil {
		return dbError("failed to finish reconciliation item batch", err)
	}
	return nil
}

// MarkLinesReconciledInTx flags cleared journal lines. A cleared payment flags the
// credit lines its entry posted to the bank account's CASH account.
func (r *PgxReconciliationRepository) MarkLinesReconciledInTx(ctx context.Context, tx pgx.Tx, items []domain.BankReconciliationItem, userID string, now time.Time) error {
	var lineIDs, paymentIDs []string
	for _, item := range items {
		switch item.SourceKind {
		case domain.SourceJournalLine:
			lineIDs = append(lineIDs, item.SourceID)
		case domain.SourcePayment:
			paymentIDs = append(paymentIDs, item.SourceID)
		}
	}

	if len(lineIDs) > 0 {
		query := `
			UPDATE journal_entry_lines SET is_reconciled = TRUE, reconciled_at = $1, reconciled_by = $2
			WHERE line_id = ANY($3) AND NOT is_reconciled;
		`
		if _, err := tx.Exec(ctx, query, now, userID, lineIDs); err != nil {
			return dbError("failed to flag reconciled journal lines", err)
		}
	}

	if len(paymentIDs) > 0 {
		query := `
			UPDATE journal_entry_lines l SET is_reconciled = TRUE, reconciled_at = $1, reconciled_by = $2
			FROM payments p
			JOIN account_mappings m ON m.company_id = p.company_id AND m.role = 'CASH' AND m.subject_id = p.bank_account_id
			WHERE p.payment_id = ANY($3)
			  AND l.entry_id = p.journal_entry_id
			  AND l.account_id = m.account_id
			  AND l.credit_amount > 0
			  AND NOT l.is_reconciled;
		`
		if _, err := tx.Exec(ctx, query, now, userID, paymentIDs); err != nil {
			return dbError("failed to flag reconciled payment lines", err)
		}
	}
	return nil
}
