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
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPaymentRepository struct {
	BaseRepository
}

func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryWithTx {
	return &PgxPaymentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PaymentRepositoryWithTx = (*PgxPaymentRepository)(nil)

const paymentColumns = `payment_id, company_id, payee_kind, payee_id, amount, payment_date, method, bank_account_id,
	bank_fee, reference, memo, journal_entry_id, created_at, created_by, last_updated_at, last_updated_by`

func scanPayment(row pgx.Row) (domain.Payment, error) {
	var m models.Payment
	err := row.Scan(
		&m.PaymentID,
		&m.CompanyID,
		&m.PayeeKind,
		&m.PayeeID,
		&m.Amount,
		&m.PaymentDate,
		&m.Method,
		&m.BankAccountID,
		&m.BankFee,
		&m.Reference,
		&m.Memo,
		&m.JournalEntryID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return domain.Payment{}, err
	}
	return mapping.ToDomainPayment(m), nil
}

// SavePayment inserts a new, unposted payment.
func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	m := mapping.ToModelPayment(payment)
	query := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.PaymentID,
		m.CompanyID,
		m.PayeeKind,
		m.PayeeID,
		m.Amount,
		m.PaymentDate,
		m.Method,
		m.BankAccountID,
		m.BankFee,
		m.Reference,
		m.Memo,
		m.JournalEntryID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err, "") {
			return fmt.Errorf("%w: payment %s already exists", apperrors.ErrDuplicate, m.PaymentID)
		}
		return dbError("failed to save payment "+m.PaymentID, err)
	}
	return nil
}

func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, companyID, paymentID string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE company_id = $1 AND payment_id = $2;`
	p, err := scanPayment(r.Pool.QueryRow(ctx, query, companyID, paymentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("payment " + paymentID + " not found")
		}
		return nil, dbError("failed to find payment "+paymentID, err)
	}
	return &p, nil
}

func (r *PgxPaymentRepository) ListPayments(ctx context.Context, companyID string, limit int, offset int) ([]domain.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE company_id = $1
		ORDER BY payment_date DESC, created_at DESC, payment_id DESC
		LIMIT $2 OFFSET $3;
	`
	return r.queryPayments(ctx, query, companyID, limit, offset)
}

// ListUnpostedPayments lists payments without a journal entry, oldest first.
func (r *PgxPaymentRepository) ListUnpostedPayments(ctx context.Context, companyID string, limit int) ([]domain.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE company_id = $1 AND journal_entry_id IS NULL
		ORDER BY created_at, payment_id
		LIMIT $2;
	`
	return r.queryPayments(ctx, query, companyID, limit)
}

func (r *PgxPaymentRepository) queryPayments(ctx context.Context, query string, args ...any) ([]domain.Payment, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, dbError("failed to query payments", err)
	}
	defer rows.Close()

	payments := []domain.Payment{}
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, dbError("failed to scan payment row", err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError("error iterating payment rows", err)
	}
	return payments, nil
}

// ClaimJournalEntryInTx links the entry only while the payment has none.
func (r *PgxPaymentRepository) ClaimJournalEntryInTx(ctx context.Context, tx pgx.Tx, paymentID, entryID string) (bool, error) {
	query := `
		UPDATE payments
		SET journal_entry_id = $1
		WHERE payment_id = $2 AND journal_entry_id IS NULL;
	`
	tag, err := tx.Exec(ctx, query, entryID, paymentID)
	if err != nil {
		return false, dbError("failed to link journal entry to payment "+paymentID, err)
	}
	return tag.RowsAffected() == 1, nil
}

// ClearJournalEntryInTx removes the payment's link to the given entry.
func (r *PgxPaymentRepository) ClearJournalEntryInTx(ctx context.Context, tx pgx.Tx, paymentID, entryID string) error {
	query := `
		UPDATE payments
		SET journal_entry_id = NULL
		WHERE payment_id = $1 AND journal_entry_id = $2;
	`
	tag, err := tx.Exec(ctx, query, paymentID, entryID)
	if err != nil {
		return dbError("failed to unlink journal entry from payment "+paymentID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: payment %s no longer links journal entry %s", apperrors.ErrConflict, paymentID, entryID)
	}
	return nil
}
