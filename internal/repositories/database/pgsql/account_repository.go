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

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

const accountColumns = `account_id, company_id, name, classification, description, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanAccount(row pgx.Row) (domain.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.CompanyID,
		&m.Name,
		&m.Classification,
		&m.Description,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return domain.Account{}, err
	}
	return mapping.ToDomainAccount(m), nil
}

// SaveAccount inserts a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AccountID,
		m.CompanyID,
		m.Name,
		m.Classification,
		m.Description,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err, "") {
			return fmt.Errorf("%w: account with ID %s already exists", apperrors.ErrDuplicate, m.AccountID)
		}
		return dbError("failed to save account "+m.AccountID, err)
	}
	return nil
}

// FindAccountByID retrieves an account of the company by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, companyID, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE company_id = $1 AND account_id = $2;`
	acc, err := scanAccount(r.Pool.QueryRow(ctx, query, companyID, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("account " + accountID + " not found")
		}
		return nil, dbError("failed to find account "+accountID, err)
	}
	return &acc, nil
}

// FindAccountsByIDs retrieves multiple accounts of the company by their IDs.
func (r *PgxAccountRepository) FindAccountsByIDs(ctx context.Context, companyID string, accountIDs []string) (map[string]domain.Account, error) {
	result := make(map[string]domain.Account, len(accountIDs))
	if len(accountIDs) == 0 {
		return result, nil
	}

	query := `SELECT ` + accountColumns + ` FROM accounts WHERE company_id = $1 AND account_id = ANY($2);`
	rows, err := r.Pool.Query(ctx, query, companyID, accountIDs)
	if err != nil {
		return nil, dbError("failed to query accounts by IDs", err)
	}
	defer rows.Close()

	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, dbError("failed to scan account row", err)
		}
		result[acc.AccountID] = acc
	}
	if err := rows.Err(); err != nil {
		return nil, dbError("error iterating account rows", err)
	}
	return result, nil
}

// ListAccounts retrieves a page of accounts ordered by name.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, companyID string, limit int, offset int) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE company_id = $1 ORDER BY name, account_id LIMIT $2 OFFSET $3;`
	rows, err := r.Pool.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, dbError("failed to list accounts", err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, dbError("failed to scan account row", err)
		}
		accounts = append(accounts, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError("error iterating account rows", err)
	}
	return accounts, nil
}

// UpdateAccountMetadata updates the mutable columns of an account.
func (r *PgxAccountRepository) UpdateAccountMetadata(ctx context.Context, account domain.Account) error {
	query := `
		UPDATE accounts
		SET name = $1, description = $2, is_active = $3, last_updated_at = $4, last_updated_by = $5
		WHERE company_id = $6 AND account_id = $7;
	`
	tag, err := r.Pool.Exec(ctx, query,
		account.Name,
		account.Description,
		account.IsActive,
		account.LastUpdatedAt,
		account.LastUpdatedBy,
		account.CompanyID,
		account.AccountID,
	)
	if err != nil {
		return dbError("failed to update account "+account.AccountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("account " + account.AccountID + " not found")
	}
	return nil
}

// UpsertAccountMapping creates or replaces the mapping for (company, role, subject).
func (r *PgxAccountRepository) UpsertAccountMapping(ctx context.Context, mp domain.AccountMapping) error {
	m := mapping.ToModelAccountMapping(mp)
	query := `
		INSERT INTO account_mappings (company_id, role, subject_id, account_id, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (company_id, role, subject_id)
		DO UPDATE SET account_id = EXCLUDED.account_id,
		              last_updated_at = EXCLUDED.last_updated_at,
		              last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CompanyID, m.Role, m.SubjectID, m.AccountID, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return dbError("failed to upsert account mapping", err)
	}
	return nil
}

// ListAccountMappings lists all of a company's mappings.
func (r *PgxAccountRepository) ListAccountMappings(ctx context.Context, companyID string) ([]domain.AccountMapping, error) {
	query := `
		SELECT company_id, role, subject_id, account_id, created_at, created_by, last_updated_at, last_updated_by
		FROM account_mappings
		WHERE company_id = $1
		ORDER BY role, subject_id;
	`
	rows, err := r.Pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, dbError("failed to list account mappings", err)
	}
	defer rows.Close()

	mappings := []domain.AccountMapping{}
	for rows.Next() {
		var m models.AccountMapping
		if err := rows.Scan(&m.CompanyID, &m.Role, &m.SubjectID, &m.AccountID, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy); err != nil {
			return nil, dbError("failed to scan account mapping row", err)
		}
		mappings = append(mappings, mapping.ToDomainAccountMapping(m))
	}
	if err := rows.Err(); err != nil {
		return nil, dbError("error iterating account mapping rows", err)
	}
	return mappings, nil
}

// FindMappedAccountID returns the account mapped for exactly (company, role, subject).
// Inactive accounts do not resolve.
func (r *PgxAccountRepository) FindMappedAccountID(ctx context.Context, companyID string, role domain.AccountRole, subjectID string) (string, error) {
	query := `
		SELECT m.account_id
		FROM account_mappings m
		JOIN accounts a ON a.account_id = m.account_id
		WHERE m.company_id = $1 AND m.role = $2 AND m.subject_id = $3 AND a.is_active;
	`
	var accountID string
	err := r.Pool.QueryRow(ctx, query, companyID, string(role), subjectID).Scan(&accountID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrNotFound
		}
		return "", dbError("failed to resolve account mapping", err)
	}
	return accountID, nil
}
