package repositories

import (
	"context"

	"github.com/SscSPs/sitebooks_ledger/internal/core/domain"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves an account owned by the company.
	FindAccountByID(ctx context.Context, companyID, accountID string) (*domain.Account, error)

	// FindAccountsByIDs retrieves several accounts of the company keyed by id. Missing ids are absent from the map.
	FindAccountsByIDs(ctx context.Context, companyID string, accountIDs []string) (map[string]domain.Account, error)

	// ListAccounts retrieves a page of the company's accounts ordered by name.
	ListAccounts(ctx context.Context, companyID string, limit int, offset int) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccountMetadata updates name, description and active flag only.
	UpdateAccountMetadata(ctx context.Context, account domain.Account) error
}

// AccountMappingStore is the persistence side of account resolution
type AccountMappingStore interface {
	// UpsertAccountMapping creates or replaces the mapping for (company, role, subject).
	UpsertAccountMapping(ctx context.Context, mapping domain.AccountMapping) error

	// ListAccountMappings lists all of a company's mappings.
	ListAccountMappings(ctx context.Context, companyID string) ([]domain.AccountMapping, error)

	// FindMappedAccountID returns the account mapped for exactly (company, role, subject), or ErrNotFound.
	FindMappedAccountID(ctx context.Context, companyID string, role domain.AccountRole, subjectID string) (string, error)
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountMappingStore
}
