package services

import (
	"context"

	"github.com/SscSPs/sitebooks_ledger/internal/core/domain"
	"github.com/SscSPs/sitebooks_ledger/internal/dto"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account by its unique identifier.
	GetAccountByID(ctx context.Context, companyID string, accountID string) (*domain.Account, error)

	// ListAccounts retrieves a paginated list of accounts for a given company.
	ListAccounts(ctx context.Context, companyID string, limit int, offset int) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// CreateAccount persists a new account.
	CreateAccount(ctx context.Context, companyID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error)

	// UpdateAccount updates an existing account's metadata.
	UpdateAccount(ctx context.Context, companyID string, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error)
}

// AccountResolverSvc maps posting roles to concrete accounts
type AccountResolverSvc interface {
	// SetAccountMapping creates or replaces the mapping for a role and subject.
	SetAccountMapping(ctx context.Context, companyID string, req dto.UpsertAccountMappingRequest, userID string) (*domain.AccountMapping, error)

	// ListAccountMappings lists the company's mappings.
	ListAccountMappings(ctx context.Context, companyID string) ([]domain.AccountMapping, error)

	// ResolveAccount returns the account for the role and subject, or an *apperrors.AccountResolutionError.
	ResolveAccount(ctx context.Context, companyID string, role domain.AccountRole, subjectID string) (string, error)
}

// AccountSvcFacade combines all account-related service interfaces
// This is a facade for clients that need access to all operations
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
	AccountResolverSvc
}
