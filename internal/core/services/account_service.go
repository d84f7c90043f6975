package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/sitebooks_ledger/internal/apperrors"
	"github.com/SscSPs/sitebooks_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/sitebooks_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sitebooks_ledger/internal/core/ports/services"
	"github.com/SscSPs/sitebooks_ledger/internal/dto"
	"github.com/google/uuid"
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo  portsrepo.AccountRepositoryFacade
	bankAccounts portsrepo.BankAccountStore
}

// NewAccountService creates a new account service. bankAccounts, when not nil,
// is used to check the subject of bank-scoped mappings.
func NewAccountService(repo portsrepo.AccountRepositoryFacade, bankAccounts portsrepo.BankAccountStore, opts ...Option) portssvc.AccountSvcFacade {
	svc := &accountService{
		accountRepo:  repo,
		bankAccounts: bankAccounts,
	}
	svc.apply(opts)
	return svc
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, companyID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	if err := s.RequireCompany(ctx, companyID); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: account name is required", apperrors.ErrValidation)
	}
	if !req.Classification.IsValid() {
		return nil, fmt.Errorf("%w: unknown classification %q", apperrors.ErrValidation, req.Classification)
	}

	account := domain.Account{
		AccountID:      uuid.NewString(),
		CompanyID:      companyID,
		Name:           name,
		Classification: req.Classification,
		Description:    req.Description,
		IsActive:       true,
		AuditFields:    domain.NewAuditFields(userID, s.Now()),
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account",
			slog.String("company_id", companyID),
			slog.String("name", name))
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.LogInfo(ctx, "Account created",
		slog.String("account_id", account.AccountID),
		slog.String("company_id", companyID))
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, companyID string, accountID string) (*domain.Account, error) {
	if err := s.RequireCompany(ctx, companyID); err != nil {
		return nil, err
	}
	return s.accountRepo.FindAccountByID(ctx, companyID, accountID)
}

func (s *accountService) ListAccounts(ctx context.Context, companyID string, limit int, offset int) ([]domain.Account, error) {
	if err := s.RequireCompany(ctx, companyID); err != nil {
		return nil, err
	}
	return s.accountRepo.ListAccounts(ctx, companyID, limit, offset)
}

// UpdateAccount changes metadata only; the classification is immutable.
func (s *accountService) UpdateAccount(ctx context.Context, companyID string, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	if err := s.RequireCompany(ctx, companyID); err != nil {
		return nil, err
	}

	account, err := s.accountRepo.FindAccountByID(ctx, companyID, accountID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: account name cannot be empty", apperrors.ErrValidation)
		}
		account.Name = name
	}
	if req.Description != nil {
		account.Description = *req.Description
	}
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
	}
	account.LastUpdatedAt = s.Now()
	account.LastUpdatedBy = userID

	if err := s.accountRepo.UpdateAccountMetadata(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to update account: %w", err)
	}
	return account, nil
}

// SetAccountMapping points a role at an account. The account must be active and
// carry the classification of the role; CASH always needs a bank account subject.
func (s *accountService) SetAccountMapping(ctx context.Context, companyID string, req dto.UpsertAccountMappingRequest, userID string) (*domain.AccountMapping, error) {
	if err := s.RequireCompany(ctx, companyID); err != nil {
		return nil, err
	}
	if !req.Role.IsValid() {
		return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, req.Role)
	}

	subjectID := strings.TrimSpace(req.SubjectID)
	if subjectID == "" && !req.Role.AllowsCompanyDefault() {
		return nil, fmt.Errorf("%w: %s mappings need a bank account subject", apperrors.ErrValidation, req.Role)
	}

	account, err := s.accountRepo.FindAccountByID(ctx, companyID, req.AccountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: account %s not found in company", apperrors.ErrValidation, req.AccountID)
		}
		return nil, err
	}
	if !account.IsActive {
		return nil, fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, account.AccountID)
	}
	if account.Classification != req.Role.Classification() {
		return nil, fmt.Errorf("%w: account %s is classified %s, role %s needs %s",
			apperrors.ErrValidation, account.AccountID, account.Classification, req.Role, req.Role.Classification())
	}

	if subjectID != "" && req.Role != domain.RoleAccountsPayable && s.bankAccounts != nil {
		if _, err := s.bankAccounts.FindBankAccountByID(ctx, companyID, subjectID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: bank account %s not found in company", apperrors.ErrValidation, subjectID)
			}
			return nil, err
		}
	}

	mapping := domain.AccountMapping{
		CompanyID:   companyID,
		Role:        req.Role,
		SubjectID:   subjectID,
		AccountID:   account.AccountID,
		AuditFields: domain.NewAuditFields(userID, s.Now()),
	}
	if err := s.accountRepo.UpsertAccountMapping(ctx, mapping); err != nil {
		s.LogError(ctx, err, "Failed to save account mapping",
			slog.String("company_id", companyID),
			slog.String("role", string(req.Role)))
		return nil, fmt.Errorf("failed to save account mapping: %w", err)
	}

	s.LogInfo(ctx, "Account mapping saved",
		slog.String("company_id", companyID),
		slog.String("role", string(req.Role)),
		slog.String("subject_id", subjectID),
		slog.String("account_id", account.AccountID))
	return &mapping, nil
}

func (s *accountService) ListAccountMappings(ctx context.Context, companyID string) ([]domain.AccountMapping, error) {
	if err := s.RequireCompany(ctx, companyID); err != nil {
		return nil, err
	}
	return s.accountRepo.ListAccountMappings(ctx, companyID)
}

// ResolveAccount looks up the subject-specific mapping first and then, for roles
// that allow it, the company default. Nothing is ever inferred from account names.
func (s *accountService) ResolveAccount(ctx context.Context, companyID string, role domain.AccountRole, subjectID string) (string, error) {
	accountID, err := s.accountRepo.FindMappedAccountID(ctx, companyID, role, subjectID)
	if err == nil {
		return accountID, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return "", err
	}

	if subjectID != "" && role.AllowsCompanyDefault() {
		accountID, err = s.accountRepo.FindMappedAccountID(ctx, companyID, role, "")
		if err == nil {
			return accountID, nil
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return "", err
		}
	}

	return "", &apperrors.AccountResolutionError{CompanyID: companyID, Role: string(role), SubjectID: subjectID}
}
