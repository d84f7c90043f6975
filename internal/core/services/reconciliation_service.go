package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/sitebooks_ledger/internal/apperrors"
	"github.com/SscSPs/sitebooks_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/sitebooks_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sitebooks_ledger/internal/core/ports/services"
	"github.com/SscSPs/sitebooks_ledger/internal/dto"
	"github.com/SscSPs/sitebooks_ledger/internal/utils/accounting"
	"github.com/SscSPs/sitebooks_ledger/internal/utils/money"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// reconciliationService manages bank accounts and their statement reconciliations.
type reconciliationService struct {
	BaseService
	reconRepo portsrepo.ReconciliationRepositoryWithTx
}

// NewReconciliationService creates a new ReconciliationService.
func NewReconciliationService(reconRepo portsrepo.ReconciliationRepositoryWithTx, opts ...Option) portssvc.ReconciliationSvcFacade {
	svc := &reconciliationService{reconRepo: reconRepo}
	svc.apply(opts)
	return svc
}

var _ portssvc.ReconciliationSvcFacade = (*reconciliationService)(nil)

func (s *reconciliationService) CreateBankAccount(ctx context.Context, companyID string, req dto.CreateBankAccountRequest, userID string) (*domain.BankAccount, error) {
	if err := s.RequireCompany(ctx, companyID); err != nil {
		return nil, err
	}
	if req.Name == "" {
		return nil, fmt.Errorf("%w: bank account name is required", apperrors.ErrValidation)
	}

	account := domain.BankAccount{
		BankAccountID: uuid.NewString(),
		CompanyID:     companyID,
		Name:          req.Name,
		Institution:   req.Institution,
		LastFour:      req.LastFour,
		IsActive:      true,
		AuditFields:   domain.NewAuditFields(userID, s.Now()),
	}
	if err := s.reconRepo.SaveBankAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save bank account", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to create bank account: %w", err)
	}
	s.LogInfo(ctx, "Bank account created", slog.String("bank_account_id", account.BankAccountID))
	return &account, nil
}

func (s *reconciliationService) GetBankAccount(ctx context.Context, companyID string, bankAccountID string) (*domain.BankAccount, error) {
	if err := s.RequireCompany(ctx, companyID); err != nil {
		return nil, err
	}
	return s.reconRepo.FindBankAccountByID(ctx, companyID, bankAccountID)
}

func (s *reconciliationService) ListBankAccounts(ctx context.Context, companyID string) ([]domain.BankAccount, error) {
	if err := s.RequireCompany(ctx, companyID); err != nil {
		return nil, err
	}
	return s.reconRepo.ListBankAccounts(ctx, companyID)
}

func (s *reconciliationService) ListReconciliations(ctx context.Context, companyID string, bankAccountID string) ([]domain.BankReconciliation, error) {
	if err := s.RequireCompany(ctx, companyID); err != nil {
		return nil, err
	}
	if _, err := s.reconRepo.FindBankAccountByID(ctx, companyID, bankAccountID); err != nil {
		return nil, err
	}
	return s.reconRepo.ListReconciliations(ctx, companyID, bankAccountID)
}

// CreateReconciliation opens a session. Without an explicit beginning balance the
// ending balance of the last reconciled session carries forward.
func (s *reconciliationService) CreateReconciliation(ctx context.Context, companyID string, req dto.CreateReconciliationRequest, userID string) (*domain.BankReconciliation, error) {
	if err := s.RequireCompany(ctx, companyID); err != nil {
		return nil, err
	}
	bankAccount, err := s.reconRepo.FindBankAccountByID(ctx, companyID, req.BankAccountID)
	if err != nil {
		return nil, err
	}

	periodStart := domain.DateOnly(req.PeriodStart)
	periodEnd := domain.DateOnly(req.PeriodEnd)
	if periodEnd.Before(periodStart) {
		return nil, fmt.Errorf("%w: period end is before period start", apperrors.ErrValidation)
	}

	open, err := s.reconRepo.HasOpenReconciliation(ctx, bankAccount.BankAccountID)
	if err != nil {
		return nil, err
	}
	if open {
		return nil, fmt.Errorf("%w: bank account %s already has an open reconciliation", apperrors.ErrConflict, bankAccount.BankAccountID)
	}

	beginning := decimal.Zero
	if req.BeginningBalance != nil {
		beginning = *req.BeginningBalance
	} else {
		latest, err := s.reconRepo.FindLatestReconciled(ctx, bankAccount.BankAccountID)
		switch {
		case err == nil:
			beginning = latest.EndingBalance
		case errors.Is(err, apperrors.ErrNotFound):
		default:
			return nil, err
		}
	}

	recon := domain.BankReconciliation{
		ReconciliationID: uuid.NewString(),
		CompanyID:        companyID,
		BankAccountID:    bankAccount.BankAccountID,
		PeriodStart:      periodStart,
		PeriodEnd:        periodEnd,
		BeginningBalance: beginning,
		EndingBalance:    req.EndingBalance,
		Status:           domain.ReconciliationOpen,
		AuditFields:      domain.NewAuditFields(userID, s.Now()),
	}
	if err := s.reconRepo.SaveReconciliation(ctx, recon); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Reconciliation opened",
		slog.String("reconciliation_id", recon.ReconciliationID),
		slog.String("bank_account_id", recon.BankAccountID),
		slog.String("beginning_balance", money.FormatCents(beginning)))
	return &recon, nil
}

// GetReconciliationReport partitions the candidates of a session. A closed
// session reports its stored items as cleared.
func (s *reconciliationService) GetReconciliationReport(ctx context.Context, companyID string, reconciliationID string) (*domain.ReconciliationReport, error) {
	if err := s.RequireCompany(ctx, companyID); err != nil {
		return nil, err
	}
	recon, err := s.reconRepo.FindReconciliationByID(ctx, companyID, reconciliationID)
	if err != nil {
		return nil, err
	}
	candidates, err := s.candidates(ctx, recon)
	if err != nil {
		return nil, err
	}

	cleared := map[string]bool{}
	if recon.Status == domain.ReconciliationReconciled {
		items, err := s.reconRepo.ListItems(ctx, recon.ReconciliationID)
		if err != nil {
			return nil, err
		}
		cleared = accounting.ItemSet(items)
	}

	report := accounting.Match(*recon, candidates, cleared)
	return &report, nil
}

// PreviewReconciliation computes the report for a proposed selection without saving it.
func (s *reconciliationService) PreviewReconciliation(ctx context.Context, companyID string, reconciliationID string, cleared []domain.CandidateRef) (*domain.ReconciliationReport, error) {
	if err := s.RequireCompany(ctx, companyID); err != nil {
		return nil, err
	}
	recon, err := s.openReconciliation(ctx, companyID, reconciliationID)
	if err != nil {
		return nil, err
	}
	candidates, err := s.candidates(ctx, recon)
	if err != nil {
		return nil, err
	}
	selected, err := accounting.SelectionSet(candidates, cleared)
	if err != nil {
		return nil, err
	}
	report := accounting.Match(*recon, candidates, selected)
	return &report, nil
}

// CloseReconciliation stores the selection and marks the session reconciled. It
// refuses while the cleared balance differs from the statement ending balance.
// Everything happens in one transaction: the status flip is a compare-and-swap
// on OPEN, and a source cleared concurrently by another session violates the
// item uniqueness constraint and aborts the close.
func (s *reconciliationService) CloseReconciliation(ctx context.Context, companyID string, reconciliationID string, cleared []domain.CandidateRef, userID string) (*domain.ReconciliationReport, error) {
	logger := s.GetLogger(ctx)
	if err := s.RequireCompany(ctx, companyID); err != nil {
		return nil, err
	}
	recon, err := s.openReconciliation(ctx, companyID, reconciliationID)
	if err != nil {
		return nil, err
	}
	candidates, err := s.candidates(ctx, recon)
	if err != nil {
		return nil, err
	}
	selected, err := accounting.SelectionSet(candidates, cleared)
	if err != nil {
		return nil, err
	}

	report := accounting.Match(*recon, candidates, selected)
	if !report.IsBalanced() {
		return nil, fmt.Errorf("%w: reconciliation is out of balance by %s",
			apperrors.ErrValidation, money.FormatSigned(report.Difference.Abs(), report.Difference.IsNegative()))
	}

	now := s.Now()
	items := make([]domain.BankReconciliationItem, 0, len(report.Cleared))
	for _, c := range report.Cleared {
		items = append(items, domain.BankReconciliationItem{
			ItemID:           uuid.NewString(),
			ReconciliationID: recon.ReconciliationID,
			SourceKind:       c.SourceKind,
			SourceID:         c.SourceID,
			Direction:        c.Direction,
			Amount:           c.Amount,
			ClearedAt:        now,
			ClearedBy:        userID,
		})
	}

	tx, err := s.reconRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer rollback(ctx, s.reconRepo, tx, logger)

	if err := s.reconRepo.CloseInTx(ctx, tx, recon.ReconciliationID, userID, now); err != nil {
		return nil, err
	}
	if err := s.reconRepo.InsertItemsInTx(ctx, tx, items); err != nil {
		return nil, err
	}
	if err := s.reconRepo.MarkLinesReconciledInTx(ctx, tx, items, userID, now); err != nil {
		return nil, err
	}
	if err := s.reconRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	report.Reconciliation.Status = domain.ReconciliationReconciled
	report.Reconciliation.ReconciledAt = &now
	report.Reconciliation.ReconciledBy = &userID
	report.Reconciliation.LastUpdatedAt = now
	report.Reconciliation.LastUpdatedBy = userID

	logger.Info("Reconciliation closed",
		slog.String("reconciliation_id", recon.ReconciliationID),
		slog.Int("cleared_items", len(items)))
	return &report, nil
}

// ExportReconciliationReport renders the current report as an XLSX workbook.
func (s *reconciliationService) ExportReconciliationReport(ctx context.Context, companyID string, reconciliationID string) ([]byte, error) {
	report, err := s.GetReconciliationReport(ctx, companyID, reconciliationID)
	if err != nil {
		return nil, err
	}
	data, err := renderReconciliationWorkbook(report)
	if err != nil {
		s.LogError(ctx, err, "Failed to render reconciliation workbook", slog.String("reconciliation_id", reconciliationID))
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to render reconciliation workbook", err)
	}
	return data, nil
}

func (s *reconciliationService) openReconciliation(ctx context.Context, companyID, reconciliationID string) (*domain.BankReconciliation, error) {
	recon, err := s.reconRepo.FindReconciliationByID(ctx, companyID, reconciliationID)
	if err != nil {
		return nil, err
	}
	if recon.Status != domain.ReconciliationOpen {
		return nil, fmt.Errorf("%w: reconciliation %s is already %s", apperrors.ErrConflict, reconciliationID, recon.Status)
	}
	return recon, nil
}

func (s *reconciliationService) candidates(ctx context.Context, recon *domain.BankReconciliation) ([]domain.ReconciliationCandidate, error) {
	candidates, err := s.reconRepo.ListCandidates(ctx, recon.CompanyID, recon.BankAccountID, recon.PeriodStart, recon.PeriodEnd, recon.ReconciliationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list reconciliation candidates", slog.String("reconciliation_id", recon.ReconciliationID))
		return nil, err
	}
	return candidates, nil
}
