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
	"github.com/SscSPs/sitebooks_ledger/internal/utils/accounting"
	"github.com/google/uuid"
)

var (
	ErrJournalMinLines     = errors.New("journal entry must have at least two lines")
	ErrDescriptionMissing  = errors.New("journal entry description is required")
	ErrEntryAlreadyPosted  = errors.New("journal entry is already posted")
	ErrEntryZeroTotal      = errors.New("journal entry total must be positive")
	ErrAccountNotInCompany = errors.New("account not found in company")
)

// journalService provides manual entry, posting, reversal and deletion of journal entries.
type journalService struct {
	BaseService
	journalRepo portsrepo.JournalRepositoryWithTx
	paymentRepo portsrepo.PaymentWriter
	accountRepo portsrepo.AccountReader
}

// NewJournalService creates a new JournalService.
func NewJournalService(journalRepo portsrepo.JournalRepositoryWithTx, paymentRepo portsrepo.PaymentWriter, accountRepo portsrepo.AccountReader, opts ...Option) portssvc.JournalSvcFacade {
	svc := &journalService{
		journalRepo: journalRepo,
		paymentRepo: paymentRepo,
		accountRepo: accountRepo,
	}
	svc.apply(opts)
	return svc
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// CreateJournalEntry validates and stores a manual entry with its lines.
func (s *journalService) CreateJournalEntry(ctx context.Context, companyID string, req dto.CreateJournalEntryRequest, userID string) (*domain.JournalEntry, []domain.JournalEntryLine, error) {
	logger := s.GetLogger(ctx)
	if err := s.RequireCompany(ctx, companyID); err != nil {
		return nil, nil, err
	}

	if len(req.Lines) < 2 {
		return nil, nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrJournalMinLines)
	}
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrDescriptionMissing)
	}
	status := req.Status
	if status == "" {
		status = domain.Draft
	}
	if status != domain.Draft && status != domain.Posted {
		return nil, nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, status)
	}

	now := s.Now()
	entryID := uuid.NewString()
	lines := make([]domain.JournalEntryLine, len(req.Lines))
	accountIDs := make([]string, 0, len(req.Lines))
	for i, l := range req.Lines {
		lines[i] = domain.JournalEntryLine{
			LineID:       uuid.NewString(),
			EntryID:      entryID,
			AccountID:    l.AccountID,
			Description:  l.Description,
			DebitAmount:  l.DebitAmount,
			CreditAmount: l.CreditAmount,
			LineOrder:    i + 1,
		}
		accountIDs = append(accountIDs, l.AccountID)
	}
	if err := accounting.ValidateLines(lines); err != nil {
		return nil, nil, err
	}

	debits, credits := accounting.SumLines(lines)
	entry := domain.JournalEntry{
		EntryID:     entryID,
		CompanyID:   companyID,
		EntryDate:   domain.DateOnly(req.EntryDate),
		Reference:   strings.TrimSpace(req.Reference),
		Description: description,
		Status:      status,
		TotalDebit:  debits,
		TotalCredit: credits,
		AuditFields: domain.NewAuditFields(userID, now),
	}
	if err := accounting.ValidateBalance(entry, lines); err != nil {
		return nil, nil, err
	}
	if !debits.IsPositive() {
		return nil, nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrEntryZeroTotal)
	}

	if err := s.checkAccounts(ctx, companyID, accountIDs); err != nil {
		return nil, nil, err
	}

	tx, err := s.journalRepo.Begin(ctx)
	if err != nil {
		return nil, nil, err
	}
	defer rollback(ctx, s.journalRepo, tx, logger)

	if err := s.journalRepo.SaveEntryInTx(ctx, tx, entry, lines); err != nil {
		s.LogError(ctx, err, "Failed to save journal entry", slog.String("company_id", companyID))
		return nil, nil, fmt.Errorf("failed to save journal entry: %w", err)
	}
	if err := s.journalRepo.Commit(ctx, tx); err != nil {
		return nil, nil, err
	}

	logger.Info("Journal entry created",
		slog.String("entry_id", entryID),
		slog.String("company_id", companyID),
		slog.String("status", string(status)))
	return &entry, lines, nil
}

// checkAccounts ensures every referenced account belongs to the company and is active.
func (s *journalService) checkAccounts(ctx context.Context, companyID string, accountIDs []string) error {
	unique := uniqueStrings(accountIDs)
	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, companyID, unique)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch accounts for journal entry", slog.String("company_id", companyID))
		return fmt.Errorf("failed to fetch accounts: %w", err)
	}
	for _, id := range unique {
		acc, found := accounts[id]
		if !found {
			return fmt.Errorf("%w: %w: %s", apperrors.ErrValidation, ErrAccountNotInCompany, id)
		}
		if !acc.IsActive {
			return fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, id)
		}
	}
	return nil
}

func (s *journalService) GetJournalEntry(ctx context.Context, companyID string, entryID string) (*domain.JournalEntry, []domain.JournalEntryLine, error) {
	if err := s.RequireCompany(ctx, companyID); err != nil {
		return nil, nil, err
	}
	entry, err := s.journalRepo.FindEntryByID(ctx, companyID, entryID)
	if err != nil {
		return nil, nil, err
	}
	lines, err := s.journalRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch lines for journal entry", slog.String("entry_id", entryID))
		return nil, nil, fmt.Errorf("failed to retrieve lines for journal entry %s: %w", entryID, err)
	}
	return entry, lines, nil
}

func (s *journalService) ListJournalEntries(ctx context.Context, companyID string, params dto.ListJournalEntriesParams) (*dto.ListJournalEntriesResponse, error) {
	if err := s.RequireCompany(ctx, companyID); err != nil {
		return nil, err
	}
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	entries, nextToken, err := s.journalRepo.ListEntries(ctx, companyID, limit, params.NextToken)
	if err != nil {
		return nil, err
	}

	resp := &dto.ListJournalEntriesResponse{
		Entries:   make([]dto.JournalEntryResponse, 0, len(entries)),
		NextToken: nextToken,
	}
	for i := range entries {
		resp.Entries = append(resp.Entries, dto.ToJournalEntryResponse(&entries[i], nil))
	}
	return resp, nil
}

// PostJournalEntry moves a DRAFT entry to POSTED after re-checking its balance.
func (s *journalService) PostJournalEntry(ctx context.Context, companyID string, entryID string, userID string) (*domain.JournalEntry, error) {
	logger := s.GetLogger(ctx)
	if err := s.RequireCompany(ctx, companyID); err != nil {
		return nil, err
	}

	tx, err := s.journalRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer rollback(ctx, s.journalRepo, tx, logger)

	entry, err := s.journalRepo.FindEntryForUpdate(ctx, tx, companyID, entryID)
	if err != nil {
		return nil, err
	}
	if entry.Status == domain.Posted {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrConflict, ErrEntryAlreadyPosted)
	}

	lines, err := s.journalRepo.FindLinesInTx(ctx, tx, entryID)
	if err != nil {
		return nil, err
	}
	if err := accounting.ValidateBalance(*entry, lines); err != nil {
		return nil, err
	}

	now := s.Now()
	if err := s.journalRepo.MarkPostedInTx(ctx, tx, entryID, userID, now); err != nil {
		return nil, err
	}
	if err := s.journalRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	entry.Status = domain.Posted
	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = userID
	logger.Info("Journal entry posted", slog.String("entry_id", entryID))
	return entry, nil
}

// ReverseJournalEntry creates and posts the mirror of a posted entry and links
// both sides. The original's lines are left untouched. A second reversal of the
// same entry loses the compare-and-swap and fails with ErrConflict.
func (s *journalService) ReverseJournalEntry(ctx context.Context, companyID string, entryID string, userID string) (*domain.JournalEntry, error) {
	logger := s.GetLogger(ctx)
	if err := s.RequireCompany(ctx, companyID); err != nil {
		return nil, err
	}

	tx, err := s.journalRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer rollback(ctx, s.journalRepo, tx, logger)

	original, err := s.journalRepo.FindEntryForUpdate(ctx, tx, companyID, entryID)
	if err != nil {
		return nil, err
	}
	lines, err := s.journalRepo.FindLinesInTx(ctx, tx, entryID)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	reversal, reversalLines, err := accounting.BuildReversal(*original, lines, userID, now)
	if err != nil {
		return nil, err
	}

	if err := s.journalRepo.SaveEntryInTx(ctx, tx, reversal, reversalLines); err != nil {
		s.LogError(ctx, err, "Failed to save reversal entry", slog.String("original_entry_id", entryID))
		return nil, err
	}
	if err := s.journalRepo.MarkReversedInTx(ctx, tx, entryID, reversal.EntryID, reversal.EntryDate, userID, now); err != nil {
		return nil, err
	}
	if err := s.journalRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	logger.Info("Journal entry reversed",
		slog.String("original_entry_id", entryID),
		slog.String("reversal_entry_id", reversal.EntryID))
	return &reversal, nil
}

// DeleteJournalEntry applies the deletion policy under lock. Entries posted for a
// payment are kept unless malformed, in which case the payment link is cleared
// in the same transaction so the payment can be posted again.
func (s *journalService) DeleteJournalEntry(ctx context.Context, companyID string, entryID string, userID string) error {
	logger := s.GetLogger(ctx)
	if err := s.RequireCompany(ctx, companyID); err != nil {
		return err
	}

	tx, err := s.journalRepo.Begin(ctx)
	if err != nil {
		return err
	}
	defer rollback(ctx, s.journalRepo, tx, logger)

	state, err := s.journalRepo.LoadDeletionStateInTx(ctx, tx, companyID, entryID)
	if err != nil {
		return err
	}

	plan, err := accounting.EvaluateDeletion(*state)
	if err != nil {
		logger.Warn("Journal entry deletion blocked",
			slog.String("entry_id", entryID),
			slog.String("user_id", userID),
			slog.String("reason", err.Error()))
		return err
	}

	if plan.Action == accounting.UnlinkPaymentThenDelete {
		if err := s.paymentRepo.ClearJournalEntryInTx(ctx, tx, plan.PaymentID, entryID); err != nil {
			return err
		}
		logger.Warn("Unlinked malformed entry from payment",
			slog.String("entry_id", entryID),
			slog.String("payment_id", plan.PaymentID))
	}

	if err := s.journalRepo.DeleteEntryInTx(ctx, tx, entryID); err != nil {
		return err
	}
	if err := s.journalRepo.Commit(ctx, tx); err != nil {
		return err
	}

	logger.Info("Journal entry deleted", slog.String("entry_id", entryID), slog.String("user_id", userID))
	return nil
}

// uniqueStrings returns a slice with unique strings from the input, keeping order.
func uniqueStrings(input []string) []string {
	seen := make(map[string]struct{}, len(input))
	result := make([]string, 0, len(input))
	for _, val := range input {
		if _, ok := seen[val]; !ok {
			seen[val] = struct{}{}
			result = append(result, val)
		}
	}
	return result
}
