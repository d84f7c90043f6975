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

// ErrPaymentAlreadyPosted is returned when another caller claimed the payment first.
var ErrPaymentAlreadyPosted = errors.New("payment already has a journal entry")

const defaultBackfillLimit = 100

// paymentService records payments and compiles their journal entries.
type paymentService struct {
	BaseService
	paymentRepo  portsrepo.PaymentRepositoryWithTx
	journalRepo  portsrepo.JournalRepositoryWithTx
	bankAccounts portsrepo.BankAccountStore
	resolver     portssvc.AccountResolverSvc
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(
	paymentRepo portsrepo.PaymentRepositoryWithTx,
	journalRepo portsrepo.JournalRepositoryWithTx,
	bankAccounts portsrepo.BankAccountStore,
	resolver portssvc.AccountResolverSvc,
	opts ...Option,
) portssvc.PaymentSvcFacade {
	svc := &paymentService{
		paymentRepo:  paymentRepo,
		journalRepo:  journalRepo,
		bankAccounts: bankAccounts,
		resolver:     resolver,
	}
	svc.apply(opts)
	return svc
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

// CreatePayment stores the payment and posts it eagerly. The payment is kept
// even when posting fails; the failure is reported on the result and a later
// read or backfill retries it.
func (s *paymentService) CreatePayment(ctx context.Context, companyID string, req dto.CreatePaymentRequest, userID string) (*domain.PostingResult, error) {
	if err := s.RequireCompany(ctx, companyID); err != nil {
		return nil, err
	}
	if err := validatePaymentRequest(req); err != nil {
		return nil, err
	}

	var bankAccountID *string
	if req.BankAccountID != nil && strings.TrimSpace(*req.BankAccountID) != "" {
		id := strings.TrimSpace(*req.BankAccountID)
		if _, err := s.bankAccounts.FindBankAccountByID(ctx, companyID, id); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: bank account %s not found in company", apperrors.ErrValidation, id)
			}
			return nil, err
		}
		bankAccountID = &id
	}

	payment := domain.Payment{
		PaymentID:     uuid.NewString(),
		CompanyID:     companyID,
		PayeeKind:     req.PayeeKind,
		PayeeID:       strings.TrimSpace(req.PayeeID),
		Amount:        req.Amount,
		PaymentDate:   domain.DateOnly(req.PaymentDate),
		Method:        req.Method,
		BankAccountID: bankAccountID,
		BankFee:       req.BankFee,
		Reference:     strings.TrimSpace(req.Reference),
		Memo:          req.Memo,
		AuditFields:   domain.NewAuditFields(userID, s.Now()),
	}
	if err := s.paymentRepo.SavePayment(ctx, payment); err != nil {
		s.LogError(ctx, err, "Failed to save payment", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}
	s.LogInfo(ctx, "Payment recorded",
		slog.String("payment_id", payment.PaymentID),
		slog.String("amount", payment.Amount.String()))

	return s.postOrReport(ctx, payment, userID)
}

func validatePaymentRequest(req dto.CreatePaymentRequest) error {
	switch req.PayeeKind {
	case domain.PayeeVendor, domain.PayeeCreditCard:
	default:
		return fmt.Errorf("%w: unknown payee kind %q", apperrors.ErrValidation, req.PayeeKind)
	}
	if strings.TrimSpace(req.PayeeID) == "" {
		return fmt.Errorf("%w: payee id is required", apperrors.ErrValidation)
	}
	if !req.Amount.IsPositive() {
		return fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}
	if req.BankFee.IsNegative() {
		return fmt.Errorf("%w: bank fee cannot be negative", apperrors.ErrValidation)
	}
	if req.PaymentDate.IsZero() {
		return fmt.Errorf("%w: payment date is required", apperrors.ErrValidation)
	}
	return nil
}

// GetPayment returns the payment and, when it has no entry yet, posts it first.
func (s *paymentService) GetPayment(ctx context.Context, companyID string, paymentID string, userID string) (*domain.PostingResult, error) {
	if err := s.RequireCompany(ctx, companyID); err != nil {
		return nil, err
	}
	payment, err := s.paymentRepo.FindPaymentByID(ctx, companyID, paymentID)
	if err != nil {
		return nil, err
	}
	if payment.IsPosted() {
		return s.postedResult(ctx, *payment)
	}
	return s.postOrReport(ctx, *payment, userID)
}

func (s *paymentService) ListPayments(ctx context.Context, companyID string, limit int, offset int) ([]domain.Payment, error) {
	if err := s.RequireCompany(ctx, companyID); err != nil {
		return nil, err
	}
	return s.paymentRepo.ListPayments(ctx, companyID, limit, offset)
}

// PostPayment posts the payment. Posting a payment that already has an entry
// returns that entry; the payment never gets a second one.
func (s *paymentService) PostPayment(ctx context.Context, companyID string, paymentID string, userID string) (*domain.PostingResult, error) {
	if err := s.RequireCompany(ctx, companyID); err != nil {
		return nil, err
	}
	payment, err := s.paymentRepo.FindPaymentByID(ctx, companyID, paymentID)
	if err != nil {
		return nil, err
	}
	if payment.IsPosted() {
		return s.postedResult(ctx, *payment)
	}

	result, err := s.post(ctx, *payment, userID)
	if errors.Is(err, ErrPaymentAlreadyPosted) {
		return s.reloadPosted(ctx, companyID, paymentID)
	}
	return result, err
}

// BackfillPayments posts every payment that still lacks an entry, oldest first.
func (s *paymentService) BackfillPayments(ctx context.Context, companyID string, limit int, userID string) (*domain.BackfillResult, error) {
	if err := s.RequireCompany(ctx, companyID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultBackfillLimit
	}

	payments, err := s.paymentRepo.ListUnpostedPayments(ctx, companyID, limit)
	if err != nil {
		return nil, err
	}

	result := &domain.BackfillResult{Scanned: len(payments)}
	for _, p := range payments {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		_, err := s.post(ctx, p, userID)
		switch {
		case err == nil:
			result.Posted++
		case errors.Is(err, ErrPaymentAlreadyPosted):
			result.AlreadyPosted++
		default:
			result.Failed++
			result.Failures = append(result.Failures, domain.BackfillFailure{PaymentID: p.PaymentID, Error: err.Error()})
		}
	}

	s.LogInfo(ctx, "Payment backfill finished",
		slog.String("company_id", companyID),
		slog.Int("scanned", result.Scanned),
		slog.Int("posted", result.Posted),
		slog.Int("already_posted", result.AlreadyPosted),
		slog.Int("failed", result.Failed))
	return result, nil
}

// postOrReport posts the payment and turns a posting failure into a result field.
func (s *paymentService) postOrReport(ctx context.Context, payment domain.Payment, userID string) (*domain.PostingResult, error) {
	result, err := s.post(ctx, payment, userID)
	if err == nil {
		return result, nil
	}
	if errors.Is(err, ErrPaymentAlreadyPosted) {
		return s.reloadPosted(ctx, payment.CompanyID, payment.PaymentID)
	}
	s.LogWarn(ctx, "Payment stored without journal entry",
		slog.String("payment_id", payment.PaymentID),
		slog.String("error", err.Error()))
	return &domain.PostingResult{Payment: payment, Error: err.Error()}, nil
}

// post resolves the accounts, compiles the entry, then writes the entry and
// claims the payment in one transaction. Losing the claim rolls the entry back.
func (s *paymentService) post(ctx context.Context, payment domain.Payment, userID string) (*domain.PostingResult, error) {
	logger := s.GetLogger(ctx)

	accounts, err := s.resolvePaymentAccounts(ctx, payment)
	if err != nil {
		return nil, err
	}

	compiled, err := accounting.CompilePaymentEntry(payment, accounts, userID, s.Now())
	if err != nil {
		return nil, err
	}
	for _, w := range compiled.Warnings {
		logger.Warn("Payment posted with warning", slog.String("payment_id", payment.PaymentID), slog.String("warning", w))
	}

	tx, err := s.journalRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer rollback(ctx, s.journalRepo, tx, logger)

	if err := s.journalRepo.SaveEntryInTx(ctx, tx, compiled.Entry, compiled.Lines); err != nil {
		return nil, err
	}
	claimed, err := s.paymentRepo.ClaimJournalEntryInTx(ctx, tx, payment.PaymentID, compiled.Entry.EntryID)
	if err != nil {
		return nil, err
	}
	if !claimed {
		logger.Info("Payment was posted concurrently, discarding entry", slog.String("payment_id", payment.PaymentID))
		return nil, fmt.Errorf("%w: %w", apperrors.ErrConflict, ErrPaymentAlreadyPosted)
	}
	if err := s.journalRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	entryID := compiled.Entry.EntryID
	payment.JournalEntryID = &entryID
	logger.Info("Payment posted",
		slog.String("payment_id", payment.PaymentID),
		slog.String("entry_id", entryID))
	return &domain.PostingResult{Payment: payment, Entry: &compiled.Entry, Warnings: compiled.Warnings}, nil
}

// resolvePaymentAccounts fills the cash, payables and fee roles. Cash is keyed by
// the bank account with no fallback; a missing fee account only drops the fee lines.
func (s *paymentService) resolvePaymentAccounts(ctx context.Context, payment domain.Payment) (accounting.PaymentAccounts, error) {
	var accounts accounting.PaymentAccounts

	if payment.BankAccountID == nil {
		return accounts, &apperrors.AccountResolutionError{CompanyID: payment.CompanyID, Role: string(domain.RoleCash)}
	}
	bankAccountID := *payment.BankAccountID

	cashID, err := s.resolver.ResolveAccount(ctx, payment.CompanyID, domain.RoleCash, bankAccountID)
	if err != nil {
		return accounts, err
	}
	accounts.CashID = cashID

	apID, err := s.resolver.ResolveAccount(ctx, payment.CompanyID, domain.RoleAccountsPayable, payment.PayeeID)
	if err != nil {
		return accounts, err
	}
	accounts.AccountsPayableID = apID

	if payment.HasFee() {
		feeID, err := s.resolver.ResolveAccount(ctx, payment.CompanyID, domain.RoleFeeExpense, bankAccountID)
		var resolutionErr *apperrors.AccountResolutionError
		switch {
		case err == nil:
			accounts.FeeID = feeID
		case errors.As(err, &resolutionErr):
			// compiled without fee lines; the compiler reports the warning
		default:
			return accounts, err
		}
	}
	return accounts, nil
}

func (s *paymentService) postedResult(ctx context.Context, payment domain.Payment) (*domain.PostingResult, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, payment.CompanyID, *payment.JournalEntryID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load payment entry",
			slog.String("payment_id", payment.PaymentID),
			slog.String("entry_id", *payment.JournalEntryID))
		return nil, err
	}
	return &domain.PostingResult{Payment: payment, Entry: entry}, nil
}

func (s *paymentService) reloadPosted(ctx context.Context, companyID, paymentID string) (*domain.PostingResult, error) {
	payment, err := s.paymentRepo.FindPaymentByID(ctx, companyID, paymentID)
	if err != nil {
		return nil, err
	}
	if !payment.IsPosted() {
		return nil, fmt.Errorf("%w: payment %s lost its entry while posting", apperrors.ErrConflict, paymentID)
	}
	return s.postedResult(ctx, *payment)
}
