package accounting

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/sitebooks_ledger/internal/apperrors"
	"github.com/SscSPs/sitebooks_ledger/internal/core/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SumLines totals the debit and credit sides of a set of lines.
func SumLines(lines []domain.JournalEntryLine) (decimal.Decimal, decimal.Decimal) {
	debits, credits := decimal.Zero, decimal.Zero
	for _, l := range lines {
		debits = debits.Add(l.DebitAmount)
		credits = credits.Add(l.CreditAmount)
	}
	return debits, credits
}

// ValidateLines checks that every line posts a positive amount to exactly one side.
func ValidateLines(lines []domain.JournalEntryLine) error {
	for i, l := range lines {
		if l.AccountID == "" {
			return fmt.Errorf("%w: line %d has no account", apperrors.ErrValidation, i+1)
		}
		if l.DebitAmount.IsNegative() || l.CreditAmount.IsNegative() {
			return fmt.Errorf("%w: line %d has a negative amount", apperrors.ErrValidation, i+1)
		}
		if !l.DebitAmount.IsZero() && !l.CreditAmount.IsZero() {
			return fmt.Errorf("%w: line %d has both a debit and a credit", apperrors.ErrValidation, i+1)
		}
		if l.DebitAmount.IsZero() && l.CreditAmount.IsZero() {
			return fmt.Errorf("%w: line %d has no amount", apperrors.ErrValidation, i+1)
		}
	}
	return nil
}

// ValidateBalance checks that debits equal credits across the lines and that
// both sums equal the totals stored on the entry.
func ValidateBalance(entry domain.JournalEntry, lines []domain.JournalEntryLine) error {
	debits, credits := SumLines(lines)
	if !debits.Equal(credits) || !debits.Equal(entry.TotalDebit) || !credits.Equal(entry.TotalCredit) {
		return &apperrors.UnbalancedEntryError{EntryID: entry.EntryID, Debits: debits, Credits: credits}
	}
	return nil
}

// PaymentAccounts are the resolved accounts for posting one payment.
// FeeID is empty when no fee account could be resolved.
type PaymentAccounts struct {
	AccountsPayableID string
	CashID            string
	FeeID             string
}

// CompiledEntry is an entry with its lines, ready to persist.
type CompiledEntry struct {
	Entry    domain.JournalEntry
	Lines    []domain.JournalEntryLine
	Warnings []string
}

// CompilePaymentEntry builds the posted entry for a payment: debit payables and
// credit cash for the amount, then, when a fee account is known, debit the fee
// account and credit cash for the bank fee.
func CompilePaymentEntry(p domain.Payment, accounts PaymentAccounts, actor string, now time.Time) (*CompiledEntry, error) {
	if !p.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}
	if p.BankFee.IsNegative() {
		return nil, fmt.Errorf("%w: bank fee cannot be negative", apperrors.ErrValidation)
	}
	if accounts.AccountsPayableID == "" {
		return nil, &apperrors.AccountResolutionError{CompanyID: p.CompanyID, Role: string(domain.RoleAccountsPayable), SubjectID: p.PayeeID}
	}
	if accounts.CashID == "" {
		subject := ""
		if p.BankAccountID != nil {
			subject = *p.BankAccountID
		}
		return nil, &apperrors.AccountResolutionError{CompanyID: p.CompanyID, Role: string(domain.RoleCash), SubjectID: subject}
	}

	entryID := uuid.NewString()
	memo := paymentDescription(p)
	compiled := &CompiledEntry{}
	addLine := func(accountID, description string, debit, credit decimal.Decimal) {
		compiled.Lines = append(compiled.Lines, domain.JournalEntryLine{
			LineID:       uuid.NewString(),
			EntryID:      entryID,
			AccountID:    accountID,
			Description:  description,
			DebitAmount:  debit,
			CreditAmount: credit,
			LineOrder:    len(compiled.Lines) + 1,
		})
	}

	addLine(accounts.AccountsPayableID, memo, p.Amount, decimal.Zero)
	addLine(accounts.CashID, memo, decimal.Zero, p.Amount)

	if p.HasFee() {
		if accounts.FeeID != "" {
			feeMemo := "Bank fee: " + memo
			addLine(accounts.FeeID, feeMemo, p.BankFee, decimal.Zero)
			addLine(accounts.CashID, feeMemo, decimal.Zero, p.BankFee)
		} else {
			compiled.Warnings = append(compiled.Warnings,
				fmt.Sprintf("bank fee %s not posted: no %s account mapped", p.BankFee.StringFixed(2), domain.RoleFeeExpense))
		}
	}

	debits, credits := SumLines(compiled.Lines)
	compiled.Entry = domain.JournalEntry{
		EntryID:     entryID,
		CompanyID:   p.CompanyID,
		EntryDate:   domain.DateOnly(p.PaymentDate),
		Reference:   paymentReference(p),
		Description: memo,
		Status:      domain.Posted,
		TotalDebit:  debits,
		TotalCredit: credits,
		AuditFields: domain.NewAuditFields(actor, now),
	}

	if err := ValidateBalance(compiled.Entry, compiled.Lines); err != nil {
		return nil, err
	}
	return compiled, nil
}

func paymentDescription(p domain.Payment) string {
	kind := "vendor"
	if p.PayeeKind == domain.PayeeCreditCard {
		kind = "credit card"
	}
	desc := fmt.Sprintf("Payment to %s %s by %s", kind, p.PayeeID, strings.ToLower(string(p.Method)))
	if p.Memo != "" {
		desc += " - " + p.Memo
	}
	return desc
}

func paymentReference(p domain.Payment) string {
	if p.Reference != "" {
		return p.Reference
	}
	return "PMT-" + shortID(p.PaymentID)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// BuildReversal mirrors a posted entry line for line with debit and credit
// swapped. The reversal points back at the original and is dated on the day
// of reversal; the original's lines are never touched.
func BuildReversal(original domain.JournalEntry, lines []domain.JournalEntryLine, actor string, now time.Time) (domain.JournalEntry, []domain.JournalEntryLine, error) {
	if original.Status != domain.Posted {
		return domain.JournalEntry{}, nil, fmt.Errorf("%w: only posted entries can be reversed", apperrors.ErrValidation)
	}
	if original.IsReversed() {
		return domain.JournalEntry{}, nil, fmt.Errorf("%w: entry %s was already reversed by %s", apperrors.ErrConflict, original.EntryID, *original.ReversedByEntryID)
	}
	if len(lines) == 0 {
		return domain.JournalEntry{}, nil, fmt.Errorf("%w: entry %s has no lines to reverse", apperrors.ErrValidation, original.EntryID)
	}

	originalID := original.EntryID
	reversal := domain.JournalEntry{
		EntryID:           uuid.NewString(),
		CompanyID:         original.CompanyID,
		EntryDate:         domain.DateOnly(now),
		Reference:         "REV-" + reversalReference(original),
		Description:       "Reversal of: " + original.Description,
		Status:            domain.Posted,
		TotalDebit:        original.TotalCredit,
		TotalCredit:       original.TotalDebit,
		ReversalOfEntryID: &originalID,
		AuditFields:       domain.NewAuditFields(actor, now),
	}

	mirrored := make([]domain.JournalEntryLine, len(lines))
	for i, l := range lines {
		mirrored[i] = domain.JournalEntryLine{
			LineID:       uuid.NewString(),
			EntryID:      reversal.EntryID,
			AccountID:    l.AccountID,
			Description:  l.Description,
			DebitAmount:  l.CreditAmount,
			CreditAmount: l.DebitAmount,
			LineOrder:    l.LineOrder,
		}
	}

	if err := ValidateBalance(reversal, mirrored); err != nil {
		return domain.JournalEntry{}, nil, err
	}
	return reversal, mirrored, nil
}

func reversalReference(e domain.JournalEntry) string {
	if e.Reference != "" {
		return e.Reference
	}
	return shortID(e.EntryID)
}
