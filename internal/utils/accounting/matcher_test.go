package accounting_test

import (
	"testing"
	"time"

	"github.com/SscSPs/sitebooks_ledger/internal/apperrors"
	"github.com/SscSPs/sitebooks_ledger/internal/core/domain"
	"github.com/SscSPs/sitebooks_ledger/internal/utils/accounting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidate(kind domain.SourceKind, id string, day int, dir domain.Direction, amount string) domain.ReconciliationCandidate {
	return domain.ReconciliationCandidate{
		CandidateRef: domain.CandidateRef{SourceKind: kind, SourceID: id},
		Date:         time.Date(2024, 4, day, 0, 0, 0, 0, time.UTC),
		Direction:    dir,
		Amount:       dec(amount),
	}
}

func TestMatch(t *testing.T) {
	recon := domain.BankReconciliation{BeginningBalance: dec("1000"), EndingBalance: dec("1485")}
	candidates := []domain.ReconciliationCandidate{
		candidate(domain.SourcePayment, "p2", 9, domain.Withdrawal, "40"),
		candidate(domain.SourcePayment, "p1", 3, domain.Withdrawal, "515"),
		candidate(domain.SourceJournalLine, "l1", 5, domain.Deposit, "1000"),
	}
	cleared := map[string]bool{"PAYMENT:p1": true, "JOURNAL_LINE:l1": true}

	report := accounting.Match(recon, candidates, cleared)

	require.Len(t, report.Cleared, 2)
	assert.Equal(t, "p1", report.Cleared[0].SourceID, "sorted by date")
	assert.Equal(t, "l1", report.Cleared[1].SourceID)
	require.Len(t, report.Uncleared, 1)
	assert.Equal(t, "p2", report.Uncleared[0].SourceID)
	assert.True(t, dec("1000").Equal(report.ClearedDeposits))
	assert.True(t, dec("515").Equal(report.ClearedWithdrawals))
	assert.True(t, dec("1485").Equal(report.ClearedBalance))
	assert.True(t, report.IsBalanced())
}

func TestMatch_NothingCleared(t *testing.T) {
	recon := domain.BankReconciliation{BeginningBalance: dec("200"), EndingBalance: dec("150")}
	report := accounting.Match(recon, []domain.ReconciliationCandidate{
		candidate(domain.SourcePayment, "p1", 1, domain.Withdrawal, "50"),
	}, nil)

	assert.Empty(t, report.Cleared)
	assert.NotNil(t, report.Cleared)
	assert.Len(t, report.Uncleared, 1)
	assert.True(t, dec("200").Equal(report.ClearedBalance))
	assert.True(t, dec("-50").Equal(report.Difference))
	assert.False(t, report.IsBalanced())
}

func TestSelectionSet(t *testing.T) {
	candidates := []domain.ReconciliationCandidate{
		candidate(domain.SourcePayment, "p1", 1, domain.Withdrawal, "50"),
	}

	set, err := accounting.SelectionSet(candidates, []domain.CandidateRef{{SourceKind: domain.SourcePayment, SourceID: "p1"}})
	require.NoError(t, err)
	assert.True(t, set["PAYMENT:p1"])

	_, err = accounting.SelectionSet(candidates, []domain.CandidateRef{{SourceKind: domain.SourcePayment, SourceID: "nope"}})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = accounting.SelectionSet(candidates, []domain.CandidateRef{
		{SourceKind: domain.SourcePayment, SourceID: "p1"},
		{SourceKind: domain.SourcePayment, SourceID: "p1"},
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestItemSet(t *testing.T) {
	set := accounting.ItemSet([]domain.BankReconciliationItem{{SourceKind: domain.SourceJournalLine, SourceID: "l9"}})
	assert.True(t, set["JOURNAL_LINE:l9"])
	assert.Len(t, set, 1)
}
