package accounting

import (
	"fmt"
	"sort"

	"github.com/SscSPs/sitebooks_ledger/internal/apperrors"
	"github.com/SscSPs/sitebooks_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Match partitions candidates into cleared and uncleared and computes
// clearedBalance = beginning + cleared deposits - cleared withdrawals.
// It is a pure read-side aggregation.
func Match(recon domain.BankReconciliation, candidates []domain.ReconciliationCandidate, cleared map[string]bool) domain.ReconciliationReport {
	report := domain.ReconciliationReport{
		Reconciliation:     recon,
		Cleared:            []domain.ReconciliationCandidate{},
		Uncleared:          []domain.ReconciliationCandidate{},
		ClearedDeposits:    decimal.Zero,
		ClearedWithdrawals: decimal.Zero,
	}

	for _, c := range candidates {
		if !cleared[c.Key()] {
			report.Uncleared = append(report.Uncleared, c)
			continue
		}
		report.Cleared = append(report.Cleared, c)
		if c.Direction == domain.Deposit {
			report.ClearedDeposits = report.ClearedDeposits.Add(c.Amount)
		} else {
			report.ClearedWithdrawals = report.ClearedWithdrawals.Add(c.Amount)
		}
	}

	sortCandidates(report.Cleared)
	sortCandidates(report.Uncleared)

	report.ClearedBalance = recon.BeginningBalance.Add(report.ClearedDeposits).Sub(report.ClearedWithdrawals)
	report.Difference = recon.EndingBalance.Sub(report.ClearedBalance)
	return report
}

// SelectionSet turns a list of references into the lookup Match expects,
// rejecting references that are not candidates or repeat.
func SelectionSet(candidates []domain.ReconciliationCandidate, refs []domain.CandidateRef) (map[string]bool, error) {
	known := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		known[c.Key()] = true
	}
	selected := make(map[string]bool, len(refs))
	for _, ref := range refs {
		key := ref.Key()
		if !known[key] {
			return nil, fmt.Errorf("%w: %s %s is not eligible for this reconciliation", apperrors.ErrValidation, ref.SourceKind, ref.SourceID)
		}
		if selected[key] {
			return nil, fmt.Errorf("%w: %s %s selected twice", apperrors.ErrValidation, ref.SourceKind, ref.SourceID)
		}
		selected[key] = true
	}
	return selected, nil
}

// ItemSet builds the lookup Match expects from the items of a closed session.
func ItemSet(items []domain.BankReconciliationItem) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item.Ref().Key()] = true
	}
	return set
}

func sortCandidates(cs []domain.ReconciliationCandidate) {
	sort.SliceStable(cs, func(i, j int) bool {
		if !cs[i].Date.Equal(cs[j].Date) {
			return cs[i].Date.Before(cs[j].Date)
		}
		return cs[i].Key() < cs[j].Key()
	})
}
