package services

import (
	"fmt"

	"github.com/SscSPs/sitebooks_ledger/internal/core/domain"
	"github.com/SscSPs/sitebooks_ledger/internal/utils/money"
	"github.com/xuri/excelize/v2"
)

const (
	summarySheet   = "Summary"
	clearedSheet   = "Cleared"
	unclearedSheet = "Uncleared"
)

var candidateHeaders = []any{"Date", "Kind", "Source ID", "Description", "Reference", "Direction", "Amount"}

// renderReconciliationWorkbook writes a summary sheet plus one sheet per partition.
func renderReconciliationWorkbook(report *domain.ReconciliationReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}

	recon := report.Reconciliation
	summary := [][]any{
		{"Reconciliation ID", recon.ReconciliationID},
		{"Bank Account ID", recon.BankAccountID},
		{"Period Start", recon.PeriodStart.Format("2006-01-02")},
		{"Period End", recon.PeriodEnd.Format("2006-01-02")},
		{"Status", string(recon.Status)},
		{"Beginning Balance", money.FormatCents(recon.BeginningBalance)},
		{"Ending Balance", money.FormatCents(recon.EndingBalance)},
		{"Cleared Deposits", money.FormatCents(report.ClearedDeposits)},
		{"Cleared Withdrawals", money.FormatCents(report.ClearedWithdrawals)},
		{"Cleared Balance", money.FormatCents(report.ClearedBalance)},
		{"Difference", money.FormatCents(report.Difference)},
	}
	for i, row := range summary {
		if err := f.SetSheetRow(summarySheet, fmt.Sprintf("A%d", i+1), &row); err != nil {
			return nil, err
		}
	}
	if err := f.SetColWidth(summarySheet, "A", "A", 22); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(summarySheet, "B", "B", 40); err != nil {
		return nil, err
	}

	if err := writeCandidateSheet(f, clearedSheet, report.Cleared); err != nil {
		return nil, err
	}
	if err := writeCandidateSheet(f, unclearedSheet, report.Uncleared); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeCandidateSheet(f *excelize.File, sheet string, candidates []domain.ReconciliationCandidate) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, "A1", &candidateHeaders); err != nil {
		return err
	}
	for i, c := range candidates {
		row := []any{
			c.Date.Format("2006-01-02"),
			string(c.SourceKind),
			c.SourceID,
			c.Description,
			c.Reference,
			string(c.Direction),
			money.FormatSigned(c.Amount, c.Direction == domain.Withdrawal),
		}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return err
		}
	}

	widths := map[string]float64{"A": 12, "B": 14, "C": 38, "D": 40, "E": 18, "F": 12, "G": 14}
	for col, width := range widths {
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return err
		}
	}
	return nil
}
