package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/SscSPs/sitebooks_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/sitebooks_ledger/internal/core/ports/services"
	"github.com/SscSPs/sitebooks_ledger/internal/utils/money"
)

func newReconcileCommand(env Environment) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Inspect bank reconciliations",
	}
	cmd.AddCommand(newReconcileReportCommand(env))
	return cmd
}

func newReconcileReportCommand(env Environment) *cobra.Command {
	var companyID, reconciliationID string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the cleared and uncleared items of a reconciliation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd.Context(), env, func(svc *portssvc.ServiceContainer) error {
				report, err := svc.Reconciliation.GetReconciliationReport(cmd.Context(), companyID, reconciliationID)
				if err != nil {
					return fmt.Errorf("loading reconciliation %s: %w", reconciliationID, err)
				}
				return printReport(cmd.OutOrStdout(), report)
			})
		},
	}

	cmd.Flags().StringVar(&companyID, "company", "", "company id (required)")
	cmd.Flags().StringVar(&reconciliationID, "reconciliation", "", "reconciliation id (required)")
	_ = cmd.MarkFlagRequired("company")
	_ = cmd.MarkFlagRequired("reconciliation")

	return cmd
}

func printReport(w io.Writer, report *domain.ReconciliationReport) error {
	r := report.Reconciliation
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Reconciliation\t%s\n", r.ReconciliationID)
	fmt.Fprintf(tw, "Bank account\t%s\n", r.BankAccountID)
	fmt.Fprintf(tw, "Period\t%s to %s\n", r.PeriodStart.Format("2006-01-02"), r.PeriodEnd.Format("2006-01-02"))
	fmt.Fprintf(tw, "Status\t%s\n", r.Status)
	fmt.Fprintf(tw, "Beginning balance\t%s\n", money.FormatCents(r.BeginningBalance))
	fmt.Fprintf(tw, "Ending balance\t%s\n", money.FormatCents(r.EndingBalance))
	fmt.Fprintf(tw, "Cleared deposits\t%s\n", money.FormatCents(report.ClearedDeposits))
	fmt.Fprintf(tw, "Cleared withdrawals\t%s\n", money.FormatCents(report.ClearedWithdrawals))
	fmt.Fprintf(tw, "Cleared balance\t%s\n", money.FormatCents(report.ClearedBalance))
	fmt.Fprintf(tw, "Difference\t%s\n", money.FormatCents(report.Difference))

	writeItems(tw, "Cleared", report.Cleared)
	writeItems(tw, "Uncleared", report.Uncleared)
	return tw.Flush()
}

func writeItems(tw *tabwriter.Writer, title string, items []domain.ReconciliationCandidate) {
	fmt.Fprintf(tw, "\n%s (%d)\n", title, len(items))
	for _, item := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			item.Date.Format("2006-01-02"),
			item.SourceKind,
			item.SourceID,
			item.Description,
			money.FormatSigned(item.Amount, item.Direction == domain.Withdrawal))
	}
}
