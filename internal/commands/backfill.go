package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	portssvc "github.com/SscSPs/sitebooks_ledger/internal/core/ports/services"
)

func newBackfillCommand(env Environment) *cobra.Command {
	var companyID, actor string
	var limit int

	cmd := &cobra.Command{
		Use:   "backfill",
		Short: "Post every payment that has no journal entry yet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd.Context(), env, func(svc *portssvc.ServiceContainer) error {
				result, err := svc.Payment.BackfillPayments(cmd.Context(), companyID, limit, actor)
				if err != nil {
					return fmt.Errorf("backfilling payments: %w", err)
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "scanned %d, posted %d, already posted %d, failed %d\n",
					result.Scanned, result.Posted, result.AlreadyPosted, result.Failed)
				for _, f := range result.Failures {
					fmt.Fprintf(out, "  %s: %s\n", f.PaymentID, f.Error)
				}
				if result.Failed > 0 {
					return fmt.Errorf("%d payments could not be posted", result.Failed)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&companyID, "company", "", "company id (required)")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum payments to post (0 uses the service default)")
	cmd.Flags().StringVar(&actor, "actor", defaultActor, "user id recorded on the created entries")
	_ = cmd.MarkFlagRequired("company")

	return cmd
}
