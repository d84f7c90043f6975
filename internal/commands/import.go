package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	portssvc "github.com/SscSPs/sitebooks_ledger/internal/core/ports/services"
)

const defaultActor = "sitebooksctl"

func newImportCommand(env Environment) *cobra.Command {
	var companyID, cardID, file, actor string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a credit card statement (CSV or XLSX)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("reading statement: %w", err)
			}

			return withServices(cmd.Context(), env, func(svc *portssvc.ServiceContainer) error {
				result, err := svc.Import.ImportStatement(cmd.Context(), companyID, cardID, filepath.Base(file), data, actor)
				if err != nil {
					return fmt.Errorf("importing %s: %w", file, err)
				}
				env.Logger.Info("Statement imported", slog.String("card_id", cardID), slog.Int("imported", result.ImportedCount))

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "format:     %s\n", result.Format)
				fmt.Fprintf(out, "imported:   %d\n", result.ImportedCount)
				fmt.Fprintf(out, "duplicates: %d\n", result.DuplicateCount)
				fmt.Fprintf(out, "skipped:    %d\n", result.SkippedCount)
				fmt.Fprintf(out, "excluded:   %d\n", result.ExcludedCount)
				if result.Message != "" {
					fmt.Fprintln(out, result.Message)
				}
				for _, rowErr := range result.RowErrors {
					fmt.Fprintf(out, "  %s\n", rowErr)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&companyID, "company", "", "company id (required)")
	cmd.Flags().StringVar(&cardID, "card", "", "credit card id (required)")
	cmd.Flags().StringVar(&file, "file", "", "statement file path (required)")
	cmd.Flags().StringVar(&actor, "actor", defaultActor, "user id recorded as the importer")
	_ = cmd.MarkFlagRequired("company")
	_ = cmd.MarkFlagRequired("card")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
