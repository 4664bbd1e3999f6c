package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var sequenceCmd = &cobra.Command{
	Use:   "sequence",
	Short: "Manage document numbering sequences",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return requireFinance()
	},
}

var sequenceResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the numbering counter for a document type and year/month",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		docType, _ := cmd.Flags().GetString("type")
		year, _ := cmd.Flags().GetInt("year")
		month, _ := cmd.Flags().GetInt("month")
		reason, _ := cmd.Flags().GetString("reason")
		if docType == "" || year == 0 || month == 0 {
			return fmt.Errorf("--type, --year and --month are required")
		}

		target := fmt.Sprintf("%s/%d/%02d", docType, year, month)
		return mutate(cmd, "sequence", "reset", target, reason, func(ctx context.Context) error {
			return client.ResetSequence(ctx, docType, year, month, reason)
		})
	},
}

func init() {
	rootCmd.AddCommand(sequenceCmd)
	sequenceCmd.AddCommand(sequenceResetCmd)

	sequenceResetCmd.Flags().String("type", "", "Document type (invoice, credit-note)")
	sequenceResetCmd.Flags().Int("year", 0, "Sequence year")
	sequenceResetCmd.Flags().Int("month", 0, "Sequence month")
	sequenceResetCmd.Flags().StringP("reason", "r", "", "Justification, recorded in the audit trail (required)")
}
