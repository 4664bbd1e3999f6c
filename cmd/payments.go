package cmd

import (
	"context"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/arjunaarunatheym-jpg/MddrcFinanceHR-sub001/pkg/render"
)

var paymentsCmd = &cobra.Command{
	Use:   "payments",
	Short: "Manage recorded payments",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return requireFinance()
	},
}

var paymentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List payments",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		payments, err := client.ListPayments(cmd.Context(), filtersFromFlags(cmd))
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(payments))
		for _, p := range payments {
			rows = append(rows, []string{
				p.ID, p.InvoiceNumber, strconv.FormatFloat(p.Amount, 'f', 2, 64),
				p.Method, p.Reference, p.PaidDate,
			})
		}
		render.Table(os.Stdout, []string{"ID", "INVOICE", "AMOUNT", "METHOD", "REFERENCE", "PAID"}, rows)
		return nil
	},
}

var paymentsDeleteCmd = &cobra.Command{
	Use:   "delete <payment-id>",
	Short: "Delete a recorded payment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		reason, _ := cmd.Flags().GetString("reason")
		return mutate(cmd, "payments", "delete", args[0], reason, func(ctx context.Context) error {
			return client.DeletePayment(ctx, args[0], reason)
		})
	},
}

func init() {
	rootCmd.AddCommand(paymentsCmd)
	paymentsCmd.AddCommand(paymentsListCmd, paymentsDeleteCmd)

	addFilterFlags(paymentsListCmd)
	paymentsDeleteCmd.Flags().StringP("reason", "r", "", "Justification, recorded in the audit trail (required)")
}
