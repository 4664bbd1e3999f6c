package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/arjunaarunatheym-jpg/MddrcFinanceHR-sub001/pkg/render"
)

var invoicesCmd = &cobra.Command{
	Use:   "invoices",
	Short: "Manage invoices",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return requireFinance()
	},
}

var invoicesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List invoices by status and search term",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		status, _ := cmd.Flags().GetString("status")
		search, _ := cmd.Flags().GetString("search")

		invoices, err := client.ListInvoices(cmd.Context(), status, search)
		if err != nil {
			return err
		}

		outputFlags, _ := cmd.Flags().GetString("output")
		if outputFlags != "" {
			lines := make([]render.Line, 0, len(invoices))
			for _, inv := range invoices {
				lines = append(lines, render.Line{
					'i': inv.ID,
					'n': inv.Number,
					'c': inv.CompanyName,
					's': inv.Status,
					'a': strconv.FormatFloat(inv.Amount, 'f', 2, 64),
					't': inv.IssuedDate,
				})
			}
			return render.PrintLines(os.Stdout, lines, outputFlags, lineDelimiter())
		}

		rows := make([][]string, 0, len(invoices))
		for _, inv := range invoices {
			rows = append(rows, []string{
				inv.ID, inv.Number, inv.CompanyName, inv.Status,
				strconv.FormatFloat(inv.Amount, 'f', 2, 64), inv.IssuedDate,
			})
		}
		render.Table(os.Stdout, []string{"ID", "NUMBER", "COMPANY", "STATUS", "AMOUNT", "ISSUED"}, rows)
		return nil
	},
}

var invoicesVoidCmd = &cobra.Command{
	Use:   "void <invoice-id>",
	Short: "Void an invoice",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		reason, _ := cmd.Flags().GetString("reason")
		return mutate(cmd, "invoices", "void", args[0], reason, func(ctx context.Context) error {
			return client.VoidInvoice(ctx, args[0], reason)
		})
	},
}

var invoicesBackdateCmd = &cobra.Command{
	Use:   "backdate <invoice-id>",
	Short: "Change an invoice's issued date",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		reason, _ := cmd.Flags().GetString("reason")
		date, _ := cmd.Flags().GetString("date")
		if date == "" {
			return fmt.Errorf("--date is required")
		}
		return mutate(cmd, "invoices", "backdate", args[0], reason, func(ctx context.Context) error {
			return client.BackdateInvoice(ctx, args[0], date, reason)
		})
	},
}

var invoicesNumberCmd = &cobra.Command{
	Use:   "number <invoice-id>",
	Short: "Reassign an invoice's year/month/sequence number components",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		reason, _ := cmd.Flags().GetString("reason")
		year, _ := cmd.Flags().GetInt("year")
		month, _ := cmd.Flags().GetInt("month")
		sequence, _ := cmd.Flags().GetInt("sequence")
		if year == 0 || month == 0 || sequence == 0 {
			return fmt.Errorf("--year, --month and --sequence are required")
		}
		return mutate(cmd, "invoices", "number", args[0], reason, func(ctx context.Context) error {
			return client.EditInvoiceNumber(ctx, args[0], year, month, sequence, reason)
		})
	},
}

var invoicesOverrideCmd = &cobra.Command{
	Use:   "override <invoice-id>",
	Short: "Override an invoice's computed amount with a manual value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		reason, _ := cmd.Flags().GetString("reason")
		amount, _ := cmd.Flags().GetFloat64("amount")
		return mutate(cmd, "invoices", "override", args[0], reason, func(ctx context.Context) error {
			return client.OverrideInvoice(ctx, args[0], amount, reason)
		})
	},
}

var invoicesEditPaidCmd = &cobra.Command{
	Use:   "edit-paid <invoice-id>",
	Short: "Edit an invoice that has already been marked paid",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		reason, _ := cmd.Flags().GetString("reason")
		fields, _ := cmd.Flags().GetStringToString("set")
		if len(fields) == 0 {
			return fmt.Errorf("nothing to edit, pass --set field=value")
		}
		return mutate(cmd, "invoices", "edit-paid", args[0], reason, func(ctx context.Context) error {
			return client.EditPaidInvoice(ctx, args[0], fields, reason)
		})
	},
}

func init() {
	rootCmd.AddCommand(invoicesCmd)
	invoicesCmd.AddCommand(invoicesListCmd, invoicesVoidCmd, invoicesBackdateCmd, invoicesNumberCmd, invoicesOverrideCmd, invoicesEditPaidCmd)

	invoicesListCmd.Flags().String("status", "all", "Invoice status (draft, issued, paid, void)")
	invoicesListCmd.Flags().String("search", "", "Search by number or company")
	invoicesListCmd.Flags().StringP("output", "o", "", "Line output flags instead of a table. Supported: i (id), n (number), c (company), s (status), a (amount), t (issued date). Example: -o ns")

	for _, c := range []*cobra.Command{invoicesVoidCmd, invoicesBackdateCmd, invoicesNumberCmd, invoicesOverrideCmd, invoicesEditPaidCmd} {
		c.Flags().StringP("reason", "r", "", "Justification, recorded in the audit trail (required)")
	}
	invoicesBackdateCmd.Flags().String("date", "", "New issued date (YYYY-MM-DD)")
	invoicesNumberCmd.Flags().Int("year", 0, "Number year component")
	invoicesNumberCmd.Flags().Int("month", 0, "Number month component")
	invoicesNumberCmd.Flags().Int("sequence", 0, "Number sequence component")
	invoicesOverrideCmd.Flags().Float64("amount", 0, "Manual invoice amount")
	invoicesEditPaidCmd.Flags().StringToString("set", nil, "Fields to change, e.g. --set paid_date=2026-02-01")
}
