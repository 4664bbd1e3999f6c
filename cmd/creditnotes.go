package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/arjunaarunatheym-jpg/MddrcFinanceHR-sub001/pkg/render"
)

var creditNotesCmd = &cobra.Command{
	Use:     "credit-notes",
	Aliases: []string{"cn"},
	Short:   "Manage credit notes",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return requireFinance()
	},
}

var creditNotesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List credit notes",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		notes, err := client.ListCreditNotes(cmd.Context(), filtersFromFlags(cmd))
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(notes))
		for _, cn := range notes {
			rows = append(rows, []string{
				cn.ID, cn.Number, cn.InvoiceNumber, cn.Status,
				strconv.FormatFloat(cn.Amount, 'f', 2, 64), cn.IssuedDate,
			})
		}
		render.Table(os.Stdout, []string{"ID", "NUMBER", "INVOICE", "STATUS", "AMOUNT", "ISSUED"}, rows)
		return nil
	},
}

var creditNotesEditCmd = &cobra.Command{
	Use:   "edit <credit-note-id>",
	Short: "Edit a credit note's fields",
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
		return mutate(cmd, "credit-notes", "edit", args[0], reason, func(ctx context.Context) error {
			return client.EditCreditNote(ctx, args[0], fields, reason)
		})
	},
}

var creditNotesBackdateCmd = &cobra.Command{
	Use:   "backdate <credit-note-id>",
	Short: "Change a credit note's issued date",
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
		return mutate(cmd, "credit-notes", "backdate", args[0], reason, func(ctx context.Context) error {
			return client.BackdateCreditNote(ctx, args[0], date, reason)
		})
	},
}

var creditNotesNumberCmd = &cobra.Command{
	Use:   "number <credit-note-id>",
	Short: "Reassign a credit note's year/month/sequence number components",
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
		return mutate(cmd, "credit-notes", "number", args[0], reason, func(ctx context.Context) error {
			return client.EditCreditNoteNumber(ctx, args[0], year, month, sequence, reason)
		})
	},
}

var creditNotesVoidCmd = &cobra.Command{
	Use:   "void <credit-note-id>",
	Short: "Void a credit note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		reason, _ := cmd.Flags().GetString("reason")
		return mutate(cmd, "credit-notes", "void", args[0], reason, func(ctx context.Context) error {
			return client.VoidCreditNote(ctx, args[0], reason)
		})
	},
}

func init() {
	rootCmd.AddCommand(creditNotesCmd)
	creditNotesCmd.AddCommand(creditNotesListCmd, creditNotesEditCmd, creditNotesBackdateCmd, creditNotesNumberCmd, creditNotesVoidCmd)

	addFilterFlags(creditNotesListCmd)

	for _, c := range []*cobra.Command{creditNotesEditCmd, creditNotesBackdateCmd, creditNotesNumberCmd, creditNotesVoidCmd} {
		c.Flags().StringP("reason", "r", "", "Justification, recorded in the audit trail (required)")
	}
	creditNotesEditCmd.Flags().StringToString("set", nil, "Fields to change, e.g. --set amount=250.00")
	creditNotesBackdateCmd.Flags().String("date", "", "New issued date (YYYY-MM-DD)")
	creditNotesNumberCmd.Flags().Int("year", 0, "Number year component")
	creditNotesNumberCmd.Flags().Int("month", 0, "Number month component")
	creditNotesNumberCmd.Flags().Int("sequence", 0, "Number sequence component")
}
