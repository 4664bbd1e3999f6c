package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/arjunaarunatheym-jpg/MddrcFinanceHR-sub001/pkg/render"
)

var incomeCmd = &cobra.Command{
	Use:   "income <coordinator|marketing|trainer> <user-id>",
	Short: "Show the server-computed income report for one user",
	Args:  cobra.ExactArgs(2),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return requireFinance()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		role, userID := args[0], args[1]
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		report, err := client.Income(cmd.Context(), role, userID)
		if err != nil {
			return err
		}

		fmt.Printf("%s (%s) total: %.2f\n", report.UserName, report.Role, report.Total)
		rows := make([][]string, 0, len(report.Items))
		for _, item := range report.Items {
			rows = append(rows, []string{item.SessionName, item.SessionDate, strconv.FormatFloat(item.Amount, 'f', 2, 64)})
		}
		render.Table(os.Stdout, []string{"SESSION", "DATE", "AMOUNT"}, rows)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(incomeCmd)
}
