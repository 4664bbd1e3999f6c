package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arjunaarunatheym-jpg/MddrcFinanceHR-sub001/pkg/journal"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Show recent local actions (default 50)",
	RunE: func(cmd *cobra.Command, _ []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		db, err := journal.Open(journalPath())
		if err != nil {
			return err
		}
		defer db.Close()

		entries, err := db.ListRecent(cmd.Context(), limit)
		if err != nil {
			return err
		}
		for _, e := range entries {
			ts := e.OccurredAt.Format("2006-01-02 15:04:05")
			fmt.Printf("%s  %-10s  %-14s  %s  reason=%q  %s\n", ts, e.Action, e.Resource, e.RecordID, e.Reason, e.Outcome)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.Flags().Int("limit", 50, "Number of recent actions to show")
}
