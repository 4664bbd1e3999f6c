package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arjunaarunatheym-jpg/MddrcFinanceHR-sub001/pkg/render"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List sessions and related filter sources",
}

var sessionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		sessions, err := client.Sessions(cmd.Context())
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(sessions))
		for _, s := range sessions {
			rows = append(rows, []string{s.ID, s.Name, s.CompanyID, s.ProgramID, s.StartDate, s.EndDate})
		}
		render.Table(os.Stdout, []string{"ID", "NAME", "COMPANY", "PROGRAM", "START", "END"}, rows)
		return nil
	},
}

var sessionsPastCmd = &cobra.Command{
	Use:   "past",
	Short: "List sessions that finished in a given month/year",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		month, _ := cmd.Flags().GetInt("month")
		year, _ := cmd.Flags().GetInt("year")
		if month == 0 || year == 0 {
			return fmt.Errorf("--month and --year are required")
		}

		sessions, err := client.PastTraining(cmd.Context(), month, year)
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(sessions))
		for _, s := range sessions {
			rows = append(rows, []string{s.ID, s.Name, s.StartDate, s.EndDate})
		}
		render.Table(os.Stdout, []string{"ID", "NAME", "START", "END"}, rows)
		return nil
	},
}

var companiesCmd = &cobra.Command{
	Use:   "companies",
	Short: "List companies",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		companies, err := client.Companies(cmd.Context())
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(companies))
		for _, c := range companies {
			rows = append(rows, []string{c.ID, c.Name})
		}
		render.Table(os.Stdout, []string{"ID", "NAME"}, rows)
		return nil
	},
}

var programsCmd = &cobra.Command{
	Use:   "programs",
	Short: "List training programs",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		programs, err := client.Programs(cmd.Context())
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(programs))
		for _, p := range programs {
			rows = append(rows, []string{p.ID, p.Name})
		}
		render.Table(os.Stdout, []string{"ID", "NAME"}, rows)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sessionsCmd, companiesCmd, programsCmd)
	sessionsCmd.AddCommand(sessionsListCmd, sessionsPastCmd)

	sessionsPastCmd.Flags().Int("month", 0, "Month (1-12)")
	sessionsPastCmd.Flags().Int("year", 0, "Year")
}
