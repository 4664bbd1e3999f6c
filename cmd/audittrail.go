package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arjunaarunatheym-jpg/MddrcFinanceHR-sub001/pkg/render"
)

var auditTrailCmd = &cobra.Command{
	Use:   "audit-trail",
	Short: "Inspect and export the finance audit trail",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return requireFinance()
	},
}

var auditTrailListCmd = &cobra.Command{
	Use:   "list",
	Short: "List audit trail entries under the current filters",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		entries, err := client.ListAuditTrail(cmd.Context(), filtersFromFlags(cmd))
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(entries))
		for _, e := range entries {
			change := ""
			if e.Field != "" {
				change = fmt.Sprintf("%s: %q -> %q", e.Field, e.FromValue, e.ToValue)
			}
			rows = append(rows, []string{
				e.Timestamp.Format("2006-01-02 15:04:05"), e.Actor, e.Action,
				e.EntityType, e.DocNumber, change, e.Reason,
			})
		}
		render.Table(os.Stdout, []string{"WHEN", "ACTOR", "ACTION", "ENTITY", "DOC", "CHANGE", "REASON"}, rows)
		return nil
	},
}

var auditTrailExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Download the audit trail as a spreadsheet",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		dir, _ := cmd.Flags().GetString("dir")

		path, err := client.ExportAuditTrail(cmd.Context(), filtersFromFlags(cmd), dir)
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(auditTrailCmd)
	auditTrailCmd.AddCommand(auditTrailListCmd, auditTrailExportCmd)

	addFilterFlags(auditTrailListCmd)
	addFilterFlags(auditTrailExportCmd)
	auditTrailExportCmd.Flags().String("dir", ".", "Directory to write the exported file to")
}
