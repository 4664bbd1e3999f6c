package cmd

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arjunaarunatheym-jpg/MddrcFinanceHR-sub001/pkg/api"
	"github.com/arjunaarunatheym-jpg/MddrcFinanceHR-sub001/pkg/render"
)

var dataCmd = &cobra.Command{
	Use:   "data",
	Short: "Manage session data records (test-results, feedback, attendance, checklists)",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return requireDataManagement()
	},
}

var dataListCmd = &cobra.Command{
	Use:   "list <type>",
	Short: "List records of one type under the current filters",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		recordType := args[0]
		if !api.ValidRecordType(recordType) {
			return fmt.Errorf("unknown record type %q (available: %s, %s, %s, %s)",
				recordType, api.TypeTestResults, api.TypeFeedback, api.TypeAttendance, api.TypeChecklists)
		}
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		records, err := client.ListRecords(cmd.Context(), recordType, filtersFromFlags(cmd))
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(records))
		for _, rec := range records {
			rows = append(rows, []string{
				rec.ID, rec.SessionName, rec.Participant, rec.CompanyName,
				rec.UpdatedAt.Format("2006-01-02 15:04"), summarizeFields(rec.Fields),
			})
		}
		render.Table(os.Stdout, []string{"ID", "SESSION", "PARTICIPANT", "COMPANY", "UPDATED", "FIELDS"}, rows)
		return nil
	},
}

var dataEditCmd = &cobra.Command{
	Use:   "edit <type> <record-id>",
	Short: "Edit a record's fields",
	Args:  cobra.ExactArgs(2),
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
		return mutate(cmd, "data-management", "edit", args[1], reason, func(ctx context.Context) error {
			return client.UpdateRecord(ctx, args[0], args[1], fields, reason)
		})
	},
}

var dataDeleteCmd = &cobra.Command{
	Use:   "delete <type> <record-id>",
	Short: "Delete a record",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		reason, _ := cmd.Flags().GetString("reason")
		return mutate(cmd, "data-management", "delete", args[1], reason, func(ctx context.Context) error {
			return client.DeleteRecord(ctx, args[0], args[1], reason)
		})
	},
}

var dataAuditCmd = &cobra.Command{
	Use:   "audit <type> <record-id>",
	Short: "Show the audit history of one record",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		logs, err := client.RecordAuditLogs(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(logs))
		for _, e := range logs {
			change := ""
			if e.Field != "" {
				change = fmt.Sprintf("%s: %q -> %q", e.Field, e.FromValue, e.ToValue)
			}
			rows = append(rows, []string{
				e.Timestamp.Format("2006-01-02 15:04:05"), e.Actor, e.Action, change, e.Reason,
			})
		}
		render.Table(os.Stdout, []string{"WHEN", "ACTOR", "ACTION", "CHANGE", "REASON"}, rows)
		return nil
	},
}

func summarizeFields(fields map[string]string) string {
	if len(fields) == 0 {
		return ""
	}
	parts := make([]string, 0, len(fields))
	for k, v := range fields {
		parts = append(parts, k+"="+v)
	}
	sort.Strings(parts)
	return strings.Join(parts, ",")
}

func init() {
	rootCmd.AddCommand(dataCmd)
	dataCmd.AddCommand(dataListCmd, dataEditCmd, dataDeleteCmd, dataAuditCmd)

	addFilterFlags(dataListCmd)
	for _, c := range []*cobra.Command{dataEditCmd, dataDeleteCmd} {
		c.Flags().StringP("reason", "r", "", "Justification, recorded in the audit trail (required)")
	}
	dataEditCmd.Flags().StringToString("set", nil, "Fields to change, e.g. --set score=85")
}
