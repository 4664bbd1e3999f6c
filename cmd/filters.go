package cmd

import (
	"github.com/spf13/cobra"

	"github.com/arjunaarunatheym-jpg/MddrcFinanceHR-sub001/pkg/api"
)

// addFilterFlags registers the shared filter bar flags. "all" and "" both
// mean unconstrained and are omitted from the request.
func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().String("session", "all", "Session id filter")
	cmd.Flags().String("company", "all", "Company id filter")
	cmd.Flags().String("program", "all", "Program id filter")
	cmd.Flags().String("start-date", "", "Start date filter (YYYY-MM-DD)")
	cmd.Flags().String("end-date", "", "End date filter (YYYY-MM-DD)")
	cmd.Flags().String("search", "", "Free-text search")
	cmd.Flags().String("status", "all", "Status filter")
}

func filtersFromFlags(cmd *cobra.Command) api.Filters {
	get := func(name string) api.ParamValue {
		v, _ := cmd.Flags().GetString(name)
		return api.ParamValue(v)
	}
	return api.Filters{
		SessionID: get("session"),
		CompanyID: get("company"),
		ProgramID: get("program"),
		StartDate: get("start-date"),
		EndDate:   get("end-date"),
		Search:    get("search"),
		Status:    get("status"),
	}
}
