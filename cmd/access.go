package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/arjunaarunatheym-jpg/MddrcFinanceHR-sub001/internal/utils"
	"github.com/arjunaarunatheym-jpg/MddrcFinanceHR-sub001/pkg/api"
	"github.com/arjunaarunatheym-jpg/MddrcFinanceHR-sub001/pkg/render"
)

var accessCmd = &cobra.Command{
	Use:   "access",
	Short: "Inspect and toggle per-session participant feature flags",
}

var accessShowCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "Show feature access for a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		list, err := client.SessionAccess(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		// A feature reads as enabled when any participant has it set.
		for _, feature := range api.AccessFeatures() {
			fmt.Printf("%s: %s\n", feature, enabledText(api.FeatureEnabled(list, feature)))
		}

		rows := make([][]string, 0, len(list))
		for _, a := range list {
			rows = append(rows, []string{
				a.ParticipantName,
				strconv.FormatBool(a.PreTest), strconv.FormatBool(a.PostTest),
				strconv.FormatBool(a.Feedback), strconv.FormatBool(a.Checklist),
			})
		}
		render.Table(os.Stdout, []string{"PARTICIPANT", "PRE_TEST", "POST_TEST", "FEEDBACK", "CHECKLIST"}, rows)
		return nil
	},
}

var accessToggleCmd = &cobra.Command{
	Use:   "toggle <session-id> <feature>",
	Short: "Enable or disable a feature for every participant in a session",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sessionID, feature := args[0], args[1]
		if !api.ValidAccessFeature(feature) {
			return fmt.Errorf("unknown feature %q (available: pre_test, post_test, feedback, checklist)", feature)
		}
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		enabled, _ := cmd.Flags().GetBool("enable")
		disabled, _ := cmd.Flags().GetBool("disable")
		if enabled == disabled {
			return fmt.Errorf("pass exactly one of --enable or --disable")
		}

		list, err := client.ToggleSessionAccess(cmd.Context(), sessionID, feature, enabled)
		if err != nil {
			return err
		}
		utils.Log.Infof("%s now %s for %d participant(s)", feature, enabledText(enabled), len(list))
		return nil
	},
}

func enabledText(on bool) string {
	if on {
		return "enabled"
	}
	return "disabled"
}

func init() {
	rootCmd.AddCommand(accessCmd)
	accessCmd.AddCommand(accessShowCmd, accessToggleCmd)

	accessToggleCmd.Flags().Bool("enable", false, "Enable the feature")
	accessToggleCmd.Flags().Bool("disable", false, "Disable the feature")
}
