package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arjunaarunatheym-jpg/MddrcFinanceHR-sub001/internal/theme"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Show the platform branding settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		provider, err := theme.Init(cmd.Context(), client)
		if err != nil {
			return err
		}

		refresh, _ := cmd.Flags().GetBool("refresh")
		if refresh {
			if err := provider.Refresh(cmd.Context()); err != nil {
				return err
			}
		}

		t := provider.Current()
		fmt.Printf("company:   %s\n", t.CompanyName)
		fmt.Printf("primary:   %s\n", t.PrimaryColor)
		fmt.Printf("secondary: %s\n", t.SecondaryColor)
		fmt.Printf("logo:      %s\n", t.LogoURL)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(themeCmd)
	themeCmd.Flags().Bool("refresh", false, "Force a re-fetch instead of the startup value")
}
