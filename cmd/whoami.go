package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the configured operator and derived capabilities",
	RunE: func(cmd *cobra.Command, args []string) error {
		u := currentUser()
		caps := currentCaps()

		fmt.Printf("email: %s\n", u.Email)
		fmt.Printf("role:  %s\n", u.Role)
		fmt.Printf("capabilities: finance=%t super-admin=%t data-management=%t\n",
			caps.Finance, caps.SuperAdmin, caps.DataManagement)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
