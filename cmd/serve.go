package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/arjunaarunatheym-jpg/MddrcFinanceHR-sub001/internal/server"
	"github.com/arjunaarunatheym-jpg/MddrcFinanceHR-sub001/internal/utils"
	"github.com/arjunaarunatheym-jpg/MddrcFinanceHR-sub001/pkg/journal"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the local web console",
	Long: `Serves the tabbed admin console on a local port. Finance tabs appear only
when the configured operator holds finance access; every mutating action
still requires a reason and is journaled locally.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		listenAddr, _ := cmd.Flags().GetString("listen")
		user := viper.GetString("serve.username")
		pass := viper.GetString("serve.password")

		jdb, err := journal.Open(journalPath())
		if err != nil {
			utils.Log.Warn("journal unavailable: ", err)
			jdb = nil
		} else {
			defer jdb.Close()
		}

		s := server.New(client, currentCaps(), jdb, user, pass)
		utils.Log.Info("console listening on ", listenAddr)
		return s.Start(listenAddr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("listen", "127.0.0.1:8080", "HTTP listen address")
}
