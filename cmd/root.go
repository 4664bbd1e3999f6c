package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/arjunaarunatheym-jpg/MddrcFinanceHR-sub001/internal/utils"
)

var cfgFile string

const (
	LOGO = `	                 _     _
	 _ __ ___   __| | __| |_ __ ___
	| '_ ` + "`" + ` _ \ / _` + "`" + ` |/ _` + "`" + ` | '__/ __|
	| | | | | | (_| | (_| | | | (__
	|_| |_| |_|\__,_|\__,_|_|  \___|

`
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mddrcadm",
	Short: "Administrative console for the MDDRC training and invoicing platform.",
	Long: LOGO + `mddrcadm manages session data, invoices, payments, credit notes, participant
rosters, feedback templates, and the finance audit trail, right from your
command line. All business rules live on the platform; this tool is the
console in front of them.`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.mddrcadm.yaml)")

	// Global flags
	rootCmd.PersistentFlags().StringP("proxy", "", "", "HTTP Proxy (Useful for debugging. Example: http://127.0.0.1:8080)")
	rootCmd.PersistentFlags().StringP("loglevel", "l", "info", "Set log level. Available: debug, info, warn, error, fatal")
	rootCmd.PersistentFlags().StringP("delimiter", "d", " ", "Delimiter character to use for line output")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".mddrcadm")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; create it with defaults.
			home, _ := homedir.Dir()
			configPath := home + "/.mddrcadm.yaml"
			if err := viper.SafeWriteConfigAs(configPath); err != nil {
				fmt.Printf("Error creating config file: %s", err)
			}
		}
	}

	// Set default empty values for all keys
	viper.SetDefault("api.url", "")
	viper.SetDefault("api.token", "")
	viper.SetDefault("user.email", "")
	viper.SetDefault("user.role", "")
	viper.SetDefault("user.finance", false)
	viper.SetDefault("superadmins", []string{})
	viper.SetDefault("journal.path", "")
	viper.SetDefault("serve.username", "")
	viper.SetDefault("serve.password", "")

	// Init log library
	levelString, _ := rootCmd.PersistentFlags().GetString("loglevel")
	utils.SetLogLevel(levelString)
}
