package cmd

import (
	"context"
	"errors"
	"fmt"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/arjunaarunatheym-jpg/MddrcFinanceHR-sub001/internal/access"
	"github.com/arjunaarunatheym-jpg/MddrcFinanceHR-sub001/internal/utils"
	"github.com/arjunaarunatheym-jpg/MddrcFinanceHR-sub001/pkg/api"
	"github.com/arjunaarunatheym-jpg/MddrcFinanceHR-sub001/pkg/dialog"
	"github.com/arjunaarunatheym-jpg/MddrcFinanceHR-sub001/pkg/journal"
	"github.com/arjunaarunatheym-jpg/MddrcFinanceHR-sub001/pkg/whttp"
)

func newAPIClient() (*api.Client, error) {
	baseURL := viper.GetString("api.url")
	token := viper.GetString("api.token")
	if baseURL == "" {
		return nil, fmt.Errorf("api.url is not configured, set it in ~/.mddrcadm.yaml")
	}

	proxy, _ := rootCmd.PersistentFlags().GetString("proxy")
	if proxy != "" {
		if err := whttp.SetupProxy(proxy); err != nil {
			return nil, err
		}
	}

	return api.NewClient(baseURL, token), nil
}

func currentUser() access.User {
	return access.User{
		Email:       viper.GetString("user.email"),
		Role:        viper.GetString("user.role"),
		FinanceFlag: viper.GetBool("user.finance"),
	}
}

func currentCaps() access.Capabilities {
	return access.Derive(currentUser(), viper.GetStringSlice("superadmins"))
}

// requireFinance refuses finance-gated commands up front; the server would
// reject them anyway.
func requireFinance() error {
	if !currentCaps().Finance {
		return fmt.Errorf("finance access required (admin/finance role, super-admin email, or user.finance in config)")
	}
	return nil
}

func requireDataManagement() error {
	if !currentCaps().DataManagement {
		return fmt.Errorf("data management access required (admin role or super-admin email)")
	}
	return nil
}

func journalPath() string {
	if p := viper.GetString("journal.path"); p != "" {
		return p
	}
	home, err := homedir.Dir()
	if err != nil {
		return "mddrcadm.sqlite"
	}
	return home + "/.mddrcadm.sqlite"
}

// mutate runs one destructive/financially sensitive action through the
// confirm dialog: the reason gate is enforced before any request is issued,
// the outcome is journaled locally, and on failure the server's detail is
// logged verbatim so the operator can adjust and retry.
func mutate(cmd *cobra.Command, resource, action, id, reason string, do func(ctx context.Context) error) error {
	d := dialog.New(true, nil)
	d.OpenFor(id, nil)
	d.SetReason(reason)

	err := d.Submit(cmd.Context(), do)
	if errors.Is(err, dialog.ErrReasonRequired) {
		return fmt.Errorf("--reason is required for %s", action)
	}

	if jdb, jerr := journal.Open(journalPath()); jerr == nil {
		outcome := "ok"
		if err != nil {
			outcome = err.Error()
		}
		if rerr := jdb.Record(cmd.Context(), journal.Entry{
			Resource: resource,
			RecordID: id,
			Action:   action,
			Reason:   reason,
			Outcome:  outcome,
		}); rerr != nil {
			utils.Log.Debug("journal write failed: ", rerr)
		}
		jdb.Close()
	} else {
		utils.Log.Debug("journal unavailable: ", jerr)
	}

	if err != nil {
		utils.Log.Error(d.LastError())
		return err
	}

	utils.Log.Infof("%s %s: done", action, id)
	return nil
}

// journalUpload records a successful bulk upload locally, best effort.
func journalUpload(ctx context.Context, resource, id, filename string) error {
	jdb, err := journal.Open(journalPath())
	if err != nil {
		utils.Log.Debug("journal unavailable: ", err)
		return nil
	}
	defer jdb.Close()
	if err := jdb.Record(ctx, journal.Entry{
		Resource: resource,
		RecordID: id,
		Action:   "upload",
		Reason:   filename,
		Outcome:  "ok",
	}); err != nil {
		utils.Log.Debug("journal write failed: ", err)
	}
	return nil
}

func lineDelimiter() string {
	d, _ := rootCmd.PersistentFlags().GetString("delimiter")
	if d == "" {
		d = " "
	}
	return d
}
