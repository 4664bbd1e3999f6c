package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arjunaarunatheym-jpg/MddrcFinanceHR-sub001/internal/utils"
	"github.com/arjunaarunatheym-jpg/MddrcFinanceHR-sub001/pkg/api"
	"github.com/arjunaarunatheym-jpg/MddrcFinanceHR-sub001/pkg/render"
)

var participantsCmd = &cobra.Command{
	Use:   "participants",
	Short: "Manage session rosters and participant accounts",
}

var participantsListCmd = &cobra.Command{
	Use:   "list <session-id>",
	Short: "List a session's roster",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		participants, err := client.Participants(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(participants))
		for _, p := range participants {
			rows = append(rows, []string{p.ID, p.Name, p.Email, p.Phone, p.Company})
		}
		render.Table(os.Stdout, []string{"ID", "NAME", "EMAIL", "PHONE", "COMPANY"}, rows)
		return nil
	},
}

var participantsAddCmd = &cobra.Command{
	Use:   "add <session-id>",
	Short: "Attach an existing participant to a session roster",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		p := participantFromFlags(cmd)
		if p.Name == "" || p.Email == "" {
			return fmt.Errorf("--name and --email are required")
		}
		if err := client.AddParticipant(cmd.Context(), args[0], p); err != nil {
			return err
		}
		utils.Log.Infof("added %s to session %s", p.Email, args[0])
		return nil
	},
}

var participantsRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Provision a new participant account",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		p := participantFromFlags(cmd)
		if p.Name == "" || p.Email == "" {
			return fmt.Errorf("--name and --email are required")
		}
		if err := client.RegisterParticipant(cmd.Context(), p); err != nil {
			return err
		}
		utils.Log.Infof("registered %s", p.Email)
		return nil
	},
}

var participantsUploadCmd = &cobra.Command{
	Use:   "bulk-upload <session-id> <file>",
	Short: "Upload a roster spreadsheet for a session",
	Long: `Uploads a roster file for server-side parsing. Row-level validation and
account provisioning happen on the platform; failures come back as a single
detail message.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		f, err := os.Open(args[1])
		if err != nil {
			return err
		}
		defer f.Close()

		if err := client.BulkUploadParticipants(cmd.Context(), args[0], filepath.Base(args[1]), f); err != nil {
			return err
		}
		utils.Log.Infof("uploaded %s to session %s", filepath.Base(args[1]), args[0])

		return journalUpload(cmd.Context(), "participants", args[0], filepath.Base(args[1]))
	},
}

func participantFromFlags(cmd *cobra.Command) api.Participant {
	name, _ := cmd.Flags().GetString("name")
	email, _ := cmd.Flags().GetString("email")
	phone, _ := cmd.Flags().GetString("phone")
	idCard, _ := cmd.Flags().GetString("id-card")
	company, _ := cmd.Flags().GetString("company")
	return api.Participant{Name: name, Email: email, Phone: phone, IDCard: idCard, Company: company}
}

func init() {
	rootCmd.AddCommand(participantsCmd)
	participantsCmd.AddCommand(participantsListCmd, participantsAddCmd, participantsRegisterCmd, participantsUploadCmd)

	for _, c := range []*cobra.Command{participantsAddCmd, participantsRegisterCmd} {
		c.Flags().String("name", "", "Participant full name")
		c.Flags().String("email", "", "Participant email")
		c.Flags().String("phone", "", "Participant phone")
		c.Flags().String("id-card", "", "Participant id card number")
		c.Flags().String("company", "", "Participant company")
	}
}
