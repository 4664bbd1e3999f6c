package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/arjunaarunatheym-jpg/MddrcFinanceHR-sub001/internal/utils"
	"github.com/arjunaarunatheym-jpg/MddrcFinanceHR-sub001/pkg/api"
	"github.com/arjunaarunatheym-jpg/MddrcFinanceHR-sub001/pkg/render"
)

var feedbackCmd = &cobra.Command{
	Use:   "feedback",
	Short: "Manage feedback templates",
}

var feedbackTemplatesCmd = &cobra.Command{
	Use:   "templates <program-id>",
	Short: "List feedback templates attached to a program",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		templates, err := client.TemplatesByProgram(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(templates))
		for _, t := range templates {
			rows = append(rows, []string{t.ID, t.Title, strconv.Itoa(len(t.Questions))})
		}
		render.Table(os.Stdout, []string{"ID", "TITLE", "QUESTIONS"}, rows)
		return nil
	},
}

var feedbackCreateCmd = &cobra.Command{
	Use:   "create <file>",
	Short: "Create a feedback template from a JSON file",
	Long: `Reads a template definition (title, program id, questions) from a JSON file
and submits it. Example file:

  {"program_id": "prog-1", "title": "Post-training survey",
   "questions": [{"text": "Rate the trainer", "kind": "rating"}]}`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		var t api.FeedbackTemplate
		if err := json.Unmarshal(raw, &t); err != nil {
			return fmt.Errorf("bad template file: %w", err)
		}
		if t.ProgramID == "" || t.Title == "" {
			return fmt.Errorf("template file must set program_id and title")
		}

		client, err := newAPIClient()
		if err != nil {
			return err
		}
		if err := client.CreateTemplate(cmd.Context(), t); err != nil {
			return err
		}
		utils.Log.Infof("created template %q for program %s", t.Title, t.ProgramID)
		return nil
	},
}

var feedbackUploadCmd = &cobra.Command{
	Use:   "bulk-upload <file>",
	Short: "Upload a spreadsheet of feedback templates",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		if err := client.BulkUploadTemplates(cmd.Context(), filepath.Base(args[0]), f); err != nil {
			return err
		}
		utils.Log.Infof("uploaded %s", filepath.Base(args[0]))

		return journalUpload(cmd.Context(), "feedback", "templates", filepath.Base(args[0]))
	},
}

func init() {
	rootCmd.AddCommand(feedbackCmd)
	feedbackCmd.AddCommand(feedbackTemplatesCmd, feedbackCreateCmd, feedbackUploadCmd)
}
