package api

import (
	"context"
	"io"
	"net/http"
)

// FeedbackTemplate is a reusable questionnaire attached to a program.
type FeedbackTemplate struct {
	ID        string             `json:"id"`
	ProgramID string             `json:"program_id"`
	Title     string             `json:"title"`
	Questions []TemplateQuestion `json:"questions"`
}

type TemplateQuestion struct {
	Text    string   `json:"text"`
	Kind    string   `json:"kind"` // rating | text | choice
	Choices []string `json:"choices,omitempty"`
}

func (c *Client) TemplatesByProgram(ctx context.Context, programID string) ([]FeedbackTemplate, error) {
	var out []FeedbackTemplate
	err := c.getJSON(ctx, "/feedback/templates/program/"+programID, nil, &out)
	return out, err
}

func (c *Client) CreateTemplate(ctx context.Context, t FeedbackTemplate) error {
	return c.sendJSON(ctx, http.MethodPost, "/feedback/templates", nil, t, nil)
}

func (c *Client) BulkUploadTemplates(ctx context.Context, filename string, content io.Reader) error {
	return c.uploadFile(ctx, "/feedback/templates/bulk-upload", filename, content)
}
