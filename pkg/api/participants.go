package api

import (
	"context"
	"io"
	"net/http"
)

type Participant struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	IDCard  string `json:"id_card,omitempty"`
	Company string `json:"company,omitempty"`
}

func (c *Client) Participants(ctx context.Context, sessionID string) ([]Participant, error) {
	var out []Participant
	err := c.getJSON(ctx, "/sessions/"+sessionID+"/participants", nil, &out)
	return out, err
}

// AddParticipant attaches an existing account to a session roster.
func (c *Client) AddParticipant(ctx context.Context, sessionID string, p Participant) error {
	return c.sendJSON(ctx, http.MethodPost, "/sessions/"+sessionID+"/participants", nil, p, nil)
}

// RegisterParticipant provisions a new participant account. The server owns
// credential generation and welcome notification.
func (c *Client) RegisterParticipant(ctx context.Context, p Participant) error {
	return c.sendJSON(ctx, http.MethodPost, "/auth/register", nil, p, nil)
}

// BulkUploadParticipants sends a roster spreadsheet; parsing and row-level
// validation happen server-side.
func (c *Client) BulkUploadParticipants(ctx context.Context, sessionID, filename string, content io.Reader) error {
	return c.uploadFile(ctx, "/sessions/"+sessionID+"/participants/bulk-upload", filename, content)
}
