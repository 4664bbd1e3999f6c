package api

import (
	"context"
	"os"
	"path/filepath"
	"time"
)

// AuditTrailEntry is one row of the finance-wide audit trail.
type AuditTrailEntry struct {
	Timestamp  time.Time `json:"timestamp"`
	Actor      string    `json:"actor"`
	Action     string    `json:"action"`
	EntityType string    `json:"entity_type"`
	EntityID   string    `json:"entity_id"`
	DocNumber  string    `json:"doc_number,omitempty"`
	Field      string    `json:"field,omitempty"`
	FromValue  string    `json:"from_value,omitempty"`
	ToValue    string    `json:"to_value,omitempty"`
	Reason     string    `json:"reason,omitempty"`
}

func (c *Client) ListAuditTrail(ctx context.Context, f Filters) ([]AuditTrailEntry, error) {
	var out []AuditTrailEntry
	err := c.getJSON(ctx, "/finance/admin/audit-trail", f.Encode(), &out)
	return out, err
}

// ExportAuditTrail downloads the server-rendered spreadsheet for the given
// filters and writes it under dir with a date-stamped filename. It returns
// the path written.
func (c *Client) ExportAuditTrail(ctx context.Context, f Filters, dir string) (string, error) {
	blob, err := c.download(ctx, "/finance/admin/audit-trail/export", f.Encode())
	if err != nil {
		return "", err
	}
	name := "audit-trail-" + time.Now().Format("2006-01-02") + ".xlsx"
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, blob, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
