package api

import (
	"context"
	"net/http"
)

// ResetSequence resets the numbering counter for a document type in a given
// year/month. The server reassigns nothing retroactively; only future
// allocations start from zero again.
func (c *Client) ResetSequence(ctx context.Context, docType string, year, month int, reason string) error {
	payload := map[string]any{
		"doc_type": docType,
		"year":     year,
		"month":    month,
		"reason":   reason,
	}
	return c.sendJSON(ctx, http.MethodPost, "/finance/admin/sequence/reset", nil, payload, nil)
}
