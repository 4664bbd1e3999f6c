package api

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Record types served by the data-management endpoints.
const (
	TypeTestResults = "test-results"
	TypeFeedback    = "feedback"
	TypeAttendance  = "attendance"
	TypeChecklists  = "checklists"
)

var recordTypes = map[string]bool{
	TypeTestResults: true,
	TypeFeedback:    true,
	TypeAttendance:  true,
	TypeChecklists:  true,
}

func ValidRecordType(t string) bool { return recordTypes[t] }

// Record is one row from a data-management panel. Fields holds the
// type-specific columns as returned by the server; ids are opaque.
type Record struct {
	ID          string            `json:"id"`
	SessionID   string            `json:"session_id"`
	SessionName string            `json:"session_name"`
	Participant string            `json:"participant_name"`
	CompanyName string            `json:"company_name"`
	UpdatedAt   time.Time         `json:"updated_at"`
	Fields      map[string]string `json:"fields"`
}

// AuditLogEntry is one append-only change event for a record.
type AuditLogEntry struct {
	Action    string    `json:"action"`
	Actor     string    `json:"actor"`
	Timestamp time.Time `json:"timestamp"`
	Field     string    `json:"field,omitempty"`
	FromValue string    `json:"from_value,omitempty"`
	ToValue   string    `json:"to_value,omitempty"`
	Reason    string    `json:"reason,omitempty"`
}

func (c *Client) ListRecords(ctx context.Context, recordType string, f Filters) ([]Record, error) {
	if !ValidRecordType(recordType) {
		return nil, fmt.Errorf("unknown record type: %s", recordType)
	}
	var out []Record
	err := c.getJSON(ctx, "/admin/data-management/"+recordType, f.Encode(), &out)
	return out, err
}

// UpdateRecord edits a record's fields; reason is mandatory and audited
// server-side.
func (c *Client) UpdateRecord(ctx context.Context, recordType, id string, fields map[string]string, reason string) error {
	if !ValidRecordType(recordType) {
		return fmt.Errorf("unknown record type: %s", recordType)
	}
	payload := map[string]any{"fields": fields, "reason": reason}
	return c.sendJSON(ctx, http.MethodPut, "/admin/data-management/"+recordType+"/"+id, nil, payload, nil)
}

// DeleteRecord removes a record; the reason travels in the request body.
func (c *Client) DeleteRecord(ctx context.Context, recordType, id, reason string) error {
	if !ValidRecordType(recordType) {
		return fmt.Errorf("unknown record type: %s", recordType)
	}
	payload := map[string]string{"reason": reason}
	return c.sendJSON(ctx, http.MethodDelete, "/admin/data-management/"+recordType+"/"+id, nil, payload, nil)
}

// RecordAuditLogs returns the per-record audit history.
func (c *Client) RecordAuditLogs(ctx context.Context, recordType, id string) ([]AuditLogEntry, error) {
	if !ValidRecordType(recordType) {
		return nil, fmt.Errorf("unknown record type: %s", recordType)
	}
	var out []AuditLogEntry
	err := c.getJSON(ctx, "/admin/data-management/audit-logs/"+recordType+"/"+id, nil, &out)
	return out, err
}
