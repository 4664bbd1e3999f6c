package journal

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "journal.sqlite"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRecordAndListRecent(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	entries := []Entry{
		{OccurredAt: base, Resource: "invoices", RecordID: "inv-1", Action: "void", Reason: "duplicate", Outcome: "ok"},
		{OccurredAt: base.Add(time.Minute), Resource: "payments", RecordID: "p-2", Action: "delete", Reason: "entered twice", Outcome: "ok"},
		{OccurredAt: base.Add(2 * time.Minute), Resource: "invoices", RecordID: "inv-3", Action: "backdate", Reason: "signed late", Outcome: "cannot backdate a voided invoice"},
	}
	for _, e := range entries {
		if err := db.Record(ctx, e); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	got, err := db.ListRecent(ctx, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	// Newest first.
	if got[0].RecordID != "inv-3" || got[1].RecordID != "p-2" {
		t.Fatalf("expected newest-first ordering, got %s then %s", got[0].RecordID, got[1].RecordID)
	}
	if got[0].Outcome != "cannot backdate a voided invoice" {
		t.Fatalf("outcome not round-tripped: %q", got[0].Outcome)
	}
}

func TestListRecent_DefaultLimit(t *testing.T) {
	db := openTestDB(t)
	if err := db.Record(context.Background(), Entry{Resource: "invoices", RecordID: "inv-1", Action: "void", Outcome: "ok"}); err != nil {
		t.Fatalf("record: %v", err)
	}
	got, err := db.ListRecent(context.Background(), 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got))
	}
}
