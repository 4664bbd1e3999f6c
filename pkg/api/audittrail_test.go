package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestExportAuditTrail_OnlyStartDate(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Write([]byte("PK\x03\x04fake-spreadsheet"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	c := NewClient(srv.URL, "tok")
	path, err := c.ExportAuditTrail(context.Background(), Filters{StartDate: "2026-01-01"}, dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(gotQuery, "start_date=2026-01-01") {
		t.Fatalf("export request must carry start_date: %q", gotQuery)
	}
	if strings.Contains(gotQuery, "end_date") {
		t.Fatalf("export request must omit unset end_date: %q", gotQuery)
	}

	wantName := "audit-trail-" + time.Now().Format("2006-01-02") + ".xlsx"
	if filepath.Base(path) != wantName {
		t.Fatalf("expected date-stamped filename %q, got %q", wantName, filepath.Base(path))
	}
	blob, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("exported file not written: %v", err)
	}
	if !strings.HasPrefix(string(blob), "PK") {
		t.Fatalf("exported blob must be written verbatim, got %q", blob)
	}
}
