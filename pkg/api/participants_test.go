package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestBulkUploadParticipants_Multipart(t *testing.T) {
	var gotName, gotContent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/sessions/s-1/participants/bulk-upload" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		f, header, err := r.FormFile("file")
		if err != nil {
			t.Errorf("missing file part: %v", err)
			return
		}
		defer f.Close()
		gotName = header.Filename
		b, _ := io.ReadAll(f)
		gotContent = string(b)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok")
	err := c.BulkUploadParticipants(context.Background(), "s-1", "roster.xlsx", strings.NewReader("name,email\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotName != "roster.xlsx" {
		t.Fatalf("expected filename to be forwarded, got %q", gotName)
	}
	if gotContent != "name,email\n" {
		t.Fatalf("file content not forwarded: %q", gotContent)
	}
}
