package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestInvoiceComponents_StructuredFieldsPreferred(t *testing.T) {
	inv := Invoice{Number: "INV/MDDRC/2020/09/0001", Year: 2026, Month: 1, Sequence: 7}
	n, err := inv.Components()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Year != 2026 || n.Month != 1 || n.Sequence != 7 {
		t.Fatalf("structured fields must win over the formatted string: %+v", n)
	}
}

func TestInvoiceComponents_FallbackParse(t *testing.T) {
	inv := Invoice{Number: "INV/MDDRC/2026/01/0007"}
	n, err := inv.Components()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Year != 2026 || n.Month != 1 || n.Sequence != 7 {
		t.Fatalf("expected 2026/1/7 from the formatted string, got %d/%d/%d", n.Year, n.Month, n.Sequence)
	}
}

func TestEditInvoiceNumber_Payload(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("expected PUT, got %s", r.Method)
		}
		if r.URL.Path != "/finance/admin/invoices/inv-1/number" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&got)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok")
	if err := c.EditInvoiceNumber(context.Background(), "inv-1", 2026, 1, 7, "wrong month"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got["year"].(float64) != 2026 || got["month"].(float64) != 1 || got["sequence"].(float64) != 7 {
		t.Fatalf("unexpected payload: %v", got)
	}
	if got["reason"] != "wrong month" {
		t.Fatalf("reason not carried: %v", got)
	}
}

func TestVoidCreditNote_ReasonAsQueryParameter(t *testing.T) {
	var gotQuery, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		gotMethod = r.Method
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok")
	if err := c.VoidCreditNote(context.Background(), "cn-1", "issued in error"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotMethod != http.MethodPut {
		t.Fatalf("credit note void is a PUT, got %s", gotMethod)
	}
	if gotQuery != "reason=issued+in+error" {
		t.Fatalf("reason must travel as a query parameter: %q", gotQuery)
	}
}

func TestDeletePayment_ReasonInBody(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("expected DELETE, got %s", r.Method)
		}
		json.NewDecoder(r.Body).Decode(&got)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok")
	if err := c.DeletePayment(context.Background(), "p-1", "entered twice"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got["reason"] != "entered twice" {
		t.Fatalf("reason must travel in the DELETE body: %v", got)
	}
}
