package dialog

import (
	"context"
	"errors"
	"testing"

	"github.com/arjunaarunatheym-jpg/MddrcFinanceHR-sub001/pkg/api"
)

func TestDialog_ReasonGate(t *testing.T) {
	d := New(true, nil)
	d.OpenFor("inv-1", nil)

	if d.CanSubmit() {
		t.Fatal("confirm must be disabled while reason is empty")
	}
	d.SetReason("   ")
	if d.CanSubmit() {
		t.Fatal("whitespace-only reason must not enable confirm")
	}
	d.SetReason("issued against the wrong company")
	if !d.CanSubmit() {
		t.Fatal("confirm must be enabled once reason is non-empty")
	}

	err := New(true, nil).Submit(context.Background(), func(ctx context.Context) error { return nil })
	if err == nil {
		t.Fatal("submitting a closed dialog must fail")
	}
}

func TestDialog_SubmitWithoutReasonNeverCalls(t *testing.T) {
	d := New(true, nil)
	d.OpenFor("inv-1", nil)

	called := false
	err := d.Submit(context.Background(), func(ctx context.Context) error {
		called = true
		return nil
	})
	if !errors.Is(err, ErrReasonRequired) {
		t.Fatalf("expected ErrReasonRequired, got %v", err)
	}
	if called {
		t.Fatal("mutating call must not be issued without a reason")
	}
	if d.State() != Open {
		t.Fatal("dialog must stay open after a rejected submit")
	}
}

func TestDialog_SuccessClosesResetsAndReloads(t *testing.T) {
	reloaded := false
	d := New(true, func() { reloaded = true })
	d.OpenFor("inv-1", map[string]string{"year": "2026"})
	d.SetReason("backdated per signed contract")

	if err := d.Submit(context.Background(), func(ctx context.Context) error { return nil }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.State() != Closed {
		t.Fatal("dialog must close on success")
	}
	if d.Reason() != "" || d.Field("year") != "" || d.TargetID() != "" {
		t.Fatal("form must reset to defaults on success")
	}
	if !reloaded {
		t.Fatal("owning list must be reloaded on success")
	}
}

func TestDialog_FailureStaysOpenWithServerDetail(t *testing.T) {
	reloaded := false
	d := New(true, func() { reloaded = true })
	d.OpenFor("inv-1", nil)
	d.SetReason("duplicate invoice")

	serverErr := &api.APIError{Status: 422, Detail: "cannot void a paid invoice"}
	err := d.Submit(context.Background(), func(ctx context.Context) error { return serverErr })
	if err == nil {
		t.Fatal("expected error to propagate")
	}
	if d.State() != Open {
		t.Fatal("dialog must remain open after a failed submit")
	}
	if d.LastError() != "cannot void a paid invoice" {
		t.Fatalf("expected server detail verbatim, got %q", d.LastError())
	}
	if reloaded {
		t.Fatal("reload must not fire on failure")
	}
	if d.Reason() != "duplicate invoice" {
		t.Fatal("form must keep its values so the operator can retry")
	}
}

func TestDialog_CancelResets(t *testing.T) {
	d := New(false, nil)
	d.OpenFor("rec-9", map[string]string{"score": "85"})
	d.Cancel()
	if d.State() != Closed || d.Field("score") != "" {
		t.Fatal("cancel must close and reset the dialog")
	}
}
