package theme

import (
	"context"
	"errors"
	"testing"

	"github.com/arjunaarunatheym-jpg/MddrcFinanceHR-sub001/pkg/api"
)

type fakeSettings struct {
	theme api.Theme
	err   error
	calls int
}

func (f *fakeSettings) Settings(ctx context.Context) (api.Theme, error) {
	f.calls++
	return f.theme, f.err
}

func TestInit_FetchesOnce(t *testing.T) {
	f := &fakeSettings{theme: api.Theme{CompanyName: "MDDRC", PrimaryColor: "#003366"}}
	p, err := Init(context.Background(), f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.calls != 1 {
		t.Fatalf("expected exactly one fetch at init, got %d", f.calls)
	}
	if got := p.Current(); got.CompanyName != "MDDRC" {
		t.Fatalf("unexpected theme: %+v", got)
	}

	// Reads never re-fetch.
	p.Current()
	p.Current()
	if f.calls != 1 {
		t.Fatalf("reads must not re-fetch, got %d calls", f.calls)
	}
}

func TestRefresh_ReplacesWholeRecord(t *testing.T) {
	f := &fakeSettings{theme: api.Theme{CompanyName: "MDDRC", PrimaryColor: "#003366", LogoURL: "https://cdn/logo.png"}}
	p, err := Init(context.Background(), f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f.theme = api.Theme{CompanyName: "MDDRC Academy"}
	if err := p.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := p.Current()
	if got.CompanyName != "MDDRC Academy" {
		t.Fatalf("refresh must install the new record: %+v", got)
	}
	if got.LogoURL != "" {
		t.Fatal("refresh replaces the whole record, old fields must not survive")
	}
}

func TestRefresh_FailureKeepsPrevious(t *testing.T) {
	f := &fakeSettings{theme: api.Theme{CompanyName: "MDDRC"}}
	p, err := Init(context.Background(), f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f.err = errors.New("gateway down")
	if err := p.Refresh(context.Background()); err == nil {
		t.Fatal("expected refresh error")
	}
	if got := p.Current(); got.CompanyName != "MDDRC" {
		t.Fatalf("failed refresh must keep the previous record: %+v", got)
	}
}

func TestInit_FailureReturnsError(t *testing.T) {
	f := &fakeSettings{err: errors.New("unauthorized")}
	if _, err := Init(context.Background(), f); err == nil {
		t.Fatal("expected init error")
	}
}
