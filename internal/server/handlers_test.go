package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/arjunaarunatheym-jpg/MddrcFinanceHR-sub001/internal/access"
	"github.com/arjunaarunatheym-jpg/MddrcFinanceHR-sub001/pkg/api"
)

func newTestServer(t *testing.T, upstream http.HandlerFunc, caps access.Capabilities) *httptest.Server {
	t.Helper()
	up := httptest.NewServer(upstream)
	t.Cleanup(up.Close)
	s := New(api.NewClient(up.URL, "tok"), caps, nil, "", "")
	local := httptest.NewServer(s.Handler())
	t.Cleanup(local.Close)
	return local
}

func TestFinanceRoutesGated(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}, access.Capabilities{Finance: false})

	res, err := http.Get(srv.URL + "/api/invoices")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 without finance capability, got %d", res.StatusCode)
	}

	// Non-finance routes stay reachable.
	res, err = http.Get(srv.URL + "/api/sessions")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for sessions, got %d", res.StatusCode)
	}
}

func TestActionRequiresReason(t *testing.T) {
	called := false
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	}, access.Capabilities{Finance: true})

	body := `{"resource":"invoices","action":"void","id":"inv-1","reason":"  "}`
	res, err := http.Post(srv.URL+"/api/actions", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty reason, got %d", res.StatusCode)
	}
	if called {
		t.Fatal("upstream must not be called without a reason")
	}
}

func TestActionPassesUpstreamDetail(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || !strings.HasSuffix(r.URL.Path, "/inv-1/void") {
			t.Errorf("unexpected upstream call: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail":"invoice already void"}`))
	}, access.Capabilities{Finance: true})

	body := `{"resource":"invoices","action":"void","id":"inv-1","reason":"duplicate"}`
	res, err := http.Post(srv.URL+"/api/actions", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected upstream status passthrough, got %d", res.StatusCode)
	}
	buf := make([]byte, 1024)
	n, _ := res.Body.Read(buf)
	if !strings.Contains(string(buf[:n]), "invoice already void") {
		t.Fatalf("expected upstream detail passthrough, got %q", string(buf[:n]))
	}
}

func TestBasicAuth(t *testing.T) {
	up := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer up.Close()
	s := New(api.NewClient(up.URL, "tok"), access.Capabilities{}, nil, "admin", "pw")
	local := httptest.NewServer(s.Handler())
	defer local.Close()

	res, _ := http.Get(local.URL + "/api/sessions")
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without credentials, got %d", res.StatusCode)
	}

	req, _ := http.NewRequest(http.MethodGet, local.URL+"/api/sessions", nil)
	req.SetBasicAuth("admin", "pw")
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 with credentials, got %d", res.StatusCode)
	}
}
