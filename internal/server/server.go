package server

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/arjunaarunatheym-jpg/MddrcFinanceHR-sub001/internal/access"
	"github.com/arjunaarunatheym-jpg/MddrcFinanceHR-sub001/internal/utils"
	"github.com/arjunaarunatheym-jpg/MddrcFinanceHR-sub001/pkg/api"
	"github.com/arjunaarunatheym-jpg/MddrcFinanceHR-sub001/pkg/journal"
)

//go:embed web
var WebFS embed.FS

// Server is the local console: a basic-auth single page backed by thin
// proxy handlers over the platform API. Finance routes answer 403 unless
// the operator holds the finance capability.
type Server struct {
	API      *api.Client
	Caps     access.Capabilities
	Journal  *journal.DB
	Username string
	Password string

	// Fenced per-resource loaders: when the page issues overlapping
	// reloads, the last request issued wins and stale responses are
	// discarded rather than overwriting fresher state.
	invoices    api.Loader[api.Invoice]
	payments    api.Loader[api.Payment]
	creditNotes api.Loader[api.CreditNote]
	auditTrail  api.Loader[api.AuditTrailEntry]
}

func New(apiClient *api.Client, caps access.Capabilities, jdb *journal.DB, user, pass string) *Server {
	return &Server{
		API:      apiClient,
		Caps:     caps,
		Journal:  jdb,
		Username: user,
		Password: pass,
	}
}

func (s *Server) Start(addr string) error {
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// API Group
	mux.HandleFunc("GET /api/capabilities", s.basicAuth(s.handleCapabilities))
	mux.HandleFunc("GET /api/theme", s.basicAuth(s.handleTheme))
	mux.HandleFunc("GET /api/sessions", s.basicAuth(s.handleSessions))
	mux.HandleFunc("GET /api/companies", s.basicAuth(s.handleCompanies))
	mux.HandleFunc("GET /api/programs", s.basicAuth(s.handlePrograms))
	mux.HandleFunc("GET /api/records/{type}", s.basicAuth(s.handleRecords))
	mux.HandleFunc("GET /api/invoices", s.basicAuth(s.finance(s.handleInvoices)))
	mux.HandleFunc("GET /api/payments", s.basicAuth(s.finance(s.handlePayments)))
	mux.HandleFunc("GET /api/credit-notes", s.basicAuth(s.finance(s.handleCreditNotes)))
	mux.HandleFunc("GET /api/audit-trail", s.basicAuth(s.finance(s.handleAuditTrail)))
	mux.HandleFunc("POST /api/actions", s.basicAuth(s.handleAction))

	// Static Files
	webRoot, err := fs.Sub(WebFS, "web")
	if err != nil {
		utils.Log.Fatal(err)
	}
	fileServer := http.FileServer(http.FS(webRoot))
	mux.Handle("/", s.basicAuthHandler(fileServer))

	return mux
}

func (s *Server) basicAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.Username == "" && s.Password == "" {
			next(w, r)
			return
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != s.Username || pass != s.Password {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}

func (s *Server) basicAuthHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.basicAuth(next.ServeHTTP)(w, r)
	})
}

// finance refuses routes the operator's capabilities do not cover. The
// platform enforces this server-side too; gating here keeps the tabs from
// even mounting, matching the console's behavior.
func (s *Server) finance(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.Caps.Finance {
			http.Error(w, "finance access required", http.StatusForbidden)
			return
		}
		next(w, r)
	}
}
