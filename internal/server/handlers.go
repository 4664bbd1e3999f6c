package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/arjunaarunatheym-jpg/MddrcFinanceHR-sub001/pkg/api"
	"github.com/arjunaarunatheym-jpg/MddrcFinanceHR-sub001/pkg/journal"
)

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// writeAPIError passes the upstream detail through so the page can show it
// verbatim, the way the console toasts server messages.
func writeAPIError(w http.ResponseWriter, err error) {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(apiErr.Status)
		json.NewEncoder(w).Encode(map[string]string{"detail": apiErr.Detail})
		return
	}
	http.Error(w, err.Error(), http.StatusBadGateway)
}

func filtersFromQuery(r *http.Request) api.Filters {
	q := r.URL.Query()
	return api.Filters{
		SessionID: api.ParamValue(q.Get("session_id")),
		CompanyID: api.ParamValue(q.Get("company_id")),
		ProgramID: api.ParamValue(q.Get("program_id")),
		StartDate: api.ParamValue(q.Get("start_date")),
		EndDate:   api.ParamValue(q.Get("end_date")),
		Search:    api.ParamValue(q.Get("search")),
		Status:    api.ParamValue(q.Get("status")),
	}
}

func (s *Server) handleCapabilities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Caps)
}

func (s *Server) handleTheme(w http.ResponseWriter, r *http.Request) {
	t, err := s.API.Settings(r.Context())
	if err != nil {
		writeAPIError(w, err)
		return
	}
	writeJSON(w, t)
}

func (s *Server) handleSessions(w http.ResponseWriter, r *http.Request) {
	list, err := s.API.Sessions(r.Context())
	if err != nil {
		writeAPIError(w, err)
		return
	}
	writeJSON(w, list)
}

func (s *Server) handleCompanies(w http.ResponseWriter, r *http.Request) {
	list, err := s.API.Companies(r.Context())
	if err != nil {
		writeAPIError(w, err)
		return
	}
	writeJSON(w, list)
}

func (s *Server) handlePrograms(w http.ResponseWriter, r *http.Request) {
	list, err := s.API.Programs(r.Context())
	if err != nil {
		writeAPIError(w, err)
		return
	}
	writeJSON(w, list)
}

func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	recordType := r.PathValue("type")
	if !api.ValidRecordType(recordType) {
		http.Error(w, "unknown record type", http.StatusBadRequest)
		return
	}
	list, err := s.API.ListRecords(r.Context(), recordType, filtersFromQuery(r))
	if err != nil {
		writeAPIError(w, err)
		return
	}
	writeJSON(w, list)
}

func (s *Server) handleInvoices(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	_, err := s.invoices.Load(r.Context(), func(ctx context.Context) ([]api.Invoice, error) {
		return s.API.ListInvoices(ctx, q.Get("status"), q.Get("search"))
	})
	if err != nil {
		writeAPIError(w, err)
		return
	}
	list, _ := s.invoices.Snapshot()
	writeJSON(w, list)
}

func (s *Server) handlePayments(w http.ResponseWriter, r *http.Request) {
	_, err := s.payments.Load(r.Context(), func(ctx context.Context) ([]api.Payment, error) {
		return s.API.ListPayments(ctx, filtersFromQuery(r))
	})
	if err != nil {
		writeAPIError(w, err)
		return
	}
	list, _ := s.payments.Snapshot()
	writeJSON(w, list)
}

func (s *Server) handleCreditNotes(w http.ResponseWriter, r *http.Request) {
	_, err := s.creditNotes.Load(r.Context(), func(ctx context.Context) ([]api.CreditNote, error) {
		return s.API.ListCreditNotes(ctx, filtersFromQuery(r))
	})
	if err != nil {
		writeAPIError(w, err)
		return
	}
	list, _ := s.creditNotes.Snapshot()
	writeJSON(w, list)
}

func (s *Server) handleAuditTrail(w http.ResponseWriter, r *http.Request) {
	_, err := s.auditTrail.Load(r.Context(), func(ctx context.Context) ([]api.AuditTrailEntry, error) {
		return s.API.ListAuditTrail(ctx, filtersFromQuery(r))
	})
	if err != nil {
		writeAPIError(w, err)
		return
	}
	list, _ := s.auditTrail.Snapshot()
	writeJSON(w, list)
}

// ActionRequest is one mutating dialog confirmation from the page.
type ActionRequest struct {
	Resource string            `json:"resource"`
	Action   string            `json:"action"`
	ID       string            `json:"id"`
	Reason   string            `json:"reason"`
	Fields   map[string]string `json:"fields,omitempty"`
	Year     int               `json:"year,omitempty"`
	Month    int               `json:"month,omitempty"`
	Sequence int               `json:"sequence,omitempty"`
	Amount   float64           `json:"amount,omitempty"`
	Date     string            `json:"date,omitempty"`
}

func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	var req ActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Reason) == "" {
		http.Error(w, "a reason is required for this action", http.StatusBadRequest)
		return
	}

	financeResources := map[string]bool{
		"invoices": true, "payments": true, "credit-notes": true, "sequence": true,
	}
	if financeResources[req.Resource] && !s.Caps.Finance {
		http.Error(w, "finance access required", http.StatusForbidden)
		return
	}
	if req.Resource == "data-management" && !s.Caps.DataManagement {
		http.Error(w, "data management access required", http.StatusForbidden)
		return
	}

	err := s.dispatchAction(r.Context(), req)

	if s.Journal != nil {
		outcome := "ok"
		if err != nil {
			outcome = err.Error()
		}
		_ = s.Journal.Record(r.Context(), journal.Entry{
			Resource: req.Resource,
			RecordID: req.ID,
			Action:   req.Action,
			Reason:   req.Reason,
			Outcome:  outcome,
		})
	}

	if err != nil {
		writeAPIError(w, err)
		return
	}
	writeJSON(w, map[string]bool{"ok": true})
}

func (s *Server) dispatchAction(ctx context.Context, req ActionRequest) error {
	switch req.Resource {
	case "invoices":
		switch req.Action {
		case "void":
			return s.API.VoidInvoice(ctx, req.ID, req.Reason)
		case "backdate":
			return s.API.BackdateInvoice(ctx, req.ID, req.Date, req.Reason)
		case "number":
			return s.API.EditInvoiceNumber(ctx, req.ID, req.Year, req.Month, req.Sequence, req.Reason)
		case "override":
			return s.API.OverrideInvoice(ctx, req.ID, req.Amount, req.Reason)
		case "edit-paid":
			return s.API.EditPaidInvoice(ctx, req.ID, req.Fields, req.Reason)
		}
	case "payments":
		if req.Action == "delete" {
			return s.API.DeletePayment(ctx, req.ID, req.Reason)
		}
	case "credit-notes":
		switch req.Action {
		case "void":
			return s.API.VoidCreditNote(ctx, req.ID, req.Reason)
		case "backdate":
			return s.API.BackdateCreditNote(ctx, req.ID, req.Date, req.Reason)
		case "number":
			return s.API.EditCreditNoteNumber(ctx, req.ID, req.Year, req.Month, req.Sequence, req.Reason)
		case "edit":
			return s.API.EditCreditNote(ctx, req.ID, req.Fields, req.Reason)
		}
	case "sequence":
		if req.Action == "reset" {
			return s.API.ResetSequence(ctx, req.Fields["doc_type"], req.Year, req.Month, req.Reason)
		}
	case "data-management":
		recordType := req.Fields["type"]
		switch req.Action {
		case "edit":
			fields := make(map[string]string, len(req.Fields))
			for k, v := range req.Fields {
				if k != "type" {
					fields[k] = v
				}
			}
			return s.API.UpdateRecord(ctx, recordType, req.ID, fields, req.Reason)
		case "delete":
			return s.API.DeleteRecord(ctx, recordType, req.ID, req.Reason)
		}
	}
	return &api.APIError{Status: http.StatusBadRequest, Detail: "unknown action " + req.Resource + "/" + req.Action}
}
