package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/arjunaarunatheym-jpg/MddrcFinanceHR-sub001/pkg/finance"
)

// CreditNote reduces a previously issued invoice's amount. Numbering works
// like invoices (CN prefix, per-year/month sequence).
type CreditNote struct {
	ID            string  `json:"id"`
	Number        string  `json:"number"`
	Year          int     `json:"year"`
	Month         int     `json:"month"`
	Sequence      int     `json:"sequence"`
	InvoiceID     string  `json:"invoice_id"`
	InvoiceNumber string  `json:"invoice_number"`
	Amount        float64 `json:"amount"`
	Status        string  `json:"status"`
	IssuedDate    string  `json:"issued_date"`
}

func (cn CreditNote) Components() (finance.DocNumber, error) {
	if cn.Year != 0 {
		return finance.DocNumber{
			Prefix:   "CN",
			Org:      finance.OrgCode,
			Year:     cn.Year,
			Month:    cn.Month,
			Sequence: cn.Sequence,
		}, nil
	}
	return finance.ParseDocNumber(cn.Number)
}

func (c *Client) ListCreditNotes(ctx context.Context, f Filters) ([]CreditNote, error) {
	var out []CreditNote
	err := c.getJSON(ctx, "/finance/credit-notes", f.Encode(), &out)
	return out, err
}

func (c *Client) EditCreditNote(ctx context.Context, id string, fields map[string]string, reason string) error {
	payload := map[string]any{"fields": fields, "reason": reason}
	return c.sendJSON(ctx, http.MethodPut, "/finance/admin/credit-notes/"+id+"/edit", nil, payload, nil)
}

func (c *Client) BackdateCreditNote(ctx context.Context, id, date, reason string) error {
	payload := map[string]string{"issued_date": date, "reason": reason}
	return c.sendJSON(ctx, http.MethodPut, "/finance/admin/credit-notes/"+id+"/backdate", nil, payload, nil)
}

func (c *Client) EditCreditNoteNumber(ctx context.Context, id string, year, month, sequence int, reason string) error {
	payload := map[string]any{
		"year":     year,
		"month":    month,
		"sequence": sequence,
		"reason":   reason,
	}
	return c.sendJSON(ctx, http.MethodPut, "/finance/admin/credit-notes/"+id+"/number", nil, payload, nil)
}

// VoidCreditNote voids a credit note. This endpoint takes the reason as a
// query parameter rather than a body field.
func (c *Client) VoidCreditNote(ctx context.Context, id, reason string) error {
	q := url.Values{}
	q.Set("reason", reason)
	return c.sendJSON(ctx, http.MethodPut, "/finance/admin/credit-notes/"+id+"/void", q, nil, nil)
}
