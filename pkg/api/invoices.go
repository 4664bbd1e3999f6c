package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/arjunaarunatheym-jpg/MddrcFinanceHR-sub001/pkg/finance"
)

// Invoice mirrors one server invoice record. Year/Month/Sequence are the
// structured components of Number; older records may return them as zero,
// in which case Components falls back to parsing the formatted string.
type Invoice struct {
	ID          string  `json:"id"`
	Number      string  `json:"number"`
	Year        int     `json:"year"`
	Month       int     `json:"month"`
	Sequence    int     `json:"sequence"`
	CompanyName string  `json:"company_name"`
	SessionName string  `json:"session_name"`
	Amount      float64 `json:"amount"`
	Status      string  `json:"status"` // draft | issued | paid | void
	IssuedDate  string  `json:"issued_date"`
	PaidDate    string  `json:"paid_date,omitempty"`
}

// Components returns the structured number, parsing the formatted string
// only when the server did not supply the fields.
func (inv Invoice) Components() (finance.DocNumber, error) {
	if inv.Year != 0 {
		return finance.DocNumber{
			Prefix:   "INV",
			Org:      finance.OrgCode,
			Year:     inv.Year,
			Month:    inv.Month,
			Sequence: inv.Sequence,
		}, nil
	}
	return finance.ParseDocNumber(inv.Number)
}

func (c *Client) ListInvoices(ctx context.Context, status, search string) ([]Invoice, error) {
	q := url.Values{}
	if status != "" && status != "all" {
		q.Set("status", status)
	}
	if search != "" {
		q.Set("search", search)
	}
	var out []Invoice
	err := c.getJSON(ctx, "/finance/admin/invoices", q, &out)
	return out, err
}

// EditInvoiceNumber reassigns the year/month/sequence components of an
// invoice number. The server re-renders the formatted string.
func (c *Client) EditInvoiceNumber(ctx context.Context, id string, year, month, sequence int, reason string) error {
	payload := map[string]any{
		"year":     year,
		"month":    month,
		"sequence": sequence,
		"reason":   reason,
	}
	return c.sendJSON(ctx, http.MethodPut, "/finance/admin/invoices/"+id+"/number", nil, payload, nil)
}

func (c *Client) BackdateInvoice(ctx context.Context, id, date, reason string) error {
	payload := map[string]string{"issued_date": date, "reason": reason}
	return c.sendJSON(ctx, http.MethodPut, "/finance/admin/invoices/"+id+"/backdate", nil, payload, nil)
}

// OverrideInvoice replaces server-computed amounts with manual values.
func (c *Client) OverrideInvoice(ctx context.Context, id string, amount float64, reason string) error {
	payload := map[string]any{"amount": amount, "reason": reason}
	return c.sendJSON(ctx, http.MethodPut, "/finance/admin/invoices/"+id+"/override", nil, payload, nil)
}

// EditPaidInvoice edits an invoice that has already been marked paid.
func (c *Client) EditPaidInvoice(ctx context.Context, id string, fields map[string]string, reason string) error {
	payload := map[string]any{"fields": fields, "reason": reason}
	return c.sendJSON(ctx, http.MethodPut, "/finance/admin/invoices/"+id+"/edit-paid", nil, payload, nil)
}

func (c *Client) VoidInvoice(ctx context.Context, id, reason string) error {
	payload := map[string]string{"reason": reason}
	return c.sendJSON(ctx, http.MethodPost, "/finance/admin/invoices/"+id+"/void", nil, payload, nil)
}
