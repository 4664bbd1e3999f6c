package api

import (
	"context"
	"net/http"
)

type Payment struct {
	ID            string  `json:"id"`
	InvoiceID     string  `json:"invoice_id"`
	InvoiceNumber string  `json:"invoice_number"`
	Amount        float64 `json:"amount"`
	Method        string  `json:"method"`
	Reference     string  `json:"reference"`
	PaidDate      string  `json:"paid_date"`
}

func (c *Client) ListPayments(ctx context.Context, f Filters) ([]Payment, error) {
	var out []Payment
	err := c.getJSON(ctx, "/finance/admin/payments", f.Encode(), &out)
	return out, err
}

// DeletePayment removes a recorded payment; the reason travels in the DELETE
// body, unlike void endpoints.
func (c *Client) DeletePayment(ctx context.Context, id, reason string) error {
	payload := map[string]string{"reason": reason}
	return c.sendJSON(ctx, http.MethodDelete, "/finance/admin/payments/"+id, nil, payload, nil)
}
