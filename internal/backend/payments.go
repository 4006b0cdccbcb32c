package backend

import (
	"context"
	"encoding/json"

	"suriname/internal/page"
	"suriname/internal/search"
)

// Payment is one payment row, including the virtual account the
// customer wires the repair fee to.
type Payment struct {
	PaymentID       int64  `json:"paymentId"`
	RequestNo       string `json:"requestNo"`
	CustomerName    string `json:"customerName"`
	Amount          int64  `json:"amount"`
	Status          string `json:"paymentStatus"`
	Bank            string `json:"bank"`
	AccountNumber   string `json:"accountNumber"`
	AccountHolder   string `json:"accountHolder"`
	DepositDeadline string `json:"depositDeadline"`
	PaidAt          string `json:"paidAt"`
	CreatedAt       string `json:"createdAt"`
}

// VirtualAccountInput requests issuance of a virtual account for a
// quoted repair.
type VirtualAccountInput struct {
	RequestID int64  `json:"requestId"`
	Amount    int64  `json:"amount"`
	Bank      string `json:"bank"`
}

// ListPayments runs the filtered payment list.
func (c *Client) ListPayments(ctx context.Context, q search.Query, pageIdx, size int) (page.Page[Payment], error) {
	var raw json.RawMessage
	if err := c.get(ctx, "/api/payments", search.Encode(q, pageIdx, size), &raw); err != nil {
		return page.Empty[Payment](), err
	}
	return page.Normalize[Payment](raw)
}

// BulkDeletePayments removes the selected payments in one call.
func (c *Client) BulkDeletePayments(ctx context.Context, ids []int64) error {
	return c.delete(ctx, "/api/payments", ids)
}

// CreateVirtualAccount asks the backend's payment provider for a new
// virtual account.
func (c *Client) CreateVirtualAccount(ctx context.Context, in VirtualAccountInput) (*Payment, error) {
	var out Payment
	if err := c.post(ctx, "/api/payments/virtual-account", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
