package backend

import (
	"context"
	"encoding/json"

	"suriname/internal/page"
	"suriname/internal/search"
)

// Quote is one repair quote row.
type Quote struct {
	QuoteID      int64  `json:"quoteId"`
	RequestNo    string `json:"requestNo"`
	CustomerName string `json:"customerName"`
	Amount       int64  `json:"cost"`
	IsApproved   bool   `json:"isApproved"`
	Description  string `json:"description"`
	CreatedAt    string `json:"createdAt"`
}

// QuoteInput creates a quote against a request, optionally from repair
// presets.
type QuoteInput struct {
	RequestID   int64   `json:"requestId"`
	Amount      int64   `json:"cost"`
	Description string  `json:"description"`
	PresetIDs   []int64 `json:"presetIds,omitempty"`
}

// ListQuotes runs the filtered quote list.
func (c *Client) ListQuotes(ctx context.Context, q search.Query, pageIdx, size int) (page.Page[Quote], error) {
	var raw json.RawMessage
	if err := c.get(ctx, "/api/quotes", search.Encode(q, pageIdx, size), &raw); err != nil {
		return page.Empty[Quote](), err
	}
	return page.Normalize[Quote](raw)
}

// CreateQuote registers a quote.
func (c *Client) CreateQuote(ctx context.Context, in QuoteInput) (*Quote, error) {
	var out Quote
	if err := c.post(ctx, "/api/quotes", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BulkDeleteQuotes removes the selected quotes in one call.
func (c *Client) BulkDeleteQuotes(ctx context.Context, ids []int64) error {
	return c.delete(ctx, "/api/quotes", ids)
}
