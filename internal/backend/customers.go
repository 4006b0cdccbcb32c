package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"suriname/internal/page"
	"suriname/internal/search"
)

// Customer is the customer record as the backend returns it.
type Customer struct {
	CustomerID int64  `json:"customerId"`
	Name       string `json:"customerName"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	Birth      string `json:"birth"`
	CreatedAt  string `json:"createdAt"`
}

// CustomerInput is the create/update payload.
type CustomerInput struct {
	Name    string `json:"customerName"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Birth   string `json:"birth"`
}

// GetCustomer fetches one customer.
func (c *Client) GetCustomer(ctx context.Context, id int64) (*Customer, error) {
	var out Customer
	if err := c.get(ctx, fmt.Sprintf("/api/customers/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListCustomers runs a filtered, paginated customer search.
func (c *Client) ListCustomers(ctx context.Context, q search.Query, pageIdx, size int) (page.Page[Customer], error) {
	var raw json.RawMessage
	if err := c.get(ctx, "/api/customers", search.Encode(q, pageIdx, size), &raw); err != nil {
		return page.Empty[Customer](), err
	}
	return page.Normalize[Customer](raw)
}

// CreateCustomer registers a customer.
func (c *Client) CreateCustomer(ctx context.Context, in CustomerInput) (*Customer, error) {
	var out Customer
	if err := c.post(ctx, "/api/customers", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCustomer replaces a customer record.
func (c *Client) UpdateCustomer(ctx context.Context, id int64, in CustomerInput) (*Customer, error) {
	var out Customer
	if err := c.put(ctx, fmt.Sprintf("/api/customers/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadCustomers forwards a bulk-registration spreadsheet. The file is
// passed through as-is; parsing and row validation happen on the
// backend, which reports per-row failures in the result.
func (c *Client) UploadCustomers(ctx context.Context, filename string, file io.Reader) (json.RawMessage, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/customers/upload", &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Accept", "application/json")
	if tok := TokenFrom(ctx); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &APIError{StatusCode: 0, Code: "NETWORK_ERROR", Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, &APIError{StatusCode: resp.StatusCode, Code: "READ_ERROR", Message: err.Error()}
	}
	if resp.StatusCode == http.StatusUnauthorized && c.onUnauthorized != nil {
		c.onUnauthorized(ctx)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, normalizeError(resp.StatusCode, raw)
	}
	return raw, nil
}

// AutocompleteCustomers returns name matches for a keyword prefix.
func (c *Client) AutocompleteCustomers(ctx context.Context, keyword string) ([]Customer, error) {
	vals := url.Values{}
	vals.Set("keyword", keyword)
	var out []Customer
	if err := c.get(ctx, "/api/customers/autocomplete", vals, &out); err != nil {
		return nil, err
	}
	return out, nil
}
