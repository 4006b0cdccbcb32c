package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"suriname/internal/page"
	"suriname/internal/search"
)

// Product is a catalog entry.
type Product struct {
	ProductID    int64  `json:"productId"`
	Name         string `json:"productName"`
	Brand        string `json:"productBrand"`
	ModelCode    string `json:"modelCode"`
	SerialNumber string `json:"serialNumber"`
	CategoryID   int64  `json:"categoryId"`
	CategoryName string `json:"categoryName"`
	CustomerID   int64  `json:"customerId"`
	ImageURL     string `json:"imageUrl"`
	CreatedAt    string `json:"createdAt"`
}

// ProductInput is the create/update payload.
type ProductInput struct {
	Name         string `json:"productName"`
	Brand        string `json:"productBrand"`
	ModelCode    string `json:"modelCode"`
	SerialNumber string `json:"serialNumber"`
	CategoryID   int64  `json:"categoryId"`
	CustomerID   int64  `json:"customerId"`
	ImageURL     string `json:"imageUrl"`
}

// SearchProducts posts the filter body with page/size on the query
// string, the shape the catalog search endpoint expects.
func (c *Client) SearchProducts(ctx context.Context, filter search.Query, pageIdx, size int) (page.Page[Product], error) {
	vals := url.Values{}
	vals.Set("page", strconv.Itoa(pageIdx))
	vals.Set("size", strconv.Itoa(size))
	var raw json.RawMessage
	if err := c.post(ctx, "/api/products/search", vals, search.Sanitize(filter), &raw); err != nil {
		return page.Empty[Product](), err
	}
	return page.Normalize[Product](raw)
}

// CreateProduct registers a product.
func (c *Client) CreateProduct(ctx context.Context, in ProductInput) (*Product, error) {
	var out Product
	if err := c.post(ctx, "/api/products", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProduct replaces a product record.
func (c *Client) UpdateProduct(ctx context.Context, id int64, in ProductInput) (*Product, error) {
	var out Product
	if err := c.put(ctx, fmt.Sprintf("/api/products/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteProduct removes one product.
func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/products/%d", id), nil)
}

// BulkDeleteProducts removes the selected products in one call.
func (c *Client) BulkDeleteProducts(ctx context.Context, ids []int64) error {
	return c.post(ctx, "/api/products/delete", nil, ids, nil)
}
