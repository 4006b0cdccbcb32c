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

// Request is one A/S ticket as the backend returns it. Status and
// AssignmentStatus are two independent axes; the assignment axis only
// means anything while Status is RECEIVED.
type Request struct {
	RequestID        int64  `json:"requestId"`
	RequestNo        string `json:"requestNo"`
	Status           string `json:"status"`
	AssignmentStatus string `json:"assignmentStatus"`
	CustomerID       int64  `json:"customerId"`
	CustomerName     string `json:"customerName"`
	CustomerPhone    string `json:"customerPhone"`
	ProductID        int64  `json:"productId"`
	ProductName      string `json:"productName"`
	ModelCode        string `json:"modelCode"`
	EngineerID       int64  `json:"employeeId"`
	EngineerName     string `json:"employeeName"`
	Content          string `json:"content"`
	RejectionReason  string `json:"rejectionReason"`
	CreatedAt        string `json:"createdAt"`
	DueDate          string `json:"dueDate"`
}

// RequestInput is the editable subset of a request.
type RequestInput struct {
	CustomerID int64  `json:"customerId"`
	ProductID  int64  `json:"productId"`
	EmployeeID int64  `json:"employeeId"`
	Content    string `json:"content"`
	DueDate    string `json:"dueDate"`
}

// ListRequests runs the filter-by-query-param list endpoint.
func (c *Client) ListRequests(ctx context.Context, q search.Query, pageIdx, size int) (page.Page[Request], error) {
	var raw json.RawMessage
	if err := c.get(ctx, "/api/requests", search.Encode(q, pageIdx, size), &raw); err != nil {
		return page.Empty[Request](), err
	}
	return page.Normalize[Request](raw)
}

// SearchRequests posts a JSON filter body with page/size on the query
// string.
func (c *Client) SearchRequests(ctx context.Context, filter search.Query, pageIdx, size int) (page.Page[Request], error) {
	vals := url.Values{}
	vals.Set("page", strconv.Itoa(pageIdx))
	vals.Set("size", strconv.Itoa(size))
	var raw json.RawMessage
	if err := c.post(ctx, "/api/requests/search", vals, search.Sanitize(filter), &raw); err != nil {
		return page.Empty[Request](), err
	}
	return page.Normalize[Request](raw)
}

// GetRequest fetches one request.
func (c *Client) GetRequest(ctx context.Context, id int64) (*Request, error) {
	var out Request
	if err := c.get(ctx, fmt.Sprintf("/api/requests/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PatchRequest applies a partial edit.
func (c *Client) PatchRequest(ctx context.Context, id int64, in RequestInput) (*Request, error) {
	var out Request
	if err := c.patch(ctx, fmt.Sprintf("/api/requests/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteRequest removes one request.
func (c *Client) DeleteRequest(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/requests/%d", id), nil)
}

// UpdateAssignmentStatus submits an accept or reject decision. The
// reason travels with rejections only.
func (c *Client) UpdateAssignmentStatus(ctx context.Context, id int64, status, reason string) error {
	body := map[string]string{"status": status}
	if reason != "" {
		body["reason"] = reason
	}
	return c.put(ctx, fmt.Sprintf("/api/requests/%d/assignment-status", id), body, nil)
}

// UpdateAssignmentEngineer hands the request to a new engineer; the
// backend resets the assignment to PENDING under the new assignee.
func (c *Client) UpdateAssignmentEngineer(ctx context.Context, id, employeeID int64) error {
	return c.put(ctx, fmt.Sprintf("/api/requests/%d/assignment-engineer", id),
		map[string]int64{"employeeId": employeeID}, nil)
}
