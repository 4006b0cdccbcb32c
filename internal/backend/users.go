package backend

import (
	"context"
	"encoding/json"
	"fmt"

	"suriname/internal/page"
	"suriname/internal/search"
)

// User is an employee account.
type User struct {
	EmployeeID int64  `json:"employeeId"`
	LoginID    string `json:"loginId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Role       string `json:"role"`
	CreatedAt  string `json:"createdAt"`
}

// ListUsers returns employee accounts, paginated.
func (c *Client) ListUsers(ctx context.Context, q search.Query, pageIdx, size int) (page.Page[User], error) {
	var raw json.RawMessage
	if err := c.get(ctx, "/api/users", search.Encode(q, pageIdx, size), &raw); err != nil {
		return page.Empty[User](), err
	}
	return page.Normalize[User](raw)
}

// UpdateUserRole changes an account's role; approving a PENDING signup
// is this same call.
func (c *Client) UpdateUserRole(ctx context.Context, id int64, role string) error {
	return c.put(ctx, fmt.Sprintf("/api/users/%d/role", id), map[string]string{"role": role}, nil)
}

// ListEngineers returns accounts eligible for assignment.
func (c *Client) ListEngineers(ctx context.Context) ([]User, error) {
	var out []User
	if err := c.get(ctx, "/api/users/engineers", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
