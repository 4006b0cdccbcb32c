package request

import (
	"suriname/internal/backend"
	"suriname/internal/status"
)

// SearchFilter is the list view's filter form.
type SearchFilter struct {
	RequestNo        string   `json:"requestNo"`
	CustomerName     string   `json:"customerName"`
	ProductName      string   `json:"productName"`
	EngineerName     string   `json:"employeeName"`
	Statuses         []string `json:"statuses"`
	AssignmentStatus string   `json:"assignmentStatus"`
	StartDate        string   `json:"startDate"`
	EndDate          string   `json:"endDate"`
	Page             int      `json:"page"`
	Size             int      `json:"size"`
}

// RejectRequest carries the mandatory free-text reason.
type RejectRequest struct {
	Reason string `json:"reason"`
}

// ReassignRequest picks the new engineer.
type ReassignRequest struct {
	EmployeeID int64 `json:"employeeId" binding:"required"`
}

// EditRequest is the edit form payload.
type EditRequest struct {
	CustomerID int64  `json:"customerId"`
	ProductID  int64  `json:"productId"`
	EmployeeID int64  `json:"employeeId"`
	Content    string `json:"content"`
	DueDate    string `json:"dueDate"`
}

// View decorates a backend request with the badge metadata and action
// flags the table renders, resolved for the viewing role.
type View struct {
	backend.Request
	StatusMeta     status.Meta `json:"statusMeta"`
	AssignmentMeta status.Meta `json:"assignmentMeta"`
	CanAccept      bool        `json:"canAccept"`
	CanReject      bool        `json:"canReject"`
	CanReassign    bool        `json:"canReassign"`
	CanEdit        bool        `json:"canEdit"`
	CanDelete      bool        `json:"canDelete"`
}

func viewOf(role string, r backend.Request) View {
	return View{
		Request:        r,
		StatusMeta:     status.Resolve(role, r.Status),
		AssignmentMeta: status.Resolve(role, r.AssignmentStatus),
		CanAccept:      status.CanAccept(role, r.Status, r.AssignmentStatus),
		CanReject:      status.CanReject(role, r.Status, r.AssignmentStatus),
		CanReassign:    status.CanReassign(role, r.Status, r.AssignmentStatus),
		CanEdit:        status.CanEdit(role, r.Status, r.AssignmentStatus),
		CanDelete:      status.CanDelete(role, r.Status, r.AssignmentStatus),
	}
}
