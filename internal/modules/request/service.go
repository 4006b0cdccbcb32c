package request

import (
	"context"
	"strconv"
	"strings"

	"suriname/internal/backend"
	"suriname/internal/form"
	"suriname/internal/page"
	"suriname/internal/search"
	"suriname/internal/status"
)

// Service implements the request list and the assignment state machine
// actions. Every transition goes to the backend first and then
// re-fetches the record; nothing here mutates optimistically, so the
// gateway can never show a status the backend does not hold.
type Service struct {
	api       RequestAPI
	snapshots SnapshotStore
	loggerf   func(format string, args ...interface{})
}

func NewService(api RequestAPI, snapshots SnapshotStore, loggerf func(format string, args ...interface{})) *Service {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Service{api: api, snapshots: snapshots, loggerf: loggerf}
}

// Search runs the filtered list with one-step drift correction: when a
// delete left the requested page past the end, the previous page is
// fetched instead, once.
func (s *Service) Search(ctx context.Context, role string, f SearchFilter) (page.Page[View], error) {
	q := search.Query{
		"requestNo":        f.RequestNo,
		"customerName":     f.CustomerName,
		"productName":      f.ProductName,
		"employeeName":     f.EngineerName,
		"status":           f.Statuses,
		"assignmentStatus": f.AssignmentStatus,
		"startDate":        f.StartDate,
		"endDate":          f.EndDate,
	}
	size := f.Size
	if size <= 0 {
		size = 10
	}
	pageIdx := f.Page
	if pageIdx < 0 {
		pageIdx = 0
	}

	p, err := s.api.SearchRequests(ctx, q, pageIdx, size)
	if err != nil {
		return page.Empty[View](), err
	}
	if search.NeedsDriftCorrection(len(p.Content), p.TotalElements, pageIdx) {
		pageIdx--
		s.loggerf("request: page drifted past end, refetching page %d", pageIdx)
		if p, err = s.api.SearchRequests(ctx, q, pageIdx, size); err != nil {
			return page.Empty[View](), err
		}
	}

	out := page.Page[View]{
		Content:       make([]View, 0, len(p.Content)),
		Number:        p.Number,
		Size:          p.Size,
		TotalPages:    p.TotalPages,
		TotalElements: p.TotalElements,
		First:         p.First,
		Last:          p.Last,
	}
	for _, r := range p.Content {
		out.Content = append(out.Content, viewOf(role, r))
	}
	return out, nil
}

// Get returns one request decorated for the viewing role.
func (s *Service) Get(ctx context.Context, role string, id int64) (*View, error) {
	r, err := s.api.GetRequest(ctx, id)
	if err != nil {
		if backend.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	v := viewOf(role, *r)
	return &v, nil
}

// Accept confirms a pending assignment, then re-fetches.
func (s *Service) Accept(ctx context.Context, role string, id int64) (*View, error) {
	r, err := s.api.GetRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if role != status.RoleEngineer {
		return nil, ErrForbidden
	}
	if !status.CanAccept(role, r.Status, r.AssignmentStatus) {
		return nil, ErrInvalidState
	}
	if err := s.api.UpdateAssignmentStatus(ctx, id, status.AssignAccepted, ""); err != nil {
		return nil, err
	}
	return s.Get(ctx, role, id)
}

// Reject declines a pending assignment. The reason is mandatory and
// checked before any call leaves the gateway.
func (s *Service) Reject(ctx context.Context, role string, id int64, reason string) (*View, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, ErrReasonRequired
	}
	r, err := s.api.GetRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if role != status.RoleEngineer {
		return nil, ErrForbidden
	}
	if !status.CanReject(role, r.Status, r.AssignmentStatus) {
		return nil, ErrInvalidState
	}
	if err := s.api.UpdateAssignmentStatus(ctx, id, status.AssignRejected, reason); err != nil {
		return nil, err
	}
	return s.Get(ctx, role, id)
}

// Reassign hands the request to a new engineer; the backend resets the
// assignment to PENDING under the new assignee.
func (s *Service) Reassign(ctx context.Context, role string, id, employeeID int64) (*View, error) {
	if employeeID <= 0 {
		return nil, ErrValidation
	}
	r, err := s.api.GetRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if !status.CanReassign(role, r.Status, r.AssignmentStatus) {
		if role != status.RoleAdmin && role != status.RoleStaff {
			return nil, ErrForbidden
		}
		return nil, ErrInvalidState
	}
	if err := s.api.UpdateAssignmentEngineer(ctx, id, employeeID); err != nil {
		return nil, err
	}
	return s.Get(ctx, role, id)
}

// Edit applies the edit form. A payload identical to the last-saved
// snapshot skips the backend call entirely and reports saved=false.
func (s *Service) Edit(ctx context.Context, role, sessionID string, id int64, in EditRequest) (*View, bool, error) {
	r, err := s.api.GetRequest(ctx, id)
	if err != nil {
		return nil, false, err
	}
	if !status.CanEdit(role, r.Status, r.AssignmentStatus) {
		if role != status.RoleAdmin && role != status.RoleStaff {
			return nil, false, ErrForbidden
		}
		return nil, false, ErrInvalidState
	}

	tracker, _ := form.NewTracker(nil)
	if snap, ok := s.snapshots.ViewState(ctx, sessionID, snapshotKey(id)); ok {
		tracker.Restore(snap)
	}
	dirty, err := tracker.Dirty(in)
	if err != nil {
		return nil, false, ErrValidation
	}
	if !dirty {
		v := viewOf(role, *r)
		return &v, false, nil
	}

	updated, err := s.api.PatchRequest(ctx, id, backend.RequestInput{
		CustomerID: in.CustomerID,
		ProductID:  in.ProductID,
		EmployeeID: in.EmployeeID,
		Content:    in.Content,
		DueDate:    in.DueDate,
	})
	if err != nil {
		return nil, false, err
	}

	if err := tracker.MarkSaved(in); err == nil {
		_ = s.snapshots.SaveViewState(ctx, sessionID, snapshotKey(id), tracker.Snapshot())
	}

	v := viewOf(role, *updated)
	return &v, true, nil
}

// Delete removes a request after the same gating as Edit.
func (s *Service) Delete(ctx context.Context, role string, id int64) error {
	r, err := s.api.GetRequest(ctx, id)
	if err != nil {
		return err
	}
	if !status.CanDelete(role, r.Status, r.AssignmentStatus) {
		if role != status.RoleAdmin && role != status.RoleStaff {
			return ErrForbidden
		}
		return ErrInvalidState
	}
	return s.api.DeleteRequest(ctx, id)
}

func snapshotKey(id int64) string {
	return "request:" + strconv.FormatInt(id, 10)
}
