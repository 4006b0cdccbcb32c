package request

import (
	"context"

	"suriname/internal/backend"
	"suriname/internal/page"
	"suriname/internal/search"
)

// RequestAPI is the slice of the backend client this module consumes.
type RequestAPI interface {
	ListRequests(ctx context.Context, q search.Query, pageIdx, size int) (page.Page[backend.Request], error)
	SearchRequests(ctx context.Context, filter search.Query, pageIdx, size int) (page.Page[backend.Request], error)
	GetRequest(ctx context.Context, id int64) (*backend.Request, error)
	PatchRequest(ctx context.Context, id int64, in backend.RequestInput) (*backend.Request, error)
	DeleteRequest(ctx context.Context, id int64) error
	UpdateAssignmentStatus(ctx context.Context, id int64, status, reason string) error
	UpdateAssignmentEngineer(ctx context.Context, id, employeeID int64) error
}

// SnapshotStore stashes per-session form baselines between edit
// round-trips.
type SnapshotStore interface {
	SaveViewState(ctx context.Context, sessionID, viewKey string, payload []byte) error
	ViewState(ctx context.Context, sessionID, viewKey string) ([]byte, bool)
}
