package status

// Capabilities is the single place that turns a role into UI-facing
// permissions. This gates menus and action buttons only; every call the
// gateway forwards still carries the backend token and the backend makes
// the real authorization decision.
type Capabilities struct {
	CanManageCustomers bool `json:"canManageCustomers"`
	CanManageProducts  bool `json:"canManageProducts"`
	CanManageRequests  bool `json:"canManageRequests"`
	CanViewPayments    bool `json:"canViewPayments"`
	CanViewDeliveries  bool `json:"canViewDeliveries"`
	CanManageStaff     bool `json:"canManageStaff"`
	CanViewPredictions bool `json:"canViewPredictions"`
	CanAcceptAssigned  bool `json:"canAcceptAssigned"`
}

// CapabilitiesFor resolves the capability set for a role. Unknown or
// empty roles get the zero value, which hides everything.
func CapabilitiesFor(role string) Capabilities {
	switch role {
	case RoleAdmin:
		return Capabilities{
			CanManageCustomers: true,
			CanManageProducts:  true,
			CanManageRequests:  true,
			CanViewPayments:    true,
			CanViewDeliveries:  true,
			CanManageStaff:     true,
			CanViewPredictions: true,
		}
	case RoleStaff:
		return Capabilities{
			CanManageCustomers: true,
			CanManageProducts:  true,
			CanManageRequests:  true,
			CanViewPayments:    true,
			CanViewDeliveries:  true,
			CanViewPredictions: true,
		}
	case RoleEngineer:
		return Capabilities{
			CanManageRequests: true,
			CanAcceptAssigned: true,
		}
	default:
		return Capabilities{}
	}
}

// CanAccept reports whether the viewer may accept the assignment.
// Assignment actions are only solicited while the request itself is
// still in RECEIVED.
func CanAccept(role, lifecycle, assignment string) bool {
	return role == RoleEngineer && lifecycle == Received && assignment == AssignPending
}

// CanReject reports whether the viewer may reject the assignment.
func CanReject(role, lifecycle, assignment string) bool {
	return CanAccept(role, lifecycle, assignment)
}

// CanReassign reports whether the viewer may hand the request to a new
// engineer. Reassignment is the administrative override for stalled
// assignments; the backend resets the new assignee to PENDING.
func CanReassign(role, lifecycle, assignment string) bool {
	if role != RoleAdmin && role != RoleStaff {
		return false
	}
	if lifecycle != Received {
		return false
	}
	switch assignment {
	case AssignRejected, AssignCancelled, AssignExpired:
		return true
	}
	return false
}

// CanEdit reports whether the viewer may edit the underlying request.
func CanEdit(role, lifecycle, assignment string) bool {
	if role != RoleAdmin && role != RoleStaff {
		return false
	}
	if lifecycle != Received {
		return false
	}
	return assignment == AssignPending || assignment == AssignRejected
}

// CanDelete mirrors CanEdit.
func CanDelete(role, lifecycle, assignment string) bool {
	return CanEdit(role, lifecycle, assignment)
}
