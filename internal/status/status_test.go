package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Every known code must resolve to a non-empty label and a non-fallback
// color for every role, so no table cell ever renders blank.
func TestResolve_TotalOverKnownCodes(t *testing.T) {
	codes := append(LifecycleCodes(), AssignmentCodes()...)
	for _, role := range append(Roles(), RoleNone) {
		for _, code := range codes {
			m := Resolve(role, code)
			assert.NotEmpty(t, m.Label, "role %s code %s", role, code)
			assert.NotEmpty(t, m.Color, "role %s code %s", role, code)
		}
	}
}

func TestResolve_UnknownCodeFallsBackGray(t *testing.T) {
	m := Resolve(RoleAdmin, "SOMETHING_NEW")

	assert.Equal(t, "SOMETHING_NEW", m.Label)
	assert.Equal(t, "#9CA3AF", m.Color)
}

func TestResolve_EngineerSeesActionablePending(t *testing.T) {
	eng := Resolve(RoleEngineer, AssignPending)
	staff := Resolve(RoleStaff, AssignPending)

	assert.Equal(t, "접수 확인 필요", eng.Label)
	assert.Equal(t, "배정 대기", staff.Label)
	assert.NotEqual(t, eng.Color, staff.Color)
}

func TestResolve_LifecycleIgnoresRole(t *testing.T) {
	for _, role := range Roles() {
		assert.Equal(t, "수리 중", Resolve(role, Repairing).Label)
	}
}

func TestCanAccept(t *testing.T) {
	assert.True(t, CanAccept(RoleEngineer, Received, AssignPending))

	assert.False(t, CanAccept(RoleAdmin, Received, AssignPending))
	assert.False(t, CanAccept(RoleStaff, Received, AssignPending))
	assert.False(t, CanAccept(RoleEngineer, Repairing, AssignPending))
	assert.False(t, CanAccept(RoleEngineer, Received, AssignAccepted))
	assert.False(t, CanAccept(RoleEngineer, Received, AssignRejected))
}

func TestCanReject_MirrorsCanAccept(t *testing.T) {
	for _, role := range Roles() {
		for _, lc := range LifecycleCodes() {
			for _, as := range AssignmentCodes() {
				assert.Equal(t, CanAccept(role, lc, as), CanReject(role, lc, as))
			}
		}
	}
}

func TestCanReassign(t *testing.T) {
	for _, as := range []string{AssignRejected, AssignCancelled, AssignExpired} {
		assert.True(t, CanReassign(RoleAdmin, Received, as), as)
		assert.True(t, CanReassign(RoleStaff, Received, as), as)
	}

	assert.False(t, CanReassign(RoleEngineer, Received, AssignRejected))
	assert.False(t, CanReassign(RoleAdmin, Received, AssignPending))
	assert.False(t, CanReassign(RoleAdmin, Received, AssignAccepted))
	assert.False(t, CanReassign(RoleAdmin, Repairing, AssignRejected))
}

func TestCanEditAndDelete(t *testing.T) {
	for _, as := range []string{AssignPending, AssignRejected} {
		assert.True(t, CanEdit(RoleAdmin, Received, as), as)
		assert.True(t, CanEdit(RoleStaff, Received, as), as)
	}

	assert.False(t, CanEdit(RoleAdmin, Received, AssignAccepted))
	assert.False(t, CanEdit(RoleAdmin, Completed, AssignPending))
	assert.False(t, CanEdit(RoleEngineer, Received, AssignPending))

	for _, role := range Roles() {
		for _, lc := range LifecycleCodes() {
			for _, as := range AssignmentCodes() {
				assert.Equal(t, CanEdit(role, lc, as), CanDelete(role, lc, as))
			}
		}
	}
}

func TestCapabilitiesFor(t *testing.T) {
	admin := CapabilitiesFor(RoleAdmin)
	assert.True(t, admin.CanManageStaff)
	assert.True(t, admin.CanManageCustomers)
	assert.False(t, admin.CanAcceptAssigned)

	staff := CapabilitiesFor(RoleStaff)
	assert.False(t, staff.CanManageStaff)
	assert.True(t, staff.CanViewPayments)

	eng := CapabilitiesFor(RoleEngineer)
	assert.True(t, eng.CanAcceptAssigned)
	assert.True(t, eng.CanManageRequests)
	assert.False(t, eng.CanManageCustomers)

	assert.Equal(t, Capabilities{}, CapabilitiesFor(RolePending))
	assert.Equal(t, Capabilities{}, CapabilitiesFor(""))
	assert.Equal(t, Capabilities{}, CapabilitiesFor("SUPERUSER"))
}
