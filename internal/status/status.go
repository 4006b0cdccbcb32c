package status

// Lifecycle status codes of an A/S request. The backend owns the
// transition table; the gateway only resolves presentation metadata
// and decides which actions to offer.
const (
	Received           = "RECEIVED"
	Repairing          = "REPAIRING"
	WaitingForPayment  = "WAITING_FOR_PAYMENT"
	WaitingForDelivery = "WAITING_FOR_DELIVERY"
	Completed          = "COMPLETED"
)

// Assignment status codes. Only meaningful while the lifecycle status
// is RECEIVED.
const (
	AssignPending   = "PENDING"
	AssignAccepted  = "ACCEPTED"
	AssignExpired   = "EXPIRED"
	AssignRejected  = "REJECTED"
	AssignCancelled = "CANCELLED"
)

// Roles carried in the backend-issued token.
const (
	RoleAdmin    = "ADMIN"
	RoleStaff    = "STAFF"
	RoleEngineer = "ENGINEER"
	RolePending  = "PENDING"
	RoleNone     = ""
)

// Meta is presentation metadata for one status badge.
type Meta struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

var fallback = Meta{Label: "", Color: "#9CA3AF"}

var lifecycleMeta = map[string]Meta{
	Received:           {Label: "수리 접수", Color: "#3B82F6"},
	Repairing:          {Label: "수리 중", Color: "#F59E0B"},
	WaitingForPayment:  {Label: "입금 대기", Color: "#8B5CF6"},
	WaitingForDelivery: {Label: "배송 대기", Color: "#06B6D4"},
	Completed:          {Label: "수리 완료", Color: "#10B981"},
}

// Assignment badges read differently depending on who is looking:
// an engineer sees a pending assignment as a call to action, admin and
// staff see it as a waiting state.
var assignmentMeta = map[string]Meta{
	AssignPending:   {Label: "배정 대기", Color: "#F59E0B"},
	AssignAccepted:  {Label: "배정 수락", Color: "#10B981"},
	AssignExpired:   {Label: "배정 만료", Color: "#6B7280"},
	AssignRejected:  {Label: "배정 거절", Color: "#EF4444"},
	AssignCancelled: {Label: "배정 취소", Color: "#6B7280"},
}

var engineerAssignmentMeta = map[string]Meta{
	AssignPending:   {Label: "접수 확인 필요", Color: "#EF4444"},
	AssignAccepted:  {Label: "수락함", Color: "#10B981"},
	AssignExpired:   {Label: "기한 만료", Color: "#6B7280"},
	AssignRejected:  {Label: "거절함", Color: "#9CA3AF"},
	AssignCancelled: {Label: "취소됨", Color: "#6B7280"},
}

// Resolve returns the badge metadata for any status code on either
// axis. Unknown codes come back as neutral gray with the raw code as
// label so the table never renders blank and never panics.
func Resolve(role, code string) Meta {
	if m, ok := lifecycleMeta[code]; ok {
		return m
	}
	if role == RoleEngineer {
		if m, ok := engineerAssignmentMeta[code]; ok {
			return m
		}
	}
	if m, ok := assignmentMeta[code]; ok {
		return m
	}
	m := fallback
	m.Label = code
	return m
}

// LifecycleCodes lists every lifecycle status in workflow order.
func LifecycleCodes() []string {
	return []string{Received, Repairing, WaitingForPayment, WaitingForDelivery, Completed}
}

// AssignmentCodes lists every assignment status.
func AssignmentCodes() []string {
	return []string{AssignPending, AssignAccepted, AssignExpired, AssignRejected, AssignCancelled}
}

// Roles lists every role the token can carry.
func Roles() []string {
	return []string{RoleAdmin, RoleStaff, RoleEngineer, RolePending}
}
