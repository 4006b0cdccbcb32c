package menu

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"suriname/internal/pkg/response"
	"suriname/internal/status"
)

// Item is one navigation entry. Children nest one level, matching the
// sidebar's group/leaf structure.
type Item struct {
	Label    string   `json:"label"`
	Path     string   `json:"path,omitempty"`
	Roles    []string `json:"-"`
	Children []Item   `json:"children,omitempty"`
}

// tree is the full static menu. Filtering by role happens per request;
// the backend still authorizes every call behind these paths.
var tree = []Item{
	{Label: "대시보드", Path: "/", Roles: []string{status.RoleAdmin, status.RoleStaff, status.RoleEngineer}},
	{
		Label: "고객 관리",
		Roles: []string{status.RoleAdmin, status.RoleStaff},
		Children: []Item{
			{Label: "고객 조회", Path: "/customer/list"},
			{Label: "고객 일괄 등록", Path: "/customer/upload/excel"},
		},
	},
	{
		Label: "제품 관리",
		Roles: []string{status.RoleAdmin, status.RoleStaff},
		Children: []Item{
			{Label: "제품 조회", Path: "/product/list"},
			{Label: "제품 등록", Path: "/product/register"},
		},
	},
	{
		Label: "수리 접수",
		Roles: []string{status.RoleAdmin, status.RoleStaff, status.RoleEngineer},
		Children: []Item{
			{Label: "접수 목록", Path: "/request/list"},
		},
	},
	{
		Label: "결제 관리",
		Roles: []string{status.RoleAdmin, status.RoleStaff},
		Children: []Item{
			{Label: "결제 내역", Path: "/payment/list"},
			{Label: "가상계좌 발급", Path: "/payment/virtualaccount"},
		},
	},
	{Label: "배송 관리", Path: "/delivery/list", Roles: []string{status.RoleAdmin, status.RoleStaff}},
	{Label: "수요 예측", Path: "/predictions", Roles: []string{status.RoleAdmin, status.RoleStaff}},
	{Label: "직원 관리", Path: "/staff", Roles: []string{status.RoleAdmin}},
}

type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/menu", h.Menu)
}

// Menu returns the navigation entries visible to the session's role,
// plus the capability set the UI uses for button-level gating.
func (h *Handler) Menu(c *gin.Context) {
	role := c.GetString("role")
	response.Success(c, http.StatusOK, gin.H{
		"items":        FilterForRole(role),
		"capabilities": status.CapabilitiesFor(role),
	})
}

// FilterForRole returns the subtree a role may see.
func FilterForRole(role string) []Item {
	out := make([]Item, 0, len(tree))
	for _, item := range tree {
		if !allowed(item.Roles, role) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func allowed(roles []string, role string) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
