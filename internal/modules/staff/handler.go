package staff

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"suriname/internal/backend"
	"suriname/internal/pkg/response"
	"suriname/internal/search"
	"suriname/internal/status"
)

type Handler struct {
	client *backend.Client
}

func NewHandler(client *backend.Client) *Handler {
	return &Handler{client: client}
}

// RegisterRoutes mounts the admin-only staff surfaces. Engineers list
// is mounted separately for staff, who need it for reassignment.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/users", h.List)
	r.PUT("/users/:id/role", h.UpdateRole)
}

func (h *Handler) RegisterEngineerRoutes(r *gin.RouterGroup) {
	r.GET("/users/engineers", h.Engineers)
}

func (h *Handler) List(c *gin.Context) {
	q := search.Query{
		"name": c.Query("name"),
		"role": c.Query("role"),
	}
	pageIdx, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	if size <= 0 {
		size = 10
	}

	p, err := h.client.ListUsers(c.Request.Context(), q, pageIdx, size)
	if err != nil {
		proxyError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

type roleUpdate struct {
	Role string `json:"role" binding:"required"`
}

// UpdateRole changes an employee's role. Approving a PENDING signup is
// the same operation with a real role as the target.
func (h *Handler) UpdateRole(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "잘못된 직원 번호입니다.")
		return
	}
	var req roleUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION", "역할을 선택해주세요.")
		return
	}
	if !validRole(req.Role) {
		response.Error(c, http.StatusBadRequest, "VALIDATION", "지원하지 않는 역할입니다.")
		return
	}
	if err := h.client.UpdateUserRole(c.Request.Context(), id, req.Role); err != nil {
		proxyError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"updated": true})
}

func (h *Handler) Engineers(c *gin.Context) {
	items, err := h.client.ListEngineers(c.Request.Context())
	if err != nil {
		proxyError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

func validRole(role string) bool {
	for _, r := range status.Roles() {
		if r == role {
			return true
		}
	}
	return false
}

func proxyError(c *gin.Context, err error) {
	switch {
	case backend.IsUnauthorized(err):
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "세션이 만료되었습니다.")
	case backend.IsForbidden(err):
		response.Alert(c, http.StatusForbidden, "FORBIDDEN", "접근 권한이 없습니다.")
	case backend.IsNotFound(err):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "직원을 찾을 수 없습니다.")
	default:
		var apiErr *backend.APIError
		msg := "요청 처리에 실패했습니다."
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			msg = apiErr.Message
		}
		response.Error(c, http.StatusBadGateway, "BACKEND_ERROR", msg)
	}
}
