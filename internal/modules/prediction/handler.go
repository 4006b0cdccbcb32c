package prediction

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"suriname/internal/backend"
	"suriname/internal/pkg/response"
	"suriname/internal/status"
)

// Each role gets its own dashboard variant; the kinds here are the
// charts that variant is built from.
var dashboardKinds = map[string][]string{
	status.RoleAdmin:    {"repair-volume", "completion-time", "revenue"},
	status.RoleStaff:    {"repair-volume", "completion-time"},
	status.RoleEngineer: {"assigned-load"},
}

type Handler struct {
	client *backend.Client
}

func NewHandler(client *backend.Client) *Handler {
	return &Handler{client: client}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/predictions/dashboard", h.Dashboard)
	r.GET("/predictions/:kind", h.Summary)
}

// Dashboard assembles the role's chart set in one response.
func (h *Handler) Dashboard(c *gin.Context) {
	role := c.GetString("role")
	kinds, ok := dashboardKinds[role]
	if !ok {
		response.Alert(c, http.StatusForbidden, "FORBIDDEN", "접근 권한이 없습니다.")
		return
	}

	params := url.Values{}
	if from := c.Query("from"); from != "" {
		params.Set("from", from)
	}
	if to := c.Query("to"); to != "" {
		params.Set("to", to)
	}

	out := make(map[string]*backend.PredictionSummary, len(kinds))
	for _, kind := range kinds {
		sum, err := h.client.GetPredictionSummary(c.Request.Context(), kind, params)
		if err != nil {
			proxyError(c, err)
			return
		}
		out[kind] = sum
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) Summary(c *gin.Context) {
	kind := c.Param("kind")
	if !kindAllowed(c.GetString("role"), kind) {
		response.Alert(c, http.StatusForbidden, "FORBIDDEN", "접근 권한이 없습니다.")
		return
	}
	sum, err := h.client.GetPredictionSummary(c.Request.Context(), kind, nil)
	if err != nil {
		proxyError(c, err)
		return
	}
	response.Success(c, http.StatusOK, sum)
}

func kindAllowed(role, kind string) bool {
	for _, k := range dashboardKinds[role] {
		if k == kind {
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
	default:
		var apiErr *backend.APIError
		msg := "예측 데이터를 불러오지 못했습니다."
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			msg = apiErr.Message
		}
		response.Error(c, http.StatusBadGateway, "BACKEND_ERROR", msg)
	}
}
