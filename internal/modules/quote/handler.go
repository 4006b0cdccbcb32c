package quote

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"suriname/internal/backend"
	"suriname/internal/pkg/response"
	"suriname/internal/search"
)

type Handler struct {
	client *backend.Client
}

func NewHandler(client *backend.Client) *Handler {
	return &Handler{client: client}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/quotes", h.List)
	r.POST("/quotes", h.Create)
	r.DELETE("/quotes", h.BulkDelete)
	r.GET("/repair-presets", h.Presets)
	r.GET("/repair-presets/category/:id", h.PresetsByCategory)
	r.POST("/repair-presets", h.CreatePreset)
	r.DELETE("/repair-presets/:id", h.DeletePreset)
}

func (h *Handler) List(c *gin.Context) {
	q := search.Query{
		"requestNo":    c.Query("requestNo"),
		"customerName": c.Query("customerName"),
		"isApproved":   c.Query("isApproved"),
	}
	pageIdx, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	if size <= 0 {
		size = 10
	}

	p, err := h.client.ListQuotes(c.Request.Context(), q, pageIdx, size)
	if err != nil {
		proxyError(c, err)
		return
	}
	if search.NeedsDriftCorrection(len(p.Content), p.TotalElements, pageIdx) {
		if p, err = h.client.ListQuotes(c.Request.Context(), q, pageIdx-1, size); err != nil {
			proxyError(c, err)
			return
		}
	}
	response.Success(c, http.StatusOK, p)
}

func (h *Handler) Create(c *gin.Context) {
	var in backend.QuoteInput
	if err := c.ShouldBindJSON(&in); err != nil || in.RequestID == 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION", "견적 정보를 확인해주세요.")
		return
	}
	qt, err := h.client.CreateQuote(c.Request.Context(), in)
	if err != nil {
		proxyError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, qt)
}

func (h *Handler) BulkDelete(c *gin.Context) {
	var ids []int64
	if err := c.ShouldBindJSON(&ids); err != nil || len(ids) == 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION", "삭제할 견적을 선택해주세요.")
		return
	}
	if err := h.client.BulkDeleteQuotes(c.Request.Context(), ids); err != nil {
		proxyError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": len(ids), "selectionCleared": true})
}

func (h *Handler) Presets(c *gin.Context) {
	items, err := h.client.ListRepairPresets(c.Request.Context())
	if err != nil {
		proxyError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

func (h *Handler) PresetsByCategory(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "잘못된 분류 번호입니다.")
		return
	}
	items, err := h.client.ListRepairPresetsByCategory(c.Request.Context(), id)
	if err != nil {
		proxyError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

func (h *Handler) CreatePreset(c *gin.Context) {
	var in backend.RepairPresetInput
	if err := c.ShouldBindJSON(&in); err != nil || in.Name == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION", "프리셋 정보를 확인해주세요.")
		return
	}
	preset, err := h.client.CreateRepairPreset(c.Request.Context(), in)
	if err != nil {
		proxyError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, preset)
}

func (h *Handler) DeletePreset(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "잘못된 프리셋 번호입니다.")
		return
	}
	if err := h.client.DeleteRepairPreset(c.Request.Context(), id); err != nil {
		proxyError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func proxyError(c *gin.Context, err error) {
	switch {
	case backend.IsUnauthorized(err):
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "세션이 만료되었습니다.")
	case backend.IsForbidden(err):
		response.Alert(c, http.StatusForbidden, "FORBIDDEN", "접근 권한이 없습니다.")
	default:
		var apiErr *backend.APIError
		msg := "요청 처리에 실패했습니다."
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			msg = apiErr.Message
		}
		response.Error(c, http.StatusBadGateway, "BACKEND_ERROR", msg)
	}
}
