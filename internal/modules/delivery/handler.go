package delivery

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
	r.GET("/deliveries", h.List)
	r.GET("/deliveries/:id/tracking", h.Tracking)
}

func (h *Handler) List(c *gin.Context) {
	q := search.Query{
		"requestNo":      c.Query("requestNo"),
		"customerName":   c.Query("customerName"),
		"carrier":        c.Query("carrier"),
		"deliveryStatus": c.Query("deliveryStatus"),
	}
	pageIdx, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	if size <= 0 {
		size = 10
	}

	p, err := h.client.ListDeliveries(c.Request.Context(), q, pageIdx, size)
	if err != nil {
		proxyError(c, err)
		return
	}
	if search.NeedsDriftCorrection(len(p.Content), p.TotalElements, pageIdx) {
		if p, err = h.client.ListDeliveries(c.Request.Context(), q, pageIdx-1, size); err != nil {
			proxyError(c, err)
			return
		}
	}
	response.Success(c, http.StatusOK, p)
}

func (h *Handler) Tracking(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "잘못된 배송 번호입니다.")
		return
	}
	events, err := h.client.TrackDelivery(c.Request.Context(), id)
	if err != nil {
		proxyError(c, err)
		return
	}
	response.Success(c, http.StatusOK, events)
}

func proxyError(c *gin.Context, err error) {
	switch {
	case backend.IsUnauthorized(err):
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "세션이 만료되었습니다.")
	case backend.IsForbidden(err):
		response.Alert(c, http.StatusForbidden, "FORBIDDEN", "접근 권한이 없습니다.")
	case backend.IsNotFound(err):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "배송 정보를 찾을 수 없습니다.")
	default:
		var apiErr *backend.APIError
		msg := "요청 처리에 실패했습니다."
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			msg = apiErr.Message
		}
		response.Error(c, http.StatusBadGateway, "BACKEND_ERROR", msg)
	}
}
