package payment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"suriname/internal/backend"
	"suriname/internal/form"
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
	r.GET("/payments", h.List)
	r.DELETE("/payments", h.BulkDelete)
	r.POST("/payments/virtual-account", h.CreateVirtualAccount)
}

func (h *Handler) List(c *gin.Context) {
	q := search.Query{
		"requestNo":     c.Query("requestNo"),
		"customerName":  c.Query("customerName"),
		"paymentStatus": c.Query("paymentStatus"),
		"bank":          c.Query("bank"),
		"startDate":     c.Query("startDate"),
		"endDate":       c.Query("endDate"),
	}
	pageIdx, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	if size <= 0 {
		size = 10
	}

	p, err := h.client.ListPayments(c.Request.Context(), q, pageIdx, size)
	if err != nil {
		proxyError(c, err)
		return
	}
	if search.NeedsDriftCorrection(len(p.Content), p.TotalElements, pageIdx) {
		if p, err = h.client.ListPayments(c.Request.Context(), q, pageIdx-1, size); err != nil {
			proxyError(c, err)
			return
		}
	}

	rows := make([]Row, 0, len(p.Content))
	for _, pay := range p.Content {
		rows = append(rows, Row{
			Payment:       pay,
			AmountDisplay: form.FormatCurrency(pay.Amount),
		})
	}
	response.Success(c, http.StatusOK, gin.H{
		"content":       rows,
		"number":        p.Number,
		"size":          p.Size,
		"totalPages":    p.TotalPages,
		"totalElements": p.TotalElements,
		"first":         p.First,
		"last":          p.Last,
	})
}

func (h *Handler) BulkDelete(c *gin.Context) {
	var ids []int64
	if err := c.ShouldBindJSON(&ids); err != nil || len(ids) == 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION", "삭제할 결제 내역을 선택해주세요.")
		return
	}
	if err := h.client.BulkDeletePayments(c.Request.Context(), ids); err != nil {
		proxyError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": len(ids), "selectionCleared": true})
}

func (h *Handler) CreateVirtualAccount(c *gin.Context) {
	var in backend.VirtualAccountInput
	if err := c.ShouldBindJSON(&in); err != nil || in.RequestID == 0 || in.Amount <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION", "발급 정보를 확인해주세요.")
		return
	}
	p, err := h.client.CreateVirtualAccount(c.Request.Context(), in)
	if err != nil {
		proxyError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, p)
}

// Row pairs the raw payment with its display-formatted amount.
type Row struct {
	backend.Payment
	AmountDisplay string `json:"amountDisplay"`
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
