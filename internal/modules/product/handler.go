package product

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"suriname/internal/backend"
	"suriname/internal/pkg/response"
	"suriname/internal/search"
)

// selectionStore remembers each session's checked rows and select-all
// flag between list renders.
type selectionStore interface {
	SaveViewState(ctx context.Context, sessionID, viewKey string, payload []byte) error
	ViewState(ctx context.Context, sessionID, viewKey string) ([]byte, bool)
}

const selectionKey = "product:selection"

type Handler struct {
	client     *backend.Client
	selections selectionStore
}

func NewHandler(client *backend.Client, selections selectionStore) *Handler {
	return &Handler{client: client, selections: selections}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/products/search", h.Search)
	r.POST("/products", h.Create)
	r.PUT("/products/:id", h.Update)
	r.DELETE("/products/:id", h.Delete)
	r.POST("/products/delete", h.BulkDelete)
	r.GET("/categories", h.Categories)
}

type searchForm struct {
	ProductName  string   `json:"productName"`
	Brand        string   `json:"productBrand"`
	ModelCode    string   `json:"modelCode"`
	CategoryIDs  []int64  `json:"categoryIds"`
	CustomerName string   `json:"customerName"`
	Statuses     []string `json:"statuses"`
	Page         int      `json:"page"`
	Size         int      `json:"size"`
}

func (h *Handler) Search(c *gin.Context) {
	var f searchForm
	if err := c.ShouldBindJSON(&f); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION", "검색 조건이 올바르지 않습니다.")
		return
	}
	size := f.Size
	if size <= 0 {
		size = 10
	}
	pageIdx := f.Page
	if pageIdx < 0 {
		pageIdx = 0
	}
	q := search.Query{
		"productName":  f.ProductName,
		"productBrand": f.Brand,
		"modelCode":    f.ModelCode,
		"categoryIds":  f.CategoryIDs,
		"customerName": f.CustomerName,
		"statuses":     f.Statuses,
	}

	p, err := h.client.SearchProducts(c.Request.Context(), q, pageIdx, size)
	if err != nil {
		proxyError(c, err)
		return
	}
	if search.NeedsDriftCorrection(len(p.Content), p.TotalElements, pageIdx) {
		if p, err = h.client.SearchProducts(c.Request.Context(), q, pageIdx-1, size); err != nil {
			proxyError(c, err)
			return
		}
	}
	response.Success(c, http.StatusOK, p)
}

func (h *Handler) Create(c *gin.Context) {
	var in backend.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION", "제품 정보를 확인해주세요.")
		return
	}
	p, err := h.client.CreateProduct(c.Request.Context(), in)
	if err != nil {
		proxyError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, p)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in backend.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION", "제품 정보를 확인해주세요.")
		return
	}
	p, err := h.client.UpdateProduct(c.Request.Context(), id, in)
	if err != nil {
		proxyError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.client.DeleteProduct(c.Request.Context(), id); err != nil {
		proxyError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// BulkDelete removes all selected rows in one backend call, then
// clears the session's selection state so the table does not re-check
// rows that no longer exist.
func (h *Handler) BulkDelete(c *gin.Context) {
	var ids []int64
	if err := c.ShouldBindJSON(&ids); err != nil || len(ids) == 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION", "삭제할 제품을 선택해주세요.")
		return
	}
	if err := h.client.BulkDeleteProducts(c.Request.Context(), ids); err != nil {
		proxyError(c, err)
		return
	}
	_ = h.selections.SaveViewState(c.Request.Context(), c.GetString("session_id"), selectionKey, []byte(`{"ids":[],"selectAll":false}`))
	response.Success(c, http.StatusOK, gin.H{"deleted": len(ids), "selectionCleared": true})
}

func (h *Handler) Categories(c *gin.Context) {
	cats, err := h.client.ListCategories(c.Request.Context())
	if err != nil {
		proxyError(c, err)
		return
	}
	response.Success(c, http.StatusOK, cats)
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "잘못된 제품 번호입니다.")
		return 0, false
	}
	return id, true
}

func proxyError(c *gin.Context, err error) {
	switch {
	case backend.IsUnauthorized(err):
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "세션이 만료되었습니다.")
	case backend.IsForbidden(err):
		response.Alert(c, http.StatusForbidden, "FORBIDDEN", "접근 권한이 없습니다.")
	case backend.IsNotFound(err):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "제품을 찾을 수 없습니다.")
	default:
		var apiErr *backend.APIError
		msg := "요청 처리에 실패했습니다."
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			msg = apiErr.Message
		}
		response.Error(c, http.StatusBadGateway, "BACKEND_ERROR", msg)
	}
}
