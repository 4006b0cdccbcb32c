package request

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"suriname/internal/backend"
	"suriname/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/requests/search", h.Search)
	r.GET("/requests/:id", h.Get)
	r.PATCH("/requests/:id", h.Edit)
	r.DELETE("/requests/:id", h.Delete)
	r.PUT("/requests/:id/accept", h.Accept)
	r.PUT("/requests/:id/reject", h.Reject)
	r.PUT("/requests/:id/reassign", h.Reassign)
}

func (h *Handler) Search(c *gin.Context) {
	var f SearchFilter
	if err := c.ShouldBindJSON(&f); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION", "검색 조건이 올바르지 않습니다.")
		return
	}

	p, err := h.service.Search(c.Request.Context(), c.GetString("role"), f)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	v, err := h.service.Get(c.Request.Context(), c.GetString("role"), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, v)
}

func (h *Handler) Edit(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in EditRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION", "수정 항목이 올바르지 않습니다.")
		return
	}
	v, saved, err := h.service.Edit(c.Request.Context(), c.GetString("role"), c.GetString("session_id"), id, in)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"saved": saved, "request": v})
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), c.GetString("role"), id); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) Accept(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	v, err := h.service.Accept(c.Request.Context(), c.GetString("role"), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, v)
}

func (h *Handler) Reject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION", "요청 본문이 올바르지 않습니다.")
		return
	}
	v, err := h.service.Reject(c.Request.Context(), c.GetString("role"), id, req.Reason)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, v)
}

func (h *Handler) Reassign(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req ReassignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION", "배정할 기사를 선택해주세요.")
		return
	}
	v, err := h.service.Reassign(c.Request.Context(), c.GetString("role"), id, req.EmployeeID)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, v)
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "잘못된 접수 번호입니다.")
		return 0, false
	}
	return id, true
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrReasonRequired):
		response.Error(c, http.StatusBadRequest, "REASON_REQUIRED", "거절 사유를 입력해주세요.")
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION", "입력값이 올바르지 않습니다.")
	case errors.Is(err, ErrForbidden):
		response.Alert(c, http.StatusForbidden, "FORBIDDEN", "접근 권한이 없습니다.")
	case errors.Is(err, ErrInvalidState):
		response.Error(c, http.StatusConflict, "INVALID_STATE", "현재 상태에서는 처리할 수 없습니다.")
	case errors.Is(err, ErrNotFound), backend.IsNotFound(err):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "접수 내역을 찾을 수 없습니다.")
	case backend.IsForbidden(err):
		response.Alert(c, http.StatusForbidden, "FORBIDDEN", "접근 권한이 없습니다.")
	case backend.IsUnauthorized(err):
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "세션이 만료되었습니다.")
	default:
		response.Error(c, http.StatusBadGateway, "BACKEND_ERROR", backendMessage(err))
	}
}

func backendMessage(err error) string {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return "요청 처리에 실패했습니다."
}
