package export

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"suriname/internal/backend"
	"suriname/internal/form"
	"suriname/internal/pkg/response"
	"suriname/internal/search"
	"suriname/internal/status"
)

const exportFetchSize = 2000

type Handler struct {
	client *backend.Client
}

func NewHandler(client *backend.Client) *Handler {
	return &Handler{client: client}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/exports/requests", h.Requests)
	r.GET("/exports/payments", h.Payments)
}

// Requests exports the filtered request list. The filter mirrors the
// list view's query params so "export what I see" holds.
func (h *Handler) Requests(c *gin.Context) {
	q := search.Query{
		"customerName": c.Query("customerName"),
		"status":       c.Query("status"),
		"startDate":    c.Query("startDate"),
		"endDate":      c.Query("endDate"),
	}
	p, err := h.client.ListRequests(c.Request.Context(), q, 0, exportFetchSize)
	if err != nil {
		response.Alert(c, http.StatusBadGateway, "EXPORT_FAILED", "내보내기에 실패했습니다.")
		return
	}

	role := c.GetString("role")
	s := sheet{
		Name:   "수리접수",
		Header: []string{"접수번호", "고객명", "제품명", "담당기사", "진행상태", "배정상태", "접수일"},
	}
	for _, r := range p.Content {
		s.Rows = append(s.Rows, []string{
			r.RequestNo,
			r.CustomerName,
			r.ProductName,
			r.EngineerName,
			status.Resolve(role, r.Status).Label,
			status.Resolve(role, r.AssignmentStatus).Label,
			r.CreatedAt,
		})
	}
	h.serve(c, "requests", s)
}

// Payments exports the filtered payment list.
func (h *Handler) Payments(c *gin.Context) {
	q := search.Query{
		"customerName":  c.Query("customerName"),
		"paymentStatus": c.Query("paymentStatus"),
		"startDate":     c.Query("startDate"),
		"endDate":       c.Query("endDate"),
	}
	p, err := h.client.ListPayments(c.Request.Context(), q, 0, exportFetchSize)
	if err != nil {
		response.Alert(c, http.StatusBadGateway, "EXPORT_FAILED", "내보내기에 실패했습니다.")
		return
	}

	s := sheet{
		Name:   "결제내역",
		Header: []string{"접수번호", "고객명", "금액", "은행", "계좌번호", "입금기한", "입금일"},
	}
	for _, pay := range p.Content {
		s.Rows = append(s.Rows, []string{
			pay.RequestNo,
			pay.CustomerName,
			form.FormatCurrency(pay.Amount),
			pay.Bank,
			pay.AccountNumber,
			pay.DepositDeadline,
			pay.PaidAt,
		})
	}
	h.serve(c, "payments", s)
}

func (h *Handler) serve(c *gin.Context, base string, s sheet) {
	stamp := time.Now().Format("20060102_150405")

	switch c.DefaultQuery("format", "xlsx") {
	case "csv":
		data, err := s.csv()
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "EXPORT_FAILED", err.Error())
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", base+"_"+stamp+".csv"))
		c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
	default:
		data, err := s.xlsx()
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "EXPORT_FAILED", err.Error())
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", base+"_"+stamp+".xlsx"))
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
	}
}
