package customer

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"suriname/internal/backend"
	"suriname/internal/form"
	"suriname/internal/pkg/response"
	"suriname/internal/search"
)

type Handler struct {
	client *backend.Client
	live   *liveSearch
}

func NewHandler(client *backend.Client, debounce time.Duration) *Handler {
	return &Handler{
		client: client,
		live:   newLiveSearch(client, debounce),
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/customers", h.List)
	r.GET("/customers/autocomplete", h.Autocomplete)
	r.GET("/customers/:id", h.Get)
	r.POST("/customers", h.Create)
	r.PUT("/customers/:id", h.Update)
	r.POST("/customers/upload", h.Upload)
}

func (h *Handler) List(c *gin.Context) {
	q := search.Query{
		"customerName": c.Query("customerName"),
		"phone":        c.Query("phone"),
		"email":        c.Query("email"),
	}
	pageIdx, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	if size <= 0 {
		size = 10
	}

	p, err := h.client.ListCustomers(c.Request.Context(), q, pageIdx, size)
	if err != nil {
		proxyError(c, err)
		return
	}
	if search.NeedsDriftCorrection(len(p.Content), p.TotalElements, pageIdx) {
		if p, err = h.client.ListCustomers(c.Request.Context(), q, pageIdx-1, size); err != nil {
			proxyError(c, err)
			return
		}
	}
	response.Success(c, http.StatusOK, p)
}

// Autocomplete coalesces a keystroke burst through the per-session
// composer; the upstream sees one call per settled burst.
func (h *Handler) Autocomplete(c *gin.Context) {
	keyword := c.Query("keyword")
	if keyword == "" {
		response.Success(c, http.StatusOK, []backend.Customer{})
		return
	}

	e := h.live.entry(c.GetString("session_id"), backend.TokenFrom(c.Request.Context()))
	ch := e.wait()
	e.composer.Update(search.Query{"keyword": keyword})

	select {
	case res := <-ch:
		if res.err != nil {
			proxyError(c, res.err)
			return
		}
		response.Success(c, http.StatusOK, res.items)
	case <-time.After(2 * time.Second):
		response.Success(c, http.StatusOK, []backend.Customer{})
	case <-c.Request.Context().Done():
		c.Abort()
	}
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	cust, err := h.client.GetCustomer(c.Request.Context(), id)
	if err != nil {
		proxyError(c, err)
		return
	}
	response.Success(c, http.StatusOK, cust)
}

func (h *Handler) Create(c *gin.Context) {
	in, ok := bindInput(c)
	if !ok {
		return
	}
	cust, err := h.client.CreateCustomer(c.Request.Context(), in)
	if err != nil {
		proxyError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, cust)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	in, ok := bindInput(c)
	if !ok {
		return
	}
	cust, err := h.client.UpdateCustomer(c.Request.Context(), id, in)
	if err != nil {
		proxyError(c, err)
		return
	}
	response.Success(c, http.StatusOK, cust)
}

// Upload forwards the bulk-registration spreadsheet to the backend and
// relays the per-row result as-is.
func (h *Handler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION", "업로드할 파일을 선택해주세요.")
		return
	}
	defer file.Close()

	result, err := h.client.UploadCustomers(c.Request.Context(), header.Filename, file)
	if err != nil {
		proxyError(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

func bindInput(c *gin.Context) (backend.CustomerInput, bool) {
	var req CustomerForm
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION", "고객 정보를 확인해주세요.")
		return backend.CustomerInput{}, false
	}
	email := req.Email
	if email == "" {
		email = form.ComposeEmail(req.EmailLocal, req.EmailDomain)
	}
	return backend.CustomerInput{
		Name:    req.Name,
		Phone:   form.FormatPhone(req.Phone),
		Email:   email,
		Address: req.Address,
		Birth:   req.Birth,
	}, true
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "잘못된 고객 번호입니다.")
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
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "고객을 찾을 수 없습니다.")
	default:
		var apiErr *backend.APIError
		msg := "요청 처리에 실패했습니다."
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			msg = apiErr.Message
		}
		response.Error(c, http.StatusBadGateway, "BACKEND_ERROR", msg)
	}
}

// CustomerForm accepts either a composed email or the split
// local/domain inputs the form renders.
type CustomerForm struct {
	Name        string `json:"customerName" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	Email       string `json:"email"`
	EmailLocal  string `json:"emailLocal"`
	EmailDomain string `json:"emailDomain"`
	Address     string `json:"address"`
	Birth       string `json:"birth"`
}
