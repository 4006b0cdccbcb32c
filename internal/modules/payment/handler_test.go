package payment

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"suriname/internal/backend"
)

// paymentRouter wires the handler against a stub backend that always
// answers with the given status and body.
func paymentRouter(t *testing.T, status int, body string) *gin.Engine {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewHandler(backend.New(srv.URL))
	h.RegisterRoutes(router.Group("/api"))
	return router
}

func TestList_BackendFailureIsInline(t *testing.T) {
	router := paymentRouter(t, http.StatusInternalServerError, `{"message":"결제 조회에 실패했습니다."}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/payments", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "BACKEND_ERROR")
	assert.Contains(t, w.Body.String(), "결제 조회에 실패했습니다.")
	// a failed list fetch renders as an empty state with an inline
	// message, never a blocking notice
	assert.NotContains(t, w.Body.String(), `"alert"`)
}

func TestList_ForbiddenIsAlert(t *testing.T) {
	router := paymentRouter(t, http.StatusForbidden, `{"message":"권한이 없습니다."}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/payments", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), `"alert":true`)
}

func TestBulkDelete_RequiresSelection(t *testing.T) {
	router := paymentRouter(t, http.StatusOK, `{}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/payments", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION")
}
