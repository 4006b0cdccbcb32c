package backend

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"suriname/internal/search"
)

func TestClient_InjectsBearerFromContext(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"customerId":1,"customerName":"김철수"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	ctx := WithToken(context.Background(), "token-abc")

	cust, err := c.GetCustomer(ctx, 1)

	assert.NoError(t, err)
	assert.Equal(t, "Bearer token-abc", gotAuth)
	assert.Equal(t, "김철수", cust.Name)
}

func TestClient_NoTokenNoHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).GetCustomer(context.Background(), 1)

	assert.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClient_UnauthorizedFiresHookPerCall(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success":false,"error":{"code":"TOKEN_EXPIRED","message":"만료된 토큰입니다."}}`))
	}))
	defer srv.Close()

	var hookCalls int32
	c := New(srv.URL, WithUnauthorizedHook(func(ctx context.Context) {
		atomic.AddInt32(&hookCalls, 1)
	}))

	_, err := c.GetCustomer(context.Background(), 1)

	assert.True(t, IsUnauthorized(err))
	assert.EqualValues(t, 1, atomic.LoadInt32(&hookCalls))

	_, _ = c.GetCustomer(context.Background(), 1)
	assert.EqualValues(t, 2, atomic.LoadInt32(&hookCalls))
}

func TestClient_NormalizesStructuredErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"success":false,"error":{"code":"DUPLICATE","message":"이미 존재하는 계정입니다."}}`))
	}))
	defer srv.Close()

	err := New(srv.URL).Signup(context.Background(), SignupRequest{LoginID: "dup"})

	var apiErr *APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "DUPLICATE", apiErr.Code)
	assert.Equal(t, "이미 존재하는 계정입니다.", apiErr.Message)
}

func TestClient_NormalizesFlatErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"잘못된 요청입니다."}`))
	}))
	defer srv.Close()

	err := New(srv.URL).Signup(context.Background(), SignupRequest{})

	var apiErr *APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Bad Request", apiErr.Code)
	assert.Equal(t, "잘못된 요청입니다.", apiErr.Message)
}

func TestClient_NormalizesNonJSONError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`<html>bad gateway</html>`))
	}))
	defer srv.Close()

	err := New(srv.URL).Signup(context.Background(), SignupRequest{})

	var apiErr *APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "요청 처리에 실패했습니다.", apiErr.Message)
}

func TestClient_ListNormalizesPageVariants(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "김", r.URL.Query().Get("customerName"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("size"))
		w.Write([]byte(`{"content":[{"customerId":1,"customerName":"김철수"}],"currentPage":2,"totalPages":3,"totalElements":21}`))
	}))
	defer srv.Close()

	p, err := New(srv.URL).ListCustomers(context.Background(), search.Query{"customerName": "김"}, 2, 10)

	assert.NoError(t, err)
	assert.Equal(t, 2, p.Number)
	assert.Equal(t, int64(21), p.TotalElements)
	assert.Len(t, p.Content, 1)
}

func TestClient_NetworkErrorHasZeroStatus(t *testing.T) {
	c := New("http://127.0.0.1:1") // nothing listens here

	_, err := c.GetCustomer(context.Background(), 1)

	assert.Error(t, err)
	assert.Equal(t, 0, StatusOf(err))
	assert.False(t, IsUnauthorized(err))
}

func TestClient_BulkDeleteSendsBody(t *testing.T) {
	var gotBody string
	var gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		buf, _ := io.ReadAll(r.Body)
		gotBody = string(buf)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	err := New(srv.URL).BulkDeletePayments(context.Background(), []int64{3, 7})

	assert.NoError(t, err)
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.JSONEq(t, `[3,7]`, gotBody)
}
