package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"suriname/internal/backend"
	"suriname/internal/middleware"
	"suriname/internal/pkg/response"
	"suriname/internal/session"
	"suriname/internal/status"
)

type Handler struct {
	sessions *session.Service
	client   *backend.Client
	secure   bool
}

func NewHandler(sessions *session.Service, client *backend.Client, secureCookies bool) *Handler {
	return &Handler{sessions: sessions, client: client, secure: secureCookies}
}

// RegisterPublicRoutes mounts login and signup outside the session
// guard.
func (h *Handler) RegisterPublicRoutes(r *gin.RouterGroup) {
	r.POST("/auth/login", h.Login)
	r.POST("/auth/signup", h.Signup)
}

// RegisterRoutes mounts the session-guarded endpoints.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/auth/logout", h.Logout)
	r.GET("/auth/me", h.Me)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION", "아이디와 비밀번호를 입력해주세요.")
		return
	}

	sess, err := h.sessions.Login(c.Request.Context(), req.LoginID, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrInvalidCredentials):
			response.Alert(c, http.StatusUnauthorized, "LOGIN_FAILED", "아이디 또는 비밀번호가 올바르지 않습니다.")
		case errors.Is(err, session.ErrAccountPending):
			response.Alert(c, http.StatusForbidden, "PENDING_APPROVAL", "관리자 승인 대기 중인 계정입니다.")
		default:
			response.Error(c, http.StatusBadGateway, "BACKEND_ERROR", "로그인 처리에 실패했습니다.")
		}
		return
	}

	maxAge := int(sess.ExpiresAt.Sub(sess.CreatedAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.CookieName, sess.ID, maxAge, "/", "", h.secure, true)

	response.Success(c, http.StatusOK, LoginResponse{
		Name:         sess.Name,
		Role:         sess.Role,
		Capabilities: status.CapabilitiesFor(sess.Role),
	})
}

func (h *Handler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION", "필수 항목을 모두 입력해주세요.")
		return
	}

	err := h.client.Signup(c.Request.Context(), backend.SignupRequest{
		LoginID:  req.LoginID,
		Password: req.Password,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
	})
	if err != nil {
		code := backend.StatusOf(err)
		if code == http.StatusConflict {
			response.Error(c, http.StatusConflict, "DUPLICATE", "이미 사용 중인 아이디입니다.")
			return
		}
		response.Error(c, http.StatusBadGateway, "BACKEND_ERROR", "회원가입에 실패했습니다.")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"pending": true})
}

func (h *Handler) Logout(c *gin.Context) {
	if id := c.GetString("session_id"); id != "" {
		h.sessions.Logout(c.Request.Context(), id)
	}
	c.SetCookie(middleware.CookieName, "", -1, "/", "", h.secure, true)
	response.Success(c, http.StatusOK, gin.H{"loggedOut": true})
}

func (h *Handler) Me(c *gin.Context) {
	role := c.GetString("role")
	response.Success(c, http.StatusOK, LoginResponse{
		Name:         c.GetString("name"),
		Role:         role,
		Capabilities: status.CapabilitiesFor(role),
	})
}
