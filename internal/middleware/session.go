package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"suriname/internal/backend"
	"suriname/internal/pkg/response"
	"suriname/internal/session"
)

// CookieName carries the opaque gateway session id.
const CookieName = "suriname_session"

type sessionResolver interface {
	Current(ctx context.Context, id string) (*session.Session, bool)
}

// SessionAuth resolves the session cookie, rejects requests without a
// live session, and stamps the request context with the backend token
// and session id so outbound calls carry the bearer and the global 401
// handler knows whom to log out.
func SessionAuth(sessions sessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(CookieName)
		if err != nil || id == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "로그인이 필요합니다.")
			c.Abort()
			return
		}

		sess, ok := sessions.Current(c.Request.Context(), id)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "세션이 만료되었습니다.")
			c.Abort()
			return
		}

		ctx := backend.WithToken(c.Request.Context(), sess.AccessToken)
		ctx = session.WithID(ctx, sess.ID)
		c.Request = c.Request.WithContext(ctx)

		c.Set("session_id", sess.ID)
		c.Set("role", sess.Role)
		c.Set("name", sess.Name)

		c.Next()
	}
}
