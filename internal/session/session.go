package session

import (
	"log"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"

	"suriname/internal/status"
)

// Session is the gateway-side record of one logged-in admin user: the
// backend token pair plus the denormalized display fields. The role
// here drives menu and button visibility only; the backend re-checks
// every forwarded call.
type Session struct {
	ID           string    `json:"id"`
	AccessToken  string    `json:"-"`
	RefreshToken string    `json:"-"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// RoleFromToken extracts the role claim from a bearer token without
// verifying the signature. Any malformed token (missing segments, bad
// base64, non-JSON payload) and any expired token resolves to RoleNone;
// this function never panics and never returns an error to the caller.
func RoleFromToken(token string) string {
	if token == "" {
		return status.RoleNone
	}

	parser := jwtlib.NewParser()
	claims := jwtlib.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		log.Printf("session: unreadable token payload: %v", err)
		return status.RoleNone
	}

	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil && exp.Before(time.Now()) {
		return status.RoleNone
	}

	role, _ := claims["role"].(string)
	switch role {
	case status.RoleAdmin, status.RoleStaff, status.RoleEngineer, status.RolePending:
		return role
	}
	if role != "" {
		log.Printf("session: unknown role claim %q", role)
	}
	return status.RoleNone
}
