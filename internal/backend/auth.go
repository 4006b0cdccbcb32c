package backend

import "context"

// LoginRequest is the credential payload for /api/auth/login.
type LoginRequest struct {
	LoginID  string `json:"loginId"`
	Password string `json:"password"`
}

// LoginResult is what the backend issues on a successful login. The
// token pair is opaque to the gateway; only the unverified payload of
// the access token is ever inspected, and only for UI gating.
type LoginResult struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	Name         string `json:"name"`
	Role         string `json:"role"`
}

// SignupRequest registers a new employee account. New accounts start
// with the PENDING role until an admin approves them.
type SignupRequest struct {
	LoginID  string `json:"loginId"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// Login exchanges credentials for a token pair.
func (c *Client) Login(ctx context.Context, loginID, password string) (*LoginResult, error) {
	var out LoginResult
	err := c.post(ctx, "/api/auth/login", nil, LoginRequest{LoginID: loginID, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Signup registers a new account.
func (c *Client) Signup(ctx context.Context, req SignupRequest) error {
	return c.post(ctx, "/api/auth/signup", nil, req, nil)
}
