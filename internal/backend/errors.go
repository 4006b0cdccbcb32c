package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError is the one error shape callers see for any backend failure,
// so page handlers can branch on status without parsing transport
// internals.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Raw        []byte
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend: %d %s: %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("backend: %d %s", e.StatusCode, e.Code)
}

// wireError covers the error envelopes the backend has been seen to
// return: the structured {success,error:{code,message}} form and the
// flat {message} form.
type wireError struct {
	Message string `json:"message"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func normalizeError(statusCode int, raw []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode, Raw: raw}

	var we wireError
	if err := json.Unmarshal(raw, &we); err == nil {
		apiErr.Code = we.Error.Code
		apiErr.Message = we.Error.Message
		if apiErr.Message == "" {
			apiErr.Message = we.Message
		}
	}
	if apiErr.Code == "" {
		apiErr.Code = http.StatusText(statusCode)
	}
	if apiErr.Message == "" {
		apiErr.Message = "요청 처리에 실패했습니다."
	}
	return apiErr
}

// StatusOf returns the HTTP status carried by err, or 0 for non-API
// errors (timeouts, context cancellation).
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// IsUnauthorized reports whether err is a backend 401.
func IsUnauthorized(err error) bool { return StatusOf(err) == http.StatusUnauthorized }

// IsForbidden reports whether err is a backend 403.
func IsForbidden(err error) bool { return StatusOf(err) == http.StatusForbidden }

// IsNotFound reports whether err is a backend 404.
func IsNotFound(err error) bool { return StatusOf(err) == http.StatusNotFound }
