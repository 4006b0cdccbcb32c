package request

import "errors"

var (
	ErrValidation     = errors.New("validation error")
	ErrReasonRequired = errors.New("rejection reason is required")
	ErrForbidden      = errors.New("action not allowed for this role")
	ErrInvalidState   = errors.New("action not allowed in current status")
	ErrNotFound       = errors.New("request not found")
)
