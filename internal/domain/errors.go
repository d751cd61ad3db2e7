package domain

import "errors"

var (
	ErrInvalidHookInput = errors.New("invalid hook input")
	ErrRunNotFound      = errors.New("validation run not found")
	ErrUnreadablePRP    = errors.New("PRP file could not be read")
)
