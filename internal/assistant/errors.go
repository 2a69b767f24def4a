package assistant

import "errors"

// Domain-specific errors for the assistant package.
var (
	ErrEmptyMessage    = errors.New("message is required")
	ErrMessageTooLong  = errors.New("message is too long")
	ErrInvalidRole     = errors.New("history role must be user or assistant")
	ErrHistoryTooLarge = errors.New("history has too many entries")
)
