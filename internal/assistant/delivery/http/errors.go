package http

import (
	"errors"

	"nutrition-assistant/internal/assistant"
)

const (
	defaultMaxMessageChars = 1500
	defaultMaxHistory      = 200
)

var errInvalidBody = errors.New("invalid request body: message is required")

// mapError translates binding and domain validation errors into client-facing errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, assistant.ErrEmptyMessage),
		errors.Is(err, assistant.ErrMessageTooLong),
		errors.Is(err, assistant.ErrInvalidRole),
		errors.Is(err, assistant.ErrHistoryTooLarge):
		return err
	default:
		return errInvalidBody
	}
}
