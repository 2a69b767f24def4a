package llmprovider

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrAllProvidersFailed    = errors.New("all providers failed")
	ErrNoProvidersConfigured = errors.New("no providers configured")
	// ErrEmptyResponse is a completion that came back with no text.
	ErrEmptyResponse   = errors.New("empty response")
	ErrUnknownProvider = errors.New("unknown provider")
)

// ProviderError is the last failure of one provider. Attempts is set once its retries are spent.
type ProviderError struct {
	Provider string
	Attempts int
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Attempts > 1 {
		return fmt.Sprintf("provider %s failed after %d attempts: %v", e.Provider, e.Attempts, e.Err)
	}
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// IsTimeout reports whether err comes from a deadline, either the per-call one or the manager's total.
func IsTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}

func withAttempts(provider string, attempts int, err error) error {
	var pe *ProviderError
	if errors.As(err, &pe) && pe.Provider == provider {
		pe.Attempts = attempts
		return pe
	}
	return &ProviderError{Provider: provider, Attempts: attempts, Err: err}
}
