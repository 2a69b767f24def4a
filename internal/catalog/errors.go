package catalog

import (
	"errors"
	"strings"
)

// Provider names.
const (
	ProviderUSDA          = "usda"
	ProviderOpenFoodFacts = "openfoodfacts"
)

var (
	// ErrNoResults indicates the provider answered but returned nothing usable.
	ErrNoResults = errors.New("no products returned for this query")
	// ErrNotConfigured indicates the provider is missing required settings.
	ErrNotConfigured = errors.New("provider not configured")
)

// ProviderError carries the provider name and, for HTTP failures, the status code.
type ProviderError struct {
	Provider string
	Status   int // 0 when no HTTP response was received
	Err      error
}

// Error prefixes the provider name unless the client already did.
func (e *ProviderError) Error() string {
	msg := e.Err.Error()
	if strings.HasPrefix(msg, e.Provider+":") {
		return msg
	}
	return e.Provider + ": " + msg
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// StatusOf returns the HTTP status carried by err, or 0.
func StatusOf(err error) int {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Status
	}
	return 0
}

// IsNoResults reports whether err only says that no products were found.
// A joined error qualifies when every part does.
func IsNoResults(err error) bool {
	if err == nil {
		return false
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			if !IsNoResults(e) {
				return false
			}
		}
		return true
	}
	return errors.Is(err, ErrNoResults)
}
