package responder

import "strings"

// Source tells whether a reply came from the model.
type Source string

const (
	SourceLLM      Source = "llm"
	SourceFallback Source = "fallback"
)

// Result is the outcome of one reply call.
type Result struct {
	Text     string
	Source   Source
	Provider string // provider that answered, empty on fallback
	Err      error
}

// OK reports whether the model produced the text.
func (r Result) OK() bool {
	return r.Source == SourceLLM
}

// ErrDetail returns the failure detail for provenance tags, or "".
func (r Result) ErrDetail() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}

// IsFailureMarker reports whether text is blank or one of the failure markers.
func IsFailureMarker(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return true
	}
	for _, m := range []string{MarkerNotConfigured, MarkerRequestFailed, MarkerEmptyResponse} {
		if strings.HasPrefix(text, m) {
			return true
		}
	}
	return false
}
