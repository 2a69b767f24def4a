package openai

import "time"

const (
	// DefaultModel is the default chat model
	DefaultModel = "gpt-5-nano"

	// DefaultBaseURL is the default OpenAI API endpoint
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	// ResponseFormatJSON asks the server for a single JSON object
	ResponseFormatJSON = "json_object"
)
