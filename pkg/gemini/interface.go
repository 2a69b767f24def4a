package gemini

import "context"

// IGemini is a generateContent client for one model. Safe for concurrent use.
type IGemini interface {
	// GenerateContent runs one generateContent call. Request.JSONMode asks for application/json.
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}

// New validates cfg, fills its defaults and returns a client.
func New(cfg Config) (IGemini, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGeminiImpl(cfg), nil
}
