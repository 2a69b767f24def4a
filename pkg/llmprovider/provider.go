package llmprovider

import "context"

// Provider is one configured model behind a vendor API. The Manager calls it in priority order.
type Provider interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Name() string
	Model() string
}

// Request is vendor-neutral. Adapters map SystemInstruction and JSONMode to each API's fields.
type Request struct {
	SystemInstruction string
	Messages          []Message
	Temperature       float64
	MaxTokens         int
	JSONMode          bool
}

// Message roles are "user" and "assistant"; the gemini adapter maps "assistant" to "model".
type Message struct {
	Role    string
	Content string
}

type Response struct {
	Text         string
	ProviderName string
	ModelName    string
	Usage        *Usage
}

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
