package usda

import "context"

// IUSDA defines the FoodData Central search client.
// Implementations are safe for concurrent use.
type IUSDA interface {
	// Search returns foods matching the query. pageSize <= 0 uses the configured default.
	Search(ctx context.Context, query string, pageSize int) ([]Food, error)
}

// New creates a new USDA client with the given configuration
func New(cfg Config) (IUSDA, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newUSDAImpl(cfg), nil
}
