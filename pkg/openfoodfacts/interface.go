package openfoodfacts

import "context"

// IOpenFoodFacts defines the Open Food Facts search client.
// Implementations are safe for concurrent use.
type IOpenFoodFacts interface {
	// Search returns products matching the query. pageSize <= 0 uses the configured default.
	Search(ctx context.Context, query string, pageSize int) ([]Product, error)
}

// New creates a new Open Food Facts client with the given configuration
func New(cfg Config) (IOpenFoodFacts, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newOFFImpl(cfg), nil
}
