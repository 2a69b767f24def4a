package catalog

import (
	"context"

	"nutrition-assistant/internal/model"
)

// Repository searches a food catalog.
type Repository interface {
	// Name identifies the provider in provenance tags.
	Name() string
	// Search returns records for the query. An empty result is reported as ErrNoResults.
	Search(ctx context.Context, opt SearchOptions) (SearchOutput, error)
}

// SearchOptions defines search parameters.
type SearchOptions struct {
	Query    string
	PageSize int
}

// SearchOutput is the result of one catalog search.
type SearchOutput struct {
	Records  []model.FoodRecord
	Provider string // provider that produced the records
}
