package repository

import (
	"context"
	"fmt"

	"nutrition-assistant/config"
	"nutrition-assistant/internal/catalog"
	"nutrition-assistant/internal/catalog/repository/cached"
	"nutrition-assistant/internal/catalog/repository/chain"
	offRepo "nutrition-assistant/internal/catalog/repository/openfoodfacts"
	usdaRepo "nutrition-assistant/internal/catalog/repository/usda"
	"nutrition-assistant/pkg/log"
	"nutrition-assistant/pkg/openfoodfacts"
	"nutrition-assistant/pkg/usda"
)

// New wires the configured providers in order, behind the optional response cache.
// A provider whose client cannot be built stays in the chain and reports why on every lookup.
func New(ctx context.Context, cfg *config.Config, l log.Logger) (catalog.Repository, error) {
	repos := make([]catalog.Repository, 0, len(cfg.Catalog.Providers))
	for _, name := range cfg.Catalog.Providers {
		repo, err := NewProvider(name, cfg, l)
		if err != nil && repo == nil {
			return nil, err
		}
		if err != nil {
			l.Warnf(ctx, "internal.catalog.repository.New: %s client not available: %v", name, err)
		}
		repos = append(repos, repo)
	}

	var repo catalog.Repository
	switch len(repos) {
	case 0:
		return nil, catalog.ErrNotConfigured
	case 1:
		repo = repos[0]
	default:
		repo = chain.New(repos, l)
	}

	if cfg.Catalog.CacheTTL > 0 {
		l.Infof(ctx, "internal.catalog.repository.New: cache enabled size=%d ttl=%s", cfg.Catalog.CacheSize, cfg.Catalog.CacheTTL)
		repo = cached.New(repo, cfg.Catalog.CacheSize, cfg.Catalog.CacheTTL, l)
	}
	return repo, nil
}

// NewProvider builds one provider repository. When the client config is invalid it returns
// the repository (answering with a provider error) together with the config error.
func NewProvider(name string, cfg *config.Config, l log.Logger) (catalog.Repository, error) {
	switch name {
	case catalog.ProviderUSDA:
		client, err := usda.New(usda.Config{
			APIKey:   cfg.USDA.APIKey,
			BaseURL:  cfg.USDA.BaseURL,
			PageSize: cfg.USDA.PageSize,
			Timeout:  cfg.Catalog.RequestTimeout,
		})
		return usdaRepo.New(client, l), err
	case catalog.ProviderOpenFoodFacts:
		client, err := openfoodfacts.New(openfoodfacts.Config{
			BaseURL:        cfg.OpenFoodFacts.BaseURL,
			Country:        cfg.OpenFoodFacts.Country,
			PageSize:       cfg.OpenFoodFacts.PageSize,
			MaxRetries:     cfg.OpenFoodFacts.MaxRetries,
			RequestsPerMin: cfg.OpenFoodFacts.RequestsPerMin,
			Burst:          cfg.OpenFoodFacts.Burst,
			Timeout:        cfg.Catalog.RequestTimeout,
		})
		return offRepo.New(client, l), err
	default:
		return nil, fmt.Errorf("unknown catalog provider %q", name)
	}
}
