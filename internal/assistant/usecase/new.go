package usecase

import (
	"time"

	"nutrition-assistant/internal/assistant"
	"nutrition-assistant/internal/catalog"
	"nutrition-assistant/internal/intent"
	"nutrition-assistant/internal/responder"
	pkgLog "nutrition-assistant/pkg/log"
)

// Config holds the assistant tuning knobs.
type Config struct {
	CatalogPageSize             int
	ComparePageSize             int
	DisambiguationMinNames      int
	DisambiguationMaxQueryWords int
	// LookupTimeout bounds each catalog search; 0 leaves it to the HTTP client.
	LookupTimeout time.Duration
}

func (c *Config) applyDefaults() {
	if c.CatalogPageSize <= 0 {
		c.CatalogPageSize = DefaultCatalogPageSize
	}
	if c.ComparePageSize <= 0 {
		c.ComparePageSize = DefaultComparePageSize
	}
	if c.DisambiguationMinNames <= 0 {
		c.DisambiguationMinNames = DefaultDisambiguationMinNames
	}
	if c.DisambiguationMaxQueryWords <= 0 {
		c.DisambiguationMaxQueryWords = DefaultDisambiguationMaxQueryWords
	}
}

type implUseCase struct {
	l         pkgLog.Logger
	extractor intent.Extractor
	responder responder.Responder
	repo      catalog.Repository
	cfg       Config
}

var _ assistant.UseCase = (*implUseCase)(nil)

// New creates a new assistant UseCase instance.
func New(
	l pkgLog.Logger,
	extractor intent.Extractor,
	resp responder.Responder,
	repo catalog.Repository,
	cfg Config,
) *implUseCase {
	cfg.applyDefaults()
	return &implUseCase{
		l:         l,
		extractor: extractor,
		responder: resp,
		repo:      repo,
		cfg:       cfg,
	}
}
