package cached

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"nutrition-assistant/internal/catalog"
	pkgLog "nutrition-assistant/pkg/log"
)

type implRepository struct {
	inner catalog.Repository
	cache *expirable.LRU[string, catalog.SearchOutput]
	l     pkgLog.Logger
}

// New wraps inner with an expirable LRU of successful, non-empty results.
func New(inner catalog.Repository, size int, ttl time.Duration, l pkgLog.Logger) catalog.Repository {
	return &implRepository{
		inner: inner,
		cache: expirable.NewLRU[string, catalog.SearchOutput](size, nil, ttl),
		l:     l,
	}
}

func (r *implRepository) Name() string {
	return r.inner.Name()
}

func (r *implRepository) Search(ctx context.Context, opt catalog.SearchOptions) (catalog.SearchOutput, error) {
	key := cacheKey(r.inner.Name(), opt)
	if out, ok := r.cache.Get(key); ok {
		r.l.Debugf(ctx, "cached repository: hit key=%q", key)
		return clone(out), nil
	}

	out, err := r.inner.Search(ctx, opt)
	if err == nil && len(out.Records) > 0 {
		r.cache.Add(key, clone(out))
	}
	return out, err
}

func cacheKey(provider string, opt catalog.SearchOptions) string {
	return fmt.Sprintf("%s|%s|%d", provider, strings.ToLower(strings.TrimSpace(opt.Query)), opt.PageSize)
}

func clone(out catalog.SearchOutput) catalog.SearchOutput {
	out.Records = slices.Clone(out.Records)
	return out
}
