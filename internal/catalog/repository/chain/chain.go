package chain

import (
	"context"
	"errors"
	"strings"
	"time"

	"nutrition-assistant/internal/catalog"
	pkgLog "nutrition-assistant/pkg/log"
)

type implRepository struct {
	repos []catalog.Repository
	l     pkgLog.Logger
}

// New creates a repository that tries repos in order and returns the first non-empty result.
func New(repos []catalog.Repository, l pkgLog.Logger) catalog.Repository {
	return &implRepository{repos: repos, l: l}
}

func (r *implRepository) Name() string {
	names := make([]string, 0, len(r.repos))
	for _, repo := range r.repos {
		names = append(names, repo.Name())
	}
	return strings.Join(names, ",")
}

func (r *implRepository) Search(ctx context.Context, opt catalog.SearchOptions) (catalog.SearchOutput, error) {
	if len(r.repos) == 0 {
		return catalog.SearchOutput{}, catalog.ErrNotConfigured
	}

	var (
		errs []error
		last catalog.SearchOutput
	)
	for i, repo := range r.repos {
		pctx, cancel := providerContext(ctx, len(r.repos)-i)
		out, err := repo.Search(pctx, opt)
		cancel()
		if err == nil && len(out.Records) > 0 {
			return out, nil
		}
		if err == nil {
			err = &catalog.ProviderError{Provider: repo.Name(), Err: catalog.ErrNoResults}
		}
		r.l.Debugf(ctx, "chain repository: provider=%s query=%q failed: %v", repo.Name(), opt.Query, err)
		errs = append(errs, err)
		last = out
		if ctx.Err() != nil {
			break
		}
	}
	return last, errors.Join(errs...)
}

// providerContext gives the next provider an equal share of what is left of the
// caller's deadline, so a provider that hangs cannot starve the ones after it.
func providerContext(ctx context.Context, remaining int) (context.Context, context.CancelFunc) {
	deadline, ok := ctx.Deadline()
	if !ok || remaining <= 1 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, time.Until(deadline)/time.Duration(remaining))
}
