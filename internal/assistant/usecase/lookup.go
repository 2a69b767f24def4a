package usecase

import (
	"context"

	"nutrition-assistant/internal/catalog"
	"nutrition-assistant/internal/model"
)

// lookup is one catalog search reduced to values. Provider failures never escape as errors.
type lookup struct {
	query     string
	records   []model.FoodRecord
	provider  string
	errDetail string
	status    int
}

func (uc *implUseCase) search(ctx context.Context, query string, pageSize int) lookup {
	if uc.cfg.LookupTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.cfg.LookupTimeout)
		defer cancel()
	}

	res := lookup{query: query, provider: uc.repo.Name()}
	out, err := uc.repo.Search(ctx, catalog.SearchOptions{Query: query, PageSize: pageSize})
	if out.Provider != "" {
		res.provider = out.Provider
	}
	res.records = out.Records
	if err != nil && !catalog.IsNoResults(err) {
		res.errDetail = err.Error()
		res.status = catalog.StatusOf(err)
	}
	catalogLookupsTotal.WithLabelValues(res.provider, lookupOutcome(res)).Inc()
	return res
}
