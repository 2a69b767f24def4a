package usda

import (
	"context"
	"errors"

	"nutrition-assistant/internal/catalog"
	"nutrition-assistant/internal/model"
	pkgLog "nutrition-assistant/pkg/log"
	pkgUSDA "nutrition-assistant/pkg/usda"
)

type implRepository struct {
	client pkgUSDA.IUSDA
	l      pkgLog.Logger
}

// New creates a USDA FoodData Central repository.
// A nil client reports the missing API key on every search.
func New(client pkgUSDA.IUSDA, l pkgLog.Logger) catalog.Repository {
	return &implRepository{client: client, l: l}
}

func (r *implRepository) Name() string {
	return catalog.ProviderUSDA
}

func (r *implRepository) Search(ctx context.Context, opt catalog.SearchOptions) (catalog.SearchOutput, error) {
	out := catalog.SearchOutput{Provider: catalog.ProviderUSDA}
	if r.client == nil {
		return out, &catalog.ProviderError{Provider: catalog.ProviderUSDA, Err: pkgUSDA.ErrAPIKeyMissing}
	}

	foods, err := r.client.Search(ctx, opt.Query, opt.PageSize)
	if err != nil {
		pe := &catalog.ProviderError{Provider: catalog.ProviderUSDA, Err: err}
		var apiErr *pkgUSDA.APIError
		if errors.As(err, &apiErr) {
			pe.Status = apiErr.StatusCode
			r.l.Debugf(ctx, "usda repository: status=%d url=%s query=%q", apiErr.StatusCode, apiErr.URL, opt.Query)
		} else {
			r.l.Debugf(ctx, "usda repository: query=%q error=%v", opt.Query, err)
		}
		return out, pe
	}

	out.Records = make([]model.FoodRecord, 0, len(foods))
	for _, f := range foods {
		out.Records = append(out.Records, toRecord(f))
	}
	r.l.Debugf(ctx, "usda repository: returned_products=%d query=%q", len(out.Records), opt.Query)

	if len(out.Records) == 0 {
		return out, &catalog.ProviderError{Provider: catalog.ProviderUSDA, Err: catalog.ErrNoResults}
	}
	return out, nil
}

func toRecord(f pkgUSDA.Food) model.FoodRecord {
	return model.FoodRecord{
		Code:        f.FdcID,
		Name:        f.Description,
		Brand:       f.Brand,
		Kcal:        f.Kcal,
		Sugar:       f.Sugars,
		Protein:     f.Protein,
		Fat:         f.Fat,
		Salt:        f.Salt,
		Ingredients: f.Ingredients,
		URL:         f.URL,
	}
}
