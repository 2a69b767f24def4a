package openfoodfacts

import (
	"context"
	"errors"

	"nutrition-assistant/internal/catalog"
	"nutrition-assistant/internal/model"
	pkgLog "nutrition-assistant/pkg/log"
	pkgOFF "nutrition-assistant/pkg/openfoodfacts"
)

const debugSampleSize = 3

type implRepository struct {
	client pkgOFF.IOpenFoodFacts
	l      pkgLog.Logger
}

// New creates an Open Food Facts repository.
func New(client pkgOFF.IOpenFoodFacts, l pkgLog.Logger) catalog.Repository {
	return &implRepository{client: client, l: l}
}

func (r *implRepository) Name() string {
	return catalog.ProviderOpenFoodFacts
}

func (r *implRepository) Search(ctx context.Context, opt catalog.SearchOptions) (catalog.SearchOutput, error) {
	out := catalog.SearchOutput{Provider: catalog.ProviderOpenFoodFacts}
	if r.client == nil {
		return out, &catalog.ProviderError{Provider: catalog.ProviderOpenFoodFacts, Err: catalog.ErrNotConfigured}
	}

	products, err := r.client.Search(ctx, opt.Query, opt.PageSize)
	if err != nil {
		pe := &catalog.ProviderError{Provider: catalog.ProviderOpenFoodFacts, Err: err}
		var apiErr *pkgOFF.APIError
		if errors.As(err, &apiErr) {
			pe.Status = apiErr.StatusCode
		}
		r.l.Debugf(ctx, "openfoodfacts repository: query=%q status=%d error=%v", opt.Query, pe.Status, err)
		return out, pe
	}

	out.Records = make([]model.FoodRecord, 0, len(products))
	for _, p := range products {
		out.Records = append(out.Records, toRecord(p))
	}

	r.l.Debugf(ctx, "openfoodfacts repository: returned_products=%d query=%q", len(out.Records), opt.Query)
	for i, rec := range out.Records {
		if i == debugSampleSize {
			break
		}
		r.l.Debugf(ctx, "openfoodfacts repository: sample#%d name=%q nutriscore=%q", i+1, rec.Name, rec.Nutriscore)
	}

	if len(out.Records) == 0 {
		return out, &catalog.ProviderError{Provider: catalog.ProviderOpenFoodFacts, Err: catalog.ErrNoResults}
	}
	return out, nil
}

func toRecord(p pkgOFF.Product) model.FoodRecord {
	return model.FoodRecord{
		Code:        p.Code,
		Name:        p.Name,
		Brand:       p.Brands,
		Nutriscore:  p.NutriscoreGrade,
		Kcal:        p.Kcal,
		Sugar:       p.Sugars,
		Protein:     p.Proteins,
		Fat:         p.Fat,
		Salt:        p.Salt,
		Ingredients: p.IngredientsText,
		URL:         p.URL,
	}
}
