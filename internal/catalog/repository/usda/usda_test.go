package usda

import (
	"context"
	"errors"
	"testing"

	"nutrition-assistant/internal/catalog"
	pkgLog "nutrition-assistant/pkg/log"
	pkgUSDA "nutrition-assistant/pkg/usda"
)

type stubClient struct {
	foods []pkgUSDA.Food
	err   error
}

func (s *stubClient) Search(ctx context.Context, query string, pageSize int) ([]pkgUSDA.Food, error) {
	return s.foods, s.err
}

func TestSearch(t *testing.T) {
	kcal := 488.0
	repo := New(&stubClient{foods: []pkgUSDA.Food{{FdcID: "1", Description: "Snickers Bar", Brand: "Mars", Kcal: &kcal}}}, pkgLog.NewNop())

	out, err := repo.Search(context.Background(), catalog.SearchOptions{Query: "snickers", PageSize: 12})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Provider != catalog.ProviderUSDA || len(out.Records) != 1 {
		t.Fatalf("unexpected output: %+v", out)
	}
	if r := out.Records[0]; r.Name != "Snickers Bar" || r.Brand != "Mars" || *r.Kcal != 488 {
		t.Errorf("unexpected record: %+v", r)
	}
}

func TestSearch_Errors(t *testing.T) {
	t.Run("http status", func(t *testing.T) {
		repo := New(&stubClient{err: &pkgUSDA.APIError{StatusCode: 429}}, pkgLog.NewNop())
		_, err := repo.Search(context.Background(), catalog.SearchOptions{Query: "x"})
		if catalog.StatusOf(err) != 429 {
			t.Errorf("expected status 429, got %v", err)
		}
	})

	t.Run("empty", func(t *testing.T) {
		repo := New(&stubClient{}, pkgLog.NewNop())
		_, err := repo.Search(context.Background(), catalog.SearchOptions{Query: "x"})
		if !errors.Is(err, catalog.ErrNoResults) {
			t.Errorf("expected ErrNoResults, got %v", err)
		}
	})

	t.Run("missing key", func(t *testing.T) {
		repo := New(nil, pkgLog.NewNop())
		_, err := repo.Search(context.Background(), catalog.SearchOptions{Query: "x"})
		if !errors.Is(err, pkgUSDA.ErrAPIKeyMissing) {
			t.Errorf("expected ErrAPIKeyMissing, got %v", err)
		}
	})
}
