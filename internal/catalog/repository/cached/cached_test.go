package cached

import (
	"context"
	"errors"
	"testing"
	"time"

	"nutrition-assistant/internal/catalog"
	"nutrition-assistant/internal/model"
	pkgLog "nutrition-assistant/pkg/log"
)

type countingRepo struct {
	out   catalog.SearchOutput
	err   error
	calls int
}

func (c *countingRepo) Name() string { return "usda" }

func (c *countingRepo) Search(ctx context.Context, opt catalog.SearchOptions) (catalog.SearchOutput, error) {
	c.calls++
	return c.out, c.err
}

func TestCached(t *testing.T) {
	inner := &countingRepo{out: catalog.SearchOutput{Provider: "usda", Records: []model.FoodRecord{{Name: "Snickers"}}}}
	repo := New(inner, 16, time.Minute, pkgLog.NewNop())

	for _, q := range []string{"Snickers", " snickers "} {
		out, err := repo.Search(context.Background(), catalog.SearchOptions{Query: q, PageSize: 12})
		if err != nil || len(out.Records) != 1 {
			t.Fatalf("unexpected result: %+v, %v", out, err)
		}
	}
	if inner.calls != 1 {
		t.Errorf("expected a single upstream call, got %d", inner.calls)
	}

	if _, err := repo.Search(context.Background(), catalog.SearchOptions{Query: "snickers", PageSize: 6}); err != nil {
		t.Fatal(err)
	}
	if inner.calls != 2 {
		t.Errorf("page size is part of the key, expected 2 calls, got %d", inner.calls)
	}
}

func TestCached_SkipsFailures(t *testing.T) {
	inner := &countingRepo{err: &catalog.ProviderError{Provider: "usda", Err: catalog.ErrNoResults}}
	repo := New(inner, 16, time.Minute, pkgLog.NewNop())

	for i := 0; i < 2; i++ {
		if _, err := repo.Search(context.Background(), catalog.SearchOptions{Query: "x"}); !errors.Is(err, catalog.ErrNoResults) {
			t.Fatalf("expected ErrNoResults, got %v", err)
		}
	}
	if inner.calls != 2 {
		t.Errorf("failures must not be cached, got %d calls", inner.calls)
	}
}

func TestCached_Expires(t *testing.T) {
	inner := &countingRepo{out: catalog.SearchOutput{Records: []model.FoodRecord{{Name: "Twix"}}}}
	repo := New(inner, 16, 20*time.Millisecond, pkgLog.NewNop())

	repo.Search(context.Background(), catalog.SearchOptions{Query: "twix"})
	time.Sleep(60 * time.Millisecond)
	repo.Search(context.Background(), catalog.SearchOptions{Query: "twix"})

	if inner.calls != 2 {
		t.Errorf("expected entry to expire, got %d calls", inner.calls)
	}
}
