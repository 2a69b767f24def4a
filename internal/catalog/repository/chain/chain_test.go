package chain

import (
	"context"
	"errors"
	"testing"
	"time"

	"nutrition-assistant/internal/catalog"
	"nutrition-assistant/internal/model"
	pkgLog "nutrition-assistant/pkg/log"
)

type stubRepo struct {
	name  string
	out   catalog.SearchOutput
	err   error
	calls int
}

func (s *stubRepo) Name() string { return s.name }

func (s *stubRepo) Search(ctx context.Context, opt catalog.SearchOptions) (catalog.SearchOutput, error) {
	s.calls++
	return s.out, s.err
}

func TestChain(t *testing.T) {
	failing := &stubRepo{name: "usda", err: &catalog.ProviderError{Provider: "usda", Status: 500, Err: errors.New("boom")}}
	empty := &stubRepo{name: "empty", out: catalog.SearchOutput{Provider: "empty"}}
	good := &stubRepo{name: "openfoodfacts", out: catalog.SearchOutput{Provider: "openfoodfacts", Records: []model.FoodRecord{{Name: "Nutella"}}}}
	unused := &stubRepo{name: "unused"}

	repo := New([]catalog.Repository{failing, empty, good, unused}, pkgLog.NewNop())
	out, err := repo.Search(context.Background(), catalog.SearchOptions{Query: "nutella"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Provider != "openfoodfacts" || len(out.Records) != 1 {
		t.Errorf("unexpected output: %+v", out)
	}
	if unused.calls != 0 {
		t.Error("repositories after the first hit must not be called")
	}
	if repo.Name() != "usda,empty,openfoodfacts,unused" {
		t.Errorf("unexpected name %q", repo.Name())
	}
}

func TestChain_AllFail(t *testing.T) {
	a := &stubRepo{name: "usda", err: &catalog.ProviderError{Provider: "usda", Status: 429, Err: errors.New("USDA HTTP 429")}}
	b := &stubRepo{name: "openfoodfacts", out: catalog.SearchOutput{Provider: "openfoodfacts"}}

	out, err := New([]catalog.Repository{a, b}, pkgLog.NewNop()).Search(context.Background(), catalog.SearchOptions{Query: "x"})
	if err == nil {
		t.Fatal("expected joined error")
	}
	if catalog.StatusOf(err) != 429 {
		t.Errorf("expected first status 429, got %d", catalog.StatusOf(err))
	}
	if !errors.Is(err, catalog.ErrNoResults) {
		t.Error("expected empty provider to contribute ErrNoResults")
	}
	if out.Provider != "openfoodfacts" {
		t.Errorf("expected last provider, got %q", out.Provider)
	}
}

func TestChain_Empty(t *testing.T) {
	_, err := New(nil, pkgLog.NewNop()).Search(context.Background(), catalog.SearchOptions{Query: "x"})
	if !errors.Is(err, catalog.ErrNotConfigured) {
		t.Errorf("expected ErrNotConfigured, got %v", err)
	}
}

type hangingRepo struct{ name string }

func (h *hangingRepo) Name() string { return h.name }

func (h *hangingRepo) Search(ctx context.Context, opt catalog.SearchOptions) (catalog.SearchOutput, error) {
	<-ctx.Done()
	return catalog.SearchOutput{Provider: h.name}, &catalog.ProviderError{Provider: h.name, Err: ctx.Err()}
}

func TestChain_SlowProviderLeavesTimeForFallback(t *testing.T) {
	slow := &hangingRepo{name: "usda"}
	fast := &stubRepo{name: "openfoodfacts", out: catalog.SearchOutput{Provider: "openfoodfacts", Records: []model.FoodRecord{{Name: "Snickers"}}}}

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	out, err := New([]catalog.Repository{slow, fast}, pkgLog.NewNop()).Search(ctx, catalog.SearchOptions{Query: "snickers"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fast.calls != 1 || out.Provider != "openfoodfacts" {
		t.Errorf("fallback provider not used: calls=%d out=%+v", fast.calls, out)
	}
}

func TestChain_StopsWhenCallerCancels(t *testing.T) {
	next := &stubRepo{name: "openfoodfacts"}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New([]catalog.Repository{&hangingRepo{name: "usda"}, next}, pkgLog.NewNop()).Search(ctx, catalog.SearchOptions{Query: "x"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected canceled, got %v", err)
	}
	if next.calls != 0 {
		t.Error("no provider should run after the caller gave up")
	}
}
