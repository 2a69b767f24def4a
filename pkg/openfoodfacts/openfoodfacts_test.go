package openfoodfacts_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"nutrition-assistant/pkg/openfoodfacts"
)

const sampleBody = `{"products":[
	{"code":"3017620422003","product_name":"Nutella","brands":"Ferrero","nutriscore_grade":"e",
	 "nutriments":{"energy-kcal_100g":539,"sugars_100g":"56.3","proteins_100g":6.3,"fat_100g":30.9,"salt_100g":0.107},
	 "ingredients_text":"sugar, palm oil","url":"https://world.openfoodfacts.org/product/3017620422003"},
	{"code":12345,"product_name":"","brands":"Nameless"},
	{"code":"1","product_name":"Mystery spread","nutriments":{"sugars_100g":"n/a"}}
]}`

func TestSearch(t *testing.T) {
	var query map[string][]string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/cgi/search.pl" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		query = r.URL.Query()
		w.Write([]byte(sampleBody))
	}))
	defer ts.Close()

	t.Run("parses products", func(t *testing.T) {
		client, _ := openfoodfacts.New(openfoodfacts.Config{BaseURL: ts.URL})
		products, err := client.Search(context.Background(), "nutella", 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(products) != 2 {
			t.Fatalf("expected 2 products (nameless skipped), got %d", len(products))
		}

		p := products[0]
		if p.NutriscoreGrade != "E" {
			t.Errorf("expected uppercased grade, got %q", p.NutriscoreGrade)
		}
		if p.Sugars == nil || *p.Sugars != 56.3 {
			t.Errorf("expected numeric string to parse, got %v", p.Sugars)
		}
		if p.Kcal == nil || *p.Kcal != 539 {
			t.Errorf("unexpected kcal %v", p.Kcal)
		}
		if products[1].Sugars != nil || products[1].Kcal != nil {
			t.Errorf("unparseable or missing values must be nil: %+v", products[1])
		}

		if _, ok := query["tagtype_0"]; ok {
			t.Error("world must not add a country filter")
		}
		if query["page_size"][0] != "20" {
			t.Errorf("expected default page size 20, got %v", query["page_size"])
		}
	})

	t.Run("country filter", func(t *testing.T) {
		client, _ := openfoodfacts.New(openfoodfacts.Config{BaseURL: ts.URL, Country: "Peru"})
		if _, err := client.Search(context.Background(), "galletas", 6); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if query["tag_0"][0] != "peru" || query["tagtype_0"][0] != "countries" {
			t.Errorf("expected country filter, got %v", query)
		}
	})
}

func TestSearch_HTTPErrorNotRetried(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	client, _ := openfoodfacts.New(openfoodfacts.Config{BaseURL: ts.URL, MaxRetries: 3})
	_, err := client.Search(context.Background(), "oats", 0)

	var apiErr *openfoodfacts.APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 APIError, got %v", err)
	}
	if atomic.LoadInt32(&calls) != 1 {
		t.Errorf("status errors must not be retried, got %d calls", calls)
	}
}

func TestSearch_RetriesOnTimeout(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			time.Sleep(200 * time.Millisecond)
		}
		w.Write([]byte(sampleBody))
	}))
	defer ts.Close()

	client, _ := openfoodfacts.New(openfoodfacts.Config{
		BaseURL:    ts.URL,
		MaxRetries: 2,
		RetryDelay: time.Millisecond,
		HTTPClient: &http.Client{Timeout: 50 * time.Millisecond},
	})
	products, err := client.Search(context.Background(), "nutella", 0)
	if err != nil {
		t.Fatalf("expected success after retry, got %v", err)
	}
	if len(products) != 2 || atomic.LoadInt32(&calls) != 2 {
		t.Errorf("expected 2 products after 2 calls, got %d products, %d calls", len(products), calls)
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := openfoodfacts.Config{}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BaseURL != openfoodfacts.DefaultBaseURL || cfg.MaxRetries != openfoodfacts.DefaultMaxRetries || cfg.HTTPClient == nil {
		t.Errorf("defaults not applied: %+v", cfg)
	}

	bad := openfoodfacts.Config{RequestsPerMin: -1}
	if err := bad.Validate(); err == nil {
		t.Error("expected error for negative RequestsPerMin")
	}
}

func TestSearch_BurstAdmitsConcurrentBatch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleBody))
	}))
	defer ts.Close()

	client, _ := openfoodfacts.New(openfoodfacts.Config{BaseURL: ts.URL, RequestsPerMin: 10, Burst: 4})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	var (
		wg     sync.WaitGroup
		failed int32
	)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := client.Search(ctx, "nutella", 0); err != nil {
				atomic.AddInt32(&failed, 1)
			}
		}()
	}
	wg.Wait()

	if failed != 0 {
		t.Errorf("%d searches were throttled out of the batch", failed)
	}
	if _, err := client.Search(ctx, "nutella", 0); err == nil {
		t.Error("a fifth search should not fit in the deadline at 10 rpm")
	}
}
