package openfoodfacts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

func newOFFImpl(cfg Config) *offImpl {
	impl := &offImpl{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		country:    strings.ToLower(strings.TrimSpace(cfg.Country)),
		pageSize:   cfg.PageSize,
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryDelay,
		httpClient: cfg.HTTPClient,
	}
	if cfg.RequestsPerMin > 0 {
		impl.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RequestsPerMin)), cfg.Burst)
	}
	return impl
}

// Search queries cgi/search.pl, retrying only on timeouts
func (o *offImpl) Search(ctx context.Context, query string, pageSize int) ([]Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	if pageSize <= 0 {
		pageSize = o.pageSize
	}
	endpoint := o.baseURL + searchPath + "?" + o.buildParams(query, pageSize).Encode()

	var (
		payload *searchResponse
		lastErr error
	)
	for attempt := 1; attempt <= o.maxRetries; attempt++ {
		if o.limiter != nil {
			if err := o.limiter.Wait(ctx); err != nil {
				return nil, fmt.Errorf("openfoodfacts: throttled: %w", err)
			}
		}

		payload, lastErr = o.fetch(ctx, endpoint)
		if lastErr == nil {
			break
		}
		if !isTimeout(lastErr) || ctx.Err() != nil {
			return nil, lastErr
		}
		if attempt < o.maxRetries {
			select {
			case <-time.After(time.Duration(attempt) * o.retryDelay):
			case <-ctx.Done():
				return nil, lastErr
			}
		}
	}
	if lastErr != nil {
		return nil, lastErr
	}

	products := make([]Product, 0, len(payload.Products))
	for _, item := range payload.Products {
		if item.ProductName == "" {
			continue
		}
		products = append(products, toProduct(item))
	}
	return products, nil
}

func (o *offImpl) buildParams(query string, pageSize int) url.Values {
	params := url.Values{
		"search_terms":  {query},
		"search_simple": {"1"},
		"action":        {"process"},
		"json":          {"1"},
		"page_size":     {strconv.Itoa(pageSize)},
		"fields":        {searchFields},
	}
	if o.country != "" && !unfilteredCountries[o.country] {
		params.Set("tagtype_0", "countries")
		params.Set("tag_contains_0", "contains")
		params.Set("tag_0", o.country)
	}
	return params
}

func (o *offImpl) fetch(ctx context.Context, endpoint string) (*searchResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("openfoodfacts: failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openfoodfacts: network error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode}
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("openfoodfacts: failed to decode response: %w", err)
	}
	return &result, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func toProduct(item searchProduct) Product {
	return Product{
		Code:            string(item.Code),
		Name:            item.ProductName,
		Brands:          item.Brands,
		NutriscoreGrade: strings.ToUpper(item.NutriscoreGrade),
		Kcal:            toFloat(item.Nutriments["energy-kcal_100g"]),
		Sugars:          toFloat(item.Nutriments["sugars_100g"]),
		Proteins:        toFloat(item.Nutriments["proteins_100g"]),
		Fat:             toFloat(item.Nutriments["fat_100g"]),
		Salt:            toFloat(item.Nutriments["salt_100g"]),
		IngredientsText: item.IngredientsText,
		URL:             item.URL,
	}
}

// toFloat accepts JSON numbers and numeric strings.
func toFloat(v any) *float64 {
	switch val := v.(type) {
	case float64:
		return &val
	case string:
		if val == "" {
			return nil
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return nil
		}
		return &f
	default:
		return nil
	}
}

// flexString decodes a JSON string or number.
type flexString string

func (s *flexString) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*s = flexString(str)
		return nil
	}
	if string(b) == "null" {
		return nil
	}
	*s = flexString(b)
	return nil
}
