package usda

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

func newUSDAImpl(cfg Config) *usdaImpl {
	return &usdaImpl{
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		pageSize:   cfg.PageSize,
		httpClient: cfg.HTTPClient,
	}
}

// Search posts a foods/search request
func (u *usdaImpl) Search(ctx context.Context, query string, pageSize int) ([]Food, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	if pageSize <= 0 {
		pageSize = u.pageSize
	}

	body, err := json.Marshal(searchRequest{Query: query, PageSize: pageSize, DataType: dataTypes})
	if err != nil {
		return nil, fmt.Errorf("usda: failed to marshal request: %w", err)
	}

	endpoint := u.baseURL + "/foods/search?" + url.Values{"api_key": {u.apiKey}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("usda: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("usda: network error: %w", withoutURL(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, URL: RedactURL(endpoint)}
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("usda: failed to decode response: %w", err)
	}

	foods := make([]Food, 0, len(result.Foods))
	for _, item := range result.Foods {
		if item.Description == "" {
			continue
		}
		foods = append(foods, toFood(item))
	}
	return foods, nil
}

func toFood(item searchFood) Food {
	f := Food{
		Description: item.Description,
		Brand:       item.BrandOwner,
		Ingredients: item.Ingredients,
		Kcal:        findNutrient(item.FoodNutrients, nutrientEnergy),
		Sugars:      findNutrient(item.FoodNutrients, nutrientSugars),
		Protein:     findNutrient(item.FoodNutrients, nutrientProtein),
		Fat:         findNutrient(item.FoodNutrients, nutrientFat),
		SodiumMg:    findNutrient(item.FoodNutrients, nutrientSodium),
	}
	if f.Brand == "" {
		f.Brand = item.BrandName
	}
	if f.SodiumMg != nil {
		salt := *f.SodiumMg / 1000.0 * sodiumToSalt
		f.Salt = &salt
	}
	if item.FdcID != 0 {
		f.FdcID = strconv.FormatInt(item.FdcID, 10)
		f.URL = fmt.Sprintf(detailURLFmt, f.FdcID)
	}
	return f
}

// findNutrient returns the first nutrient whose name is in names.
func findNutrient(nutrients []foodNutrient, names []string) *float64 {
	for _, n := range nutrients {
		for _, name := range names {
			if n.NutrientName == name {
				return n.Value
			}
		}
	}
	return nil
}

// withoutURL drops the request URL, which carries the api key, from a transport error.
func withoutURL(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return uerr.Err
	}
	return err
}

// RedactURL masks the api_key query parameter for logging.
func RedactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	q := u.Query()
	if q.Has("api_key") {
		q.Set("api_key", redactedValue)
		u.RawQuery = q.Encode()
	}
	return u.String()
}
