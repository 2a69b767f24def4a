package usda

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrAPIKeyMissing is returned when no API key is configured.
var ErrAPIKeyMissing = errors.New("USDA API key not configured")

// Config holds USDA client configuration
type Config struct {
	APIKey     string
	BaseURL    string
	PageSize   int
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Validate validates the configuration and fills defaults
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrAPIKeyMissing
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.PageSize <= 0 {
		c.PageSize = DefaultPageSize
	}
	if c.HTTPClient == nil {
		timeout := c.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		c.HTTPClient = &http.Client{Timeout: timeout}
	}
	return nil
}

// Food is a search hit normalized to per-100g values.
// Nil nutrient pointers mean the value was not reported.
type Food struct {
	FdcID       string
	Description string
	Brand       string
	Ingredients string
	Kcal        *float64
	Sugars      *float64
	Protein     *float64
	Fat         *float64
	SodiumMg    *float64
	Salt        *float64 // derived from sodium
	URL         string
}

// APIError is returned for non-2xx responses.
type APIError struct {
	StatusCode int
	URL        string // api_key redacted
}

func (e *APIError) Error() string {
	return fmt.Sprintf("USDA HTTP %d", e.StatusCode)
}

type usdaImpl struct {
	apiKey     string
	baseURL    string
	pageSize   int
	httpClient *http.Client
}

// Wire types
type searchRequest struct {
	Query    string   `json:"query"`
	PageSize int      `json:"pageSize"`
	DataType []string `json:"dataType"`
}

type searchResponse struct {
	Foods []searchFood `json:"foods"`
}

type searchFood struct {
	FdcID         int64          `json:"fdcId"`
	Description   string         `json:"description"`
	BrandOwner    string         `json:"brandOwner"`
	BrandName     string         `json:"brandName"`
	Ingredients   string         `json:"ingredients"`
	FoodNutrients []foodNutrient `json:"foodNutrients"`
}

type foodNutrient struct {
	NutrientName string   `json:"nutrientName"`
	Value        *float64 `json:"value"`
}
