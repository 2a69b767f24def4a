package openfoodfacts

import (
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// Config holds Open Food Facts client configuration
type Config struct {
	BaseURL    string
	Country    string
	PageSize   int
	MaxRetries int
	RetryDelay time.Duration // multiplied by the attempt number
	// RequestsPerMin throttles outgoing searches; 0 disables throttling.
	RequestsPerMin int
	Burst          int // requests allowed at once before throttling; defaults to 1
	Timeout        time.Duration
	HTTPClient     *http.Client
}

// Validate fills defaults. Open Food Facts needs no credentials.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Country == "" {
		c.Country = DefaultCountry
	}
	if c.PageSize <= 0 {
		c.PageSize = DefaultPageSize
	}
	if c.MaxRetries < 1 {
		c.MaxRetries = DefaultMaxRetries
	}
	if c.RetryDelay <= 0 {
		c.RetryDelay = DefaultRetryDelay
	}
	if c.Burst < 1 {
		c.Burst = 1
	}
	if c.RequestsPerMin < 0 {
		return fmt.Errorf("openfoodfacts: RequestsPerMin must not be negative")
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

// Product is a search hit with per-100g nutriments.
// Nil pointers mean the value was not reported.
type Product struct {
	Code            string
	Name            string
	Brands          string
	NutriscoreGrade string
	Kcal            *float64
	Sugars          *float64
	Proteins        *float64
	Fat             *float64
	Salt            *float64
	IngredientsText string
	URL             string
}

// APIError is returned for non-2xx responses.
type APIError struct {
	StatusCode int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("OpenFoodFacts HTTP %d", e.StatusCode)
}

type offImpl struct {
	baseURL    string
	country    string
	pageSize   int
	maxRetries int
	retryDelay time.Duration
	limiter    *rate.Limiter
	httpClient *http.Client
}

// Wire types
type searchResponse struct {
	Products []searchProduct `json:"products"`
}

type searchProduct struct {
	Code            flexString     `json:"code"`
	ProductName     string         `json:"product_name"`
	Brands          string         `json:"brands"`
	NutriscoreGrade string         `json:"nutriscore_grade"`
	Nutriments      map[string]any `json:"nutriments"`
	IngredientsText string         `json:"ingredients_text"`
	URL             string         `json:"url"`
}
