package openfoodfacts

import "time"

const (
	// DefaultBaseURL is the Open Food Facts host
	DefaultBaseURL = "https://world.openfoodfacts.org"

	// DefaultCountry disables the country filter
	DefaultCountry = "world"

	DefaultPageSize   = 20
	DefaultMaxRetries = 2
	DefaultTimeout    = 20 * time.Second
	DefaultRetryDelay = 600 * time.Millisecond

	userAgent    = "nutrition-assistant/0.1"
	searchPath   = "/cgi/search.pl"
	searchFields = "code,product_name,brands,nutriscore_grade,nutriments,ingredients_text,url"
)

// Country values that mean "no filter".
var unfilteredCountries = map[string]bool{"world": true, "all": true, "*": true}
