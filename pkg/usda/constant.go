package usda

import "time"

const (
	// DefaultBaseURL is the FoodData Central API root
	DefaultBaseURL = "https://api.nal.usda.gov/fdc/v1"

	// DefaultPageSize is the number of foods requested per search
	DefaultPageSize = 12

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 20 * time.Second

	userAgent     = "nutrition-assistant/0.1"
	detailURLFmt  = "https://fdc.nal.usda.gov/fdc-app.html#/food-details/%s/nutrients"
	sodiumToSalt  = 2.5
	redactedValue = "***"
)

// Data types requested from the search endpoint.
var dataTypes = []string{"Branded", "Foundation", "Survey (FNDDS)"}

// Nutrient names as reported by FoodData Central.
var (
	nutrientEnergy  = []string{"Energy"}
	nutrientSugars  = []string{"Sugars, total including NLEA", "Sugars, total"}
	nutrientProtein = []string{"Protein"}
	nutrientFat     = []string{"Total lipid (fat)"}
	nutrientSodium  = []string{"Sodium, Na"}
)
