package model

// Plausible energy bounds per 100g.
const (
	MinPlausibleKcal = 0.0
	MaxPlausibleKcal = 900.0
)

// FoodRecord is one catalog hit with per-100g nutrients.
// Nil nutrient pointers mean unknown, not zero.
type FoodRecord struct {
	Code        string
	Name        string
	Brand       string
	Nutriscore  string
	Kcal        *float64
	Sugar       *float64
	Protein     *float64
	Fat         *float64
	Salt        *float64
	Ingredients string
	URL         string
}

// Plausible reports whether the energy value, when present, is within bounds.
func (r FoodRecord) Plausible() bool {
	if r.Kcal == nil {
		return true
	}
	return *r.Kcal >= MinPlausibleKcal && *r.Kcal <= MaxPlausibleKcal
}
