package usecase

import (
	"fmt"
	"sort"
	"strings"

	"nutrition-assistant/internal/model"
)

// rankRows sorts a copy of rows by the goal metric. Ties keep input order.
func rankRows(rows []model.ComparisonRow, goal model.Goal) []model.ComparisonRow {
	ranked := make([]model.ComparisonRow, len(rows))
	copy(ranked, rows)
	desc := goal == model.GoalHigherProtein
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := metricValue(ranked[i].Record, goal), metricValue(ranked[j].Record, goal)
		if desc {
			return a > b
		}
		return a < b
	})
	return ranked
}

// buildTable renders ranked rows as a markdown table, or "" when there are none.
func buildTable(rows []model.ComparisonRow, goal model.Goal) string {
	if len(rows) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("Comparison table\n\n")
	sb.WriteString("| Query | Product | kcal/100g | sugar/100g | protein/100g | fat/100g | salt/100g |\n")
	sb.WriteString("|---|---|---:|---:|---:|---:|---:|\n")
	for _, row := range rankRows(rows, goal) {
		r := row.Record
		fmt.Fprintf(&sb, "| %s | %s | %s | %s | %s | %s | %s |\n",
			row.Query, r.Name, formatNum(r.Kcal), formatNum(r.Sugar), formatNum(r.Protein), formatNum(r.Fat), formatNum(r.Salt))
	}
	fmt.Fprintf(&sb, "\nAssumed goal: %s", goal)
	return sb.String()
}

func formatNum(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.1f", *v)
}

// contextLine renders one record for a grounded prompt.
func contextLine(idx int, r model.FoodRecord) string {
	brand := r.Brand
	if brand == "" {
		brand = "n/a"
	}
	return fmt.Sprintf("%d. %s | brand=%s | kcal_100g=%s | sugar_100g=%s | protein_100g=%s | fat_100g=%s | salt_100g=%s | url=%s",
		idx, r.Name, brand, formatNum(r.Kcal), formatNum(r.Sugar), formatNum(r.Protein), formatNum(r.Fat), formatNum(r.Salt), r.URL)
}
