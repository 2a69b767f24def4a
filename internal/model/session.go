package model

// Goal is a nutritional optimization criterion.
type Goal string

const (
	GoalLowerCalories Goal = "lower calories"
	GoalLowerSugar    Goal = "lower sugar"
	GoalHigherProtein Goal = "higher protein"
	GoalLowerSodium   Goal = "lower sodium"
	GoalLowerFat      Goal = "lower fat"

	DefaultGoal = GoalLowerCalories
)

// MaxSessionProducts caps the recalled product list.
const MaxSessionProducts = 8

// SessionState is derived from the full history on every turn.
type SessionState struct {
	Products []string // most recent last
	Goal     Goal
}

// Confidence labels a filtered result set.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// MatchMeta describes how well a result set matched its query.
type MatchMeta struct {
	Confidence  Confidence
	Explanation string
}

// ComparisonRow pairs the query that found a record with the record.
type ComparisonRow struct {
	Query  string
	Record FoodRecord
}
