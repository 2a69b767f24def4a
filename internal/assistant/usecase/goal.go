package usecase

import (
	"math"
	"strings"

	"nutrition-assistant/internal/model"
)

type goalRule struct {
	goal     model.Goal
	keywords []string
}

// goalRules are checked in order; the first match wins.
var goalRules = []goalRule{
	{model.GoalLowerCalories, []string{"calorie", "kcal", "less calorie", "lower calorie", "calorie dense"}},
	{model.GoalLowerSugar, []string{"sugar", "less sweet", "lower sugar"}},
	{model.GoalHigherProtein, []string{"protein", "more protein", "high protein"}},
	{model.GoalLowerSodium, []string{"sodium", "salt", "electrolyte"}},
	{model.GoalLowerFat, []string{"fat", "grease", "greasy"}},
}

func goalFromKeywords(text string) (model.Goal, bool) {
	lowered := strings.ToLower(text)
	for _, rule := range goalRules {
		for _, k := range rule.keywords {
			if strings.Contains(lowered, k) {
				return rule.goal, true
			}
		}
	}
	return "", false
}

// inferGoal resolves the goal from text, then the session, then the default.
func inferGoal(text string, state model.SessionState) model.Goal {
	if goal, ok := goalFromKeywords(text); ok {
		return goal
	}
	if state.Goal != "" {
		return state.Goal
	}
	return model.DefaultGoal
}

// metricValue returns the value ranked for goal. Missing values rank last.
func metricValue(r model.FoodRecord, goal model.Goal) float64 {
	var v *float64
	switch goal {
	case model.GoalLowerSugar:
		v = r.Sugar
	case model.GoalHigherProtein:
		v = r.Protein
	case model.GoalLowerSodium:
		v = r.Salt
	case model.GoalLowerFat:
		v = r.Fat
	default:
		v = r.Kcal
	}
	if v == nil {
		if goal == model.GoalHigherProtein {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}
	return *v
}

func needsGoalClarification(text string) bool {
	lowered := strings.ToLower(text)
	return containsAny(lowered, clarifyAskCues) && !containsAny(lowered, clarifyGoalCues)
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
