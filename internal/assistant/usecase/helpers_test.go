package usecase

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nutrition-assistant/internal/model"
)

func TestFilterRelevant(t *testing.T) {
	records := []model.FoodRecord{{Name: "Pretzels"}, {Name: "Snickers Bar"}}

	got, meta := filterRelevant("snickers", records)
	require.Len(t, got, 1)
	assert.Equal(t, "Snickers Bar", got[0].Name)
	assert.Equal(t, model.ConfidenceHigh, meta.Confidence)
	assert.Equal(t, ExplainExact, meta.Explanation)
}

func TestFilterRelevant_Edges(t *testing.T) {
	_, meta := filterRelevant("anything", nil)
	assert.Equal(t, model.MatchMeta{Confidence: model.ConfidenceLow, Explanation: ExplainNoMatch}, meta)

	records := []model.FoodRecord{{Name: "A"}, {Name: "B"}, {Name: "C"}, {Name: "D"}}
	got, meta := filterRelevant("xy", records)
	assert.Len(t, got, 3)
	assert.Equal(t, ExplainTooBroad, meta.Explanation)

	got, meta = filterRelevant("apples", records)
	assert.Len(t, got, 3)
	assert.Equal(t, ExplainBroadResults, meta.Explanation)

	implausible := []model.FoodRecord{{Name: "Weird Apple", Kcal: f(5000)}, {Name: "Apple Slices", Kcal: f(52)}}
	got, _ = filterRelevant("apple", implausible)
	require.Len(t, got, 1)
	assert.Equal(t, "Apple Slices", got[0].Name)

	got, _ = filterRelevant("apple", implausible[:1])
	assert.Len(t, got, 1, "implausible records are kept when nothing else remains")
}

func TestQueryTokens(t *testing.T) {
	assert.Equal(t, []string{"apples", "appl", "apple", "kit"}, queryTokens("apples & kit"))
	assert.Equal(t, []string{"chips", "chip"}, queryTokens("chips"))
	assert.Empty(t, queryTokens("a b"))
}

func TestInferGoal(t *testing.T) {
	assert.Equal(t, model.GoalLowerSugar, inferGoal("which has less sugar?", model.SessionState{}))
	assert.Equal(t, model.GoalHigherProtein, inferGoal("more protein please", model.SessionState{Goal: model.GoalLowerSugar}))
	assert.Equal(t, model.GoalLowerSodium, inferGoal("what about it", model.SessionState{Goal: model.GoalLowerSodium}))
	assert.Equal(t, model.GoalLowerCalories, inferGoal("what about it", model.SessionState{}))
	assert.Equal(t, model.GoalLowerFat, inferGoal("is it greasy", model.SessionState{}))
}

func TestMetricValue_Missing(t *testing.T) {
	assert.True(t, math.IsInf(metricValue(model.FoodRecord{}, model.GoalHigherProtein), -1))
	assert.True(t, math.IsInf(metricValue(model.FoodRecord{}, model.GoalLowerSugar), 1))
	assert.Equal(t, 3.0, metricValue(model.FoodRecord{Salt: f(3)}, model.GoalLowerSodium))
}

func TestBuildTable_HigherProteinOrdering(t *testing.T) {
	rows := []model.ComparisonRow{
		{Query: "a", Record: model.FoodRecord{Name: "Missing"}},
		{Query: "b", Record: model.FoodRecord{Name: "Low", Protein: f(5)}},
		{Query: "c", Record: model.FoodRecord{Name: "High", Protein: f(10)}},
	}
	table := buildTable(rows, model.GoalHigherProtein)

	high := strings.Index(table, "| c | High |")
	low := strings.Index(table, "| b | Low |")
	missing := strings.Index(table, "| a | Missing | n/a | n/a | n/a | n/a | n/a |")
	require.True(t, high >= 0 && low >= 0 && missing >= 0, table)
	assert.Less(t, high, low)
	assert.Less(t, low, missing)
	assert.True(t, strings.HasPrefix(table, "Comparison table\n\n"))
	assert.True(t, strings.HasSuffix(table, "Assumed goal: higher protein"))
	assert.Contains(t, table, "10.0")

	assert.Empty(t, buildTable(nil, model.GoalLowerCalories))
}

func TestSplitCompareItems(t *testing.T) {
	assert.Equal(t, []string{"coke pepsi", "sprite"}, splitCompareItems("coke versus pepsi and sprite"))
	assert.Equal(t, []string{"a", "b", "c", "d"}, splitCompareItems("a or b or c or d or e or a"))
	assert.Equal(t, []string{"snickers"}, splitCompareItems("snickers"))
}

func TestEnsureNaturalAnswer(t *testing.T) {
	rows := []model.ComparisonRow{
		{Query: "kit kat", Record: kitKat()},
		{Query: "snickers", Record: snickersBar()},
	}

	assert.Equal(t, "fine answer", ensureNaturalAnswer("  fine answer ", rows, model.GoalLowerCalories, true))
	assert.Equal(t, MsgGuardNoData, ensureNaturalAnswer("", nil, model.GoalLowerCalories, true))

	got := ensureNaturalAnswer("", rows, model.GoalLowerCalories, true)
	assert.Contains(t, got, "**Snickers Bar** (query: snickers) over **Kit Kat Wafer** (query: kit kat)")

	got = ensureNaturalAnswer("Language model request failed. Check model/key settings and try again.", rows[:1], model.GoalLowerSugar, false)
	assert.True(t, strings.HasPrefix(got, "Here is the nutrition summary I found for **Kit Kat Wafer**"))
}

func TestNeedsGoalClarification(t *testing.T) {
	assert.True(t, needsGoalClarification("which is healthier?"))
	assert.False(t, needsGoalClarification("which is better for sugar?"))
	assert.False(t, needsGoalClarification("snickers nutrition"))
}

func TestSessionText(t *testing.T) {
	assert.Equal(t, "products=none; goal=lower calories", sessionText(model.SessionState{}))
	assert.Equal(t, "products=a, b; goal=lower fat", sessionText(model.SessionState{Products: []string{"a", "b"}, Goal: model.GoalLowerFat}))
}
