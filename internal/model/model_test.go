package model

import (
	"strings"
	"testing"
)

func TestRecentHistory(t *testing.T) {
	history := []ChatMessage{
		{Role: "user", Content: "first"},
		{Role: "system", Content: "ignored"},
		{Role: "User", Content: "  padded  "},
		{Role: "assistant", Content: "   "},
		{Role: "assistant", Content: strings.Repeat("é", 10)},
	}

	got := RecentHistory(history, 4, 5)
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d: %+v", len(got), got)
	}
	if got[0].Role != RoleUser || got[0].Content != "padded" {
		t.Errorf("unexpected first entry: %+v", got[0])
	}
	if got[1].Content != strings.Repeat("é", 5) {
		t.Errorf("expected rune-safe truncation, got %q", got[1].Content)
	}
}

func TestFoodRecordPlausible(t *testing.T) {
	kcal := func(v float64) *float64 { return &v }
	cases := []struct {
		rec  FoodRecord
		want bool
	}{
		{FoodRecord{}, true},
		{FoodRecord{Kcal: kcal(0)}, true},
		{FoodRecord{Kcal: kcal(900)}, true},
		{FoodRecord{Kcal: kcal(-1)}, false},
		{FoodRecord{Kcal: kcal(3500)}, false},
	}
	for _, c := range cases {
		if got := c.rec.Plausible(); got != c.want {
			t.Errorf("Plausible(%v) = %v, want %v", c.rec.Kcal, got, c.want)
		}
	}
}

func TestModeValid(t *testing.T) {
	for _, m := range []Mode{ModeCatalog, ModeGeneral, ModeCompare, ModeMemory, ModeCorrection} {
		if !m.Valid() {
			t.Errorf("%s should be valid", m)
		}
	}
	if Mode("search").Valid() {
		t.Error("unknown mode reported valid")
	}
}
