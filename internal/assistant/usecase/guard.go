package usecase

import (
	"fmt"
	"strings"

	"nutrition-assistant/internal/model"
	"nutrition-assistant/internal/responder"
)

// ensureNaturalAnswer replaces a blank or failure-marker reply with a sentence built from rows.
func ensureNaturalAnswer(answer string, rows []model.ComparisonRow, goal model.Goal, isCompare bool) string {
	text := strings.TrimSpace(answer)
	if !responder.IsFailureMarker(text) {
		return text
	}
	if len(rows) == 0 {
		return MsgGuardNoData
	}
	if isCompare && len(rows) >= 2 {
		ranked := rankRows(rows, goal)
		best, second := ranked[0], ranked[1]
		return fmt.Sprintf(MsgGuardCompare, goal, best.Record.Name, best.Query, second.Record.Name, second.Query)
	}
	return fmt.Sprintf(MsgGuardSingle, rows[0].Record.Name, rows[0].Query, goal)
}
