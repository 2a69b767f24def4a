package model

// Mode is the classified user intent driving one turn.
type Mode string

const (
	ModeCatalog    Mode = "catalog"
	ModeGeneral    Mode = "general"
	ModeCompare    Mode = "compare"
	ModeMemory     Mode = "memory"
	ModeCorrection Mode = "correction"
)

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	switch m {
	case ModeCatalog, ModeGeneral, ModeCompare, ModeMemory, ModeCorrection:
		return true
	}
	return false
}

// IntentSource records which path produced an Intent.
type IntentSource string

const (
	IntentSourceLLM      IntentSource = "llm"
	IntentSourceFallback IntentSource = "fallback"
)

// MaxCompareItems caps the number of items compared in one turn.
const MaxCompareItems = 4

// Intent is the structured reading of one user message.
type Intent struct {
	Mode         Mode
	FoodQuery    string
	CompareItems []string // 0..MaxCompareItems, deduplicated, order preserved
	Source       IntentSource
}
