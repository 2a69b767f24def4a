package usecase

// Log prefixes
const (
	LogPrefixAnswer  = "internal.assistant.usecase.Answer"
	LogPrefixCompare = "internal.assistant.usecase.compare"
	LogPrefixCatalog = "internal.assistant.usecase.catalog"
)

// Defaults
const (
	DefaultCatalogPageSize             = 12
	DefaultComparePageSize             = 6
	DefaultDisambiguationMinNames      = 3
	DefaultDisambiguationMaxQueryWords = 2

	maxContextRecords        = 6
	maxCompareContextRecords = 3
	maxDisambiguationOptions = 4
	maxBroadResults          = 3
	retryQueryTokens         = 3
	minTokenLen              = 3
	exactMatchScore          = 8
	tokenMatchScore          = 2
	prefixMatchScore         = 1
	mediumConfidenceScore    = 4
	minKeepScore             = 2
	keepScoreWindow          = 3
)

// Provenance tags
const (
	SourceUX             = "ux"
	SourceMemory         = "memory"
	SourceCorrection     = "correction"
	SourceClarification  = "clarification"
	SourceDisambiguation = "disambiguation"
	compareSuffix        = "-compare"
)

var greetings = map[string]struct{}{
	"hi": {}, "hello": {}, "hey": {}, "hola": {}, "buenas": {}, "ola": {},
}

// User-facing messages
const (
	MsgEmptyInput = "Send a message to chat with the model."

	MsgGreeting = "What would you like to do?\n\n" +
		"1. Compare products\n" +
		"2. Check nutrition facts for one product\n" +
		"3. Tell me your goal\n\n" +
		"You can include a goal like: lower calories, lower sugar, higher protein, or lower sodium."

	MsgMemoryEmpty = "I do not have earlier product queries in this chat yet. " +
		"If you want, I can start by comparing two products or analyzing one product label."
	MsgMemoryHeader = "Here is what we have covered so far:"
	MsgMemoryFooter = "If you want, I can continue with that same goal or switch to a new one."

	MsgRestate = "Understood. Please restate what product(s) you want me to analyze."

	MsgClarifyGeneral = "What do you mean by better here: lower calories, lower sugar, higher protein, or lower sodium? " +
		"If you want, I can default to lower calories."
	MsgClarifyCompare = "Before I compare them, what should 'better' mean here: lower calories, lower sugar, higher protein, or lower sodium?"

	MsgDisambiguation = "I found multiple plausible product variants. Which one do you mean?"

	MsgNoCatalogResults = "No catalog results. Details: %s"
	MsgNoMatchingDetail = "No matching products in catalog."

	MsgGuardNoData  = "I could not generate a detailed recommendation. I found limited catalog data for your request."
	MsgGuardCompare = "For the goal '%s', the better match appears to be **%s** (query: %s) over **%s** (query: %s). " +
		"See the table below for the numeric breakdown and data gaps."
	MsgGuardSingle = "Here is the nutrition summary I found for **%s** (query: %s). " +
		"Given your goal '%s', review calories, sugar, protein, fat, and salt in the table below."
)

// Prompts sent to the responder
const (
	PromptGeneralTemplate = "SESSION_STATE: %s\n\n" +
		"User question: %s\n" +
		"Answer as a nutrition assistant with concise, practical advice. " +
		"If user asks numbers, clarify they are approximate unless label data is provided."

	PromptCompareClarify = "Ask one short clarification question to identify the 2 products to compare."

	PromptCompareNoMatches = "User question: %s\n" +
		"No catalog matches found. Give general comparison guidance and ask user to provide exact product names."

	PromptCompareTemplate = "SESSION_STATE: %s\n" +
		"%s\n" +
		"Compare the requested items side-by-side using catalog values when available. " +
		"The comparison goal is '%s'. " +
		"If data is missing for an item, explicitly say so."

	PromptCatalogMiss = "User question: %s\n" +
		"Answer as a nutrition assistant. " +
		"If exact product facts are unknown, state that briefly and provide general guidance."

	PromptCatalogTemplate = "SESSION_STATE: %s\n" +
		"User request: %s\n" +
		"The main goal is '%s'."
)

// Relevance explanations
const (
	ExplainNoMatch      = "no relevant product match"
	ExplainTooBroad     = "query tokens too broad for strict filtering"
	ExplainBroadResults = "fallback to broad results"
	ExplainExact        = "exact keyword match"
	ExplainPartial      = "partial keyword match"
)

var (
	clarifyAskCues  = []string{"better", "healthier", "best option", "which is best"}
	clarifyGoalCues = []string{"calorie", "kcal", "sugar", "protein", "sodium", "salt", "fat", "electrolyte"}
)
