package intent

// Log prefixes
const (
	LogPrefixExtract = "internal.intent.Extract"
)

// Extraction call configuration
const (
	DefaultMaxTokens       = 220
	DefaultHistoryWindow   = 6
	DefaultMaxMessageChars = 1500

	maxCompareItemChars  = 40
	maxCompareItemTokens = 4
	maxQueryTokens       = 5
	defaultFoodQuery     = "food"
	correctionFoodQuery  = "correction request"
	memoryFoodQuery      = "conversation products"
)

// Error messages
const (
	ErrMsgLLMCallFailed   = "LLM call failed, using heuristic"
	ErrMsgJSONParseFailed = "Failed to parse JSON, using heuristic"
	ErrMsgInvalidOutput   = "Invalid extraction output, using heuristic"
)

// PromptExtractionSystem routes a message and extracts the food entities.
const PromptExtractionSystem = `You are a query router and entity extractor for a nutrition assistant.

Return ONLY valid JSON:
{
  "mode": "catalog" | "general" | "memory" | "compare" | "correction",
  "food_query": "string",
  "compare_items": ["string"]
}

# Definitions
- mode="catalog": user asks about a specific packaged food/product/brand that should be searched in catalog.
- mode="general": user asks broad nutrition knowledge/comparison without needing catalog lookup.
- mode="memory": user asks what was discussed previously in conversation.
- mode="compare": user asks to compare 2+ concrete products/brands.
- mode="correction": user says the last answer was wrong/off-topic and wants a corrected response.

# Rules
1. food_query must be short (1-6 words), lowercase, keyword style.
2. Remove filler words and question wrappers.
3. Keep important brand/product tokens.
4. Classify only from the latest user message.
5. For mode="compare", compare_items must include 2-4 products.
6. Treat "compare X with Y", "X vs Y", and "X or Y" as compare mode.
7. Use mode="memory" only for explicit recall requests.
8. Use mode="correction" for explicit complaint/off-topic correction requests.
9. Natural whole foods (apple, orange, banana, avocado, etc.) should prefer general mode.
10. Return JSON only. No markdown, prose, or extra keys.

# Examples
User: "nutritional breakdown of a snickers bar"
Output: {"mode":"catalog","food_query":"snickers chocolate bar","compare_items":[]}

User: "can you compare a prime energy drink with a monster energy drink for less sugar content"
Output: {"mode":"compare","food_query":"prime monster sugar","compare_items":["prime energy drink","monster energy drink"]}

User: "compare sugar in coca cola zero and pepsi"
Output: {"mode":"compare","food_query":"coca cola zero pepsi sugar","compare_items":["coca cola zero","pepsi"]}

User: "which products did i ask about earlier?"
Output: {"mode":"memory","food_query":"conversation products","compare_items":[]}

User: "your answer wasn't related to my query"
Output: {"mode":"correction","food_query":"off topic correction","compare_items":[]}`

// Heuristic cue lists. Matching is substring based on the lowercased text.
var (
	fallbackCompareCues = []string{" vs ", " versus ", " or ", "compare ", "which has better", "better than"}
	enforceCompareCues  = []string{"compare", " vs ", " versus ", " or ", " with ", "better than", "which is better"}

	correctionCues = []string{
		"didn t ask about that",
		"didn't ask about that",
		"not related to my query",
		"not what i asked",
		"you are wrong",
		"your answer wasn't related",
		"answer was not related",
		"off topic",
	}

	memoryCues = []string{
		"products i asked",
		"what products",
		"list the products",
		"conversation history",
		"earlier products",
	}

	catalogClassCues = []string{"brand", "bar", "bottle", "snickers", "doritos", "gatorade", "coca", "pepsi"}
	generalClassCues = []string{"more calories than", "vs", "versus", "is it good", "healthy", "calories in an", "calories in a"}

	catalogForceCues = []string{"show me", "find me", "look up", "nutrition facts for", "product", "products", "option", "options"}
)

// naturalFoods are whole foods better served by general knowledge than a packaged-food catalog.
var naturalFoods = map[string]struct{}{
	"apple": {}, "orange": {}, "banana": {}, "mango": {}, "grape": {}, "pear": {},
	"pineapple": {}, "watermelon": {}, "strawberry": {}, "blueberry": {}, "avocado": {},
	"broccoli": {}, "spinach": {}, "carrot": {}, "tomato": {}, "potato": {}, "onion": {},
	"garlic": {}, "rice": {}, "egg": {}, "chicken": {}, "beef": {}, "fish": {},
}
