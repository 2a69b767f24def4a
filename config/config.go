package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Nutrition assistant specifics
	Assistant     AssistantConfig
	Catalog       CatalogConfig
	USDA          USDAConfig
	OpenFoodFacts OpenFoodFactsConfig

	// LLM Provider Abstraction
	LLM LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
}

// AssistantConfig tunes the conversation pipeline.
type AssistantConfig struct {
	CatalogPageSize             int
	ComparePageSize             int
	HistoryWindow               int
	MaxMessageChars             int
	DisambiguationMinNames      int
	DisambiguationMaxQueryWords int
	ExtractionUseHistory        bool
	ReplyMaxTokens              int
	ExtractionMaxTokens         int
}

// CatalogConfig selects and wraps the food data providers.
type CatalogConfig struct {
	Providers      []string      // tried in order
	RequestTimeout time.Duration // per HTTP call
	// LookupTimeout bounds one lookup across the whole provider chain, retries included; 0 disables it.
	LookupTimeout time.Duration
	CacheTTL      time.Duration // 0 disables the response cache
	CacheSize     int
}

type USDAConfig struct {
	APIKey   string
	BaseURL  string
	PageSize int
}

type OpenFoodFactsConfig struct {
	BaseURL        string
	Country        string
	PageSize       int
	MaxRetries     int
	RequestsPerMin int
	Burst          int
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"` // global timeout for the whole fallback chain
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return load(v)
}

// LoadFile loads configuration from an explicit path.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.RateLimit.Enabled = v.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")

	// Assistant
	cfg.Assistant.CatalogPageSize = v.GetInt("assistant.catalog_page_size")
	cfg.Assistant.ComparePageSize = v.GetInt("assistant.compare_page_size")
	cfg.Assistant.HistoryWindow = v.GetInt("assistant.history_window")
	cfg.Assistant.MaxMessageChars = v.GetInt("assistant.max_message_chars")
	cfg.Assistant.DisambiguationMinNames = v.GetInt("assistant.disambiguation_min_names")
	cfg.Assistant.DisambiguationMaxQueryWords = v.GetInt("assistant.disambiguation_max_query_words")
	cfg.Assistant.ExtractionUseHistory = v.GetBool("assistant.extraction_use_history")
	cfg.Assistant.ReplyMaxTokens = v.GetInt("assistant.reply_max_tokens")
	cfg.Assistant.ExtractionMaxTokens = v.GetInt("assistant.extraction_max_tokens")

	// Catalog providers
	cfg.Catalog.Providers = splitList(v.GetStringSlice("catalog.providers"))
	cfg.Catalog.RequestTimeout = v.GetDuration("catalog.request_timeout")
	cfg.Catalog.LookupTimeout = v.GetDuration("catalog.lookup_timeout")
	cfg.Catalog.CacheTTL = v.GetDuration("catalog.cache_ttl")
	cfg.Catalog.CacheSize = v.GetInt("catalog.cache_size")

	cfg.USDA.APIKey = expandEnvVar(v, v.GetString("usda.api_key"))
	cfg.USDA.BaseURL = v.GetString("usda.base_url")
	cfg.USDA.PageSize = v.GetInt("usda.page_size")
	if usdaKey := v.GetString("usda_api_key"); usdaKey != "" {
		cfg.USDA.APIKey = usdaKey
	}

	cfg.OpenFoodFacts.BaseURL = v.GetString("openfoodfacts.base_url")
	cfg.OpenFoodFacts.Country = v.GetString("openfoodfacts.country")
	cfg.OpenFoodFacts.PageSize = v.GetInt("openfoodfacts.page_size")
	cfg.OpenFoodFacts.MaxRetries = v.GetInt("openfoodfacts.max_retries")
	cfg.OpenFoodFacts.RequestsPerMin = v.GetInt("openfoodfacts.requests_per_min")
	cfg.OpenFoodFacts.Burst = v.GetInt("openfoodfacts.burst")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = v.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = v.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = v.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = v.GetString("llm.max_total_timeout")

	if v.IsSet("llm.providers") {
		if providersList, ok := v.Get("llm.providers").([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(v, getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					})
				}
			}
		}
	}

	// No providers is valid: the assistant then runs on its deterministic fallbacks.
	if len(cfg.LLM.Providers) > 0 {
		if err := validateLLMConfig(&cfg.LLM); err != nil {
			return nil, err
		}
	}
	if err := validateCatalogConfig(&cfg.Catalog); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests_per_min", 60)

	// Assistant defaults
	v.SetDefault("assistant.catalog_page_size", 12)
	v.SetDefault("assistant.compare_page_size", 6)
	v.SetDefault("assistant.history_window", 6)
	v.SetDefault("assistant.max_message_chars", 1500)
	v.SetDefault("assistant.disambiguation_min_names", 3)
	v.SetDefault("assistant.disambiguation_max_query_words", 2)
	v.SetDefault("assistant.extraction_use_history", false)
	v.SetDefault("assistant.reply_max_tokens", 900)
	v.SetDefault("assistant.extraction_max_tokens", 220)

	// Catalog defaults
	v.SetDefault("catalog.providers", []string{"usda"})
	v.SetDefault("catalog.request_timeout", "20s")
	v.SetDefault("catalog.lookup_timeout", "60s")
	v.SetDefault("catalog.cache_ttl", "0s")
	v.SetDefault("catalog.cache_size", 256)
	v.SetDefault("usda.base_url", "https://api.nal.usda.gov/fdc/v1")
	v.SetDefault("usda.page_size", 12)
	v.SetDefault("openfoodfacts.base_url", "https://world.openfoodfacts.org")
	v.SetDefault("openfoodfacts.country", "world")
	v.SetDefault("openfoodfacts.page_size", 20)
	v.SetDefault("openfoodfacts.max_retries", 2)
	v.SetDefault("openfoodfacts.requests_per_min", 0)
	v.SetDefault("openfoodfacts.burst", 4)

	// LLM defaults
	v.SetDefault("llm.fallback_enabled", true)
	v.SetDefault("llm.retry_attempts", 3)
	v.SetDefault("llm.retry_delay", "1s")
	v.SetDefault("llm.max_total_timeout", "60s")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := v.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if !provider.Enabled {
			continue
		}
		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true
	}

	return nil
}

func validateCatalogConfig(cfg *CatalogConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("catalog.providers must name at least one provider")
	}
	for _, p := range cfg.Providers {
		switch p {
		case "usda", "openfoodfacts":
		default:
			return fmt.Errorf("catalog.providers: unknown provider %q", p)
		}
	}
	if cfg.LookupTimeout > 0 && cfg.LookupTimeout < cfg.RequestTimeout {
		return fmt.Errorf("catalog.lookup_timeout must not be shorter than catalog.request_timeout")
	}
	if cfg.CacheTTL > 0 && cfg.CacheSize <= 0 {
		return fmt.Errorf("catalog.cache_size must be positive when the cache is enabled")
	}
	return nil
}

// splitList accepts both a YAML list and a comma-separated env value.
func splitList(raw []string) []string {
	var out []string
	for _, item := range raw {
		for _, part := range strings.Split(item, ",") {
			part = strings.ToLower(strings.TrimSpace(part))
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
