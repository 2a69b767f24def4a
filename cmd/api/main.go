package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"nutrition-assistant/config"
	_ "nutrition-assistant/docs" // Swagger docs
	assistantHTTP "nutrition-assistant/internal/assistant/delivery/http"
	assistantUC "nutrition-assistant/internal/assistant/usecase"
	catalogRepo "nutrition-assistant/internal/catalog/repository"
	"nutrition-assistant/internal/httpserver"
	"nutrition-assistant/internal/intent"
	"nutrition-assistant/internal/middleware"
	"nutrition-assistant/internal/responder"
	"nutrition-assistant/pkg/llmprovider"
	"nutrition-assistant/pkg/log"
)

// @title       Nutrition Assistant API
// @description Conversational nutrition assistant grounded on USDA FoodData Central and Open Food Facts.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Nutrition Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. LLM providers (zero providers runs the assistant on its fallbacks)
	providers, warnings, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize LLM providers: %v", err)
		os.Exit(1)
	}
	for _, w := range warnings {
		logger.Warnf(ctx, "LLM provider skipped: %s", w)
	}
	managerCfg, err := llmprovider.ManagerConfigFrom(&cfg.LLM)
	if err != nil {
		logger.Errorf(ctx, "Invalid LLM config: %v", err)
		os.Exit(1)
	}
	llm := llmprovider.NewManager(providers, managerCfg, logger)
	if len(providers) == 0 {
		logger.Warn(ctx, "No LLM providers configured, using deterministic fallbacks")
	} else {
		logger.Infof(ctx, "LLM providers: %v", llm.Providers())
	}

	// 4. Catalog
	repo, err := catalogRepo.New(ctx, cfg, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize catalog: %v", err)
		os.Exit(1)
	}
	logger.Infof(ctx, "Catalog providers: %s", repo.Name())

	// 5. Assistant
	extractor := intent.New(llm, logger, intent.Config{
		UseHistory:      cfg.Assistant.ExtractionUseHistory,
		HistoryWindow:   cfg.Assistant.HistoryWindow,
		MaxMessageChars: cfg.Assistant.MaxMessageChars,
		MaxTokens:       cfg.Assistant.ExtractionMaxTokens,
	})
	resp := responder.New(llm, logger, responder.Config{
		HistoryWindow:   cfg.Assistant.HistoryWindow,
		MaxMessageChars: cfg.Assistant.MaxMessageChars,
		MaxTokens:       cfg.Assistant.ReplyMaxTokens,
	})
	uc := assistantUC.New(logger, extractor, resp, repo, assistantUC.Config{
		CatalogPageSize:             cfg.Assistant.CatalogPageSize,
		ComparePageSize:             cfg.Assistant.ComparePageSize,
		DisambiguationMinNames:      cfg.Assistant.DisambiguationMinNames,
		DisambiguationMaxQueryWords: cfg.Assistant.DisambiguationMaxQueryWords,
		LookupTimeout:               cfg.Catalog.LookupTimeout,
	})

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		Middleware:       middleware.New(logger, cfg.RateLimit),
		AssistantUseCase: uc,
		AssistantHTTP:    assistantHTTP.Config{MaxMessageChars: cfg.Assistant.MaxMessageChars},
		CatalogName:      repo.Name(),
		LLMProviders:     llm.Providers(),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
