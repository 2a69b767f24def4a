package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"nutrition-assistant/internal/assistant"
	assistantHTTP "nutrition-assistant/internal/assistant/delivery/http"
	"nutrition-assistant/internal/middleware"
	"nutrition-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	mw middleware.Middleware

	// Assistant domain
	assistantUC  assistant.UseCase
	assistantCfg assistantHTTP.Config
	catalogName  string
	llmProviders []string
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	Middleware middleware.Middleware

	// Assistant domain
	AssistantUseCase assistant.UseCase
	AssistantHTTP    assistantHTTP.Config
	CatalogName      string   // reported by /ready
	LLMProviders     []string // reported by /ready
}

// New creates a new HTTPServer instance and registers its routes.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		mw:              cfg.Middleware,
		assistantUC:     cfg.AssistantUseCase,
		assistantCfg:    cfg.AssistantHTTP,
		catalogName:     cfg.CatalogName,
		llmProviders:    cfg.LLMProviders,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.assistantUC == nil {
		return errors.New("assistant use case is required")
	}
	return nil
}
