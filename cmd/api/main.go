package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"calendar-assistant/config"
	"calendar-assistant/internal/httpserver"
	"calendar-assistant/pkg/gemini"
	"calendar-assistant/pkg/log"
	"calendar-assistant/pkg/session"
)

// @title       Calendar Assistant API
// @description Conversational calendar assistant: chat with Gemini, manage Google Calendar events.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
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

	logger.Info(ctx, "Starting Calendar Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Gemini LLM client
	geminiClient := gemini.NewClient(cfg.Gemini.APIKey)
	if cfg.Gemini.Model != "" {
		geminiClient.SetModel(cfg.Gemini.Model)
	}
	logger.Infof(ctx, "Model: %s", geminiClient.Model())

	// 4. Session manager
	sessions, err := session.NewManager(cfg.Session.Secret)
	if err != nil {
		logger.Error(ctx, "Failed to initialize session manager: ", err)
		return
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		LLM:             geminiClient,
		Sessions:        sessions,
		RateLimitPerMin: cfg.Limits.RateLimitPerMin,
		DefaultTimezone: cfg.Gemini.DefaultTimezone,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
