package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"wellness-assistant/config"
	_ "wellness-assistant/docs" // Swagger docs
	"wellness-assistant/internal/httpserver"
	"wellness-assistant/internal/responder"
	wellnessHTTP "wellness-assistant/internal/wellness/delivery/http"
	wellnessUC "wellness-assistant/internal/wellness/usecase"
	"wellness-assistant/pkg/llmprovider"
	"wellness-assistant/pkg/log"
	"wellness-assistant/pkg/whisper"
)

// @title       Financial Wellness Assistant API
// @description Keyword-driven financial wellness replies, with optional LLM and transcription relays.
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

	logger.Info(ctx, "Starting Financial Wellness Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. LLM providers (optional)
	var assistant wellnessUC.Assistant
	providers, warnings, err := llmprovider.InitializeProviders(&cfg.LLM)
	for _, w := range warnings {
		logger.Warn(ctx, w)
	}
	switch {
	case errors.Is(err, llmprovider.ErrNoProvidersConfigured):
		logger.Warnf(ctx, "Assistant disabled: %v", err)
	case err != nil:
		logger.Errorf(ctx, "Failed to initialize LLM providers: %v", err)
	default:
		assistant = llmprovider.NewManager(providers, &llmprovider.Config{
			FallbackEnabled:   cfg.LLM.FallbackEnabled,
			MaxTotalTimeout:   cfg.LLM.MaxTotalTimeout,
			RequestsPerMinute: cfg.LLM.RequestsPerMinute,
			CacheSize:         cfg.LLM.CacheSize,
			CacheTTL:          cfg.LLM.CacheTTL,
		}, logger)
		logger.Infof(ctx, "✅ Assistant enabled with %d provider(s)", len(providers))
	}

	// 4. Transcription (optional)
	var transcriber whisper.ITranscriber
	if cfg.Transcription.Enabled() {
		client, tErr := whisper.New(whisper.Config{
			APIKey:  cfg.Transcription.APIKey,
			BaseURL: cfg.Transcription.BaseURL,
			Model:   cfg.Transcription.Model,
			Timeout: cfg.Transcription.Timeout,
		})
		if tErr != nil {
			logger.Warnf(ctx, "Transcription not available: %v", tErr)
		} else {
			transcriber = client
			logger.Info(ctx, "✅ Transcription enabled")
		}
	} else {
		logger.Warn(ctx, "Transcription disabled: transcription.api_key is empty")
	}

	// 5. Wellness domain
	uc := wellnessUC.New(logger, responder.New(), assistant, transcriber)
	handler := wellnessHTTP.New(logger, uc, int64(cfg.Transcription.MaxUploadMB)<<20)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		AllowedOrigins:  cfg.CORS.AllowedOrigins,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		WellnessHandler: handler,
		Status:          uc,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
