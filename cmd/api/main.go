package main

import (
	"context"
	"fmt"

	"voicetask/config"
	_ "voicetask/docs" // Swagger docs
	captureHTTP "voicetask/internal/capture/delivery/http"
	captureUC "voicetask/internal/capture/usecase"
	"voicetask/internal/httpserver"
	"voicetask/pkg/datemath"
	"voicetask/pkg/gcalendar"
	"voicetask/pkg/log"
	"voicetask/pkg/textrules"
)

// @title       VoiceTask API
// @description Rule-based capture service that turns transcribed voice notes into structured, dated actions.
// @version     1
// @host        localhost:8080
// @schemes     http
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

	ctx := context.Background()

	logger.Info(ctx, "Starting VoiceTask...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Date resolver
	resolver, err := datemath.NewResolver(cfg.Parser.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Parser.Timezone, err)
		resolver, _ = datemath.NewResolver("UTC")
	}

	// 4. Utterance parser
	parser := textrules.New(resolver)

	// 5. Google Calendar client (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
		} else {
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 6. Capture domain
	uc := captureUC.New(logger, parser, resolver, captureUC.Config{
		Calendar:   calendarClient,
		CalendarID: cfg.GoogleCalendar.CalendarID,
		RecentSize: cfg.Capture.RecentSize,
		RecentTTL:  cfg.Capture.RecentTTL,
	})
	handler := captureHTTP.New(logger, uc)

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimitPerMin: cfg.Capture.RateLimitPerMin,
		CaptureHandler:  handler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
